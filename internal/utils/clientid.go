package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const clientIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var dobLayouts = []string{"2006-01-02", "02-01-2006", "2006/01/02", "02/01/2006"}

// ParseDateOfBirth accepts the date formats the registration form emits.
func ParseDateOfBirth(dob string) (time.Time, error) {
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, dob); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date of birth format: %q", dob)
}

// GenerateClientID builds a 7-character login ID from the user's initials,
// one random alphanumeric character and the day+month of birth, e.g.
// "Rahul Sharma" born 14-09-1996 becomes "RSX1409". The exists check keeps
// IDs unique; after 50 collisions an extra random character replaces part
// of the date suffix.
func GenerateClientID(name, dateOfBirth string, exists func(string) (bool, error)) (string, error) {
	parts := strings.Fields(strings.TrimSpace(name))
	var first, last byte
	switch {
	case len(parts) == 0:
		first, last = 'A', 'A'
	case len(parts) == 1:
		first = upperInitial(parts[0], 0)
		last = upperInitial(parts[0], 1)
	default:
		first = upperInitial(parts[0], 0)
		last = upperInitial(parts[len(parts)-1], 0)
	}

	dob, err := ParseDateOfBirth(dateOfBirth)
	if err != nil {
		return "", err
	}
	ddmm := dob.Format("0201")

	for attempt := 0; attempt < 50; attempt++ {
		id := fmt.Sprintf("%c%c%c%s", first, last, randomChar(), ddmm)
		taken, err := exists(id)
		if err != nil {
			return "", fmt.Errorf("failed to check client ID: %w", err)
		}
		if !taken {
			return id, nil
		}
	}
	return fmt.Sprintf("%c%c%c%c%s", first, last, randomChar(), randomChar(), ddmm[2:]), nil
}

func upperInitial(word string, idx int) byte {
	if idx >= len(word) {
		return 'A'
	}
	c := word[idx]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return 'A'
	}
	return c
}

func randomChar() byte {
	b := make([]byte, 1)
	rand.Read(b)
	return clientIDCharset[int(b[0])%len(clientIDCharset)]
}
