package finance

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value that decodes leniently from JSON. Forms
// submitted by the web client deliver numbers, numeric strings and empty
// strings interchangeably; anything unparsable decodes to 0 instead of
// failing the whole document. NaN and Inf are also flattened to 0 so they
// can never leak into a computed total.
type Amount float64

// UnmarshalJSON never returns an error for scalar input.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	v := float64(a)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

// Float64 returns the value with non-finite inputs flattened to 0.
func (a Amount) Float64() float64 {
	v := float64(a)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
