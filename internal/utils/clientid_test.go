package utils

import (
	"strings"
	"testing"
)

func noCollisions(string) (bool, error) { return false, nil }

func TestGenerateClientID_Format(t *testing.T) {
	id, err := GenerateClientID("Rahul Sharma", "1996-09-14", noCollisions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(id) != 7 {
		t.Fatalf("expected 7-char ID, got %q", id)
	}
	if !strings.HasPrefix(id, "RS") {
		t.Errorf("expected RS initials prefix, got %q", id)
	}
	if !strings.HasSuffix(id, "1409") {
		t.Errorf("expected 1409 date suffix, got %q", id)
	}
}

func TestGenerateClientID_DateFormats(t *testing.T) {
	for _, dob := range []string{"1996-09-14", "14-09-1996", "1996/09/14", "14/09/1996"} {
		id, err := GenerateClientID("Rahul Sharma", dob, noCollisions)
		if err != nil {
			t.Fatalf("dob %q: unexpected error: %v", dob, err)
		}
		if !strings.HasSuffix(id, "1409") {
			t.Errorf("dob %q: expected 1409 suffix, got %q", dob, id)
		}
	}
}

func TestGenerateClientID_SingleName(t *testing.T) {
	id, err := GenerateClientID("Priya", "2000-01-05", noCollisions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(id, "PR") {
		t.Errorf("single name should use first two letters, got %q", id)
	}
}

func TestGenerateClientID_EmptyName(t *testing.T) {
	id, err := GenerateClientID("  ", "2000-01-05", noCollisions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(id, "AA") {
		t.Errorf("empty name should fall back to AA, got %q", id)
	}
}

func TestGenerateClientID_NonASCIIInitial(t *testing.T) {
	id, err := GenerateClientID("7eleven store", "2000-01-05", noCollisions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id[0] != 'A' {
		t.Errorf("non-letter initial should fall back to A, got %q", id)
	}
	if id[1] != 'S' {
		t.Errorf("expected S for second initial, got %q", id)
	}
}

func TestGenerateClientID_InvalidDOB(t *testing.T) {
	if _, err := GenerateClientID("Rahul Sharma", "14th Sep 1996", noCollisions); err == nil {
		t.Fatal("expected error for unparseable date of birth")
	}
}

func TestGenerateClientID_RetriesOnCollision(t *testing.T) {
	calls := 0
	exists := func(string) (bool, error) {
		calls++
		return calls < 3, nil
	}
	id, err := GenerateClientID("Rahul Sharma", "1996-09-14", exists)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 uniqueness checks, got %d", calls)
	}
	if len(id) != 7 {
		t.Errorf("expected 7-char ID, got %q", id)
	}
}

func TestGenerateClientID_ExhaustedRetries(t *testing.T) {
	exists := func(string) (bool, error) { return true, nil }
	id, err := GenerateClientID("Rahul Sharma", "1996-09-14", exists)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(id) != 7 {
		t.Errorf("fallback ID should still be 7 chars, got %q", id)
	}
	if !strings.HasPrefix(id, "RS") {
		t.Errorf("fallback ID should keep initials, got %q", id)
	}
}
