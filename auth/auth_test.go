// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateTokenIsValidAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := GenerateToken()
		if !ValidToken(token) {
			t.Fatalf("Generated token failed validation: %s", token)
		}
		if seen[token] {
			t.Fatalf("Generated duplicate token: %s", token)
		}
		seen[token] = true
	}
}

func TestValidToken(t *testing.T) {
	cases := []struct {
		token string
		valid bool
	}{
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"", false},
		{"not-a-uuid", false},
		{"550e8400e29b41d4a716446655440000", true}, // uuid accepts unhyphenated form
		{"550e8400-e29b-41d4-a716-44665544000", false},
		{"BEEP", false},
	}

	for _, tc := range cases {
		if got := ValidToken(tc.token); got != tc.valid {
			t.Errorf("ValidToken(%q): expected %v, got %v", tc.token, tc.valid, got)
		}
	}
}

func TestNormalizeEventCode(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"BEEP", "BEEP", false},
		{"beep", "BEEP", false},
		{"  q4kO ", "Q4KO", false},
		{"2025", "2025", false},
		{"ABC", "", true},
		{"ABCDE", "", true},
		{"AB-C", "", true},
		{"AB C", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := NormalizeEventCode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("NormalizeEventCode(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeEventCode(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeEventCode(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestAdminKeyRoundTrip(t *testing.T) {
	salt := "test-salt"

	key := GenerateAdminKey("BEEP", salt)
	if key == "" {
		t.Fatal("Expected non-empty admin key")
	}
	if strings.ContainsAny(key, "+/=") {
		t.Errorf("Expected URL-safe unpadded key, got %s", key)
	}

	if err := ValidateAdminKey("BEEP", key, salt); err != nil {
		t.Errorf("Expected generated key to validate, got %v", err)
	}
	if err := ValidateAdminKey("PICK", key, salt); err == nil {
		t.Error("Key for one event must not validate for another")
	}
	if err := ValidateAdminKey("BEEP", key, "other-salt"); err == nil {
		t.Error("Key must not validate under a different salt")
	}
	if err := ValidateAdminKey("BEEP", "bogus", salt); err == nil {
		t.Error("Arbitrary string must not validate")
	}
}

func TestAdminKeyIsDeterministic(t *testing.T) {
	salt := "test-salt"
	if GenerateAdminKey("BEEP", salt) != GenerateAdminKey("BEEP", salt) {
		t.Error("Expected identical keys for identical inputs")
	}
	if GenerateAdminKey("BEEP", salt) == GenerateAdminKey("PICK", salt) {
		t.Error("Expected different keys for different events")
	}
}
