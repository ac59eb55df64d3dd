// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminKey  = errors.New("invalid admin key")
	ErrInvalidEventCode = errors.New("event code must be 4 alphanumeric characters")
)

// GenerateToken mints a fresh session token: a random UUIDv4, which carries
// 122 bits of entropy. Tokens are opaque to everything but the session
// store; collisions are negligible.
func GenerateToken() string {
	return uuid.NewString()
}

// ValidToken reports whether s parses as a UUID. Used by the scanner to
// reject decoded payloads that are not session tokens (someone else's QR).
func ValidToken(s string) bool {
	return uuid.Validate(s) == nil
}

// NormalizeEventCode uppercases an event code and checks the format:
// exactly 4 ASCII letters or digits.
func NormalizeEventCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 4 {
		return "", ErrInvalidEventCode
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return "", ErrInvalidEventCode
		}
	}
	return code, nil
}

// GenerateAdminKey creates an HMAC-based admin key for an event dashboard.
// Deterministic from the event code and salt, so it can be validated
// without storing anything.
func GenerateAdminKey(eventCode, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(eventCode))
	sum := h.Sum(nil)
	// URL-safe base64 without padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks the provided admin key against an event code.
func ValidateAdminKey(eventCode, adminKey, salt string) error {
	expected := GenerateAdminKey(eventCode, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}
