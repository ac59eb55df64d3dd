// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token minting and admin key utilities.

# Session Tokens

Session tokens are random UUIDv4 strings (122 bits of entropy):

	token := auth.GenerateToken()

A rotated-away token is never revoked; whoever holds it can still resolve
the session it points at. ValidToken gates decoded QR payloads before the
scanner ever hits the store.

# Event Codes

Event codes are exactly 4 alphanumeric characters, stored uppercase:

	code, err := auth.NormalizeEventCode("ab3x") // "AB3X"

# Admin Keys

Admin keys gate the event dashboard. They use HMAC-SHA256 so the same
event code and salt always produce the same key and nothing needs to be
stored:

	key := auth.GenerateAdminKey(eventCode, salt)
	err := auth.ValidateAdminKey(eventCode, key, salt)

Keys are URL-safe base64 without padding.
*/
package auth
