// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the rendered image edge in pixels.
const DefaultSize = 400

// Encode renders a session token as a PNG QR image. The token is opaque to
// the transport; only its uniqueness matters.
func Encode(token string, size int) ([]byte, error) {
	if token == "" {
		return nil, errors.New("token is empty")
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(token, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode token: %w", err)
	}
	return png, nil
}
