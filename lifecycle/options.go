// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"fmt"
	"time"
)

// Option configures an Issuer during construction in New.
type Option func(*Issuer) error

// WithRotation overrides the rotation cadence. The value must be greater
// than zero.
func WithRotation(d time.Duration) Option {
	return func(i *Issuer) error {
		if d <= 0 {
			return fmt.Errorf("rotation interval must be > 0")
		}
		i.interval = d
		return nil
	}
}

// WithImageSize sets the rendered QR edge in pixels.
func WithImageSize(px int) Option {
	return func(i *Issuer) error {
		if px <= 0 {
			return fmt.Errorf("image size must be > 0")
		}
		i.size = px
		return nil
	}
}
