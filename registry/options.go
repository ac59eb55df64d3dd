// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

// This file defines functional options that configure the Client during
// construction, plus the environment-driven config they default from.

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings parsed from BEEP_* environment variables.
type Config struct {
	BaseURL string        `envconfig:"REGISTRY_URL" required:"true"`
	Timeout time.Duration `envconfig:"REGISTRY_TIMEOUT" default:"10s"`
	Debug   bool          `envconfig:"DEBUG" default:"false"`
}

// ConfigFromEnv parses client configuration from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("beep", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse registry config: %w", err)
	}
	return cfg, nil
}

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithTimeout bounds the total time spent on a single registry request.
// Prefer per-request context deadlines where possible; this is a coarse
// safety net. The value must be greater than zero.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("registry timeout must be > 0")
		}
		c.http.SetTimeout(d)
		return nil
	}
}

// WithDebug logs each request and response when enabled. Verbose; not for
// production.
func WithDebug(enabled bool) Option {
	return func(c *Client) error {
		c.http.SetDebug(enabled)
		return nil
	}
}
