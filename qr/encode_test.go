// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package qr

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestEncodeProducesPNG(t *testing.T) {
	png, err := Encode(uuid.NewString(), DefaultSize)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("Output does not start with the PNG signature")
	}
}

func TestEncodeDefaultsSize(t *testing.T) {
	png, err := Encode(uuid.NewString(), 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(png) == 0 {
		t.Error("Expected a non-empty image")
	}
}

func TestEncodeRejectsEmptyToken(t *testing.T) {
	if _, err := Encode("", DefaultSize); err == nil {
		t.Error("Expected an error for an empty token")
	}
}
