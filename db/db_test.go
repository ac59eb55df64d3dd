// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"
	"time"
)

func TestOpenRejectsUnknownType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected an error for an unsupported database type")
	}
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	if err := CreateSchema(conn); err != nil {
		t.Errorf("Second CreateSchema must not fail: %v", err)
	}
}

func TestSessionTokenIsUnique(t *testing.T) {
	conn, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	insert := `INSERT INTO session (token, event_code, answers, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := conn.Exec(insert, "tok-1", "BEEP", "{}", time.Now().UTC()); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if _, err := conn.Exec(insert, "tok-1", "BEEP", "{}", time.Now().UTC()); err == nil {
		t.Error("Expected a unique violation for a duplicate token")
	}
}
