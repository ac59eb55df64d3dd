// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the session table. Safe to call multiple times -
// uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Sessions are insert-only: one row per issued token, never updated or
-- deleted by the service. Answers are stored as a JSON document.
CREATE TABLE IF NOT EXISTS session (
    token TEXT PRIMARY KEY,
    event_code TEXT NOT NULL,
    answers TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_event_code ON session(event_code);
CREATE INDEX IF NOT EXISTS idx_session_created_at ON session(event_code, created_at);
`
