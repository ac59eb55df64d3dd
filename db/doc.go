// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening

Open selects a driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"sqlite" uses the pure Go modernc driver and works with a plain file path;
"postgres" expects a connection string.

# Schema

CreateSchema initializes the session table:

	if err := db.CreateSchema(conn); err != nil { ... }

Safe to call multiple times - uses IF NOT EXISTS.

The schema is a single insert-only table:

  - session: token (unique), event_code, answers (JSON blob), created_at

There is deliberately no update or delete path: token rotation inserts new
rows, and expiry (if ever wanted) belongs to the store, not the service.

# Indexes

  - session.event_code (dashboard counts)
  - session.(event_code, created_at) (recent-participants listing)
*/
package db
