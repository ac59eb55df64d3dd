// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the session registry.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SessionHandler: session publication and token resolution
  - EventHandler: admin-facing event statistics

Handlers are created via constructor functions that accept *sql.DB and
Config:

	sessionHandler := handlers.NewSessionHandler(db, cfg)

# Session Flow

Clients mint their own tokens and publish a snapshot per rotation:

	POST /sessions         → CreateSession (validates answers, inserts)
	GET  /sessions/{token} → GetSession (exact token match, 404 when absent)

There is no update or delete: a rotated-away token stays resolvable until
the store itself expires it.

# Event Dashboard

	GET /events/{code}/stats → GetEventStats

Requires the event's admin key in the X-Admin-Key header. Returns the
participant count plus the most recent joins (newest first, capped at 50).
*/
package handlers
