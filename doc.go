// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Beep session registry.

Beep lets two people standing near each other discover a compatibility
score: each publishes a quiz snapshot under a short-lived QR token, a peer
scans it, and the registry resolves the token back into an answer set for
local scoring.

# Starting the Server

The server runs against sqlite by default:

	ADMIN_KEY_SALT=secret go run .

Or against postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... ADMIN_KEY_SALT=secret go run .

# Configuration

Required settings:

  - ADMIN_KEY_SALT (--admin-salt): secret for event admin key HMAC

Optional settings:

  - PORT (-p): server port (default: 8787)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string (default: beep.db for sqlite)

A .env file in the working directory is loaded automatically.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (sessions, events)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: shared data model and request/response types
  - catalog: the static question catalog
  - auth: token minting, admin keys, event code validation
  - db: driver selection and schema creation
  - cliparse: configuration parsing

The client-side protocol lives next to the server in the same module:

  - registry: SDK for the session store API
  - match: the compatibility scoring engine
  - lifecycle: token minting, rotation, and QR display
  - scanner: peer token capture and resolution
  - qr: visual-token encode/decode contracts
  - clientstate: local persistence for event code and answers

See package documentation for each component.
*/
package main
