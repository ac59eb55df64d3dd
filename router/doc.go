// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method routing.

# Routes

	GET  /health               → liveness check
	POST /sessions             → publish a session snapshot
	GET  /sessions/{token}     → resolve a token
	GET  /events/{code}/stats  → event dashboard (X-Admin-Key)
	GET  /                     → API banner

All routes except health and root are wrapped with request logging.
*/
package router
