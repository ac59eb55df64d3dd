// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package clientstate is the client-local persistence collaborator: a
// file-backed key-value store the pairing client uses to remember the
// joined event code and the last submitted answer snapshot across
// restarts. Get/Set/Remove semantics only, no transactions.
package clientstate
