// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package catalog holds the static question catalog: five Layer A trait
// questions with fixed weights and five Layer B preference questions.
// The catalog is data only and immutable after process start; both the
// registry server (answer validation) and the match engine read it.
package catalog
