// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scanner resolves a peer's QR token into a match verdict.

# State machine

	Idle → Capturing → Resolving → {Matched | Rejected | Faulted} → Idle

with cancellation forcing Capturing (or Resolving) back to Idle.

# The one invariant that matters

Camera pipelines can invoke the decode callback again before teardown
completes. The resolver accepts only the first decoded token of a capture
session - an atomic compare-and-swap, not an incidental boolean - so
lookup and scoring run at most once per session no matter how many
callbacks land.

# Outcomes

Rejections (token not found, different event) are normal outcomes. Faults
carry a reason distinguishing camera trouble, network failure, and
payloads that decoded but are not session tokens, so the caller can give
the right guidance. Frames with no readable code are noise and never
surface at all.
*/
package scanner
