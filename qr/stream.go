// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package qr

// Callbacks receives decode events from a running stream. OnToken fires
// once per successfully decoded frame and may fire again before the
// consumer manages to stop the stream; consumers must tolerate that.
// OnNoise fires for frames with no readable code - expected noise, never
// an error.
type Callbacks struct {
	OnToken func(token string)
	OnNoise func()
}

// DecodeStream is a camera-backed token source. Implementations wrap a
// real camera pipeline; tests use a scripted fake. Start begins delivering
// frames to the callbacks and returns a stop function. Stop is prompt and
// idempotent: stopping twice is a no-op, and implementations must not
// panic if callbacks race a stop in flight.
//
// Start returns an error when the camera is unavailable or permission is
// denied; that failure is a capture fault, distinguishable from store
// errors downstream.
type DecodeStream interface {
	Start(cb Callbacks) (stop func(), err error)
}
