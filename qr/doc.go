// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package qr is the visual-token transport boundary.

Encode turns a session token into a PNG QR image for display. DecodeStream
is the capture-side contract: a camera-backed source that pushes decoded
tokens (and no-code noise events) into callbacks until stopped. The
package deliberately knows nothing about sessions or scoring; tokens are
opaque strings.

Camera integration is left to DecodeStream implementations; the scanner
package consumes the interface and tests drive it with scripted fakes.
*/
package qr
