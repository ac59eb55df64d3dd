// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package lifecycle manages the display side of the pairing protocol: mint a
token, persist it, render it as a QR image, rotate on a fixed cadence.

# State machine

	Idle → Minting → Displaying → (timer fires) → Minting → ...

Stop cancels the pending timer and closes the display channel; a mint or
save still in flight when teardown happens is discarded instead of being
published. Old tokens remain resolvable at the registry - rotation inserts
new rows, it never revokes.

# Usage

	issuer, err := lifecycle.New(client, answers)
	if err := issuer.Start(ctx); err != nil { ... }
	for d := range issuer.Displays() {
		show(d.PNG)
	}

The default cadence is 90 seconds (DefaultRotation). Save failures are
surfaced once on Errors() and rotation simply tries again next tick -
there is no retry logic in between.
*/
package lifecycle
