// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package match implements the compatibility scoring engine.

# Algorithm

Compute blends two signals into a traffic-light verdict:

 1. Layer A similarity: weighted share of trait questions where both users
    chose the same option. Symmetric.
 2. Layer B satisfaction, evaluated independently in both directions: each
    side's preferences are weighted by that side's importance (low 0.5,
    medium 1.0, high 1.5) against the other side's answers. Asymmetric,
    because importance and deal-breaker flags are private to each side.

A deal-breaker mismatch in either direction short-circuits everything to
red / score 0 / "Not Compatible".

Otherwise:

	composite = layerA*0.6 + avg(satisfaction both directions)*0.4

	composite >= 0.80 -> green  "Strong Match"
	composite >= 0.50 -> yellow "Potential Match"
	otherwise         -> red    "Low Compatibility"

The reported score is round(composite*100).

# Shared interests

When the verdict is not a deal-breaker failure, the engine also surfaces
icebreaker copy from the highest-importance Layer B question where both
users picked the same option and that option defines a conversation hook.

# Purity

Compute performs no I/O, reads no ambient state, and never fails for
well-formed inputs; zero-weight denominators score 0 instead of dividing
by zero. Because the result depends on which side is "self", callers must
compute from the scanning user's perspective.
*/
package match
