package core

import "math"

// Inf is the sentinel distance representing "unreachable". It is chosen as
// math.MaxInt64 so that SaturatingAdd64 can never overflow past it and so
// that it compares greater than every finite distance (SPEC_FULL §9,
// "Integer vs. float costs").
const Inf int64 = math.MaxInt64

// SaturatingAdd64 returns a+b, clamped to Inf instead of wrapping on
// overflow. Used wherever a tentative distance is relaxed across an edge
// (DESIGN.md, Open Question 1): weights are positive and bounded, so this
// saturates only as a defensive measure, never in practice for graphs
// within the module's vertex/weight limits.
func SaturatingAdd64(a, b int64) int64 {
	if a >= Inf || b >= Inf {
		return Inf
	}
	sum := a + b
	if sum < a || sum >= Inf {
		return Inf
	}

	return sum
}
