// Package scoring implements the deterministic wellness scoring core: the
// autophagy and longevity scorers, trend classification, and the daily
// coaching and insight rule engines.
//
// Every function in this package is pure and total over its documented
// domain: no I/O, no hidden state, identical inputs produce identical
// outputs. Out-of-range metric values are clamped by the tier logic itself
// rather than rejected; the only explicit failures are missing required
// context (gender, autophagy total) on the longevity scorer.
package scoring

import (
	"errors"
	"math"
)

// ErrMissingInput is returned when required scoring context (gender, a valid
// autophagy total) is absent. Scorers never substitute defaults for missing
// profile data, since that would change score semantics invisibly.
var ErrMissingInput = errors.New("missing required scoring input")

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func round(v float64) int {
	return int(math.Round(v))
}
