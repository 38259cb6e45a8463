// Package scoring implements the ReelCaster fishing-quality engine: pure,
// side-effect-free scorers for each environmental factor, per-species weight
// profiles with interaction terms, safety capping, and derived advice.
//
// Every scorer degrades gracefully: missing upstream data yields a neutral
// mid score with a description noting the absence, and out-of-range numeric
// inputs are clamped before scoring. No scoring function returns an error or
// panics for bad data.
package scoring

import "math"

// Score bounds for every factor and for the aggregated total.
const (
	minScore     = 0.0
	maxScore     = 10.0
	neutralScore = 5.0
)

// clampScore forces a raw score into [0,10] and maps NaN to the neutral
// mid score so that degenerate arithmetic never propagates.
func clampScore(s float64) float64 {
	if math.IsNaN(s) {
		return neutralScore
	}
	if s < minScore {
		return minScore
	}
	if s > maxScore {
		return maxScore
	}
	return s
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// gaussian returns a bell value in [0,1] centered at center with the given
// spread (standard deviation). Used for target-band scorers such as tidal
// current speed and seasonality.
func gaussian(x, center, spread float64) float64 {
	if spread <= 0 {
		if x == center {
			return 1
		}
		return 0
	}
	d := x - center
	return math.Exp(-(d * d) / (2 * spread * spread))
}

// expDecay returns exp(-k*x) clamped to [0,1], peaking at x=0. Used for
// slack-seeking scorers where any current movement reduces quality.
func expDecay(x, k float64) float64 {
	if x < 0 {
		x = -x
	}
	return clamp(math.Exp(-k*x), 0, 1)
}

// smoothCeiling returns a value in [0,1] that is 1 at x=0 and decays smoothly
// to 0 as x approaches ceiling; beyond the ceiling it is 0. The exponent
// controls how late the decay bites.
func smoothCeiling(x, ceiling, exponent float64) float64 {
	if ceiling <= 0 {
		return 0
	}
	x = clamp(x, 0, ceiling)
	return clamp(1-math.Pow(x/ceiling, exponent), 0, 1)
}

// blend linearly interpolates between a and b by t in [0,1]. Used for smooth
// transitions at band edges instead of step functions.
func blend(a, b, t float64) float64 {
	t = clamp(t, 0, 1)
	return a + (b-a)*t
}
