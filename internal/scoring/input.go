package scoring

import "reelcaster/internal/types"

// Input bundles everything a factor scorer may consult for one tick. Tide is
// optional; scorers that need it degrade to a neutral score when it is nil.
type Input struct {
	Sample  types.EnvironmentalSample
	Tide    *types.TideSnapshot
	Context types.AlgorithmContext
}

// outcome is the internal result of a single factor scorer: the public
// FactorResult (weight filled in later by the engine) plus safety signals
// that feed the capping policy without leaking into per-factor output.
type outcome struct {
	result   types.FactorResult
	unsafe   bool
	warnings []string
}

func newOutcome(value string, score float64, description string) outcome {
	return outcome{
		result: types.FactorResult{
			Value:       value,
			Score:       clampScore(score),
			Description: description,
		},
	}
}

// neutralOutcome is the standard degradation for missing upstream data:
// a mid score, never zero and never an error.
func neutralOutcome(value, reason string) outcome {
	return newOutcome(value, neutralScore, reason)
}
