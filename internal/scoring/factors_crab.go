package scoring

import (
	"fmt"
	"math"
)

// Crab and prawn V2 factors wrap the physics helpers into FactorResults so
// they aggregate like any other factor.

// scoreScentCurrent scores scent-plume hydraulics from the tide snapshot.
// With only a point-in-time snapshot the soak window collapses to a single
// reading; the poller can supply richer series through ScentHydraulics
// directly.
func scoreScentCurrent(in Input) outcome {
	if in.Tide == nil {
		return neutralOutcome("no tide data", "Tide data unavailable; assume average scent dispersal.")
	}

	res := ScentHydraulics([]float64{math.Abs(in.Tide.CurrentSpeedKt)})
	out := newOutcome(
		fmt.Sprintf("%.1f kt average", res.AverageCurrentSpeedKt),
		res.Score,
		res.Recommendation)
	if res.TrapRollRisk {
		out.warnings = append(out.warnings,
			fmt.Sprintf("Current %.1f kt risks rolling pots.", res.AverageCurrentSpeedKt))
	}
	return out
}

// scoreMoltQuality scores shell condition from water temperature.
func scoreMoltQuality(in Input) outcome {
	if in.Tide == nil || in.Tide.WaterTempC == nil {
		return neutralOutcome("no water temp", "Water temperature unavailable; molt stage unknown.")
	}
	res := MoltQualityIndex(*in.Tide.WaterTempC)
	return newOutcome(res.Quality, res.Score, res.Advice)
}

// scoreNocturnalFlood maps the night-flood activity multiplier [1.0,1.3]
// onto the 0-10 factor scale.
func scoreNocturnalFlood(in Input) outcome {
	if in.Tide == nil {
		return neutralOutcome("no tide data", "Tide data unavailable; no nocturnal flood signal.")
	}
	if in.Context.Sunrise.IsZero() || in.Context.Sunset.IsZero() {
		return neutralOutcome("unknown night window", "Sunrise/sunset unavailable; cannot place the night-flood overlap.")
	}

	soak := in.Context.SoakDurationHours
	if soak <= 0 {
		soak = 4 // typical recreational soak when unspecified
	}

	res := NocturnalFloodBonus(in.Sample.Timestamp, soak, in.Context.Sunset, in.Context.Sunrise, in.Tide.IsRising)
	score := (res.Multiplier - 1.0) / nocturnalFloodMaxBonus * maxScore
	return newOutcome(fmt.Sprintf("%.2fx multiplier", res.Multiplier), score, res.Advice)
}

// scoreRetrievalSafety scores the gear-retrieval window and carries the
// unsafe signal into the engine's capping policy.
func scoreRetrievalSafety(in Input) outcome {
	current := 0.0
	if in.Tide != nil {
		current = in.Tide.CurrentSpeedKt
	}
	wave := 0.0
	if in.Sample.WaveHeightM != nil {
		wave = *in.Sample.WaveHeightM
	}

	res := RetrievalSafety(in.Sample.WindSpeedKmh, current, wave)
	desc := "All retrieval ceilings clear."
	if len(res.Recommendations) > 0 {
		desc = res.Recommendations[0]
	}

	out := newOutcome(safetyLabel(res.IsSafe), res.Score, desc)
	out.unsafe = !res.IsSafe
	out.warnings = append(out.warnings, res.Warnings...)
	return out
}

func safetyLabel(safe bool) string {
	if safe {
		return "safe to haul"
	}
	return "unsafe to haul"
}
