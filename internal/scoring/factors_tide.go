package scoring

import (
	"fmt"
	"math"
)

// CurrentBand is the target-band gaussian for current-speed scorers. Salmon
// trollers want moving water around the center; the spread controls how fast
// quality decays outside the band.
type CurrentBand struct {
	CenterKt float64 `yaml:"center_kt"`
	SpreadKt float64 `yaml:"spread_kt"`
}

// scoreTidalCurrent scores current speed against the species target band.
func scoreTidalCurrent(in Input, band CurrentBand) outcome {
	if in.Tide == nil {
		return neutralOutcome("no tide data", "Tide data unavailable; assuming moderate current.")
	}

	v := math.Abs(clamp(in.Tide.CurrentSpeedKt, -15, 15))
	score := maxScore * gaussian(v, band.CenterKt, band.SpreadKt)

	dir := "ebbing"
	if in.Tide.IsRising {
		dir = "flooding"
	}
	return newOutcome(fmt.Sprintf("%.1f kt %s", v, dir), score,
		fmt.Sprintf("Target band centers at %.1f kt.", band.CenterKt))
}

// Slack-seeking decay constant: at k=1.2, quality halves roughly every 0.6 kt
// of current. Bottom fish hold and feed at slack when gear can stay vertical.
const slackDecayK = 1.2

// scoreTidalSlope scores proximity to true slack with exponential decay:
// score = 10 * exp(-k * |speed|). Peak is exactly at zero current.
func scoreTidalSlope(in Input) outcome {
	if in.Tide == nil {
		return neutralOutcome("no tide data", "Tide data unavailable; assuming mid-exchange current.")
	}

	v := math.Abs(clamp(in.Tide.CurrentSpeedKt, -15, 15))
	score := maxScore * expDecay(v, slackDecayK)

	label := "slack"
	switch {
	case v > 1.5:
		label = "running hard"
	case v > 0.5:
		label = "building"
	}
	return newOutcome(fmt.Sprintf("%.1f kt (%s)", v, label), score,
		"Exponential decay from true slack; vertical presentations need minimal drift.")
}

// RangeConfig controls the tidal-range scorer. The relationship's sign is a
// per-species configuration, not a universal law: slack-window species score
// neap tides higher (Inverted), flush-feeding species score springs higher.
type RangeConfig struct {
	Inverted  bool    `yaml:"inverted"`
	MaxRangeM float64 `yaml:"max_range_m"`
}

func scoreTidalRange(in Input, cfg RangeConfig) outcome {
	if in.Tide == nil {
		return neutralOutcome("no tide data", "Tide data unavailable; assuming an average exchange.")
	}

	maxRange := cfg.MaxRangeM
	if maxRange <= 0 {
		maxRange = 5.0
	}

	x := clamp(in.Tide.TidalRangeM, 0, maxRange) / maxRange
	var score float64
	var label string
	if cfg.Inverted {
		score = maxScore * math.Pow(1-x, 0.8)
		label = "neap-favoring"
	} else {
		score = maxScore * math.Pow(x, 0.8)
		label = "spring-favoring"
	}

	return newOutcome(fmt.Sprintf("%.1f m exchange", in.Tide.TidalRangeM), score,
		fmt.Sprintf("Range scored %s against a %.1f m reference exchange.", label, maxRange))
}

// Interaction-term constants. These combine raw factor scores before
// weighting; the combined key replaces the raw keys in the species' factor map.
const (
	lingcodEbbBonus = 0.5
	chumEbbBonus    = 0.5
)

// lingcodTidalDynamics combines slack proximity with exchange size:
//
//	dynamics = slack * (0.5 + 0.05*range) + ebbBonus
//
// A big exchange makes the short slack window more productive, and lingcod
// bite best as the ebb dies.
func lingcodTidalDynamics(slack, rng outcome, ebbing bool) outcome {
	s := slack.result.Score * (0.5 + 0.05*rng.result.Score)
	if ebbing {
		s += lingcodEbbBonus
	}
	return newOutcome("tidal dynamics", s,
		fmt.Sprintf("Slack %.1f with %.1f range leverage.", slack.result.Score, rng.result.Score))
}

// chumTidalMovement blends current, range and direction preference:
//
//	movement = 0.5*current + 0.3*range + 0.2*direction (+ ebb bonus)
//
// Chum stage off river mouths on the falling tide, so the ebb both raises the
// direction score and adds a flat bonus.
func chumTidalMovement(current, rng outcome, ebbing bool) outcome {
	direction := 5.0
	if ebbing {
		direction = 8.0
	}
	s := 0.5*current.result.Score + 0.3*rng.result.Score + 0.2*direction
	if ebbing {
		s += chumEbbBonus
	}
	return newOutcome("tidal movement", s,
		fmt.Sprintf("Current %.1f, range %.1f, direction %.1f.", current.result.Score, rng.result.Score, direction))
}
