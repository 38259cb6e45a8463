package scoring

import (
	"fmt"
	"math"
	"time"

	"reelcaster/internal/types"
)

// SeasonalityConfig shapes the bell curve over day-of-year for one species.
type SeasonalityConfig struct {
	CenterDay  int     `yaml:"center_day"`
	SpreadDays float64 `yaml:"spread_days"`
	Peak       float64 `yaml:"peak"`

	// OffYearRule gates run-cycle species to a floor (possibly zero) on
	// off years before the curve applies.
	OffYear OffYearRule `yaml:"off_year,omitempty"`
}

// OffYearRule describes run-cycle gating for species with alternating runs.
type OffYearRule string

const (
	OffYearNone      OffYearRule = ""
	OffYearEvenZero  OffYearRule = "even_zero"  // pink: no meaningful even-year run
	OffYearEvenFloor OffYearRule = "even_floor" // sockeye: reduced but present
)

const offYearFloorFraction = 0.2

// scoreSeasonality applies the species' run-timing bell curve:
//
//	score = peak * exp(-((day - center)^2) / (2*spread^2))
//
// Run-cycle species gate to a floor on off years before the curve applies.
func scoreSeasonality(t time.Time, cfg SeasonalityConfig) outcome {
	day := float64(t.YearDay())
	peak := cfg.Peak
	if peak <= 0 || peak > maxScore {
		peak = maxScore
	}

	// Distance on a circular year: day 5 is close to day 360.
	d := math.Abs(day - float64(cfg.CenterDay))
	if d > 182.5 {
		d = 365 - d
	}

	score := peak * gaussian(d, 0, cfg.SpreadDays)

	label := "off-season"
	switch {
	case d <= cfg.SpreadDays:
		label = "peak run window"
	case d <= 2*cfg.SpreadDays:
		label = "shoulder season"
	}

	switch cfg.OffYear {
	case OffYearEvenZero:
		if t.Year()%2 == 0 {
			return newOutcome("off-year", 0, "Even-year cycle: no meaningful run; seasonality gated to zero.")
		}
	case OffYearEvenFloor:
		if t.Year()%2 == 0 {
			score *= offYearFloorFraction
			label = "off-year run"
		}
	}

	return newOutcome(label, score,
		fmt.Sprintf("Day %d of the year, %.0f days from the run peak.", int(day), d))
}

// Light/time curve tuning.
const (
	// crepuscularSpreadMin controls how fast the dawn/dusk bonus decays.
	crepuscularSpreadMin = 120.0
	middayBase           = 3.0
	nightBase            = 2.0
	crepuscularRange     = 7.0
	cloudBoostMax        = 2.5
)

// scoreLightTime applies the crepuscular curve keyed to actual sunrise and
// sunset: highest within an hour or two of either transition, low at solar
// noon and in deep night. Cloud cover additively boosts bright midday scores
// since overcast compensates for high sun.
func scoreLightTime(in Input) outcome {
	sunrise, sunset := in.Context.Sunrise, in.Context.Sunset
	if sunrise.IsZero() || sunset.IsZero() {
		return neutralOutcome("unknown light", "Sunrise/sunset unavailable; assuming average light conditions.")
	}

	t := in.Sample.Timestamp
	dawnDist := math.Abs(t.Sub(sunrise).Minutes())
	duskDist := math.Abs(t.Sub(sunset).Minutes())
	d := math.Min(dawnDist, duskDist)

	// Daytime is between sunrise and sunset; everything else is night.
	isDay := t.After(sunrise) && t.Before(sunset)

	base := nightBase
	label := "night"
	if isDay {
		base = middayBase
		label = "midday"
	}
	if d <= 120 {
		// Inside the transition window the day/night distinction is moot;
		// pre-dawn scores like early morning.
		base = middayBase
		if dawnDist <= duskDist {
			label = "dawn window"
		} else {
			label = "dusk window"
		}
	}

	score := base + crepuscularRange*gaussian(d, 0, crepuscularSpreadMin)

	desc := fmt.Sprintf("%.0f minutes from the nearest light transition.", d)
	if isDay && d > 120 {
		// Overcast softens bright midday light.
		boost := cloudBoostMax * clamp(in.Sample.CloudCoverPercent, 0, 100) / 100
		score += boost
		if boost > 1 {
			desc = fmt.Sprintf("Midday with %.0f%% cloud cover softening the light.", in.Sample.CloudCoverPercent)
		}
	}

	return newOutcome(label, score, desc)
}

// Solunar band scores: major and minor periods map to fixed ranges, with a
// near-period shoulder, per the discrete-banded model.
const (
	solunarMajorScore   = 10.0
	solunarMinorScore   = 7.5
	solunarNearScore    = 6.0
	solunarBetweenScore = 4.0
	solunarNearWindow   = time.Hour
)

func scoreSolunar(in Input) outcome {
	windows := in.Context.Solunar
	if len(windows) == 0 {
		return neutralOutcome("no solunar data", "Lunar period data unavailable; assuming between periods.")
	}

	t := in.Sample.Timestamp
	best := solunarBetweenScore
	label := "between periods"

	for _, w := range windows {
		inside := !t.Before(w.Start) && !t.After(w.End)
		near := !inside &&
			(t.After(w.Start.Add(-solunarNearWindow)) && t.Before(w.End.Add(solunarNearWindow)))

		switch {
		case inside && w.Kind == types.SolunarMajor && best < solunarMajorScore:
			best, label = solunarMajorScore, "major period"
		case inside && w.Kind == types.SolunarMinor && best < solunarMinorScore:
			best, label = solunarMinorScore, "minor period"
		case near && best < solunarNearScore:
			best, label = solunarNearScore, "near period"
		}
	}

	return newOutcome(label, best, "Feeding windows derived from lunar transit and rise/set times.")
}
