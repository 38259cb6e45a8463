package scoring

import (
	"fmt"
	"math"
	"time"
)

// Pressure trend analysis window and thresholds (hPa over the window).
const (
	pressureWindowMin = 3 * time.Hour
	pressureWindowMax = 6 * time.Hour
	pressureRisingHPa = 1.5
	pressureRapidFall = -3.0

	pressureRisingScore    = 9.5
	pressureStableScore    = 8.0
	pressureSlowFallScore  = 5.0
	pressureRapidFallScore = 2.0
)

// scorePressureTrend analyzes the 3-6 hour pressure history. Rising pressure
// scores highest, stable high, slow fall mid, rapid fall lowest. Scores
// interpolate between bands so a barely-falling barometer is not punished
// like a storm front.
func scorePressureTrend(in Input) outcome {
	hist := in.Context.PressureHistory
	if len(hist) < 2 {
		return neutralOutcome("no trend data", "Insufficient pressure history; assuming a stable barometer.")
	}

	latest := hist[len(hist)-1]

	// Reference reading: the oldest sample within the 6h window, preferring
	// one at least 3h old.
	ref := hist[0]
	for _, r := range hist {
		age := latest.Time.Sub(r.Time)
		if age > pressureWindowMax {
			continue
		}
		if age >= pressureWindowMin {
			ref = r
			break
		}
		if latest.Time.Sub(ref.Time) > pressureWindowMax {
			ref = r
		}
	}
	if latest.Time.Sub(ref.Time) <= 0 {
		return neutralOutcome("no trend data", "Pressure history too short to establish a trend.")
	}

	delta := latest.HPa - ref.HPa

	var score float64
	var label string
	switch {
	case delta > pressureRisingHPa:
		score = pressureRisingScore
		label = "rising"
	case delta >= -pressureRisingHPa:
		// Stable band, leaning toward rising at the top edge.
		score = blend(pressureSlowFallScore+1.5, pressureStableScore, (delta+pressureRisingHPa)/(2*pressureRisingHPa))
		label = "stable"
	case delta >= pressureRapidFall:
		score = blend(pressureRapidFallScore, pressureSlowFallScore, (delta-pressureRapidFall)/(pressureRisingHPa*-1-pressureRapidFall))
		label = "falling"
	default:
		score = pressureRapidFallScore
		label = "falling fast"
	}

	return newOutcome(label, score,
		fmt.Sprintf("Pressure %+.1f hPa over %.1f hours.", delta, latest.Time.Sub(ref.Time).Hours()))
}

// SeaStateConfig sets the species-specific smooth-decay ceilings. Scores
// decay from calm toward zero at the ceilings; the hard safety ceilings in
// physics.go apply independently of the smooth curve.
type SeaStateConfig struct {
	WindCeilingKmh float64 `yaml:"wind_ceiling_kmh"`
	WaveCeilingM   float64 `yaml:"wave_ceiling_m"`
}

// scoreSeaState combines wind speed and wave height into one smooth-decay
// score. Conditions beyond either ceiling mark the outcome unsafe, which the
// engine turns into a total-score cap.
func scoreSeaState(in Input, cfg SeaStateConfig) outcome {
	windCeil := cfg.WindCeilingKmh
	if windCeil <= 0 {
		windCeil = retrievalWindCeilingKmh
	}
	waveCeil := cfg.WaveCeilingM
	if waveCeil <= 0 {
		waveCeil = retrievalWaveCeilingM
	}

	wind := clamp(in.Sample.WindSpeedKmh, 0, 200)
	windScore := maxScore * smoothCeiling(wind, windCeil, 1.5)

	score := windScore
	value := fmt.Sprintf("wind %.0f km/h", wind)
	desc := fmt.Sprintf("Wind %.0f km/h against a %.0f km/h ceiling.", wind, windCeil)

	var wave float64
	hasWave := in.Sample.WaveHeightM != nil
	if hasWave {
		wave = clamp(*in.Sample.WaveHeightM, 0, 20)
		waveScore := maxScore * smoothCeiling(wave, waveCeil, 1.5)
		score = math.Min(windScore, waveScore)
		value = fmt.Sprintf("wind %.0f km/h, waves %.1f m", wind, wave)
		desc = fmt.Sprintf("Wind %.0f km/h and %.1f m seas against %.0f km/h / %.1f m ceilings.", wind, wave, windCeil, waveCeil)
	}

	out := newOutcome(value, score, desc)
	if wind > windCeil {
		out.unsafe = true
		out.warnings = append(out.warnings,
			fmt.Sprintf("Wind %.0f km/h exceeds the %.0f km/h safe ceiling.", wind, windCeil))
	}
	if hasWave && wave > waveCeil {
		out.unsafe = true
		out.warnings = append(out.warnings,
			fmt.Sprintf("Waves %.1f m exceed the %.1f m safe ceiling.", wave, waveCeil))
	}
	return out
}

// TempBand is an optimal water-temperature band: full score inside
// [MinC, MaxC], decaying proportionally to distance outside it.
type TempBand struct {
	MinC     float64 `yaml:"min_c"`
	MaxC     float64 `yaml:"max_c"`
	FalloffC float64 `yaml:"falloff_c"`
}

// scoreWaterTemp scores the water temperature against the species band.
// Falls back to air temperature (flagged in the description) when the tide
// snapshot carries no water temperature.
func scoreWaterTemp(in Input, band TempBand) outcome {
	falloff := band.FalloffC
	if falloff <= 0 {
		falloff = 5
	}

	var temp float64
	source := "water"
	switch {
	case in.Tide != nil && in.Tide.WaterTempC != nil:
		temp = *in.Tide.WaterTempC
	default:
		// Air temperature is a poor proxy; degrade toward neutral rather
		// than scoring it at full confidence.
		return neutralOutcome("no water temp",
			"Water temperature unavailable; assuming mid-band conditions.")
	}
	temp = clamp(temp, -2, 35)

	var score float64
	switch {
	case temp >= band.MinC && temp <= band.MaxC:
		score = maxScore
	case temp < band.MinC:
		score = maxScore * (1 - (band.MinC-temp)/falloff)
	default:
		score = maxScore * (1 - (temp-band.MaxC)/falloff)
	}

	label := fmt.Sprintf("%.1f°C %s", temp, source)
	return newOutcome(label, score,
		fmt.Sprintf("Optimal band %.0f-%.0f°C.", band.MinC, band.MaxC))
}

// Precipitation bands (mm per tick). Light rain scores best: it breaks the
// surface and masks angler presence; heavy rain muddies and cools.
const (
	precipLightMM    = 2.0
	precipModerateMM = 6.0

	precipDryScore      = 8.0
	precipLightScore    = 9.0
	precipModerateScore = 5.0
	precipHeavyScore    = 2.0

	lightningCutoff = 60.0
)

func scorePrecipitation(in Input) outcome {
	mm := clamp(in.Sample.PrecipitationMM, 0, 500)

	var score float64
	var label string
	switch {
	case mm == 0:
		score, label = precipDryScore, "dry"
	case mm <= precipLightMM:
		score, label = precipLightScore, "light rain"
	case mm <= precipModerateMM:
		score, label = precipModerateScore, "moderate rain"
	default:
		score, label = precipHeavyScore, "heavy rain"
	}

	out := newOutcome(label, score, fmt.Sprintf("%.1f mm precipitation this tick.", mm))

	if in.Sample.LightningPotential != nil && *in.Sample.LightningPotential >= lightningCutoff {
		out.result.Score = 0
		out.result.Description = "Lightning potential in the area; stay off the water."
		out.unsafe = true
		out.warnings = append(out.warnings, "Elevated lightning potential; do not fish exposed water.")
	}

	return out
}

// Visibility bands (km). Mostly a navigation concern: clear air fishes
// normally, fog makes running to the grounds the problem rather than the bite.
const (
	visibilityClearKm   = 8.0
	visibilityReducedKm = 4.0
	visibilityFogKm     = 1.0

	visibilityClearScore   = 8.0
	visibilityReducedScore = 6.5
	visibilityPoorScore    = 4.0
	visibilityFogScore     = 1.5
)

func scoreVisibility(in Input) outcome {
	if in.Sample.VisibilityKm == nil {
		return neutralOutcome("no visibility data", "Visibility unavailable; assuming clear air.")
	}
	km := clamp(*in.Sample.VisibilityKm, 0, 100)

	var score float64
	var label string
	switch {
	case km >= visibilityClearKm:
		score, label = visibilityClearScore, "clear"
	case km >= visibilityReducedKm:
		score, label = visibilityReducedScore, "light haze"
	case km >= visibilityFogKm:
		score, label = visibilityPoorScore, "reduced"
	default:
		score, label = visibilityFogScore, "fog"
	}

	out := newOutcome(label, score, fmt.Sprintf("%.1f km visibility.", km))
	if km < visibilityFogKm {
		out.warnings = append(out.warnings,
			fmt.Sprintf("Visibility %.1f km; running open water in fog is a collision risk.", km))
	}
	return out
}
