package scoring

import (
	"fmt"
	"math"
	"time"
)

// Physics helper thresholds. Band centers and decay directions follow the
// documented model shapes; exact constants are tunable against catch-outcome
// data via the species tuning file.
const (
	// Scent plume dispersal works best in a moderate current band.
	scentBandLowKt  = 0.8
	scentBandHighKt = 1.5
	scentBandMaxKt  = 3.0
	trapRollRiskKt  = 2.0

	// Hard ceilings for safe pot/trap retrieval.
	retrievalWindCeilingKmh = 35.0
	retrievalWaveCeilingM   = 2.0
	retrievalCurrentCeilKt  = 2.5

	// Night overlap on a flood tide adds up to 30% to crab activity.
	nocturnalFloodMaxBonus = 0.3
)

// ScentHydraulicsResult reports how well the current regime disperses bait
// scent over a soak window.
type ScentHydraulicsResult struct {
	Score                 float64 `json:"score"`
	AverageCurrentSpeedKt float64 `json:"average_current_speed_kt"`
	Recommendation        string  `json:"recommendation"`
	TrapRollRisk          bool    `json:"trap_roll_risk"`
}

// ScentHydraulics scores the mean current speed over a soak window against
// the scent-dispersal band. The band is gaussian-like: peak quality between
// 0.8 and 1.5 knots, decaying to zero near slack and above ~3 knots. Currents
// above the trap-roll threshold flag TrapRollRisk.
//
// An empty input yields a neutral score rather than an error.
func ScentHydraulics(currentSpeeds []float64) ScentHydraulicsResult {
	if len(currentSpeeds) == 0 {
		return ScentHydraulicsResult{
			Score:          neutralScore,
			Recommendation: "No current data for the soak window; assume average scent dispersal.",
		}
	}

	var sum float64
	for _, v := range currentSpeeds {
		sum += math.Abs(v)
	}
	avg := sum / float64(len(currentSpeeds))
	avg = clamp(avg, 0, 10)

	center := (scentBandLowKt + scentBandHighKt) / 2
	spread := (scentBandHighKt - scentBandLowKt) // wide enough to hold the band near peak
	score := maxScore * gaussian(avg, center, spread/1.6)
	if avg > scentBandMaxKt {
		score = 0
	}

	res := ScentHydraulicsResult{
		Score:                 clampScore(score),
		AverageCurrentSpeedKt: avg,
		TrapRollRisk:          avg > trapRollRiskKt,
	}

	switch {
	case res.TrapRollRisk:
		res.Recommendation = fmt.Sprintf("Average current %.1f kt risks rolling pots; add weight or wait for a softer exchange.", avg)
	case avg < scentBandLowKt:
		res.Recommendation = fmt.Sprintf("Light current (%.1f kt) limits scent spread; use extra bait or a longer soak.", avg)
	case avg <= scentBandHighKt:
		res.Recommendation = fmt.Sprintf("Current %.1f kt is in the ideal scent band; pots should fish well.", avg)
	default:
		res.Recommendation = fmt.Sprintf("Current %.1f kt is above the ideal band; scent trail narrows downstream.", avg)
	}

	return res
}

// MoltQualityResult maps water temperature onto expected shell condition.
type MoltQualityResult struct {
	Score   float64 `json:"score"`
	Quality string  `json:"quality"`
	Advice  string  `json:"advice"`
}

// MoltQualityIndex scores crab meat quality from water temperature.
// 13-17C favors hard post-molt crab; 10-13C is the molting window with soft,
// light crab; outside both bands crab are pre-molt or dormant. Transitions at
// band edges blend over one degree to avoid discontinuities at the boundary
// temperatures.
func MoltQualityIndex(waterTempC float64) MoltQualityResult {
	t := clamp(waterTempC, -2, 35)

	const (
		moltLow   = 10.0
		moltHigh  = 13.0
		postHigh  = 17.0
		edgeBlend = 1.0

		postMoltScore = 9.0
		moltingScore  = 3.0
		dormantScore  = 5.5
	)

	var score float64
	var quality, advice string

	switch {
	case t < moltLow-edgeBlend:
		score = dormantScore
		quality = "dormant"
		advice = "Cold water keeps crab slow and buried; expect modest pots."
	case t < moltLow:
		score = blend(dormantScore, moltingScore, (t-(moltLow-edgeBlend))/edgeBlend)
		quality = "pre-molt"
		advice = "Water is warming toward the molt; quality is dropping."
	case t < moltHigh:
		score = moltingScore
		quality = "molting"
		advice = "Peak molt window; many soft-shell crab, consider another target."
	case t < moltHigh+edgeBlend:
		score = blend(moltingScore, postMoltScore, (t-moltHigh)/edgeBlend)
		quality = "hardening"
		advice = "Shells are hardening; quality improves by the week."
	case t <= postHigh:
		score = postMoltScore
		quality = "post-molt"
		advice = "Hard, full crab; prime condition for the table."
	case t <= postHigh+edgeBlend:
		score = blend(postMoltScore, dormantScore, (t-postHigh)/edgeBlend)
		quality = "pre-molt"
		advice = "Warm water pushes crab toward the next molt cycle."
	default:
		score = dormantScore
		quality = "pre-molt"
		advice = "Unusually warm water; crab condition is unpredictable."
	}

	return MoltQualityResult{
		Score:   clampScore(score),
		Quality: quality,
		Advice:  advice,
	}
}

// NocturnalFloodResult is the activity multiplier from night-time flood overlap.
type NocturnalFloodResult struct {
	Multiplier float64 `json:"multiplier"`
	Advice     string  `json:"advice"`
}

// NocturnalFloodBonus computes an activity multiplier in [1.0, 1.3] that grows
// with the fraction of the soak window falling between sunset and sunrise
// while the tide floods. Day soaks and ebb tides return exactly 1.0.
func NocturnalFloodBonus(start time.Time, soakDurationHours float64, sunset, sunrise time.Time, isFlood bool) NocturnalFloodResult {
	if !isFlood || soakDurationHours <= 0 {
		return NocturnalFloodResult{
			Multiplier: 1.0,
			Advice:     "No night-flood overlap; score the soak on current and bait alone.",
		}
	}

	soak := time.Duration(soakDurationHours * float64(time.Hour))
	end := start.Add(soak)

	// Night runs from sunset to the following sunrise.
	nightStart := sunset
	nightEnd := sunrise
	if !nightEnd.After(nightStart) {
		nightEnd = nightEnd.Add(24 * time.Hour)
	}

	overlap := overlapDuration(start, end, nightStart, nightEnd)
	// A soak can straddle two nights; check the previous night too.
	prev := overlapDuration(start, end, nightStart.Add(-24*time.Hour), nightEnd.Add(-24*time.Hour))
	if prev > overlap {
		overlap = prev
	}

	frac := clamp(float64(overlap)/float64(soak), 0, 1)
	mult := 1.0 + nocturnalFloodMaxBonus*frac

	res := NocturnalFloodResult{Multiplier: mult}
	switch {
	case frac >= 0.75:
		res.Advice = "Soak rides the flood through the night; expect the best pots of the cycle."
	case frac > 0:
		res.Advice = fmt.Sprintf("About %.0f%% of the soak overlaps the night flood; a later drop would gain more.", frac*100)
	default:
		res.Advice = "Flood tide but a daytime soak; no nocturnal bonus."
	}
	return res
}

func overlapDuration(aStart, aEnd, bStart, bEnd time.Time) time.Duration {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// RetrievalSafetyResult reports whether gear can be hauled safely.
type RetrievalSafetyResult struct {
	Score           float64  `json:"score"`
	IsSafe          bool     `json:"is_safe"`
	Warnings        []string `json:"warnings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// RetrievalSafety checks wind, current and wave height against hard ceilings
// for safe gear retrieval. IsSafe is false when any ceiling is exceeded, and
// every violated threshold is reported, not just the first. The score decays
// smoothly as each input approaches its ceiling.
func RetrievalSafety(windSpeedKmh, currentKt, waveHeightM float64) RetrievalSafetyResult {
	wind := clamp(windSpeedKmh, 0, 200)
	current := clamp(math.Abs(currentKt), 0, 15)
	wave := clamp(waveHeightM, 0, 20)

	res := RetrievalSafetyResult{IsSafe: true}

	if wind > retrievalWindCeilingKmh {
		res.IsSafe = false
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Wind %.0f km/h exceeds the %.0f km/h retrieval ceiling.", wind, retrievalWindCeilingKmh))
	}
	if wave > retrievalWaveCeilingM {
		res.IsSafe = false
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Waves %.1f m exceed the %.1f m retrieval ceiling.", wave, retrievalWaveCeilingM))
	}
	if current > retrievalCurrentCeilKt {
		res.IsSafe = false
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Current %.1f kt exceeds the %.1f kt retrieval ceiling.", current, retrievalCurrentCeilKt))
	}

	if !res.IsSafe {
		res.Score = 0
		res.Recommendations = append(res.Recommendations,
			"Do not attempt retrieval; wait for conditions to drop below all ceilings.")
		return res
	}

	windTerm := smoothCeiling(wind, retrievalWindCeilingKmh, 2)
	waveTerm := smoothCeiling(wave, retrievalWaveCeilingM, 2)
	currTerm := smoothCeiling(current, retrievalCurrentCeilKt, 2)
	res.Score = clampScore(maxScore * windTerm * waveTerm * currTerm)

	switch {
	case res.Score >= 8:
		res.Recommendations = append(res.Recommendations, "Calm retrieval window; haul at leisure.")
	case res.Score >= 4:
		res.Recommendations = append(res.Recommendations, "Workable but building; haul sooner rather than later.")
	default:
		res.Recommendations = append(res.Recommendations, "Marginal conditions; haul only with an experienced crew.")
	}

	return res
}
