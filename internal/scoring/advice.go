package scoring

import (
	"fmt"
	"sort"

	"reelcaster/internal/types"
)

// Score bands for summary and approach text, on the 0-10 scale. These mirror
// the display bands (80/65/50/35 on a 0-100 scale).
const (
	bandExcellent = 8.0
	bandGood      = 6.5
	bandFair      = 5.0
	bandSlow      = 3.5
)

// Insight ties one factor to a short explanation of its pull on the total.
type Insight struct {
	Factor types.FactorKey `json:"factor"`
	Score  float64         `json:"score"`
	Text   string          `json:"text"`
}

// Advice is the derived narrative for a scored tick: qualitative summary,
// tactical approach, the strongest and weakest factors, and any timing,
// depth, technique or safety guidance the factor map supports.
type Advice struct {
	Summary        string    `json:"summary"`
	BestApproach   string    `json:"best_approach"`
	TopFactors     []Insight `json:"top_factors,omitempty"`
	BottomFactors  []Insight `json:"bottom_factors,omitempty"`
	TimingAdvice   string    `json:"timing_advice,omitempty"`
	DepthAdvice    string    `json:"depth_advice,omitempty"`
	Technique      string    `json:"technique,omitempty"`
	SafetyWarnings []string  `json:"safety_warnings,omitempty"`
}

// Insight thresholds: factors scoring at least 6 qualify as strengths,
// below 6 as weaknesses; the middle of the pack is omitted entirely.
const (
	insightTopFloor  = 6.0
	insightWarnScore = 2.0
	insightLimit     = 3
)

// BuildAdvice derives the narrative recommendation set from an overall score
// and its factor map. Pure and deterministic: identical inputs produce
// identical advice.
func BuildAdvice(species types.Species, total float64, factors map[types.FactorKey]types.FactorResult) Advice {
	a := Advice{
		Summary:      summaryForBand(total),
		BestApproach: approachForBand(total),
	}

	a.TopFactors, a.BottomFactors = factorInsights(factors)

	if f, ok := factors[types.FactorLightTime]; ok {
		switch {
		case f.Score >= 8:
			a.TimingAdvice = "You are inside a prime light window; fish it hard while it lasts."
		case f.Score < 4:
			a.TimingAdvice = "Flat light period; plan around the next dawn or dusk transition."
		}
	}
	if a.TimingAdvice == "" {
		if f, ok := factors[types.FactorSolunar]; ok && f.Score >= 8 {
			a.TimingAdvice = "A major solunar period is open; feeding activity should spike."
		}
	}

	if f, ok := factors[types.FactorWaterTemp]; ok {
		switch {
		case f.Score >= 8:
			a.DepthAdvice = "Water temperature sits in the comfort band; fish should hold at typical depths."
		case f.Score < 4:
			a.DepthAdvice = "Temperature is off the band; probe deeper, cooler water."
		}
	}
	if a.DepthAdvice == "" {
		if f, ok := factors[types.FactorTidalSlope]; ok && f.Score >= 8 {
			a.DepthAdvice = "Slack water: gear fishes vertical, so work the bottom structure directly."
		}
	}

	a.Technique = techniqueFor(species, factors)

	for _, key := range []types.FactorKey{types.FactorSeaState, types.FactorPrecipitation, types.FactorRetrievalSafety} {
		if f, ok := factors[key]; ok && f.Score <= insightWarnScore {
			a.SafetyWarnings = append(a.SafetyWarnings,
				fmt.Sprintf("%s conditions are marginal (%.1f/10); reassess before launching.", factorDisplayName(key), f.Score))
		}
	}

	return a
}

// Strategy flattens the advice into the ordered string list carried on
// ScoreResult.
func (a Advice) Strategy() []string {
	var out []string
	out = append(out, a.SafetyWarnings...)
	out = append(out, a.Summary, a.BestApproach)
	for _, s := range []string{a.TimingAdvice, a.DepthAdvice, a.Technique} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func summaryForBand(total float64) string {
	switch {
	case total >= bandExcellent:
		return "Excellent conditions: every major factor lines up. Days like this are rare; go."
	case total >= bandGood:
		return "Good conditions: most factors favor the bite with only minor drags on the score."
	case total >= bandFair:
		return "Fair conditions: a workable window if you fish the strong factors deliberately."
	case total >= bandSlow:
		return "Slow conditions: expect long gaps between bites; shorten the trip or wait."
	default:
		return "Poor conditions: the model sees little working in your favor right now."
	}
}

func approachForBand(total float64) string {
	switch {
	case total >= bandExcellent:
		return "Cover your best water first and stay mobile; aggressive presentations will get eaten."
	case total >= bandGood:
		return "Fish proven structure with confidence baits, and give each spot a fair soak."
	case total >= bandFair:
		return "Slow down and fish methodically; downsize gear and lean on scent."
	case total >= bandSlow:
		return "Pick one high-percentage spot, fish it patiently, and leave if nothing shows in an hour."
	default:
		return "If you go anyway, treat it as scouting: mark bait, test water, and save fuel."
	}
}

func factorInsights(factors map[types.FactorKey]types.FactorResult) (top, bottom []Insight) {
	keys := make([]types.FactorKey, 0, len(factors))
	for k := range factors {
		keys = append(keys, k)
	}
	// Deterministic ordering before the score sort keeps tie-breaks stable.
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	sort.SliceStable(keys, func(i, j int) bool {
		return factors[keys[i]].Score > factors[keys[j]].Score
	})

	for _, k := range keys {
		f := factors[k]
		if f.Score >= insightTopFloor {
			if len(top) < insightLimit {
				top = append(top, Insight{
					Factor: k,
					Score:  f.Score,
					Text:   fmt.Sprintf("%s is working for you (%.1f/10): %s", factorDisplayName(k), f.Score, f.Value),
				})
			}
			continue
		}
		// Factors below the floor fill the bottom bucket from the weak end.
	}
	for i := len(keys) - 1; i >= 0; i-- {
		f := factors[keys[i]]
		if f.Score >= insightTopFloor {
			break
		}
		if len(bottom) < insightLimit {
			bottom = append(bottom, Insight{
				Factor: keys[i],
				Score:  f.Score,
				Text:   fmt.Sprintf("%s is holding the score down (%.1f/10): %s", factorDisplayName(keys[i]), f.Score, f.Value),
			})
		}
	}
	return top, bottom
}

// speciesTechniques carries species-specific tactical text; species not
// listed fall back to generic technique advice.
var speciesTechniques = map[types.Species]string{
	types.SpeciesChinook: "Troll deep with flasher and spoon or anchovy; chinook hold tight to bait at depth.",
	types.SpeciesCoho:    "Run shallow, fast and flashy; coho chase in the top thirty feet.",
	types.SpeciesHalibut: "Anchor on the flat through slack and fish big scented baits right on bottom.",
	types.SpeciesLingcod: "Jig large swimbaits over rock as the ebb dies; hold bottom contact.",
	types.SpeciesCrab:    "Set pots across the current line with fresh bait and let the flood carry scent.",
}

func techniqueFor(species types.Species, factors map[types.FactorKey]types.FactorResult) string {
	if t, ok := speciesTechniques[species]; ok {
		return t
	}
	if f, ok := factors[types.FactorTidalCurrent]; ok && f.Score >= 7 {
		return "Work presentations with the current; moving water concentrates feeding fish."
	}
	return "Match local bait and fish structure edges; adjust depth until you find life."
}

func factorDisplayName(key types.FactorKey) string {
	switch key {
	case types.FactorSeasonality:
		return "Run timing"
	case types.FactorLightTime:
		return "Light"
	case types.FactorPressureTrend:
		return "Pressure trend"
	case types.FactorTidalCurrent:
		return "Tidal current"
	case types.FactorTidalSlope:
		return "Slack proximity"
	case types.FactorTidalRange:
		return "Tidal range"
	case types.FactorTidalDynamics:
		return "Tidal dynamics"
	case types.FactorTidalMovement:
		return "Tidal movement"
	case types.FactorSeaState:
		return "Sea state"
	case types.FactorWaterTemp:
		return "Water temperature"
	case types.FactorPrecipitation:
		return "Precipitation"
	case types.FactorVisibility:
		return "Visibility"
	case types.FactorSolunar:
		return "Solunar"
	case types.FactorCatchReports:
		return "Catch reports"
	case types.FactorScentCurrent:
		return "Scent hydraulics"
	case types.FactorMoltQuality:
		return "Molt quality"
	case types.FactorNocturnalFlood:
		return "Night flood"
	case types.FactorRetrievalSafety:
		return "Retrieval safety"
	default:
		return string(key)
	}
}
