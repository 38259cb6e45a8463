// Package explain holds the static human-readable text keyed by species and
// factor: what each factor measures, why it matters for the species, and the
// tiered recommendation selected from a factor's score. All lookups are pure
// and tolerant of unknown keys.
package explain

import (
	"fmt"

	"reelcaster/internal/types"
)

// Tier is the four-step quality band shared by factor recommendations and
// the overall score label. Thresholds are uniform across factors and species.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierPoor      Tier = "poor"
)

const (
	tierExcellentFloor = 8.0
	tierGoodFloor      = 6.0
	tierFairFloor      = 4.0
)

// TierForScore maps a 0-10 score to its tier.
func TierForScore(score float64) Tier {
	switch {
	case score >= tierExcellentFloor:
		return TierExcellent
	case score >= tierGoodFloor:
		return TierGood
	case score >= tierFairFloor:
		return TierFair
	default:
		return TierPoor
	}
}

// FactorExplanation is the static text for one (species, factor) pair.
type FactorExplanation struct {
	Title           string          `json:"title"`
	Summary         string          `json:"summary"`
	WhyItMatters    string          `json:"why_it_matters"`
	HowCalculated   string          `json:"how_calculated,omitempty"`
	ScientificBasis string          `json:"scientific_basis,omitempty"`
	ScoringRanges   []ScoringRange  `json:"scoring_ranges,omitempty"`
	Recommendations map[Tier]string `json:"recommendations"`
}

// ScoringRange maps a slice of the 0-10 scale to what it means for a factor.
type ScoringRange struct {
	Range   string `json:"range"`
	Meaning string `json:"meaning"`
}

// tierRanges builds the standard four-band range list from short meanings.
func tierRanges(excellent, good, fair, poor string) []ScoringRange {
	return []ScoringRange{
		{Range: "8.0-10", Meaning: excellent},
		{Range: "6.0-7.9", Meaning: good},
		{Range: "4.0-5.9", Meaning: fair},
		{Range: "0-3.9", Meaning: poor},
	}
}

// SpeciesOverview is the species-level explanation entry: display name, model
// overview and the prose context around the numeric weight table. Weights
// themselves live on the engine profile; WeightRationale explains why each
// factor carries the weight it does.
type SpeciesOverview struct {
	DisplayName     string `json:"display_name"`
	Overview        string `json:"overview"`
	BestConditions  string `json:"best_conditions"`
	WorstConditions string `json:"worst_conditions"`

	WeightRationale map[types.FactorKey]string `json:"weight_rationale,omitempty"`
}

// OverviewFor resolves the species-level overview, falling back to the
// generic entry for unrecognized identifiers.
func OverviewFor(species types.Species) SpeciesOverview {
	sp := types.NormalizeSpecies(string(species))
	if o, ok := speciesOverviews[sp]; ok {
		return o
	}
	return genericOverview
}

// RationaleFor returns the weight rationale for one factor. Species without
// specific text fall back to the factor's base summary so every weight in a
// profile has something to say for itself.
func RationaleFor(species types.Species, key types.FactorKey) string {
	if r, ok := OverviewFor(species).WeightRationale[key]; ok {
		return r
	}
	if ex, ok := ForFactor(species, key); ok {
		return ex.Summary
	}
	return ""
}

// ScoreLabel is the presentation tag for an overall score.
type ScoreLabel struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// SpeciesExplanations resolves the full explanation set for a species:
// the shared base table with the species' overrides applied. Unknown species
// identifiers resolve to the base table alone, never to an empty map.
func SpeciesExplanations(species types.Species) map[types.FactorKey]FactorExplanation {
	sp := types.NormalizeSpecies(string(species))

	out := make(map[types.FactorKey]FactorExplanation, len(baseExplanations))
	for key, ex := range baseExplanations {
		out[key] = ex
	}
	for key, ex := range speciesOverrides[sp] {
		out[key] = ex
	}
	return out
}

// ForFactor resolves the explanation for one factor, species overrides first.
// The boolean reports whether any entry exists; callers must handle absence.
func ForFactor(species types.Species, key types.FactorKey) (FactorExplanation, bool) {
	sp := types.NormalizeSpecies(string(species))
	if ex, ok := speciesOverrides[sp][key]; ok {
		return ex, true
	}
	ex, ok := baseExplanations[key]
	return ex, ok
}

// RecommendationForScore selects the tiered recommendation text for a factor
// at a given score. Factors with no entry get a generic line rather than an
// empty string.
func RecommendationForScore(species types.Species, key types.FactorKey, score float64) string {
	tier := TierForScore(score)
	if ex, ok := ForFactor(species, key); ok {
		if rec, ok := ex.Recommendations[tier]; ok {
			return rec
		}
	}
	return fmt.Sprintf("Conditions for this factor are %s right now.", tier)
}

// LabelForScore maps an overall score to its display label and color tag.
func LabelForScore(score float64) ScoreLabel {
	switch TierForScore(score) {
	case TierExcellent:
		return ScoreLabel{Label: "Excellent", Color: "green"}
	case TierGood:
		return ScoreLabel{Label: "Good", Color: "teal"}
	case TierFair:
		return ScoreLabel{Label: "Fair", Color: "amber"}
	default:
		return ScoreLabel{Label: "Poor", Color: "red"}
	}
}
