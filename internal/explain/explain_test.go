package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelcaster/internal/types"
)

func TestSpeciesExplanationsFallBackToBase(t *testing.T) {
	generic := SpeciesExplanations("nonexistent-species")
	require.NotEmpty(t, generic, "unknown species must resolve to the base table, never empty")
	assert.Len(t, generic, len(baseExplanations))

	chinook := SpeciesExplanations(types.SpeciesChinook)
	assert.Len(t, chinook, len(baseExplanations), "overrides replace entries, never add factor keys")
	assert.NotEqual(t,
		generic[types.FactorTidalCurrent].Summary,
		chinook[types.FactorTidalCurrent].Summary,
		"chinook carries its own tidal current text")
	assert.Equal(t,
		generic[types.FactorSolunar],
		chinook[types.FactorSolunar],
		"unoverridden factors come from the base table")
}

func TestSpeciesExplanationsNormalizesIdentifier(t *testing.T) {
	assert.Equal(t,
		SpeciesExplanations(types.SpeciesChinook),
		SpeciesExplanations("  King Salmon "),
	)
}

func TestForFactorResolution(t *testing.T) {
	ex, ok := ForFactor(types.SpeciesHalibut, types.FactorTidalSlope)
	require.True(t, ok)
	assert.Contains(t, ex.Summary, "halibut")

	ex, ok = ForFactor(types.SpeciesRockfish, types.FactorTidalSlope)
	require.True(t, ok)
	assert.NotContains(t, ex.Summary, "halibut", "species without an override get base text")

	_, ok = ForFactor(types.SpeciesChinook, "made-up-factor")
	assert.False(t, ok, "unknown factor keys report absence rather than panicking")
}

func TestEveryEntryCoversAllTiers(t *testing.T) {
	tiers := []Tier{TierExcellent, TierGood, TierFair, TierPoor}

	check := func(owner string, key types.FactorKey, ex FactorExplanation) {
		assert.NotEmpty(t, ex.Title, "%s/%s", owner, key)
		assert.NotEmpty(t, ex.Summary, "%s/%s", owner, key)
		for _, tier := range tiers {
			assert.NotEmpty(t, ex.Recommendations[tier], "%s/%s missing %s tier", owner, key, tier)
		}
	}

	for key, ex := range baseExplanations {
		check("base", key, ex)
	}
	for sp, overrides := range speciesOverrides {
		for key, ex := range overrides {
			check(string(sp), key, ex)
		}
	}
}

func TestBaseEntriesCarryCalculationDetail(t *testing.T) {
	for key, ex := range baseExplanations {
		assert.NotEmpty(t, ex.HowCalculated, "base/%s missing calculation text", key)
		require.Len(t, ex.ScoringRanges, 4, "base/%s", key)
		assert.Equal(t, "8.0-10", ex.ScoringRanges[0].Range, "base/%s", key)
		for _, r := range ex.ScoringRanges {
			assert.NotEmpty(t, r.Meaning, "base/%s range %s", key, r.Range)
		}
	}
}

func TestOverviewCoversEveryKnownSpecies(t *testing.T) {
	for _, sp := range types.KnownSpecies() {
		o := OverviewFor(sp)
		assert.NotEmpty(t, o.DisplayName, "%s", sp)
		assert.NotEmpty(t, o.Overview, "%s", sp)
		assert.NotEmpty(t, o.BestConditions, "%s", sp)
		assert.NotEmpty(t, o.WorstConditions, "%s", sp)
		assert.NotEmpty(t, o.WeightRationale, "%s carries no weight rationale", sp)
	}

	assert.Equal(t, genericOverview, OverviewFor("nonexistent-species"),
		"unknown identifiers resolve to the generic overview")
}

func TestRationaleFallsBackToFactorSummary(t *testing.T) {
	direct := RationaleFor(types.SpeciesHalibut, types.FactorTidalSlope)
	assert.Equal(t, speciesOverviews[types.SpeciesHalibut].WeightRationale[types.FactorTidalSlope], direct)

	fallback := RationaleFor(types.SpeciesHalibut, types.FactorLightTime)
	assert.Equal(t, baseExplanations[types.FactorLightTime].Summary, fallback,
		"factors without specific rationale fall back to the base summary")
}

func TestBaseTableCoversEveryFactorKey(t *testing.T) {
	for _, key := range []types.FactorKey{
		types.FactorSeasonality, types.FactorLightTime, types.FactorPressureTrend,
		types.FactorTidalCurrent, types.FactorTidalSlope, types.FactorTidalRange,
		types.FactorTidalDynamics, types.FactorTidalMovement, types.FactorSeaState,
		types.FactorWaterTemp, types.FactorPrecipitation, types.FactorVisibility,
		types.FactorSolunar, types.FactorCatchReports, types.FactorScentCurrent,
		types.FactorMoltQuality, types.FactorNocturnalFlood, types.FactorRetrievalSafety,
	} {
		_, ok := baseExplanations[key]
		assert.True(t, ok, "base table missing %s", key)
	}
}

func TestRecommendationTiers(t *testing.T) {
	cases := []struct {
		score float64
		tier  Tier
	}{
		{10, TierExcellent},
		{8.0, TierExcellent},
		{7.9, TierGood},
		{6.0, TierGood},
		{5.9, TierFair},
		{4.0, TierFair},
		{3.9, TierPoor},
		{0, TierPoor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, TierForScore(tc.score), "score %.1f", tc.score)
	}

	rec := RecommendationForScore(types.SpeciesChinook, types.FactorTidalCurrent, 9.0)
	assert.Equal(t, "Textbook trolling current. Work the seam edges at depth with the tide.", rec)

	rec = RecommendationForScore("nonexistent-species", "made-up-factor", 9.0)
	assert.NotEmpty(t, rec, "lookup misses still return usable text")
}

func TestLabelForScore(t *testing.T) {
	assert.Equal(t, ScoreLabel{Label: "Excellent", Color: "green"}, LabelForScore(8.5))
	assert.Equal(t, ScoreLabel{Label: "Good", Color: "teal"}, LabelForScore(6.5))
	assert.Equal(t, ScoreLabel{Label: "Fair", Color: "amber"}, LabelForScore(4.5))
	assert.Equal(t, ScoreLabel{Label: "Poor", Color: "red"}, LabelForScore(2.0))
}
