package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelcaster/internal/types"
)

func factorMap(scores map[types.FactorKey]float64) map[types.FactorKey]types.FactorResult {
	out := make(map[types.FactorKey]types.FactorResult, len(scores))
	for k, s := range scores {
		out[k] = types.FactorResult{Value: "test", Score: s}
	}
	return out
}

func TestSummaryBands(t *testing.T) {
	cases := []struct {
		total float64
		want  string
	}{
		{9.1, "Excellent"},
		{7.0, "Good"},
		{5.5, "Fair"},
		{4.0, "Slow"},
		{1.5, "Poor"},
	}
	for _, tc := range cases {
		a := BuildAdvice(types.SpeciesGeneric, tc.total, nil)
		assert.Contains(t, a.Summary, tc.want, "total %.1f", tc.total)
		assert.NotEmpty(t, a.BestApproach)
	}
}

func TestInsightBuckets(t *testing.T) {
	factors := factorMap(map[types.FactorKey]float64{
		types.FactorSeasonality:   9.5,
		types.FactorTidalCurrent:  8.0,
		types.FactorPressureTrend: 7.0,
		types.FactorWaterTemp:     6.5,
		types.FactorSeaState:      5.0,
		types.FactorPrecipitation: 2.5,
	})

	a := BuildAdvice(types.SpeciesChinook, 6.8, factors)

	require.Len(t, a.TopFactors, insightLimit, "top bucket is capped")
	assert.Equal(t, types.FactorSeasonality, a.TopFactors[0].Factor)
	assert.Equal(t, types.FactorTidalCurrent, a.TopFactors[1].Factor)

	require.NotEmpty(t, a.BottomFactors)
	assert.Equal(t, types.FactorPrecipitation, a.BottomFactors[0].Factor,
		"bottom bucket fills from the weakest factor")
	for _, ins := range a.BottomFactors {
		assert.Less(t, ins.Score, insightTopFloor)
	}
}

func TestInsightOrderingIsStable(t *testing.T) {
	factors := factorMap(map[types.FactorKey]float64{
		types.FactorLightTime:    8.0,
		types.FactorTidalCurrent: 8.0,
		types.FactorSeasonality:  8.0,
	})

	first := BuildAdvice(types.SpeciesGeneric, 8.0, factors)
	for i := 0; i < 10; i++ {
		again := BuildAdvice(types.SpeciesGeneric, 8.0, factors)
		assert.Equal(t, first.TopFactors, again.TopFactors, "ties must break deterministically")
	}
}

func TestTimingAndDepthAdvice(t *testing.T) {
	primeLight := factorMap(map[types.FactorKey]float64{
		types.FactorLightTime: 9.0,
		types.FactorWaterTemp: 9.0,
	})
	a := BuildAdvice(types.SpeciesCoho, 7.5, primeLight)
	assert.Contains(t, a.TimingAdvice, "prime light window")
	assert.Contains(t, a.DepthAdvice, "comfort band")

	flatLight := factorMap(map[types.FactorKey]float64{
		types.FactorLightTime: 3.0,
		types.FactorWaterTemp: 3.0,
	})
	a = BuildAdvice(types.SpeciesCoho, 4.0, flatLight)
	assert.Contains(t, a.TimingAdvice, "dawn or dusk")
	assert.Contains(t, a.DepthAdvice, "deeper")

	solunarOnly := factorMap(map[types.FactorKey]float64{
		types.FactorSolunar:    10.0,
		types.FactorTidalSlope: 9.0,
	})
	a = BuildAdvice(types.SpeciesHalibut, 7.0, solunarOnly)
	assert.Contains(t, a.TimingAdvice, "solunar")
	assert.Contains(t, a.DepthAdvice, "Slack water")
}

func TestTechniqueFallsBackForUnlistedSpecies(t *testing.T) {
	moving := factorMap(map[types.FactorKey]float64{types.FactorTidalCurrent: 8.0})
	still := factorMap(map[types.FactorKey]float64{types.FactorTidalCurrent: 2.0})

	assert.Contains(t, BuildAdvice(types.SpeciesRockfish, 6.0, moving).Technique, "current")
	assert.Contains(t, BuildAdvice(types.SpeciesRockfish, 6.0, still).Technique, "structure")
	assert.Contains(t, BuildAdvice(types.SpeciesCrab, 6.0, still).Technique, "pots")
}

func TestSafetyWarningsSurfaceInAdvice(t *testing.T) {
	factors := factorMap(map[types.FactorKey]float64{
		types.FactorSeaState:        0.0,
		types.FactorRetrievalSafety: 1.5,
		types.FactorSeasonality:     9.0,
	})

	a := BuildAdvice(types.SpeciesCrab, 3.0, factors)
	require.Len(t, a.SafetyWarnings, 2)

	strategy := a.Strategy()
	require.GreaterOrEqual(t, len(strategy), 4)
	assert.Contains(t, strategy[0], "marginal", "safety warnings lead the strategy list")
}
