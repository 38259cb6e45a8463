package scoring

import (
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelcaster/internal/types"
)

func TestDefaultWeightTablesSumToOne(t *testing.T) {
	for sp, p := range defaultProfiles() {
		var sum float64
		for _, w := range p.Weights {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, WeightSumTolerance, "species %s", sp)
		assert.NoError(t, p.Validate())
	}
}

func TestNewEngineReplacesInvalidTunedProfile(t *testing.T) {
	e := NewEngine(
		WithLogger(slog.New(slog.DiscardHandler)),
		WithTuning(TuningFile{
			Species: map[string]ProfileOverride{
				"chinook": {Weights: map[string]float64{"seasonality": 0.5, "light_time": 0.2}},
			},
		}),
	)

	p := e.Profile(types.SpeciesChinook)
	require.NoError(t, p.Validate(), "broken tuning must not survive construction")
	assert.Equal(t, types.SpeciesChinook, p.Species)
	assert.Equal(t, genericProfile().Weights, p.Weights)
}

func TestTuningOverridesApply(t *testing.T) {
	e := NewEngine(WithTuning(TuningFile{
		Species: map[string]ProfileOverride{
			"king": {Seasonality: &SeasonalityConfig{CenterDay: 230, SpreadDays: 50}},
		},
	}))

	p := e.Profile(types.SpeciesChinook)
	assert.Equal(t, 230, p.Seasonality.CenterDay, "aliases resolve before tuning applies")
	assert.Equal(t, 50.0, p.Seasonality.SpreadDays)
}

func TestUnknownSpeciesFallsBackToGeneric(t *testing.T) {
	e := NewEngine()
	in := dawnChinookInput()

	res := e.Score(in, "atlantic-cod")
	require.NotNil(t, res)
	assert.Equal(t, types.SpeciesGeneric, res.Species)
	assert.Equal(t, types.AlgorithmV1, res.AlgorithmVersion)
}

func TestSpeciesAliasesResolve(t *testing.T) {
	e := NewEngine()
	res := e.Score(dawnChinookInput(), "King Salmon")
	assert.Equal(t, types.SpeciesChinook, res.Species)
}

func TestScoreBoundsAcrossSpecies(t *testing.T) {
	e := NewEngine()
	inputs := []Input{
		dawnChinookInput(),
		galeInput(),
		{Sample: sampleAt(time.Date(2026, 1, 15, 2, 0, 0, 0, time.UTC))},
	}

	for sp := range e.Profiles() {
		for _, in := range inputs {
			res := e.Score(in, sp)
			assert.GreaterOrEqual(t, res.Total, 0.0, "species %s", sp)
			assert.LessOrEqual(t, res.Total, 10.0, "species %s", sp)
			assert.False(t, math.IsNaN(res.Total), "species %s", sp)
			for key, f := range res.Factors {
				assert.GreaterOrEqual(t, f.Score, 0.0, "%s/%s", sp, key)
				assert.LessOrEqual(t, f.Score, 10.0, "%s/%s", sp, key)
			}
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	e := NewEngine()
	in := dawnChinookInput()

	first := e.Score(in, types.SpeciesChinook)
	for i := 0; i < 5; i++ {
		again := e.Score(in, types.SpeciesChinook)
		assert.Equal(t, first.Total, again.Total)
		assert.Equal(t, first.Factors, again.Factors)
		assert.Equal(t, first.StrategyAdvice, again.StrategyAdvice)
	}
}

// A mid-August dawn tide change with rising pressure is about as good as
// chinook fishing gets; the model should agree.
func TestDawnChinookScenario(t *testing.T) {
	e := NewEngine()
	res := e.Score(dawnChinookInput(), types.SpeciesChinook)

	require.True(t, res.IsSafe)
	assert.True(t, res.IsInSeason)
	assert.GreaterOrEqual(t, res.Total, 7.0)
	assert.GreaterOrEqual(t, res.Factors[types.FactorLightTime].Score, 8.0)
	assert.GreaterOrEqual(t, res.Factors[types.FactorSeasonality].Score, 9.0)
	assert.Empty(t, res.SafetyWarnings)
}

func TestGaleCapsTotalRegardlessOfBite(t *testing.T) {
	e := NewEngine()
	res := e.Score(galeInput(), types.SpeciesChinook)

	require.False(t, res.IsSafe)
	assert.LessOrEqual(t, res.Total, SafetyCeiling)
	assert.NotEmpty(t, res.SafetyWarnings)
	require.NotEmpty(t, res.StrategyAdvice)
	assert.Contains(t, res.StrategyAdvice[0], "Unsafe conditions")
}

func TestMissingDataDegradesNotErrors(t *testing.T) {
	e := NewEngine()

	// Bare sample: no tide, no context, no optional readings.
	in := Input{Sample: types.EnvironmentalSample{
		Timestamp: time.Date(2025, 8, 8, 6, 0, 0, 0, time.UTC),
	}}

	for sp := range e.Profiles() {
		res := e.Score(in, sp)
		require.NotNil(t, res, "species %s", sp)
		assert.True(t, res.IsSafe, "missing data is not a safety violation for %s", sp)
		assert.GreaterOrEqual(t, res.Total, 0.0)
	}
}

func TestScoreVersionV1UsesLegacyFactorSet(t *testing.T) {
	e := NewEngine()
	in := dawnChinookInput()

	v1 := e.ScoreVersion(in, types.SpeciesChinook, types.AlgorithmV1)
	v2 := e.ScoreVersion(in, types.SpeciesChinook, types.AlgorithmV2)

	assert.Equal(t, types.AlgorithmV1, v1.AlgorithmVersion)
	assert.Equal(t, types.AlgorithmV2, v2.AlgorithmVersion)

	assert.NotContains(t, v1.Factors, types.FactorSolunar, "V1 never carries V2-only factors")
	assert.NotContains(t, v1.Factors, types.FactorCatchReports)
	assert.Contains(t, v2.Factors, types.FactorSolunar)

	// Legacy scoring keeps the species' own run timing.
	assert.InDelta(t,
		v2.Factors[types.FactorSeasonality].Score,
		v1.Factors[types.FactorSeasonality].Score, 1e-9)
}

func TestPinkEvenYearOutOfSeason(t *testing.T) {
	e := NewEngine()
	in := dawnChinookInput()
	in.Sample.Timestamp = time.Date(2026, 8, 8, 6, 0, 0, 0, time.UTC)
	in.Context.Sunrise = time.Date(2026, 8, 8, 5, 45, 0, 0, time.UTC)
	in.Context.Sunset = time.Date(2026, 8, 8, 20, 45, 0, 0, time.UTC)

	res := e.Score(in, types.SpeciesPink)
	assert.False(t, res.IsInSeason)
	assert.Zero(t, res.Factors[types.FactorSeasonality].Score)
}

func TestFactorWeightsEchoProfile(t *testing.T) {
	e := NewEngine()
	res := e.Score(dawnChinookInput(), types.SpeciesHalibut)
	p := e.Profile(types.SpeciesHalibut)

	require.Len(t, res.Factors, len(p.Weights))
	for key, f := range res.Factors {
		assert.Equal(t, p.Weights[key], f.Weight, "factor %s", key)
	}
}

func dawnChinookInput() Input {
	ts := time.Date(2025, 8, 8, 6, 15, 0, 0, time.UTC)
	return Input{
		Sample: types.EnvironmentalSample{
			Timestamp:         ts,
			TemperatureC:      13,
			WindSpeedKmh:      6,
			CloudCoverPercent: 30,
			PressureHPa:       1016,
			WaveHeightM:       floatPtr(0.4),
		},
		Tide: &types.TideSnapshot{
			CurrentSpeedKt: 1.1,
			IsRising:       true,
			CurrentHeightM: 2.4,
			TidalRangeM:    2.9,
			WaterTempC:     floatPtr(11.5),
			ChangeRateMHr:  0.5,
		},
		Context: types.AlgorithmContext{
			Sunrise: time.Date(2025, 8, 8, 5, 45, 0, 0, time.UTC),
			Sunset:  time.Date(2025, 8, 8, 20, 45, 0, 0, time.UTC),
			PressureHistory: []types.PressureReading{
				{Time: ts.Add(-4 * time.Hour), HPa: 1012.5},
				{Time: ts, HPa: 1016},
			},
		},
	}
}

func galeInput() Input {
	in := dawnChinookInput()
	in.Sample.WindSpeedKmh = 45
	in.Sample.WaveHeightM = floatPtr(2.6)
	return in
}
