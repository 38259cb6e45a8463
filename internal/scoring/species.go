package scoring

import (
	"math"

	"reelcaster/internal/types"
)

// Profile is the closed per-species configuration: which factors apply,
// their weights, and the curve constants feeding each scorer. Weights for a
// profile always sum to 1.0 within floating-point tolerance; Validate
// enforces this and the engine's tests assert it for every default profile.
type Profile struct {
	Species     types.Species
	DisplayName string
	Version     types.AlgorithmVersion

	Weights map[types.FactorKey]float64

	Seasonality SeasonalityConfig
	Current     CurrentBand
	Range       RangeConfig
	WaterTemp   TempBand
	SeaState    SeaStateConfig
}

// WeightSumTolerance is the allowed deviation of a profile's weight sum
// from 1.0.
const WeightSumTolerance = 1e-6

// Validate checks the weight-sum invariant.
func (p Profile) Validate() error {
	var sum float64
	for _, w := range p.Weights {
		sum += w
	}
	if math.Abs(sum-1.0) > WeightSumTolerance {
		return &types.AppError{
			Code:    types.ErrCodeInternalUnexpected,
			Message: "species weight table does not sum to 1.0",
			Details: map[string]any{"species": string(p.Species), "sum": sum},
		}
	}
	return nil
}

// genericProfile is the V1 algorithm and the fallback for unrecognized
// species identifiers. Factor weights are deliberately flat: without
// species physics the model leans on tide movement and broad conditions.
func genericProfile() Profile {
	return Profile{
		Species:     types.SpeciesGeneric,
		DisplayName: "Generic Saltwater",
		Version:     types.AlgorithmV1,
		Weights: map[types.FactorKey]float64{
			types.FactorSeasonality:   0.15,
			types.FactorLightTime:     0.15,
			types.FactorPressureTrend: 0.15,
			types.FactorTidalCurrent:  0.20,
			types.FactorSeaState:      0.15,
			types.FactorWaterTemp:     0.10,
			types.FactorPrecipitation: 0.05,
			types.FactorVisibility:    0.05,
		},
		Seasonality: SeasonalityConfig{CenterDay: 200, SpreadDays: 80},
		Current:     CurrentBand{CenterKt: 1.0, SpreadKt: 0.8},
		WaterTemp:   TempBand{MinC: 8, MaxC: 16, FalloffC: 6},
		SeaState:    SeaStateConfig{WindCeilingKmh: 35, WaveCeilingM: 2.0},
	}
}

// defaultProfiles builds the V2 per-species profiles. Constants here are the
// shipped defaults; deployments may override them via the species tuning
// file loaded by internal/config.
func defaultProfiles() map[types.Species]Profile {
	profiles := map[types.Species]Profile{
		types.SpeciesChinook: {
			DisplayName: "Chinook Salmon",
			Weights: map[types.FactorKey]float64{
				types.FactorSeasonality:   0.20,
				types.FactorLightTime:     0.15,
				types.FactorPressureTrend: 0.10,
				types.FactorTidalCurrent:  0.20,
				types.FactorSeaState:      0.10,
				types.FactorWaterTemp:     0.10,
				types.FactorPrecipitation: 0.05,
				types.FactorSolunar:       0.05,
				types.FactorCatchReports:  0.05,
			},
			Seasonality: SeasonalityConfig{CenterDay: 210, SpreadDays: 45},
			Current:     CurrentBand{CenterKt: 1.25, SpreadKt: 0.75},
			WaterTemp:   TempBand{MinC: 9, MaxC: 14, FalloffC: 5},
			SeaState:    SeaStateConfig{WindCeilingKmh: 35, WaveCeilingM: 2.0},
		},
		types.SpeciesCoho: {
			DisplayName: "Coho Salmon",
			Weights: map[types.FactorKey]float64{
				types.FactorSeasonality:   0.20,
				types.FactorLightTime:     0.20,
				types.FactorPressureTrend: 0.10,
				types.FactorTidalCurrent:  0.15,
				types.FactorSeaState:      0.10,
				types.FactorWaterTemp:     0.10,
				types.FactorPrecipitation: 0.10,
				types.FactorSolunar:       0.05,
			},
			Seasonality: SeasonalityConfig{CenterDay: 245, SpreadDays: 40},
			Current:     CurrentBand{CenterKt: 1.0, SpreadKt: 0.8},
			WaterTemp:   TempBand{MinC: 9, MaxC: 15, FalloffC: 5},
			SeaState:    SeaStateConfig{WindCeilingKmh: 35, WaveCeilingM: 2.0},
		},
		types.SpeciesPink: {
			DisplayName: "Pink Salmon",
			Weights: map[types.FactorKey]float64{
				types.FactorSeasonality:   0.30,
				types.FactorLightTime:     0.10,
				types.FactorPressureTrend: 0.10,
				types.FactorTidalCurrent:  0.20,
				types.FactorSeaState:      0.10,
				types.FactorWaterTemp:     0.10,
				types.FactorPrecipitation: 0.10,
			},
			// Odd-year runs dominate; even years gate to zero.
			Seasonality: SeasonalityConfig{CenterDay: 220, SpreadDays: 25, OffYear: OffYearEvenZero},
			Current:     CurrentBand{CenterKt: 0.8, SpreadKt: 0.7},
			WaterTemp:   TempBand{MinC: 10, MaxC: 15, FalloffC: 5},
			SeaState:    SeaStateConfig{WindCeilingKmh: 30, WaveCeilingM: 1.5},
		},
		types.SpeciesSockeye: {
			DisplayName: "Sockeye Salmon",
			Weights: map[types.FactorKey]float64{
				types.FactorSeasonality:   0.30,
				types.FactorTidalCurrent:  0.20,
				types.FactorLightTime:     0.10,
				types.FactorWaterTemp:     0.15,
				types.FactorPressureTrend: 0.10,
				types.FactorSeaState:      0.10,
				types.FactorSolunar:       0.05,
			},
			// Some run returns every year; off years floor rather than zero.
			Seasonality: SeasonalityConfig{CenterDay: 195, SpreadDays: 30, OffYear: OffYearEvenFloor},
			Current:     CurrentBand{CenterKt: 0.9, SpreadKt: 0.7},
			WaterTemp:   TempBand{MinC: 8, MaxC: 13, FalloffC: 4},
			SeaState:    SeaStateConfig{WindCeilingKmh: 35, WaveCeilingM: 2.0},
		},
		types.SpeciesChum: {
			DisplayName: "Chum Salmon",
			Weights: map[types.FactorKey]float64{
				types.FactorSeasonality:   0.20,
				types.FactorTidalMovement: 0.30,
				types.FactorLightTime:     0.10,
				types.FactorPressureTrend: 0.10,
				types.FactorSeaState:      0.10,
				types.FactorWaterTemp:     0.10,
				types.FactorPrecipitation: 0.10,
			},
			Seasonality: SeasonalityConfig{CenterDay: 285, SpreadDays: 30},
			Current:     CurrentBand{CenterKt: 1.0, SpreadKt: 0.8},
			Range:       RangeConfig{Inverted: false},
			WaterTemp:   TempBand{MinC: 8, MaxC: 14, FalloffC: 5},
			SeaState:    SeaStateConfig{WindCeilingKmh: 35, WaveCeilingM: 2.0},
		},
		types.SpeciesHalibut: {
			DisplayName: "Pacific Halibut",
			Weights: map[types.FactorKey]float64{
				types.FactorSeasonality:   0.15,
				types.FactorTidalSlope:    0.25,
				types.FactorTidalRange:    0.15,
				types.FactorSeaState:      0.10,
				types.FactorVisibility:    0.05,
				types.FactorLightTime:     0.05,
				types.FactorPressureTrend: 0.10,
				types.FactorWaterTemp:     0.05,
				types.FactorSolunar:       0.05,
				types.FactorCatchReports:  0.05,
			},
			Seasonality: SeasonalityConfig{CenterDay: 170, SpreadDays: 60},
			// Long slack windows matter more than flush: neaps score higher.
			Range:     RangeConfig{Inverted: true},
			WaterTemp: TempBand{MinC: 5, MaxC: 11, FalloffC: 5},
			SeaState:  SeaStateConfig{WindCeilingKmh: 30, WaveCeilingM: 1.8},
		},
		types.SpeciesLingcod: {
			DisplayName: "Lingcod",
			Weights: map[types.FactorKey]float64{
				types.FactorSeasonality:   0.15,
				types.FactorTidalDynamics: 0.30,
				types.FactorSeaState:      0.15,
				types.FactorLightTime:     0.10,
				types.FactorPressureTrend: 0.10,
				types.FactorWaterTemp:     0.10,
				types.FactorCatchReports:  0.10,
			},
			Seasonality: SeasonalityConfig{CenterDay: 135, SpreadDays: 55},
			// Springs feed the dynamics term; the raw range scorer runs
			// uninverted underneath the interaction.
			Range:     RangeConfig{Inverted: false},
			WaterTemp: TempBand{MinC: 6, MaxC: 13, FalloffC: 5},
			SeaState:  SeaStateConfig{WindCeilingKmh: 32, WaveCeilingM: 1.8},
		},
		types.SpeciesRockfish: {
			DisplayName: "Rockfish",
			Weights: map[types.FactorKey]float64{
				types.FactorSeasonality:   0.10,
				types.FactorTidalSlope:    0.20,
				types.FactorSeaState:      0.15,
				types.FactorVisibility:    0.05,
				types.FactorLightTime:     0.15,
				types.FactorPressureTrend: 0.10,
				types.FactorWaterTemp:     0.15,
				types.FactorPrecipitation: 0.10,
			},
			Seasonality: SeasonalityConfig{CenterDay: 180, SpreadDays: 80},
			WaterTemp:   TempBand{MinC: 7, MaxC: 14, FalloffC: 6},
			SeaState:    SeaStateConfig{WindCeilingKmh: 30, WaveCeilingM: 1.5},
		},
		types.SpeciesCrab: {
			DisplayName: "Dungeness Crab",
			Weights: map[types.FactorKey]float64{
				types.FactorScentCurrent:    0.25,
				types.FactorMoltQuality:     0.20,
				types.FactorNocturnalFlood:  0.10,
				types.FactorRetrievalSafety: 0.15,
				types.FactorSeasonality:     0.10,
				types.FactorWaterTemp:       0.10,
				types.FactorTidalRange:      0.10,
			},
			Seasonality: SeasonalityConfig{CenterDay: 225, SpreadDays: 70},
			// Moderate exchanges beat big springs for pot gear.
			Range:     RangeConfig{Inverted: true},
			WaterTemp: TempBand{MinC: 13, MaxC: 17, FalloffC: 5},
			SeaState:  SeaStateConfig{WindCeilingKmh: 35, WaveCeilingM: 2.0},
		},
		types.SpeciesPrawn: {
			DisplayName: "Spot Prawn",
			Weights: map[types.FactorKey]float64{
				types.FactorTidalSlope:      0.25,
				types.FactorRetrievalSafety: 0.15,
				types.FactorSeasonality:     0.15,
				types.FactorLightTime:       0.10,
				types.FactorWaterTemp:       0.15,
				types.FactorSeaState:        0.10,
				types.FactorPressureTrend:   0.10,
			},
			Seasonality: SeasonalityConfig{CenterDay: 130, SpreadDays: 40},
			Range:       RangeConfig{Inverted: true},
			WaterTemp:   TempBand{MinC: 7, MaxC: 11, FalloffC: 4},
			SeaState:    SeaStateConfig{WindCeilingKmh: 35, WaveCeilingM: 2.0},
		},
	}

	for sp, p := range profiles {
		p.Species = sp
		p.Version = types.AlgorithmV2
		if p.Current.SpreadKt == 0 {
			p.Current = genericProfile().Current
		}
		if p.SeaState.WindCeilingKmh == 0 {
			p.SeaState = genericProfile().SeaState
		}
		profiles[sp] = p
	}
	profiles[types.SpeciesGeneric] = genericProfile()
	return profiles
}

// legacyProfile derives the V1 variant for a species: the generic factor set
// and weights with the species' own seasonality curve retained, so legacy
// callers still see sensible run timing.
func legacyProfile(v2 Profile) Profile {
	p := genericProfile()
	p.Species = v2.Species
	p.DisplayName = v2.DisplayName
	p.Seasonality = v2.Seasonality
	p.WaterTemp = v2.WaterTemp
	return p
}
