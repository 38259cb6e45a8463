package scoring

import (
	"fmt"
	"log/slog"

	"reelcaster/internal/types"
)

// SafetyCeiling is the maximum total score when any safety-critical factor
// reports unsafe conditions. Capping is independent of the raw weighted
// total: a perfect bite in a gale is still a 3.
const SafetyCeiling = 3.0

// inSeasonFloor is the seasonality score above which a species counts as
// in season.
const inSeasonFloor = 3.0

// Engine scores (sample, species) pairs against the configured profiles.
// All scoring is pure and synchronous; an Engine is safe for concurrent use.
type Engine struct {
	profiles map[types.Species]Profile
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. Scoring itself never logs; the logger
// only reports tuning anomalies at construction.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithTuning applies deployment-specific overrides on top of the default
// profiles before validation.
func WithTuning(t TuningFile) Option {
	return func(e *Engine) { applyTuning(e.profiles, t) }
}

// NewEngine builds an engine with the default species profiles. Profiles
// that fail the weight-sum invariant after tuning are replaced by the
// generic profile rather than allowed to skew totals.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		profiles: defaultProfiles(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	for sp, p := range e.profiles {
		if err := p.Validate(); err != nil {
			e.logger.Warn("species profile failed validation, using generic fallback",
				"species", string(sp),
				"error", err,
			)
			fallback := genericProfile()
			fallback.Species = sp
			e.profiles[sp] = fallback
		}
	}

	return e
}

// Profile resolves the active profile for a species identifier, normalizing
// the identifier and falling back to the generic profile for unknown values.
func (e *Engine) Profile(species types.Species) Profile {
	sp := types.NormalizeSpecies(string(species))
	if p, ok := e.profiles[sp]; ok {
		return p
	}
	return e.profiles[types.SpeciesGeneric]
}

// Profiles returns all configured profiles keyed by species.
func (e *Engine) Profiles() map[types.Species]Profile {
	out := make(map[types.Species]Profile, len(e.profiles))
	for sp, p := range e.profiles {
		out[sp] = p
	}
	return out
}

// Score evaluates one sample for a species using the species' native
// algorithm version. It never returns an error: unknown species fall back to
// the generic profile, and missing data degrades factor-by-factor.
func (e *Engine) Score(in Input, species types.Species) *types.ScoreResult {
	return e.score(in, e.Profile(species))
}

// ScoreVersion forces a specific algorithm version. Requesting V1 for a
// species scores the legacy generic factor set with the species' run timing
// retained; the V1 and V2 factor maps are never merged.
func (e *Engine) ScoreVersion(in Input, species types.Species, version types.AlgorithmVersion) *types.ScoreResult {
	p := e.Profile(species)
	if version == types.AlgorithmV1 && p.Version != types.AlgorithmV1 {
		p = legacyProfile(p)
	}
	return e.score(in, p)
}

func (e *Engine) score(in Input, p Profile) *types.ScoreResult {
	factors := make(map[types.FactorKey]types.FactorResult, len(p.Weights))

	var (
		total       float64
		unsafe      bool
		warnings    []string
		seasonScore = -1.0
	)

	for key, weight := range p.Weights {
		out := e.computeFactor(in, p, key)
		out.result.Weight = weight
		factors[key] = out.result

		total += out.result.Score * weight
		if out.unsafe {
			unsafe = true
		}
		warnings = append(warnings, out.warnings...)
		if key == types.FactorSeasonality {
			seasonScore = out.result.Score
		}
	}

	total = clampScore(total)

	result := &types.ScoreResult{
		Species:          p.Species,
		Timestamp:        in.Sample.Timestamp,
		Total:            total,
		Factors:          factors,
		IsSafe:           !unsafe,
		SafetyWarnings:   warnings,
		IsInSeason:       seasonScore < 0 || seasonScore >= inSeasonFloor,
		AlgorithmVersion: p.Version,
	}

	if unsafe && result.Total > SafetyCeiling {
		result.Total = SafetyCeiling
	}

	advice := BuildAdvice(p.Species, result.Total, factors)
	result.StrategyAdvice = advice.Strategy()
	if unsafe {
		result.StrategyAdvice = append(
			[]string{"Unsafe conditions detected; the overall score is capped until they clear."},
			result.StrategyAdvice...,
		)
	}

	return result
}

// computeFactor dispatches a factor key to its scorer. Interaction factors
// (lingcod tidal dynamics, chum tidal movement) combine raw sub-scores that
// do not themselves appear in the species' factor map.
func (e *Engine) computeFactor(in Input, p Profile, key types.FactorKey) outcome {
	switch key {
	case types.FactorSeasonality:
		return scoreSeasonality(in.Sample.Timestamp, p.Seasonality)
	case types.FactorLightTime:
		return scoreLightTime(in)
	case types.FactorPressureTrend:
		return scorePressureTrend(in)
	case types.FactorTidalCurrent:
		return scoreTidalCurrent(in, p.Current)
	case types.FactorTidalSlope:
		return scoreTidalSlope(in)
	case types.FactorTidalRange:
		return scoreTidalRange(in, p.Range)
	case types.FactorTidalDynamics:
		if in.Tide == nil {
			return neutralOutcome("no tide data", "Tide data unavailable; assuming moderate dynamics.")
		}
		slack := scoreTidalSlope(in)
		rng := scoreTidalRange(in, p.Range)
		return lingcodTidalDynamics(slack, rng, !in.Tide.IsRising)
	case types.FactorTidalMovement:
		if in.Tide == nil {
			return neutralOutcome("no tide data", "Tide data unavailable; assuming moderate movement.")
		}
		current := scoreTidalCurrent(in, p.Current)
		rng := scoreTidalRange(in, p.Range)
		return chumTidalMovement(current, rng, !in.Tide.IsRising)
	case types.FactorSeaState:
		return scoreSeaState(in, p.SeaState)
	case types.FactorWaterTemp:
		return scoreWaterTemp(in, p.WaterTemp)
	case types.FactorPrecipitation:
		return scorePrecipitation(in)
	case types.FactorVisibility:
		return scoreVisibility(in)
	case types.FactorSolunar:
		return scoreSolunar(in)
	case types.FactorCatchReports:
		return scoreCatchReports(in)
	case types.FactorScentCurrent:
		return scoreScentCurrent(in)
	case types.FactorMoltQuality:
		return scoreMoltQuality(in)
	case types.FactorNocturnalFlood:
		return scoreNocturnalFlood(in)
	case types.FactorRetrievalSafety:
		return scoreRetrievalSafety(in)
	default:
		return neutralOutcome("unknown factor",
			fmt.Sprintf("No scorer registered for factor %q.", string(key)))
	}
}
