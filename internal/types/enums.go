package types

import "strings"

// Species identifies a target species. The canonical form is lowercase with
// hyphens ("dungeness-crab"); use NormalizeSpecies for external input.
type Species string

const (
	SpeciesChinook  Species = "chinook"
	SpeciesCoho     Species = "coho"
	SpeciesHalibut  Species = "halibut"
	SpeciesLingcod  Species = "lingcod"
	SpeciesRockfish Species = "rockfish"
	SpeciesPink     Species = "pink"
	SpeciesSockeye  Species = "sockeye"
	SpeciesChum     Species = "chum"
	SpeciesCrab     Species = "dungeness-crab"
	SpeciesPrawn    Species = "spot-prawn"

	// SpeciesGeneric is the fallback profile applied to unrecognized species
	// identifiers. It is never an error to score an unknown species.
	SpeciesGeneric Species = "generic"
)

// speciesAliases maps common angler names onto canonical identifiers.
var speciesAliases = map[string]Species{
	"king":           SpeciesChinook,
	"king-salmon":    SpeciesChinook,
	"spring":         SpeciesChinook,
	"silver":         SpeciesCoho,
	"silver-salmon":  SpeciesCoho,
	"humpy":          SpeciesPink,
	"pink-salmon":    SpeciesPink,
	"red":            SpeciesSockeye,
	"sockeye-salmon": SpeciesSockeye,
	"dog":            SpeciesChum,
	"chum-salmon":    SpeciesChum,
	"crab":           SpeciesCrab,
	"dungeness":      SpeciesCrab,
	"prawn":          SpeciesPrawn,
	"spot-prawns":    SpeciesPrawn,
}

// NormalizeSpecies lowercases, trims and hyphenates an external species
// identifier and resolves known aliases. Unrecognized values pass through
// unchanged so the engine can apply its generic fallback.
func NormalizeSpecies(raw string) Species {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	if canonical, ok := speciesAliases[s]; ok {
		return canonical
	}
	return Species(s)
}

// KnownSpecies lists every species with a dedicated profile, in display order.
func KnownSpecies() []Species {
	return []Species{
		SpeciesChinook,
		SpeciesCoho,
		SpeciesPink,
		SpeciesSockeye,
		SpeciesChum,
		SpeciesHalibut,
		SpeciesLingcod,
		SpeciesRockfish,
		SpeciesCrab,
		SpeciesPrawn,
	}
}

// IsKnownSpecies reports whether sp has a dedicated profile. Scoring accepts
// any identifier via the generic fallback; persistence paths use this to
// reject species that could never match stored rows.
func IsKnownSpecies(sp Species) bool {
	for _, known := range KnownSpecies() {
		if sp == known {
			return true
		}
	}
	return false
}

// AlgorithmVersion selects between the legacy generic model and the
// per-species physics-informed model. The variants never merge at runtime;
// the version is resolved once at the top of scoring.
type AlgorithmVersion string

const (
	AlgorithmV1 AlgorithmVersion = "v1"
	AlgorithmV2 AlgorithmVersion = "v2"
)

// FactorKey identifies a scored environmental factor. The factor set differs
// by species and algorithm version; not all species implement all factors.
type FactorKey string

const (
	FactorSeasonality     FactorKey = "seasonality"
	FactorLightTime       FactorKey = "light_time"
	FactorPressureTrend   FactorKey = "pressure_trend"
	FactorTidalCurrent    FactorKey = "tidal_current"
	FactorTidalSlope      FactorKey = "tidal_slope"
	FactorTidalRange      FactorKey = "tidal_range"
	FactorTidalDynamics   FactorKey = "tidal_dynamics"
	FactorTidalMovement   FactorKey = "tidal_movement"
	FactorSeaState        FactorKey = "sea_state"
	FactorWaterTemp       FactorKey = "water_temp"
	FactorPrecipitation   FactorKey = "precipitation"
	FactorVisibility      FactorKey = "visibility"
	FactorSolunar         FactorKey = "solunar"
	FactorCatchReports    FactorKey = "catch_reports"
	FactorScentCurrent    FactorKey = "scent_current"
	FactorMoltQuality     FactorKey = "molt_quality"
	FactorNocturnalFlood  FactorKey = "nocturnal_flood"
	FactorRetrievalSafety FactorKey = "retrieval_safety"
)
