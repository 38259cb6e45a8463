package api

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"reelcaster/internal/explain"
	"reelcaster/internal/types"
)

// SpeciesSummary is one entry in the species listing: the canonical
// identifier, the algorithm version its profile uses, and its factor weights.
type SpeciesSummary struct {
	ID               types.Species               `json:"id"`
	AlgorithmVersion types.AlgorithmVersion      `json:"algorithm_version"`
	Weights          map[types.FactorKey]float64 `json:"weights"`
}

// WeightEntry is one row of the explained weight table: the profile's numeric
// weight plus the prose rationale behind it.
type WeightEntry struct {
	Factor    types.FactorKey `json:"factor"`
	Weight    float64         `json:"weight"`
	Rationale string          `json:"rationale"`
}

// SpeciesExplanationsResponse is the full explanation document for a species:
// the species-level overview, the explained weight table, and the per-factor
// explanation entries.
type SpeciesExplanationsResponse struct {
	Species          types.Species                                 `json:"species"`
	DisplayName      string                                        `json:"display_name"`
	AlgorithmVersion types.AlgorithmVersion                        `json:"algorithm_version"`
	Overview         string                                        `json:"overview"`
	BestConditions   string                                        `json:"best_conditions"`
	WorstConditions  string                                        `json:"worst_conditions"`
	Weights          []WeightEntry                                 `json:"weights"`
	Factors          map[types.FactorKey]explain.FactorExplanation `json:"factors"`
}

// FactorExplanationResponse is a single factor's explanation for a species.
type FactorExplanationResponse struct {
	Species     types.Species             `json:"species"`
	Factor      types.FactorKey           `json:"factor"`
	Explanation explain.FactorExplanation `json:"explanation"`
}

// HandleListSpecies handles GET /v1/species.
func (s *Server) HandleListSpecies(w http.ResponseWriter, r *http.Request) {
	known := types.KnownSpecies()
	summaries := make([]SpeciesSummary, 0, len(known))
	for _, sp := range known {
		p := s.Engine.Profile(sp)
		summaries = append(summaries, SpeciesSummary{
			ID:               sp,
			AlgorithmVersion: p.Version,
			Weights:          p.Weights,
		})
	}

	JSON(w, r, http.StatusOK, APIResponse{Data: summaries})
}

// HandleSpeciesExplanations handles GET /v1/species/{id}/explanations.
// Unknown species resolve to the generic explanation table rather than 404,
// mirroring the engine's fallback behavior.
func (s *Server) HandleSpeciesExplanations(w http.ResponseWriter, r *http.Request) {
	species := types.NormalizeSpecies(chi.URLParam(r, "id"))

	profile := s.Engine.Profile(species)
	overview := explain.OverviewFor(species)

	weights := make([]WeightEntry, 0, len(profile.Weights))
	for key, w := range profile.Weights {
		weights = append(weights, WeightEntry{
			Factor:    key,
			Weight:    w,
			Rationale: explain.RationaleFor(species, key),
		})
	}
	// Heaviest first; alphabetical within a weight so the order is stable.
	sort.Slice(weights, func(i, j int) bool { return weights[i].Factor < weights[j].Factor })
	sort.SliceStable(weights, func(i, j int) bool { return weights[i].Weight > weights[j].Weight })

	JSON(w, r, http.StatusOK, APIResponse{Data: SpeciesExplanationsResponse{
		Species:          species,
		DisplayName:      overview.DisplayName,
		AlgorithmVersion: profile.Version,
		Overview:         overview.Overview,
		BestConditions:   overview.BestConditions,
		WorstConditions:  overview.WorstConditions,
		Weights:          weights,
		Factors:          explain.SpeciesExplanations(species),
	}})
}

// HandleFactorExplanation handles GET /v1/species/{id}/factors/{key}.
func (s *Server) HandleFactorExplanation(w http.ResponseWriter, r *http.Request) {
	species := types.NormalizeSpecies(chi.URLParam(r, "id"))
	key := types.FactorKey(chi.URLParam(r, "key"))

	exp, ok := explain.ForFactor(species, key)
	if !ok {
		Error(w, r, types.NewAppErrorWithDetails(
			types.ErrCodeNotFoundFactor,
			"no explanation registered for factor",
			nil,
			map[string]any{"species": string(species), "factor": string(key)},
		))
		return
	}

	JSON(w, r, http.StatusOK, APIResponse{Data: FactorExplanationResponse{
		Species:     species,
		Factor:      key,
		Explanation: exp,
	}})
}
