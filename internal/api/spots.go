package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"reelcaster/internal/types"
)

// CreateReportRequest is the body for POST /v1/spots/{id}/reports.
type CreateReportRequest struct {
	Species string `json:"species" validate:"required"`
	Caught  int    `json:"caught" validate:"min=0"`
	Success bool   `json:"success"`
}

// HandleListSpots handles GET /v1/spots.
func (s *Server) HandleListSpots(w http.ResponseWriter, r *http.Request) {
	if s.Spots == nil {
		Error(w, r, types.NewAppError(
			types.ErrCodeInternalDB,
			"spot storage is not configured",
			nil,
		))
		return
	}

	spots, err := s.Spots.ListActive(r.Context())
	if err != nil {
		Error(w, r, err)
		return
	}

	JSON(w, r, http.StatusOK, APIResponse{Data: spots})
}

// HandleSpotScores handles GET /v1/spots/{id}/scores. Query params:
// species (required), from and to (optional RFC3339, defaulting to the
// trailing 24 hours).
func (s *Server) HandleSpotScores(w http.ResponseWriter, r *http.Request) {
	if s.Spots == nil || s.Scores == nil {
		Error(w, r, types.NewAppError(
			types.ErrCodeInternalDB,
			"score storage is not configured",
			nil,
		))
		return
	}

	spotID := chi.URLParam(r, "id")
	q := r.URL.Query()

	rawSpecies := q.Get("species")
	if rawSpecies == "" {
		Error(w, r, types.NewAppError(
			types.ErrCodeValidationMissingField,
			"species query parameter is required",
			nil,
		))
		return
	}
	species := types.NormalizeSpecies(rawSpecies)
	if !types.IsKnownSpecies(species) {
		Error(w, r, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidSpecies,
			"unrecognized species identifier",
			nil,
			map[string]any{"species": string(species)},
		))
		return
	}

	now := time.Now().UTC()
	from := now.Add(-24 * time.Hour)
	to := now

	if fromStr := q.Get("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			Error(w, r, types.NewAppError(
				types.ErrCodeValidationTimeWindow,
				"from must be a valid RFC3339 timestamp",
				err,
			))
			return
		}
		from = parsed.UTC()
	}
	if toStr := q.Get("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			Error(w, r, types.NewAppError(
				types.ErrCodeValidationTimeWindow,
				"to must be a valid RFC3339 timestamp",
				err,
			))
			return
		}
		to = parsed.UTC()
	}
	if !to.After(from) {
		Error(w, r, types.NewAppError(
			types.ErrCodeValidationTimeWindow,
			"to must be after from",
			nil,
		))
		return
	}

	// Resolve the spot first so an unknown ID is a 404, not an empty list.
	if _, err := s.Spots.Get(r.Context(), spotID); err != nil {
		Error(w, r, err)
		return
	}

	results, err := s.Scores.History(r.Context(), spotID, species, from, to)
	if err != nil {
		Error(w, r, err)
		return
	}

	JSON(w, r, http.StatusOK, APIResponse{Data: results})
}

// HandleCreateReport handles POST /v1/spots/{id}/reports.
func (s *Server) HandleCreateReport(w http.ResponseWriter, r *http.Request) {
	if s.Spots == nil || s.Reports == nil {
		Error(w, r, types.NewAppError(
			types.ErrCodeInternalDB,
			"report storage is not configured",
			nil,
		))
		return
	}

	spotID := chi.URLParam(r, "id")

	var req CreateReportRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		Error(w, r, err)
		return
	}
	if err := s.Validator.Struct(req); err != nil {
		Error(w, r, types.NewAppError(
			types.ErrCodeValidationMissingField,
			"invalid catch report: "+err.Error(),
			err,
		))
		return
	}

	// Reports persist; unknown species would poison the catch-report factor.
	species := types.NormalizeSpecies(req.Species)
	if !types.IsKnownSpecies(species) {
		Error(w, r, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidSpecies,
			"unrecognized species identifier",
			nil,
			map[string]any{"species": string(species)},
		))
		return
	}

	if _, err := s.Spots.Get(r.Context(), spotID); err != nil {
		Error(w, r, err)
		return
	}

	report, err := s.Reports.Insert(r.Context(), types.CatchReport{
		SpotID:  spotID,
		Species: species,
		Caught:  req.Caught,
		Success: req.Success,
	})
	if err != nil {
		Error(w, r, err)
		return
	}

	JSON(w, r, http.StatusCreated, APIResponse{Data: report})
}
