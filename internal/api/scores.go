package api

import (
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"reelcaster/internal/scoring"
	"reelcaster/internal/types"
)

// maxScoreParallelism bounds the batch fan-out. Scoring is CPU-bound and
// cheap per tick; a small limit keeps one large batch from starving other
// requests.
const maxScoreParallelism = 8

// ScoreRequest asks for one (sample, species) evaluation.
type ScoreRequest struct {
	Species          string                    `json:"species" validate:"required"`
	Sample           types.EnvironmentalSample `json:"sample"`
	Tide             *types.TideSnapshot       `json:"tide,omitempty"`
	Context          types.AlgorithmContext    `json:"context"`
	AlgorithmVersion types.AlgorithmVersion    `json:"algorithm_version,omitempty" validate:"omitempty,oneof=v1 v2"`
}

// ScoreTick is one forecast tick within a batch request.
type ScoreTick struct {
	Sample types.EnvironmentalSample `json:"sample"`
	Tide   *types.TideSnapshot       `json:"tide,omitempty"`
}

// BatchScoreRequest scores every requested species across every tick. The
// total fan-out (species x ticks) is capped by the server's batch limit.
type BatchScoreRequest struct {
	Species          []string               `json:"species" validate:"required,min=1"`
	Ticks            []ScoreTick            `json:"ticks" validate:"required,min=1"`
	Context          types.AlgorithmContext `json:"context"`
	AlgorithmVersion types.AlgorithmVersion `json:"algorithm_version,omitempty" validate:"omitempty,oneof=v1 v2"`
}

// BatchScoreResponse returns results grouped species-major: all ticks for the
// first species, then all ticks for the second, preserving request order.
type BatchScoreResponse struct {
	Results []*types.ScoreResult `json:"results"`
}

// HandleScore handles POST /v1/scores.
func (s *Server) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		Error(w, r, err)
		return
	}
	if err := s.Validator.Struct(req); err != nil {
		Error(w, r, types.NewAppError(
			types.ErrCodeValidationMissingField,
			"invalid score request: "+err.Error(),
			err,
		))
		return
	}
	if req.Sample.Timestamp.IsZero() {
		Error(w, r, types.NewAppError(
			types.ErrCodeValidationInvalidSample,
			"sample.timestamp is required",
			nil,
		))
		return
	}

	in := scoring.Input{
		Sample:  req.Sample,
		Tide:    req.Tide,
		Context: req.Context,
	}

	species := types.NormalizeSpecies(req.Species)
	var result *types.ScoreResult
	if req.AlgorithmVersion != "" {
		result = s.Engine.ScoreVersion(in, species, req.AlgorithmVersion)
	} else {
		result = s.Engine.Score(in, species)
	}

	JSON(w, r, http.StatusOK, APIResponse{Data: result})
}

// HandleScoreBatch handles POST /v1/scores/batch. Each (species, tick) pair
// is scored independently; scoring never fails per-item, so the batch either
// validates and fully succeeds or is rejected up front.
func (s *Server) HandleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchScoreRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		Error(w, r, err)
		return
	}
	if err := s.Validator.Struct(req); err != nil {
		Error(w, r, types.NewAppError(
			types.ErrCodeValidationMissingField,
			"invalid batch request: "+err.Error(),
			err,
		))
		return
	}

	total := len(req.Species) * len(req.Ticks)
	if max := s.Config.Server.MaxBatchSize; total > max {
		Error(w, r, types.NewAppErrorWithDetails(
			types.ErrCodeValidationBatchSize,
			fmt.Sprintf("batch of %d scores exceeds the maximum of %d", total, max),
			nil,
			map[string]any{"requested": total, "max": max},
		))
		return
	}
	for i, tick := range req.Ticks {
		if tick.Sample.Timestamp.IsZero() {
			Error(w, r, types.NewAppErrorWithDetails(
				types.ErrCodeValidationInvalidSample,
				"every tick needs a sample timestamp",
				nil,
				map[string]any{"tick": i},
			))
			return
		}
	}

	results := make([]*types.ScoreResult, total)

	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(maxScoreParallelism)

	for si, raw := range req.Species {
		species := types.NormalizeSpecies(raw)
		for ti, tick := range req.Ticks {
			idx := si*len(req.Ticks) + ti
			in := scoring.Input{
				Sample:  tick.Sample,
				Tide:    tick.Tide,
				Context: req.Context,
			}
			g.Go(func() error {
				if req.AlgorithmVersion != "" {
					results[idx] = s.Engine.ScoreVersion(in, species, req.AlgorithmVersion)
				} else {
					results[idx] = s.Engine.Score(in, species)
				}
				return nil
			})
		}
	}

	// Scoring goroutines never return errors; Wait only synchronizes.
	_ = g.Wait()

	JSON(w, r, http.StatusOK, APIResponse{Data: BatchScoreResponse{Results: results}})
}
