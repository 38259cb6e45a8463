package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelcaster/internal/types"
)

func knownSpot(id string) *types.Spot {
	return &types.Spot{
		ID:          id,
		Name:        "Otter Point",
		Lat:         48.37,
		Lon:         -123.73,
		TideStation: "sooke-07120",
		Species:     []types.Species{types.SpeciesChinook, types.SpeciesCoho},
	}
}

func TestHandleListSpots(t *testing.T) {
	srv := newTestServer(t)
	srv.Spots = &stubSpotStore{
		listFn: func(context.Context) ([]types.Spot, error) {
			return []types.Spot{*knownSpot("spot-1")}, nil
		},
	}

	rec := doJSON(t, srv, http.MethodGet, "/v1/spots", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var spots []types.Spot
	decodeData(t, rec, &spots)
	require.Len(t, spots, 1)
	assert.Equal(t, "Otter Point", spots[0].Name)
}

func TestHandleListSpotsWithoutStore(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/spots", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleSpotScoresRequiresSpecies(t *testing.T) {
	srv := newTestServer(t)
	srv.Spots = &stubSpotStore{}
	srv.Scores = &stubScoreStore{}

	rec := doJSON(t, srv, http.MethodGet, "/v1/spots/spot-1/scores", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeValidationMissingField), detail.Code)
}

func TestHandleSpotScoresRejectsUnknownSpecies(t *testing.T) {
	srv := newTestServer(t)
	srv.Spots = &stubSpotStore{}
	srv.Scores = &stubScoreStore{}

	rec := doJSON(t, srv, http.MethodGet, "/v1/spots/spot-1/scores?species=kraken", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeValidationInvalidSpecies), detail.Code)
	assert.Equal(t, "kraken", detail.Details["species"])
}

func TestHandleSpotScoresUnknownSpot(t *testing.T) {
	srv := newTestServer(t)
	srv.Spots = &stubSpotStore{
		getFn: func(_ context.Context, id string) (*types.Spot, error) {
			return nil, types.NewAppError(types.ErrCodeNotFoundSpot, "spot not found", nil)
		},
	}
	srv.Scores = &stubScoreStore{}

	rec := doJSON(t, srv, http.MethodGet, "/v1/spots/missing/scores?species=chinook", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeNotFoundSpot), detail.Code)
}

func TestHandleSpotScoresHistory(t *testing.T) {
	srv := newTestServer(t)

	ts := time.Date(2025, 8, 8, 6, 0, 0, 0, time.UTC)
	var gotSpecies types.Species
	var gotFrom, gotTo time.Time

	srv.Spots = &stubSpotStore{
		getFn: func(_ context.Context, id string) (*types.Spot, error) {
			return knownSpot(id), nil
		},
	}
	srv.Scores = &stubScoreStore{
		historyFn: func(_ context.Context, spotID string, species types.Species, from, to time.Time) ([]*types.ScoreResult, error) {
			gotSpecies, gotFrom, gotTo = species, from, to
			return []*types.ScoreResult{{
				Species:   species,
				SpotID:    spotID,
				Timestamp: ts,
				Total:     7.1,
			}}, nil
		},
	}

	rec := doJSON(t, srv, http.MethodGet,
		"/v1/spots/spot-1/scores?species=King+Salmon&from=2025-08-08T00:00:00Z&to=2025-08-09T00:00:00Z", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, types.SpeciesChinook, gotSpecies, "alias normalizes before the query")
	assert.Equal(t, time.Date(2025, 8, 8, 0, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC), gotTo)

	var results []*types.ScoreResult
	decodeData(t, rec, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "spot-1", results[0].SpotID)
}

func TestHandleSpotScoresInvertedWindow(t *testing.T) {
	srv := newTestServer(t)
	srv.Spots = &stubSpotStore{}
	srv.Scores = &stubScoreStore{}

	rec := doJSON(t, srv, http.MethodGet,
		"/v1/spots/spot-1/scores?species=chinook&from=2025-08-09T00:00:00Z&to=2025-08-08T00:00:00Z", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeValidationTimeWindow), detail.Code)
}

func TestHandleCreateReport(t *testing.T) {
	srv := newTestServer(t)

	var inserted types.CatchReport
	srv.Spots = &stubSpotStore{
		getFn: func(_ context.Context, id string) (*types.Spot, error) {
			return knownSpot(id), nil
		},
	}
	srv.Reports = &stubReportStore{
		insertFn: func(_ context.Context, report types.CatchReport) (*types.CatchReport, error) {
			inserted = report
			report.ID = "report-1"
			report.ReportedAt = time.Now().UTC()
			return &report, nil
		},
	}

	rec := doJSON(t, srv, http.MethodPost, "/v1/spots/spot-1/reports", CreateReportRequest{
		Species: "silver",
		Caught:  2,
		Success: true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "spot-1", inserted.SpotID)
	assert.Equal(t, types.SpeciesCoho, inserted.Species)

	var report types.CatchReport
	decodeData(t, rec, &report)
	assert.Equal(t, "report-1", report.ID)
}

func TestHandleCreateReportRejectsUnknownSpecies(t *testing.T) {
	srv := newTestServer(t)
	srv.Spots = &stubSpotStore{}
	srv.Reports = &stubReportStore{
		insertFn: func(context.Context, types.CatchReport) (*types.CatchReport, error) {
			t.Fatal("unknown species must never reach the store")
			return nil, nil
		},
	}

	rec := doJSON(t, srv, http.MethodPost, "/v1/spots/spot-1/reports", CreateReportRequest{
		Species: "kraken",
		Caught:  1,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeValidationInvalidSpecies), detail.Code)
}

func TestHandleCreateReportInsertFailure(t *testing.T) {
	srv := newTestServer(t)
	srv.Spots = &stubSpotStore{
		getFn: func(_ context.Context, id string) (*types.Spot, error) {
			return knownSpot(id), nil
		},
	}
	srv.Reports = &stubReportStore{
		insertFn: func(context.Context, types.CatchReport) (*types.CatchReport, error) {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "insert failed", errors.New("down"))
		},
	}

	rec := doJSON(t, srv, http.MethodPost, "/v1/spots/spot-1/reports", CreateReportRequest{
		Species: "coho",
		Caught:  1,
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeInternalDB), detail.Code)
}
