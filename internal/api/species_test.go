package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelcaster/internal/types"
)

func TestHandleListSpecies(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/species", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []SpeciesSummary
	decodeData(t, rec, &summaries)
	require.Len(t, summaries, len(types.KnownSpecies()))

	byID := make(map[types.Species]SpeciesSummary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}

	chinook := byID[types.SpeciesChinook]
	assert.Equal(t, types.AlgorithmV2, chinook.AlgorithmVersion)
	assert.NotEmpty(t, chinook.Weights)

	var sum float64
	for _, w := range chinook.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestHandleSpeciesExplanationsKnown(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/species/halibut/explanations", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SpeciesExplanationsResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, types.SpeciesHalibut, resp.Species)
	assert.Equal(t, "Pacific Halibut", resp.DisplayName)
	assert.Equal(t, types.AlgorithmV2, resp.AlgorithmVersion)
	assert.NotEmpty(t, resp.Overview)
	assert.NotEmpty(t, resp.BestConditions)
	assert.NotEmpty(t, resp.WorstConditions)
	require.Contains(t, resp.Factors, types.FactorTidalSlope)
	assert.Contains(t, resp.Factors[types.FactorTidalSlope].Summary, "halibut")
}

func TestHandleSpeciesExplanationsWeightTable(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/species/halibut/explanations", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SpeciesExplanationsResponse
	decodeData(t, rec, &resp)
	require.NotEmpty(t, resp.Weights)

	assert.Equal(t, types.FactorTidalSlope, resp.Weights[0].Factor,
		"the heaviest factor leads the table")

	var sum float64
	for i, entry := range resp.Weights {
		sum += entry.Weight
		assert.NotEmpty(t, entry.Rationale, "weight entry %s carries no rationale", entry.Factor)
		if i > 0 {
			assert.GreaterOrEqual(t, resp.Weights[i-1].Weight, entry.Weight,
				"weights must descend")
		}
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestHandleSpeciesExplanationsNormalizesAlias(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/species/king/explanations", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SpeciesExplanationsResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, types.SpeciesChinook, resp.Species)
}

func TestHandleSpeciesExplanationsUnknownFallsBack(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/species/kraken/explanations", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SpeciesExplanationsResponse
	decodeData(t, rec, &resp)
	assert.NotEmpty(t, resp.Factors, "unknown species still gets the base explanation table")
}

func TestHandleFactorExplanation(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/species/chinook/factors/tidal_current", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FactorExplanationResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, types.FactorTidalCurrent, resp.Factor)
	assert.NotEmpty(t, resp.Explanation.Summary)
}

func TestHandleFactorExplanationUnknownKey(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/species/chinook/factors/barometric_vibes", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeNotFoundFactor), detail.Code)
	assert.Equal(t, "barometric_vibes", detail.Details["factor"])
}
