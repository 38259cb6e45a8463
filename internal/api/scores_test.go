package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelcaster/internal/types"
)

func TestHandleScoreHappyPath(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/scores", ScoreRequest{
		Species: "King Salmon",
		Sample:  dawnSample(),
		Context: dawnContext(),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ScoreResult
	decodeData(t, rec, &result)

	assert.Equal(t, types.SpeciesChinook, result.Species, "alias resolves before scoring")
	assert.Equal(t, types.AlgorithmV2, result.AlgorithmVersion)
	assert.GreaterOrEqual(t, result.Total, 0.0)
	assert.LessOrEqual(t, result.Total, 10.0)
	assert.NotEmpty(t, result.Factors)
}

func TestHandleScoreForcesAlgorithmVersion(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/scores", ScoreRequest{
		Species:          "chinook",
		Sample:           dawnSample(),
		Context:          dawnContext(),
		AlgorithmVersion: types.AlgorithmV1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ScoreResult
	decodeData(t, rec, &result)
	assert.Equal(t, types.AlgorithmV1, result.AlgorithmVersion)
	assert.NotContains(t, result.Factors, types.FactorSolunar, "legacy factor set excludes solunar")
}

func TestHandleScoreRejectsMissingSpecies(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/scores", ScoreRequest{
		Sample:  dawnSample(),
		Context: dawnContext(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeValidationMissingField), detail.Code)
}

func TestHandleScoreRejectsZeroTimestamp(t *testing.T) {
	srv := newTestServer(t)

	sample := dawnSample()
	sample.Timestamp = time.Time{}

	rec := doJSON(t, srv, http.MethodPost, "/v1/scores", ScoreRequest{
		Species: "coho",
		Sample:  sample,
		Context: dawnContext(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeValidationInvalidSample), detail.Code)
}

func TestHandleScoreRejectsUnknownFields(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/scores", map[string]any{
		"species": "coho",
		"fish_iq": 140,
		"sample":  dawnSample(),
		"context": dawnContext(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "validation_invalid_json", detail.Code)
}

func TestHandleScoreBatchOrdering(t *testing.T) {
	srv := newTestServer(t)

	base := dawnSample()
	ticks := make([]ScoreTick, 3)
	for i := range ticks {
		s := base
		s.Timestamp = base.Timestamp.Add(time.Duration(i) * 15 * time.Minute)
		ticks[i] = ScoreTick{Sample: s}
	}

	rec := doJSON(t, srv, http.MethodPost, "/v1/scores/batch", BatchScoreRequest{
		Species: []string{"chinook", "coho"},
		Ticks:   ticks,
		Context: dawnContext(),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BatchScoreResponse
	decodeData(t, rec, &resp)
	require.Len(t, resp.Results, 6)

	// Species-major: first three results are chinook in tick order.
	for i := 0; i < 3; i++ {
		assert.Equal(t, types.SpeciesChinook, resp.Results[i].Species)
		assert.Equal(t, ticks[i].Sample.Timestamp, resp.Results[i].Timestamp)
	}
	for i := 3; i < 6; i++ {
		assert.Equal(t, types.SpeciesCoho, resp.Results[i].Species)
	}
}

func TestHandleScoreBatchSizeLimit(t *testing.T) {
	srv := newTestServer(t)

	// 2 species x 6 ticks = 12 > the test server's limit of 10.
	ticks := make([]ScoreTick, 6)
	for i := range ticks {
		s := dawnSample()
		s.Timestamp = s.Timestamp.Add(time.Duration(i) * 15 * time.Minute)
		ticks[i] = ScoreTick{Sample: s}
	}

	rec := doJSON(t, srv, http.MethodPost, "/v1/scores/batch", BatchScoreRequest{
		Species: []string{"chinook", "coho"},
		Ticks:   ticks,
		Context: dawnContext(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeValidationBatchSize), detail.Code)
	assert.EqualValues(t, 12, detail.Details["requested"])
}

func TestHandleScoreBatchRejectsEmptyTicks(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/scores/batch", BatchScoreRequest{
		Species: []string{"chinook"},
		Context: dawnContext(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeValidationMissingField), detail.Code)
}

func TestHandleScoreBatchFlagsBadTick(t *testing.T) {
	srv := newTestServer(t)

	good := dawnSample()
	rec := doJSON(t, srv, http.MethodPost, "/v1/scores/batch", BatchScoreRequest{
		Species: []string{"chinook"},
		Ticks:   []ScoreTick{{Sample: good}, {Sample: types.EnvironmentalSample{}}},
		Context: dawnContext(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, string(types.ErrCodeValidationInvalidSample), detail.Code)
	assert.EqualValues(t, 1, detail.Details["tick"])
}
