package archive

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelcaster/internal/types"
)

func TestWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	started := time.Date(2025, 8, 8, 6, 0, 0, 0, time.UTC)

	w, err := NewWriter(dir, started, 3)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(w.Path(), "scores-20250808T060000Z.jsonl.zst"))

	for i := 0; i < 25; i++ {
		res := &types.ScoreResult{
			Species:   types.SpeciesChinook,
			SpotID:    "spot-1",
			Timestamp: started.Add(time.Duration(i) * 15 * time.Minute),
			Total:     7.5,
			Factors: map[types.FactorKey]types.FactorResult{
				types.FactorSeasonality: {Value: "peak run window", Weight: 0.2, Score: 9.8},
			},
			IsSafe:           true,
			IsInSeason:       true,
			AlgorithmVersion: types.AlgorithmV2,
		}
		require.NoError(t, w.Append(res))
	}
	assert.Equal(t, 25, w.Count())
	require.NoError(t, w.Close())

	results, err := ReadAll(w.Path())
	require.NoError(t, err)
	require.Len(t, results, 25)
	assert.Equal(t, types.SpeciesChinook, results[0].Species)
	assert.Equal(t, started, results[0].Timestamp)
	assert.InDelta(t, 9.8, results[0].Factors[types.FactorSeasonality].Score, 1e-9)
	assert.True(t, results[24].Timestamp.After(results[0].Timestamp))
}

func TestWriterRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	started := time.Date(2025, 8, 8, 6, 0, 0, 0, time.UTC)

	w, err := NewWriter(dir, started, 1)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = NewWriter(dir, started, 1)
	require.Error(t, err, "a second run in the same second must not clobber the first archive")

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeInternalArchive, appErr.Code)
}

func TestReadAllMissingFile(t *testing.T) {
	_, err := ReadAll("/nonexistent/archive.jsonl.zst")
	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeInternalArchive, appErr.Code)
}
