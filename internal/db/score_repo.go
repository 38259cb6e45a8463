package db

import (
	"context"
	"encoding/json"
	"time"

	"reelcaster/internal/types"
)

// ScoreRepository persists scored ticks produced by the poller and serves
// score history to the API. Factor maps and advice are stored as JSONB: the
// read path returns them verbatim and never needs to filter on individual
// factors.
type ScoreRepository struct {
	db DBTX
}

// NewScoreRepository creates a ScoreRepository backed by the given database
// connection (pool or transaction).
func NewScoreRepository(db DBTX) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// UpsertBatch writes a run's scores for one spot. Re-scoring the same
// (spot, species, timestamp) tick replaces the previous row, so repeated
// poller runs converge instead of duplicating.
func (r *ScoreRepository) UpsertBatch(ctx context.Context, spotID string, results []*types.ScoreResult) error {
	for _, res := range results {
		factors, err := json.Marshal(res.Factors)
		if err != nil {
			return types.NewAppError(types.ErrCodeInternalUnexpected, "failed to encode factor map", err)
		}
		advice, err := json.Marshal(res.StrategyAdvice)
		if err != nil {
			return types.NewAppError(types.ErrCodeInternalUnexpected, "failed to encode strategy advice", err)
		}

		_, err = r.db.Exec(ctx,
			`INSERT INTO scores
			   (spot_id, species, ts, total, factors, is_safe, is_in_season, algorithm_version, advice, scored_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
			 ON CONFLICT (spot_id, species, ts) DO UPDATE SET
			   total = EXCLUDED.total,
			   factors = EXCLUDED.factors,
			   is_safe = EXCLUDED.is_safe,
			   is_in_season = EXCLUDED.is_in_season,
			   algorithm_version = EXCLUDED.algorithm_version,
			   advice = EXCLUDED.advice,
			   scored_at = now()`,
			spotID, string(res.Species), res.Timestamp, res.Total, factors,
			res.IsSafe, res.IsInSeason, string(res.AlgorithmVersion), advice)
		if err != nil {
			return types.NewAppError(types.ErrCodeInternalDB, "failed to upsert score", err)
		}
	}
	return nil
}

// History returns stored scores for a spot and species over [from, to],
// ordered by tick time.
func (r *ScoreRepository) History(ctx context.Context, spotID string, species types.Species, from, to time.Time) ([]*types.ScoreResult, error) {
	rows, err := r.db.Query(ctx,
		`SELECT species, ts, total, factors, is_safe, is_in_season, algorithm_version, advice
		 FROM scores
		 WHERE spot_id = $1 AND species = $2 AND ts BETWEEN $3 AND $4
		 ORDER BY ts`,
		spotID, string(types.NormalizeSpecies(string(species))), from, to)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to query score history", err)
	}
	defer rows.Close()

	var results []*types.ScoreResult
	for rows.Next() {
		var (
			res         types.ScoreResult
			speciesID   string
			versionID   string
			factorsJSON []byte
			adviceJSON  []byte
		)
		if err := rows.Scan(&speciesID, &res.Timestamp, &res.Total, &factorsJSON,
			&res.IsSafe, &res.IsInSeason, &versionID, &adviceJSON); err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan score row", err)
		}

		res.Species = types.Species(speciesID)
		res.SpotID = spotID
		res.AlgorithmVersion = types.AlgorithmVersion(versionID)
		if err := json.Unmarshal(factorsJSON, &res.Factors); err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to decode stored factor map", err)
		}
		if len(adviceJSON) > 0 {
			if err := json.Unmarshal(adviceJSON, &res.StrategyAdvice); err != nil {
				return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to decode stored advice", err)
			}
		}

		results = append(results, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "error iterating score rows", err)
	}

	return results, nil
}
