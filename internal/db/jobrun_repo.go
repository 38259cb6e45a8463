package db

import (
	"context"
	"time"

	"reelcaster/internal/types"
)

// JobRunRepository records scheduled run accounting for observability: when
// each poller run started, how many items it scored and how it ended.
type JobRunRepository struct {
	db DBTX
}

// NewJobRunRepository creates a JobRunRepository backed by the given database
// connection (pool or transaction).
func NewJobRunRepository(db DBTX) *JobRunRepository {
	return &JobRunRepository{db: db}
}

// Start records the beginning of a run and returns its ID for the matching
// Finish call.
func (r *JobRunRepository) Start(ctx context.Context, jobType string, startedAt time.Time) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO job_runs (job_type, started_at, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		jobType, startedAt).Scan(&id)
	if err != nil {
		return 0, types.NewAppError(types.ErrCodeInternalDB, "failed to record job run start", err)
	}
	return id, nil
}

// Finish closes out a run. status is "succeeded", "partial" or "failed";
// errMsg is empty on success.
func (r *JobRunRepository) Finish(ctx context.Context, id int64, status string, items int, errMsg string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE job_runs
		 SET finished_at = now(), status = $2, items_count = $3, error = $4
		 WHERE id = $1`,
		id, status, items, errMsg)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalDB, "failed to record job run finish", err)
	}
	return nil
}
