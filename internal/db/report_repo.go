package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"reelcaster/internal/types"
)

// CatchReportRepository provides data access for angler-submitted catch
// reports, consumed by the catch-report confidence factor.
type CatchReportRepository struct {
	db DBTX
}

// NewCatchReportRepository creates a CatchReportRepository backed by the
// given database connection (pool or transaction).
func NewCatchReportRepository(db DBTX) *CatchReportRepository {
	return &CatchReportRepository{db: db}
}

// Recent returns reports for a spot and species reported since the cutoff,
// newest first. The scorer weighs each report by age, so ordering is a
// convenience rather than a contract.
func (r *CatchReportRepository) Recent(ctx context.Context, spotID string, species types.Species, since time.Time) ([]types.CatchReport, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, spot_id, species, reported_at, caught, success
		 FROM catch_reports
		 WHERE spot_id = $1 AND species = $2 AND reported_at >= $3
		 ORDER BY reported_at DESC`,
		spotID, string(types.NormalizeSpecies(string(species))), since)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to query catch reports", err)
	}
	defer rows.Close()

	var reports []types.CatchReport
	for rows.Next() {
		var rep types.CatchReport
		var speciesID string
		if err := rows.Scan(&rep.ID, &rep.SpotID, &speciesID, &rep.ReportedAt, &rep.Caught, &rep.Success); err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan catch report row", err)
		}
		rep.Species = types.Species(speciesID)
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "error iterating catch report rows", err)
	}

	return reports, nil
}

// Insert stores a new catch report and returns it with the generated ID.
func (r *CatchReportRepository) Insert(ctx context.Context, report types.CatchReport) (*types.CatchReport, error) {
	report.ID = uuid.NewString()
	report.Species = types.NormalizeSpecies(string(report.Species))
	if report.ReportedAt.IsZero() {
		report.ReportedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO catch_reports (id, spot_id, species, reported_at, caught, success)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		report.ID, report.SpotID, string(report.Species), report.ReportedAt, report.Caught, report.Success)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to insert catch report", err)
	}

	return &report, nil
}
