package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"reelcaster/internal/types"
)

// SpotRepository provides data access for fishing spots: the named locations
// the poller scores on a schedule and the API serves score history for.
type SpotRepository struct {
	db DBTX
}

// NewSpotRepository creates a SpotRepository backed by the given database
// connection (pool or transaction).
func NewSpotRepository(db DBTX) *SpotRepository {
	return &SpotRepository{db: db}
}

const spotColumns = `id, name, lat, lon, tide_station, species, created_at`

// ListActive returns every spot the poller should score, ordered by name for
// deterministic run output.
func (r *SpotRepository) ListActive(ctx context.Context) ([]types.Spot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+spotColumns+`
		 FROM spots
		 WHERE deleted_at IS NULL
		 ORDER BY name`)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to list spots", err)
	}
	defer rows.Close()

	var spots []types.Spot
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, err
		}
		spots = append(spots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "error iterating spot rows", err)
	}

	return spots, nil
}

// Get returns one spot by ID. A missing spot maps to ErrCodeNotFoundSpot so
// handlers can return 404 without inspecting pgx sentinels.
func (r *SpotRepository) Get(ctx context.Context, id string) (*types.Spot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+spotColumns+`
		 FROM spots
		 WHERE id = $1 AND deleted_at IS NULL`, id)

	s, err := scanSpot(row)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new spot and returns it with the generated ID.
func (r *SpotRepository) Create(ctx context.Context, spot types.Spot) (*types.Spot, error) {
	spot.ID = uuid.NewString()
	spot.CreatedAt = time.Now().UTC()

	speciesIDs := make([]string, 0, len(spot.Species))
	for _, sp := range spot.Species {
		speciesIDs = append(speciesIDs, string(types.NormalizeSpecies(string(sp))))
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO spots (id, name, lat, lon, tide_station, species, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		spot.ID, spot.Name, spot.Lat, spot.Lon, spot.TideStation, speciesIDs, spot.CreatedAt)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to insert spot", err)
	}

	return &spot, nil
}

// scanSpot scans one spot row from either pgx.Row or pgx.Rows.
func scanSpot(row pgx.Row) (types.Spot, error) {
	var s types.Spot
	var speciesIDs []string

	err := row.Scan(&s.ID, &s.Name, &s.Lat, &s.Lon, &s.TideStation, &speciesIDs, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s, types.NewAppError(types.ErrCodeNotFoundSpot, "spot not found", err)
		}
		return s, types.NewAppError(types.ErrCodeInternalDB, "failed to scan spot row", err)
	}

	s.Species = make([]types.Species, 0, len(speciesIDs))
	for _, id := range speciesIDs {
		s.Species = append(s.Species, types.Species(id))
	}
	return s, nil
}
