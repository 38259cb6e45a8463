// Package poller implements the scheduled batch scorer. On each run it
// fetches weather and tide forecasts for every active spot, scores all of the
// spot's species across the forecast horizon, persists the results, and
// archives them to cold storage.
//
// Key behaviors:
//   - Per-spot error isolation: one spot failing to fetch or persist marks
//     the run "partial" without aborting the remaining spots.
//   - Fan-out across spots is bounded by the configured concurrency limit.
//   - Job-run accounting records start, finish, status, and item counts.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"reelcaster/internal/archive"
	"reelcaster/internal/config"
	"reelcaster/internal/scoring"
	"reelcaster/internal/telemetry"
	"reelcaster/internal/types"
	"reelcaster/internal/upstream"
)

// pressureWindow is how far back the pressure-trend context reaches.
const pressureWindow = 6 * time.Hour

// reportLookback is how far back catch reports are pulled for the
// catch-report confidence factor.
const reportLookback = 30 * 24 * time.Hour

// jobTypeScorePoll identifies poller runs in the job_runs table.
const jobTypeScorePoll = "score-poll"

// SpotRepo lists the locations to score.
type SpotRepo interface {
	ListActive(ctx context.Context) ([]types.Spot, error)
}

// ScoreWriter persists one spot's scored results.
type ScoreWriter interface {
	UpsertBatch(ctx context.Context, spotID string, results []*types.ScoreResult) error
}

// ReportRepo reads recent catch reports for the confidence factor.
type ReportRepo interface {
	Recent(ctx context.Context, spotID string, species types.Species, since time.Time) ([]types.CatchReport, error)
}

// JobRunRepo records run accounting.
type JobRunRepo interface {
	Start(ctx context.Context, jobType string, startedAt time.Time) (int64, error)
	Finish(ctx context.Context, id int64, status string, items int, errMsg string) error
}

// Poller scores every active spot on demand. Construct with NewPoller; run
// via RunOnce or on a schedule via Service.
type Poller struct {
	engine  *scoring.Engine
	spots   SpotRepo
	scores  ScoreWriter
	reports ReportRepo
	jobs    JobRunRepo
	weather upstream.WeatherProvider
	tide    upstream.TideProvider
	metrics telemetry.RunMetrics

	pollerCfg  config.PollerConfig
	archiveCfg config.ArchiveConfig
	logger     *slog.Logger
	clock      types.Clock
}

// Config holds the dependencies for creating a Poller.
type Config struct {
	Engine  *scoring.Engine
	Spots   SpotRepo
	Scores  ScoreWriter
	Reports ReportRepo
	Jobs    JobRunRepo
	Weather upstream.WeatherProvider
	Tide    upstream.TideProvider
	Metrics telemetry.RunMetrics

	Poller  config.PollerConfig
	Archive config.ArchiveConfig
	Logger  *slog.Logger
	Clock   types.Clock
}

// NewPoller creates a poller with the given configuration.
func NewPoller(cfg Config) *Poller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = telemetry.NoopMetrics{}
	}
	clock := cfg.Clock
	if clock == nil {
		clock = types.RealClock{}
	}
	return &Poller{
		engine:     cfg.Engine,
		spots:      cfg.Spots,
		scores:     cfg.Scores,
		reports:    cfg.Reports,
		jobs:       cfg.Jobs,
		weather:    cfg.Weather,
		tide:       cfg.Tide,
		metrics:    metrics,
		pollerCfg:  cfg.Poller,
		archiveCfg: cfg.Archive,
		logger:     logger,
		clock:      clock,
	}
}

// RunStats summarizes one poller run.
type RunStats struct {
	SpotsScored int
	SpotsFailed int
	TicksScored int
	Outcome     string
}

// RunOnce executes a full scoring run: list spots, score each concurrently,
// persist and archive. It returns stats plus an error only when the run as a
// whole could not proceed (listing spots failed); individual spot failures
// degrade the outcome to "partial".
func (p *Poller) RunOnce(ctx context.Context) (RunStats, error) {
	started := p.clock.Now().UTC()

	var jobID int64
	if p.jobs != nil {
		id, err := p.jobs.Start(ctx, jobTypeScorePoll, started)
		if err != nil {
			p.logger.WarnContext(ctx, "failed to record job start", "error", err)
		} else {
			jobID = id
		}
	}

	stats, runErr := p.run(ctx, started)

	duration := p.clock.Now().Sub(started)
	p.metrics.RecordRunDuration(ctx, duration)
	p.metrics.RecordRunOutcome(ctx, stats.Outcome)

	if p.jobs != nil && jobID != 0 {
		errMsg := ""
		if runErr != nil {
			errMsg = runErr.Error()
		}
		if err := p.jobs.Finish(ctx, jobID, stats.Outcome, stats.TicksScored, errMsg); err != nil {
			p.logger.WarnContext(ctx, "failed to record job finish", "error", err)
		}
	}

	p.logger.InfoContext(ctx, "scoring run complete",
		"outcome", stats.Outcome,
		"spots_scored", stats.SpotsScored,
		"spots_failed", stats.SpotsFailed,
		"ticks_scored", stats.TicksScored,
		"duration", duration,
	)

	return stats, runErr
}

func (p *Poller) run(ctx context.Context, started time.Time) (RunStats, error) {
	stats := RunStats{Outcome: "failed"}

	spots, err := p.spots.ListActive(ctx)
	if err != nil {
		return stats, fmt.Errorf("listing active spots: %w", err)
	}
	if len(spots) == 0 {
		stats.Outcome = "succeeded"
		return stats, nil
	}

	var arch *archive.Writer
	if p.archiveCfg.Enabled {
		w, err := archive.NewWriter(p.archiveCfg.Dir, started, p.archiveCfg.Level)
		if err != nil {
			// Archiving is best-effort; scoring proceeds without it.
			p.logger.WarnContext(ctx, "failed to open archive, run will not be archived", "error", err)
		} else {
			arch = w
			defer func() {
				if err := arch.Close(); err != nil {
					p.logger.WarnContext(ctx, "failed to close archive", "error", err)
				}
			}()
		}
	}

	var (
		mu           sync.Mutex
		ticksTotal   int
		failed       int
		perSpecies   = make(map[types.Species]int)
		archiveQueue []*types.ScoreResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.pollerCfg.Concurrency)

	for _, spot := range spots {
		g.Go(func() error {
			spotCtx, cancel := context.WithTimeout(gctx, p.pollerCfg.SpotTimeout)
			defer cancel()

			results, err := p.scoreSpot(spotCtx, spot, started)
			if err != nil {
				p.logger.ErrorContext(spotCtx, "spot scoring failed",
					"spot_id", spot.ID,
					"spot_name", spot.Name,
					"error", err,
				)
				mu.Lock()
				failed++
				mu.Unlock()
				// Spot failures never abort the run.
				return nil
			}

			mu.Lock()
			ticksTotal += len(results)
			for _, res := range results {
				perSpecies[res.Species]++
			}
			if arch != nil {
				archiveQueue = append(archiveQueue, results...)
			}
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	if arch != nil {
		for _, res := range archiveQueue {
			if err := arch.Append(res); err != nil {
				p.logger.WarnContext(ctx, "failed to archive score", "error", err)
				break
			}
		}
	}

	for sp, count := range perSpecies {
		p.metrics.RecordScoredTicks(ctx, string(sp), count)
	}

	stats.SpotsScored = len(spots) - failed
	stats.SpotsFailed = failed
	stats.TicksScored = ticksTotal

	switch {
	case failed == 0:
		stats.Outcome = "succeeded"
	case failed < len(spots):
		stats.Outcome = "partial"
	default:
		stats.Outcome = "failed"
	}

	return stats, nil
}

// scoreSpot fetches forecasts for one spot, scores every species across the
// horizon, and persists the batch.
func (p *Poller) scoreSpot(ctx context.Context, spot types.Spot, started time.Time) ([]*types.ScoreResult, error) {
	from := started
	to := started.Add(time.Duration(p.pollerCfg.HorizonDays) * 24 * time.Hour)

	forecast, err := p.weather.Forecast(ctx, spot.Lat, spot.Lon, from, to)
	if err != nil {
		p.metrics.RecordUpstreamFailure(ctx, "weather")
		return nil, fmt.Errorf("fetching weather: %w", err)
	}

	// Tide failures degrade to scoring without tide data rather than
	// skipping the spot; tide-dependent factors go neutral.
	var tides *upstream.TideSeries
	if spot.TideStation != "" {
		tides, err = p.tide.Predictions(ctx, spot.TideStation, from, to)
		if err != nil {
			p.metrics.RecordUpstreamFailure(ctx, "tide")
			p.logger.WarnContext(ctx, "tide fetch failed, scoring without tide data",
				"spot_id", spot.ID,
				"station", spot.TideStation,
				"error", err,
			)
			tides = nil
		}
	}

	reports := p.fetchReports(ctx, spot)

	var results []*types.ScoreResult
	for _, sample := range forecast.Samples {
		if !p.onTick(sample.Timestamp, started) {
			continue
		}

		windDir := sample.WindDirectionDeg
		algCtx := types.AlgorithmContext{
			PressureHistory:  forecast.PressureHistory(sample.Timestamp, pressureWindow),
			WindDirectionDeg: &windDir,
		}
		if day, ok := forecast.DayFor(sample.Timestamp); ok {
			algCtx.Sunrise = day.Sunrise
			algCtx.Sunset = day.Sunset
			algCtx.Solunar = day.Solunar
		}

		var tide *types.TideSnapshot
		if tides != nil {
			tide, _ = tides.At(sample.Timestamp, p.pollerCfg.TickInterval)
		}

		for _, species := range spot.Species {
			algCtx.Reports = reports[species]

			in := scoring.Input{Sample: sample, Tide: tide, Context: algCtx}
			res := p.engine.Score(in, species)
			res.SpotID = spot.ID
			results = append(results, res)
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("forecast for spot %s produced no scorable ticks", spot.ID)
	}

	if p.scores != nil {
		if err := p.scores.UpsertBatch(ctx, spot.ID, results); err != nil {
			return nil, fmt.Errorf("persisting scores: %w", err)
		}
	}

	return results, nil
}

// fetchReports loads recent catch reports per species. Report failures are
// non-fatal; the catch-report factor scores neutral without them.
func (p *Poller) fetchReports(ctx context.Context, spot types.Spot) map[types.Species][]types.CatchReport {
	out := make(map[types.Species][]types.CatchReport, len(spot.Species))
	if p.reports == nil {
		return out
	}

	since := p.clock.Now().Add(-reportLookback)
	for _, species := range spot.Species {
		reports, err := p.reports.Recent(ctx, spot.ID, species, since)
		if err != nil {
			p.logger.WarnContext(ctx, "failed to load catch reports",
				"spot_id", spot.ID,
				"species", string(species),
				"error", err,
			)
			continue
		}
		out[species] = reports
	}
	return out
}

// onTick reports whether a sample timestamp lands on the configured scoring
// interval. Ticks align to the wall clock, not the run start, so successive
// runs upsert the same rows.
func (p *Poller) onTick(ts, started time.Time) bool {
	if ts.Before(started) {
		return false
	}
	interval := p.pollerCfg.TickInterval
	if interval <= 0 {
		return true
	}
	return ts.Truncate(interval).Equal(ts)
}
