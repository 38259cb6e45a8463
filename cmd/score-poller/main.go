// Package main is the entry point for the ReelCaster score poller.
//
// The poller runs scheduled scoring sweeps: it fetches weather and tide
// forecasts for every active spot, scores all species across the horizon,
// persists the results, and archives each run to cold storage.
//
// Usage:
//
//	score-poller          run on the configured cron schedule
//	score-poller -once    run a single sweep and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"

	"reelcaster/internal/config"
	"reelcaster/internal/db"
	"reelcaster/internal/poller"
	"reelcaster/internal/scoring"
	"reelcaster/internal/telemetry"
	"reelcaster/internal/upstream"
)

func main() {
	once := flag.Bool("once", false, "run a single scoring sweep and exit")
	flag.Parse()

	if err := run(*once); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(once bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("reelcaster score poller starting",
		"environment", cfg.Environment,
		"version", cfg.Build.Version,
		"schedule", cfg.Poller.Schedule,
		"horizon_days", cfg.Poller.HorizonDays,
	)

	tuning, err := config.LoadTuning(cfg.Scoring)
	if err != nil {
		return fmt.Errorf("loading tuning file: %w", err)
	}
	engine := scoring.NewEngine(
		scoring.WithTuning(tuning),
		scoring.WithLogger(logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	metrics, err := newMetrics(ctx, cfg.Telemetry, logger)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	retry := upstream.RetryPolicy{
		MaxRetries: cfg.Upstream.MaxRetries,
		MinWait:    cfg.Upstream.RetryDelay,
		MaxWait:    cfg.Upstream.MaxBackoff,
	}
	weatherBase := upstream.NewBaseClient(httpClient, cfg.Upstream.BreakerName+"-weather", retry, cfg.Upstream.UserAgent)
	tideBase := upstream.NewBaseClient(httpClient, cfg.Upstream.BreakerName+"-tide", retry, cfg.Upstream.UserAgent)

	p := poller.NewPoller(poller.Config{
		Engine:  engine,
		Spots:   db.NewSpotRepository(pool),
		Scores:  db.NewScoreRepository(pool),
		Reports: db.NewCatchReportRepository(pool),
		Jobs:    db.NewJobRunRepository(pool),
		Weather: upstream.NewWeatherClient(weatherBase, cfg.Upstream.WeatherBaseURL, cfg.Upstream.WeatherAPIKey),
		Tide:    upstream.NewTideClient(tideBase, cfg.Upstream.TideBaseURL, cfg.Upstream.TideAPIKey),
		Metrics: metrics,
		Poller:  cfg.Poller,
		Archive: cfg.Archive,
		Logger:  logger,
	})

	if once {
		stats, err := p.RunOnce(context.Background())
		if err != nil {
			return fmt.Errorf("scoring run: %w", err)
		}
		logger.Info("single run finished",
			"outcome", stats.Outcome,
			"ticks_scored", stats.TicksScored,
		)
		return nil
	}

	svc, err := poller.NewService(p, cfg.Poller.Schedule, logger)
	if err != nil {
		return fmt.Errorf("creating poller service: %w", err)
	}
	svc.Start()
	logger.Info("poller scheduled", "schedule", cfg.Poller.Schedule)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	sig := <-shutdown
	logger.Info("shutdown signal received", "signal", sig.String())

	// Wait for any in-flight run to finish before exiting.
	<-svc.Stop().Done()
	logger.Info("poller stopped cleanly")
	return nil
}

// newMetrics builds the CloudWatch publisher when telemetry is enabled, or a
// no-op sink otherwise.
func newMetrics(ctx context.Context, cfg config.TelemetryConfig, logger *slog.Logger) (telemetry.RunMetrics, error) {
	if !cfg.Enabled {
		return telemetry.NoopMetrics{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}

	client := cloudwatch.NewFromConfig(awsCfg)
	return telemetry.NewCloudWatchMetrics(client, cfg.MetricNamespace, logger), nil
}

// newLogger creates a JSON structured logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}
