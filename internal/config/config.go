// Package config defines the global configuration structure for the
// ReelCaster services. Configuration is loaded once at process startup and is
// immutable thereafter, following 12-Factor principles: values come from the
// OS environment, with a .env file as a development convenience.
//
// Any missing required value or invalid format fails startup immediately.
package config

import (
	"time"

	"reelcaster/internal/types"
)

// SecretString is an alias for types.SecretString, the redacted secret type
// used throughout configuration to prevent accidental logging of sensitive
// values.
type SecretString = types.SecretString

// Config is the top-level configuration struct shared by the API server, the
// score poller and the CLI. Sub-components receive only the specific config
// subsets they require.
type Config struct {
	Environment string `envconfig:"APP_ENV" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"reelcaster"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	Server    ServerConfig
	Database  DatabaseConfig
	Upstream  UpstreamConfig
	Scoring   ScoringConfig
	Poller    PollerConfig
	Archive   ArchiveConfig
	Telemetry TelemetryConfig

	// Build metadata injected via ldflags, not env.
	Build BuildInfo
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
	MaxBatchSize    int           `envconfig:"SERVER_MAX_BATCH_SIZE" default:"500"`
}

// DatabaseConfig holds database connection and pool tuning parameters.
type DatabaseConfig struct {
	URL SecretString `envconfig:"DATABASE_URL" validate:"required,url"`

	MaxConns          int           `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns          int           `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime   time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`
	AcquireTimeout    time.Duration `envconfig:"DB_ACQUIRE_TIMEOUT" default:"2s"`
	HealthCheckPeriod time.Duration `envconfig:"DB_HEALTH_CHECK_PERIOD" default:"1m"`
}

// UpstreamConfig holds the weather and tide provider endpoints and the shared
// HTTP client tuning used when calling them.
type UpstreamConfig struct {
	WeatherBaseURL string       `envconfig:"WEATHER_BASE_URL" validate:"required,url"`
	WeatherAPIKey  SecretString `envconfig:"WEATHER_API_KEY"`
	TideBaseURL    string       `envconfig:"TIDE_BASE_URL" validate:"required,url"`
	TideAPIKey     SecretString `envconfig:"TIDE_API_KEY"`

	Timeout     time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	MaxRetries  int           `envconfig:"UPSTREAM_MAX_RETRIES" default:"3"`
	RetryDelay  time.Duration `envconfig:"UPSTREAM_RETRY_DELAY" default:"500ms"`
	MaxBackoff  time.Duration `envconfig:"UPSTREAM_MAX_BACKOFF" default:"10s"`
	UserAgent   string        `envconfig:"UPSTREAM_USER_AGENT" default:"ReelCaster/1.0"`
	BreakerName string        `envconfig:"UPSTREAM_BREAKER_NAME" default:"upstream"`
}

// ScoringConfig holds engine tuning inputs.
type ScoringConfig struct {
	// TuningFile optionally points at a yaml file of per-species curve and
	// weight overrides. Empty means ship defaults.
	TuningFile string `envconfig:"SCORING_TUNING_FILE"`
}

// PollerConfig holds the batch scoring schedule and fan-out limits.
type PollerConfig struct {
	// Schedule is a cron expression in the poller's local (UTC) time.
	Schedule     string        `envconfig:"POLLER_SCHEDULE" default:"*/30 * * * *"`
	HorizonDays  int           `envconfig:"POLLER_HORIZON_DAYS" default:"7" validate:"min=1,max=14"`
	TickInterval time.Duration `envconfig:"POLLER_TICK_INTERVAL" default:"15m"`
	Concurrency  int           `envconfig:"POLLER_CONCURRENCY" default:"8" validate:"min=1"`
	SpotTimeout  time.Duration `envconfig:"POLLER_SPOT_TIMEOUT" default:"2m"`
}

// ArchiveConfig holds cold-storage settings for scored run output.
type ArchiveConfig struct {
	Dir     string `envconfig:"ARCHIVE_DIR" default:"/var/lib/reelcaster/archive"`
	Enabled bool   `envconfig:"ARCHIVE_ENABLED" default:"true"`
	// Level is the zstd compression level (1 fastest, 4 best).
	Level int `envconfig:"ARCHIVE_ZSTD_LEVEL" default:"3" validate:"min=1,max=4"`
}

// TelemetryConfig holds metric publishing settings.
type TelemetryConfig struct {
	Enabled         bool          `envconfig:"TELEMETRY_ENABLED" default:"false"`
	MetricNamespace string        `envconfig:"METRIC_NAMESPACE" default:"ReelCaster"`
	Region          string        `envconfig:"AWS_REGION" default:"us-west-2"`
	FlushInterval   time.Duration `envconfig:"TELEMETRY_FLUSH_INTERVAL" default:"1m"`
}

// BuildInfo holds build-time metadata injected via ldflags.
// These values are NOT populated from environment variables.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// ConfigErrorType categorizes configuration loading failures to aid debugging.
type ConfigErrorType string

const (
	// ErrValidation indicates the configuration failed struct validation rules.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrParsing indicates a failure when parsing environment variable values
	// into their target types.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
	// ErrTuning indicates the species tuning file could not be read or parsed.
	ErrTuning ConfigErrorType = "TUNING_FAILED"
)
