package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Service runs the poller on a cron schedule. Overlapping runs are skipped:
// if a run is still in flight when the next trigger fires, the trigger is
// dropped rather than queued.
type Service struct {
	poller *Poller
	cron   *cron.Cron
	logger *slog.Logger
}

// NewService wires the poller onto a cron schedule. The schedule uses the
// standard five-field cron syntax, evaluated in UTC.
func NewService(p *Poller, schedule string, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cronLogger := slogCronLogger{logger: logger}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger)),
	)

	s := &Service{poller: p, cron: c, logger: logger}

	_, err := c.AddFunc(schedule, func() {
		ctx := context.Background()
		if _, err := p.RunOnce(ctx); err != nil {
			logger.ErrorContext(ctx, "scheduled scoring run failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid poller schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start begins scheduling. Returns immediately; runs happen on cron's
// goroutine.
func (s *Service) Start() {
	s.cron.Start()
}

// Stop halts scheduling and returns a context that closes once any in-flight
// run completes.
func (s *Service) Stop() context.Context {
	return s.cron.Stop()
}

// slogCronLogger adapts slog to cron's logger interface.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	args := append([]interface{}{"error", err}, keysAndValues...)
	l.logger.Error(msg, args...)
}
