package sweep

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/utils"
)

// Runner is one sweep invocation.
type Runner interface {
	Run(ctx context.Context) (int64, error)
}

// Scheduler fires a Runner once per UTC day at a fixed wall-clock time.
// A failed run is logged and the next day's run proceeds as usual.
type Scheduler struct {
	runner Runner
	hour   int
	minute int
	now    func() time.Time
	after  func(time.Duration) <-chan time.Time
}

type SchedulerOption func(*Scheduler)

// WithClock replaces time.Now and time.After, for tests.
func WithClock(now func() time.Time, after func(time.Duration) <-chan time.Time) SchedulerOption {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
		if after != nil {
			s.after = after
		}
	}
}

// NewScheduler parses at as HH:MM in UTC.
func NewScheduler(runner Runner, at string, opts ...SchedulerOption) (*Scheduler, error) {
	hour, minute, err := utils.ParseClock(at)
	if err != nil {
		return nil, err
	}
	s := &Scheduler{
		runner: runner,
		hour:   hour,
		minute: minute,
		now:    time.Now,
		after:  time.After,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Next returns the next fire time after now.
func (s *Scheduler) Next() time.Time {
	return utils.NextUTC(s.now(), s.hour, s.minute)
}

// Start blocks, running the sweep at each fire time until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	for {
		next := s.Next()
		wait := next.Sub(s.now())
		logger.Debug("Next sweep scheduled", "at", next.Format(time.RFC3339), "in", wait.String())

		select {
		case <-ctx.Done():
			logger.Info("Sweep scheduler stopped")
			return ctx.Err()
		case <-s.after(wait):
			s.RunOnce(ctx)
		}
	}
}

// RunOnce runs the sweep once and logs the outcome under a fresh run id.
func (s *Scheduler) RunOnce(ctx context.Context) {
	runID := uuid.NewString()
	start := time.Now()
	logger.Info("Sweep started", "run_id", runID)

	n, err := s.runner.Run(ctx)
	if err != nil {
		logger.Error("Sweep failed", "run_id", runID, "error", err, "duration", time.Since(start))
		return
	}
	logger.Info("Sweep finished", "run_id", runID, "deleted", n, "duration", time.Since(start))
}
