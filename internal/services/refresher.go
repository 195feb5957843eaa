package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"eventhub/internal/domain"
)

// Refresher re-fetches the discovery snapshot on a cron schedule.
type Refresher struct {
	svc     domain.DiscoveryService
	cron    *cron.Cron
	timeout time.Duration
	logger  *slog.Logger
}

// NewRefresher schedules svc.Refresh using a standard five-field cron expression.
// Overlapping runs are skipped rather than queued.
func NewRefresher(svc domain.DiscoveryService, schedule string, timeout time.Duration, logger *slog.Logger) (*Refresher, error) {
	r := &Refresher{
		svc:     svc,
		timeout: timeout,
		logger:  logger,
	}
	r.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return nil, fmt.Errorf("parse refresh schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Start runs the scheduler in its own goroutine.
func (r *Refresher) Start() {
	r.cron.Start()
}

// Stop halts scheduling and waits for a running refresh, or ctx, to finish.
func (r *Refresher) Stop(ctx context.Context) {
	done := r.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		r.logger.WarnContext(ctx, "refresh still running at shutdown")
	}
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	if err := r.svc.Refresh(ctx); err != nil {
		r.logger.ErrorContext(ctx, "scheduled refresh failed", "err", err, "duration", time.Since(start))
		return
	}
	r.logger.DebugContext(ctx, "scheduled refresh done", "duration", time.Since(start))
}
