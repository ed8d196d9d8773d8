package worker

import (
	"context"
	"log/slog"
	"time"

	"comparee/internal/core/port"
	"comparee/internal/metrics"
)

const jobBudgetSweep = "budget_sweep"

// BudgetSweeper periodically pauses campaigns whose company can no longer
// cover the bid.
type BudgetSweeper struct {
	enforcer port.BudgetEnforcer
	logger   *slog.Logger
	interval time.Duration
	timeout  time.Duration
}

func NewBudgetSweeper(enforcer port.BudgetEnforcer, interval, timeout time.Duration, logger *slog.Logger) *BudgetSweeper {
	return &BudgetSweeper{
		enforcer: enforcer,
		logger:   logger.With(slog.String("job", jobBudgetSweep)),
		interval: interval,
		timeout:  timeout,
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *BudgetSweeper) Start(ctx context.Context) {
	s.logger.Info("budget sweeper started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("budget sweeper stopped")
			return
		}
	}
}

func (s *BudgetSweeper) runOnce(ctx context.Context) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	start := time.Now()
	paused, err := s.enforcer.EnforceBudgets(ctx)
	if err != nil {
		s.logger.Warn("budget sweep failed", slog.Any("error", err))
		return
	}
	metrics.MarkJobRun(jobBudgetSweep)
	s.logger.Debug("budget sweep complete",
		slog.Int("paused", len(paused)),
		slog.Duration("duration", time.Since(start)),
	)
}
