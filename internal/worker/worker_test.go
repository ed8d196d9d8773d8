package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comparee/internal/core/domain"
	"comparee/internal/core/port/mocks"
	"comparee/internal/metrics"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runUntil starts loop, waits until n ticks were observed and stops it.
func runUntil(t *testing.T, loop func(context.Context), calls *atomic.Int32, n int32) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= n }, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestBudgetSweeper_KeepsRunningAfterFailure(t *testing.T) {
	enforcer := mocks.NewMockBudgetEnforcer(t)
	var calls atomic.Int32

	enforcer.EXPECT().EnforceBudgets(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]domain.PausedCampaign, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			if calls.Add(1) == 1 {
				return nil, errors.New("pause campaigns: connection reset")
			}
			return []domain.PausedCampaign{{CampaignID: 1}}, nil
		})

	s := NewBudgetSweeper(enforcer, 5*time.Millisecond, time.Second, discardLogger())
	runUntil(t, s.Start, &calls, 3)

	assert.Positive(t, testutil.ToFloat64(metrics.JobLastRun.WithLabelValues(jobBudgetSweep)))
}

func TestTranslationWorker_Dispatches(t *testing.T) {
	dispatcher := mocks.NewMockTranslationDispatcher(t)
	var calls atomic.Int32

	dispatcher.EXPECT().DispatchDue(mock.Anything).
		RunAndReturn(func(context.Context) (int, int, error) {
			switch calls.Add(1) {
			case 1:
				return 2, 1, nil
			case 2:
				return 0, 0, errors.New("claim due jobs: timeout")
			default:
				return 0, 0, nil
			}
		})

	w := NewTranslationWorker(dispatcher, 5*time.Millisecond, discardLogger())
	runUntil(t, w.Start, &calls, 3)

	assert.Positive(t, testutil.ToFloat64(metrics.JobLastRun.WithLabelValues(jobTranslationDispatch)))
}

func TestWorkers_StopWithoutTicking(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Mocks fail the test on any unexpected call.
	NewBudgetSweeper(mocks.NewMockBudgetEnforcer(t), time.Hour, 0, discardLogger()).Start(ctx)
	NewTranslationWorker(mocks.NewMockTranslationDispatcher(t), time.Hour, discardLogger()).Start(ctx)
}
