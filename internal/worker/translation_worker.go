package worker

import (
	"context"
	"log/slog"
	"time"

	"comparee/internal/core/port"
	"comparee/internal/metrics"
)

const jobTranslationDispatch = "translation_dispatch"

// TranslationWorker polls the translation outbox and delivers due jobs.
type TranslationWorker struct {
	dispatcher port.TranslationDispatcher
	logger     *slog.Logger
	interval   time.Duration
}

func NewTranslationWorker(dispatcher port.TranslationDispatcher, interval time.Duration, logger *slog.Logger) *TranslationWorker {
	return &TranslationWorker{
		dispatcher: dispatcher,
		logger:     logger.With(slog.String("job", jobTranslationDispatch)),
		interval:   interval,
	}
}

// Start runs the dispatch loop until ctx is cancelled.
func (w *TranslationWorker) Start(ctx context.Context) {
	w.logger.Info("translation worker started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.runOnce(ctx)
		case <-ctx.Done():
			w.logger.Info("translation worker stopped")
			return
		}
	}
}

func (w *TranslationWorker) runOnce(ctx context.Context) {
	sent, failed, err := w.dispatcher.DispatchDue(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Warn("translation dispatch failed", slog.Any("error", err))
		}
		return
	}
	metrics.MarkJobRun(jobTranslationDispatch)
	if sent > 0 || failed > 0 {
		w.logger.Info("translation jobs dispatched", slog.Int("sent", sent), slog.Int("failed", failed))
	}
}
