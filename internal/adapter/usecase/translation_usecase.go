package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
	"comparee/internal/metrics"
)

// TranslationConfig controls outbox delivery.
type TranslationConfig struct {
	// Enabled is false when no translation service is configured; jobs then
	// stay pending.
	Enabled     bool
	BatchSize   int
	MaxAttempts int
	// Lease must outlast one delivery attempt.
	Lease time.Duration
}

// TranslationUseCase delivers pending outbox jobs to the translation
// service.
type TranslationUseCase struct {
	outbox port.TranslationOutbox
	client port.TranslationClient
	cfg    TranslationConfig
	logger *slog.Logger
	now    func() time.Time
}

func NewTranslationUseCase(outbox port.TranslationOutbox, client port.TranslationClient, cfg TranslationConfig, logger *slog.Logger) *TranslationUseCase {
	return &TranslationUseCase{outbox: outbox, client: client, cfg: cfg, logger: logger, now: time.Now}
}

// DispatchDue claims one batch of due jobs and submits them. A job that
// was rejected as invalid, or that used up its attempts, is marked failed
// for good; other failures are rescheduled with exponential backoff.
func (u *TranslationUseCase) DispatchDue(ctx context.Context) (sent, failed int, err error) {
	if !u.cfg.Enabled {
		return 0, 0, nil
	}
	jobs, err := u.outbox.ClaimDue(ctx, u.cfg.BatchSize, u.cfg.Lease)
	if err != nil {
		return 0, 0, fmt.Errorf("claim translation jobs: %w", err)
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			// Unprocessed claims are picked up again when their lease ends.
			return sent, failed, ctx.Err()
		}
		log := u.logger.With(
			slog.Int64("job_id", job.ID),
			slog.String("entity", fmt.Sprintf("%s:%d", job.EntityType, job.EntityID)),
			slog.Int("attempt", job.Attempts),
		)

		subErr := u.client.Submit(ctx, job)
		if subErr == nil {
			if err = u.outbox.MarkSent(ctx, job.ID); err != nil {
				return sent, failed, err
			}
			sent++
			metrics.IncTranslation(string(domain.OutboxSent))
			log.Debug("translation job sent")
			continue
		}

		failed++
		terminal := job.Attempts >= u.cfg.MaxAttempts || errors.Is(subErr, port.ErrValidation)
		next := u.now().Add(domain.OutboxBackoff(job.Attempts))
		if err = u.outbox.MarkFailed(ctx, job.ID, subErr.Error(), next, terminal); err != nil {
			return sent, failed, err
		}
		if terminal {
			metrics.IncTranslation(string(domain.OutboxFailed))
			log.Error("translation job abandoned", slog.Any("error", subErr))
		} else {
			metrics.IncTranslation("retry")
			log.Warn("translation job failed, retrying", slog.Time("next_attempt", next), slog.Any("error", subErr))
		}
	}
	return sent, failed, nil
}
