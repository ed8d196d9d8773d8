package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"comparee/internal/core/domain"
)

// TranslationOutbox implements port.TranslationOutbox on the
// translation_outbox table.
type TranslationOutbox struct {
	pool *pgxpool.Pool
}

// NewTranslationOutbox returns a new outbox instance.
func NewTranslationOutbox(pool *pgxpool.Pool) *TranslationOutbox {
	return &TranslationOutbox{pool: pool}
}

// ClaimDue leases due pending rows by pushing their next_attempt_at past
// the lease. SKIP LOCKED keeps concurrent workers on disjoint rows, and a
// worker that dies mid-delivery releases its rows when the lease runs out.
func (o *TranslationOutbox) ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]domain.TranslationJob, error) {
	rows, err := o.pool.Query(ctx, `
        UPDATE translation_outbox o
        SET next_attempt_at = now() + make_interval(secs => $2),
            attempts = o.attempts + 1
        FROM (
            SELECT id FROM translation_outbox
            WHERE status = 'pending' AND next_attempt_at <= now()
            ORDER BY next_attempt_at, id
            LIMIT $1
            FOR UPDATE SKIP LOCKED
        ) due
        WHERE o.id = due.id
        RETURNING o.id, o.payload, o.attempts`, limit, lease.Seconds())
	if err != nil {
		return nil, fmt.Errorf("claim translation jobs: %w", err)
	}
	jobs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TranslationJob, error) {
		var (
			job      domain.TranslationJob
			id       int64
			attempts int
			payload  []byte
		)
		if err := row.Scan(&id, &payload, &attempts); err != nil {
			return job, err
		}
		if err := json.Unmarshal(payload, &job); err != nil {
			return job, fmt.Errorf("decode outbox row %d: %w", id, err)
		}
		job.ID, job.Attempts = id, attempts
		return job, nil
	})
	if err != nil {
		return nil, fmt.Errorf("claim translation jobs: %w", err)
	}
	return jobs, nil
}

func (o *TranslationOutbox) MarkSent(ctx context.Context, id int64) error {
	_, err := o.pool.Exec(ctx, `
        UPDATE translation_outbox
        SET status = 'sent', sent_at = now(), last_error = ''
        WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark translation job %d sent: %w", id, err)
	}
	return nil
}

func (o *TranslationOutbox) MarkFailed(ctx context.Context, id int64, cause string, next time.Time, terminal bool) error {
	status := domain.OutboxPending
	if terminal {
		status = domain.OutboxFailed
	}
	_, err := o.pool.Exec(ctx, `
        UPDATE translation_outbox
        SET status = $2, last_error = $3, next_attempt_at = $4
        WHERE id = $1`, id, string(status), cause, next)
	if err != nil {
		return fmt.Errorf("mark translation job %d failed: %w", id, err)
	}
	return nil
}
