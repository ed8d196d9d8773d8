package port

import (
	"context"
	"time"

	"comparee/internal/core/domain"
)

// TranslationOutbox stores translation jobs until they are delivered.
type TranslationOutbox interface {
	// ClaimDue leases up to limit due pending jobs for lease, so concurrent
	// workers do not deliver the same job twice.
	ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]domain.TranslationJob, error)
	MarkSent(ctx context.Context, id int64) error
	// MarkFailed records a failed attempt. The job is retried at next unless
	// terminal is set.
	MarkFailed(ctx context.Context, id int64, cause string, next time.Time, terminal bool) error
}

// TranslationClient submits a job to the translation service.
type TranslationClient interface {
	Submit(ctx context.Context, job domain.TranslationJob) error
}

// TranslationDispatcher delivers due outbox jobs.
type TranslationDispatcher interface {
	DispatchDue(ctx context.Context) (sent, failed int, err error)
}
