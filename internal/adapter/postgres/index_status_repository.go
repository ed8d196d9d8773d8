package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"comparee/internal/core/domain"
)

// IndexStatusRepository implements port.IndexStatusRepository using pgxpool.
type IndexStatusRepository struct {
	pool *pgxpool.Pool
}

// NewIndexStatusRepository returns a new repository instance.
func NewIndexStatusRepository(pool *pgxpool.Pool) *IndexStatusRepository {
	return &IndexStatusRepository{pool: pool}
}

func (r *IndexStatusRepository) PublishedLandingSlugs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug FROM landing_pages WHERE is_published ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list landing pages: %w", err)
	}
	slugs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list landing pages: %w", err)
	}
	return slugs, nil
}

func (r *IndexStatusRepository) Statuses(ctx context.Context, urls []string) (map[string]domain.IndexStatus, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT url, verdict, coverage_state, indexing_state, page_fetch_state,
               google_canonical, user_canonical, last_crawl_time, error_type, error_message, checked_at
        FROM gsc_index_status
        WHERE url = ANY($1::text[])`, urls)
	if err != nil {
		return nil, fmt.Errorf("query index statuses: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.IndexStatus, error) {
		var s domain.IndexStatus
		err := row.Scan(&s.URL, &s.Verdict, &s.CoverageState, &s.IndexingState, &s.PageFetchState,
			&s.GoogleCanonical, &s.UserCanonical, &s.LastCrawlTime, &s.ErrorType, &s.ErrorMessage, &s.CheckedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan index statuses: %w", err)
	}
	out := make(map[string]domain.IndexStatus, len(list))
	for _, s := range list {
		out[s.URL] = s
	}
	return out, nil
}

func (r *IndexStatusRepository) CountCheckedSince(ctx context.Context, since time.Time, prefix string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
        SELECT count(*) FROM gsc_index_status
        WHERE checked_at >= $1 AND starts_with(url, $2)`, since, prefix).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count checked urls: %w", err)
	}
	return n, nil
}

func (r *IndexStatusRepository) Upsert(ctx context.Context, s domain.IndexStatus) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO gsc_index_status (url, verdict, coverage_state, indexing_state, page_fetch_state,
                                      google_canonical, user_canonical, last_crawl_time,
                                      error_type, error_message, checked_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (url) DO UPDATE SET
            verdict = EXCLUDED.verdict,
            coverage_state = EXCLUDED.coverage_state,
            indexing_state = EXCLUDED.indexing_state,
            page_fetch_state = EXCLUDED.page_fetch_state,
            google_canonical = EXCLUDED.google_canonical,
            user_canonical = EXCLUDED.user_canonical,
            last_crawl_time = EXCLUDED.last_crawl_time,
            error_type = EXCLUDED.error_type,
            error_message = EXCLUDED.error_message,
            checked_at = EXCLUDED.checked_at`,
		s.URL, s.Verdict, s.CoverageState, s.IndexingState, s.PageFetchState,
		s.GoogleCanonical, s.UserCanonical, s.LastCrawlTime, s.ErrorType, s.ErrorMessage, s.CheckedAt)
	if err != nil {
		return fmt.Errorf("upsert index status %s: %w", s.URL, err)
	}
	return nil
}
