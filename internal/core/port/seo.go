package port

import (
	"context"
	"time"

	"comparee/internal/core/domain"
)

// IndexStatusRepository persists Search Console inspection results and
// supplies the default candidate URLs.
type IndexStatusRepository interface {
	// PublishedLandingSlugs lists slugs of published landing pages.
	PublishedLandingSlugs(ctx context.Context) ([]string, error)
	// Statuses returns the stored status of each known URL.
	Statuses(ctx context.Context, urls []string) (map[string]domain.IndexStatus, error)
	// CountCheckedSince counts URLs with prefix checked at or after since.
	CountCheckedSince(ctx context.Context, since time.Time, prefix string) (int, error)
	// Upsert stores s keyed by s.URL.
	Upsert(ctx context.Context, s domain.IndexStatus) error
}

// IndexInspector asks Search Console for the index status of one URL.
type IndexInspector interface {
	Inspect(ctx context.Context, url string) (*domain.IndexStatus, error)
}

// InspectorProvider builds an inspector from the configured credentials.
// It returns ErrNotConfigured when no credentials are available.
type InspectorProvider interface {
	Inspector(ctx context.Context) (IndexInspector, error)
}

// SitemapSource lists landing page URLs published in the sitemap.
type SitemapSource interface {
	LandingURLs(ctx context.Context) ([]string, error)
}

// GSCSyncUseCase runs one Search Console index status sync. Soft failures
// are returned as *domain.SyncError.
type GSCSyncUseCase interface {
	Run(ctx context.Context, req domain.SyncRequest) (*domain.SyncReport, error)
}
