package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
	"comparee/internal/metrics"
)

// ListingOptions tunes ListingUseCase. The zero value ranks ties randomly,
// enqueues no translation languages and never sweeps on read.
type ListingOptions struct {
	// StableTieBreak orders unseeded ties by product id instead of random().
	StableTieBreak bool
	// Languages are the translation targets of newly created products.
	Languages []string
	// SweepOnRead, when set, is run fire-and-forget after every listing
	// read with its own SweepTimeout.
	SweepOnRead  port.BudgetEnforcer
	SweepTimeout time.Duration
}

// ListingUseCase resolves listing requests into ranked product pages and
// creates products.
type ListingUseCase struct {
	repo       port.ListingRepository
	categories port.CategoryResolver
	opts       ListingOptions
	logger     *slog.Logger
}

func NewListingUseCase(repo port.ListingRepository, categories port.CategoryResolver, opts ListingOptions, logger *slog.Logger) *ListingUseCase {
	if opts.SweepTimeout <= 0 {
		opts.SweepTimeout = 10 * time.Second
	}
	return &ListingUseCase{repo: repo, categories: categories, opts: opts, logger: logger}
}

// ListProducts returns one ranked page. Pagination is clamped, never
// rejected. Only the first present filter form is honoured.
func (u *ListingUseCase) ListProducts(ctx context.Context, req port.ListingRequest) (*domain.ListingPage, error) {
	q, err := u.query(ctx, req)
	if err != nil {
		metrics.IncListing(err)
		return nil, err
	}

	start := time.Now()
	page, err := u.repo.ListProducts(ctx, q)
	metrics.ObserveListingQuery(start)
	metrics.IncListing(err)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if u.opts.SweepOnRead != nil {
		go u.sweep()
	}
	return page, nil
}

func (u *ListingUseCase) query(ctx context.Context, req port.ListingRequest) (domain.ListingQuery, error) {
	number, size := domain.DefaultPage, domain.DefaultPageSize
	if req.ForHomepage {
		size = domain.HomepagePageSize
	}
	if req.Page != nil {
		number = *req.Page
	}
	if req.PageSize != nil {
		size = *req.PageSize
	}

	q := domain.ListingQuery{
		Page: domain.NormalizePage(number, size),
		IDs:  req.IDs,
	}

	switch {
	case req.TagsOnly:
		q.Match = domain.MatchTagsOnly
	case req.CategoriesOnly:
		q.Match = domain.MatchCategoriesOnly
	}

	if names := domain.NormalizeCategoryNames(req.Categories); len(names) > 0 {
		q.Categories, q.Filtered = names, true
	} else if names = domain.NormalizeCategoryNames([]string{req.Category}); len(names) > 0 {
		q.Categories, q.Filtered = names, true
	} else if slug := strings.ToLower(strings.TrimSpace(req.CategorySlug)); slug != "" {
		resolved, err := u.categories.ResolveCategorySlug(ctx, slug)
		if err != nil {
			return q, fmt.Errorf("resolve category slug %q: %w", slug, err)
		}
		// An unknown slug filters everything out rather than nothing.
		q.Categories, q.Filtered = resolved, true
	}

	switch {
	case req.Seed != nil:
		q.TieBreak = domain.TieBreak{Mode: domain.TieBreakSeeded, Seed: *req.Seed}
	case u.opts.StableTieBreak:
		q.TieBreak = domain.TieBreak{Mode: domain.TieBreakID}
	}
	return q, nil
}

// sweep runs detached from the request so that neither its latency nor its
// failure reaches the caller.
func (u *ListingUseCase) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), u.opts.SweepTimeout)
	defer cancel()
	if _, err := u.opts.SweepOnRead.EnforceBudgets(ctx); err != nil {
		u.logger.Error("sweep on read failed", slog.Any("error", err))
	}
}

// CreateProduct validates req and stores the product together with its
// translation job.
func (u *ListingUseCase) CreateProduct(ctx context.Context, req port.CreateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" || category == "" {
		return nil, fmt.Errorf("name and category are required: %w", port.ErrValidation)
	}
	p := &domain.Product{
		Name:                name,
		Category:            category,
		Description:         strings.TrimSpace(req.Description),
		URL:                 strings.TrimSpace(req.URL),
		LogoURL:             strings.TrimSpace(req.LogoURL),
		PrimaryCategoryID:   req.PrimaryCategoryID,
		SecondaryCategoryID: req.SecondaryCategoryID,
	}
	if err := u.repo.CreateProduct(ctx, p, req.TagCategoryIDs, u.opts.Languages); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	u.logger.Info("product created", slog.Int64("product_id", p.ID), slog.String("slug", p.Slug))
	return p, nil
}
