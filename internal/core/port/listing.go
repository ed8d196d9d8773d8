package port

import (
	"context"

	"comparee/internal/core/domain"
)

// ListingRepository is the persistence port of the product listing.
type ListingRepository interface {
	// ListProducts returns one page of active products ranked by
	// sponsorship, affiliate monetization, effective balance and tie-break.
	ListProducts(ctx context.Context, q domain.ListingQuery) (*domain.ListingPage, error)
	// CreateProduct stores p, its tag categories and the translation job for
	// it in one transaction. p.ID, p.Slug and timestamps are filled in.
	CreateProduct(ctx context.Context, p *domain.Product, tagCategoryIDs []int64, languages []string) error
}

// CategoryResolver expands a category slug into canonical category names.
type CategoryResolver interface {
	ResolveCategorySlug(ctx context.Context, slug string) ([]string, error)
}

// ListingUseCase is the inbound port of the product listing.
type ListingUseCase interface {
	ListProducts(ctx context.Context, req ListingRequest) (*domain.ListingPage, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error)
}

// ListingRequest is the raw listing input after HTTP decoding. Nil and
// zero values mean "not provided".
type ListingRequest struct {
	Page     *int
	PageSize *int
	// Categories, Category and CategorySlug are alternative filter forms,
	// honoured in that order of precedence.
	Categories     []string
	Category       string
	CategorySlug   string
	IDs            []int64
	TagsOnly       bool
	CategoriesOnly bool
	ForHomepage    bool
	Seed           *int64
}

// CreateProductRequest is the body of POST /api/products.
type CreateProductRequest struct {
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	Description         string  `json:"description"`
	URL                 string  `json:"url"`
	LogoURL             string  `json:"logoUrl"`
	PrimaryCategoryID   *int64  `json:"primaryCategoryId"`
	SecondaryCategoryID *int64  `json:"secondaryCategoryId"`
	TagCategoryIDs      []int64 `json:"tagCategoryIds"`
}
