package port

import (
	"context"

	"comparee/internal/core/domain"
)

// CompanyRepository is the persistence port of the admin company screens.
type CompanyRepository interface {
	// List returns one page of companies with balances, campaign counts and
	// spend trends for domain.TrendWindows, plus the unpaged total.
	List(ctx context.Context, f domain.CompanyFilter) ([]domain.CompanyOverview, int64, error)
	// Get returns the company or ErrNotFound.
	Get(ctx context.Context, id int64) (*domain.Company, error)
	// ChangeStatus moves the company from `from` to `to` if it is still in
	// `from` (ErrConflict otherwise). When pauseCampaigns is set its active
	// campaigns are paused in the same transaction; their count is returned.
	ChangeStatus(ctx context.Context, id int64, from, to domain.CompanyStatus, pauseCampaigns bool) (int64, error)
	// UpdateProfile applies u and returns the updated company.
	UpdateProfile(ctx context.Context, id int64, u domain.CompanyUpdate) (*domain.Company, error)
	// DeletionFacts loads what decides deletability, or ErrNotFound.
	DeletionFacts(ctx context.Context, id int64) (*domain.DeletionFacts, error)
	Delete(ctx context.Context, id int64) error
}

// CompanyUseCase is the inbound port of the admin company screens.
type CompanyUseCase interface {
	List(ctx context.Context, f domain.CompanyFilter) ([]domain.CompanyOverview, int64, error)
	Apply(ctx context.Context, companyID int64, action domain.CompanyAction) (*domain.CompanyStatusChangedEvent, error)
	Update(ctx context.Context, companyID int64, u domain.CompanyUpdate) (*domain.Company, error)
	Delete(ctx context.Context, companyID int64) error
}
