package port

import (
	"context"

	"comparee/internal/core/domain"
)

// CampaignRepository is the persistence port for campaign state changes.
type CampaignRepository interface {
	// PauseUnderfundedCampaigns pauses every active, approved campaign whose
	// company's legacy balance is below its bid and returns them.
	PauseUnderfundedCampaigns(ctx context.Context) ([]domain.PausedCampaign, error)
	// SetApproval records an admin decision on a campaign and returns the
	// updated campaign. ErrNotFound if it does not exist.
	SetApproval(ctx context.Context, campaignID int64, approved bool) (*domain.Campaign, error)
}

// BudgetEnforcer restores the invariant that no serving campaign outbids
// its company's balance.
type BudgetEnforcer interface {
	EnforceBudgets(ctx context.Context) ([]domain.PausedCampaign, error)
}

// CampaignUseCase is the admin port for campaign approval.
type CampaignUseCase interface {
	BudgetEnforcer
	Approve(ctx context.Context, campaignID int64) (*domain.Campaign, error)
	Reject(ctx context.Context, campaignID int64) (*domain.Campaign, error)
}
