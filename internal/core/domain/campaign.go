package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a PPC campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignPending   CampaignStatus = "pending"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignRejected  CampaignStatus = "rejected"
	CampaignCancelled CampaignStatus = "cancelled"
)

// Campaign is a pay-per-click campaign of one company for one product.
// Money is stored as decimals with two fractional digits.
type Campaign struct {
	ID               int64           `json:"id"`
	CompanyID        int64           `json:"companyId"`
	ProductID        int64           `json:"productId"`
	Name             string          `json:"name"`
	Status           CampaignStatus  `json:"status"`
	IsApproved       bool            `json:"isApproved"`
	BidAmount        decimal.Decimal `json:"bidAmount"`
	DailyBudget      decimal.Decimal `json:"dailyBudget"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	TotalClicks      int64           `json:"totalClicks"`
	TotalImpressions int64           `json:"totalImpressions"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Serving reports whether the campaign is active and approved.
func (c Campaign) Serving() bool {
	return c.Status == CampaignActive && c.IsApproved
}

// PausedCampaign describes a campaign paused by the budget sweep together
// with the legacy balance that failed to cover its bid.
type PausedCampaign struct {
	CampaignID int64           `json:"campaignId"`
	CompanyID  int64           `json:"companyId"`
	ProductID  int64           `json:"productId"`
	BidAmount  decimal.Decimal `json:"bidAmount"`
	Balance    decimal.Decimal `json:"balance"`
}
