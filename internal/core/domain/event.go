package domain

import "time"

// Event subjects published on the domain event bus.
const (
	SubjectCampaignPaused       = "evt.campaign.paused.v1"
	SubjectCampaignApproval     = "evt.campaign.approval.v1"
	SubjectCompanyStatusChanged = "evt.company.status_changed.v1"
)

// CampaignPausedEvent is emitted for every campaign paused automatically.
type CampaignPausedEvent struct {
	PausedCampaign
	Reason   string    `json:"reason"`
	PausedAt time.Time `json:"pausedAt"`
}

// CompanyStatusChangedEvent is emitted after an admin action on a company.
type CompanyStatusChangedEvent struct {
	CompanyID       int64         `json:"companyId"`
	Action          CompanyAction `json:"action"`
	From            CompanyStatus `json:"from"`
	To              CompanyStatus `json:"to"`
	PausedCampaigns int64         `json:"pausedCampaigns"`
	ChangedAt       time.Time     `json:"changedAt"`
}

// CampaignApprovalEvent is emitted when an admin approves or rejects a
// campaign.
type CampaignApprovalEvent struct {
	CampaignID int64          `json:"campaignId"`
	CompanyID  int64          `json:"companyId"`
	Approved   bool           `json:"approved"`
	Status     CampaignStatus `json:"status"`
	// Serving is true when the campaign now competes for sponsored slots.
	Serving    bool           `json:"serving"`
	DecidedAt  time.Time      `json:"decidedAt"`
}
