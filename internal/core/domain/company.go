package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CompanyStatus is the account state of an advertiser company.
type CompanyStatus string

const (
	CompanyPending   CompanyStatus = "pending"
	CompanyActive    CompanyStatus = "active"
	CompanySuspended CompanyStatus = "suspended"
	CompanyRejected  CompanyStatus = "rejected"
	CompanyCancelled CompanyStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s CompanyStatus) Valid() bool {
	switch s {
	case CompanyPending, CompanyActive, CompanySuspended, CompanyRejected, CompanyCancelled:
		return true
	}
	return false
}

// Company is an advertiser account. Balance is the legacy scalar balance;
// the billing account, when present, is authoritative for ranking.
type Company struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Website           string          `json:"website"`
	Status            CompanyStatus   `json:"status"`
	Balance           decimal.Decimal `json:"balance"`
	AssignedProductID *int64          `json:"assignedProductId,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// BillingAccount holds the credit ledger balance of a company.
type BillingAccount struct {
	CompanyID     int64           `json:"companyId"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
}

// EffectiveBalance returns the billing account credit if an account exists,
// else the company's legacy balance, else zero.
func EffectiveBalance(c *Company, acct *BillingAccount) decimal.Decimal {
	if acct != nil {
		return acct.CreditBalance
	}
	if c != nil {
		return c.Balance
	}
	return decimal.Zero
}

// CompanyAction is an admin decision applied to a company.
type CompanyAction string

const (
	ActionApprove  CompanyAction = "approve"
	ActionSuspend  CompanyAction = "suspend"
	ActionActivate CompanyAction = "activate"
	ActionReject   CompanyAction = "reject"
	ActionCancel   CompanyAction = "cancel"
)

// ParseCompanyAction validates a raw action string.
func ParseCompanyAction(s string) (CompanyAction, bool) {
	switch a := CompanyAction(s); a {
	case ActionApprove, ActionSuspend, ActionActivate, ActionReject, ActionCancel:
		return a, true
	}
	return "", false
}

// Next returns the status reached by applying a to from. An error is
// returned when the transition is not allowed.
func (a CompanyAction) Next(from CompanyStatus) (CompanyStatus, error) {
	var (
		to      CompanyStatus
		allowed bool
	)
	switch a {
	case ActionApprove:
		to, allowed = CompanyActive, from == CompanyPending
	case ActionReject:
		to, allowed = CompanyRejected, from == CompanyPending
	case ActionSuspend:
		to, allowed = CompanySuspended, from == CompanyActive
	case ActionActivate:
		to, allowed = CompanyActive, from == CompanySuspended
	case ActionCancel:
		to, allowed = CompanyCancelled, from != CompanyCancelled
	}
	if !allowed {
		return "", fmt.Errorf("cannot %s a %s company", a, from)
	}
	return to, nil
}

// PausesCampaigns reports whether applying a must pause the company's
// active campaigns.
func (a CompanyAction) PausesCampaigns() bool {
	return a == ActionSuspend || a == ActionCancel
}

// SpendTrend compares spend in the last WindowDays with the window before.
type SpendTrend struct {
	WindowDays int             `json:"windowDays"`
	Current    decimal.Decimal `json:"current"`
	Previous   decimal.Decimal `json:"previous"`
	// ChangePct is nil when Previous is zero.
	ChangePct *float64 `json:"changePct"`
}

// NewSpendTrend computes the percentage change between two windows.
func NewSpendTrend(days int, current, previous decimal.Decimal) SpendTrend {
	t := SpendTrend{WindowDays: days, Current: current, Previous: previous}
	if !previous.IsZero() {
		pct, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1).Float64()
		t.ChangePct = &pct
	}
	return t
}

// TrendWindows are the spend trend windows reported for each company.
var TrendWindows = []int{7, 30, 90}

// CompanyOverview is the admin list row of a company.
type CompanyOverview struct {
	Company
	HasBillingAccount bool            `json:"hasBillingAccount"`
	CreditBalance     decimal.Decimal `json:"creditBalance"`
	EffectiveBalance  decimal.Decimal `json:"effectiveBalance"`
	ActiveCampaigns   int64           `json:"activeCampaigns"`
	TotalCampaigns    int64           `json:"totalCampaigns"`
	Trends            []SpendTrend    `json:"trends"`
}

// CompanyFilter narrows the admin company list.
type CompanyFilter struct {
	Status CompanyStatus
	Search string
	Page   Page
}

// CompanyUpdate carries optional profile changes.
type CompanyUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Website *string `json:"website"`
}

// Empty reports whether the update changes nothing.
func (u CompanyUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Website == nil
}

// DeletionFacts gathers what decides whether a company may be deleted.
type DeletionFacts struct {
	Status        CompanyStatus
	Campaigns     int64
	Balance       decimal.Decimal
	CreditBalance decimal.Decimal
}

// DeletionBlocker returns a human readable reason why the company cannot be
// deleted, or "" if it can.
func (f DeletionFacts) DeletionBlocker() string {
	switch {
	case f.Status != CompanyPending && f.Status != CompanyRejected:
		return "only pending or rejected companies can be deleted"
	case f.Campaigns > 0:
		return "company still has campaigns"
	case !f.Balance.IsZero() || !f.CreditBalance.IsZero():
		return "company balance is not zero"
	}
	return ""
}
