package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
	"comparee/internal/metrics"
)

// pauseReason is attached to campaigns paused by the budget sweep.
const pauseReason = "insufficient_balance"

// CampaignUseCase enforces campaign budgets and records admin approvals.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	events port.EventPublisher
	logger *slog.Logger
	now    func() time.Time
}

func NewCampaignUseCase(repo port.CampaignRepository, events port.EventPublisher, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, events: events, logger: logger, now: time.Now}
}

// EnforceBudgets pauses every serving campaign whose company's legacy
// balance no longer covers the bid, then announces each pause.
func (u *CampaignUseCase) EnforceBudgets(ctx context.Context) ([]domain.PausedCampaign, error) {
	paused, err := u.repo.PauseUnderfundedCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("enforce budgets: %w", err)
	}
	if len(paused) == 0 {
		return paused, nil
	}

	metrics.CampaignsPaused.Add(float64(len(paused)))
	at := u.now().UTC()
	for _, p := range paused {
		u.logger.Info("campaign paused",
			slog.Int64("campaign_id", p.CampaignID),
			slog.Int64("company_id", p.CompanyID),
			slog.String("bid", p.BidAmount.StringFixed(2)),
			slog.String("balance", p.Balance.StringFixed(2)),
		)
		evt := domain.CampaignPausedEvent{PausedCampaign: p, Reason: pauseReason, PausedAt: at}
		u.publish(ctx, domain.SubjectCampaignPaused, evt)
	}
	return paused, nil
}

func (u *CampaignUseCase) Approve(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	return u.decide(ctx, campaignID, true)
}

func (u *CampaignUseCase) Reject(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	return u.decide(ctx, campaignID, false)
}

func (u *CampaignUseCase) decide(ctx context.Context, campaignID int64, approved bool) (*domain.Campaign, error) {
	c, err := u.repo.SetApproval(ctx, campaignID, approved)
	if err != nil {
		return nil, err
	}
	u.publish(ctx, domain.SubjectCampaignApproval, domain.CampaignApprovalEvent{
		CampaignID: c.ID,
		CompanyID:  c.CompanyID,
		Approved:   approved,
		Status:     c.Status,
		Serving:    c.Serving(),
		DecidedAt:  u.now().UTC(),
	})
	return c, nil
}

// publish is best effort; the state change has already been committed.
func (u *CampaignUseCase) publish(ctx context.Context, subject string, payload any) {
	if err := u.events.Publish(ctx, subject, payload); err != nil {
		u.logger.Warn("publish event failed", slog.String("subject", subject), slog.Any("error", err))
	}
}
