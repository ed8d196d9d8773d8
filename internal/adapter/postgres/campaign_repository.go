package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// PauseUnderfundedCampaigns pauses serving campaigns whose company cannot
// cover the bid. Only the legacy companies.balance is consulted, unlike the
// listing predicate which prefers the billing account credit; a company
// funded only through its billing account is therefore paused here.
func (r *CampaignRepository) PauseUnderfundedCampaigns(ctx context.Context) ([]domain.PausedCampaign, error) {
	rows, err := r.pool.Query(ctx, `
        UPDATE campaigns cp
        SET status = 'paused', updated_at = now()
        FROM companies c
        WHERE cp.company_id = c.id
          AND cp.status = 'active'
          AND cp.is_approved
          AND c.balance < cp.bid_amount
        RETURNING cp.id, cp.company_id, cp.product_id, cp.bid_amount, c.balance`)
	if err != nil {
		return nil, fmt.Errorf("pause underfunded campaigns: %w", err)
	}
	paused, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PausedCampaign, error) {
		var p domain.PausedCampaign
		err := row.Scan(&p.CampaignID, &p.CompanyID, &p.ProductID, &p.BidAmount, &p.Balance)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("pause underfunded campaigns: %w", err)
	}
	return paused, nil
}

// SetApproval approves or rejects a campaign. Approving a draft or pending
// campaign activates it; rejecting always moves it to rejected.
func (r *CampaignRepository) SetApproval(ctx context.Context, campaignID int64, approved bool) (*domain.Campaign, error) {
	query := `
        UPDATE campaigns
        SET is_approved = TRUE,
            status = CASE WHEN status IN ('draft', 'pending') THEN 'active' ELSE status END,
            updated_at = now()
        WHERE id = $1
        RETURNING ` + campaignColumns
	if !approved {
		query = `
        UPDATE campaigns
        SET is_approved = FALSE, status = 'rejected', updated_at = now()
        WHERE id = $1
        RETURNING ` + campaignColumns
	}
	c, err := scanCampaign(r.pool.QueryRow(ctx, query, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("set campaign approval: %w", err)
	}
	return c, nil
}

const campaignColumns = `id, company_id, product_id, name, status, is_approved, bid_amount, daily_budget,
            total_spent, total_clicks, total_impressions, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.CompanyID, &c.ProductID, &c.Name, &c.Status, &c.IsApproved, &c.BidAmount,
		&c.DailyBudget, &c.TotalSpent, &c.TotalClicks, &c.TotalImpressions, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
