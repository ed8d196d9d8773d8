package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"comparee/internal/core/domain"
	"comparee/internal/core/port"
)

// CompanyRepository implements port.CompanyRepository using pgxpool.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository returns a new repository instance.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

const companyColumns = `c.id, c.name, c.email, c.website, c.status, c.balance, c.assigned_product_id,
       c.created_at, c.updated_at`

// spendWindowColumns sums spend per trend window and for the window
// preceding it.
func spendWindowColumns() string {
	cols := make([]string, 0, 2*len(domain.TrendWindows))
	for _, d := range domain.TrendWindows {
		cols = append(cols,
			fmt.Sprintf("COALESCE(sum(amount) FILTER (WHERE created_at >= now() - make_interval(days => %d)), 0)", d),
			fmt.Sprintf("COALESCE(sum(amount) FILTER (WHERE created_at >= now() - make_interval(days => %d) "+
				"AND created_at < now() - make_interval(days => %d)), 0)", 2*d, d),
		)
	}
	return strings.Join(cols, ",\n               ")
}

// companyFilterWhere matches $1 status and $2 search pattern; both are
// ignored when empty.
const companyFilterWhere = `($1 = '' OR c.status = $1)
          AND ($2 = '' OR c.name ILIKE '%' || $2 || '%' OR c.email ILIKE '%' || $2 || '%')`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func maxTrendWindow() int {
	m := 0
	for _, d := range domain.TrendWindows {
		m = max(m, d)
	}
	return m
}

// List returns one page of companies for the admin overview.
func (r *CompanyRepository) List(ctx context.Context, f domain.CompanyFilter) ([]domain.CompanyOverview, int64, error) {
	query := fmt.Sprintf(`
        SELECT %s,
               ba.company_id IS NOT NULL,
               COALESCE(ba.credit_balance, 0),
               cs.active, cs.total,
               sp.*,
               count(*) OVER ()
        FROM companies c
        LEFT JOIN billing_accounts ba ON ba.company_id = c.id
        CROSS JOIN LATERAL (
            SELECT count(*) FILTER (WHERE status = 'active') AS active, count(*) AS total
            FROM campaigns WHERE company_id = c.id
        ) cs
        CROSS JOIN LATERAL (
            SELECT %s
            FROM billing_transactions
            WHERE company_id = c.id
              AND type = 'spend'
              AND created_at >= now() - make_interval(days => %d)
        ) sp
        WHERE %s
        ORDER BY c.created_at DESC, c.id DESC
        LIMIT $3 OFFSET $4`, companyColumns, spendWindowColumns(), 2*maxTrendWindow(), companyFilterWhere)

	search := likeEscaper.Replace(strings.TrimSpace(f.Search))
	rows, err := r.pool.Query(ctx, query, string(f.Status), search, f.Page.Size, f.Page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	var total int64
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CompanyOverview, error) {
		var (
			o      domain.CompanyOverview
			spend  = make([]decimal.Decimal, 2*len(domain.TrendWindows))
			target = []any{
				&o.ID, &o.Name, &o.Email, &o.Website, &o.Status, &o.Balance, &o.AssignedProductID,
				&o.CreatedAt, &o.UpdatedAt,
				&o.HasBillingAccount, &o.CreditBalance,
				&o.ActiveCampaigns, &o.TotalCampaigns,
			}
		)
		for i := range spend {
			target = append(target, &spend[i])
		}
		target = append(target, &total)
		if err := row.Scan(target...); err != nil {
			return o, err
		}
		var acct *domain.BillingAccount
		if o.HasBillingAccount {
			acct = &domain.BillingAccount{CompanyID: o.ID, CreditBalance: o.CreditBalance}
		}
		o.EffectiveBalance = domain.EffectiveBalance(&o.Company, acct)
		o.Trends = make([]domain.SpendTrend, len(domain.TrendWindows))
		for i, d := range domain.TrendWindows {
			o.Trends[i] = domain.NewSpendTrend(d, spend[2*i], spend[2*i+1])
		}
		return o, nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	// Past the last page the window count is unavailable.
	if len(list) == 0 && f.Page.Offset() > 0 {
		err = r.pool.QueryRow(ctx, `SELECT count(*) FROM companies c WHERE `+companyFilterWhere,
			string(f.Status), search).Scan(&total)
		if err != nil {
			return nil, 0, fmt.Errorf("count companies: %w", err)
		}
	}
	return list, total, nil
}

// Get returns a company by id.
func (r *CompanyRepository) Get(ctx context.Context, id int64) (*domain.Company, error) {
	c, err := scanCompany(r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies c WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("company %d: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// ChangeStatus performs a compare-and-set status change, optionally pausing
// the company's active campaigns in the same transaction.
func (r *CompanyRepository) ChangeStatus(ctx context.Context, id int64, from, to domain.CompanyStatus, pauseCampaigns bool) (int64, error) {
	var paused int64
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
            UPDATE companies SET status = $3, updated_at = now()
            WHERE id = $1 AND status = $2`, id, string(from), string(to))
		if err != nil {
			return fmt.Errorf("update company status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return r.missingOrConflict(ctx, tx, id)
		}
		if !pauseCampaigns {
			return nil
		}
		tag, err = tx.Exec(ctx, `
            UPDATE campaigns SET status = 'paused', updated_at = now()
            WHERE company_id = $1 AND status = 'active'`, id)
		if err != nil {
			return fmt.Errorf("pause company campaigns: %w", err)
		}
		paused = tag.RowsAffected()
		return nil
	})
	return paused, err
}

func (r *CompanyRepository) missingOrConflict(ctx context.Context, tx pgx.Tx, id int64) error {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check company: %w", err)
	}
	if !exists {
		return fmt.Errorf("company %d: %w", id, port.ErrNotFound)
	}
	return fmt.Errorf("company %d changed concurrently: %w", id, port.ErrConflict)
}

// UpdateProfile applies the non-nil fields of u.
func (r *CompanyRepository) UpdateProfile(ctx context.Context, id int64, u domain.CompanyUpdate) (*domain.Company, error) {
	c, err := scanCompany(r.pool.QueryRow(ctx, `
        UPDATE companies c
        SET name = COALESCE($2, c.name),
            email = COALESCE($3, c.email),
            website = COALESCE($4, c.website),
            updated_at = now()
        WHERE c.id = $1
        RETURNING `+companyColumns, id, u.Name, u.Email, u.Website))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("company %d: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return c, nil
}

// DeletionFacts loads status, balances and campaign count of a company.
func (r *CompanyRepository) DeletionFacts(ctx context.Context, id int64) (*domain.DeletionFacts, error) {
	var f domain.DeletionFacts
	err := r.pool.QueryRow(ctx, `
        SELECT c.status, c.balance, COALESCE(ba.credit_balance, 0),
               (SELECT count(*) FROM campaigns cp WHERE cp.company_id = c.id)
        FROM companies c
        LEFT JOIN billing_accounts ba ON ba.company_id = c.id
        WHERE c.id = $1`, id).Scan(&f.Status, &f.Balance, &f.CreditBalance, &f.Campaigns)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("company %d: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("company deletion facts: %w", err)
	}
	return &f, nil
}

// Delete removes a company, re-checking the deletion rules in the statement
// so a concurrent change cannot slip through.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `
        DELETE FROM companies c
        WHERE c.id = $1
          AND c.status IN ('pending', 'rejected')
          AND c.balance = 0
          AND NOT EXISTS (SELECT 1 FROM campaigns cp WHERE cp.company_id = c.id)
          AND NOT EXISTS (SELECT 1 FROM billing_accounts ba WHERE ba.company_id = c.id AND ba.credit_balance <> 0)`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("company %d not deletable: %w", id, port.ErrConflict)
	}
	return nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Website, &c.Status, &c.Balance, &c.AssignedProductID,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
