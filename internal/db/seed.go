package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"comparee/internal/core/domain"
)

var seedCategories = []string{"Writing", "Image Generation", "Coding", "Video", "Productivity"}

// Seed inserts demo categories, products, advertisers, campaigns and
// landing pages. Rows that already exist are left alone.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for i, name := range seedCategories {
			_, err := tx.Exec(ctx, `INSERT INTO categories (id, name, slug)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, i+1, name, domain.Slugify(name))
			if err != nil {
				return fmt.Errorf("seed category: %w", err)
			}
		}
		_, err := tx.Exec(ctx, `INSERT INTO category_synonyms (slug, name)
VALUES ('coding', 'Developer Tools'), ('image-generation', 'Art') ON CONFLICT DO NOTHING`)
		if err != nil {
			return fmt.Errorf("seed synonyms: %w", err)
		}

		for i := 1; i <= 30; i++ {
			category := seedCategories[r.Intn(len(seedCategories))]
			name := fmt.Sprintf("Tool %d", i)
			_, err = tx.Exec(ctx, `INSERT INTO products
    (id, name, slug, description, category, url, is_active)
VALUES ($1, $2, $3, $4, $5, $6, TRUE) ON CONFLICT DO NOTHING`,
				i, name, domain.Slugify(name), fmt.Sprintf("%s assistant number %d", category, i),
				category, fmt.Sprintf("https://example.com/tools/%d", i))
			if err != nil {
				return fmt.Errorf("seed product: %w", err)
			}
			if i%7 == 0 {
				_, err = tx.Exec(ctx, `INSERT INTO monetization_configs (product_id, mode, is_active)
VALUES ($1, 'affiliate', TRUE) ON CONFLICT DO NOTHING`, i)
				if err != nil {
					return fmt.Errorf("seed monetization: %w", err)
				}
			}
		}

		// Every third product is owned by an advertiser running one campaign.
		for i := 1; i <= 10; i++ {
			productID := int64(i * 3)
			balance := decimal.NewFromInt(int64(r.Intn(200)))
			bid := decimal.NewFromFloat(0.5 + float64(r.Intn(20))/10).Round(2)
			_, err = tx.Exec(ctx, `INSERT INTO companies (id, name, email, status, balance, assigned_product_id)
VALUES ($1, $2, $3, 'active', $4, $5) ON CONFLICT DO NOTHING`,
				i, fmt.Sprintf("Advertiser %d", i), fmt.Sprintf("ads%d@example.com", i), balance, productID)
			if err != nil {
				return fmt.Errorf("seed company: %w", err)
			}
			if i%2 == 0 {
				_, err = tx.Exec(ctx, `INSERT INTO billing_accounts (company_id, credit_balance)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, i, balance.Add(decimal.NewFromInt(50)))
				if err != nil {
					return fmt.Errorf("seed billing account: %w", err)
				}
			}
			_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (id, company_id, product_id, name, status, is_approved, bid_amount, daily_budget)
VALUES ($1, $2, $3, $4, 'active', TRUE, $5, 100) ON CONFLICT DO NOTHING`,
				i, i, productID, fmt.Sprintf("Campaign %d", i), bid)
			if err != nil {
				return fmt.Errorf("seed campaign: %w", err)
			}
			var hasSpend bool
			err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM billing_transactions WHERE company_id = $1)`, i).Scan(&hasSpend)
			if err != nil {
				return fmt.Errorf("check spend: %w", err)
			}
			if hasSpend {
				continue
			}
			for d := 0; d < 60; d += 1 + r.Intn(5) {
				_, err = tx.Exec(ctx, `INSERT INTO billing_transactions (company_id, type, amount, created_at)
VALUES ($1, 'spend', $2, now() - make_interval(days => $3))`,
					i, decimal.NewFromInt(int64(1+r.Intn(20))), d)
				if err != nil {
					return fmt.Errorf("seed spend: %w", err)
				}
			}
		}

		for _, slug := range []string{"best-ai-writing-tools", "ai-image-generators", "ai-coding-assistants"} {
			_, err = tx.Exec(ctx, `INSERT INTO landing_pages (slug, is_published)
VALUES ($1, TRUE) ON CONFLICT DO NOTHING`, slug)
			if err != nil {
				return fmt.Errorf("seed landing page: %w", err)
			}
		}

		// Explicit ids above leave the sequences behind.
		for _, table := range []string{"categories", "products", "companies", "campaigns"} {
			_, err = tx.Exec(ctx, fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT COALESCE(max(id), 1) FROM %[1]s))`, table))
			if err != nil {
				return fmt.Errorf("reset %s sequence: %w", table, err)
			}
		}
		return nil
	})
}
