package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"comparee/internal/core/domain"
)

// ListingRepository implements port.ListingRepository and
// port.CategoryResolver using pgxpool.
type ListingRepository struct {
	pool *pgxpool.Pool
}

// NewListingRepository returns a new repository instance.
func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

// ListProducts returns one ranked page of active products.
func (r *ListingRepository) ListProducts(ctx context.Context, q domain.ListingQuery) (*domain.ListingPage, error) {
	sql, args := buildListingQuery(q)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query listing: %w", err)
	}
	var total int64
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Listing, error) {
		var l domain.Listing
		err := row.Scan(
			&l.ID,
			&l.Name,
			&l.Slug,
			&l.Description,
			&l.Category,
			&l.PrimaryCategoryID,
			&l.SecondaryCategoryID,
			&l.URL,
			&l.LogoURL,
			&l.IsActive,
			&l.CreatedAt,
			&l.UpdatedAt,
			&l.CompanyID,
			&l.Sponsored,
			&l.Affiliate,
			&l.EffectiveBalance,
			&total,
		)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan listing: %w", err)
	}
	// Past the last page the window count is unavailable.
	if len(items) == 0 && q.Page.Offset() > 0 {
		countSQL, countArgs := buildListingCountQuery(q)
		if err = r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return nil, fmt.Errorf("count listing: %w", err)
		}
	}
	return &domain.ListingPage{Items: items, Page: q.Page, Total: total}, nil
}

// ResolveCategorySlug returns the lower-cased names of the category with the
// given slug and of all synonyms registered for it.
func (r *ListingRepository) ResolveCategorySlug(ctx context.Context, slug string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT name FROM categories WHERE slug = $1
        UNION
        SELECT name FROM category_synonyms WHERE slug = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("resolve category slug: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("resolve category slug: %w", err)
	}
	return domain.NormalizeCategoryNames(names), nil
}

// CreateProduct inserts p, links its tag categories and enqueues its
// translation job in one transaction.
func (r *ListingRepository) CreateProduct(ctx context.Context, p *domain.Product, tagCategoryIDs []int64, languages []string) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		slug, err := uniqueSlug(ctx, tx, domain.Slugify(p.Name))
		if err != nil {
			return err
		}
		p.Slug = slug
		p.IsActive = true
		err = tx.QueryRow(ctx, `
            INSERT INTO products (name, slug, description, category, primary_category_id,
                                  secondary_category_id, url, logo_url, is_active)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
            RETURNING id, created_at, updated_at`,
			p.Name, p.Slug, p.Description, p.Category, p.PrimaryCategoryID,
			p.SecondaryCategoryID, p.URL, p.LogoURL,
		).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		if len(tagCategoryIDs) > 0 {
			_, err = tx.Exec(ctx, `
                INSERT INTO product_categories (product_id, category_id)
                SELECT $1, unnest($2::bigint[])
                ON CONFLICT DO NOTHING`, p.ID, tagCategoryIDs)
			if err != nil {
				return fmt.Errorf("link product categories: %w", err)
			}
		}
		return enqueueTranslation(ctx, tx, domain.NewProductTranslationJob(*p, languages))
	})
}

func uniqueSlug(ctx context.Context, tx pgx.Tx, base string) (string, error) {
	if base == "" {
		base = "product"
	}
	var taken bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1)`, base).Scan(&taken); err != nil {
		return "", fmt.Errorf("check slug: %w", err)
	}
	if !taken {
		return base, nil
	}
	return base + "-" + uuid.NewString()[:6], nil
}

func enqueueTranslation(ctx context.Context, tx pgx.Tx, job domain.TranslationJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal translation job: %w", err)
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO translation_outbox (entity_type, entity_id, idempotency_key, payload)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (idempotency_key) DO NOTHING`,
		job.EntityType, job.EntityID, job.IdempotencyKey, payload)
	if err != nil {
		return fmt.Errorf("enqueue translation: %w", err)
	}
	return nil
}
