package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"comparee/internal/core/domain"
)

// listingQuery assembles the ranked listing SQL. Every value reaches the
// database as a numbered placeholder; only fixed fragments are
// concatenated.
type listingQuery struct {
	args  []any
	where []string
}

// bind appends v to the argument list and returns its placeholder.
func (b *listingQuery) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// Category matching paths. Each takes the placeholder of a text[] of
// lower-cased names.

func directCategoryMatch(names string) string {
	return fmt.Sprintf("lower(trim(p.category)) = ANY(%s::text[])", names)
}

func primaryCategoryMatch(names string) string {
	return fmt.Sprintf(`EXISTS (SELECT 1 FROM categories c
            WHERE c.id = p.primary_category_id AND lower(c.name) = ANY(%s::text[]))`, names)
}

func secondaryCategoryMatch(names string) string {
	return fmt.Sprintf(`EXISTS (SELECT 1 FROM categories c
            WHERE c.id = p.secondary_category_id AND lower(c.name) = ANY(%s::text[]))`, names)
}

func tagCategoryMatch(names string) string {
	return fmt.Sprintf(`EXISTS (SELECT 1 FROM product_categories pc
            JOIN categories c ON c.id = pc.category_id
            WHERE pc.product_id = p.id AND lower(c.name) = ANY(%s::text[]))`, names)
}

func categoryPaths(m domain.CategoryMatch) []func(string) string {
	switch m {
	case domain.MatchTagsOnly:
		return []func(string) string{tagCategoryMatch}
	case domain.MatchCategoriesOnly:
		return []func(string) string{directCategoryMatch, primaryCategoryMatch, secondaryCategoryMatch}
	default:
		return []func(string) string{directCategoryMatch, primaryCategoryMatch, secondaryCategoryMatch, tagCategoryMatch}
	}
}

func (b *listingQuery) filterCategories(names []string, m domain.CategoryMatch) {
	if len(names) == 0 {
		// A filter that resolved to nothing matches nothing.
		b.where = append(b.where, "FALSE")
		return
	}
	ph := b.bind(names)
	paths := categoryPaths(m)
	parts := make([]string, len(paths))
	for i, path := range paths {
		parts[i] = path(ph)
	}
	b.where = append(b.where, "("+strings.Join(parts, "\n         OR ")+")")
}

func (b *listingQuery) filterIDs(ids []int64) {
	b.where = append(b.where, fmt.Sprintf("p.id = ANY(%s::bigint[])", b.bind(ids)))
}

func (b *listingQuery) tieBreak(tb domain.TieBreak) string {
	switch tb.Mode {
	case domain.TieBreakID:
		return "id ASC"
	case domain.TieBreakSeeded:
		return fmt.Sprintf("md5(%s::text || ':' || id::text), id ASC", b.bind(strconv.FormatInt(tb.Seed, 10)))
	default:
		return "random()"
	}
}

// rankedProductsCTE computes, for every active product matching the
// filters, the owning company, its effective balance (billing account
// credit, else legacy balance, else zero) and the two eligibility flags.
const rankedProductsCTE = `WITH ranked AS (
    SELECT p.id, p.name, p.slug, p.description, p.category,
           p.primary_category_id, p.secondary_category_id,
           p.url, p.logo_url, p.is_active, p.created_at, p.updated_at,
           owner.company_id,
           COALESCE(owner.effective_balance, 0) AS effective_balance,
           (owner.company_id IS NOT NULL AND EXISTS (
               SELECT 1 FROM campaigns cp
               WHERE cp.product_id = p.id
                 AND cp.company_id = owner.company_id
                 AND cp.status = 'active'
                 AND cp.is_approved
                 AND owner.effective_balance >= cp.bid_amount
           )) AS sponsored,
           EXISTS (
               SELECT 1 FROM monetization_configs mc
               WHERE mc.product_id = p.id
                 AND mc.is_active
                 AND mc.mode IN ('affiliate', 'hybrid')
           ) AS affiliate
    FROM products p
    LEFT JOIN LATERAL (
        SELECT c.id AS company_id,
               COALESCE(ba.credit_balance, c.balance, 0) AS effective_balance
        FROM companies c
        LEFT JOIN billing_accounts ba ON ba.company_id = c.id
        WHERE c.assigned_product_id = p.id
        ORDER BY c.id
        LIMIT 1
    ) owner ON TRUE
    WHERE %s
)`

func (b *listingQuery) whereClause(q domain.ListingQuery) string {
	b.where = append(b.where, "p.is_active")
	if q.Filtered {
		b.filterCategories(q.Categories, q.Match)
	}
	if len(q.IDs) > 0 {
		b.filterIDs(q.IDs)
	}
	return strings.Join(b.where, "\n      AND ")
}

// buildListingQuery returns the page query and its arguments.
func buildListingQuery(q domain.ListingQuery) (string, []any) {
	b := &listingQuery{}
	cte := fmt.Sprintf(rankedProductsCTE, b.whereClause(q))
	order := b.tieBreak(q.TieBreak)
	limit := b.bind(q.Page.Size)
	offset := b.bind(q.Page.Offset())
	sql := cte + `
SELECT id, name, slug, description, category, primary_category_id, secondary_category_id,
       url, logo_url, is_active, created_at, updated_at,
       company_id, sponsored, affiliate,
       CASE WHEN sponsored THEN effective_balance ELSE 0 END AS rank_balance,
       count(*) OVER () AS total
FROM ranked
ORDER BY sponsored DESC, affiliate DESC, rank_balance DESC, ` + order + `
LIMIT ` + limit + ` OFFSET ` + offset
	return sql, b.args
}

// buildListingCountQuery counts the rows the page query would rank.
func buildListingCountQuery(q domain.ListingQuery) (string, []any) {
	b := &listingQuery{}
	sql := "SELECT count(*) FROM products p WHERE " + b.whereClause(q)
	return sql, b.args
}
