package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comparee/internal/core/domain"
)

func TestBuildListingQuery_UnfilteredBindsOnlyPaging(t *testing.T) {
	sql, args := buildListingQuery(domain.ListingQuery{Page: domain.NormalizePage(3, 20)})

	require.Equal(t, []any{20, 40}, args)
	assert.Contains(t, sql, "LIMIT $1 OFFSET $2")
	assert.Contains(t, sql, "ORDER BY sponsored DESC, affiliate DESC, rank_balance DESC, random()")
	assert.NotContains(t, sql, "product_categories")
}

func TestBuildListingQuery_CategoryPaths(t *testing.T) {
	names := []string{"writing", "coding"}

	tests := []struct {
		name    string
		match   domain.CategoryMatch
		present []string
		absent  []string
	}{
		{
			name:    "all paths",
			match:   domain.MatchAllPaths,
			present: []string{"lower(trim(p.category))", "primary_category_id", "secondary_category_id", "product_categories"},
		},
		{
			name:    "tags only",
			match:   domain.MatchTagsOnly,
			present: []string{"product_categories"},
			absent:  []string{"lower(trim(p.category))", "p.primary_category_id", "p.secondary_category_id"},
		},
		{
			name:    "categories only",
			match:   domain.MatchCategoriesOnly,
			present: []string{"lower(trim(p.category))", "c.id = p.primary_category_id", "c.id = p.secondary_category_id"},
			absent:  []string{"product_categories"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildListingQuery(domain.ListingQuery{
				Page:       domain.NormalizePage(1, 10),
				Categories: names,
				Filtered:   true,
				Match:      tt.match,
			})
			require.Equal(t, names, args[0])
			where := sql[strings.Index(sql, "WHERE p.is_active"):]
			where = where[:strings.Index(where, "\n)")]
			for _, s := range tt.present {
				assert.Contains(t, where, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, where, s)
			}
		})
	}
}

func TestBuildListingQuery_EmptyResolvedFilterMatchesNothing(t *testing.T) {
	sql, args := buildListingQuery(domain.ListingQuery{
		Page:     domain.NormalizePage(1, 10),
		Filtered: true,
	})

	assert.Contains(t, sql, "AND FALSE")
	assert.Len(t, args, 2)
}

func TestBuildListingQuery_IDsAndSeed(t *testing.T) {
	sql, args := buildListingQuery(domain.ListingQuery{
		Page:     domain.NormalizePage(1, 5),
		IDs:      []int64{4, 9},
		TieBreak: domain.TieBreak{Mode: domain.TieBreakSeeded, Seed: 42},
	})

	require.Equal(t, []any{[]int64{4, 9}, "42", 5, 0}, args)
	assert.Contains(t, sql, "p.id = ANY($1::bigint[])")
	assert.Contains(t, sql, "md5($2::text || ':' || id::text), id ASC")
	assert.Contains(t, sql, "LIMIT $3 OFFSET $4")
}

func TestBuildListingQuery_IDTieBreak(t *testing.T) {
	sql, _ := buildListingQuery(domain.ListingQuery{
		Page:     domain.NormalizePage(1, 5),
		TieBreak: domain.TieBreak{Mode: domain.TieBreakID},
	})

	assert.Contains(t, sql, "rank_balance DESC, id ASC")
	assert.NotContains(t, sql, "random()")
}

func TestBuildListingQuery_SponsoredNeedsCoveringBalance(t *testing.T) {
	sql, _ := buildListingQuery(domain.ListingQuery{Page: domain.NormalizePage(1, 5)})

	assert.Contains(t, sql, "COALESCE(ba.credit_balance, c.balance, 0) AS effective_balance")
	assert.Contains(t, sql, "owner.effective_balance >= cp.bid_amount")
	assert.Contains(t, sql, "CASE WHEN sponsored THEN effective_balance ELSE 0 END AS rank_balance")
}

func TestBuildListingCountQuery_SharesFilters(t *testing.T) {
	q := domain.ListingQuery{
		Page:       domain.NormalizePage(2, 5),
		Categories: []string{"video"},
		Filtered:   true,
		IDs:        []int64{1},
	}
	sql, args := buildListingCountQuery(q)

	assert.True(t, strings.HasPrefix(sql, "SELECT count(*) FROM products p WHERE p.is_active"))
	assert.Equal(t, []any{[]string{"video"}, []int64{1}}, args)
}
