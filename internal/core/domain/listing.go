package domain

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultPage      = 1
	DefaultPageSize  = 50
	HomepagePageSize = 12
	MaxPageSize      = 1000
	// MaxPage keeps Offset from overflowing at any page size.
	MaxPage = math.MaxInt / MaxPageSize
)

// Page is a validated 1-based page request.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"pageSize"`
}

// NormalizePage clamps page to [1, MaxPage] and size to [1, MaxPageSize].
// Malformed values are never rejected.
func NormalizePage(page, size int) Page {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: page, Size: size}
}

// Offset returns the number of rows preceding the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// CategoryMatch restricts which category paths a filter consults.
type CategoryMatch int

const (
	// MatchAllPaths honours the legacy string, primary id, secondary id and
	// join table paths.
	MatchAllPaths CategoryMatch = iota
	// MatchTagsOnly consults the product_categories join table only.
	MatchTagsOnly
	// MatchCategoriesOnly consults the legacy string and the two id columns.
	MatchCategoriesOnly
)

// TieBreakMode selects the last ordering key of the listing.
type TieBreakMode int

const (
	TieBreakRandom TieBreakMode = iota
	TieBreakSeeded
	TieBreakID
)

// TieBreak orders rows that tie on every ranking criterion. Seed is only
// read in TieBreakSeeded mode.
type TieBreak struct {
	Mode TieBreakMode
	Seed int64
}

// ListingQuery is the fully resolved input of the listing repository.
type ListingQuery struct {
	Page Page
	// Categories holds normalised category names; empty means unfiltered.
	Categories []string
	// Filtered is true when the caller asked for a category filter, even
	// if it resolved to no names. Such a query returns no rows.
	Filtered bool
	Match    CategoryMatch
	IDs      []int64
	TieBreak TieBreak
}

// Listing is one ranked row of the product listing.
type Listing struct {
	Product
	CompanyID *int64 `json:"companyId,omitempty"`
	// Sponsored is true when the owning company runs an active, approved
	// campaign for the product that its effective balance covers.
	Sponsored bool `json:"sponsored"`
	// Affiliate is true when an active affiliate or hybrid monetization
	// config exists for the product.
	Affiliate bool `json:"affiliate"`
	// EffectiveBalance is the ranking balance; zero unless Sponsored.
	EffectiveBalance decimal.Decimal `json:"effectiveBalance"`
}

// ListingPage is a page of ranked listings with the unpaged total.
type ListingPage struct {
	Items []Listing
	Page  Page
	Total int64
}

// TotalPages returns the number of pages of Page.Size needed for Total.
func (p ListingPage) TotalPages() int64 {
	if p.Page.Size <= 0 {
		return 0
	}
	return (p.Total + int64(p.Page.Size) - 1) / int64(p.Page.Size)
}

// NormalizeCategoryNames trims, lower-cases and de-duplicates names, dropping
// empty entries. Order of first appearance is kept.
func NormalizeCategoryNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
