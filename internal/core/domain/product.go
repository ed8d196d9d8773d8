package domain

import "time"

// Product is a listed AI tool. Ownership by an advertiser is recorded on the
// company (Company.AssignedProductID), not here.
type Product struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Slug                string    `json:"slug"`
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	PrimaryCategoryID   *int64    `json:"primaryCategoryId,omitempty"`
	SecondaryCategoryID *int64    `json:"secondaryCategoryId,omitempty"`
	URL                 string    `json:"url"`
	LogoURL             string    `json:"logoUrl"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Slugify lower-cases name and joins alphanumeric runs with dashes.
func Slugify(name string) string {
	out := make([]rune, 0, len(name))
	dash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
			dash = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			dash = false
		default:
			if !dash && len(out) > 0 {
				out = append(out, '-')
				dash = true
			}
		}
	}
	if dash {
		out = out[:len(out)-1]
	}
	return string(out)
}
