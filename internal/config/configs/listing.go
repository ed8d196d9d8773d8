package configs

import "time"

// Listing tunes the product listing endpoint.
type Listing struct {
	// TieBreak selects the final ordering key for rows that tie on every
	// ranking criterion: "random" (default) or "id".
	TieBreak     string        `env:"TIE_BREAK" envDefault:"random"`
	SlugCacheTTL time.Duration `env:"SLUG_CACHE_TTL" envDefault:"10m"`
}
