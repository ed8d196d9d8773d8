package config

import (
	"errors"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"comparee/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with the
// given prefix. Sections whose variables predate the prefix convention (GSC,
// translation, site) declare full variable names instead.
type Config struct {
	// Env is the deployment environment. Production-only routes are mounted
	// only when it is "prod" or "production".
	Env string `env:"ENV" envDefault:"dev"`

	HTTP  configs.HTTP     `envPrefix:"HTTP_"`
	Log   configs.Logger   `envPrefix:"LOG_"`
	Psql  configs.Postgres `envPrefix:"PSQL_"`
	Redis configs.Redis    `envPrefix:"REDIS_"`
	NATS  configs.NATS     `envPrefix:"NATS_"`
	AWS   configs.AWS      `envPrefix:"AWS_"`

	Site        configs.Site
	Listing     configs.Listing `envPrefix:"LISTING_"`
	Sweep       configs.Sweep   `envPrefix:"SWEEP_"`
	GSC         configs.GSC
	Translation configs.Translation
	Admin       configs.Admin `envPrefix:"ADMIN_"`
}

// IsProduction reports whether the service runs in the production
// environment.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	default:
		return false
	}
}

// Load reads an optional .env file and then environment variables into a
// Config. All fields fall back to their declared defaults.
func Load() (Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.IsProduction() && c.Admin.JWTSecret == "" {
		return errors.New("ADMIN_JWT_SECRET is required in production")
	}
	if c.Listing.TieBreak != "random" && c.Listing.TieBreak != "id" {
		return errors.New("LISTING_TIE_BREAK must be random or id")
	}
	return nil
}
