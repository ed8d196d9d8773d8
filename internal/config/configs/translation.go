package configs

import "time"

// Translation configures the translation microservice client and the outbox
// worker that feeds it. An empty ServiceURL disables delivery; outbox rows
// accumulate until it is configured.
type Translation struct {
	ServiceURL      string        `env:"TRANSLATION_SERVICE_URL" envDefault:""`
	APIKey          string        `env:"TRANSLATION_SERVICE_API_KEY" envDefault:""`
	TargetLanguages []string      `env:"TRANSLATION_TARGET_LANGUAGES" envDefault:"de,fr,es" envSeparator:","`
	Timeout         time.Duration `env:"TRANSLATION_TIMEOUT" envDefault:"10s"`
	PollInterval    time.Duration `env:"TRANSLATION_OUTBOX_POLL_INTERVAL" envDefault:"15s"`
	BatchSize       int           `env:"TRANSLATION_OUTBOX_BATCH" envDefault:"20"`
	MaxAttempts     int           `env:"TRANSLATION_OUTBOX_MAX_ATTEMPTS" envDefault:"8"`
}
