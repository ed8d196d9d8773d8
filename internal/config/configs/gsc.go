package configs

import "time"

// GSC configures the Search Console index status sync.
type GSC struct {
	Enabled bool `env:"GSC_SYNC_ENABLED" envDefault:"false"`
	// ServiceAccountB64 is the base64 encoded service account JSON.
	ServiceAccountB64 string `env:"GCP_SA_JSON_BASE64" envDefault:""`
	// ServiceAccountSecretID names an AWS Secrets Manager secret holding the
	// service account JSON. Consulted only when ServiceAccountB64 is empty.
	ServiceAccountSecretID string        `env:"GSC_SA_SECRET_ID" envDefault:""`
	CronToken              string        `env:"GSC_CRON_TOKEN" envDefault:""`
	SiteURL                string        `env:"GSC_SITE_URL" envDefault:"sc-domain:comparee.ai"`
	DailyQuota             int           `env:"GSC_DAILY_QUOTA" envDefault:"1500"`
	Pacing                 time.Duration `env:"GSC_PACING" envDefault:"120ms"`
	InspectTimeout         time.Duration `env:"GSC_INSPECT_TIMEOUT" envDefault:"25s"`
	LockTTL                time.Duration `env:"GSC_LOCK_TTL" envDefault:"30m"`
}
