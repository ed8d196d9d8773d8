package configs

// Site describes the public web site whose URLs the service reasons about.
type Site struct {
	// BaseURL is the public origin, e.g. https://comparee.ai.
	BaseURL string `env:"NEXT_PUBLIC_BASE_URL" envDefault:"https://comparee.ai"`
}
