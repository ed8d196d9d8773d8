package configs

// Redis configures the optional Redis connection used for the distributed
// job lock and the category slug cache. An empty Addr disables Redis and the
// process-local fallbacks are used instead.
type Redis struct {
	Addr      string `env:"ADDR" envDefault:""`
	Password  string `env:"PASSWORD" envDefault:""`
	DB        int    `env:"DB" envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"comparee:"`
}

// Enabled reports whether a Redis address was configured.
func (r Redis) Enabled() bool { return r.Addr != "" }
