package configs

import "time"

// Sweep configures the budget enforcement sweep. Interval drives the
// scheduled worker; zero disables it. OnRead additionally triggers a sweep
// after every successful listing read.
type Sweep struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"1m"`
	OnRead   bool          `env:"ON_READ" envDefault:"false"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
