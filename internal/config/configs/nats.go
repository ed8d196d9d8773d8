package configs

// NATS configures the optional JetStream publisher for domain events. When
// URL is empty events are dropped.
type NATS struct {
	URL           string `env:"URL" envDefault:""`
	ClientName    string `env:"CLIENT_NAME" envDefault:"comparee"`
	SubjectPrefix string `env:"SUBJECT_PREFIX" envDefault:"comparee"`
}

func (n NATS) Enabled() bool { return n.URL != "" }
