package configs

// Kafka configures the optional tracking event stream. Publishing is
// disabled when Brokers is empty.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"ad-tracking-events"`
}

// Enabled reports whether a broker list was configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }
