package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"kunooz-ads/internal/config/configs"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// StoreDriver selects the ad store: "postgres" or "sqlite".
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	SQLite  configs.SQLite   `envPrefix:"SQLITE_"`
	Redis   configs.Redis    `envPrefix:"REDIS_"`
	Cache   configs.Cache    `envPrefix:"CACHE_"`
	Dedup   configs.Dedup    `envPrefix:"DEDUP_"`
	Kafka   configs.Kafka    `envPrefix:"KAFKA_"`
	Tracing configs.Tracing  `envPrefix:"TRACING_"`
	Auth    configs.Auth     `envPrefix:"AUTH_"`
}

// Load reads configuration from environment variables into a Config and
// checks the enumerated options.
func Load() (Config, error) {
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
	switch c.StoreDriver {
	case StorePostgres, StoreSQLite:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	for name, backend := range map[string]string{"CACHE_BACKEND": c.Cache.Backend, "DEDUP_BACKEND": c.Dedup.Backend} {
		if backend != configs.BackendMemory && backend != configs.BackendRedis {
			return fmt.Errorf("config: unknown %s %q", name, backend)
		}
	}
	return nil
}

// NeedsRedis reports whether any component is configured to use Redis.
func (c Config) NeedsRedis() bool {
	return c.Cache.Backend == configs.BackendRedis || c.Dedup.Backend == configs.BackendRedis
}
