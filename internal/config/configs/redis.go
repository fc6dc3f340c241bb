package configs

// Redis configures the shared cache and dedup backend.
type Redis struct {
	Address  string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// KeyPrefix namespaces every key written by this service.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"ads:"`
}
