package configs

// Backend names accepted by the cache and dedup sections.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Cache configures the render cache.
type Cache struct {
	// Backend is "memory" (in-process otter cache) or "redis".
	Backend string `env:"BACKEND" envDefault:"memory"`
	// MaxEntries bounds the in-process cache.
	MaxEntries int `env:"MAX_ENTRIES" envDefault:"10000"`
}

// Dedup configures the event deduplicator.
type Dedup struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
	// FailOpen records events when the dedup store errors. When false the
	// event is dropped instead.
	FailOpen bool `env:"FAIL_OPEN" envDefault:"true"`
	// SweepSchedule is the cron spec for purging expired in-memory keys.
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"@every 1m"`
}
