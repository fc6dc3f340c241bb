package configs

import "time"

// HTTP defines configuration for the HTTP server and the tracking handlers.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// PublicBaseURL overrides the scheme and host used for absolute
	// tracking URLs in the JSON feed. When empty the request host is used.
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	// TrackingTimeout bounds store and cache calls made by the tracking
	// handlers. Hitting it is reported as a fault.
	TrackingTimeout time.Duration `env:"TRACKING_TIMEOUT" envDefault:"2s"`
	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
