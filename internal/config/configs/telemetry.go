package configs

// Tracing configures OpenTelemetry export. An empty endpoint keeps the
// no-op tracer provider.
type Tracing struct {
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"kunooz-ads"`
}

// Auth configures verification of admin bearer tokens.
type Auth struct {
	// JWTSecret is the HS256 key shared with the platform that issues
	// admin tokens. The admin API is not mounted when it is empty.
	JWTSecret string `env:"JWT_SECRET"`
}
