package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	Events    EventsConfig
	JWT       JWTConfig
	Stripe    StripeConfig
	Catalog   CatalogConfig
	Links     LinksConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int // in seconds
	WriteTimeout    int // in seconds
	ShutdownTimeout int // in seconds
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
}

// EventsConfig selects the broker lifecycle events are published to
type EventsConfig struct {
	Driver  string // "nats", "nsq" or "none"
	Subject string // subject/topic prefix
}

// JWTConfig contains session credential configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
	LinkTTL    int // in minutes, for email verification and password reset links
}

// StripeConfig contains payment processor configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	DedupTTL      int // in hours

	BreakerFailures int // consecutive failures that open the circuit
	BreakerCooldown int // in seconds
}

// CatalogConfig points at an optional catalog override file
type CatalogConfig struct {
	FilePath string
}

// LinksConfig holds the public URLs used in emailed links
type LinksConfig struct {
	VerifyEmailURL   string
	ResetPasswordURL string
}

// RateLimitConfig configures the Redis backed limiter on public auth routes
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  int // in seconds
}

// NewRelicConfig contains APM agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
