// Package config provides centralized configuration management for the
// application. It loads settings from environment variables with sensible
// defaults and validates everything on startup to fail fast on
// misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server     ServerConfig
	ContentAPI ContentAPIConfig
	Import     ImportConfig
	Rate       RateLimitConfig
	Security   SecurityConfig
	Logging    LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// ContentAPIConfig holds the connection to the remote content store.
type ContentAPIConfig struct {
	// Endpoint is the GraphQL endpoint URL (required)
	// Supports both CONTENT_API_ENDPOINT and GRAPHCMS_ENDPOINT env vars
	Endpoint string `env:"CONTENT_API_ENDPOINT" envAlt:"GRAPHCMS_ENDPOINT" required:"true"`

	// Token is the bearer token sent with every request (required)
	Token string `env:"CONTENT_API_TOKEN" envAlt:"GRAPHCMS_TOKEN" required:"true"`

	// Timeout is the per-call HTTP timeout (default: 30s)
	Timeout time.Duration `env:"CONTENT_API_TIMEOUT" default:"30s"`
}

// ImportConfig holds CSV import settings.
type ImportConfig struct {
	// MaxUploadBytes caps the size of an uploaded CSV file (default: 10MB)
	MaxUploadBytes int64 `env:"IMPORT_MAX_UPLOAD_BYTES" default:"10485760"`

	// SessionTTL is how long an idle import session is kept (default: 30m)
	SessionTTL time.Duration `env:"IMPORT_SESSION_TTL" default:"30m"`

	// SubmitTimeout bounds one batch submission end to end (default: 2m)
	SubmitTimeout time.Duration `env:"IMPORT_SUBMIT_TIMEOUT" default:"2m"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`

	// ImportLimit is requests per minute for import endpoints (default: 10)
	ImportLimit int `env:"RATE_LIMIT_IMPORT" default:"10"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// RequireAuth gates the import endpoints behind editor keys (default: true)
	RequireAuth bool `env:"SECURITY_REQUIRE_AUTH" default:"true"`

	// EditorKeys is a comma-separated list of accepted editor API keys
	EditorKeys []string `env:"SECURITY_EDITOR_KEYS"`

	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
