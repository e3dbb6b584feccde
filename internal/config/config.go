// Package config manages environment variables.
//
// It reads variables from the `.env` file (when present),
// loads them into structured Go types, and validates that
// required values are present so they can be reused across
// the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional config blocks (observability, rate limiting).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable must carry.
//
// Keys are lowercased with the prefix removed and nested with ".":
//
//	NOTES_SERVER.PORT -> server.port -> Config.Server.Port
const EnvPrefix = "NOTES_"

// ServiceName identifies this service in logs and APM dashboards.
const ServiceName = "notes-api"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags name the key each field is read from.
// The `validate:"..."` tags are enforced by go-playground/validator.
//
// Observability and RateLimit are pointers because they are optional.
// When omitted, or partially set, defaults are injected by LoadConfig.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	RateLimit     *RateLimitConfig     `koanf:"rate_limit"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production"`
}

// IsProduction reports whether the service runs with production semantics.
func (p Primary) IsProduction() bool {
	return p.Env == "production"
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// RateLimitConfig controls the fixed-window limiter in front of the notes API.
//
// Requests is the number of requests a single client IP may make per Window.
type RateLimitConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Requests int           `koanf:"requests" validate:"min=1"`
	Window   time.Duration `koanf:"window" validate:"min=1s"`
}

// DefaultRateLimitConfig is used when no rate_limit block is configured.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled:  true,
		Requests: 100,
		Window:   time.Minute,
	}
}

// DefaultShutdownTimeout is used when server.shutdown_timeout is unset.
const DefaultShutdownTimeout = 10

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config, validates it, applies defaults, and returns the resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	return unmarshal(k)
}

// unmarshal decodes an already loaded koanf instance into Config,
// injects defaults for optional blocks and validates the result.
func unmarshal(k *koanf.Koanf) (*Config, error) {
	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	applyDefaults(mainConfig)

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// applyDefaults fills optional blocks and zero-valued optional fields.
func applyDefaults(c *Config) {
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	defaultRateLimit := DefaultRateLimitConfig()
	if c.RateLimit == nil {
		c.RateLimit = defaultRateLimit
	}
	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = defaultRateLimit.Requests
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = defaultRateLimit.Window
	}

	defaultObservability := DefaultObservabilityConfig()
	if c.Observability == nil {
		c.Observability = defaultObservability
	}

	// Service name and environment always follow the primary config so
	// logs and traces are labelled consistently.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if c.Observability.Logging.Level == "" {
		c.Observability.Logging.Level = c.Observability.GetLogLevel()
	}
	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = defaultObservability.Logging.Format
	}
	// A health_checks block without checks counts as not configured.
	if len(c.Observability.HealthChecks.Checks) == 0 {
		c.Observability.HealthChecks = defaultObservability.HealthChecks
	}
	if c.Observability.HealthChecks.Timeout <= 0 {
		c.Observability.HealthChecks.Timeout = defaultObservability.HealthChecks.Timeout
	}
}
