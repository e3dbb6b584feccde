package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"NOTES_PRIMARY.ENV":                 "local",
		"NOTES_SERVER.PORT":                 "8080",
		"NOTES_SERVER.READ_TIMEOUT":         "30",
		"NOTES_SERVER.WRITE_TIMEOUT":        "30",
		"NOTES_SERVER.IDLE_TIMEOUT":         "60",
		"NOTES_SERVER.CORS_ALLOWED_ORIGINS": "http://localhost:3000",
		"NOTES_DATABASE.HOST":               "localhost",
		"NOTES_DATABASE.PORT":               "5432",
		"NOTES_DATABASE.USER":               "postgres",
		"NOTES_DATABASE.PASSWORD":           "postgres",
		"NOTES_DATABASE.NAME":               "notes",
		"NOTES_DATABASE.SSL_MODE":           "disable",
		"NOTES_DATABASE.MAX_OPEN_CONNS":     "25",
		"NOTES_DATABASE.MAX_IDLE_CONNS":     "5",
		"NOTES_DATABASE.CONN_MAX_LIFETIME":  "300",
		"NOTES_DATABASE.CONN_MAX_IDLE_TIME": "60",
		"NOTES_REDIS.ADDRESS":               "localhost:6379",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)

	require.NotNil(t, cfg.RateLimit)
	assert.Equal(t, DefaultRateLimitConfig(), cfg.RateLimit)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.False(t, cfg.Observability.NewRelic.Enabled())
	assert.True(t, cfg.Observability.HealthChecks.Has("database"))
}

func TestLoadConfig_RateLimitOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NOTES_RATE_LIMIT.ENABLED", "true")
	t.Setenv("NOTES_RATE_LIMIT.REQUESTS", "5")
	t.Setenv("NOTES_RATE_LIMIT.WINDOW", "10s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NOTES_DATABASE.HOST", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadConfig_UnknownEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NOTES_PRIMARY.ENV", "moon")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestObservabilityConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ObservabilityConfig)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*ObservabilityConfig) {}},
		{name: "unknown level", mutate: func(c *ObservabilityConfig) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "unknown format", mutate: func(c *ObservabilityConfig) { c.Logging.Format = "xml" }, wantErr: true},
		{name: "negative slow query threshold", mutate: func(c *ObservabilityConfig) { c.Logging.SlowQueryThreshold = -time.Second }, wantErr: true},
		{name: "missing service name", mutate: func(c *ObservabilityConfig) { c.ServiceName = "" }, wantErr: true},
		{name: "health checks without timeout", mutate: func(c *ObservabilityConfig) { c.HealthChecks.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultObservabilityConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	c := DefaultObservabilityConfig()
	c.Logging.Level = ""

	c.Environment = "production"
	assert.Equal(t, "info", c.GetLogLevel())

	c.Environment = "local"
	assert.Equal(t, "debug", c.GetLogLevel())

	c.Logging.Level = "warn"
	assert.Equal(t, "warn", c.GetLogLevel())
}
