package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/notes-api/internal/config"
	"github.com/deppfellow/notes-api/internal/server"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisRateLimiterStore_FixedWindow(t *testing.T) {
	mr, client := newRedis(t)
	log := zerolog.Nop()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewRedisRateLimiterStore(client, 2, time.Minute, &log)
	store.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		allowed, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = store.Allow("10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed, "other clients keep their own budget")

	keys := mr.Keys()
	require.NotEmpty(t, keys)
	assert.Equal(t, time.Minute, mr.TTL(keys[0]))

	now = now.Add(time.Minute)
	allowed, err = store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed, "a new window resets the count")
}

func TestRedisRateLimiterStore_FailsOpen(t *testing.T) {
	mr, client := newRedis(t)
	log := zerolog.Nop()
	store := NewRedisRateLimiterStore(client, 1, time.Minute, &log)

	mr.Close()

	allowed, err := store.Allow("10.0.0.1")
	assert.Error(t, err)
	assert.True(t, allowed)
}

func newRateLimitedEcho(t *testing.T, enabled bool) *echo.Echo {
	t.Helper()

	_, client := newRedis(t)
	log := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:   config.Primary{Env: "local"},
			RateLimit: &config.RateLimitConfig{Enabled: enabled, Requests: 1, Window: time.Minute},
		},
		Logger: &log,
		Redis:  client,
	}

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	return e
}

func TestRateLimitMiddleware_Denies(t *testing.T) {
	e := newRateLimitedEcho(t, true)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Too many requests"}`, rec.Body.String())
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	e := newRateLimitedEcho(t, false)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
