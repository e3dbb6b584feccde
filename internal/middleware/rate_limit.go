package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/notes-api/internal/errs"
	"github.com/deppfellow/notes-api/internal/server"
)

const (
	// MessageTooManyRequests is returned with 429 once a client exhausts its window.
	MessageTooManyRequests = "Too many requests"

	rateLimitKeyPrefix = "notes-api:ratelimit:"
	rateLimitTimeout   = 100 * time.Millisecond
)

// RedisRateLimiterStore is a fixed-window counter kept in Redis, shared by
// every instance of the service.
//
// It implements echo's middleware.RateLimiterStore. Redis failures are
// logged and the request is allowed.
type RedisRateLimiterStore struct {
	client   redis.UniversalClient
	requests int
	window   time.Duration
	log      *zerolog.Logger
	now      func() time.Time
}

func NewRedisRateLimiterStore(client redis.UniversalClient, requests int, window time.Duration, log *zerolog.Logger) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{
		client:   client,
		requests: requests,
		window:   window,
		log:      log,
		now:      time.Now,
	}
}

// Allow counts one request for identifier in the current window.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rateLimitTimeout)
	defer cancel()

	window := s.now().UnixNano() / int64(s.window)
	key := rateLimitKeyPrefix + identifier + ":" + strconv.FormatInt(window, 10)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", identifier).Msg("rate limiter unavailable, allowing request")
		return true, err
	}

	if count == 1 {
		if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to set rate limit window expiry")
		}
	}

	return count <= int64(s.requests), nil
}

type RateLimitMiddleware struct {
	server *server.Server
	store  middleware.RateLimiterStore
}

// NewRateLimitMiddleware returns a limiter backed by the server's Redis
// client. The store is nil when rate limiting is disabled or Redis is not
// configured.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	r := &RateLimitMiddleware{server: s}

	cfg := s.Config.RateLimit
	if cfg != nil && cfg.Enabled && s.Redis != nil {
		r.store = NewRedisRateLimiterStore(s.Redis, cfg.Requests, cfg.Window, s.Logger)
	}

	return r
}

// Limit throttles requests per client IP.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	if r.store == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: r.store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())

			GetLogger(c).Warn().
				Str("identifier", identifier).
				Msg("rate limit exceeded")

			return errs.NewTooManyRequestsError(MessageTooManyRequests)
		},
	})
}

// RecordRateLimitHit emits a RateLimitHit custom event to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
