// Package middleware holds Echo middleware owned by this service.
package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/libbook/seat-reservation/internal/config"
)

// RateLimit returns a fixed-window per-IP request limiter backed by
// Redis.  When limiting is disabled or no Redis client is available
// it degrades to a pass-through, and a Redis error at request time
// lets the request proceed rather than failing it.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	if cfg.Window < time.Second {
		cfg.Window = time.Second // LoadRateLimitConfig clamps too; guard direct construction
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			// one counter per IP per window
			window := time.Now().UnixMilli() / cfg.Window.Milliseconds()
			key := cfg.Prefix + ":ip:" + ip + ":" + strconv.FormatInt(window, 10)

			ctx := c.Request().Context()
			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c) // limiter outage must not take the API down
			}
			// The window index is part of the key, so correctness never
			// depends on the TTL; expiry is garbage collection for spent
			// windows and is re-attempted on every hit in case one fails.
			rdb.Expire(ctx, key, cfg.Window)

			remaining := int64(cfg.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(cfg.Limit) {
				retry := int(math.Ceil(cfg.Window.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error":       "too_many_requests",
					"retry_after": retry,
				})
			}
			return next(c)
		}
	}
}
