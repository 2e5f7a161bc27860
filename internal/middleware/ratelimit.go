package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/muhammadlatif13/movieapp/internal/config"
)

// NewRateLimiter returns a fixed-window rate limiting middleware backed by
// Redis.  Requests are counted per client IP and route; once the count in
// the current window exceeds the limit the request is rejected with 429.
// When limiting is disabled or Redis is unavailable the middleware is a
// pass-through, and a Redis error at request time also lets the request
// through rather than failing it.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			window := time.Now().UnixMilli() / cfg.Window.Milliseconds()
			key := cfg.Prefix + ":" + c.RealIP() + ":" + c.Path() + ":" + strconv.FormatInt(window, 10)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}

			remaining := int64(cfg.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(cfg.Limit) {
				untilNext := cfg.Window - time.Duration(time.Now().UnixMilli()%cfg.Window.Milliseconds())*time.Millisecond
				secs := int(math.Ceil(untilNext.Seconds()))
				if secs < 0 {
					secs = 0
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"message":     "rate limit exceeded",
					"retry_after": secs,
				})
			}
			return next(c)
		}
	}
}
