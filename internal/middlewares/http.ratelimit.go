package middlewares

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/withdraw-review/internal/shared/ratelimit"
)

type RateLimitConfig struct {
	Limiter ratelimit.Limiter
	// KeyExtractor names the bucket. Nil buckets by operator, then by IP.
	KeyExtractor func(c fiber.Ctx) string
	// ResetOnSuccess empties the bucket after a 2xx response so only
	// failed attempts are counted.
	ResetOnSuccess bool
	Logger         *slog.Logger
}

func NewHTTPRateLimitMiddleware(cfg RateLimitConfig) fiber.Handler {
	if cfg.Limiter == nil {
		return func(c fiber.Ctx) error { return c.Next() }
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = PerOperatorKeyExtractor("")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		key := cfg.KeyExtractor(c)

		result, err := cfg.Limiter.Allow(c.Context(), key)
		if err != nil {
			cfg.Logger.Error("rate limit check failed", "error", err, "key", key)
			return abortJSON(c, fiber.StatusInternalServerError, "internal server error")
		}

		setRateLimitHeaders(c, result)
		if !result.Allowed {
			retryAfter := retryAfterSeconds(result.RetryAfter)
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
		}

		if err := c.Next(); err != nil || !cfg.ResetOnSuccess {
			return err
		}

		if status := c.Response().StatusCode(); status >= fiber.StatusOK && status < fiber.StatusMultipleChoices {
			if err := cfg.Limiter.Reset(c.Context(), key); err != nil {
				cfg.Logger.Warn("rate limit reset failed", "error", err, "key", key)
			}
		}
		return nil
	}
}

func setRateLimitHeaders(c fiber.Ctx, result ratelimit.Result) {
	c.Set("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
	c.Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
	c.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

// retryAfterSeconds rounds up so clients never retry before the bucket opens.
func retryAfterSeconds(d time.Duration) int {
	seconds := int((d + time.Second - 1) / time.Second)
	return max(seconds, 1)
}

// PerOperatorKeyExtractor buckets authenticated requests by operator and
// falls back to the client IP.
func PerOperatorKeyExtractor(prefix string) func(c fiber.Ctx) string {
	return func(c fiber.Ctx) string {
		if operatorID := OperatorIDFromContext(c); operatorID != "" {
			return scopedKey(prefix, "operator:"+operatorID)
		}
		return scopedKey(prefix, "ip:"+c.IP())
	}
}

func PerIPKeyExtractor(prefix string) func(c fiber.Ctx) string {
	return func(c fiber.Ctx) string {
		return scopedKey(prefix, "ip:"+c.IP())
	}
}

func scopedKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + ":" + key
}
