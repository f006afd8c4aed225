package app

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/withdraw-review/internal/shared/config"
	sharedratelimit "github.com/joshuarp/withdraw-review/internal/shared/ratelimit"
)

func provideRedisClient(cfg config.ConfigProvider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

func provideLoginRateLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	return provideScopedRateLimiter(cfg, redisClient, logger, "login", 5)
}

func provideReviewRateLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	return provideScopedRateLimiter(cfg, redisClient, logger, "review", 30)
}

// provideScopedRateLimiter reads rate_limit.<scope>.* and keeps each scope's
// counters under its own redis prefix. An unknown algorithm fails startup.
func provideScopedRateLimiter(
	cfg config.ConfigProvider,
	redisClient *redis.Client,
	logger *slog.Logger,
	scope string,
	defaultLimit int,
) (sharedratelimit.Limiter, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("app: redis client is required for %s rate limiter", scope)
	}

	setting := func(name string) string { return "rate_limit." + scope + "." + name }

	limit := cmp.Or(max(cfg.GetInt(setting("limit")), 0), defaultLimit)
	window := cmp.Or(max(cfg.GetDuration(setting("window")), 0), time.Minute)
	burst := cmp.Or(max(cfg.GetInt(setting("burst")), 0), limit)
	algorithm := sharedratelimit.Algorithm(strings.ToLower(strings.TrimSpace(cfg.GetString(setting("algorithm")))))

	store := sharedratelimit.NewRedisStore(redisClient, sharedratelimit.WithRedisPrefix("withdraw-review:"+scope))
	limiter, err := sharedratelimit.New(store, sharedratelimit.Config{
		Algorithm: algorithm,
		Limit:     int64(limit),
		Window:    window,
		Burst:     int64(burst),
		OnLimited: func(_ context.Context, key string, result sharedratelimit.Result) {
			logger.Warn("rate limit exceeded", "scope", scope, "key", key, "limit", result.Limit)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("app: %s rate limiter: %w", scope, err)
	}
	return limiter, nil
}
