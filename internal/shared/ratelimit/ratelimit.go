// Package ratelimit throttles operator sign-in attempts and review decisions.
// Counters live in a pluggable Store shared by every instance of the service.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Algorithm string

const (
	// AlgorithmTokenBucket refills Limit tokens per Window and allows bursts
	// up to Burst. Used when nothing is configured.
	AlgorithmTokenBucket   Algorithm = "token_bucket"
	AlgorithmSlidingWindow Algorithm = "sliding_window"
	// AlgorithmFixedWindow lets up to 2x Limit through across a window boundary.
	AlgorithmFixedWindow Algorithm = "fixed_window"
)

var (
	ErrNoStore      = errors.New("ratelimit: store is required")
	ErrEmptyKey     = errors.New("ratelimit: key is required")
	errBadLimit     = errors.New("ratelimit: limit must be positive")
	errBadWindow    = errors.New("ratelimit: window must be positive")
	errBadAlgorithm = errors.New("ratelimit: unknown algorithm")
)

type Result struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

type Config struct {
	Algorithm Algorithm
	Limit     int64
	Window    time.Duration

	// Burst only applies to the token bucket. Zero means Limit.
	Burst int64

	// OnLimited fires for every refused request.
	OnLimited func(ctx context.Context, key string, result Result)
}

func (c Config) withDefaults() (Config, error) {
	switch {
	case c.Limit <= 0:
		return c, errBadLimit
	case c.Window <= 0:
		return c, errBadWindow
	}

	switch c.Algorithm {
	case "":
		c.Algorithm = AlgorithmTokenBucket
	case AlgorithmTokenBucket, AlgorithmSlidingWindow, AlgorithmFixedWindow:
	default:
		return c, fmt.Errorf("%w %q", errBadAlgorithm, c.Algorithm)
	}

	if c.Burst <= 0 {
		c.Burst = c.Limit
	}
	return c, nil
}

// Store counts requests per key.
type Store interface {
	Allow(ctx context.Context, key string, config Config) (Result, error)
	Reset(ctx context.Context, key string) error
	Close() error
}

// Limiter applies one Config to any number of buckets. The caller names the
// bucket, e.g. "login:ip:10.0.0.1".
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
	Reset(ctx context.Context, key string) error
	Close() error
}

type limiter struct {
	store  Store
	config Config
}

func New(store Store, config Config) (Limiter, error) {
	if store == nil {
		return nil, ErrNoStore
	}

	config, err := config.withDefaults()
	if err != nil {
		return nil, err
	}

	return &limiter{store: store, config: config}, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (Result, error) {
	if key == "" {
		return Result{}, ErrEmptyKey
	}

	result, err := l.store.Allow(ctx, key, l.config)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: store error: %w", err)
	}

	if !result.Allowed && l.config.OnLimited != nil {
		l.config.OnLimited(ctx, key, result)
	}
	return result, nil
}

func (l *limiter) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return l.store.Reset(ctx, key)
}

func (l *limiter) Close() error {
	return l.store.Close()
}
