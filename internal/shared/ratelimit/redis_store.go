package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "withdraw-review:ratelimit"

// Every script returns {allowed, remaining, retry_after_ms, reset_in_ms}.
var (
	tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local window = tonumber(ARGV[3])
local now = tonumber(ARGV[4])

local data = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(data[1]) or burst
local lastRefill = tonumber(data[2]) or now

local refillRate = limit / window
tokens = math.min(burst, tokens + ((now - lastRefill) * refillRate))

local allowed = 0
local retryAfter = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
else
	retryAfter = (1 - tokens) / refillRate
end

redis.call('HMSET', key, 'tokens', tokens, 'last_refill', now)
redis.call('PEXPIRE', key, window * 2)

local resetIn = (burst - tokens) / refillRate
return {allowed, math.floor(tokens), math.floor(retryAfter), math.floor(resetIn)}
`)

	slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)

local count = redis.call('ZCARD', key)
local allowed = 0
local remaining = 0
local retryAfter = 0
if count < limit then
	redis.call('ZADD', key, now, now .. '-' .. math.random())
	allowed = 1
	remaining = limit - count - 1
else
	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	if oldest[2] then
		retryAfter = math.max(0, tonumber(oldest[2]) + window - now)
	end
end

redis.call('PEXPIRE', key, window * 2)

return {allowed, remaining, math.floor(retryAfter), window}
`)

	fixedWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

local current = tonumber(redis.call('INCR', key))
if current == 1 then
	redis.call('PEXPIRE', key, window)
end

local ttl = redis.call('PTTL', key)
if current <= limit then
	return {1, limit - current, 0, ttl}
end
return {0, 0, ttl, ttl}
`)
)

// RedisStore keeps counters in Redis so every instance of the service shares
// the same budget. The client is owned by the caller.
type RedisStore struct {
	client *redis.Client
	prefix string
}

type RedisStoreOption func(*RedisStore)

// WithRedisPrefix namespaces the counters, e.g. one prefix per limited route.
func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: defaultRedisPrefix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *RedisStore) key(key string) string {
	return s.prefix + ":" + key
}

func (s *RedisStore) Allow(ctx context.Context, key string, config Config) (Result, error) {
	if s == nil || s.client == nil {
		return Result{}, errors.New("ratelimit: redis store is not initialized")
	}

	now := time.Now()
	windowMs := config.Window.Milliseconds()
	keys := []string{s.key(key)}

	var cmd *redis.Cmd
	switch config.Algorithm {
	case AlgorithmSlidingWindow:
		cmd = slidingWindowScript.Run(ctx, s.client, keys, config.Limit, windowMs, now.UnixMilli())
	case AlgorithmFixedWindow:
		cmd = fixedWindowScript.Run(ctx, s.client, keys, config.Limit, windowMs)
	default:
		cmd = tokenBucketScript.Run(ctx, s.client, keys, config.Limit, config.Burst, windowMs, now.UnixMilli())
	}

	values, err := cmd.Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: redis script failed: %w", err)
	}
	if len(values) != 4 {
		return Result{}, fmt.Errorf("ratelimit: unexpected script reply of %d values", len(values))
	}

	return Result{
		Allowed:    values[0] == 1,
		Limit:      config.Limit,
		Remaining:  max(values[1], 0),
		ResetAt:    now.Add(time.Duration(values[3]) * time.Millisecond),
		RetryAfter: time.Duration(values[2]) * time.Millisecond,
	}, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return errors.New("ratelimit: redis store is not initialized")
	}

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("ratelimit: failed to reset %q: %w", key, err)
	}
	return nil
}

// Close is a no-op: the shared client is closed by the application lifecycle.
func (s *RedisStore) Close() error {
	return nil
}
