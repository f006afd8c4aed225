package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RedisLimiterSuite struct {
	suite.Suite

	server *miniredis.Miniredis
	client *redis.Client
}

func (s *RedisLimiterSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.T().Cleanup(func() { _ = s.client.Close() })
}

func (s *RedisLimiterSuite) TestAllow_TableDriven() {
	tests := []struct {
		name      string
		algorithm Algorithm
	}{
		{name: "token bucket", algorithm: AlgorithmTokenBucket},
		{name: "sliding window", algorithm: AlgorithmSlidingWindow},
		{name: "fixed window", algorithm: AlgorithmFixedWindow},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()

			var limitedKeys []string
			limiter, err := New(NewRedisStore(s.client, WithRedisPrefix("test")), Config{
				Algorithm: tc.algorithm,
				Limit:     2,
				Window:    time.Minute,
				OnLimited: func(_ context.Context, key string, _ Result) {
					limitedKeys = append(limitedKeys, key)
				},
			})
			require.NoError(s.T(), err)

			ctx := context.Background()
			for i := 0; i < 2; i++ {
				result, err := limiter.Allow(ctx, "login:ip:10.0.0.1")
				require.NoError(s.T(), err)
				assert.True(s.T(), result.Allowed, "request %d should pass", i+1)
				assert.Equal(s.T(), int64(2), result.Limit)
			}

			result, err := limiter.Allow(ctx, "login:ip:10.0.0.1")
			require.NoError(s.T(), err)
			assert.False(s.T(), result.Allowed)
			assert.Equal(s.T(), int64(0), result.Remaining)
			assert.Equal(s.T(), []string{"login:ip:10.0.0.1"}, limitedKeys)

			other, err := limiter.Allow(ctx, "login:ip:10.0.0.2")
			require.NoError(s.T(), err)
			assert.True(s.T(), other.Allowed)

			require.NoError(s.T(), limiter.Reset(ctx, "login:ip:10.0.0.1"))
			afterReset, err := limiter.Allow(ctx, "login:ip:10.0.0.1")
			require.NoError(s.T(), err)
			assert.True(s.T(), afterReset.Allowed)
		})
	}
}

func (s *RedisLimiterSuite) TestAllowCountsUnderPrefixedKey() {
	limiter, err := New(NewRedisStore(s.client), Config{Algorithm: AlgorithmFixedWindow, Limit: 1, Window: time.Minute})
	require.NoError(s.T(), err)

	ctx := context.Background()
	first, err := limiter.Allow(ctx, "review:operator:operator-1")
	require.NoError(s.T(), err)
	assert.True(s.T(), first.Allowed)

	assert.True(s.T(), s.server.Exists("withdraw-review:ratelimit:review:operator:operator-1"))

	second, err := limiter.Allow(ctx, "review:operator:operator-1")
	require.NoError(s.T(), err)
	assert.False(s.T(), second.Allowed)
	assert.Greater(s.T(), second.RetryAfter, time.Duration(0))

	_, err = limiter.Allow(ctx, "")
	assert.ErrorIs(s.T(), err, ErrEmptyKey)
	assert.ErrorIs(s.T(), limiter.Reset(ctx, ""), ErrEmptyKey)
}

func (s *RedisLimiterSuite) TestCloseLeavesSharedClientOpen() {
	limiter, err := New(NewRedisStore(s.client), Config{Limit: 1, Window: time.Minute})
	require.NoError(s.T(), err)

	require.NoError(s.T(), limiter.Close())
	assert.NoError(s.T(), s.client.Ping(context.Background()).Err())
}

func (s *RedisLimiterSuite) TestStoreFailure() {
	limiter, err := New(NewRedisStore(s.client), Config{Limit: 1, Window: time.Minute})
	require.NoError(s.T(), err)

	s.server.Close()

	_, err = limiter.Allow(context.Background(), "review:operator:operator-1")
	assert.ErrorContains(s.T(), err, "ratelimit: store error")
}

func TestRedisLimiterSuite(t *testing.T) {
	suite.Run(t, new(RedisLimiterSuite))
}

func TestNew_TableDriven(t *testing.T) {
	store := NewRedisStore(nil)

	tests := []struct {
		name      string
		store     Store
		config    Config
		expectErr string
	}{
		{name: "missing store", store: nil, config: Config{Limit: 1, Window: time.Second}, expectErr: "store is required"},
		{name: "unknown algorithm", store: store, config: Config{Algorithm: "leaky", Limit: 1, Window: time.Second}, expectErr: `unknown algorithm "leaky"`},
		{name: "zero limit", store: store, config: Config{Window: time.Second}, expectErr: "limit must be positive"},
		{name: "zero window", store: store, config: Config{Limit: 1}, expectErr: "window must be positive"},
		{name: "valid", store: store, config: Config{Limit: 1, Window: time.Second}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			limiter, err := New(tc.store, tc.config)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, limiter)
		})
	}
}
