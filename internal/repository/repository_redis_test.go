package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/withdraw-review/internal/domain/vo"
)

type ReviewSelectionRedisRepositorySuite struct {
	suite.Suite

	server *miniredis.Miniredis
	repo   *ReviewSelectionRedisRepository
}

func (s *ReviewSelectionRedisRepositorySuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })
	s.repo = NewReviewSelectionRedisRepository(client)
}

func (s *ReviewSelectionRedisRepositorySuite) selection(id string) vo.ReviewSelection {
	return vo.ReviewSelection{
		ID:        id,
		AccountID: "user-1",
		Index:     3,
		ExpiresAt: time.Now().Add(10 * time.Minute).UTC().Truncate(time.Millisecond),
	}
}

func (s *ReviewSelectionRedisRepositorySuite) TestTakeConsumesSelection() {
	ctx := context.Background()
	selection := s.selection("sel-1")
	require.NoError(s.T(), s.repo.SaveSelection(ctx, "operator-1", selection))

	ttl := s.server.TTL("withdraw-review:selection:operator-1:sel-1")
	assert.Greater(s.T(), ttl, 9*time.Minute)

	taken, err := s.repo.TakeSelection(ctx, "operator-1", "sel-1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), selection.AccountID, taken.AccountID)
	assert.Equal(s.T(), selection.Index, taken.Index)
	assert.True(s.T(), selection.ExpiresAt.Equal(taken.ExpiresAt))

	_, err = s.repo.TakeSelection(ctx, "operator-1", "sel-1")
	assert.ErrorIs(s.T(), err, vo.ErrSelectionNotFound)
}

func (s *ReviewSelectionRedisRepositorySuite) TestSelectionIsScopedToOperator() {
	ctx := context.Background()
	require.NoError(s.T(), s.repo.SaveSelection(ctx, "operator-1", s.selection("sel-1")))

	_, err := s.repo.TakeSelection(ctx, "operator-2", "sel-1")
	assert.ErrorIs(s.T(), err, vo.ErrSelectionNotFound)

	_, err = s.repo.TakeSelection(ctx, "operator-1", "sel-1")
	assert.NoError(s.T(), err)
}

func (s *ReviewSelectionRedisRepositorySuite) TestExpiredSelection() {
	ctx := context.Background()
	require.NoError(s.T(), s.repo.SaveSelection(ctx, "operator-1", s.selection("sel-1")))

	s.server.FastForward(11 * time.Minute)

	_, err := s.repo.TakeSelection(ctx, "operator-1", "sel-1")
	assert.ErrorIs(s.T(), err, vo.ErrSelectionNotFound)
}

func (s *ReviewSelectionRedisRepositorySuite) TestSaveRejectsExpiredSelection() {
	selection := s.selection("sel-1")
	selection.ExpiresAt = time.Now().Add(-time.Second)

	err := s.repo.SaveSelection(context.Background(), "operator-1", selection)
	assert.ErrorContains(s.T(), err, "already expired")
}

func (s *ReviewSelectionRedisRepositorySuite) TestDiscardSelection() {
	ctx := context.Background()
	require.NoError(s.T(), s.repo.SaveSelection(ctx, "operator-1", s.selection("sel-1")))

	require.NoError(s.T(), s.repo.DiscardSelection(ctx, "operator-1", "sel-1"))
	require.NoError(s.T(), s.repo.DiscardSelection(ctx, "operator-1", "sel-1"))

	_, err := s.repo.TakeSelection(ctx, "operator-1", "sel-1")
	assert.ErrorIs(s.T(), err, vo.ErrSelectionNotFound)
}

func (s *ReviewSelectionRedisRepositorySuite) TestStoreFailure() {
	s.server.Close()

	_, err := s.repo.TakeSelection(context.Background(), "operator-1", "sel-1")
	assert.ErrorContains(s.T(), err, "failed to take selection")
	assert.NotErrorIs(s.T(), err, vo.ErrSelectionNotFound)
}

func TestReviewSelectionRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReviewSelectionRedisRepositorySuite))
}

type AuthSessionRevocationRedisRepositorySuite struct {
	suite.Suite

	server *miniredis.Miniredis
	repo   *AuthSessionRevocationRedisRepository
}

func (s *AuthSessionRevocationRedisRepositorySuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })
	s.repo = NewAuthSessionRevocationRedisRepository(client)
}

func (s *AuthSessionRevocationRedisRepositorySuite) TestRevokeSession_TableDriven() {
	tests := []struct {
		name      string
		sessionID string
		until     time.Duration
		expectErr string
		revoked   bool
	}{
		{name: "session id required", sessionID: "", until: time.Minute, expectErr: "session id is required"},
		{name: "already expired token is skipped", sessionID: "jti-old", until: -time.Minute},
		{name: "revoked until expiry", sessionID: "jti-1", until: time.Minute, revoked: true},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			ctx := context.Background()
			err := s.repo.RevokeSession(ctx, tc.sessionID, time.Now().Add(tc.until))
			if tc.expectErr != "" {
				assert.ErrorContains(s.T(), err, tc.expectErr)
				return
			}
			require.NoError(s.T(), err)

			revoked, err := s.repo.IsSessionRevoked(ctx, tc.sessionID)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.revoked, revoked)
		})
	}
}

func (s *AuthSessionRevocationRedisRepositorySuite) TestRevocationExpiresWithToken() {
	ctx := context.Background()
	require.NoError(s.T(), s.repo.RevokeSession(ctx, "jti-1", time.Now().Add(time.Minute)))

	s.server.FastForward(2 * time.Minute)

	revoked, err := s.repo.IsSessionRevoked(ctx, "jti-1")
	require.NoError(s.T(), err)
	assert.False(s.T(), revoked)
}

func (s *AuthSessionRevocationRedisRepositorySuite) TestEmptySessionIsNeverRevoked() {
	revoked, err := s.repo.IsSessionRevoked(context.Background(), "")
	require.NoError(s.T(), err)
	assert.False(s.T(), revoked)
}

func TestAuthSessionRevocationRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(AuthSessionRevocationRedisRepositorySuite))
}
