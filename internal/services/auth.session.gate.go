package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuarp/withdraw-review/internal/domain"
	"github.com/joshuarp/withdraw-review/internal/domain/vo"
)

type IdentityProvider interface {
	Authenticate(ctx context.Context, email, password string) (domain.Identity, error)
	Revoke(ctx context.Context, identity domain.Identity) error
}

type AdminRoleRepository interface {
	GetAdminRole(ctx context.Context, uid string) (domain.AdminRole, error)
}

// SessionGateService only lets operators holding the admin role keep a
// session.
type SessionGateService struct {
	provider IdentityProvider
	roles    AdminRoleRepository
	logger   *slog.Logger
}

func NewSessionGateService(provider IdentityProvider, roles AdminRoleRepository, logger *slog.Logger) *SessionGateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionGateService{provider: provider, roles: roles, logger: logger}
}

func (s *SessionGateService) SignIn(ctx context.Context, email, password string) (vo.AuthSession, error) {
	identity, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		return vo.AuthSession{}, err
	}

	role, err := s.roles.GetAdminRole(ctx, identity.OperatorID)
	if err != nil {
		revokeErr := s.provider.Revoke(ctx, identity)
		return vo.AuthSession{}, errors.Join(fmt.Errorf("service: failed to check admin role: %w", err), revokeErr)
	}

	if !role.IsAdmin() {
		if err := s.provider.Revoke(ctx, identity); err != nil {
			return vo.AuthSession{}, fmt.Errorf("service: failed to sign out non-admin: %w", err)
		}

		s.logger.WarnContext(ctx, "sign-in refused for non-admin operator", "operator_id", identity.OperatorID)
		return vo.AuthSession{}, vo.ErrNotAdmin
	}

	return vo.AuthSession{
		AccessToken: identity.AccessToken,
		TokenType:   "Bearer",
		OperatorID:  identity.OperatorID,
		ExpiresAt:   identity.ExpiresAt,
	}, nil
}

func (s *SessionGateService) SignOut(ctx context.Context, identity domain.Identity) error {
	return s.provider.Revoke(ctx, identity)
}
