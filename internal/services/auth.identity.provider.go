package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joshuarp/withdraw-review/internal/domain"
	"github.com/joshuarp/withdraw-review/internal/domain/vo"
	sharedhash "github.com/joshuarp/withdraw-review/internal/shared/hash"
	sharedjwt "github.com/joshuarp/withdraw-review/internal/shared/jwt"
	shareduid "github.com/joshuarp/withdraw-review/internal/shared/uid"
)

// Revocations of sessions issued without an expiry are kept this long.
const defaultRevocationWindow = 24 * time.Hour

// unknownOperatorPassword is hashed once so a login for an unknown e-mail
// pays the same bcrypt cost as a wrong password.
const unknownOperatorPassword = "unknown-operator"

type AuthOperatorRepository interface {
	GetOperatorByEmail(ctx context.Context, email string) (domain.Operator, error)
}

type AuthSessionRevocationRepository interface {
	RevokeSession(ctx context.Context, sessionID string, until time.Time) error
}

// PasswordIdentityProvider authenticates operators against their stored
// password hash and issues JWT sessions.
type PasswordIdentityProvider struct {
	operators    AuthOperatorRepository
	revocations  AuthSessionRevocationRepository
	hasher       sharedhash.Hasher
	tokenManager sharedjwt.TokenManager
	uidGenerator shareduid.UIDGenerator

	dummyOnce sync.Once
	dummyHash string
}

func NewPasswordIdentityProvider(
	operators AuthOperatorRepository,
	revocations AuthSessionRevocationRepository,
	hasher sharedhash.Hasher,
	tokenManager sharedjwt.TokenManager,
	uidGenerator shareduid.UIDGenerator,
) *PasswordIdentityProvider {
	return &PasswordIdentityProvider{
		operators:    operators,
		revocations:  revocations,
		hasher:       hasher,
		tokenManager: tokenManager,
		uidGenerator: uidGenerator,
	}
}

func (p *PasswordIdentityProvider) compareUnknownOperator(ctx context.Context, password string) {
	p.dummyOnce.Do(func() {
		if hashed, err := p.hasher.Hash(ctx, unknownOperatorPassword); err == nil {
			p.dummyHash = hashed
		}
	})
	_ = p.hasher.Compare(ctx, p.dummyHash, password)
}

// Authenticate returns a new session for the operator. Rejected credentials
// come back as *vo.AuthenticationError.
func (p *PasswordIdentityProvider) Authenticate(ctx context.Context, email, password string) (domain.Identity, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))
	if normalizedEmail == "" || strings.TrimSpace(password) == "" {
		return domain.Identity{}, vo.NewAuthenticationError(vo.ErrInvalidCredentials)
	}

	operator, err := p.operators.GetOperatorByEmail(ctx, normalizedEmail)
	if err != nil {
		if errors.Is(err, vo.ErrInvalidCredentials) {
			p.compareUnknownOperator(ctx, password)
			return domain.Identity{}, vo.NewAuthenticationError(err)
		}
		return domain.Identity{}, err
	}

	if err := p.hasher.Compare(ctx, operator.PasswordHash, password); err != nil {
		if errors.Is(err, sharedhash.ErrMismatch) {
			return domain.Identity{}, vo.NewAuthenticationError(vo.ErrInvalidCredentials)
		}
		return domain.Identity{}, fmt.Errorf("service: failed to verify password: %w", err)
	}

	if operator.Status != domain.OperatorStatusActive {
		return domain.Identity{}, vo.NewAuthenticationError(vo.ErrOperatorDisabled)
	}

	sessionID, err := p.uidGenerator.Generate(ctx)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("service: failed to generate session id: %w", err)
	}

	token, err := p.tokenManager.Sign(ctx, sharedjwt.Claims{Subject: operator.ID, ID: sessionID})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("service: failed to issue token: %w", err)
	}

	// The signer fills in expiry from its own TTL; read it back from the token.
	claims, err := p.tokenManager.Verify(ctx, token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("service: failed to read issued token: %w", err)
	}

	return domain.Identity{
		OperatorID:  operator.ID,
		Email:       operator.Email,
		SessionID:   sessionID,
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}

// Revoke ends the session so its token is refused from now on.
func (p *PasswordIdentityProvider) Revoke(ctx context.Context, identity domain.Identity) error {
	until := identity.ExpiresAt
	if until.IsZero() {
		until = time.Now().Add(defaultRevocationWindow)
	}

	if err := p.revocations.RevokeSession(ctx, identity.SessionID, until); err != nil {
		return fmt.Errorf("service: failed to revoke session: %w", err)
	}

	return nil
}
