package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrIncompleteClaims is returned by Verify for a token without a subject or
// session id: such a token could not be tied to an operator or revoked.
var ErrIncompleteClaims = errors.New("jwt: token is missing subject or session id")

// Strategy defines which signing algorithm family to use.
type Strategy string

const (
	StrategyHMAC Strategy = "hmac"
)

// Options configures the token manager.
type Options struct {
	// Strategy selects the signing algorithm family.
	Strategy Strategy

	// Secret is the shared key for HMAC-based strategies.
	// Must be at least 32 bytes.
	Secret []byte

	// Algorithm within the strategy. HMAC: "HS256" (default), "HS384", "HS512".
	Algorithm string

	// Issuer sets the default "iss" claim on generated tokens.
	Issuer string

	// Audience sets the default "aud" claim on generated tokens.
	Audience []string

	// TTL determines the "exp" claim. Zero means tokens do not expire.
	TTL time.Duration

	// Leeway tolerates clock skew when checking exp, nbf and iat.
	Leeway time.Duration
}

// Claims are the registered claims of an operator session token.
// ID carries the session id used for revocation.
type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	ExpiresAt time.Time
	IssuedAt  time.Time
	NotBefore time.Time
	ID        string
}

// Signer creates signed JWT tokens.
type Signer interface {
	// Sign creates a signed JWT from the given claims. Zero fields are filled
	// from Options; IssuedAt defaults to time.Now().
	Sign(ctx context.Context, claims Claims) (string, error)
}

// Verifier validates and parses JWT tokens.
type Verifier interface {
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// TokenManager combines signing and verification. Implementations must be
// safe for concurrent use.
type TokenManager interface {
	Signer
	Verifier
}

// New creates a TokenManager based on the provided options.
func New(opts Options) (TokenManager, error) {
	switch opts.Strategy {
	case StrategyHMAC:
		return NewHMAC(opts)
	default:
		return nil, fmt.Errorf("jwt: unknown strategy %q", opts.Strategy)
	}
}
