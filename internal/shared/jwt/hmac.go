package jwt

import (
	"context"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const minHMACSecretLen = 32

var hmacMethods = map[string]jwtlib.SigningMethod{
	"":      jwtlib.SigningMethodHS256,
	"HS256": jwtlib.SigningMethodHS256,
	"HS384": jwtlib.SigningMethodHS384,
	"HS512": jwtlib.SigningMethodHS512,
}

var _ TokenManager = (*hmacManager)(nil)

type hmacManager struct {
	secret []byte
	method jwtlib.SigningMethod
	opts   Options
	parser *jwtlib.Parser
}

// NewHMAC returns a TokenManager signing with a shared secret of at least
// 32 bytes. Algorithm defaults to HS256.
func NewHMAC(opts Options) (TokenManager, error) {
	switch {
	case len(opts.Secret) == 0:
		return nil, fmt.Errorf("jwt: HMAC secret must not be empty")
	case len(opts.Secret) < minHMACSecretLen:
		return nil, fmt.Errorf("jwt: HMAC secret must be at least %d bytes, got %d", minHMACSecretLen, len(opts.Secret))
	}

	method, ok := hmacMethods[opts.Algorithm]
	if !ok {
		return nil, fmt.Errorf("jwt: unsupported HMAC algorithm %q", opts.Algorithm)
	}

	parserOptions := []jwtlib.ParserOption{jwtlib.WithValidMethods([]string{method.Alg()})}
	if opts.TTL > 0 {
		parserOptions = append(parserOptions, jwtlib.WithExpirationRequired())
	}
	if opts.Issuer != "" {
		parserOptions = append(parserOptions, jwtlib.WithIssuer(opts.Issuer))
	}
	if opts.Leeway > 0 {
		parserOptions = append(parserOptions, jwtlib.WithLeeway(opts.Leeway))
	}

	return &hmacManager{
		secret: opts.Secret,
		method: method,
		opts:   opts,
		parser: jwtlib.NewParser(parserOptions...),
	}, nil
}

func (m *hmacManager) Sign(_ context.Context, claims Claims) (string, error) {
	now := time.Now()

	registered := jwtlib.RegisteredClaims{
		Subject:   claims.Subject,
		ID:        claims.ID,
		Issuer:    claims.Issuer,
		Audience:  jwtlib.ClaimStrings(claims.Audience),
		IssuedAt:  numericDate(claims.IssuedAt, now),
		NotBefore: numericDate(claims.NotBefore, time.Time{}),
	}
	if registered.Issuer == "" {
		registered.Issuer = m.opts.Issuer
	}
	if registered.Audience == nil && m.opts.Audience != nil {
		registered.Audience = jwtlib.ClaimStrings(m.opts.Audience)
	}

	var expiry time.Time
	if m.opts.TTL > 0 {
		expiry = now.Add(m.opts.TTL)
	}
	registered.ExpiresAt = numericDate(claims.ExpiresAt, expiry)

	signed, err := jwtlib.NewWithClaims(m.method, registered).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *hmacManager) Verify(_ context.Context, tokenString string) (*Claims, error) {
	var registered jwtlib.RegisteredClaims
	_, err := m.parser.ParseWithClaims(tokenString, &registered, func(*jwtlib.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt: token validation failed: %w", err)
	}

	if registered.Subject == "" || registered.ID == "" {
		return nil, ErrIncompleteClaims
	}

	return &Claims{
		Subject:   registered.Subject,
		Issuer:    registered.Issuer,
		Audience:  []string(registered.Audience),
		ID:        registered.ID,
		ExpiresAt: timeOf(registered.ExpiresAt),
		IssuedAt:  timeOf(registered.IssuedAt),
		NotBefore: timeOf(registered.NotBefore),
	}, nil
}

// numericDate returns t, or fallback when t is zero. Both zero means the
// claim is omitted.
func numericDate(t, fallback time.Time) *jwtlib.NumericDate {
	if t.IsZero() {
		t = fallback
	}
	if t.IsZero() {
		return nil
	}
	return jwtlib.NewNumericDate(t)
}

func timeOf(d *jwtlib.NumericDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
