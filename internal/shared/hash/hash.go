package hash

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrMismatch is returned by Compare when the plaintext does not match.
	ErrMismatch = errors.New("hash: plaintext does not match")
	// ErrTooLong is returned by Hash for input bcrypt would silently truncate.
	ErrTooLong = errors.New("hash: plaintext longer than 72 bytes")
)

// Strategy defines which hashing algorithm to use.
type Strategy string

const (
	StrategyBcrypt Strategy = "bcrypt"
)

type Options struct {
	Strategy Strategy
	// Cost is the bcrypt work factor, read from security.bcrypt_cost.
	Cost int
}

// Hasher hashes operator passwords and verifies sign-in attempts.
// Implementations must be safe for concurrent use.
type Hasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	// Compare checks whether the plaintext matches the hashed value.
	// A wrong plaintext yields an error wrapping ErrMismatch; any other
	// error means the stored hash could not be used.
	Compare(ctx context.Context, hashed, plaintext string) error
}

func New(opts Options) (Hasher, error) {
	switch opts.Strategy {
	case StrategyBcrypt, "":
		return NewBcrypt(opts.Cost)
	default:
		return nil, fmt.Errorf("hash: unknown strategy %q", opts.Strategy)
	}
}
