package hash

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxBcryptInput is the number of password bytes bcrypt looks at.
const maxBcryptInput = 72

var _ Hasher = (*bcryptHasher)(nil)

type bcryptHasher struct {
	cost int
}

// NewBcrypt returns a bcrypt Hasher. A zero cost means bcrypt.DefaultCost.
func NewBcrypt(cost int) (Hasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("hash: bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(_ context.Context, plaintext string) (string, error) {
	if len(plaintext) > maxBcryptInput {
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash: bcrypt hashing failed: %w", err)
	}
	return string(hashed), nil
}

// Compare treats an operator without a stored hash as a mismatch, so such
// an account can never sign in.
func (h *bcryptHasher) Compare(_ context.Context, hashed, plaintext string) error {
	if hashed == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("hash: bcrypt comparison failed: %w", err)
}
