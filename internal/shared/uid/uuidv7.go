package uid

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var _ UIDGenerator = uuidv7Generator{}

type uuidv7Generator struct{}

func NewUUIDv7() (UIDGenerator, error) {
	return uuidv7Generator{}, nil
}

// Generate returns a random, time-ordered UUID. Session ids double as the
// JWT jti, so they must not be guessable.
func (uuidv7Generator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("uid: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uid: failed to generate uuid v7: %w", err)
	}
	return id.String(), nil
}
