package hash

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNew_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		expectErr string
	}{
		{name: "bcrypt default cost", opts: Options{Strategy: StrategyBcrypt}},
		{name: "empty strategy falls back to bcrypt", opts: Options{Cost: bcrypt.MinCost}},
		{name: "cost too high", opts: Options{Strategy: StrategyBcrypt, Cost: bcrypt.MaxCost + 1}, expectErr: "out of range"},
		{name: "unknown strategy", opts: Options{Strategy: "argon2"}, expectErr: "unknown strategy"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hasher, err := New(tc.opts)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.expectErr)
				assert.Nil(t, hasher)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, hasher)
		})
	}
}

func TestBcryptCompare_TableDriven(t *testing.T) {
	ctx := context.Background()
	hasher, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	hashed, err := hasher.Hash(ctx, "operator-secret")
	require.NoError(t, err)

	tests := []struct {
		name      string
		hashed    string
		plaintext string
		assertion func(error)
	}{
		{
			name:      "match",
			hashed:    hashed,
			plaintext: "operator-secret",
			assertion: func(err error) { assert.NoError(t, err) },
		},
		{
			name:      "mismatch",
			hashed:    hashed,
			plaintext: "wrong",
			assertion: func(err error) { assert.ErrorIs(t, err, ErrMismatch) },
		},
		{
			name:      "operator without stored hash",
			hashed:    "",
			plaintext: "",
			assertion: func(err error) { assert.ErrorIs(t, err, ErrMismatch) },
		},
		{
			name:      "corrupted hash",
			hashed:    "not-a-bcrypt-hash",
			plaintext: "operator-secret",
			assertion: func(err error) {
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrMismatch)
				assert.ErrorContains(t, err, "bcrypt comparison failed")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.assertion(hasher.Compare(ctx, tc.hashed, tc.plaintext))
		})
	}
}

func TestBcryptHash_RejectsTruncatedInput(t *testing.T) {
	hasher, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = hasher.Hash(context.Background(), strings.Repeat("p", 73))
	assert.ErrorIs(t, err, ErrTooLong)

	_, err = hasher.Hash(context.Background(), strings.Repeat("p", 72))
	assert.NoError(t, err)
}
