package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/withdraw-review/internal/domain"
	"github.com/joshuarp/withdraw-review/internal/domain/vo"
)

type AuthOperatorRepository struct {
	db *sqlx.DB
}

type operatorRow struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Status       string `db:"status"`
}

func NewAuthOperatorRepository(db *sqlx.DB) *AuthOperatorRepository {
	return &AuthOperatorRepository{db: db}
}

func (r *AuthOperatorRepository) GetOperatorByEmail(ctx context.Context, email string) (domain.Operator, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))
	if normalizedEmail == "" {
		return domain.Operator{}, vo.ErrInvalidCredentials
	}

	const query = `
		SELECT id::text AS id, email, password_hash, status
		FROM operators
		WHERE lower(email) = $1
		LIMIT 1
	`

	var row operatorRow
	if err := r.db.GetContext(ctx, &row, query, normalizedEmail); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Operator{}, vo.ErrInvalidCredentials
		}
		return domain.Operator{}, fmt.Errorf("repository: get operator by email failed: %w", err)
	}

	return domain.Operator{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Status:       row.Status,
	}, nil
}
