package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/withdraw-review/internal/domain"
)

type WithdrawalUpdateStatusRepository struct {
	db *sqlx.DB
}

func NewWithdrawalUpdateStatusRepository(db *sqlx.DB) *WithdrawalUpdateStatusRepository {
	return &WithdrawalUpdateStatusRepository{db: db}
}

// UpdateWithdrawalStatus rewrites the entry at index of one account's
// history while holding the account row lock. It reports false, and writes
// nothing, when the account or the index does not exist.
func (r *WithdrawalUpdateStatusRepository) UpdateWithdrawalStatus(ctx context.Context, accountID string, index int, update domain.StatusUpdate) (bool, error) {
	if index < 0 {
		return false, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("repository: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	const selectQuery = `
		SELECT withdrawal_history
		FROM users
		WHERE id = $1
		FOR UPDATE
	`

	var stored []byte
	if err := tx.GetContext(ctx, &stored, selectQuery, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("repository: failed to load withdrawal history: %w", err)
	}

	history, err := domain.ParseWithdrawalHistory(stored)
	if err != nil {
		return false, fmt.Errorf("repository: account %s: %w", accountID, err)
	}

	updated, applied := history.ApplyStatus(index, update)
	if !applied {
		return false, nil
	}

	payload, err := updated.Encode()
	if err != nil {
		return false, fmt.Errorf("repository: account %s: %w", accountID, err)
	}

	const updateQuery = `
		UPDATE users
		SET withdrawal_history = $2::jsonb
		WHERE id = $1
	`

	if _, err := tx.ExecContext(ctx, updateQuery, accountID, string(payload)); err != nil {
		return false, fmt.Errorf("repository: failed to write withdrawal history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("repository: failed to commit transaction: %w", err)
	}

	return true, nil
}
