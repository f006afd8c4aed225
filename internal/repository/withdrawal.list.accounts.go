package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/withdraw-review/internal/domain"
)

type WithdrawalListAccountsRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

type userAccountRow struct {
	ID                string         `db:"id"`
	Name              sql.NullString `db:"name"`
	RegisterDate      sql.NullTime   `db:"register_date"`
	WithdrawalHistory []byte         `db:"withdrawal_history"`
}

func NewWithdrawalListAccountsRepository(db *sqlx.DB, logger *slog.Logger) *WithdrawalListAccountsRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &WithdrawalListAccountsRepository{db: db, logger: logger}
}

// ListUserAccounts returns every account in store order. An account whose
// history cannot be decoded is logged and left out.
func (r *WithdrawalListAccountsRepository) ListUserAccounts(ctx context.Context) ([]domain.UserAccount, error) {
	const query = `
		SELECT id, name, register_date, withdrawal_history
		FROM users
		ORDER BY id
	`

	var rows []userAccountRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("repository: list user accounts failed: %w", err)
	}

	accounts := make([]domain.UserAccount, 0, len(rows))
	for _, row := range rows {
		history, err := domain.ParseWithdrawalHistory(row.WithdrawalHistory)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping account with unreadable withdrawal history",
				"account_id", row.ID,
				"error", err,
			)
			continue
		}

		account := domain.UserAccount{
			ID:                row.ID,
			Name:              row.Name.String,
			WithdrawalHistory: history,
		}
		if row.RegisterDate.Valid {
			registerDate := row.RegisterDate.Time
			account.RegisterDate = &registerDate
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}
