package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/joshuarp/withdraw-review/internal/domain"
	"github.com/joshuarp/withdraw-review/internal/domain/vo"
)

type WithdrawalAccountsRepository interface {
	ListUserAccounts(ctx context.Context) ([]domain.UserAccount, error)
}

type WithdrawalStatusRepository interface {
	UpdateWithdrawalStatus(ctx context.Context, accountID string, index int, update domain.StatusUpdate) (bool, error)
}

// WithdrawalStoreService reads pending withdrawals and applies status
// decisions to single history entries.
type WithdrawalStoreService struct {
	accounts WithdrawalAccountsRepository
	statuses WithdrawalStatusRepository
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

func NewWithdrawalStoreService(
	accounts WithdrawalAccountsRepository,
	statuses WithdrawalStatusRepository,
	location *time.Location,
	logger *slog.Logger,
) *WithdrawalStoreService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WithdrawalStoreService{
		accounts: accounts,
		statuses: statuses,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// ListPendingWithdrawals returns every pending entry, in account order and
// then history order, with the position needed to act on it.
func (s *WithdrawalStoreService) ListPendingWithdrawals(ctx context.Context) ([]vo.PendingWithdrawal, error) {
	accounts, err := s.accounts.ListUserAccounts(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list withdrawal accounts", "error", err)
		return nil, err
	}

	pending := make([]vo.PendingWithdrawal, 0)
	for _, account := range accounts {
		registerDate := domain.FormatRegisterDate(account.RegisterDate, s.location)

		for index, entry := range account.WithdrawalHistory.Normalized() {
			if !entry.IsPending() {
				continue
			}

			pending = append(pending, vo.PendingWithdrawal{
				AccountID:      account.ID,
				Index:          index,
				Name:           account.DisplayName(),
				Action:         entry.Action,
				Amount:         entry.Amount,
				Status:         entry.Status,
				Method:         entry.Method,
				MobileNumber:   entry.MobileNumber,
				GiftCardNumber: entry.GiftCardNumber,
				Date:           entry.Date,
				RegisterDate:   registerDate,
			})
		}
	}

	return pending, nil
}

// UpdateStatus sets the status of one entry. It reports false without error
// when the account or index does not exist.
func (s *WithdrawalStoreService) UpdateStatus(ctx context.Context, accountID string, index int, status, giftCardNumber string) (bool, error) {
	if strings.TrimSpace(accountID) == "" {
		return false, nil
	}

	applied, err := s.statuses.UpdateWithdrawalStatus(ctx, accountID, index, domain.StatusUpdate{
		Status:         status,
		GiftCardNumber: giftCardNumber,
		At:             s.now(),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update withdrawal status",
			"account_id", accountID,
			"index", index,
			"status", status,
			"error", err,
		)
		return false, err
	}

	if !applied {
		s.logger.InfoContext(ctx, "withdrawal status update skipped",
			"account_id", accountID,
			"index", index,
		)
	}

	return applied, nil
}
