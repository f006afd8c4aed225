package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshuarp/withdraw-review/internal/domain"
	"github.com/joshuarp/withdraw-review/internal/domain/vo"
	shareduid "github.com/joshuarp/withdraw-review/internal/shared/uid"
)

const DefaultSelectionTTL = 10 * time.Minute

type ReviewSelectionRepository interface {
	SaveSelection(ctx context.Context, operatorID string, selection vo.ReviewSelection) error
	TakeSelection(ctx context.Context, operatorID, selectionID string) (vo.ReviewSelection, error)
	DiscardSelection(ctx context.Context, operatorID, selectionID string) error
}

type WithdrawalStore interface {
	ListPendingWithdrawals(ctx context.Context) ([]vo.PendingWithdrawal, error)
	UpdateStatus(ctx context.Context, accountID string, index int, status, giftCardNumber string) (bool, error)
}

type ReviewWorkflowConfig struct {
	SelectionTTL time.Duration
}

// ReviewWorkflowService drives approve and reject decisions. An approval is
// two steps: the operator opens a selection, then submits it with a gift
// card code.
type ReviewWorkflowService struct {
	store        WithdrawalStore
	selections   ReviewSelectionRepository
	uidGenerator shareduid.UIDGenerator
	selectionTTL time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

func NewReviewWorkflowService(
	store WithdrawalStore,
	selections ReviewSelectionRepository,
	uidGenerator shareduid.UIDGenerator,
	cfg ReviewWorkflowConfig,
	logger *slog.Logger,
) *ReviewWorkflowService {
	if logger == nil {
		logger = slog.Default()
	}

	selectionTTL := cfg.SelectionTTL
	if selectionTTL <= 0 {
		selectionTTL = DefaultSelectionTTL
	}

	return &ReviewWorkflowService{
		store:        store,
		selections:   selections,
		uidGenerator: uidGenerator,
		selectionTTL: selectionTTL,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *ReviewWorkflowService) OpenApproval(ctx context.Context, operatorID, accountID string, index int) (vo.ReviewSelection, error) {
	if strings.TrimSpace(accountID) == "" || index < 0 {
		return vo.ReviewSelection{}, vo.ErrInvalidEntryIndex
	}

	selectionID, err := s.uidGenerator.Generate(ctx)
	if err != nil {
		return vo.ReviewSelection{}, fmt.Errorf("service: failed to generate selection id: %w", err)
	}

	selection := vo.ReviewSelection{
		ID:        selectionID,
		AccountID: accountID,
		Index:     index,
		ExpiresAt: s.now().Add(s.selectionTTL).UTC(),
	}

	if err := s.selections.SaveSelection(ctx, operatorID, selection); err != nil {
		return vo.ReviewSelection{}, err
	}

	return selection, nil
}

// CancelApproval drops an open selection. Cancelling twice is not an error.
func (s *ReviewWorkflowService) CancelApproval(ctx context.Context, operatorID, selectionID string) error {
	return s.selections.DiscardSelection(ctx, operatorID, selectionID)
}

// SubmitApproval marks the selected entry as paid out with the gift card.
// A missing code is refused before the selection is used, so the operator
// can retry with the same selection.
func (s *ReviewWorkflowService) SubmitApproval(ctx context.Context, operatorID, selectionID, giftCardNumber string) (vo.ReviewResult, error) {
	code := strings.TrimSpace(giftCardNumber)
	if code == "" {
		return vo.ReviewResult{}, vo.ErrGiftCardRequired
	}

	selection, err := s.selections.TakeSelection(ctx, operatorID, selectionID)
	if err != nil {
		return vo.ReviewResult{}, err
	}

	return s.decide(ctx, selection.AccountID, selection.Index, domain.StatusSuccess, code)
}

func (s *ReviewWorkflowService) Reject(ctx context.Context, accountID string, index int, confirmed bool) (vo.ReviewResult, error) {
	if !confirmed {
		return vo.ReviewResult{}, vo.ErrRejectionNotConfirmed
	}

	return s.decide(ctx, accountID, index, domain.StatusRejected, "")
}

func (s *ReviewWorkflowService) decide(ctx context.Context, accountID string, index int, status, giftCardNumber string) (vo.ReviewResult, error) {
	applied, err := s.store.UpdateStatus(ctx, accountID, index, status, giftCardNumber)
	if err != nil {
		return vo.ReviewResult{}, err
	}

	// The decision is already committed; a failed refresh only leaves the
	// pending list empty.
	pending, err := s.store.ListPendingWithdrawals(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "pending withdrawals refresh failed", "error", err, "account_id", accountID, "index", index)
		return vo.ReviewResult{Applied: applied}, nil
	}

	return vo.ReviewResult{Applied: applied, Pending: pending}, nil
}
