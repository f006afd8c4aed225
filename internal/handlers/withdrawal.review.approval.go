package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/withdraw-review/internal/domain/vo"
	"github.com/joshuarp/withdraw-review/internal/middlewares"
)

type WithdrawalApprovalService interface {
	OpenApproval(ctx context.Context, operatorID, accountID string, index int) (vo.ReviewSelection, error)
	CancelApproval(ctx context.Context, operatorID, selectionID string) error
	SubmitApproval(ctx context.Context, operatorID, selectionID, giftCardNumber string) (vo.ReviewResult, error)
}

type WithdrawalApprovalHandler struct {
	service WithdrawalApprovalService
	logger  *slog.Logger
}

type approvalSubmitRequest struct {
	GiftCardNumber string `json:"gift_card_number"`
}

func NewWithdrawalApprovalHandler(service WithdrawalApprovalService, logger *slog.Logger) *WithdrawalApprovalHandler {
	return &WithdrawalApprovalHandler{service: service, logger: logger}
}

func (h *WithdrawalApprovalHandler) Register(router fiber.Router, decision ReviewDecisionMiddleware) {
	router.Post("/withdrawals/:account_id/:index/approval", h.Open)
	router.Delete("/approvals/:selection_id", h.Cancel)
	router.Post("/approvals/:selection_id", orNext(decision.RateLimit), orNext(decision.Idempotency), h.Submit)
}

func (h *WithdrawalApprovalHandler) Open(c fiber.Ctx) error {
	operatorID := middlewares.OperatorIDFromContext(c)
	if operatorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authenticated operator"})
	}

	index, ok := parseEntryIndex(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid withdrawal index"})
	}

	accountID := c.Params("account_id")
	selection, err := h.service.OpenApproval(c.Context(), operatorID, accountID, index)
	if err != nil {
		return writeReviewError(c, h.logger, "failed to open approval", err,
			"operator_id", operatorID,
			"account_id", accountID,
			"index", index,
		)
	}

	return c.Status(fiber.StatusCreated).JSON(selection)
}

func (h *WithdrawalApprovalHandler) Cancel(c fiber.Ctx) error {
	operatorID := middlewares.OperatorIDFromContext(c)
	if operatorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authenticated operator"})
	}

	selectionID := c.Params("selection_id")
	if err := h.service.CancelApproval(c.Context(), operatorID, selectionID); err != nil {
		return writeReviewError(c, h.logger, "failed to cancel approval", err,
			"operator_id", operatorID,
			"selection_id", selectionID,
		)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *WithdrawalApprovalHandler) Submit(c fiber.Ctx) error {
	operatorID := middlewares.OperatorIDFromContext(c)
	if operatorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authenticated operator"})
	}

	var requestBody approvalSubmitRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	selectionID := strings.TrimSpace(c.Params("selection_id"))
	result, err := h.service.SubmitApproval(c.Context(), operatorID, selectionID, requestBody.GiftCardNumber)
	if err != nil {
		return writeReviewError(c, h.logger, "failed to approve withdrawal", err,
			"operator_id", operatorID,
			"selection_id", selectionID,
		)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
