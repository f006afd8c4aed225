package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/withdraw-review/internal/domain/vo"
	"github.com/joshuarp/withdraw-review/internal/middlewares"
)

type WithdrawalRejectionService interface {
	Reject(ctx context.Context, accountID string, index int, confirmed bool) (vo.ReviewResult, error)
}

type WithdrawalRejectionHandler struct {
	service WithdrawalRejectionService
	logger  *slog.Logger
}

type rejectionRequest struct {
	Confirmed bool `json:"confirmed"`
}

func NewWithdrawalRejectionHandler(service WithdrawalRejectionService, logger *slog.Logger) *WithdrawalRejectionHandler {
	return &WithdrawalRejectionHandler{service: service, logger: logger}
}

func (h *WithdrawalRejectionHandler) Register(router fiber.Router, decision ReviewDecisionMiddleware) {
	router.Post("/withdrawals/:account_id/:index/rejection", orNext(decision.RateLimit), orNext(decision.Idempotency), h.Handle)
}

func (h *WithdrawalRejectionHandler) Handle(c fiber.Ctx) error {
	operatorID := middlewares.OperatorIDFromContext(c)
	if operatorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authenticated operator"})
	}

	index, ok := parseEntryIndex(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid withdrawal index"})
	}

	var requestBody rejectionRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	accountID := c.Params("account_id")
	result, err := h.service.Reject(c.Context(), accountID, index, requestBody.Confirmed)
	if err != nil {
		return writeReviewError(c, h.logger, "failed to reject withdrawal", err,
			"operator_id", operatorID,
			"account_id", accountID,
			"index", index,
		)
	}

	h.logger.Info("withdrawal rejected",
		"operator_id", operatorID,
		"account_id", accountID,
		"index", index,
		"applied", result.Applied,
	)

	return c.Status(fiber.StatusOK).JSON(result)
}
