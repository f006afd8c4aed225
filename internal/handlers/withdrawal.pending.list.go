package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/withdraw-review/internal/domain/vo"
	"github.com/joshuarp/withdraw-review/internal/middlewares"
)

type WithdrawalPendingService interface {
	ListPendingWithdrawals(ctx context.Context) ([]vo.PendingWithdrawal, error)
}

type WithdrawalPendingListHandler struct {
	service WithdrawalPendingService
	logger  *slog.Logger
}

func NewWithdrawalPendingListHandler(service WithdrawalPendingService, logger *slog.Logger) *WithdrawalPendingListHandler {
	return &WithdrawalPendingListHandler{service: service, logger: logger}
}

func (h *WithdrawalPendingListHandler) Register(router fiber.Router) {
	router.Get("/withdrawals/pending", h.Handle)
}

func (h *WithdrawalPendingListHandler) Handle(c fiber.Ctx) error {
	pending, err := h.service.ListPendingWithdrawals(c.Context())
	if err != nil {
		h.logger.Error("failed to list pending withdrawals",
			"operator_id", middlewares.OperatorIDFromContext(c),
			"error", err,
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"pending": pending})
}
