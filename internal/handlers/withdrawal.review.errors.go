package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/withdraw-review/internal/domain/vo"
)

const giftCardRequiredMessage = "Please enter the Gift Card Number!"

// ReviewDecisionMiddleware guards the routes that change a withdrawal.
type ReviewDecisionMiddleware struct {
	RateLimit   fiber.Handler
	Idempotency fiber.Handler
}

func orNext(handler fiber.Handler) fiber.Handler {
	if handler != nil {
		return handler
	}
	return func(c fiber.Ctx) error {
		return c.Next()
	}
}

func parseEntryIndex(c fiber.Ctx) (int, bool) {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, false
	}
	return index, true
}

func writeReviewError(c fiber.Ctx, logger *slog.Logger, message string, err error, attrs ...any) error {
	switch {
	case errors.Is(err, vo.ErrGiftCardRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": giftCardRequiredMessage})
	case errors.Is(err, vo.ErrRejectionNotConfirmed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "rejection must be confirmed"})
	case errors.Is(err, vo.ErrInvalidEntryIndex):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid withdrawal index"})
	case errors.Is(err, vo.ErrSelectionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "approval selection not found or expired"})
	default:
		logger.Error(message, append(attrs, "error", err)...)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
