package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/withdraw-review/internal/domain"
	"github.com/joshuarp/withdraw-review/internal/middlewares"
)

type AuthSignOutService interface {
	SignOut(ctx context.Context, identity domain.Identity) error
}

type AuthSignOutHandler struct {
	service AuthSignOutService
	logger  *slog.Logger
}

func NewAuthSignOutHandler(service AuthSignOutService, logger *slog.Logger) *AuthSignOutHandler {
	return &AuthSignOutHandler{service: service, logger: logger}
}

func (h *AuthSignOutHandler) Register(router fiber.Router) {
	router.Post("/auth/logout", h.Handle)
}

func (h *AuthSignOutHandler) Handle(c fiber.Ctx) error {
	claims := middlewares.ClaimsFromContext(c)
	if claims == nil || claims.Subject == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated operator",
		})
	}

	identity := domain.Identity{
		OperatorID: claims.Subject,
		SessionID:  claims.ID,
		ExpiresAt:  claims.ExpiresAt,
	}

	if err := h.service.SignOut(c.Context(), identity); err != nil {
		h.logger.Error("failed to sign out", "operator_id", identity.OperatorID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "signed_out"})
}
