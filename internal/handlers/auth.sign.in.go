package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/withdraw-review/internal/domain/vo"
)

const notAdminMessage = "You are not an admin!"

type AuthSignInService interface {
	SignIn(ctx context.Context, email, password string) (vo.AuthSession, error)
}

type AuthSignInHandler struct {
	service AuthSignInService
	logger  *slog.Logger
}

type authSignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthSignInHandler(service AuthSignInService, logger *slog.Logger) *AuthSignInHandler {
	return &AuthSignInHandler{service: service, logger: logger}
}

// Register mounts sign-in behind the given rate limit middleware.
func (h *AuthSignInHandler) Register(router fiber.Router, rateLimit fiber.Handler) {
	router.Post("/auth/login", rateLimit, h.Handle)
}

func (h *AuthSignInHandler) Handle(c fiber.Ctx) error {
	var requestBody authSignInRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if strings.TrimSpace(requestBody.Email) == "" || strings.TrimSpace(requestBody.Password) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password are required",
		})
	}

	session, err := h.service.SignIn(c.Context(), requestBody.Email, requestBody.Password)
	if err != nil {
		var authErr *vo.AuthenticationError
		switch {
		case errors.As(err, &authErr):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": authErr.Message})
		case errors.Is(err, vo.ErrNotAdmin):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": notAdminMessage})
		default:
			h.logger.Error("failed to sign in", "email", requestBody.Email, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(session)
}
