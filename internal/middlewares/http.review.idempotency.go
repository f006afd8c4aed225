package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	sharedidempotency "github.com/joshuarp/withdraw-review/internal/shared/idempotency"
)

const IdempotencyKeyHeader = "X-Idempotency-Key"

// NewHTTPReviewIdempotencyMiddleware replays the stored response of a review
// decision sent again with the same X-Idempotency-Key. Requests without the
// header are handled normally. Server errors are not stored: the key is
// released so the decision can be retried.
func NewHTTPReviewIdempotencyMiddleware(store sharedidempotency.Store, logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		key := strings.TrimSpace(c.Get(IdempotencyKeyHeader))
		if key == "" {
			return c.Next()
		}
		if store == nil {
			return abortJSON(c, fiber.StatusInternalServerError, "idempotency store is not available")
		}

		operatorID := strings.TrimSpace(OperatorIDFromContext(c))
		if operatorID == "" {
			return abortJSON(c, fiber.StatusUnauthorized, "missing authenticated operator")
		}

		request := sharedidempotency.Request{
			Scope:       "review:" + operatorID,
			Key:         key,
			RequestHash: reviewRequestHash(c.Method(), c.Path(), operatorID, c.BodyRaw()),
		}

		decision, err := store.Acquire(c.Context(), request)
		if err != nil {
			return abortJSON(c, fiber.StatusInternalServerError, "failed to acquire idempotency key")
		}

		switch decision.Type {
		case sharedidempotency.DecisionAcquired:
			return runAndRecord(c, store, logger, request)
		case sharedidempotency.DecisionReplay:
			return replay(c, decision)
		case sharedidempotency.DecisionInProgress:
			return abortJSON(c, fiber.StatusConflict, "request is already in progress")
		case sharedidempotency.DecisionConflict:
			return abortJSON(c, fiber.StatusConflict, "idempotency key reused with different payload")
		default:
			return abortJSON(c, fiber.StatusInternalServerError, "invalid idempotency state")
		}
	}
}

func runAndRecord(c fiber.Ctx, store sharedidempotency.Store, logger *slog.Logger, request sharedidempotency.Request) error {
	handlerErr := c.Next()

	status := c.Response().StatusCode()
	if handlerErr != nil || status >= fiber.StatusInternalServerError {
		// A key left in progress blocks retries until its lock expires.
		if err := store.Release(c.Context(), request); err != nil {
			logger.Warn("idempotency release failed", "error", err, "scope", request.Scope, "key", request.Key)
		}
		return handlerErr
	}

	response := sharedidempotency.StoredResponse{
		StatusCode:  status,
		Body:        append([]byte(nil), c.Response().Body()...),
		ContentType: string(c.Response().Header.ContentType()),
	}
	if err := store.Complete(c.Context(), request, response); err != nil {
		return abortJSON(c, fiber.StatusInternalServerError, "failed to persist idempotency response")
	}
	return nil
}

func replay(c fiber.Ctx, decision sharedidempotency.Decision) error {
	if decision.ContentType != "" {
		c.Set(fiber.HeaderContentType, decision.ContentType)
	}
	status := decision.StatusCode
	if status <= 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).Send(decision.Body)
}

func abortJSON(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// reviewRequestHash fingerprints a decision so a reused key with another
// payload is detected. Fields are newline separated.
func reviewRequestHash(method, path, operatorID string, body []byte) string {
	fields := []string{
		strings.ToUpper(strings.TrimSpace(method)),
		strings.TrimSpace(path),
		strings.TrimSpace(operatorID),
	}

	sum := sha256.New()
	for _, field := range fields {
		sum.Write([]byte(field))
		sum.Write([]byte{'\n'})
	}
	sum.Write(body)
	return hex.EncodeToString(sum.Sum(nil))
}
