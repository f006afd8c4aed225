package middlewares

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// NewHTTPRecoveryMiddleware turns a handler panic into a 500 and logs the
// panic value with the request id.
func NewHTTPRecoveryMiddleware(logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e any) {
			logger.Error("panic recovered",
				"panic", e,
				"request_id", RequestIDFromContext(c),
				"method", c.Method(),
				"path", c.Path(),
			)
		},
	})
}
