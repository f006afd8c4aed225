package middlewares

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
)

// NewHTTPRequestResponseLogMiddleware writes one "http_request" record per
// request: ERROR for handler errors and 5xx, WARN for 4xx, INFO otherwise.
func NewHTTPRequestResponseLogMiddleware(logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.String("request_id", RequestIDFromContext(c)),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.IP()),
			slog.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}
		if operatorID := OperatorIDFromContext(c); operatorID != "" {
			attrs = append(attrs, slog.String("operator_id", operatorID))
		}

		level := slog.LevelInfo
		switch {
		case err != nil:
			level = slog.LevelError
			attrs = append(attrs, slog.String("error", err.Error()))
		case status >= fiber.StatusInternalServerError:
			level = slog.LevelError
		case status >= fiber.StatusBadRequest:
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.Context(), level, "http_request", attrs...)
		return err
	}
}
