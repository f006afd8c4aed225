package middlewares

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// NewHTTPCORSMiddleware lets the review dashboard call the API from its own
// origin. An empty list allows any origin.
func NewHTTPCORSMiddleware(allowOrigins []string) fiber.Handler {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	return cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowHeaders:  []string{"Origin, Content-Type, Accept, Authorization, " + IdempotencyKeyHeader},
		AllowMethods:  []string{"GET, POST, DELETE, OPTIONS"},
		ExposeHeaders: []string{RequestIDHeader, "Retry-After"},
	})
}
