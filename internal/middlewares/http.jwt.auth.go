package middlewares

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	sharedjwt "github.com/joshuarp/withdraw-review/internal/shared/jwt"
)

const (
	LocalOperatorID = "operator_id"
	LocalJWTClaims  = "jwt_claims"
)

// SessionRevocationChecker reports sessions that were signed out before
// their token expired.
type SessionRevocationChecker interface {
	IsSessionRevoked(ctx context.Context, sessionID string) (bool, error)
}

// NewHTTPJWTMiddleware admits requests carrying a valid, not signed out
// bearer token and exposes its claims through the fiber locals. Sign-in is
// the only route it lets through unauthenticated.
func NewHTTPJWTMiddleware(tokenManager sharedjwt.TokenManager, revocations SessionRevocationChecker) fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Method() == fiber.MethodPost && strings.HasSuffix(c.Path(), "/auth/login") {
			return c.Next()
		}

		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c, "missing or invalid authorization header")
		}

		claims, err := tokenManager.Verify(c.Context(), token)
		if err != nil {
			return unauthorized(c, "invalid token")
		}

		if revocations != nil {
			revoked, err := revocations.IsSessionRevoked(c.Context(), claims.ID)
			switch {
			case err != nil:
				return abortJSON(c, fiber.StatusInternalServerError, "internal server error")
			case revoked:
				return unauthorized(c, "session has been signed out")
			}
		}

		c.Locals(LocalOperatorID, claims.Subject)
		c.Locals(LocalJWTClaims, claims)
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="withdraw-review"`)
	return abortJSON(c, fiber.StatusUnauthorized, message)
}

func OperatorIDFromContext(c fiber.Ctx) string {
	operatorID, _ := c.Locals(LocalOperatorID).(string)
	return operatorID
}

func ClaimsFromContext(c fiber.Ctx) *sharedjwt.Claims {
	claims, _ := c.Locals(LocalJWTClaims).(*sharedjwt.Claims)
	return claims
}
