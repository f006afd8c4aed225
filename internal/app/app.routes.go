package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/withdraw-review/internal/handlers"
	"github.com/joshuarp/withdraw-review/internal/middlewares"
	"github.com/joshuarp/withdraw-review/internal/shared/config"
	sharedidempotency "github.com/joshuarp/withdraw-review/internal/shared/idempotency"
	sharedjwt "github.com/joshuarp/withdraw-review/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/withdraw-review/internal/shared/ratelimit"
	"go.uber.org/fx"
)

type routerGroupsOut struct {
	fx.Out
	Public    fiber.Router `name:"api_public"`
	Protected fiber.Router `name:"api_protected"`
}

func provideRouterGroups(
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	tokenManager sharedjwt.TokenManager,
	revocations middlewares.SessionRevocationChecker,
) routerGroupsOut {
	app.Use(middlewares.NewHTTPRecoveryMiddleware(logger))
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware(cfg.GetStringSlice("server.cors.allow_origins")))
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	protected := api.Group("", middlewares.NewHTTPJWTMiddleware(tokenManager, revocations))

	return routerGroupsOut{
		Public:    api,
		Protected: protected,
	}
}

type authRoutesIn struct {
	fx.In
	Public         fiber.Router            `name:"api_public"`
	Protected      fiber.Router            `name:"api_protected"`
	RateLimiter    sharedratelimit.Limiter `name:"login_rate_limiter"`
	Logger         *slog.Logger
	SignInHandler  *handlers.AuthSignInHandler
	SignOutHandler *handlers.AuthSignOutHandler
}

func registerAuthRoutes(in authRoutesIn) {
	rateLimitMiddleware := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Limiter:        in.RateLimiter,
		Logger:         in.Logger,
		KeyExtractor:   middlewares.PerIPKeyExtractor("login"),
		ResetOnSuccess: true,
	})

	in.SignInHandler.Register(in.Public, rateLimitMiddleware)
	in.SignOutHandler.Register(in.Protected)
}

type reviewRoutesIn struct {
	fx.In
	Protected        fiber.Router            `name:"api_protected"`
	IdempotencyStore sharedidempotency.Store `name:"review_idempotency_store"`
	RateLimiter      sharedratelimit.Limiter `name:"review_rate_limiter"`
	Logger           *slog.Logger
	PendingHandler   *handlers.WithdrawalPendingListHandler
	ApprovalHandler  *handlers.WithdrawalApprovalHandler
	RejectionHandler *handlers.WithdrawalRejectionHandler
}

func registerReviewRoutes(in reviewRoutesIn) {
	decision := handlers.ReviewDecisionMiddleware{
		RateLimit: middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
			Limiter:      in.RateLimiter,
			Logger:       in.Logger,
			KeyExtractor: middlewares.PerOperatorKeyExtractor("review"),
		}),
		Idempotency: middlewares.NewHTTPReviewIdempotencyMiddleware(in.IdempotencyStore, in.Logger),
	}

	in.PendingHandler.Register(in.Protected)
	in.ApprovalHandler.Register(in.Protected, decision)
	in.RejectionHandler.Register(in.Protected, decision)
}
