package app

import (
	"github.com/joshuarp/withdraw-review/internal/handlers"
	"github.com/joshuarp/withdraw-review/internal/repository"
	"github.com/joshuarp/withdraw-review/internal/services"
	"go.uber.org/fx"
)

func AuthModule() fx.Option {
	return fx.Module("auth",
		fx.Provide(
			fx.Annotate(
				provideLoginRateLimiter,
				fx.ResultTags(`name:"login_rate_limiter"`),
			),
			fx.Annotate(
				repository.NewAuthOperatorRepository,
				fx.ParamTags(`name:"db_auth"`),
				fx.As(new(services.AuthOperatorRepository)),
			),
			fx.Annotate(
				repository.NewAuthAdminRoleRepository,
				fx.ParamTags(`name:"db_auth"`),
				fx.As(new(services.AdminRoleRepository)),
			),
			fx.Annotate(
				services.NewPasswordIdentityProvider,
				fx.As(new(services.IdentityProvider)),
			),
			fx.Annotate(
				services.NewSessionGateService,
				fx.As(
					new(handlers.AuthSignInService),
					new(handlers.AuthSignOutService),
				),
			),
			handlers.NewAuthSignInHandler,
			handlers.NewAuthSignOutHandler,
		),
		fx.Invoke(registerAuthRoutes),
	)
}
