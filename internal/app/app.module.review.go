package app

import (
	"github.com/joshuarp/withdraw-review/internal/handlers"
	"github.com/joshuarp/withdraw-review/internal/repository"
	"github.com/joshuarp/withdraw-review/internal/services"
	"github.com/joshuarp/withdraw-review/internal/shared/config"
	sharedidempotency "github.com/joshuarp/withdraw-review/internal/shared/idempotency"
	"go.uber.org/fx"
)

func ReviewModule() fx.Option {
	return fx.Module("review",
		fx.Provide(
			fx.Annotate(
				provideReviewRateLimiter,
				fx.ResultTags(`name:"review_rate_limiter"`),
			),
			fx.Annotate(
				sharedidempotency.NewSQLXStore,
				fx.ParamTags(`name:"db_review"`),
				fx.ResultTags(`name:"review_idempotency_store"`),
				fx.As(new(sharedidempotency.Store)),
			),
			fx.Annotate(
				repository.NewWithdrawalListAccountsRepository,
				fx.ParamTags(`name:"db_review"`),
				fx.As(new(services.WithdrawalAccountsRepository)),
			),
			fx.Annotate(
				repository.NewWithdrawalUpdateStatusRepository,
				fx.ParamTags(`name:"db_review"`),
				fx.As(new(services.WithdrawalStatusRepository)),
			),
			fx.Annotate(
				repository.NewReviewSelectionRedisRepository,
				fx.As(new(services.ReviewSelectionRepository)),
			),
			fx.Annotate(
				services.NewWithdrawalStoreService,
				fx.As(
					new(services.WithdrawalStore),
					new(handlers.WithdrawalPendingService),
				),
			),
			provideReviewWorkflowConfig,
			fx.Annotate(
				services.NewReviewWorkflowService,
				fx.As(
					new(handlers.WithdrawalApprovalService),
					new(handlers.WithdrawalRejectionService),
				),
			),
			handlers.NewWithdrawalPendingListHandler,
			handlers.NewWithdrawalApprovalHandler,
			handlers.NewWithdrawalRejectionHandler,
		),
		fx.Invoke(registerReviewRoutes),
	)
}

func provideReviewWorkflowConfig(cfg config.ConfigProvider) services.ReviewWorkflowConfig {
	selectionTTL := cfg.GetDuration("review.selection_ttl")
	if selectionTTL <= 0 {
		selectionTTL = services.DefaultSelectionTTL
	}

	return services.ReviewWorkflowConfig{SelectionTTL: selectionTTL}
}

