package app

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/withdraw-review/internal/middlewares"
	"github.com/joshuarp/withdraw-review/internal/repository"
	"github.com/joshuarp/withdraw-review/internal/services"
	"github.com/joshuarp/withdraw-review/internal/shared/config"
	sharedhash "github.com/joshuarp/withdraw-review/internal/shared/hash"
	sharedjwt "github.com/joshuarp/withdraw-review/internal/shared/jwt"
	sharedlog "github.com/joshuarp/withdraw-review/internal/shared/log"
	shareduid "github.com/joshuarp/withdraw-review/internal/shared/uid"
	"go.uber.org/fx"
)

const (
	configEnvPrefix     = "WITHDRAW_REVIEW"
	defaultDisplayZone  = "Asia/Kolkata"
	defaultLoggingLevel = "info"
)

type configBinIn struct {
	fx.In
	Bin string `name:"bin"`
}

func New(bin string, modules ...fx.Option) *fx.App {
	normalizedBin := strings.TrimSpace(strings.ToLower(bin))
	opts := []fx.Option{
		fx.Supply(
			fx.Annotate(
				normalizedBin,
				fx.ResultTags(`name:"bin"`),
			),
		),
		CoreModule(),
	}
	opts = append(opts, modules...)
	opts = append(opts, fx.Invoke(registerLifecycle))
	return fx.New(opts...)
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			provideConfig,
			sharedlog.NewJSONLogger,
			provideRedisClient,
			fx.Annotate(
				provideAuthPostgresSQLX,
				fx.ResultTags(`name:"db_auth"`),
			),
			fx.Annotate(
				provideReviewPostgresSQLX,
				fx.ResultTags(`name:"db_review"`),
			),
			fx.Annotate(
				repository.NewAuthSessionRevocationRedisRepository,
				fx.As(
					new(middlewares.SessionRevocationChecker),
					new(services.AuthSessionRevocationRepository),
				),
			),
			provideFiberApp,
			providePasswordHasher,
			provideJWTTokenManager,
			provideUIDGenerator,
			provideDisplayLocation,
			provideRouterGroups,
		),
	)
}

func provideConfig(in configBinIn) (config.ConfigProvider, error) {
	bin := strings.TrimSpace(strings.ToLower(in.Bin))

	loadOrder := make([]config.Options, 0, 4)
	if bin == "auth" || bin == "review" {
		loadOrder = append(loadOrder,
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml", bin),
				EnvPath:  fmt.Sprintf(".env.%s", bin),
			},
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml.example", bin),
				EnvPath:  fmt.Sprintf(".env.%s.example", bin),
			},
		)
	}

	loadOrder = append(loadOrder,
		config.Options{
			YAMLPath: "config.yaml",
			EnvPath:  ".env",
		},
		config.Options{
			YAMLPath: "config.yaml.example",
			EnvPath:  ".env.example",
		},
	)

	var lastErr error
	for _, opts := range loadOrder {
		opts.EnvPrefix = configEnvPrefix
		opts.Defaults = map[string]any{
			"logging.level":    defaultLoggingLevel,
			"display.timezone": defaultDisplayZone,
		}

		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func provideFiberApp(cfg config.ConfigProvider) *fiber.App {
	readTimeout := cfg.GetDuration("server.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	writeTimeout := cfg.GetDuration("server.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return fiber.New(fiber.Config{
		AppName:      "withdraw-review",
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

func providePasswordHasher(cfg config.ConfigProvider) (sharedhash.Hasher, error) {
	return sharedhash.New(sharedhash.Options{
		Strategy: sharedhash.StrategyBcrypt,
		Cost:     cfg.GetInt("security.bcrypt_cost"),
	})
}

func provideJWTTokenManager(cfg config.ConfigProvider) (sharedjwt.TokenManager, error) {
	secret := cfg.GetString("security.jwt.secret")
	if secret == "" {
		secret = cfg.GetString("jwt.secret")
	}
	if secret == "" {
		secret = "change-me-please-use-strong-secret-in-production"
	}

	if len(secret) < 32 {
		secret = secret + strings.Repeat("x", 32-len(secret))
	}

	ttl := cfg.GetDuration("security.jwt.ttl")
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	tokenManager, err := sharedjwt.New(sharedjwt.Options{
		Strategy:  sharedjwt.StrategyHMAC,
		Secret:    []byte(secret),
		Algorithm: "HS256",
		TTL:       ttl,
		Leeway:    cfg.GetDuration("security.jwt.leeway"),
		Issuer:    cfg.GetString("security.jwt.issuer"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init JWT manager: %w", err)
	}

	return tokenManager, nil
}

func provideUIDGenerator(cfg config.ConfigProvider) (shareduid.UIDGenerator, error) {
	strategy, err := shareduid.ParseStrategy(cfg.GetString("uid.strategy"))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	generator, err := shareduid.New(shareduid.Options{
		Strategy: strategy,
		NodeID:   int64(cfg.GetInt("uid.node_id")),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init uid generator: %w", err)
	}

	return generator, nil
}

// provideDisplayLocation is the zone register dates are rendered in.
func provideDisplayLocation(cfg config.ConfigProvider) (*time.Location, error) {
	zone := strings.TrimSpace(cfg.GetString("display.timezone"))
	if zone == "" {
		zone = defaultDisplayZone
	}

	location, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("app: invalid display timezone %q: %w", zone, err)
	}

	return location, nil
}
