package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v3"
	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/withdraw-review/internal/shared/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

func registerLifecycle(
	lifecycle fx.Lifecycle,
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	dbs lifecycleDatabasesIn,
) {
	port := cfg.GetInt("server.port")
	if port == 0 {
		port = 8080
	}
	address := fmt.Sprintf(":%d", port)
	var serveErrCh chan error

	lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listener, err := net.Listen("tcp", address)
			if err != nil {
				return fmt.Errorf("app: failed to bind server address %s: %w", address, err)
			}

			serveErrCh = make(chan error, 1)
			go func() {
				err := app.Listener(listener)
				if err != nil && !errors.Is(err, net.ErrClosed) {
					logger.Error("fiber server stopped unexpectedly", "error", err)
				}
				serveErrCh <- err
			}()

			cfg.WatchChanges()
			logger.Info("fiber server started", "address", address, "bin", dbs.Bin, "config_source", cfg.Source())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cfg.StopWatching()

			var shutdownErrors []error
			if err := app.ShutdownWithContext(ctx); err != nil {
				shutdownErrors = append(shutdownErrors, err)
			}

			if serveErrCh != nil {
				select {
				case err := <-serveErrCh:
					if err != nil && !errors.Is(err, net.ErrClosed) {
						shutdownErrors = append(shutdownErrors, err)
					}
				case <-ctx.Done():
					shutdownErrors = append(shutdownErrors, ctx.Err())
				}
			}

			shutdownErrors = append(shutdownErrors, dbs.close()...)

			if len(shutdownErrors) > 0 {
				return errors.Join(shutdownErrors...)
			}

			logger.Info("fiber server shutdown completed")
			return nil
		},
	})
}

type lifecycleDatabasesIn struct {
	fx.In

	Bin      string        `name:"bin"`
	AuthDB   *sqlx.DB      `name:"db_auth" optional:"true"`
	ReviewDB *sqlx.DB      `name:"db_review" optional:"true"`
	Redis    *redis.Client `optional:"true"`
}

// close releases the connections this binary opened. A pool injected under
// both names is closed once.
func (dbs lifecycleDatabasesIn) close() []error {
	var errs []error
	closed := make(map[*sqlx.DB]struct{}, 2)
	for _, db := range []struct {
		name string
		db   *sqlx.DB
	}{
		{name: "auth", db: dbs.AuthDB},
		{name: "review", db: dbs.ReviewDB},
	} {
		if db.db == nil {
			continue
		}
		if _, done := closed[db.db]; done {
			continue
		}
		closed[db.db] = struct{}{}
		if err := db.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("app: failed to close %s database: %w", db.name, err))
		}
	}

	if dbs.Redis != nil {
		if err := dbs.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("app: failed to close redis: %w", err))
		}
	}

	return errs
}
