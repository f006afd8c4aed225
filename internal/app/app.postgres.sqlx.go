package app

import (
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/withdraw-review/internal/shared/config"
	"github.com/joshuarp/withdraw-review/internal/shared/migration"
	"go.uber.org/fx"
)

type dbProviderIn struct {
	fx.In

	Config config.ConfigProvider
	Bin    string `name:"bin"`
}

func provideAuthPostgresSQLX(in dbProviderIn) (*sqlx.DB, error) {
	return providePostgresSQLXForModule(in.Config, in.Bin, migration.TargetAuth)
}

func provideReviewPostgresSQLX(in dbProviderIn) (*sqlx.DB, error) {
	return providePostgresSQLXForModule(in.Config, in.Bin, migration.TargetReview)
}

func providePostgresSQLXForModule(cfg config.ConfigProvider, bin string, target migration.Target) (*sqlx.DB, error) {
	module := string(target)
	dsn := postgresDSN(cfg, module, !isSingleBinaryBin(bin))

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db(%s): failed to open postgres connection: %w", module, err)
	}
	configurePool(db, cfg)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db(%s): failed to ping postgres: %w", module, err)
	}

	if cfg.GetBool("database.auto_migrate") {
		if err := migration.Up(dsn, target); err != nil {
			db.Close()
			return nil, fmt.Errorf("db(%s): %w", module, err)
		}
	}

	return db, nil
}

func postgresDSN(cfg config.ConfigProvider, module string, useModuleConfig bool) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		moduleDBString(cfg, module, "host", useModuleConfig),
		moduleDBInt(cfg, module, "port", useModuleConfig),
		moduleDBString(cfg, module, "user", useModuleConfig),
		moduleDBString(cfg, module, "password", useModuleConfig),
		moduleDBString(cfg, module, "name", useModuleConfig),
		moduleDBString(cfg, module, "ssl_mode", useModuleConfig),
	)
}

func moduleDBString(cfg config.ConfigProvider, module, key string, useModuleConfig bool) string {
	return cfg.GetString(moduleDBKey(cfg, module, key, useModuleConfig))
}

func moduleDBInt(cfg config.ConfigProvider, module, key string, useModuleConfig bool) int {
	return cfg.GetInt(moduleDBKey(cfg, module, key, useModuleConfig))
}

// moduleDBKey picks the first key that is set, most specific first:
// database.<module>.<key>, its DATABASE_<MODULE>_<KEY> env form, then the
// shared database.<key> and DATABASE_<KEY>. Module keys are skipped when
// every module shares one database.
func moduleDBKey(cfg config.ConfigProvider, module, key string, useModuleConfig bool) string {
	var candidates []string
	if useModuleConfig {
		candidates = append(candidates, "database."+module+"."+key, moduleDBEnvKey(module, key))
	}
	candidates = append(candidates, "database."+key)

	for _, candidate := range candidates {
		if cfg.IsSet(candidate) {
			return candidate
		}
	}
	return globalDBEnvKey(key)
}

// configurePool applies database.max_open_conns, max_idle_conns and
// conn_max_lifetime. Unset values keep database/sql defaults.
func configurePool(db *sqlx.DB, cfg config.ConfigProvider) {
	if n := cfg.GetInt("database.max_open_conns"); n > 0 {
		db.SetMaxOpenConns(n)
	}
	if n := cfg.GetInt("database.max_idle_conns"); n > 0 {
		db.SetMaxIdleConns(n)
	}
	if d := cfg.GetDuration("database.conn_max_lifetime"); d > 0 {
		db.SetConnMaxLifetime(d)
	}
}

func isSingleBinaryBin(bin string) bool {
	normalized := strings.TrimSpace(strings.ToLower(bin))
	return normalized == "" || normalized == "all"
}

func moduleDBEnvKey(module, key string) string {
	normalizedKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return fmt.Sprintf("DATABASE_%s_%s", strings.ToUpper(module), normalizedKey)
}

func globalDBEnvKey(key string) string {
	normalizedKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return fmt.Sprintf("DATABASE_%s", normalizedKey)
}
