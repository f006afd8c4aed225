// Package migration applies the embedded schema of each service module.
package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed sql
var schemaFS embed.FS

type Target string

const (
	TargetAuth   Target = "auth"
	TargetReview Target = "review"
)

func (t Target) validate() error {
	switch t {
	case TargetAuth, TargetReview:
		return nil
	default:
		return fmt.Errorf("migration: unsupported target %q", string(t))
	}
}

func (t Target) migrationsTable() string {
	return "schema_migrations_" + string(t)
}

// Source returns the embedded migration files of a target.
func Source(target Target) (source.Driver, error) {
	if err := target.validate(); err != nil {
		return nil, err
	}

	sub, err := fs.Sub(schemaFS, "sql")
	if err != nil {
		return nil, fmt.Errorf("migration: failed to open embedded schema: %w", err)
	}

	driver, err := iofs.New(sub, string(target))
	if err != nil {
		return nil, fmt.Errorf("migration(%s): failed to load source: %w", target, err)
	}

	return driver, nil
}

// Up opens a dedicated connection for dsn and applies every pending
// migration of target. Each target keeps its own version table so the auth
// and review schemas can share one database.
func Up(dsn string, target Target) (err error) {
	src, err := Source(target)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("migration(%s): failed to open postgres connection: %w", target, err)
	}

	driver, err := pgx.WithInstance(db, &pgx.Config{MigrationsTable: target.migrationsTable()})
	if err != nil {
		_ = src.Close()
		_ = db.Close()
		return fmt.Errorf("migration(%s): failed to init database driver: %w", target, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return fmt.Errorf("migration(%s): failed to init migrator: %w", target, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration(%s): failed to apply: %w", target, err)
	}

	return nil
}
