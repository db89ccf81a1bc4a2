package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ProviderAPI/internal/config"
	"ProviderAPI/internal/db/migrations"
	"ProviderAPI/internal/logger"
	"ProviderAPI/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Direction of a schema migration run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate applies the embedded schema for dialect d to target, which is a
// postgres:// URL for Postgres and a file path for SQLite.
// The service itself never migrates; this backs the migrate command and test setup.
func Migrate(d model.Dialect, target string, dir Direction) error {
	src, err := iofs.New(migrations.FS, d.String())
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	databaseURL := target
	if d == model.SQLite {
		databaseURL = "sqlite://" + target
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("migrate.New: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	switch dir {
	case Down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", dir, err)
	}

	version, dirty, verr := m.Version()
	fields := map[string]any{"dialect": d.String(), "direction": string(dir), "dirty": dirty}
	if verr == nil {
		fields["version"] = version
	}
	logger.Info("migrations_applied", fields)
	return nil
}

// MigrateConfig runs Migrate against the store selected by cfg.
func MigrateConfig(cfg config.DatabaseConfig, dir Direction) error {
	if cfg.Driver == config.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0700); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		return Migrate(model.SQLite, cfg.SQLitePath, dir)
	}
	return Migrate(model.Postgres, cfg.PostgresDSN, dir)
}
