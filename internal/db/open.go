package db

import (
	"context"
	"fmt"

	"ProviderAPI/internal/config"
)

// Open connects to the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	case config.DriverPostgres, "":
		return OpenPostgres(ctx, cfg.PostgresDSN, cfg.MaxConns)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
