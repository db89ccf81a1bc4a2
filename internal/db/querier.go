package db

import (
	"context"

	"ProviderAPI/internal/model"
)

// Rows is the cursor shape shared by pgx.Rows and the database/sql adapter.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Querier runs read statements built for its Dialect.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Dialect() model.Dialect
}

// Store is a pooled Querier that can also pin a read-only snapshot.
// The Querier passed to fn is bound to a single connection and must not be used concurrently.
type Store interface {
	Querier
	ReadSnapshot(ctx context.Context, fn func(q Querier) error) error
	Ping(ctx context.Context) error
	Close()
}
