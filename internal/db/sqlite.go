package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"ProviderAPI/internal/model"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLite is a file-backed Store for local development and tests.
type SQLite struct {
	DB   *sql.DB
	path string
}

// SQLiteDSN adds the pragmas every connection in the pool needs.
func SQLiteDSN(path string) string {
	return path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &SQLite{DB: db, path: path}, nil
}

func (s *SQLite) Dialect() model.Dialect { return model.SQLite }

func (s *SQLite) Path() string { return s.path }

func (s *SQLite) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows}, nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *SQLite) Close() {
	_ = s.DB.Close()
}

// ReadSnapshot pins one connection in a transaction; in WAL mode every read
// inside it sees the same database snapshot.
func (s *SQLite) ReadSnapshot(ctx context.Context, fn func(q Querier) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(sqlTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	_ = r.Rows.Close()
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Dialect() model.Dialect { return model.SQLite }

func (t sqlTx) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows}, nil
}
