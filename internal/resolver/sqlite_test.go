package resolver_test

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"

	"ProviderAPI/internal/db"
	"ProviderAPI/internal/fixtures"
	"ProviderAPI/internal/model"
	"ProviderAPI/internal/resolver"

	"github.com/stretchr/testify/require"
)

// openFixtureStore creates a migrated SQLite database in a temp dir and loads ds into it.
// A nil ds loads the embedded sample directory.
func openFixtureStore(t *testing.T, ds *fixtures.Dataset) *db.SQLite {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "providers.db")
	store, err := db.OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, db.Migrate(model.SQLite, path, db.Up))

	if ds == nil {
		ds, err = fixtures.Load()
		require.NoError(t, err)
	}
	exec := func(ctx context.Context, sql string, args ...any) error {
		_, err := store.DB.ExecContext(ctx, sql, args...)
		return err
	}
	require.NoError(t, fixtures.Insert(ctx, model.SQLite, exec, ds))
	return store
}

func newFixtureService(t *testing.T, ds *fixtures.Dataset, opts resolver.Options) *resolver.Service {
	t.Helper()
	return resolver.New(openFixtureStore(t, ds), opts)
}

func npisOf(providers []model.Provider) []string {
	out := make([]string, 0, len(providers))
	for _, p := range providers {
		out = append(out, p.NPI)
	}
	return out
}

// countingStore counts every statement issued through it, including those
// run inside a read snapshot.
type countingStore struct {
	db.Store
	n atomic.Int64
}

func (s *countingStore) Query(ctx context.Context, sql string, args ...any) (db.Rows, error) {
	s.n.Add(1)
	return s.Store.Query(ctx, sql, args...)
}

func (s *countingStore) ReadSnapshot(ctx context.Context, fn func(q db.Querier) error) error {
	return s.Store.ReadSnapshot(ctx, func(q db.Querier) error {
		return fn(countingQuerier{Querier: q, n: &s.n})
	})
}

func (s *countingStore) count() int64 { return s.n.Load() }

func (s *countingStore) reset() { s.n.Store(0) }

type countingQuerier struct {
	db.Querier
	n *atomic.Int64
}

func (q countingQuerier) Query(ctx context.Context, sql string, args ...any) (db.Rows, error) {
	q.n.Add(1)
	return q.Querier.Query(ctx, sql, args...)
}
