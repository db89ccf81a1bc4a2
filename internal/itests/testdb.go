package itests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"ProviderAPI/internal/db"
	"ProviderAPI/internal/fixtures"
	"ProviderAPI/internal/model"

	"github.com/lib/pq"
)

const testDBName = "providers_test"

// DeriveTestDSN points baseDSN at the throwaway test database and at the
// postgres maintenance database used to create and drop it.
func DeriveTestDSN(baseDSN string) (testDSN, adminDSN string, err error) {
	u, err := url.Parse(baseDSN)
	if err != nil {
		return "", "", fmt.Errorf("parse DSN: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", "", errors.New("only URL DSN supported: postgres://...")
	}
	if host := u.Hostname(); host != "localhost" && host != "127.0.0.1" {
		return "", "", fmt.Errorf("refuse non-local host for tests: %s", host)
	}

	u.Path = "/" + testDBName
	testDSN = u.String()
	u.Path = "/postgres"
	adminDSN = u.String()
	return testDSN, adminDSN, nil
}

func CreateTestDatabase(adminDSN, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := sql.Open("postgres", adminDSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	var exists bool
	if err := conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname=$1)`, dbName,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = conn.ExecContext(ctx, `CREATE DATABASE `+pq.QuoteIdentifier(dbName))
	return err
}

func DropTestDatabase(adminDSN, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, err := sql.Open("postgres", adminDSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, _ = conn.ExecContext(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()
	`, dbName)

	_, err = conn.ExecContext(ctx, `DROP DATABASE IF EXISTS `+pq.QuoteIdentifier(dbName))
	return err
}

// SetupTestDB creates the test database, migrates it, loads the sample
// directory and returns an open store plus a teardown that drops everything.
func SetupTestDB(ctx context.Context, baseDSN string) (*db.Postgres, func() error, error) {
	if os.Getenv("APP_ENV") == "production" {
		return nil, nil, errors.New("APP_ENV=production, aborting tests")
	}

	testDSN, adminDSN, err := DeriveTestDSN(baseDSN)
	if err != nil {
		return nil, nil, err
	}

	// start from an empty database so fixture ids never collide with a previous run
	_ = DropTestDatabase(adminDSN, testDBName)
	if err := CreateTestDatabase(adminDSN, testDBName); err != nil {
		return nil, nil, fmt.Errorf("create DB %q: %w (POSTGRES_DSN -> %s)", testDBName, err, redactDSN(baseDSN))
	}
	log.Printf("test DB %q created", testDBName)

	fail := func(err error) (*db.Postgres, func() error, error) {
		_ = DropTestDatabase(adminDSN, testDBName)
		return nil, nil, err
	}

	if err := db.Migrate(model.Postgres, testDSN, db.Up); err != nil {
		return fail(err)
	}

	store, err := db.OpenPostgres(ctx, testDSN, 4)
	if err != nil {
		return fail(fmt.Errorf("open postgres: %w (POSTGRES_DSN -> %s)", err, redactDSN(baseDSN)))
	}

	ds, err := fixtures.Load()
	if err != nil {
		store.Close()
		return fail(err)
	}
	exec := func(ctx context.Context, sql string, args ...any) error {
		_, err := store.Pool.Exec(ctx, sql, args...)
		return err
	}
	if err := fixtures.Insert(ctx, model.Postgres, exec, ds); err != nil {
		store.Close()
		return fail(err)
	}

	teardown := func() error {
		store.Close()
		return DropTestDatabase(adminDSN, testDBName)
	}
	return store, teardown, nil
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	username := u.User.Username()
	if username == "" {
		return dsn
	}
	u.User = url.UserPassword(username, "******")
	return u.String()
}
