// Package testutil holds helpers for the Postgres-backed ledger tests.
// Everything here skips when TEST_DATABASE_URL is unset.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/comdominio/dashboard/migrations"
)

// DSNEnv names the variable that points tests at a scratch database.
const DSNEnv = "TEST_DATABASE_URL"

// NewPool returns a pinged pool closed at test cleanup.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), dsn(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// NewTx begins a transaction on a fresh pool and rolls it back at cleanup,
// so ledger rows written by one test are never seen by another.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()

	tx, err := NewPool(t).Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewTx: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewSQLDB returns a database/sql handle for goose, closed at test cleanup.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := OpenSQLDB(dsn(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// OpenSQLDB opens and pings a database/sql handle. TestMain uses it
// directly since it has no *testing.T.
func OpenSQLDB(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// Migrator returns a goose provider over the embedded ledger migrations.
func Migrator(db *sql.DB) (*goose.Provider, error) {
	return goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
}

func dsn(t *testing.T) string {
	t.Helper()
	url := os.Getenv(DSNEnv)
	if url == "" {
		t.Skip(DSNEnv + " not set")
	}
	return url
}
