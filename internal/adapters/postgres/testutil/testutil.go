// Package testutil provides Postgres helpers for adapter tests.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Crestview-Financial/bank-portal-api/internal/adapters/postgres"
)

// OpenMigratedPool opens a pool against TEST_DATABASE_URL with the schema applied
// and the ledger emptied. Tests that need Postgres are skipped when the variable
// is unset, which keeps the default `go test ./...` run hermetic.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("open postgres pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := postgres.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE ledger_entries RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate ledger_entries: %v", err)
	}
	return pool
}
