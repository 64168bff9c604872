// Package testutil provides the database fixture shared by the postgres
// contract tests. Tests are skipped unless TEST_DATABASE_URL points at a
// throwaway Postgres instance.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres"
)

// OpenMigratedPool opens a pool against TEST_DATABASE_URL, applies the
// migrations, and truncates the named tables so the test starts from a clean
// slate. Callers list only the tables they touch; test binaries for
// different packages share the database, so truncating everything would
// race with sibling packages. The pool is closed when the test finishes.
func OpenMigratedPool(t *testing.T, tables ...string) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres contract tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(url); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	pool, err := postgres.NewPool(ctx, url)
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	for _, table := range tables {
		if _, err := pool.Exec(ctx, "TRUNCATE "+table+" CASCADE"); err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}

	return pool
}
