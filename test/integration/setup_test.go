package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odonto/odonto/internal/platform/db"
)

var globalPool *pgxpool.Pool

// TestMain starts a throwaway postgres container, runs the migrations against
// it, and tears everything down after the test run.
func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	connStr, cleanup, err := startPostgresContainer(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start postgres container: %v\n", err)
		fmt.Fprintln(os.Stderr, "integration tests require Docker; skipping")
		os.Exit(0)
	}

	pool, err := db.NewPool(ctx, connStr, 10, 2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	globalPool = pool

	if _, err := db.NewMigrator(pool, findMigrationsDir()).Up(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		pool.Close()
		cleanup()
		os.Exit(1)
	}

	code := m.Run()

	pool.Close()
	cleanup()
	os.Exit(code)
}

// findMigrationsDir locates the migrations directory relative to this file so
// the tests do not depend on the working directory.
func findMigrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// truncateAll clears the domain tables between tests.
func truncateAll(t *testing.T) {
	t.Helper()
	_, err := globalPool.Exec(context.Background(),
		`TRUNCATE odontogram_tooth, odontogram`)
	if err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
