// Package storagetest provides initialized stores for tests.
//
// SQLite stores live in t.TempDir(). PostgreSQL stores use POSTGRES_TEST_URL when set,
// otherwise a throwaway testcontainers instance; the test is skipped when neither is
// available. Every PostgreSQL store gets its own schema so tests do not share rows.
package storagetest

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/true1853/Nykha-bot/internal/storage/postgres"
	"github.com/true1853/Nykha-bot/internal/storage/sqlite"
)

const postgresImage = "postgres:16-alpine"

// NewSQLite returns an initialized SQLite store that is closed when the test ends.
func NewSQLite(t testing.TB) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "nykha.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("failed to initialize sqlite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

var (
	containerOnce sync.Once
	containerURL  string
	containerErr  error
)

// PostgresURL returns a base connection string or skips the test.
func PostgresURL(t *testing.T) string {
	t.Helper()
	if u := os.Getenv("POSTGRES_TEST_URL"); u != "" {
		return u
	}
	if testing.Short() {
		t.Skip("skipping PostgreSQL tests in short mode")
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	containerOnce.Do(func() {
		containerURL, containerErr = startContainer()
	})
	if containerErr != nil {
		t.Skipf("PostgreSQL container unavailable: %v", containerErr)
	}
	return containerURL
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "nykha",
				"POSTGRES_PASSWORD": "nykha",
				"POSTGRES_DB":       "nykha",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", err
	}

	host, err := c.Host(ctx)
	if err != nil {
		return "", err
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("postgres://nykha:nykha@%s:%s/nykha?sslmode=disable", host, port.Port()), nil
}

// NewPostgres returns an initialized PostgreSQL store in a fresh schema.
func NewPostgres(t *testing.T) *postgres.Store {
	t.Helper()
	base := PostgresURL(t)

	schema := "nykha_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin, err := sql.Open("postgres", base)
	if err != nil {
		t.Fatalf("failed to open admin connection: %v", err)
	}
	t.Cleanup(func() { admin.Close() })

	if _, err := admin.Exec("CREATE SCHEMA " + schema); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}
	t.Cleanup(func() {
		_, _ = admin.Exec("DROP SCHEMA " + schema + " CASCADE")
	})

	connStr, err := withSearchPath(base, schema)
	if err != nil {
		t.Fatalf("bad POSTGRES_TEST_URL: %v", err)
	}

	store := postgres.New(connStr)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("failed to initialize postgres store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func withSearchPath(base, schema string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
