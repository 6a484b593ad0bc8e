package storage

import (
	"context"
	"io/fs"
	"strings"
	"time"

	"github.com/true1853/Nykha-bot/internal/migration"
	"github.com/true1853/Nykha-bot/internal/storage/postgres"
	"github.com/true1853/Nykha-bot/internal/storage/sqlite"
	"github.com/true1853/Nykha-bot/migrations"
)

var (
	_ Provider = (*sqlite.Store)(nil)
	_ Provider = (*postgres.Store)(nil)
)

// Options tunes backend behaviour. The zero value is usable.
type Options struct {
	// BusyTimeout is how long SQLite waits on a locked database.
	BusyTimeout time.Duration
}

// IsPostgres reports whether target is a PostgreSQL URL rather than a SQLite path.
func IsPostgres(target string) bool {
	return strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://")
}

// New returns an unopened store for target. Call Init or Load before use.
func New(target string, opts Options) Provider {
	if IsPostgres(target) {
		return postgres.New(target)
	}
	return sqlite.NewStore(target, sqlite.WithBusyTimeout(opts.BusyTimeout))
}

// Open returns a loaded store for an already initialized target.
func Open(ctx context.Context, target string, opts Options) (Provider, error) {
	p := New(target, opts)
	if err := p.Load(ctx); err != nil {
		_ = p.Close()
		return nil, err
	}
	return p, nil
}

// LatestSchemaVersion is the newest migration shipped for target's backend.
func LatestSchemaVersion(target string) (int, error) {
	dir, dialect := "sqlite", migration.SQLite
	if IsPostgres(target) {
		dir, dialect = "postgres", migration.Postgres
	}
	sub, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return 0, err
	}
	return migration.NewRunner(nil, sub, dialect).GetLatestVersion()
}
