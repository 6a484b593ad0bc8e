package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/true1853/Nykha-bot/internal/constants"
	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/migration"
	"github.com/true1853/Nykha-bot/migrations"
)

// timestampLayout is fixed width and always UTC so stored values sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

type Store struct {
	path        string
	busyTimeout time.Duration
	db          *sqlx.DB
}

type Option func(*Store)

// WithBusyTimeout sets how long a writer waits on a locked database. Zero keeps the default.
func WithBusyTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.busyTimeout = d
		}
	}
}

func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:        path,
		busyTimeout: constants.DefaultDBTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) dsn() string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout("+strconv.FormatInt(s.busyTimeout.Milliseconds(), 10)+")")
	return s.path + "?" + q.Encode()
}

func (s *Store) open(ctx context.Context) error {
	db, err := sqlx.Open("sqlite", s.dsn())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One shared connection serializes writers, SQLite allows only one anyway.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return apperrors.StoreError("open database", err)
	}
	s.db = db
	return nil
}

func (s *Store) Init(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		if err := s.open(ctx); err != nil {
			return err
		}
	}

	if err := s.runMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'nykha init' first")
	}

	if err := s.open(ctx); err != nil {
		return err
	}

	return s.runner().ValidateVersion(ctx)
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("ping: %w", apperrors.ErrStoreUnavailable)
	}
	return apperrors.StoreError("ping", s.db.PingContext(ctx))
}

func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("schema version: %w", apperrors.ErrStoreUnavailable)
	}
	return s.runner().GetCurrentVersion(ctx)
}

func (s *Store) Location() string {
	return s.path
}

// DB returns the underlying handle, nil before Init or Load.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) runner() *migration.Runner {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		// The embedded directory is fixed at build time.
		panic(err)
	}
	return migration.NewRunner(s.db.DB, sub, migration.SQLite)
}

func (s *Store) runMigrations(ctx context.Context) error {
	_, err := s.runner().ApplyMigrations(ctx, func(msg string) {
		logger.Info(msg, "backend", "sqlite")
	})
	return err
}

// classify maps SQLite failures onto the store error taxonomy. A foreign key
// violation means the referenced user does not exist.
func classify(op string, err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && (se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY ||
		strings.Contains(se.Error(), "FOREIGN KEY constraint failed")) {
		return fmt.Errorf("%s: user: %w", op, apperrors.ErrNotFound)
	}
	return apperrors.StoreError(op, err)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}
