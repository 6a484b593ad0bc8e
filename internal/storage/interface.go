package storage

import (
	"context"
	"time"

	"github.com/true1853/Nykha-bot/internal/models"
)

// Provider is the persistent store shared by every component. Implementations own a single
// handle for the process lifetime and are safe for concurrent use.
//
// Errors are classified with internal/errors: a missing row wraps ErrNotFound, every
// driver or connection failure wraps ErrStoreUnavailable.
type Provider interface {
	// Lifecycle
	Init(ctx context.Context) error
	Load(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int, error)
	// Location returns a non-sensitive description of where data lives.
	Location() string

	// Users
	// TouchUser creates the user with defaults or updates display name and last login.
	TouchUser(ctx context.Context, id models.UserID, name string, at time.Time, defaults models.UserDefaults) (created bool, err error)
	GetUser(ctx context.Context, id models.UserID) (models.User, error)
	UpdateUserLocation(ctx context.Context, id models.UserID, loc models.Location) error
	// IncrementStreak adds one to the streak in a single statement and returns the new value.
	IncrementStreak(ctx context.Context, id models.UserID, at time.Time) (int, error)
	CountUsers(ctx context.Context) (int, error)

	// Activity
	// UpsertActivity marks (userID, day, category) completed in one atomic statement.
	UpsertActivity(ctx context.Context, userID models.UserID, day string, category models.Category, at time.Time) error
	CompletedCategories(ctx context.Context, userID models.UserID, day string) ([]models.Category, error)
	CountActivity(ctx context.Context, userID models.UserID, day string, category models.Category) (int, error)
	// UserActivitySummary tallies completed rows in the closed range [from, to].
	// Distinct is the number of distinct days.
	UserActivitySummary(ctx context.Context, userID models.UserID, from, to string) (models.ActivitySummary, error)
	// GroupActivitySummary tallies completed rows in [from, to] for all users.
	// Distinct is the number of distinct users.
	GroupActivitySummary(ctx context.Context, from, to string) (models.ActivitySummary, error)
	// DeleteActivityBefore removes rows with activity_date strictly before day.
	DeleteActivityBefore(ctx context.Context, day string) (int64, error)

	// Diary
	AddDiaryEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error)
	// RecentDiaryEntries returns newest first, ties broken by id descending.
	RecentDiaryEntries(ctx context.Context, userID models.UserID, limit int) ([]models.DiaryEntry, error)
	CountDiaryEntriesSince(ctx context.Context, userID models.UserID, since time.Time) (int, error)

	// Mantras
	CountMantras(ctx context.Context) (int, error)
	// InsertMantrasIfAbsent inserts in one transaction and skips texts that already exist.
	InsertMantrasIfAbsent(ctx context.Context, mantras []models.Mantra) (int, error)
	// RandomMantra picks uniformly among mantras of category, or among all when category is empty.
	RandomMantra(ctx context.Context, category string) (models.Mantra, error)
	MantraCategories(ctx context.Context) ([]string, error)
	MantrasByCategory(ctx context.Context, category string) ([]models.Mantra, error)
}
