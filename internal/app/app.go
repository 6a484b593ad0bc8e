// Package app wires the services over one store handle and exposes the operations
// used by the CLI and the HTTP adapter.
package app

import (
	"context"
	"time"

	"github.com/true1853/Nykha-bot/internal/catalog"
	"github.com/true1853/Nykha-bot/internal/content"
	"github.com/true1853/Nykha-bot/internal/ledger"
	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/stats"
	"github.com/true1853/Nykha-bot/internal/storage"
	"github.com/true1853/Nykha-bot/internal/sweep"
	"github.com/true1853/Nykha-bot/internal/users"
)

type Option func(*App)

// WithClock replaces time.Now for every service.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

type App struct {
	store storage.Provider
	now   func() time.Time

	Users   *users.Service
	Ledger  *ledger.Ledger
	Stats   *stats.Aggregator
	Mantras *content.Mantras
	Diary   *content.Diary
	Sweeper *sweep.Sweeper
}

// New builds the services over store. store must already be loaded.
func New(store storage.Provider, defaults models.UserDefaults, opts ...Option) *App {
	a := &App{store: store, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}

	a.Users = users.NewService(store, defaults, a.now)
	a.Ledger = ledger.New(store, a.now)
	a.Stats = stats.New(store, a.now)
	a.Mantras = content.NewMantras(store)
	a.Diary = content.NewDiary(store, a.now)
	a.Sweeper = sweep.NewSweeper(store, a.now)
	return a
}

func (a *App) Store() storage.Provider { return a.store }

func (a *App) AddOrTouchUser(ctx context.Context, id models.UserID, name string) (bool, error) {
	return a.Users.AddOrTouch(ctx, id, name)
}

func (a *App) GetUser(ctx context.Context, id models.UserID) (models.User, error) {
	return a.Users.Get(ctx, id)
}

func (a *App) UpdateUserLocation(ctx context.Context, id models.UserID, loc models.Location) error {
	return a.Users.UpdateLocation(ctx, id, loc)
}

func (a *App) CurrentPhase(ctx context.Context, id models.UserID) (models.Phase, error) {
	return a.Users.Phase(ctx, id)
}

func (a *App) MarkDone(ctx context.Context, id models.UserID, category string) error {
	return a.Ledger.MarkDone(ctx, id, category)
}

func (a *App) TodayStatus(ctx context.Context, id models.UserID) (models.TodayStatus, error) {
	return a.Ledger.TodayStatus(ctx, id)
}

func (a *App) IncrementStreak(ctx context.Context, id models.UserID) (int, error) {
	return a.Stats.IncrementStreak(ctx, id)
}

func (a *App) UserWeeklyStats(ctx context.Context, id models.UserID) (models.UserWeeklyStats, error) {
	return a.Stats.UserWeekly(ctx, id)
}

func (a *App) GroupWeeklyStats(ctx context.Context) (models.GroupWeeklyStats, error) {
	return a.Stats.GroupWeekly(ctx)
}

func (a *App) AppendDiaryEntry(ctx context.Context, id models.UserID, text string) (models.DiaryEntry, error) {
	return a.Diary.Append(ctx, id, text)
}

func (a *App) RecentEntries(ctx context.Context, id models.UserID, limit int) ([]models.DiaryEntry, error) {
	return a.Diary.Recent(ctx, id, limit)
}

func (a *App) RandomMantra(ctx context.Context) (models.Mantra, error) {
	return a.Mantras.Random(ctx)
}

func (a *App) RandomMantraByCategory(ctx context.Context, category string) (models.Mantra, error) {
	return a.Mantras.RandomByCategory(ctx, category)
}

func (a *App) MantraCategories(ctx context.Context) ([]string, error) {
	return a.Mantras.Categories(ctx)
}

func (a *App) MantrasByCategory(ctx context.Context, category string) ([]models.Mantra, error) {
	return a.Mantras.ByCategory(ctx, category)
}

// SeedMantrasIfEmpty loads the built-in catalog into an empty mantra table.
func (a *App) SeedMantrasIfEmpty(ctx context.Context) (int, error) {
	return a.Mantras.SeedIfEmpty(ctx, catalog.Mantras())
}

func (a *App) SweepExpiredActivity(ctx context.Context) (int64, error) {
	return a.Sweeper.Run(ctx)
}
