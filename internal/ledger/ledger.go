// Package ledger records which practice categories a user completed today.
package ledger

import (
	"context"
	"time"

	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/utils"
)

// Store is the slice of storage.Provider the ledger needs.
type Store interface {
	UpsertActivity(ctx context.Context, userID models.UserID, day string, category models.Category, at time.Time) error
	CompletedCategories(ctx context.Context, userID models.UserID, day string) ([]models.Category, error)
}

type Ledger struct {
	store Store
	now   func() time.Time
}

// New returns a ledger. A nil now uses time.Now; "today" is now's local date.
func New(store Store, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{store: store, now: now}
}

// MarkDone marks category completed for today. An unknown category fails with
// ErrInvalidCategory before anything is written. Repeating the call on the same
// day keeps a single row and refreshes its timestamp.
func (l *Ledger) MarkDone(ctx context.Context, userID models.UserID, category string) error {
	cat, err := models.ParseCategory(category)
	if err != nil {
		return err
	}

	at := l.now()
	day := utils.DateOf(at)
	if err := l.store.UpsertActivity(ctx, userID, day, cat, at); err != nil {
		logger.Error("Failed to mark activity", "user_id", userID, "category", cat, "day", day, "error", err)
		return err
	}
	logger.Info("Activity marked done", "user_id", userID, "category", cat, "day", day)
	return nil
}

// TodayStatus reports every category, false where nothing was recorded today.
func (l *Ledger) TodayStatus(ctx context.Context, userID models.UserID) (models.TodayStatus, error) {
	day := utils.DateOf(l.now())
	done, err := l.store.CompletedCategories(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	status := models.NewTodayStatus()
	for _, c := range done {
		if c.Valid() {
			status[c] = true
		}
	}
	return status, nil
}
