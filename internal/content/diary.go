package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/true1853/Nykha-bot/internal/constants"
	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/models"
)

type DiaryStore interface {
	AddDiaryEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error)
	RecentDiaryEntries(ctx context.Context, userID models.UserID, limit int) ([]models.DiaryEntry, error)
}

type Diary struct {
	store DiaryStore
	now   func() time.Time
}

func NewDiary(store DiaryStore, now func() time.Time) *Diary {
	if now == nil {
		now = time.Now
	}
	return &Diary{store: store, now: now}
}

// Append stores text as written. Blank text is rejected with ErrEmptyEntry.
func (d *Diary) Append(ctx context.Context, userID models.UserID, text string) (models.DiaryEntry, error) {
	if strings.TrimSpace(text) == "" {
		return models.DiaryEntry{}, fmt.Errorf("append diary entry: %w", apperrors.ErrEmptyEntry)
	}

	entry, err := d.store.AddDiaryEntry(ctx, models.DiaryEntry{
		UserID:    userID,
		CreatedAt: d.now(),
		Text:      text,
	})
	if err != nil {
		return models.DiaryEntry{}, err
	}
	logger.Info("Diary entry added", "user_id", userID, "entry_id", entry.ID)
	return entry, nil
}

// Recent returns up to limit entries, newest first. A non-positive limit means the
// default and it is capped at MaxDiaryLimit.
func (d *Diary) Recent(ctx context.Context, userID models.UserID, limit int) ([]models.DiaryEntry, error) {
	return d.store.RecentDiaryEntries(ctx, userID, clampLimit(limit))
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return constants.DefaultDiaryLimit
	case limit > constants.MaxDiaryLimit:
		return constants.MaxDiaryLimit
	default:
		return limit
	}
}
