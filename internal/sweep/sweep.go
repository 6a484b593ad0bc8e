// Package sweep expires old activity rows once a day.
package sweep

import (
	"context"
	"time"

	"github.com/true1853/Nykha-bot/internal/constants"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/utils"
)

type Store interface {
	DeleteActivityBefore(ctx context.Context, day string) (int64, error)
}

// Sweeper deletes activity older than yesterday. Today's and yesterday's rows survive.
type Sweeper struct {
	store Store
	now   func() time.Time
}

func NewSweeper(store Store, now func() time.Time) *Sweeper {
	if now == nil {
		now = time.Now
	}
	return &Sweeper{store: store, now: now}
}

// Cutoff is the earliest date kept by a sweep run at now.
func Cutoff(now time.Time) string {
	return utils.DaysBefore(now, constants.ActivityRetentionDays)
}

// Run performs one sweep and returns the number of rows deleted. Running it
// again on the same day deletes nothing.
func (s *Sweeper) Run(ctx context.Context) (int64, error) {
	cutoff := Cutoff(s.now())
	n, err := s.store.DeleteActivityBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	logger.Info("Expired activity swept", "before", cutoff, "deleted", n)
	return n, nil
}
