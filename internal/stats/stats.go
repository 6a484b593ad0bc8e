// Package stats maintains login streaks and computes the trailing weekly rollups.
package stats

import (
	"context"
	"time"

	"github.com/true1853/Nykha-bot/internal/constants"
	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/utils"
)

type Store interface {
	GetUser(ctx context.Context, id models.UserID) (models.User, error)
	IncrementStreak(ctx context.Context, id models.UserID, at time.Time) (int, error)
	UserActivitySummary(ctx context.Context, userID models.UserID, from, to string) (models.ActivitySummary, error)
	GroupActivitySummary(ctx context.Context, from, to string) (models.ActivitySummary, error)
	CountDiaryEntriesSince(ctx context.Context, userID models.UserID, since time.Time) (int, error)
}

type Aggregator struct {
	store Store
	now   func() time.Time
}

func New(store Store, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{store: store, now: now}
}

// Window returns the closed date range [today-6, today] for now.
func Window(now time.Time) (from, to string) {
	return utils.DaysBefore(now, constants.WeeklyWindowDays-1), utils.DateOf(now)
}

// IncrementStreak adds one to the user's streak and stamps last login.
// There is no reset on missed days.
func (a *Aggregator) IncrementStreak(ctx context.Context, userID models.UserID) (int, error) {
	streak, err := a.store.IncrementStreak(ctx, userID, a.now())
	if err != nil {
		return 0, err
	}
	logger.Info("Streak incremented", "user_id", userID, "streak", streak)
	return streak, nil
}

// UserWeekly summarizes the trailing seven days for one user. An unknown user
// yields zero values rather than an error.
func (a *Aggregator) UserWeekly(ctx context.Context, userID models.UserID) (models.UserWeeklyStats, error) {
	now := a.now()
	from, to := Window(now)

	summary, err := a.store.UserActivitySummary(ctx, userID, from, to)
	if err != nil {
		return models.UserWeeklyStats{}, err
	}

	since := utils.StartOfDay(now.AddDate(0, 0, -(constants.WeeklyWindowDays - 1)))
	entries, err := a.store.CountDiaryEntriesSince(ctx, userID, since)
	if err != nil {
		return models.UserWeeklyStats{}, err
	}

	streak := 0
	u, err := a.store.GetUser(ctx, userID)
	switch {
	case err == nil:
		streak = u.Streak
	case apperrors.IsNotFound(err):
	default:
		return models.UserWeeklyStats{}, err
	}

	return models.UserWeeklyStats{
		DaysActive:     summary.Distinct,
		DiaryEntries:   entries,
		TasksDoneTotal: summary.ByCategory.Total(),
		CategoriesDone: summary.ByCategory,
		Streak:         streak,
	}, nil
}

// GroupWeekly summarizes the same window across every user.
func (a *Aggregator) GroupWeekly(ctx context.Context) (models.GroupWeeklyStats, error) {
	from, to := Window(a.now())

	summary, err := a.store.GroupActivitySummary(ctx, from, to)
	if err != nil {
		return models.GroupWeeklyStats{}, err
	}

	return models.GroupWeeklyStats{
		TotalUsersActive: summary.Distinct,
		TotalTasksDone:   summary.ByCategory.Total(),
		CategoriesDone:   summary.ByCategory,
	}, nil
}
