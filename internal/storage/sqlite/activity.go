package sqlite

import (
	"context"
	"time"

	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/models"
)

type categoryCount struct {
	Category models.Category `db:"category"`
	N        int             `db:"n"`
}

func (s *Store) UpsertActivity(ctx context.Context, userID models.UserID, day string, category models.Category, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_activity (user_id, activity_date, category, completed, updated_at)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT (user_id, activity_date, category) DO UPDATE SET
			completed = 1,
			updated_at = excluded.updated_at`,
		userID, day, category, formatTime(at))
	if err != nil {
		return classify("upsert activity", err)
	}
	logger.Debug("Activity marked", "user_id", userID, "day", day, "category", category)
	return nil
}

func (s *Store) CompletedCategories(ctx context.Context, userID models.UserID, day string) ([]models.Category, error) {
	var cats []models.Category
	err := s.db.SelectContext(ctx, &cats, `
		SELECT category FROM daily_activity
		WHERE user_id = ? AND activity_date = ? AND completed = 1
		ORDER BY category`, userID, day)
	if err != nil {
		return nil, classify("completed categories", err)
	}
	return cats, nil
}

func (s *Store) CountActivity(ctx context.Context, userID models.UserID, day string, category models.Category) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `
		SELECT COUNT(*) FROM daily_activity
		WHERE user_id = ? AND activity_date = ? AND category = ?`, userID, day, category)
	if err != nil {
		return 0, classify("count activity", err)
	}
	return n, nil
}

func (s *Store) UserActivitySummary(ctx context.Context, userID models.UserID, from, to string) (models.ActivitySummary, error) {
	summary := models.ActivitySummary{ByCategory: models.NewCategoryCounts()}

	err := s.db.GetContext(ctx, &summary.Distinct, `
		SELECT COUNT(DISTINCT activity_date) FROM daily_activity
		WHERE user_id = ? AND completed = 1 AND activity_date BETWEEN ? AND ?`,
		userID, from, to)
	if err != nil {
		return models.ActivitySummary{}, classify("user activity summary", err)
	}

	var counts []categoryCount
	err = s.db.SelectContext(ctx, &counts, `
		SELECT category, COUNT(*) AS n FROM daily_activity
		WHERE user_id = ? AND completed = 1 AND activity_date BETWEEN ? AND ?
		GROUP BY category`,
		userID, from, to)
	if err != nil {
		return models.ActivitySummary{}, classify("user activity summary", err)
	}

	addCounts(summary.ByCategory, counts)
	return summary, nil
}

func (s *Store) GroupActivitySummary(ctx context.Context, from, to string) (models.ActivitySummary, error) {
	summary := models.ActivitySummary{ByCategory: models.NewCategoryCounts()}

	err := s.db.GetContext(ctx, &summary.Distinct, `
		SELECT COUNT(DISTINCT user_id) FROM daily_activity
		WHERE completed = 1 AND activity_date BETWEEN ? AND ?`,
		from, to)
	if err != nil {
		return models.ActivitySummary{}, classify("group activity summary", err)
	}

	var counts []categoryCount
	err = s.db.SelectContext(ctx, &counts, `
		SELECT category, COUNT(*) AS n FROM daily_activity
		WHERE completed = 1 AND activity_date BETWEEN ? AND ?
		GROUP BY category`,
		from, to)
	if err != nil {
		return models.ActivitySummary{}, classify("group activity summary", err)
	}

	addCounts(summary.ByCategory, counts)
	return summary, nil
}

func (s *Store) DeleteActivityBefore(ctx context.Context, day string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM daily_activity WHERE activity_date < ?", day)
	if err != nil {
		return 0, classify("delete activity", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify("delete activity", err)
	}
	return n, nil
}

// addCounts ignores categories outside the fixed set.
func addCounts(dst models.CategoryCounts, counts []categoryCount) {
	for _, c := range counts {
		if c.Category.Valid() {
			dst[c.Category] += c.N
		}
	}
}
