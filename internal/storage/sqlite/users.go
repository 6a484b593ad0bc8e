package sqlite

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/models"
)

// userRow shadows the embedded LastLogin, sqlx maps the shallower field.
type userRow struct {
	models.User
	LastLogin string `db:"last_login"`
}

func (r userRow) toModel() (models.User, error) {
	u := r.User
	t, err := parseTime(r.LastLogin)
	if err != nil {
		return models.User{}, err
	}
	u.LastLogin = t
	return u, nil
}

func (s *Store) TouchUser(ctx context.Context, id models.UserID, name string, at time.Time, defaults models.UserDefaults) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, classify("touch user", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO users (user_id, display_name, current_phase, streak, last_login,
			location_city, location_lat, location_lon, timezone)
		VALUES (?, ?, ?, 0, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO NOTHING`,
		id, name, defaults.Phase, formatTime(at),
		defaults.Location.City, defaults.Location.Lat, defaults.Location.Lon, defaults.Location.Timezone)
	if err != nil {
		return false, classify("touch user", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, classify("touch user", err)
	}
	created := n == 1

	if !created {
		if _, err := tx.ExecContext(ctx,
			"UPDATE users SET display_name = ?, last_login = ? WHERE user_id = ?",
			name, formatTime(at), id); err != nil {
			return false, classify("touch user", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, classify("touch user", err)
	}

	logger.Debug("User touched", "user_id", id, "created", created)
	return created, nil
}

func (s *Store) GetUser(ctx context.Context, id models.UserID) (models.User, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row, `
		SELECT user_id, display_name, current_phase, streak, last_login,
			location_city, location_lat, location_lon, timezone
		FROM users WHERE user_id = ?`, id)
	if err != nil {
		return models.User{}, classify(fmt.Sprintf("get user %d", id), err)
	}
	return row.toModel()
}

func (s *Store) UpdateUserLocation(ctx context.Context, id models.UserID, loc models.Location) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET location_city = ?, location_lat = ?, location_lon = ?, timezone = ?
		WHERE user_id = ?`,
		loc.City, loc.Lat, loc.Lon, loc.Timezone, id)
	if err != nil {
		return classify("update location", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify("update location", err)
	}
	if n == 0 {
		return fmt.Errorf("update location: user %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *Store) IncrementStreak(ctx context.Context, id models.UserID, at time.Time) (int, error) {
	var streak int
	err := s.db.QueryRowxContext(ctx,
		"UPDATE users SET streak = streak + 1, last_login = ? WHERE user_id = ? RETURNING streak",
		formatTime(at), id).Scan(&streak)
	if err != nil {
		return 0, classify(fmt.Sprintf("increment streak %d", id), err)
	}
	return streak, nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, classify("count users", err)
	}
	return n, nil
}
