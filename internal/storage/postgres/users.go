package postgres

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/models"
)

func (s *Store) TouchUser(ctx context.Context, id models.UserID, name string, at time.Time, defaults models.UserDefaults) (bool, error) {
	// xmax is zero only on a row this statement inserted.
	var created bool
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO users (user_id, display_name, current_phase, streak, last_login,
			location_city, location_lat, location_lon, timezone)
		VALUES ($1, $2, $3, 0, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			last_login = EXCLUDED.last_login
		RETURNING (xmax = 0)`,
		id, name, defaults.Phase, at.UTC(),
		defaults.Location.City, defaults.Location.Lat, defaults.Location.Lon, defaults.Location.Timezone,
	).Scan(&created)
	if err != nil {
		return false, classify("touch user", err)
	}

	logger.Debug("User touched", "user_id", id, "created", created)
	return created, nil
}

func (s *Store) GetUser(ctx context.Context, id models.UserID) (models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `
		SELECT user_id, display_name, current_phase, streak, last_login,
			location_city, location_lat, location_lon, timezone
		FROM users WHERE user_id = $1`, id)
	if err != nil {
		return models.User{}, classify(fmt.Sprintf("get user %d", id), err)
	}
	u.LastLogin = u.LastLogin.UTC()
	return u, nil
}

func (s *Store) UpdateUserLocation(ctx context.Context, id models.UserID, loc models.Location) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET location_city = $1, location_lat = $2, location_lon = $3, timezone = $4
		WHERE user_id = $5`,
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
		"UPDATE users SET streak = streak + 1, last_login = $1 WHERE user_id = $2 RETURNING streak",
		at.UTC(), id).Scan(&streak)
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
