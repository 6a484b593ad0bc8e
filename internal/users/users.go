// Package users handles first contact, profile lookups and location updates.
package users

import (
	"context"
	"fmt"
	"time"

	"github.com/true1853/Nykha-bot/internal/catalog"
	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/utils"
)

type Store interface {
	TouchUser(ctx context.Context, id models.UserID, name string, at time.Time, defaults models.UserDefaults) (bool, error)
	GetUser(ctx context.Context, id models.UserID) (models.User, error)
	UpdateUserLocation(ctx context.Context, id models.UserID, loc models.Location) error
}

type Service struct {
	store    Store
	defaults models.UserDefaults
	now      func() time.Time
}

func NewService(store Store, defaults models.UserDefaults, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, defaults: defaults, now: now}
}

// AddOrTouch creates the user with the configured defaults on first contact. Later calls
// refresh the display name and last login and leave everything else alone.
func (s *Service) AddOrTouch(ctx context.Context, id models.UserID, name string) (bool, error) {
	created, err := s.store.TouchUser(ctx, id, name, s.now(), s.defaults)
	if err != nil {
		return false, err
	}
	if created {
		logger.Info("User created", "user_id", id, "phase", s.defaults.Phase)
	} else {
		logger.Debug("User touched", "user_id", id)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id models.UserID) (models.User, error) {
	return s.store.GetUser(ctx, id)
}

// UpdateLocation validates loc before writing. Nothing is stored when it is rejected.
func (s *Service) UpdateLocation(ctx context.Context, id models.UserID, loc models.Location) error {
	if err := ValidateLocation(loc); err != nil {
		return err
	}
	if err := s.store.UpdateUserLocation(ctx, id, loc); err != nil {
		return err
	}
	logger.Info("User location updated", "user_id", id, "city", loc.City, "timezone", loc.Timezone)
	return nil
}

// Phase returns the plan week the user is currently on.
func (s *Service) Phase(ctx context.Context, id models.UserID) (models.Phase, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return models.Phase{}, err
	}
	return catalog.Phase(u.CurrentPhase)
}

// ValidateLocation checks coordinate ranges and that the timezone is a known IANA name.
func ValidateLocation(loc models.Location) error {
	if loc.Lat < -90 || loc.Lat > 90 {
		return fmt.Errorf("latitude %v out of range: %w", loc.Lat, apperrors.ErrInvalidLocation)
	}
	if loc.Lon < -180 || loc.Lon > 180 {
		return fmt.Errorf("longitude %v out of range: %w", loc.Lon, apperrors.ErrInvalidLocation)
	}
	if !utils.ValidateTimezone(loc.Timezone) {
		return fmt.Errorf("timezone %q: %w", loc.Timezone, apperrors.ErrInvalidLocation)
	}
	return nil
}
