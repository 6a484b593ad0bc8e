package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/true1853/Nykha-bot/internal/constants"
	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/storage/storagetest"
)

var testDefaults = models.UserDefaults{
	Phase: constants.DefaultPhase,
	Location: models.Location{
		City:     constants.DefaultCityName,
		Lat:      constants.DefaultLatitude,
		Lon:      constants.DefaultLongitude,
		Timezone: constants.DefaultTimezone,
	},
}

func newService(t *testing.T, now time.Time) *Service {
	t.Helper()
	return NewService(storagetest.NewSQLite(t), testDefaults, func() time.Time { return now })
}

func TestAddOrTouch(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	s := newService(t, now)

	created, err := s.AddOrTouch(ctx, 42, "Alan")
	if err != nil || !created {
		t.Fatalf("first AddOrTouch = %v, %v; want created", created, err)
	}

	u, err := s.Get(ctx, 42)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if u.CurrentPhase != constants.DefaultPhase || u.City != constants.DefaultCityName || u.Streak != 0 {
		t.Errorf("new user = %+v, want defaults", u)
	}

	created, err = s.AddOrTouch(ctx, 42, "Alan B.")
	if err != nil || created {
		t.Fatalf("second AddOrTouch = %v, %v; want touched", created, err)
	}
	u, _ = s.Get(ctx, 42)
	if u.DisplayName != "Alan B." {
		t.Errorf("display name = %q, want refreshed", u.DisplayName)
	}
}

func TestGetUnknownUser(t *testing.T) {
	s := newService(t, time.Now())
	if _, err := s.Get(context.Background(), 7); !apperrors.IsNotFound(err) {
		t.Errorf("Get(unknown) error = %v, want not found", err)
	}
}

func TestUpdateLocation(t *testing.T) {
	ctx := context.Background()
	s := newService(t, time.Now())
	if _, err := s.AddOrTouch(ctx, 42, "Alan"); err != nil {
		t.Fatal(err)
	}

	vlad := models.Location{City: "Vladikavkaz", Lat: 43.02, Lon: 44.68, Timezone: "Europe/Moscow"}
	if err := s.UpdateLocation(ctx, 42, vlad); err != nil {
		t.Fatalf("UpdateLocation failed: %v", err)
	}
	u, _ := s.Get(ctx, 42)
	if u.Location != vlad {
		t.Errorf("location = %+v, want %+v", u.Location, vlad)
	}

	if err := s.UpdateLocation(ctx, 99, vlad); !apperrors.IsNotFound(err) {
		t.Errorf("UpdateLocation(unknown) error = %v, want not found", err)
	}
}

func TestUpdateLocationRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	s := newService(t, time.Now())
	if _, err := s.AddOrTouch(ctx, 42, "Alan"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		loc  models.Location
	}{
		{"latitude too high", models.Location{City: "x", Lat: 90.5, Lon: 0, Timezone: "UTC"}},
		{"latitude too low", models.Location{City: "x", Lat: -91, Lon: 0, Timezone: "UTC"}},
		{"longitude out of range", models.Location{City: "x", Lat: 0, Lon: 181, Timezone: "UTC"}},
		{"unknown timezone", models.Location{City: "x", Lat: 0, Lon: 0, Timezone: "Mars/Olympus"}},
		{"empty timezone", models.Location{City: "x", Lat: 0, Lon: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.UpdateLocation(ctx, 42, tt.loc); !errors.Is(err, apperrors.ErrInvalidLocation) {
				t.Errorf("error = %v, want ErrInvalidLocation", err)
			}
			u, _ := s.Get(ctx, 42)
			if u.City != constants.DefaultCityName {
				t.Errorf("rejected location was written: %+v", u.Location)
			}
		})
	}
}

func TestPhase(t *testing.T) {
	ctx := context.Background()
	s := newService(t, time.Now())
	if _, err := s.AddOrTouch(ctx, 42, "Alan"); err != nil {
		t.Fatal(err)
	}
	p, err := s.Phase(ctx, 42)
	if err != nil {
		t.Fatalf("Phase failed: %v", err)
	}
	if p.Key != constants.DefaultPhase || p.Title == "" {
		t.Errorf("Phase = %+v", p)
	}
}
