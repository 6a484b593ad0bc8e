package users

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/true1853/Nykha-bot/internal/cli/clitest"
	"github.com/true1853/Nykha-bot/internal/constants"
	apperrors "github.com/true1853/Nykha-bot/internal/errors"
)

func TestUserCommands(t *testing.T) {
	ctx, out := clitest.New(t, time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC))

	if err := (&UserTouchCmd{UserID: 42, Name: "Alan"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "User 42 created") {
		t.Errorf("output:\n%s", out.String())
	}

	out.Reset()
	if err := (&UserTouchCmd{UserID: 42}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Welcome back") {
		t.Errorf("output:\n%s", out.String())
	}

	out.Reset()
	if err := (&UserShowCmd{UserID: 42}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), constants.DefaultCityName) || !strings.Contains(out.String(), constants.DefaultPhase) {
		t.Errorf("show output:\n%s", out.String())
	}

	err := (&UserLocationCmd{UserID: 42, City: "Vladikavkaz", Lat: 43.02, Lon: 44.68, Timezone: "Europe/Moscow"}).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	err = (&UserLocationCmd{UserID: 42, City: "x", Lat: 0, Lon: 0, Timezone: "Not/AZone"}).Run(ctx)
	if !errors.Is(err, apperrors.ErrInvalidLocation) {
		t.Errorf("bad timezone = %v, want ErrInvalidLocation", err)
	}

	if err := (&UserShowCmd{UserID: 1}).Run(ctx); !apperrors.IsNotFound(err) {
		t.Errorf("show unknown = %v, want not found", err)
	}
}
