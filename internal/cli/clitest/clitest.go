// Package clitest builds command contexts over a throwaway SQLite store.
package clitest

import (
	"bytes"
	"testing"
	"time"

	"github.com/true1853/Nykha-bot/internal/app"
	"github.com/true1853/Nykha-bot/internal/cli"
	"github.com/true1853/Nykha-bot/internal/config"
	"github.com/true1853/Nykha-bot/internal/constants"
	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/storage/storagetest"
)

var Defaults = models.UserDefaults{
	Phase: constants.DefaultPhase,
	Location: models.Location{
		City:     constants.DefaultCityName,
		Lat:      constants.DefaultLatitude,
		Lon:      constants.DefaultLongitude,
		Timezone: constants.DefaultTimezone,
	},
}

// New returns a context over an initialized store with the clock fixed at now.
func New(t testing.TB, now time.Time) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storagetest.NewSQLite(t)
	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store: store,
		Config: &config.Config{
			DB:        store.Location(),
			DBSource:  config.SourceFlag,
			DBTimeout: 5 * time.Second,
			SweepAt:   constants.DefaultSweepAt,
			Defaults:  Defaults,
		},
		Out: out,
	}
	ctx.SetApp(app.New(store, Defaults, app.WithClock(func() time.Time { return now })))
	return ctx, out
}
