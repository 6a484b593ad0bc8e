package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/true1853/Nykha-bot/internal/cli"
	"github.com/true1853/Nykha-bot/internal/keyring"
	"github.com/true1853/Nykha-bot/internal/storage"
	"github.com/true1853/Nykha-bot/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name     string
	fn       func(*cli.Context) error
	needsDB  bool
	warnOnly bool
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	checks := []check{
		{name: "Database reachable", fn: checkDBReachable},
		{name: "Schema version", fn: checkSchemaVersion, needsDB: true},
		{name: "Mantra catalog", fn: checkMantras, needsDB: true, warnOnly: true},
		{name: "Clock/timezone", fn: checkClockTimezone},
		{name: "Sweep schedule", fn: checkSweepSchedule},
		{name: "Backups", fn: checkBackups, warnOnly: true},
		{name: "OS keyring", fn: checkKeyring, warnOnly: true},
	}

	hasError := false
	dbReachable := false
	for i, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.fn(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
			if i == 0 {
				dbReachable = true
			}
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		return errors.New("diagnostics found problems")
	}
	ctx.Println("All checks passed.")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	if err := ctx.Store.Load(opCtx); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	return ctx.Store.Ping(opCtx)
}

func checkSchemaVersion(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	current, err := ctx.Store.SchemaVersion(opCtx)
	if err != nil {
		return err
	}
	latest, err := storage.LatestSchemaVersion(ctx.Target())
	if err != nil {
		return err
	}
	if current != latest {
		return fmt.Errorf("schema at version %d, latest is %d (run 'nykha migrate')", current, latest)
	}
	return nil
}

func checkMantras(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	n, err := ctx.Store.CountMantras(opCtx)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("no mantras loaded (run 'nykha mantra seed')")
	}
	return nil
}

func checkClockTimezone(*cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkSweepSchedule(ctx *cli.Context) error {
	if ctx.Config == nil {
		return nil
	}
	if _, _, err := utils.ParseClock(ctx.Config.SweepAt); err != nil {
		return err
	}
	if !utils.ValidateTimezone(ctx.Config.Defaults.Location.Timezone) {
		return fmt.Errorf("default timezone %q cannot be loaded", ctx.Config.Defaults.Location.Timezone)
	}
	return nil
}

// checkBackups warns when a SQLite database has no snapshot from the last two days.
func checkBackups(ctx *cli.Context) error {
	if storage.IsPostgres(ctx.Target()) {
		return nil
	}
	mgr, err := newBackupManager(ctx)
	if err != nil {
		return err
	}
	list, err := mgr.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return errors.New("no backups yet (run 'nykha backup')")
	}
	if age := time.Since(list[0].Timestamp); age > 48*time.Hour {
		return fmt.Errorf("latest backup is %s old", age.Truncate(time.Hour))
	}
	return nil
}

func checkKeyring(*cli.Context) error {
	if !keyring.IsAvailable() {
		return errors.New("OS keyring is not available; use NYKHA_DB_CONNECTION instead")
	}
	return nil
}
