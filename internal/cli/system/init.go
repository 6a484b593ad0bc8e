package system

import (
	"fmt"
	"os"

	"github.com/true1853/Nykha-bot/internal/cli"
	"github.com/true1853/Nykha-bot/internal/storage"
)

type InitCmd struct {
	Force  bool `help:"Delete an existing SQLite database before initializing."`
	NoSeed bool `help:"Skip loading the built-in mantra catalog."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force && !storage.IsPostgres(ctx.Target()) {
		dbPath := ctx.Store.Location()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
				if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to delete existing database: %w", err)
				}
			}
			ctx.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	opCtx, cancel := ctx.Op()
	defer cancel()

	if err := ctx.Store.Init(opCtx); err != nil {
		return err
	}
	ctx.Printf("Initialized nykha storage at: %s\n", ctx.Store.Location())

	if c.NoSeed {
		return nil
	}
	n, err := ctx.App().SeedMantrasIfEmpty(opCtx)
	if err != nil {
		return fmt.Errorf("failed to seed mantras: %w", err)
	}
	if n > 0 {
		ctx.Printf("Seeded %d mantras\n", n)
	}
	return nil
}
