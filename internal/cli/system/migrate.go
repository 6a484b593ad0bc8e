package system

import (
	"fmt"

	"github.com/true1853/Nykha-bot/internal/cli"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	// Init applies pending migrations and leaves an up-to-date schema alone.
	if err := ctx.Store.Init(opCtx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	v, err := ctx.Store.SchemaVersion(opCtx)
	if err != nil {
		return err
	}
	ctx.Printf("Database schema is at version %d.\n", v)
	return nil
}
