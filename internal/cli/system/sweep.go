package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/true1853/Nykha-bot/internal/cli"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/sweep"
)

type SweepCmd struct{}

func (cmd *SweepCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	n, err := ctx.App().SweepExpiredActivity(opCtx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}
	ctx.Printf("Deleted %d expired activity rows.\n", n)
	return nil
}

type DaemonCmd struct {
	At string `help:"UTC time of the daily sweep (HH:MM). Defaults to NYKHA_SWEEP_AT."`
}

func (cmd *DaemonCmd) Run(ctx *cli.Context) error {
	lock, err := sweep.AcquireLock(ctx.ConfigDir())
	if err != nil {
		return err
	}
	defer lock.Release()

	sched, err := newScheduler(ctx, cmd.At)
	if err != nil {
		return err
	}
	ctx.Printf("Sweep daemon running, next sweep at %s\n", sched.Next().Format("2006-01-02 15:04 MST"))

	return ignoreCanceled(sched.Start(ctx.Run()))
}

func newScheduler(ctx *cli.Context, at string) (*sweep.Scheduler, error) {
	if at == "" && ctx.Config != nil {
		at = ctx.Config.SweepAt
	}
	return sweep.NewScheduler(&timedSweep{ctx: ctx}, at)
}

// timedSweep bounds each scheduled run by the store timeout and snapshots the
// database first.
type timedSweep struct {
	ctx *cli.Context
}

func (t *timedSweep) Run(parent context.Context) (int64, error) {
	preSweepBackup(t.ctx)

	opCtx, cancel := t.ctx.Op()
	defer cancel()
	stop := context.AfterFunc(parent, cancel)
	defer stop()
	return t.ctx.App().SweepExpiredActivity(opCtx)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		logger.Info("Shutting down")
		return nil
	}
	return err
}
