package system

import (
	"context"
	"errors"

	"github.com/true1853/Nykha-bot/internal/api"
	"github.com/true1853/Nykha-bot/internal/cli"
	"github.com/true1853/Nykha-bot/internal/logger"
	"github.com/true1853/Nykha-bot/internal/sweep"
)

type ServeCmd struct {
	Addr    string `help:"Listen address. Defaults to NYKHA_HTTP_ADDR."`
	NoSweep bool   `help:"Do not run the daily sweep in this process."`
}

func (cmd *ServeCmd) Run(ctx *cli.Context) error {
	addr := cmd.Addr
	if addr == "" && ctx.Config != nil {
		addr = ctx.Config.HTTPAddr
	}

	runCtx, cancel := context.WithCancel(ctx.Run())
	defer cancel()

	sweepDone := make(chan error, 1)
	if cmd.NoSweep {
		close(sweepDone)
	} else {
		lock, err := sweep.AcquireLock(ctx.ConfigDir())
		switch {
		case errors.Is(err, sweep.ErrAlreadyRunning):
			logger.Warn("Another process owns the sweep, serving without it")
			close(sweepDone)
		case err != nil:
			return err
		default:
			defer lock.Release()
			sched, err := newScheduler(ctx, "")
			if err != nil {
				return err
			}
			go func() {
				sweepDone <- ignoreCanceled(sched.Start(runCtx))
			}()
		}
	}

	ctx.Printf("Serving on %s\n", addr)
	err := api.Serve(runCtx, addr, api.NewRouter(ctx.App()))
	cancel()
	if sweepErr := <-sweepDone; err == nil {
		err = sweepErr
	}
	return err
}
