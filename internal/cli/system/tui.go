package system

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/true1853/Nykha-bot/internal/cli"
	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/tui"
)

type TuiCmd struct {
	UserID int64 `arg:"" help:"User ID."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	id := models.UserID(c.UserID)

	opCtx, cancel := ctx.Op()
	_, err := ctx.App().GetUser(opCtx, id)
	cancel()
	if err != nil {
		return err
	}

	var timeout time.Duration
	if ctx.Config != nil {
		timeout = ctx.Config.DBTimeout
	}
	p := tea.NewProgram(
		tui.NewModel(ctx.Run(), ctx.App(), id, timeout),
		tea.WithAltScreen(),
		tea.WithContext(ctx.Run()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
