// Package cli holds the state shared by every command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/true1853/Nykha-bot/internal/app"
	"github.com/true1853/Nykha-bot/internal/config"
	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config *config.Config
	// Base is cancelled on SIGINT/SIGTERM.
	Base context.Context
	Out  io.Writer

	app *app.App
}

// App builds the operations facade over Store on first use.
func (c *Context) App() *app.App {
	if c.app == nil {
		c.app = app.New(c.Store, c.defaults())
	}
	return c.app
}

// SetApp replaces the facade, for tests that need a fixed clock.
func (c *Context) SetApp(a *app.App) { c.app = a }

func (c *Context) defaults() models.UserDefaults {
	if c.Config == nil {
		return models.UserDefaults{}
	}
	return c.Config.Defaults
}

func (c *Context) background() context.Context {
	if c.Base != nil {
		return c.Base
	}
	return context.Background()
}

// Op returns a context bounded by the configured store timeout.
func (c *Context) Op() (context.Context, context.CancelFunc) {
	if c.Config == nil || c.Config.DBTimeout <= 0 {
		return context.WithCancel(c.background())
	}
	return context.WithTimeout(c.background(), c.Config.DBTimeout)
}

// Run returns the uncancelled-by-timeout base context for long-running commands.
func (c *Context) Run() context.Context {
	return c.background()
}

func (c *Context) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// Target is the configured database path or URL.
func (c *Context) Target() string {
	if c.Config != nil && c.Config.DB != "" {
		return c.Config.DB
	}
	return c.Store.Location()
}

// ConfigDir is where logs and the daemon lockfile live.
func (c *Context) ConfigDir() string {
	if c.Config == nil {
		return "."
	}
	return c.Config.ConfigDir()
}

// MaskPassword hides the password in a postgres URL or DSN for display.
func MaskPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		if idx := strings.Index(connStr, "://"); idx != -1 {
			remaining := connStr[idx+3:]
			if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
				userInfo := remaining[:atIdx]
				if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
					return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
				}
			}
		}
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		masked := make([]string, 0, len(parts))
		for _, part := range parts {
			if strings.HasPrefix(part, "password=") {
				masked = append(masked, "password=****")
			} else {
				masked = append(masked, part)
			}
		}
		return strings.Join(masked, " ")
	}

	return connStr
}
