package users

import (
	"github.com/true1853/Nykha-bot/internal/cli"
	"github.com/true1853/Nykha-bot/internal/models"
)

type UserCmd struct {
	Touch    UserTouchCmd    `cmd:"" help:"Register a user or refresh their last login."`
	Show     UserShowCmd     `cmd:"" help:"Show a user's profile."`
	Location UserLocationCmd `cmd:"" help:"Update a user's location."`
}

type UserTouchCmd struct {
	UserID int64  `arg:"" help:"User ID."`
	Name   string `arg:"" optional:"" help:"Display name."`
}

func (c *UserTouchCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	created, err := ctx.App().AddOrTouchUser(opCtx, models.UserID(c.UserID), c.Name)
	if err != nil {
		return err
	}
	if created {
		ctx.Printf("Welcome, %s! User %d created.\n", displayName(c.Name), c.UserID)
	} else {
		ctx.Printf("Welcome back, %s!\n", displayName(c.Name))
	}
	return nil
}

type UserShowCmd struct {
	UserID int64 `arg:"" help:"User ID."`
}

func (c *UserShowCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	u, err := ctx.App().GetUser(opCtx, models.UserID(c.UserID))
	if err != nil {
		return err
	}
	ctx.Printf("User:       %d (%s)\n", u.ID, displayName(u.DisplayName))
	ctx.Printf("Phase:      %s\n", u.CurrentPhase)
	ctx.Printf("Streak:     %d\n", u.Streak)
	ctx.Printf("Last login: %s\n", u.LastLogin.Local().Format("2006-01-02 15:04"))
	ctx.Printf("Location:   %s (%.4f, %.4f) %s\n", u.City, u.Lat, u.Lon, u.Timezone)
	return nil
}

type UserLocationCmd struct {
	UserID   int64   `arg:"" help:"User ID."`
	City     string  `required:"" help:"City name."`
	Lat      float64 `required:"" help:"Latitude in degrees."`
	Lon      float64 `required:"" help:"Longitude in degrees."`
	Timezone string  `required:"" help:"IANA timezone, e.g. Europe/Moscow."`
}

func (c *UserLocationCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	loc := models.Location{City: c.City, Lat: c.Lat, Lon: c.Lon, Timezone: c.Timezone}
	if err := ctx.App().UpdateUserLocation(opCtx, models.UserID(c.UserID), loc); err != nil {
		return err
	}
	ctx.Printf("Location set to %s (%s)\n", c.City, c.Timezone)
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "friend"
	}
	return name
}
