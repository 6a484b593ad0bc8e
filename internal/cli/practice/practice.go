package practice

import (
	"errors"

	"github.com/true1853/Nykha-bot/internal/cli"
	"github.com/true1853/Nykha-bot/internal/models"
)

var errMissingUser = errors.New("a user ID is required unless --group is set")

type MarkCmd struct {
	UserID   int64  `arg:"" help:"User ID."`
	Category string `arg:"" enum:"mindfulness,nature,service" help:"Practice category (mindfulness, nature, service)."`
}

func (c *MarkCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	if err := ctx.App().MarkDone(opCtx, models.UserID(c.UserID), c.Category); err != nil {
		return err
	}
	cat, _ := models.ParseCategory(c.Category)
	ctx.Printf("%s %s marked done for today.\n", cat.Emoji(), cat.DisplayName())
	return nil
}

type TodayCmd struct {
	UserID int64 `arg:"" help:"User ID."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	status, err := ctx.App().TodayStatus(opCtx, models.UserID(c.UserID))
	if err != nil {
		return err
	}
	for _, cat := range models.Categories() {
		mark := "⬜"
		if status[cat] {
			mark = "✅"
		}
		ctx.Printf("%s %s %s\n", mark, cat.Emoji(), cat.DisplayName())
	}
	return nil
}

type StreakCmd struct {
	UserID int64 `arg:"" help:"User ID."`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	n, err := ctx.App().IncrementStreak(opCtx, models.UserID(c.UserID))
	if err != nil {
		return err
	}
	ctx.Printf("🔥 Streak: %d\n", n)
	return nil
}

type StatsCmd struct {
	UserID int64 `arg:"" optional:"" help:"User ID. Required unless --group is set."`
	Group  bool  `help:"Show totals for all users."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	if c.Group {
		st, err := ctx.App().GroupWeeklyStats(opCtx)
		if err != nil {
			return err
		}
		ctx.Println("Group, last 7 days:")
		ctx.Printf("  Active users: %d\n", st.TotalUsersActive)
		ctx.Printf("  Tasks done:   %d\n", st.TotalTasksDone)
		printCategories(ctx, st.CategoriesDone)
		return nil
	}

	if c.UserID == 0 {
		return errMissingUser
	}
	st, err := ctx.App().UserWeeklyStats(opCtx, models.UserID(c.UserID))
	if err != nil {
		return err
	}
	ctx.Println("Last 7 days:")
	ctx.Printf("  Active days:   %d\n", st.DaysActive)
	ctx.Printf("  Tasks done:    %d\n", st.TasksDoneTotal)
	ctx.Printf("  Diary entries: %d\n", st.DiaryEntries)
	ctx.Printf("  Streak:        %d\n", st.Streak)
	printCategories(ctx, st.CategoriesDone)
	return nil
}

func printCategories(ctx *cli.Context, counts models.CategoryCounts) {
	for _, cat := range models.Categories() {
		ctx.Printf("  %s %-12s %d\n", cat.Emoji(), cat.DisplayName(), counts[cat])
	}
}
