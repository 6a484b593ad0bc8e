package content

import (
	"fmt"

	"github.com/true1853/Nykha-bot/internal/catalog"
	"github.com/true1853/Nykha-bot/internal/cli"
	"github.com/true1853/Nykha-bot/internal/models"
)

type DiaryCmd struct {
	Add  DiaryAddCmd  `cmd:"" help:"Write a diary entry."`
	List DiaryListCmd `cmd:"" help:"Show recent diary entries." default:"withargs"`
}

type DiaryAddCmd struct {
	UserID int64  `arg:"" help:"User ID."`
	Text   string `arg:"" help:"Entry text."`
}

func (c *DiaryAddCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	entry, err := ctx.App().AppendDiaryEntry(opCtx, models.UserID(c.UserID), c.Text)
	if err != nil {
		return err
	}
	ctx.Printf("📝 Entry %d saved.\n", entry.ID)
	return nil
}

type DiaryListCmd struct {
	UserID int64 `arg:"" help:"User ID."`
	Limit  int   `short:"n" default:"5" help:"Number of entries to show."`
}

func (c *DiaryListCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	entries, err := ctx.App().RecentEntries(opCtx, models.UserID(c.UserID), c.Limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Println("No diary entries yet.")
		return nil
	}
	for _, e := range entries {
		ctx.Printf("%s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Text)
	}
	return nil
}

type MantraCmd struct {
	Random     MantraRandomCmd     `cmd:"" help:"Show a random mantra." default:"withargs"`
	Categories MantraCategoriesCmd `cmd:"" help:"List mantra categories."`
	List       MantraListCmd       `cmd:"" help:"List mantras in a category."`
	Seed       MantraSeedCmd       `cmd:"" help:"Load the built-in catalog into an empty table."`
}

type MantraRandomCmd struct {
	Category string `short:"c" help:"Prefer this category."`
}

func (c *MantraRandomCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	m, err := ctx.App().RandomMantraByCategory(opCtx, c.Category)
	if err != nil {
		return err
	}
	printMantra(ctx, m)
	return nil
}

type MantraCategoriesCmd struct{}

func (c *MantraCategoriesCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	cats, err := ctx.App().MantraCategories(opCtx)
	if err != nil {
		return err
	}
	for _, cat := range cats {
		ctx.Println(cat)
	}
	return nil
}

type MantraListCmd struct {
	Category string `arg:"" help:"Category name."`
}

func (c *MantraListCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	list, err := ctx.App().MantrasByCategory(opCtx, c.Category)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("no mantras in category %q", c.Category)
	}
	for _, m := range list {
		printMantra(ctx, m)
	}
	return nil
}

type MantraSeedCmd struct{}

func (c *MantraSeedCmd) Run(ctx *cli.Context) error {
	opCtx, cancel := ctx.Op()
	defer cancel()

	n, err := ctx.App().SeedMantrasIfEmpty(opCtx)
	if err != nil {
		return err
	}
	if n == 0 {
		ctx.Println("Mantra catalog already loaded.")
		return nil
	}
	ctx.Printf("Seeded %d mantras.\n", n)
	return nil
}

func printMantra(ctx *cli.Context, m models.Mantra) {
	ctx.Printf("🙏 %s\n", m.Text)
	if m.Translation != nil {
		ctx.Printf("   %s\n", *m.Translation)
	}
}

type PlanCmd struct {
	UserID int64 `arg:"" optional:"" help:"Show only the user's current week."`
}

func (c *PlanCmd) Run(ctx *cli.Context) error {
	if c.UserID == 0 {
		for _, p := range catalog.Phases() {
			printPhase(ctx, p)
		}
		return nil
	}

	opCtx, cancel := ctx.Op()
	defer cancel()

	// plan skips the up-front load so the static table works without a database.
	if err := ctx.Store.Load(opCtx); err != nil {
		return err
	}
	p, err := ctx.App().CurrentPhase(opCtx, models.UserID(c.UserID))
	if err != nil {
		return err
	}
	printPhase(ctx, p)
	return nil
}

func printPhase(ctx *cli.Context, p models.Phase) {
	ctx.Printf("%s\n", p.Title)
	ctx.Printf("  Daily:      %s\n", p.DailyHabit)
	ctx.Printf("  Meals:      %s\n", p.MealHabit)
	ctx.Printf("  Reflection: %s\n\n", p.Reflection)
}
