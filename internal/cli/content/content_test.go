package content

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/true1853/Nykha-bot/internal/catalog"
	"github.com/true1853/Nykha-bot/internal/cli/clitest"
	apperrors "github.com/true1853/Nykha-bot/internal/errors"
)

var now = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

func TestDiaryCommands(t *testing.T) {
	ctx, out := clitest.New(t, now)
	if _, err := ctx.App().AddOrTouchUser(context.Background(), 42, "Alan"); err != nil {
		t.Fatal(err)
	}

	if err := (&DiaryListCmd{UserID: 42}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No diary entries yet.") {
		t.Errorf("output:\n%s", out.String())
	}

	if err := (&DiaryAddCmd{UserID: 42, Text: "первая запись"}).Run(ctx); err != nil {
		t.Fatalf("diary add failed: %v", err)
	}
	if err := (&DiaryAddCmd{UserID: 42, Text: "  "}).Run(ctx); err == nil {
		t.Error("blank entry should be rejected")
	}

	out.Reset()
	if err := (&DiaryListCmd{UserID: 42, Limit: 5}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "первая запись") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestMantraCommands(t *testing.T) {
	ctx, out := clitest.New(t, now)

	if err := (&MantraRandomCmd{}).Run(ctx); !apperrors.IsNotFound(err) {
		t.Errorf("random on empty catalog = %v, want not found", err)
	}

	if err := (&MantraSeedCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Seeded") {
		t.Errorf("output:\n%s", out.String())
	}
	out.Reset()
	if err := (&MantraSeedCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "already loaded") {
		t.Errorf("output:\n%s", out.String())
	}

	out.Reset()
	if err := (&MantraCategoriesCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), catalog.MantraCategoryNature) {
		t.Errorf("categories output:\n%s", out.String())
	}

	out.Reset()
	if err := (&MantraRandomCmd{Category: catalog.MantraCategoryCollective}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "🙏 ") {
		t.Errorf("random output:\n%s", out.String())
	}

	if err := (&MantraListCmd{Category: "nope"}).Run(ctx); err == nil {
		t.Error("listing an unknown category should fail")
	}
	if err := (&MantraListCmd{Category: catalog.MantraCategoryCheckpoint}).Run(ctx); err != nil {
		t.Error(err)
	}
}

func TestPlanCommand(t *testing.T) {
	ctx, out := clitest.New(t, now)

	if err := (&PlanCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out.String(), "Reflection:"); got != len(catalog.Phases()) {
		t.Errorf("plan printed %d phases, want %d", got, len(catalog.Phases()))
	}

	if err := (&PlanCmd{UserID: 7}).Run(ctx); !apperrors.IsNotFound(err) {
		t.Errorf("plan for unknown user = %v, want not found", err)
	}

	if _, err := ctx.App().AddOrTouchUser(context.Background(), 7, "u"); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := (&PlanCmd{UserID: 7}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	first, _ := catalog.Phase("phase1_week1")
	if !strings.Contains(out.String(), first.Title) {
		t.Errorf("output:\n%s", out.String())
	}
}
