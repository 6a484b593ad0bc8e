package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/true1853/Nykha-bot/internal/catalog"
	"github.com/true1853/Nykha-bot/internal/constants"
	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/storage/storagetest"
)

var defaults = models.UserDefaults{
	Phase: constants.DefaultPhase,
	Location: models.Location{
		City:     constants.DefaultCityName,
		Lat:      constants.DefaultLatitude,
		Lon:      constants.DefaultLongitude,
		Timezone: constants.DefaultTimezone,
	},
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newApp(t *testing.T, start time.Time) (*App, *clock) {
	t.Helper()
	c := &clock{t: start}
	return New(storagetest.NewSQLite(t), defaults, WithClock(c.now)), c
}

func TestDailyFlow(t *testing.T) {
	ctx := context.Background()
	a, c := newApp(t, time.Date(2025, 5, 18, 9, 0, 0, 0, time.UTC))

	created, err := a.AddOrTouchUser(ctx, 42, "Alan")
	if err != nil || !created {
		t.Fatalf("AddOrTouchUser = %v, %v", created, err)
	}

	// Three active days, nature twice on the first.
	for day := 0; day < 3; day++ {
		if err := a.MarkDone(ctx, 42, "nature"); err != nil {
			t.Fatalf("MarkDone failed: %v", err)
		}
		if day == 0 {
			if err := a.MarkDone(ctx, 42, "nature"); err != nil {
				t.Fatalf("repeat MarkDone failed: %v", err)
			}
		}
		if _, err := a.IncrementStreak(ctx, 42); err != nil {
			t.Fatalf("IncrementStreak failed: %v", err)
		}
		if day < 2 {
			c.t = c.t.AddDate(0, 0, 1)
		}
	}
	if err := a.MarkDone(ctx, 42, "service"); err != nil {
		t.Fatal(err)
	}
	if _, err := a.AppendDiaryEntry(ctx, 42, "спасибо"); err != nil {
		t.Fatal(err)
	}

	status, err := a.TodayStatus(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if !status[models.CategoryNature] || !status[models.CategoryService] || status[models.CategoryMindfulness] {
		t.Errorf("TodayStatus = %v", status)
	}

	st, err := a.UserWeeklyStats(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if st.DaysActive != 3 || st.TasksDoneTotal != 4 || st.Streak != 3 || st.DiaryEntries != 1 {
		t.Errorf("UserWeeklyStats = %+v", st)
	}
	if st.CategoriesDone[models.CategoryNature] != 3 {
		t.Errorf("nature = %d, want 3", st.CategoriesDone[models.CategoryNature])
	}

	group, err := a.GroupWeeklyStats(ctx)
	if err != nil || group.TotalUsersActive != 1 || group.TotalTasksDone != 4 {
		t.Errorf("GroupWeeklyStats = %+v, %v", group, err)
	}

	// Sweep at 00:05 the next day keeps only yesterday's rows.
	c.t = time.Date(2025, 5, 21, 0, 5, 0, 0, time.UTC)
	n, err := a.SweepExpiredActivity(ctx)
	if err != nil || n != 2 {
		t.Errorf("SweepExpiredActivity = %d, %v; want 2", n, err)
	}
}

func TestInvalidInputsWriteNothing(t *testing.T) {
	ctx := context.Background()
	a, _ := newApp(t, time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC))
	if _, err := a.AddOrTouchUser(ctx, 42, "Alan"); err != nil {
		t.Fatal(err)
	}

	if err := a.MarkDone(ctx, 42, "sleeping"); !errors.Is(err, apperrors.ErrInvalidCategory) {
		t.Errorf("MarkDone error = %v, want ErrInvalidCategory", err)
	}
	if _, err := a.AppendDiaryEntry(ctx, 42, " "); !errors.Is(err, apperrors.ErrEmptyEntry) {
		t.Errorf("AppendDiaryEntry error = %v, want ErrEmptyEntry", err)
	}
	err := a.UpdateUserLocation(ctx, 42, models.Location{City: "x", Lat: 100, Timezone: "UTC"})
	if !errors.Is(err, apperrors.ErrInvalidLocation) {
		t.Errorf("UpdateUserLocation error = %v, want ErrInvalidLocation", err)
	}

	st, err := a.UserWeeklyStats(ctx, 42)
	if err != nil || st.TasksDoneTotal != 0 || st.DiaryEntries != 0 {
		t.Errorf("UserWeeklyStats = %+v, %v; want empty", st, err)
	}
	entries, err := a.RecentEntries(ctx, 42, 0)
	if err != nil || len(entries) != 0 {
		t.Errorf("RecentEntries = %v, %v", entries, err)
	}
}

func TestMantrasAndPhase(t *testing.T) {
	ctx := context.Background()
	a, _ := newApp(t, time.Now())

	if _, err := a.RandomMantra(ctx); !apperrors.IsNotFound(err) {
		t.Errorf("RandomMantra before seed = %v, want not found", err)
	}

	n, err := a.SeedMantrasIfEmpty(ctx)
	if err != nil || n != len(catalog.Mantras()) {
		t.Fatalf("SeedMantrasIfEmpty = %d, %v", n, err)
	}
	if n, _ := a.SeedMantrasIfEmpty(ctx); n != 0 {
		t.Errorf("second seed inserted %d", n)
	}

	m, err := a.RandomMantraByCategory(ctx, catalog.MantraCategoryNature)
	if err != nil || m.Category != catalog.MantraCategoryNature {
		t.Errorf("RandomMantraByCategory = %+v, %v", m, err)
	}
	cats, err := a.MantraCategories(ctx)
	if err != nil || len(cats) == 0 {
		t.Errorf("MantraCategories = %v, %v", cats, err)
	}
	list, err := a.MantrasByCategory(ctx, catalog.MantraCategoryCheckpoint)
	if err != nil || len(list) == 0 {
		t.Errorf("MantrasByCategory = %v, %v", list, err)
	}

	if _, err := a.AddOrTouchUser(ctx, 1, "u"); err != nil {
		t.Fatal(err)
	}
	p, err := a.CurrentPhase(ctx, 1)
	if err != nil || p.Key != constants.DefaultPhase {
		t.Errorf("CurrentPhase = %+v, %v", p, err)
	}
	u, err := a.GetUser(ctx, 1)
	if err != nil || u.Timezone != constants.DefaultTimezone {
		t.Errorf("GetUser = %+v, %v", u, err)
	}
}
