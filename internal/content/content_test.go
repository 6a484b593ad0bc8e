package content

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

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	store := storagetest.NewSQLite(t)
	m := NewMantras(store)

	seed := catalog.Mantras()
	n, err := m.SeedIfEmpty(ctx, seed)
	if err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}
	if n != len(seed) {
		t.Errorf("inserted %d, want %d", n, len(seed))
	}

	n, err = m.SeedIfEmpty(ctx, seed)
	if err != nil || n != 0 {
		t.Errorf("second SeedIfEmpty = %d, %v; want no-op", n, err)
	}

	count, err := store.CountMantras(ctx)
	if err != nil || count != len(seed) {
		t.Errorf("CountMantras = %d, %v; want %d", count, err, len(seed))
	}
}

func TestSeedIfEmptySkipsNonEmptyTable(t *testing.T) {
	ctx := context.Background()
	store := storagetest.NewSQLite(t)
	if _, err := store.InsertMantrasIfAbsent(ctx, []models.Mantra{{Category: "x", Text: "existing"}}); err != nil {
		t.Fatalf("InsertMantrasIfAbsent failed: %v", err)
	}

	n, err := NewMantras(store).SeedIfEmpty(ctx, catalog.Mantras())
	if err != nil || n != 0 {
		t.Errorf("SeedIfEmpty on non-empty table = %d, %v", n, err)
	}
}

func TestRandomByCategoryFallsBack(t *testing.T) {
	ctx := context.Background()
	store := storagetest.NewSQLite(t)
	m := NewMantras(store)

	if _, err := m.RandomByCategory(ctx, "anything"); !apperrors.IsNotFound(err) {
		t.Errorf("empty catalog error = %v, want not found", err)
	}

	if _, err := store.InsertMantrasIfAbsent(ctx, []models.Mantra{
		{Category: "nature", Text: "n1"},
		{Category: "collective", Text: "c1"},
	}); err != nil {
		t.Fatalf("InsertMantrasIfAbsent failed: %v", err)
	}

	got, err := m.RandomByCategory(ctx, "collective")
	if err != nil || got.Text != "c1" {
		t.Errorf("RandomByCategory(collective) = %+v, %v", got, err)
	}

	got, err = m.RandomByCategory(ctx, "unknown")
	if err != nil {
		t.Fatalf("fallback failed: %v", err)
	}
	if got.Text != "n1" && got.Text != "c1" {
		t.Errorf("fallback returned %+v", got)
	}

	cats, err := m.Categories(ctx)
	if err != nil || len(cats) != 2 {
		t.Errorf("Categories = %v, %v", cats, err)
	}
	nature, err := m.ByCategory(ctx, "nature")
	if err != nil || len(nature) != 1 {
		t.Errorf("ByCategory = %v, %v", nature, err)
	}
}

func TestDiaryAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	store := storagetest.NewSQLite(t)
	now := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	if _, err := store.TouchUser(ctx, 42, "u", now, models.UserDefaults{}); err != nil {
		t.Fatalf("TouchUser failed: %v", err)
	}

	clock := now
	d := NewDiary(store, func() time.Time { return clock })

	for _, text := range []string{"one", "  two  ", "three"} {
		clock = clock.Add(time.Minute)
		if _, err := d.Append(ctx, 42, text); err != nil {
			t.Fatalf("Append(%q) failed: %v", text, err)
		}
	}

	got, err := d.Recent(ctx, 42, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 || got[0].Text != "three" || got[1].Text != "  two  " {
		t.Errorf("Recent(2) = %+v", got)
	}

	all, err := d.Recent(ctx, 42, 0)
	if err != nil || len(all) != 3 {
		t.Errorf("Recent(0) = %d entries, %v", len(all), err)
	}
}

func TestDiaryRejectsBlank(t *testing.T) {
	d := NewDiary(storagetest.NewSQLite(t), nil)
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := d.Append(context.Background(), 42, text); !errors.Is(err, apperrors.ErrEmptyEntry) {
			t.Errorf("Append(%q) error = %v, want ErrEmptyEntry", text, err)
		}
	}
}

func TestClampLimit(t *testing.T) {
	tests := map[int]int{
		-1:   constants.DefaultDiaryLimit,
		0:    constants.DefaultDiaryLimit,
		3:    3,
		1000: constants.MaxDiaryLimit,
	}
	for in, want := range tests {
		if got := clampLimit(in); got != want {
			t.Errorf("clampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}
