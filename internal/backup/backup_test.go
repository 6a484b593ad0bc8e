package backup

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/storage/sqlite"
)

// setupStore returns an initialized nykha database with one user in it.
func setupStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nykha.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.TouchUser(context.Background(), 1, "first", time.Now(), models.UserDefaults{}); err != nil {
		t.Fatal(err)
	}
	return store, dbPath
}

func steppingClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Hour)
		return t
	}
}

func countUsers(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		t.Fatalf("failed to query %s: %v", path, err)
	}
	return n
}

func TestCreate(t *testing.T) {
	_, dbPath := setupStore(t)

	mgr := NewManager(dbPath)
	info, err := mgr.Create(context.Background())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if filepath.Dir(info.Path) != mgr.Dir() || info.Size == 0 {
		t.Errorf("info = %+v", info)
	}
	if n := countUsers(t, info.Path); n != 1 {
		t.Errorf("backup has %d users, want 1", n)
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(context.Background()); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestCreateSameSecondGetsUniqueName(t *testing.T) {
	_, dbPath := setupStore(t)
	fixed := time.Date(2025, 5, 20, 0, 5, 0, 0, time.UTC)
	mgr := NewManager(dbPath, WithClock(func() time.Time { return fixed }))

	a, err := mgr.Create(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := mgr.Create(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if a.Path == b.Path {
		t.Fatalf("backups share a path: %s", a.Path)
	}

	list, err := mgr.List()
	if err != nil || len(list) != 2 {
		t.Fatalf("List = %d entries, %v", len(list), err)
	}
	if !list[0].Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", list[0].Timestamp, fixed)
	}
	if list[0].Path != b.Path {
		t.Errorf("newest = %s, want %s", list[0].Path, b.Path)
	}
}

func TestRotation(t *testing.T) {
	_, dbPath := setupStore(t)
	mgr := NewManager(dbPath, WithKeep(3), WithClock(steppingClock(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))))

	var last Info
	for i := 0; i < 5; i++ {
		info, err := mgr.Create(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		last = info
	}

	list, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("kept %d backups, want 3", len(list))
	}
	if list[0].Path != last.Path {
		t.Errorf("newest = %s, want %s", list[0].Path, last.Path)
	}
}

func TestListSkipsForeignFiles(t *testing.T) {
	_, dbPath := setupStore(t)
	mgr := NewManager(dbPath)
	if err := os.MkdirAll(mgr.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "nykha-garbage.db", "other-20250101-000000.db"} {
		if err := os.WriteFile(filepath.Join(mgr.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	list, err := mgr.List()
	if err != nil || len(list) != 0 {
		t.Errorf("List = %v, %v; want empty", list, err)
	}
}

func TestListWithoutDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nykha.db"))
	list, err := mgr.List()
	if err != nil || len(list) != 0 {
		t.Errorf("List = %v, %v", list, err)
	}
}

func TestRestore(t *testing.T) {
	store, dbPath := setupStore(t)
	ctx := context.Background()
	mgr := NewManager(dbPath, WithClock(steppingClock(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))))

	snap, err := mgr.Create(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.TouchUser(ctx, 2, "second", time.Now(), models.UserDefaults{}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	safety, err := mgr.Restore(ctx, snap.Path)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if n := countUsers(t, dbPath); n != 1 {
		t.Errorf("restored database has %d users, want 1", n)
	}
	if n := countUsers(t, safety.Path); n != 2 {
		t.Errorf("safety backup has %d users, want 2", n)
	}
}

func TestRestoreRejectsForeignDatabase(t *testing.T) {
	_, dbPath := setupStore(t)
	foreign := filepath.Join(t.TempDir(), "foreign.db")
	db, err := sql.Open("sqlite", foreign)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("CREATE TABLE t (id INTEGER)"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	mgr := NewManager(dbPath)
	if _, err := mgr.Restore(context.Background(), foreign); err == nil {
		t.Error("restoring a non-nykha database should fail")
	}
	if _, err := mgr.Restore(context.Background(), filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("restoring a missing file should fail")
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"nykha-20250520-000500.db", true},
		{"nykha-20250520-000500-3.db", true},
		{"nykha-20250520-000500x3.db", false},
		{"nykha-20250520.db", false},
		{"backup-20250520-000500.db", false},
	}
	for _, tt := range tests {
		if _, _, ok := parseName(tt.name); ok != tt.ok {
			t.Errorf("parseName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}
