package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(Run{GameID: "powercrisis", Level: "default", Difficulty: "normal", Score: 42, Seconds: 42.5}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("powercrisis")
	if err != nil {
		t.Fatal(err)
	}
	if high != 42 {
		t.Errorf("HighScore() = %d, expected 42", high)
	}
}

func TestSaveRunAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "powercrisis", Level: "default", Difficulty: "normal", Score: 100, Seconds: 100.2, Repairs: 4, Failures: 5},
		{GameID: "powercrisis", Level: "bunker", Difficulty: "hard", Score: 50, Seconds: 50.9, Repairs: 1, Failures: 2, Player: "alice"},
		{GameID: "powercrisis", Level: "default", Difficulty: "easy", Score: 200, Seconds: 200.1, Restocks: 3, Hazards: 120},
		{GameID: "powercrisis_manual", Level: "default", Difficulty: "normal", Score: 500, Seconds: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("powercrisis", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Hazards != 120 || top[0].Restocks != 3 {
		t.Errorf("counters lost: %+v", top[0])
	}
	if top[1].Player != "local" {
		t.Errorf("default player = %q, expected local", top[1].Player)
	}
	if top[2].Player != "alice" || top[2].Level != "bunker" {
		t.Errorf("run fields lost: %+v", top[2])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	limited, err := store.TopRuns("powercrisis", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		if _, err := store.SaveRun(Run{GameID: "powercrisis", Level: "default", Difficulty: "normal", Score: i}); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].Score != 3 || recent[1].Score != 2 {
		t.Errorf("RecentRuns() = %v", recent)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("powercrisis")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "powercrisis", Level: "default", Difficulty: "normal", Score: 10})
	store.SaveRun(Run{GameID: "powercrisis_manual", Level: "default", Difficulty: "normal", Score: 20})

	if err := store.ClearScores("powercrisis"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runs, _ := store.TopRuns("powercrisis", 10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	high, _ := store.HighScore("powercrisis")
	if high != 0 {
		t.Errorf("Expected no scores after clear, got %d", high)
	}

	other, _ := store.TopRuns("powercrisis_manual", 10)
	if len(other) != 1 {
		t.Errorf("Other game's runs should survive, got %d", len(other))
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "powercrisis", Level: "default", Difficulty: "normal", Score: 10, Repairs: 1, Failures: 3})
	store.SaveRun(Run{GameID: "powercrisis", Level: "default", Difficulty: "normal", Score: 30, Repairs: 2, Failures: 4})

	stats, err := store.GetGameStats("powercrisis")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalRepairs != 3 || stats.TotalFailures != 7 {
		t.Errorf("totals = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatal(err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}
