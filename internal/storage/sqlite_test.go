package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openStore(t)

	runs := []Run{
		{RunID: "a", Level: "level-one", Kills: 7, Outcome: "lost", Ticks: 900, Seed: 1},
		{RunID: "b", Level: "level-three", Kills: 31, Outcome: "won", Ticks: 5000, Seed: 2},
		{RunID: "c", Level: "level-two", Kills: 12, Outcome: "lost", Ticks: 2000, Seed: 3},
		{RunID: "d", Level: "level-two", Kills: 12, Outcome: "abandoned", Ticks: 1500, Seed: 4},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", r.RunID, err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	// Kills descending, fewer ticks first on ties
	expected := []string{"b", "d", "c", "a"}
	for i, id := range expected {
		if top[i].RunID != id {
			t.Errorf("TopRuns()[%d] = %s, expected %s", i, top[i].RunID, id)
		}
	}
	if top[0].Level != "level-three" || top[0].Outcome != "won" || top[0].Ticks != 5000 || top[0].Seed != 2 {
		t.Errorf("TopRuns()[0] = %+v, fields not round-tripped", top[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{RunID: fmt.Sprintf("run-%d", i), Level: "level-one", Kills: (i + 1) * 10, Outcome: "lost"})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Kills != 50 || top[1].Kills != 40 || top[2].Kills != 30 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreSaveRunTwiceUpdates(t *testing.T) {
	store := openStore(t)

	store.SaveRun(Run{RunID: "same", Level: "level-one", Kills: 3, Outcome: "abandoned"})
	if _, err := store.SaveRun(Run{RunID: "same", Level: "level-two", Kills: 9, Outcome: "lost"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].Kills != 9 || runs[0].Level != "level-two" {
		t.Errorf("Run = %+v, expected the later record", runs[0])
	}
}

func TestStoreSaveRunRequiresID(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(Run{Level: "level-one"}); err == nil {
		t.Error("SaveRun() without run id succeeded, expected error")
	}
}

func TestStoreBestKills(t *testing.T) {
	store := openStore(t)

	best, err := store.BestKills()
	if err != nil {
		t.Fatalf("BestKills() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty history, got %d", best)
	}

	store.SaveRun(Run{RunID: "a", Level: "level-one", Kills: 10, Outcome: "lost"})
	store.SaveRun(Run{RunID: "b", Level: "level-two", Kills: 30, Outcome: "lost"})
	store.SaveRun(Run{RunID: "c", Level: "level-one", Kills: 20, Outcome: "lost"})

	best, err = store.BestKills()
	if err != nil {
		t.Fatalf("BestKills() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("Expected best kills of 30, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openStore(t)

	store.SaveRun(Run{RunID: "a", Level: "level-three", Kills: 30, Outcome: "won"})
	store.SaveRun(Run{RunID: "b", Level: "level-one", Kills: 10, Outcome: "lost"})

	stats, err := store.Stats("won")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Wins != 1 || stats.BestKills != 30 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.AvgKills != 20 {
		t.Errorf("AvgKills = %v, expected 20", stats.AvgKills)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openStore(t)

	store.SaveRun(Run{RunID: "a", Level: "level-one", Kills: 1, Outcome: "lost"})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
