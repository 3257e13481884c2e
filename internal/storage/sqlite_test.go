package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openMemory(t)

	for _, score := range []int{100, 50, 200, 100} {
		if _, err := store.SaveRun(Run{Backend: "tui", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	want := []int{200, 100, 100, 50}
	if len(runs) != len(want) {
		t.Fatalf("Expected %d runs, got %d", len(want), len(runs))
	}
	for i, score := range want {
		if runs[i].Score != score {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, score)
		}
	}
	// Equal scores keep journal order
	if runs[1].ID > runs[2].ID {
		t.Errorf("tie order: id %d before id %d", runs[1].ID, runs[2].ID)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openMemory(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(Run{
			Backend:  "tcell",
			Seed:     int64(i),
			Score:    i,
			Ticks:    i * 60,
			Duration: time.Duration(i) * time.Second,
			EndedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	got := runs[0]
	if got.Score != 4 || got.Seed != 4 || got.Ticks != 240 || got.Backend != "tcell" {
		t.Errorf("newest run = %+v", got)
	}
	if got.Duration != 4*time.Second {
		t.Errorf("Duration = %v, expected 4s", got.Duration)
	}
	if !got.EndedAt.Equal(base.Add(4 * time.Minute)) {
		t.Errorf("EndedAt = %v, expected %v", got.EndedAt, base.Add(4*time.Minute))
	}
	if runs[2].Score != 2 {
		t.Errorf("oldest returned run score = %d, expected 2", runs[2].Score)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openMemory(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("empty journal best = %d, expected 0", best)
	}

	store.SaveRun(Run{Backend: "tui", Score: 12})
	store.SaveRun(Run{Backend: "tui", Score: 31})
	store.SaveRun(Run{Backend: "tui", Score: 7})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 31 {
		t.Errorf("BestScore() = %d, expected 31", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openMemory(t)
	last := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)

	store.SaveRun(Run{Backend: "tui", Score: 10, Ticks: 600, EndedAt: last.Add(-time.Hour)})
	store.SaveRun(Run{Backend: "window", Score: 20, Ticks: 900, EndedAt: last})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Runs != 2 || stats.BestScore != 20 || stats.TotalTicks != 1500 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 15 {
		t.Errorf("AvgScore = %v, expected 15", stats.AvgScore)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, last)
	}
}

func TestStoreClear(t *testing.T) {
	store := openMemory(t)
	store.SaveRun(Run{Backend: "tui", Score: 3})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected empty journal, got %d runs", len(runs))
	}
}

func TestStoreMemoryIsPrivate(t *testing.T) {
	a := openMemory(t)
	b := openMemory(t)

	a.SaveRun(Run{Backend: "tui", Score: 99})

	best, err := b.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("separate in-memory journals share data: best = %d", best)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveRun(Run{Backend: "tui", Score: 42})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 42 {
		t.Errorf("BestScore() = %d after reopen, expected 42", best)
	}
}
