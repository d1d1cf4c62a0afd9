package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEmptyDatabaseLoadsZeroProgress(t *testing.T) {
	store := newTestStore(t)

	p, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.HighScore != 0 || p.TotalCoins != 0 {
		t.Errorf("empty database progress = %+v, expected zeros", p)
	}
}

func TestProgressAggregatesRuns(t *testing.T) {
	store := newTestStore(t)

	runs := []struct {
		score, coins int
	}{
		{100, 3},
		{250, 7},
		{80, 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.score, r.coins, 12.5); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	p, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.HighScore != 250 {
		t.Errorf("HighScore = %d, expected 250", p.HighScore)
	}
	if p.TotalCoins != 11 {
		t.Errorf("TotalCoins = %d, expected 11", p.TotalCoins)
	}
}

func TestTopRunsOrderedByScore(t *testing.T) {
	store := newTestStore(t)

	for _, score := range []int{50, 300, 120, 300, 10} {
		if _, err := store.SaveRun(score, 0, 1); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopRuns returned %d runs, expected 3", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Errorf("runs out of order: %d before %d", top[i-1].Score, top[i].Score)
		}
	}
	if top[0].Score != 300 {
		t.Errorf("best run = %d, expected 300", top[0].Score)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := newTestStore(t)

	var lastID int64
	for _, score := range []int{10, 20, 30} {
		id, err := store.SaveRun(score, 0, 1)
		if err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
		lastID = id
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentRuns returned %d runs, expected 2", len(recent))
	}
	if recent[0].ID != lastID {
		t.Errorf("first recent run ID = %d, expected newest %d", recent[0].ID, lastID)
	}
}

func TestStatsAggregation(t *testing.T) {
	store := newTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats on empty store failed: %v", err)
	}
	if stats.RunCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(100, 2, 10)
	store.SaveRun(200, 4, 20)

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.RunCount != 2 {
		t.Errorf("RunCount = %d, expected 2", stats.RunCount)
	}
	if stats.HighScore != 200 {
		t.Errorf("HighScore = %d, expected 200", stats.HighScore)
	}
	if stats.AvgScore != 150 {
		t.Errorf("AvgScore = %v, expected 150", stats.AvgScore)
	}
	if stats.TotalCoins != 6 {
		t.Errorf("TotalCoins = %d, expected 6", stats.TotalCoins)
	}
}

func TestClearRuns(t *testing.T) {
	store := newTestStore(t)

	store.SaveRun(100, 1, 5)
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns failed: %v", err)
	}

	p, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.HighScore != 0 || p.TotalCoins != 0 {
		t.Errorf("progress after clear = %+v, expected zeros", p)
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "runs.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open with nested path failed: %v", err)
	}
	store.Close()
}
