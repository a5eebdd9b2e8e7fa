package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score, level, slots int
	}{
		{120, 1, 2},
		{560, 3, 4},
		{310, 2, 0},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.score, r.level, r.slots, 42); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopRuns returned %d entries, want 2", len(top))
	}
	if top[0].Score != 560 || top[1].Score != 310 {
		t.Errorf("top scores = %d, %d; want 560, 310", top[0].Score, top[1].Score)
	}
	if top[0].Level != 3 || top[0].SlotsFilled != 4 {
		t.Errorf("best run = level %d slots %d, want level 3 slots 4", top[0].Level, top[0].SlotsFilled)
	}
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if hs != 0 {
		t.Errorf("HighScore on empty log = %d, want 0", hs)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(100, 1, 3, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(900, 4, 2, 2); err != nil {
		t.Fatal(err)
	}

	st, err := store.GameStats()
	if err != nil {
		t.Fatalf("GameStats: %v", err)
	}
	if st.Runs != 2 {
		t.Errorf("Runs = %d, want 2", st.Runs)
	}
	if st.BestScore != 900 {
		t.Errorf("BestScore = %d, want 900", st.BestScore)
	}
	if st.BestLevel != 4 {
		t.Errorf("BestLevel = %d, want 4", st.BestLevel)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(50, 1, 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns: %v", err)
	}

	st, err := store.GameStats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Runs != 0 {
		t.Errorf("Runs after clear = %d, want 0", st.Runs)
	}
}

func TestFileBackedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frogger", "scores.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q): %v", path, err)
	}
	if _, err := store.SaveRun(75, 1, 0, 7); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	store.Close()

	// Reopen: the file-backed log survives the connection.
	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	hs, err := store.HighScore()
	if err != nil {
		t.Fatal(err)
	}
	if hs != 75 {
		t.Errorf("HighScore after reopen = %d, want 75", hs)
	}
}
