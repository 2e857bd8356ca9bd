package storage

import (
	"path/filepath"
	"sync"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Player: "local", Score: 12}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	high, err := reopened.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("file ledger should keep its runs, high score = %d", high)
	}
}

func TestStoreMemoryIsPrivate(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveRun(Run{Player: "a", Score: 300})

	high, _ := b.HighScore()
	if high != 0 {
		t.Errorf("separate in-memory ledgers should not share runs, got %d", high)
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 200} {
		if _, err := store.SaveRun(Run{Player: "p", Score: score, Distance: float64(score) * 40}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(runs))
	}

	want := []int{200, 200, 100, 50}
	for i, r := range runs {
		if r.Score != want[i] {
			t.Errorf("runs[%d].Score = %d, expected %d", i, r.Score, want[i])
		}
	}
	if runs[0].ID > runs[1].ID {
		t.Error("ties should list the earlier run first")
	}
	if runs[2].Distance != 4000 {
		t.Errorf("distance not stored: %g", runs[2].Distance)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveRun(Run{Player: "p", Score: (i + 1) * 100})
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{0, 10},
		{-1, 10},
		{50, 15},
	}

	for _, tt := range tests {
		runs, err := store.TopRuns(tt.limit)
		if err != nil {
			t.Fatalf("TopRuns(%d) failed: %v", tt.limit, err)
		}
		if len(runs) != tt.want {
			t.Errorf("TopRuns(%d) returned %d runs, expected %d", tt.limit, len(runs), tt.want)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an empty ledger, got %d", high)
	}

	store.SaveRun(Run{Player: "a", Score: 100})
	store.SaveRun(Run{Player: "b", Score: 300})
	store.SaveRun(Run{Player: "a", Score: 200})

	high, _ = store.HighScore()
	if high != 300 {
		t.Errorf("Expected 300, got %d", high)
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: -1}); err == nil {
		t.Error("expected an error for a negative score")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "a", Score: 100, DurationMs: 1000, Jumps: 3})
	store.SaveRun(Run{Player: "a", Score: 300, DurationMs: 2000, Jumps: 5})
	store.SaveRun(Run{Player: "b", Score: 50, DurationMs: 500, Jumps: 1})

	tests := []struct {
		player string
		runs   int
		high   int
		avg    float64
		ms     float64
		jumps  int
	}{
		{"a", 2, 300, 200, 3000, 8},
		{"b", 1, 50, 50, 500, 1},
		{"", 3, 300, 150, 3500, 9},
		{"nobody", 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run("player="+tt.player, func(t *testing.T) {
			s, err := store.Stats(tt.player)
			if err != nil {
				t.Fatalf("Stats() failed: %v", err)
			}
			if s.Runs != tt.runs || s.HighScore != tt.high || s.AvgScore != tt.avg || s.TotalMs != tt.ms || s.Jumps != tt.jumps {
				t.Errorf("Stats(%q) = %+v", tt.player, s)
			}
			if tt.runs > 0 && s.LastRun.IsZero() {
				t.Error("LastRun should be set")
			}
			if tt.runs == 0 && !s.LastRun.IsZero() {
				t.Error("LastRun should be zero without runs")
			}
		})
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "a", Score: 100})
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after Clear, got %d", len(runs))
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.SaveRun(Run{Player: "ssh", Score: i}); err != nil {
				t.Errorf("SaveRun() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	s, err := store.Stats("ssh")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if s.Runs != 8 || s.HighScore != 7 {
		t.Errorf("concurrent saves lost runs: %+v", s)
	}
}
