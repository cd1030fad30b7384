package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreReopenKeepsSolves(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSolve(Solve{BoardID: "tileswap", Moves: 9}); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestMoves("tileswap")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 9 {
		t.Errorf("BestMoves() = %d after reopen, want 9", best)
	}
}

func TestSaveSolveAssignsRunID(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveSolve(Solve{
		BoardID:  "tileswap",
		Player:   "alice",
		Moves:    12,
		Duration: 42500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if len(runID) != 36 {
		t.Errorf("run id %q is not a UUID", runID)
	}

	got, err := store.SolveByRun(runID)
	if err != nil {
		t.Fatalf("SolveByRun() failed: %v", err)
	}
	if got == nil {
		t.Fatal("SolveByRun() returned nil")
	}
	if got.Player != "alice" || got.Moves != 12 || got.Duration != 42500*time.Millisecond {
		t.Errorf("SolveByRun() = %+v", got)
	}

	missing, err := store.SolveByRun("no-such-run")
	if err != nil || missing != nil {
		t.Errorf("SolveByRun(missing) = %v, %v; want nil, nil", missing, err)
	}
}

func TestSaveSolveRejectsDuplicatesAndBlankBoard(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSolve(Solve{Moves: 1}); err == nil {
		t.Error("SaveSolve() without a board should fail")
	}

	rec := Solve{RunID: "run-1", BoardID: "tileswap", Moves: 3}
	if _, err := store.SaveSolve(rec); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if _, err := store.SaveSolve(rec); err == nil {
		t.Error("saving the same run twice should fail")
	}
}

func TestBestSolvesOrdering(t *testing.T) {
	store := openTestStore(t)

	solves := []Solve{
		{BoardID: "tileswap", Player: "a", Moves: 14, Duration: 30 * time.Second},
		{BoardID: "tileswap", Player: "b", Moves: 10, Duration: 50 * time.Second},
		{BoardID: "tileswap", Player: "c", Moves: 10, Duration: 20 * time.Second},
		{BoardID: "tileswap", Player: "d", Moves: 22, Duration: 10 * time.Second},
		{BoardID: "tileswap_mini", Player: "e", Moves: 4, Duration: 5 * time.Second},
	}
	for _, s := range solves {
		if _, err := store.SaveSolve(s); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	best, err := store.BestSolves("tileswap", 3)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 solves with limit, got %d", len(best))
	}

	// Fewest moves first, ties broken by time.
	want := []string{"c", "b", "a"}
	for i, p := range want {
		if best[i].Player != p {
			t.Errorf("best[%d].Player = %q, want %q", i, best[i].Player, p)
		}
	}

	mini, err := store.BestSolves("tileswap_mini", 0)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(mini) != 1 {
		t.Errorf("Expected 1 mini solve, got %d", len(mini))
	}
}

func TestBestMoves(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestMoves("tileswap")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an unsolved board, got %d", best)
	}

	for _, m := range []int{18, 11, 15} {
		store.SaveSolve(Solve{BoardID: "tileswap", Moves: m}) //nolint:errcheck
	}

	best, err = store.BestMoves("tileswap")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 11 {
		t.Errorf("BestMoves() = %d, want 11", best)
	}
}

func TestClearSolves(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(Solve{BoardID: "tileswap", Moves: 10})       //nolint:errcheck
	store.SaveSolve(Solve{BoardID: "tileswap", Moves: 12})       //nolint:errcheck
	store.SaveSolve(Solve{BoardID: "tileswap_large", Moves: 30}) //nolint:errcheck

	if err := store.ClearSolves("tileswap"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	classic, _ := store.BestSolves("tileswap", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic solves after clear, got %d", len(classic))
	}
	large, _ := store.BestSolves("tileswap_large", 10)
	if len(large) != 1 {
		t.Error("Other boards should not be affected by clearing one board")
	}
}

func TestBoardStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetBoardStats("tileswap")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if empty.Solves != 0 || empty.BestMoves != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for an unsolved board = %+v", empty)
	}

	store.SaveSolve(Solve{BoardID: "tileswap", Moves: 10, Duration: 40 * time.Second})    //nolint:errcheck
	store.SaveSolve(Solve{BoardID: "tileswap", Moves: 20, Duration: 25 * time.Second})    //nolint:errcheck
	store.SaveSolve(Solve{BoardID: "tileswap_mini", Moves: 6, Duration: 9 * time.Second}) //nolint:errcheck

	stats, err := store.GetBoardStats("tileswap")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if stats.Solves != 2 || stats.BestMoves != 10 || stats.AvgMoves != 15 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Fastest != 25*time.Second {
		t.Errorf("Fastest = %v, want 25s", stats.Fastest)
	}

	all, err := store.GetAllBoardStats()
	if err != nil {
		t.Fatalf("GetAllBoardStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 boards, got %d", len(all))
	}
	if all["tileswap_mini"].BestMoves != 6 {
		t.Errorf("mini stats = %+v", all["tileswap_mini"])
	}
}
