package puzzle

import (
	"fmt"
	"testing"
)

func letters(n int) Arrangement {
	a := make(Arrangement, n)
	for i := range n {
		a[i] = Piece(fmt.Sprintf("p%d", i))
	}
	return a
}

func TestSwapIsSelfInverse(t *testing.T) {
	for n := 2; n <= 6; n++ {
		s := NewStore(letters(n), NewRandShuffler(int64(n)))
		for a := range n {
			for b := range n {
				if a == b {
					continue
				}
				before := s.Current()
				cmd := SwapCommand{A: Tile(a), B: Tile(b)}

				cmd.Apply(s)
				if s.Current().Equal(before) {
					t.Errorf("n=%d swap(%d,%d) did not change the arrangement", n, a, b)
				}
				cmd.Inverse().Apply(s)
				if !s.Current().Equal(before) {
					t.Errorf("n=%d swap(%d,%d) twice = %v, want %v", n, a, b, s.Current(), before)
				}
			}
		}
	}
}

func TestSwapLeavesTargetAlone(t *testing.T) {
	target := letters(4)
	s := NewStore(target, Fixed(letters(4)))

	s.Swap(0, 3)
	if !s.Target().Equal(target) {
		t.Errorf("Target() = %v, want %v", s.Target(), target)
	}
	if s.IsSolved() {
		t.Error("store should not be solved after a swap from the target")
	}
}

func TestSwapIgnoresInvalidTiles(t *testing.T) {
	s := NewStore(letters(3), Fixed(letters(3)))
	s.Swap(-1, 2)
	s.Swap(0, 3)
	if !s.IsSolved() {
		t.Errorf("invalid swap changed the board: %v", s.Current())
	}
	if s.PieceAt(7) != "" {
		t.Errorf("PieceAt(7) = %q, want empty", s.PieceAt(7))
	}
}

func TestResetToInitialShuffled(t *testing.T) {
	start := Arrangement{"c", "a", "b"}
	s := NewStore(Arrangement{"a", "b", "c"}, Fixed(start))

	s.Swap(0, 1)
	s.Swap(1, 2)
	s.ResetToInitialShuffled()

	if !s.Current().Equal(start) {
		t.Errorf("Current() = %v, want %v", s.Current(), start)
	}
}

func TestStoreCopiesAreIndependent(t *testing.T) {
	s := NewStore(letters(3), Fixed(letters(3)))
	cur := s.Current()
	cur[0] = "mutated"
	if s.PieceAt(0) == "mutated" {
		t.Error("Current() exposed internal state")
	}
}

func TestHistoryLockStep(t *testing.T) {
	s := NewStore(letters(4), Fixed(letters(4)))
	var h History

	h.Record(SwapCommand{A: 0, B: 1})
	h.Record(SwapCommand{A: 2, B: 3})
	if h.UndoDepth() != 2 || len(h.Log()) != 2 {
		t.Fatalf("after two records: undo=%d log=%d", h.UndoDepth(), len(h.Log()))
	}

	cmd, ok := h.Undo(s)
	if !ok || cmd != (SwapCommand{A: 2, B: 3}) {
		t.Errorf("Undo() = %v, %v; want {2 3}, true", cmd, ok)
	}
	if h.UndoDepth() != 1 || len(h.Log()) != 1 {
		t.Errorf("after undo: undo=%d log=%d, want 1/1", h.UndoDepth(), len(h.Log()))
	}
}

func TestHistoryClearUndoKeepsLog(t *testing.T) {
	s := NewStore(letters(4), Fixed(letters(4)))
	var h History
	h.Record(SwapCommand{A: 0, B: 1})
	h.Record(SwapCommand{A: 1, B: 2})

	h.ClearUndo()
	if h.UndoDepth() != 0 {
		t.Errorf("UndoDepth() = %d, want 0", h.UndoDepth())
	}
	if len(h.Log()) != 2 {
		t.Errorf("Log() length = %d, want 2", len(h.Log()))
	}
	if _, ok := h.Undo(s); ok {
		t.Error("Undo() after ClearUndo should report nothing to undo")
	}
	if len(h.Log()) != 2 {
		t.Error("empty undo must not touch the log")
	}

	h.Reset()
	if len(h.Log()) != 0 {
		t.Errorf("Reset() left %d log entries", len(h.Log()))
	}
}
