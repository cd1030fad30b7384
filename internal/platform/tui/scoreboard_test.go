package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-swap/internal/storage"
)

func TestScoreboardShowsBoardSolves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, s := range []storage.Solve{
		{BoardID: "tileswap", Player: "ann", Moves: 14, Duration: 61 * time.Second},
		{BoardID: "tileswap", Player: "bo", Moves: 11, Duration: 75 * time.Second},
		{BoardID: "tileswap_mini", Player: "cy", Moves: 5, Duration: 8 * time.Second},
	} {
		if _, err := store.SaveSolve(s); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30, "tileswap")
	if got := len(m.Solves()); got != 2 {
		t.Fatalf("Solves() = %d, want 2", got)
	}
	if m.Solves()[0].Player != "bo" {
		t.Errorf("best solve by %q, want bo", m.Solves()[0].Player)
	}
	if view := m.View(); !strings.Contains(view, "best 11 moves") {
		t.Errorf("stats line missing:\n%s", view)
	}

	// Clearing only affects the selected board.
	next, _ := m.Update(runeKey('X'))
	m = next.(ScoreboardModel)
	if len(m.Solves()) != 0 {
		t.Errorf("clear left %d solves", len(m.Solves()))
	}
	if mini, _ := store.BestSolves("tileswap_mini", 10); len(mini) != 1 {
		t.Error("clear touched another board")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20, "")
	if view := m.View(); !strings.Contains(view, "No solves recorded yet") {
		t.Errorf("empty message missing:\n%s", view)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{8 * time.Second, "0:08.0"},
		{61500 * time.Millisecond, "1:01.5"},
		{125*time.Second + 40*time.Millisecond, "2:05.0"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
