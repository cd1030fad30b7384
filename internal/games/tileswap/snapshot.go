package tileswap

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSelecting   GameStateType = "selecting"
	StateReplaying   GameStateType = "replaying"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Board       string
	Attempt     int
	Tiles       []string
	Cursor      int
	Highlight   int // -1 when nothing is selected
	Moves       int
	UndoDepth   int
	ReplayDone  int
	ReplayTotal int
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.puzzle.Replaying():
		state = StateReplaying
	case g.highlight != noTile:
		state = StateSelecting
	case g.puzzle.IsSolved():
		state = StateSolved
	}

	cur := g.puzzle.Current()
	tiles := make([]string, len(cur))
	for i, p := range cur {
		tiles[i] = string(p)
	}
	done, total := g.puzzle.ReplayProgress()

	return Snapshot{
		Tick:        g.tick,
		Board:       g.board.ID,
		Attempt:     g.attempt,
		Tiles:       tiles,
		Cursor:      g.cursor,
		Highlight:   int(g.highlight),
		Moves:       g.puzzle.Moves(),
		UndoDepth:   g.puzzle.UndoDepth(),
		ReplayDone:  done,
		ReplayTotal: total,
		State:       state,
	}
}
