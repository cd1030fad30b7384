package puzzle

// SelectionState names the two states of the selection machine.
type SelectionState int

const (
	SelectionIdle    SelectionState = iota // No tile selected
	SelectionPending                       // One tile selected, awaiting a partner
)

// String returns a human-readable state name.
func (s SelectionState) String() string {
	switch s {
	case SelectionIdle:
		return "idle"
	case SelectionPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Selection tracks which tile, if any, waits for a swap partner.
// It is the single source of truth for the highlighted tile.
type Selection struct {
	state SelectionState
	tile  Tile
}

// State returns the current selection state.
func (s Selection) State() SelectionState {
	return s.state
}

// Pending returns the selected tile and true when in SelectionPending.
func (s Selection) Pending() (Tile, bool) {
	if s.state != SelectionPending {
		return 0, false
	}
	return s.tile, true
}

func (s *Selection) pick(t Tile) {
	s.state = SelectionPending
	s.tile = t
}

func (s *Selection) clear() {
	s.state = SelectionIdle
	s.tile = 0
}
