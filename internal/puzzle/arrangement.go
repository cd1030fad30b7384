// Package puzzle implements the tile-swap puzzle core: shuffle, selection,
// swap/undo history, solved detection and timed replay.
// It has no knowledge of rendering or input devices; the presentation layer
// drives it through the On* entry points and Tick, and observes it through
// events.
package puzzle

// Tile identifies a grid position (0..N-1). Fixed for the puzzle's lifetime.
type Tile int

// Piece is an opaque image identifier.
type Piece string

// Arrangement is an ordered sequence of pieces indexed by tile.
type Arrangement []Piece

// Clone returns an independent copy of the arrangement.
func (a Arrangement) Clone() Arrangement {
	if a == nil {
		return nil
	}
	out := make(Arrangement, len(a))
	copy(out, a)
	return out
}

// Equal reports whether both arrangements hold the same piece on every tile.
func (a Arrangement) Equal(b Arrangement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Store holds the target arrangement, the current arrangement and the
// shuffled start used by replay.
type Store struct {
	target  Arrangement
	current Arrangement
	initial Arrangement
}

// NewStore records target and shuffles a copy of it into the current
// arrangement. The shuffled result is kept as the replay start.
func NewStore(target Arrangement, sh Shuffler) *Store {
	s := &Store{target: target.Clone()}
	s.reshuffle(sh)
	return s
}

// reshuffle draws a fresh start position from the target.
func (s *Store) reshuffle(sh Shuffler) {
	s.current = sh.Shuffle(s.target.Clone())
	s.initial = s.current.Clone()
}

// Len returns the number of tiles.
func (s *Store) Len() int {
	return len(s.target)
}

// Valid reports whether t addresses a tile of this store.
func (s *Store) Valid(t Tile) bool {
	return t >= 0 && int(t) < len(s.target)
}

// Swap exchanges the pieces on tiles a and b.
// Callers guarantee a != b and both are valid; invalid input is ignored.
func (s *Store) Swap(a, b Tile) {
	if !s.Valid(a) || !s.Valid(b) {
		return
	}
	s.current[a], s.current[b] = s.current[b], s.current[a]
}

// PieceAt returns the piece currently on tile t.
func (s *Store) PieceAt(t Tile) Piece {
	if !s.Valid(t) {
		return ""
	}
	return s.current[t]
}

// IsSolved reports whether every tile holds its target piece.
func (s *Store) IsSolved() bool {
	return s.current.Equal(s.target)
}

// ResetToInitialShuffled restores the shuffled start position.
func (s *Store) ResetToInitialShuffled() {
	s.current = s.initial.Clone()
}

// Current returns a copy of the current arrangement.
func (s *Store) Current() Arrangement {
	return s.current.Clone()
}

// Target returns a copy of the target arrangement.
func (s *Store) Target() Arrangement {
	return s.target.Clone()
}

// Initial returns a copy of the shuffled start position.
func (s *Store) Initial() Arrangement {
	return s.initial.Clone()
}
