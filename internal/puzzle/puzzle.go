package puzzle

import "fmt"

// Options configures a Puzzle.
type Options struct {
	// Shuffler produces the start position. Defaults to a RandShuffler
	// seeded with 1.
	Shuffler Shuffler

	// Listener receives events. May be nil.
	Listener Listener

	// ReplayInterval is the number of ticks between two replay steps.
	// Values below 1 are treated as 1.
	ReplayInterval int
}

// Puzzle wires the permutation store, command history, selection state
// machine and replay scheduler together. All methods must be called from a
// single goroutine.
type Puzzle struct {
	store     *Store
	history   History
	selection Selection
	replay    replay
	shuffler  Shuffler
	listener  Listener
	interval  int
}

// New creates a puzzle whose solved configuration is target and whose
// current arrangement is a shuffled copy of it.
func New(target Arrangement, opts Options) (*Puzzle, error) {
	if len(target) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 pieces, got %d", ErrInvalidArrangement, len(target))
	}
	seen := make(map[Piece]bool, len(target))
	for _, piece := range target {
		if seen[piece] {
			return nil, fmt.Errorf("%w: duplicate piece %q", ErrInvalidArrangement, piece)
		}
		seen[piece] = true
	}

	sh := opts.Shuffler
	if sh == nil {
		sh = NewRandShuffler(1)
	}
	var l Listener = nopListener{}
	if opts.Listener != nil {
		l = opts.Listener
	}

	return &Puzzle{
		store:    NewStore(target, sh),
		shuffler: sh,
		listener: l,
		interval: max(opts.ReplayInterval, 1),
	}, nil
}

// SetListener replaces the event listener. nil disables notifications.
func (p *Puzzle) SetListener(l Listener) {
	if l == nil {
		l = nopListener{}
	}
	p.listener = l
}

// OnTileClicked feeds a tile click into the selection state machine.
//
//	Idle         + click t       -> Pending(t), highlight t
//	Pending(t)   + click t       -> Idle, unhighlight t
//	Pending(t)   + click u (u≠t) -> swap(t, u), record, Idle, unhighlight t
//
// Clicks are ignored while a replay runs.
func (p *Puzzle) OnTileClicked(t Tile) error {
	if !p.store.Valid(t) {
		return fmt.Errorf("%w: %d", ErrInvalidTile, t)
	}
	if p.replay.active {
		return ErrReplayActive
	}

	sel, pending := p.selection.Pending()
	switch {
	case !pending:
		p.selection.pick(t)
		p.emit(TileHighlighted{Tile: t})

	case sel == t:
		p.selection.clear()
		p.emit(TileUnhighlighted{Tile: t})

	default:
		cmd := SwapCommand{A: sel, B: t}
		cmd.Apply(p.store)
		p.history.Record(cmd)
		p.emitSwap(cmd)

		p.selection.clear()
		p.emit(TileUnhighlighted{Tile: sel})

		if p.store.IsSolved() {
			p.emit(PuzzleSolved{Moves: p.Moves()})
		}
	}
	return nil
}

// OnUndoRequested reverts the most recent swap.
func (p *Puzzle) OnUndoRequested() (SwapCommand, error) {
	if p.replay.active {
		return SwapCommand{}, ErrReplayActive
	}
	if _, pending := p.selection.Pending(); pending {
		return SwapCommand{}, ErrSelectionPending
	}

	cmd, ok := p.history.Undo(p.store)
	if !ok {
		return SwapCommand{}, ErrNothingToUndo
	}
	p.emitSwap(cmd)

	if p.store.IsSolved() {
		p.emit(PuzzleSolved{Moves: p.Moves()})
	}
	return cmd, nil
}

// OnReplayRequested resets the board to its shuffled start, clears the
// undo stack and starts playing the replay log back. A pending selection
// is released first.
func (p *Puzzle) OnReplayRequested() error {
	if p.replay.active {
		return ErrReplayActive
	}

	p.releaseSelection()

	before := p.store.Current()
	p.store.ResetToInitialShuffled()
	p.emitChanged(before)
	p.history.ClearUndo()

	steps := p.history.Log()
	p.replay.start(steps, p.interval)
	p.emit(ReplayStarted{Steps: len(steps)})
	return nil
}

// OnReplayCancelRequested asks the running replay to fast-forward at its
// next step boundary. Returns false when no replay runs.
func (p *Puzzle) OnReplayCancelRequested() bool {
	if !p.replay.active {
		return false
	}
	p.replay.cancelled = true
	return true
}

// OnRestartRequested discards all progress and deals a fresh shuffle of
// the target. A running replay is dropped without a ReplayFinished event.
func (p *Puzzle) OnRestartRequested() {
	p.releaseSelection()
	p.replay = replay{}
	p.history.Reset()

	before := p.store.Current()
	p.store.reshuffle(p.shuffler)
	p.emitChanged(before)
	p.emit(PuzzleRestarted{})
}

func (p *Puzzle) releaseSelection() {
	if t, pending := p.selection.Pending(); pending {
		p.selection.clear()
		p.emit(TileUnhighlighted{Tile: t})
	}
}

// Len returns the number of tiles.
func (p *Puzzle) Len() int {
	return p.store.Len()
}

// Current returns a copy of the current arrangement.
func (p *Puzzle) Current() Arrangement {
	return p.store.Current()
}

// Target returns a copy of the solved arrangement.
func (p *Puzzle) Target() Arrangement {
	return p.store.Target()
}

// Initial returns a copy of the shuffled start position.
func (p *Puzzle) Initial() Arrangement {
	return p.store.Initial()
}

// PieceAt returns the piece on tile t, or "" for an invalid tile.
func (p *Puzzle) PieceAt(t Tile) Piece {
	return p.store.PieceAt(t)
}

// IsSolved reports whether the current arrangement equals the target.
func (p *Puzzle) IsSolved() bool {
	return p.store.IsSolved()
}

// Selection returns the selection state.
func (p *Puzzle) Selection() Selection {
	return p.selection
}

// Log returns a copy of the replay log.
func (p *Puzzle) Log() []SwapCommand {
	return p.history.Log()
}

// Moves returns the number of live moves (the replay log length).
func (p *Puzzle) Moves() int {
	return len(p.history.log)
}

// UndoDepth returns how many swaps can currently be undone.
func (p *Puzzle) UndoDepth() int {
	return p.history.UndoDepth()
}

func (p *Puzzle) emit(e Event) {
	p.listener.Notify(e)
}

func (p *Puzzle) emitSwap(cmd SwapCommand) {
	p.emit(TileImageChanged{Tile: cmd.A, Piece: p.store.PieceAt(cmd.A)})
	p.emit(TileImageChanged{Tile: cmd.B, Piece: p.store.PieceAt(cmd.B)})
}

// emitChanged notifies every tile whose piece differs from before.
func (p *Puzzle) emitChanged(before Arrangement) {
	for i, piece := range p.store.current {
		if i < len(before) && before[i] == piece {
			continue
		}
		p.emit(TileImageChanged{Tile: Tile(i), Piece: piece})
	}
}
