package puzzle

// Event is a notification for the presentation layer.
type Event interface {
	puzzleEvent()
}

// TileHighlighted is sent when a tile becomes the pending selection.
type TileHighlighted struct {
	Tile Tile
}

func (TileHighlighted) puzzleEvent() {}

// TileUnhighlighted is sent when a pending selection is released.
type TileUnhighlighted struct {
	Tile Tile
}

func (TileUnhighlighted) puzzleEvent() {}

// TileImageChanged is sent for both tiles of every swap, undo and replay
// step, and for every tile whose piece changes on reset or restart.
type TileImageChanged struct {
	Tile  Tile
	Piece Piece
}

func (TileImageChanged) puzzleEvent() {}

// PuzzleSolved is sent when a swap leaves the board solved, and again at
// the end of a replay that ends solved.
type PuzzleSolved struct {
	Moves int
}

func (PuzzleSolved) puzzleEvent() {}

// ReplayStarted is sent after the board was reset for a replay.
type ReplayStarted struct {
	Steps int
}

func (ReplayStarted) puzzleEvent() {}

// ReplayStepCompleted is sent after replay step Index (0-based) was applied.
type ReplayStepCompleted struct {
	Index int
}

func (ReplayStepCompleted) puzzleEvent() {}

// ReplayFinished is sent once a replay ran out of steps or was fast-forwarded.
type ReplayFinished struct {
	Cancelled bool
}

func (ReplayFinished) puzzleEvent() {}

// PuzzleRestarted is sent after a fresh shuffle replaced the board.
type PuzzleRestarted struct{}

func (PuzzleRestarted) puzzleEvent() {}

// Listener receives puzzle events synchronously.
type Listener interface {
	Notify(e Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(e Event)

// Notify calls f(e).
func (f ListenerFunc) Notify(e Event) {
	f(e)
}

type nopListener struct{}

func (nopListener) Notify(Event) {}
