package puzzle

import "errors"

var (
	// ErrInvalidTile is returned for a tile index outside [0, N).
	ErrInvalidTile = errors.New("puzzle: invalid tile")

	// ErrNothingToUndo is returned when the undo stack is empty.
	ErrNothingToUndo = errors.New("puzzle: nothing to undo")

	// ErrReplayActive is returned for input that a running replay blocks.
	ErrReplayActive = errors.New("puzzle: replay already running")

	// ErrSelectionPending is returned for an undo while a tile is selected.
	ErrSelectionPending = errors.New("puzzle: selection pending")

	// ErrInvalidArrangement is returned by New for fewer than two pieces
	// or duplicate pieces.
	ErrInvalidArrangement = errors.New("puzzle: invalid arrangement")
)
