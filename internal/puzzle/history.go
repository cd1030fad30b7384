package puzzle

// SwapCommand exchanges the pieces on two distinct tiles.
// It is its own inverse: applying it twice restores the prior arrangement.
type SwapCommand struct {
	A, B Tile
}

// Apply performs the swap on the store.
func (c SwapCommand) Apply(s *Store) {
	s.Swap(c.A, c.B)
}

// Inverse returns the command that undoes c.
func (c SwapCommand) Inverse() SwapCommand {
	return c
}

// History is the undo stack plus the replay log of executed swaps.
// Undo removes the matching tail entry from the log so that both stay
// in lock-step and a replay only plays moves that are still live.
type History struct {
	undo []SwapCommand
	log  []SwapCommand
}

// Record pushes cmd onto the undo stack and appends it to the replay log.
func (h *History) Record(cmd SwapCommand) {
	h.undo = append(h.undo, cmd)
	h.log = append(h.log, cmd)
}

// Undo pops the most recent command, applies its inverse to s and drops
// the last log entry. Returns false when there is nothing to undo.
func (h *History) Undo(s *Store) (SwapCommand, bool) {
	if len(h.undo) == 0 {
		return SwapCommand{}, false
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	cmd.Inverse().Apply(s)
	if len(h.log) > 0 {
		h.log = h.log[:len(h.log)-1]
	}
	return cmd, true
}

// ClearUndo empties the undo stack only; the replay log survives so a
// later replay still shows the full path.
func (h *History) ClearUndo() {
	h.undo = h.undo[:0]
}

// Reset drops both the undo stack and the replay log.
func (h *History) Reset() {
	h.undo = nil
	h.log = nil
}

// UndoDepth returns the number of undoable commands.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// Log returns a copy of the replay log, oldest first.
func (h *History) Log() []SwapCommand {
	out := make([]SwapCommand, len(h.log))
	copy(out, h.log)
	return out
}
