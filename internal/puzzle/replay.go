package puzzle

// replay plays the command log back one step per interval.
// It is an explicit state machine advanced by Puzzle.Tick; it never blocks.
type replay struct {
	steps     []SwapCommand
	interval  int // ticks between two steps
	cursor    int // next step to apply
	wait      int // ticks left before the next iteration boundary
	cancelled bool
	active    bool
}

func (r *replay) start(steps []SwapCommand, interval int) {
	if interval < 1 {
		interval = 1
	}
	*r = replay{
		steps:    steps,
		interval: interval,
		active:   true,
	}
}

// Tick advances the replay by one tick. It is a no-op when no replay runs.
//
// At every iteration boundary the cancellation flag is checked first: once
// set, all remaining steps are applied immediately and the replay finishes.
// Otherwise one step is applied and the next boundary is one interval away.
// A cancellation requested mid-interval waits for that boundary.
func (p *Puzzle) Tick() {
	r := &p.replay
	if !r.active {
		return
	}
	if r.wait > 0 {
		r.wait--
		return
	}

	if r.cancelled {
		for r.cursor < len(r.steps) {
			p.applyReplayStep()
		}
		p.finishReplay(true)
		return
	}

	if r.cursor >= len(r.steps) {
		p.finishReplay(false)
		return
	}

	p.applyReplayStep()
	r.wait = r.interval - 1
}

func (p *Puzzle) applyReplayStep() {
	r := &p.replay
	cmd := r.steps[r.cursor]
	cmd.Apply(p.store)
	p.emitSwap(cmd)
	p.emit(ReplayStepCompleted{Index: r.cursor})
	r.cursor++
}

func (p *Puzzle) finishReplay(cancelled bool) {
	p.replay.active = false
	p.emit(ReplayFinished{Cancelled: cancelled})
	if p.store.IsSolved() {
		p.emit(PuzzleSolved{Moves: p.Moves()})
	}
}

// Replaying reports whether a replay is in progress.
func (p *Puzzle) Replaying() bool {
	return p.replay.active
}

// ReplayProgress returns the number of applied steps and the total.
// Both are zero when no replay runs.
func (p *Puzzle) ReplayProgress() (done, total int) {
	if !p.replay.active {
		return 0, 0
	}
	return p.replay.cursor, len(p.replay.steps)
}

// ReplayCancelled reports whether the running replay was asked to stop.
func (p *Puzzle) ReplayCancelled() bool {
	return p.replay.active && p.replay.cancelled
}
