package tileswap

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-swap/internal/config"
	"github.com/vovakirdan/tui-swap/internal/core"
	"github.com/vovakirdan/tui-swap/internal/puzzle"
	"github.com/vovakirdan/tui-swap/internal/registry"
)

func newGame(t *testing.T, b Board, seed int64) *Game {
	t.Helper()
	g := New(b)
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func clickTile(g *Game, t int) core.StepResult {
	x, y := g.layout.cellOrigin(t)
	in := core.NewInputFrame()
	in.Click(x+1, y+1)
	return g.Step(in)
}

// solve swaps every misplaced piece into place with mouse clicks.
func solve(t *testing.T, g *Game) {
	t.Helper()
	target := g.Puzzle().Target()
	for i := range target {
		cur := g.Puzzle().Current()
		if cur[i] == target[i] {
			continue
		}
		for j := i + 1; j < len(cur); j++ {
			if cur[j] == target[i] {
				clickTile(g, i)
				clickTile(g, j)
				break
			}
		}
	}
	if !g.Puzzle().IsSolved() {
		t.Fatalf("board not solved: %v", g.Puzzle().Current())
	}
}

func TestBoardsRegistered(t *testing.T) {
	for _, b := range []Board{BoardClassic, BoardMini, BoardLarge} {
		if !registry.Exists(b.ID) {
			t.Errorf("board %q not registered", b.ID)
			continue
		}
		rg, err := registry.Create(b.ID)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", b.ID, err)
		}
		g := rg.(*Game)
		g.Reset(core.DefaultConfig())
		if got := g.Puzzle().Len(); got != b.Tiles() {
			t.Errorf("%s: %d tiles, want %d", b.ID, got, b.Tiles())
		}
	}
}

func TestPieces(t *testing.T) {
	if got := Pieces(4, config.GlyphNumbers); !got.Equal(puzzle.Arrangement{"1", "2", "3", "4"}) {
		t.Errorf("numbers = %v", got)
	}
	if got := Pieces(3, config.GlyphLetters); !got.Equal(puzzle.Arrangement{"A", "B", "C"}) {
		t.Errorf("letters = %v", got)
	}
}

func TestCursorSelectSwaps(t *testing.T) {
	g := newGame(t, BoardClassic, 7)
	before := g.Puzzle().Current()

	step(g, core.ActionSelect)
	if s := g.Snapshot(); s.State != StateSelecting || s.Highlight != 0 {
		t.Fatalf("after select: %+v", s)
	}

	step(g, core.ActionRight)
	res := step(g, core.ActionSelect)

	after := g.Puzzle().Current()
	if after[0] != before[1] || after[1] != before[0] {
		t.Errorf("tiles 0 and 1 not swapped: %v -> %v", before, after)
	}
	if res.State.Moves != 1 {
		t.Errorf("Moves = %d, want 1", res.State.Moves)
	}
	if g.Snapshot().Highlight != -1 {
		t.Error("selection should be released after a swap")
	}
}

func TestCursorClampsAtEdges(t *testing.T) {
	g := newGame(t, BoardMini, 1)
	step(g, core.ActionUp)
	step(g, core.ActionLeft)
	if g.cursor != 0 {
		t.Errorf("cursor = %d, want 0", g.cursor)
	}
	for range 5 {
		step(g, core.ActionDown)
		step(g, core.ActionRight)
	}
	if g.cursor != 8 {
		t.Errorf("cursor = %d, want 8", g.cursor)
	}
}

func TestMouseHitTest(t *testing.T) {
	g := newGame(t, BoardClassic, 3)

	clickTile(g, 5)
	if s := g.Snapshot(); s.Highlight != 5 || s.Cursor != 5 {
		t.Errorf("click on tile 5: %+v", s)
	}

	// Border lines and positions outside the grid are ignored.
	in := core.NewInputFrame()
	in.Click(g.layout.grid.X, g.layout.grid.Y)
	g.Step(in)
	in = core.NewInputFrame()
	in.Click(0, 0)
	g.Step(in)
	if s := g.Snapshot(); s.Highlight != 5 {
		t.Errorf("stray clicks changed the selection: %+v", s)
	}
}

func TestSolveMarksWon(t *testing.T) {
	g := newGame(t, BoardMini, 11)
	solve(t, g)

	st := g.State()
	if !st.Solved || !st.Won {
		t.Fatalf("state after solve = %+v", st)
	}
	if g.WonMoves() != st.Moves {
		t.Errorf("WonMoves() = %d, want %d", g.WonMoves(), st.Moves)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "SOLVED") {
		t.Error("solved banner missing")
	}

	// The board stays interactive after a solve.
	step(g, core.ActionSelect)
	if s := g.Snapshot(); s.Highlight != s.Cursor {
		t.Error("solved board should accept selections")
	}
}

func TestReplayReannouncementIsNotAWin(t *testing.T) {
	g := newGame(t, BoardMini, 5)
	g.handle(puzzle.ReplayFinished{})
	g.handle(puzzle.PuzzleSolved{Moves: 3})
	if g.won {
		t.Error("solve announced by a finishing replay counted as a win")
	}

	step(g)
	g.handle(puzzle.PuzzleSolved{Moves: 3})
	if !g.won {
		t.Error("live solve after the replay should count")
	}
}

func TestReplayRunsOnTicks(t *testing.T) {
	g := newGame(t, BoardMini, 9)
	clickTile(g, 0)
	clickTile(g, 1)
	clickTile(g, 2)
	clickTile(g, 3)
	want := g.Puzzle().Current()

	res := step(g, core.ActionReplay)
	if !res.State.Replaying {
		t.Fatal("replay did not start")
	}
	if s := g.Snapshot(); s.ReplayTotal != 2 || s.ReplayDone != 1 {
		t.Errorf("first replay step should land on the request tick: %+v", s)
	}

	// Input is refused while replaying.
	step(g, core.ActionSelect)
	if g.Snapshot().Highlight != -1 {
		t.Error("selection accepted during replay")
	}
	if !strings.Contains(g.message, "Replay running") {
		t.Errorf("message = %q", g.message)
	}

	ticks := 0
	for g.State().Replaying && ticks < 1000 {
		step(g)
		ticks++
	}
	// Two steps one second apart at 60 ticks/s, then the finish boundary.
	if ticks != 119 {
		t.Errorf("replay took %d more ticks, want 119", ticks)
	}
	if got := g.Puzzle().Current(); !got.Equal(want) {
		t.Errorf("replay ended at %v, want %v", got, want)
	}
	if g.message != "Replay finished" {
		t.Errorf("message = %q", g.message)
	}
}

func TestReplayCancel(t *testing.T) {
	g := newGame(t, BoardMini, 9)
	clickTile(g, 0)
	clickTile(g, 1)
	clickTile(g, 2)
	clickTile(g, 3)

	step(g, core.ActionReplay)
	step(g, core.ActionCancel)
	for range 60 {
		step(g)
	}
	if g.State().Replaying {
		t.Error("cancelled replay still running after one interval")
	}
	if g.message != "Replay skipped" {
		t.Errorf("message = %q", g.message)
	}
}

func TestUndoMessages(t *testing.T) {
	g := newGame(t, BoardClassic, 2)
	step(g, core.ActionUndo)
	if g.message != "Nothing to undo" {
		t.Errorf("message = %q", g.message)
	}

	step(g, core.ActionSelect)
	step(g, core.ActionUndo)
	if g.message != "Deselect the tile first" {
		t.Errorf("message = %q", g.message)
	}

	for range messageTicks {
		step(g)
	}
	if g.message != "" {
		t.Errorf("message did not expire: %q", g.message)
	}
}

func TestUndoRevertsSwap(t *testing.T) {
	g := newGame(t, BoardClassic, 4)
	before := g.Puzzle().Current()
	clickTile(g, 2)
	clickTile(g, 7)

	res := step(g, core.ActionUndo)
	if res.State.Moves != 0 {
		t.Errorf("Moves = %d after undo", res.State.Moves)
	}
	if !g.Puzzle().Current().Equal(before) {
		t.Errorf("undo left %v, want %v", g.Puzzle().Current(), before)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newGame(t, BoardClassic, 1)
	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("game not paused")
	}
	step(g, core.ActionSelect)
	if g.Snapshot().Highlight != -1 {
		t.Error("input processed while paused")
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	step(g, core.ActionPause)
	if g.State().Paused {
		t.Error("game still paused")
	}
}

func TestRestartStartsNewAttempt(t *testing.T) {
	g := newGame(t, BoardClassic, 6)
	clickTile(g, 0)
	clickTile(g, 1)
	for range 10 {
		step(g)
	}
	first := g.State().Attempt

	res := step(g, core.ActionRestart)
	if res.State.Attempt != first+1 {
		t.Errorf("Attempt = %d, want %d", res.State.Attempt, first+1)
	}
	if res.State.Moves != 0 || res.State.Ticks != 0 || res.State.Won {
		t.Errorf("restart kept progress: %+v", res.State)
	}
}

func TestSameSeedSameDeal(t *testing.T) {
	a := newGame(t, BoardLarge, 99).Snapshot()
	b := newGame(t, BoardLarge, 99).Snapshot()
	if strings.Join(a.Tiles, ",") != strings.Join(b.Tiles, ",") {
		t.Errorf("same seed dealt %v and %v", a.Tiles, b.Tiles)
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := New(BoardClassic)
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 20, 10
	g.Reset(cfg)

	if s := g.Snapshot(); s.State != StatePausedSmall {
		t.Errorf("State = %q, want %q", s.State, StatePausedSmall)
	}
	scr := core.NewScreen(20, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("too-small message missing")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("resize did not restore the board")
	}
}

func TestRenderShowsPiecesAndHUD(t *testing.T) {
	g := newGame(t, BoardClassic, 8)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"Tile Swap", "Moves: 0", "Attempt 1", "Target"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	for _, p := range g.Puzzle().Current() {
		if !strings.Contains(out, string(p)) {
			t.Errorf("render missing piece %q", p)
		}
	}
}
