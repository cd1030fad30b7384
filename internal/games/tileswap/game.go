// Package tileswap adapts the puzzle core to the game platform: it maps
// input actions to the core's entry points, keeps the view state the core
// announces through events and draws the board.
package tileswap

import (
	"errors"
	"strconv"

	"github.com/vovakirdan/tui-swap/internal/config"
	"github.com/vovakirdan/tui-swap/internal/core"
	"github.com/vovakirdan/tui-swap/internal/puzzle"
)

const (
	noTile       puzzle.Tile = -1
	flashSeconds             = 0.4
	messageTicks             = 120
)

// Game implements the tile-swap puzzle for the platform.
type Game struct {
	board  Board
	cfg    config.TileswapConfig
	puzzle *puzzle.Puzzle

	tick     uint64 // ticks in the current attempt
	attempt  int
	tickRate int

	// Screen dimensions
	screenW int
	screenH int
	layout  layout

	cursor    int
	highlight puzzle.Tile
	flash     map[puzzle.Tile]int
	won       bool
	wonMoves  int

	// Set while a finishing replay re-announces a solved board.
	replayEnding bool
	replayNote   string

	message      string
	messageTicks int

	paused   bool
	tooSmall bool
}

// New creates a game for the given board with the current package config.
func New(b Board) *Game {
	return &Game{
		board:     b,
		cfg:       Config(),
		highlight: noTile,
		flash:     make(map[puzzle.Tile]int),
	}
}

// ID returns the board identifier.
func (g *Game) ID() string {
	return g.board.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.board.Title
}

// Reset deals a fresh shuffle for a new attempt.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	p, err := puzzle.New(Pieces(g.board.Tiles(), g.cfg.Glyphs.Set), puzzle.Options{
		Shuffler:       puzzle.NewRandShuffler(cfg.Seed),
		Listener:       puzzle.ListenerFunc(g.handle),
		ReplayInterval: cfg.TicksFor(g.cfg.Replay.StepInterval()),
	})
	if err != nil {
		// Pieces always yields at least 4 distinct labels.
		panic(err)
	}
	g.puzzle = p

	g.attempt++
	g.startAttempt()
	g.paused = false
	g.layout = computeLayout(g.board, g.cfg.Board, g.screenW, g.screenH)
	g.tooSmall = !g.layout.fits
}

func (g *Game) startAttempt() {
	g.tick = 0
	g.cursor = 0
	g.highlight = noTile
	clear(g.flash)
	g.won = false
	g.wonMoves = 0
	g.replayEnding = false
	g.replayNote = ""
	g.message = ""
	g.messageTicks = 0
}

// Pieces returns the target arrangement for n tiles labelled with the
// given glyph set. Letters fall back to numbers past 'Z'.
func Pieces(n int, set string) puzzle.Arrangement {
	a := make(puzzle.Arrangement, n)
	for i := range n {
		if set == config.GlyphLetters && n <= 26 {
			a[i] = puzzle.Piece(string(rune('A' + i)))
			continue
		}
		a[i] = puzzle.Piece(strconv.Itoa(i + 1))
	}
	return a
}

// handle keeps the view state in sync with core events.
func (g *Game) handle(e puzzle.Event) {
	switch e := e.(type) {
	case puzzle.TileHighlighted:
		g.highlight = e.Tile
	case puzzle.TileUnhighlighted:
		if g.highlight == e.Tile {
			g.highlight = noTile
		}
	case puzzle.TileImageChanged:
		g.flash[e.Tile] = g.flashTicks()
	case puzzle.PuzzleSolved:
		if g.replayEnding {
			return
		}
		if !g.won {
			g.won = true
			g.wonMoves = e.Moves
		}
	case puzzle.ReplayStarted:
		g.replayNote = ""
	case puzzle.ReplayFinished:
		g.replayEnding = true
		if e.Cancelled {
			g.replayNote = "Replay skipped"
		} else {
			g.replayNote = "Replay finished"
		}
		g.say(g.replayNote)
	case puzzle.PuzzleRestarted:
		g.startAttempt()
	}
}

func (g *Game) flashTicks() int {
	return max(int(flashSeconds*float64(g.tickRate)), 1)
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = messageTicks
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if in.Has(core.ActionRestart) {
		g.attempt++
		g.puzzle.OnRestartRequested()
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionClick) {
		if t := g.layout.tileAt(in.Pointer.X, in.Pointer.Y); t != noTile {
			g.cursor = int(t)
			g.click(t)
		}
	} else if in.Has(core.ActionSelect) {
		g.click(puzzle.Tile(g.cursor))
	}

	if in.Has(core.ActionUndo) {
		if _, err := g.puzzle.OnUndoRequested(); err != nil {
			g.reject(err)
		}
	}
	if in.Has(core.ActionReplay) {
		if err := g.puzzle.OnReplayRequested(); err != nil {
			g.reject(err)
		}
	}
	if in.Has(core.ActionCancel) {
		g.puzzle.OnReplayCancelRequested()
	}

	g.puzzle.Tick()
	g.replayEnding = false

	for t, n := range g.flash {
		if n <= 1 {
			delete(g.flash, t)
		} else {
			g.flash[t] = n - 1
		}
	}
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	n := g.board.Size
	row, col := g.cursor/n, g.cursor%n
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	g.cursor = core.Clamp(row, 0, n-1)*n + core.Clamp(col, 0, n-1)
}

func (g *Game) click(t puzzle.Tile) {
	if err := g.puzzle.OnTileClicked(t); err != nil {
		g.reject(err)
	}
}

// reject turns a refused request into a status line.
func (g *Game) reject(err error) {
	switch {
	case errors.Is(err, puzzle.ErrReplayActive):
		g.say("Replay running - C to skip")
	case errors.Is(err, puzzle.ErrNothingToUndo):
		g.say("Nothing to undo")
	case errors.Is(err, puzzle.ErrSelectionPending):
		g.say("Deselect the tile first")
	default:
		g.say(err.Error())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:     g.puzzle.Moves(),
		Solved:    g.puzzle.IsSolved(),
		Won:       g.won,
		Replaying: g.puzzle.Replaying(),
		Paused:    g.paused || g.tooSmall,
		Attempt:   g.attempt,
		Ticks:     g.tick,
	}
}

// Resize adapts the layout to a new screen size without dealing a new board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = computeLayout(g.board, g.cfg.Board, w, h)
	g.tooSmall = !g.layout.fits
}

// WonMoves returns the move count of the first solve in this attempt.
func (g *Game) WonMoves() int {
	return g.wonMoves
}

// Puzzle exposes the underlying puzzle.
func (g *Game) Puzzle() *puzzle.Puzzle {
	return g.puzzle
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space/Click: Select | U: Undo | Y: Replay | C: Skip | R: Shuffle | P: Pause"
}
