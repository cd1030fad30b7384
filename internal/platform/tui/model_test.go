package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/vovakirdan/tui-swap/internal/core"
	_ "github.com/vovakirdan/tui-swap/internal/games/tileswap"
	"github.com/vovakirdan/tui-swap/internal/storage"
)

// scriptedGame replays a fixed sequence of states, one per Step.
type scriptedGame struct {
	states  []core.GameState
	step    int
	resets  int
	resized [2]int
	inputs  []core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Controls() string {
	return ""
}
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(*core.Screen)      {}
func (g *scriptedGame) Resize(w, h int)          { g.resized = [2]int{w, h} }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	st := g.State()
	g.step++
	return core.StepResult{State: st}
}

func (g *scriptedGame) State() core.GameState {
	if len(g.states) == 0 {
		return core.GameState{}
	}
	return g.states[min(g.step, len(g.states)-1)]
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1, Player: "bob"}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	return rec
}

func TestModelSavesOncePerAttempt(t *testing.T) {
	rec := recordSpans(t)
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{states: []core.GameState{
		{Attempt: 1, Moves: 1, Ticks: 10},
		{Attempt: 1, Moves: 3, Solved: true, Won: true, Ticks: 120},
		{Attempt: 1, Moves: 3, Solved: true, Won: true, Ticks: 121},
		{Attempt: 1, Moves: 3, Won: true, Replaying: true, Ticks: 122},
		{Attempt: 1, Moves: 3, Won: true, Replaying: true, Ticks: 123},
		{Attempt: 1, Moves: 3, Solved: true, Won: true, Ticks: 124},
		{Attempt: 2, Ticks: 0},
		{Attempt: 2, Moves: 5, Solved: true, Won: true, Ticks: 60},
	}}

	m := NewModel(game, store, testConfig())
	for range len(game.states) {
		m = update(t, m, TickMsg(time.Now()))
	}

	solves, err := store.BestSolves("scripted", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(solves) != 2 {
		t.Fatalf("stored %d solves, want 2", len(solves))
	}
	if solves[0].Moves != 3 || solves[0].Duration != 2*time.Second || solves[0].Player != "bob" {
		t.Errorf("first solve = %+v", solves[0])
	}
	if solves[1].Moves != 5 || solves[1].Duration != time.Second {
		t.Errorf("second solve = %+v", solves[1])
	}
	if m.LastRunID() != solves[1].RunID {
		t.Errorf("LastRunID() = %q, want %q", m.LastRunID(), solves[1].RunID)
	}

	counts := make(map[string]int)
	for _, s := range rec.Ended() {
		counts[s.Name()]++
	}
	want := map[string]int{"tileswap.solve": 2, "tileswap.replay": 1, "tileswap.restart": 1}
	for name, n := range want {
		if counts[name] != n {
			t.Errorf("%s spans = %d, want %d (all: %v)", name, counts[name], n, counts)
		}
	}
}

func TestModelWithoutStoreStillTraces(t *testing.T) {
	rec := recordSpans(t)
	game := &scriptedGame{states: []core.GameState{
		{Attempt: 1, Moves: 2, Solved: true, Won: true, Ticks: 30},
	}}

	m := NewModel(game, nil, testConfig())
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	if m.LastRunID() != "" {
		t.Errorf("LastRunID() = %q without a store", m.LastRunID())
	}
	if n := len(rec.Ended()); n != 1 {
		t.Errorf("recorded %d spans, want 1", n)
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testConfig())

	m = update(t, m, runeKey('u'))
	m = update(t, m, tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	if len(game.inputs) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(game.inputs))
	}
	first := game.inputs[0]
	if !first.Has(core.ActionUndo) || !first.Has(core.ActionClick) || first.Pointer != (core.Point{X: 12, Y: 5}) {
		t.Errorf("first frame = %+v", first)
	}
	if len(game.inputs[1].Actions) != 0 {
		t.Errorf("input not cleared between ticks: %+v", game.inputs[1])
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resized != [2]int{100, 30 - helpHeight} {
		t.Errorf("Resize got %v", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resize dealt a new board: %d resets", game.resets)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, testConfig())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("standalone model should ignore back")
	}

	m.embedded = true
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("embedded model should return to menu")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelViewShowsHelp(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, testConfig())
	if out := m.View(); !strings.Contains(out, "undo") || !strings.Contains(out, "replay") {
		t.Errorf("help bar missing from view:\n%s", out)
	}
}

func TestSessionFlow(t *testing.T) {
	logger := log.New(io.Discard)
	s := NewSessionModel(nil, testConfig(), "tileswap_mini", logger)
	if s.SessionID() == "" {
		t.Fatal("empty session id")
	}

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.game == nil || s.game.game.ID() != "tileswap_mini" {
		t.Fatalf("enter should start the preferred board, screen=%v", s.screen)
	}
	step(TickMsg(time.Now()))
	if s.game.State().Attempt != 1 {
		t.Errorf("game not reset: %+v", s.game.State())
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu || s.game != nil {
		t.Fatalf("esc should return to the menu, screen=%v", s.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("tab should open the scoreboard, screen=%v", s.screen)
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("esc should leave the scoreboard, screen=%v", s.screen)
	}

	next, cmd := s.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
}
