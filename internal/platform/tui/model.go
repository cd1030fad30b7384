package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-swap/internal/core"
	"github.com/vovakirdan/tui-swap/internal/registry"
	"github.com/vovakirdan/tui-swap/internal/storage"
	"github.com/vovakirdan/tui-swap/internal/telemetry"
)

// helpHeight is the number of rows reserved below the board.
const helpHeight = 1

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for playing one board.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	tracer     trace.Tracer

	replaySpan   trace.Span
	savedAttempt int    // attempt whose solve is already stored
	lastRunID    string // run id of the last stored solve

	embedded   bool // Back returns to the caller instead of being ignored
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		tracer:     telemetry.Tracer("tui"),
	}
}

// gameConfig returns the runtime config with the help row taken off.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.endReplaySpan()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.embedded {
			m.endReplaySpan()
			m.backToMenu = true
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	// Keep the board when the game can re-layout; otherwise deal again.
	if r, ok := m.game.(resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	} else {
		m.game.Reset(cfg)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.observe(prev, m.gameState)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// observe records spans and stores solves for state transitions.
func (m *Model) observe(prev, cur core.GameState) {
	ctx := context.Background()
	board := attribute.String("board", m.game.ID())

	if prev.Attempt != 0 && cur.Attempt != prev.Attempt {
		m.endReplaySpan()
		_, span := m.tracer.Start(ctx, "tileswap.restart")
		span.SetAttributes(board,
			attribute.Int("attempt", cur.Attempt),
			attribute.Int("abandoned_moves", prev.Moves),
		)
		span.End()
	}

	if cur.Replaying && m.replaySpan == nil {
		_, m.replaySpan = m.tracer.Start(ctx, "tileswap.replay")
		m.replaySpan.SetAttributes(board, attribute.Int("steps", cur.Moves))
	}
	if !cur.Replaying {
		m.endReplaySpan()
	}

	// A solve is stored once per attempt. Solves announced while a replay
	// runs or finishes are re-announcements and never reach here as Won.
	if cur.Won && !cur.Replaying && m.savedAttempt != cur.Attempt {
		m.savedAttempt = cur.Attempt
		m.saveSolve(ctx, cur)
	}
}

func (m *Model) saveSolve(ctx context.Context, st core.GameState) {
	elapsed := time.Duration(st.Ticks) * time.Second / time.Duration(m.config.TickRate)

	_, span := m.tracer.Start(ctx, "tileswap.solve")
	defer span.End()
	span.SetAttributes(
		attribute.String("board", m.game.ID()),
		attribute.Int("moves", st.Moves),
		attribute.Int64("duration_ms", elapsed.Milliseconds()),
		attribute.Int("attempt", st.Attempt),
	)

	if m.store == nil {
		return
	}
	runID, err := m.store.SaveSolve(storage.Solve{
		BoardID:  m.game.ID(),
		Player:   m.config.Player,
		Moves:    st.Moves,
		Duration: elapsed,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		span.RecordError(err)
		return
	}
	m.lastRunID = runID
	span.SetAttributes(attribute.String("run_id", runID))
}

func (m *Model) endReplaySpan() {
	if m.replaySpan != nil {
		m.replaySpan.End()
		m.replaySpan = nil
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tileswap", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRunID returns the run id of the last stored solve, or "".
func (m Model) LastRunID() string {
	return m.lastRunID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks select tiles
	)

	_, err := p.Run()
	return err
}
