// Package registry keeps the boards the platform can start.
// Boards register a factory in init(), so the CLI, menu and SSH server
// discover them without importing each game package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-swap/internal/core"
)

// Game is what the platform drives. Implementations hold pure logic; the
// platform owns input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "tileswap"), used by the CLI and
	// as the leaderboard key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset deals a new board for the given runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Controls returns a one-line control hint.
	Controls() string
}

// GameInfo contains metadata about a registered board.
type GameInfo struct {
	ID       string
	Title    string
	Controls string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a factory under id. Panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	entries[id] = entry{
		factory: f,
		info: GameInfo{
			ID:       id,
			Title:    g.Title(),
			Controls: g.Controls(),
		},
	}
}

// List returns all registered boards sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the metadata of a registered board.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a board by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a board with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
