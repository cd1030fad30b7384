package tileswap

import (
	"sync"

	"github.com/vovakirdan/tui-swap/internal/config"
	"github.com/vovakirdan/tui-swap/internal/registry"
)

// Board describes one registered puzzle size.
type Board struct {
	ID    string
	Title string
	Size  int // tiles per row and column
}

// Tiles returns the number of tiles on the board.
func (b Board) Tiles() int {
	return b.Size * b.Size
}

// Boards available to the platform.
var (
	BoardClassic = Board{ID: "tileswap", Title: "Tile Swap", Size: 4}
	BoardMini    = Board{ID: "tileswap_mini", Title: "Tile Swap (3x3)", Size: 3}
	BoardLarge   = Board{ID: "tileswap_large", Title: "Tile Swap (5x5)", Size: 5}
)

// Package-level config shared by all new games.
var (
	cfgMu   sync.RWMutex
	gameCfg = config.DefaultTileswapConfig()
)

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.TileswapConfig) {
	cfg.Normalize()
	cfgMu.Lock()
	gameCfg = cfg
	cfgMu.Unlock()
}

// Config returns the configuration new games start with.
func Config() config.TileswapConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return gameCfg
}

func init() {
	for _, b := range []Board{BoardClassic, BoardMini, BoardLarge} {
		registry.Register(b.ID, func() registry.Game {
			return New(b)
		})
	}
}
