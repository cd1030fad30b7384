// Package config provides YAML-based configuration loading for the
// tileswap boards.
package config

import (
	"fmt"
	"time"
)

// TileswapConfig contains all configuration for the tile-swap puzzle.
type TileswapConfig struct {
	Replay     ReplayConfig     `yaml:"replay"`
	Board      BoardConfig      `yaml:"board"`
	Colors     ColorConfig      `yaml:"colors"`
	Glyphs     GlyphConfig      `yaml:"glyphs"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ReplayConfig defines replay timing.
type ReplayConfig struct {
	StepIntervalMS int `yaml:"step_interval_ms"`
}

// StepInterval returns the pause between two replay steps.
func (r ReplayConfig) StepInterval() time.Duration {
	return time.Duration(r.StepIntervalMS) * time.Millisecond
}

// BoardConfig defines how a single tile is laid out on screen.
// Cell sizes include one border line.
type BoardConfig struct {
	CellWidth  int  `yaml:"cell_width"`
	CellHeight int  `yaml:"cell_height"`
	ShowTarget bool `yaml:"show_target"` // draw the solved board next to the puzzle
}

// ColorConfig names the colors used by the renderer (see core.ParseColor).
type ColorConfig struct {
	Tile      string `yaml:"tile"`
	Cursor    string `yaml:"cursor"`
	Highlight string `yaml:"highlight"`
	Solved    string `yaml:"solved"`
	HUD       string `yaml:"hud"`
}

// GlyphConfig selects how pieces are labelled.
type GlyphConfig struct {
	Set string `yaml:"set"` // "numbers" or "letters"
}

// Glyph sets.
const (
	GlyphNumbers = "numbers"
	GlyphLetters = "letters"
)

// DifficultyConfig maps difficulty presets to board IDs.
type DifficultyConfig struct {
	Default string            `yaml:"default"`
	Boards  map[string]string `yaml:"boards"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name is "normal".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// BoardFor returns the board ID for a preset, falling back to the
// configured default preset and then to the hardcoded mapping.
func (c TileswapConfig) BoardFor(preset DifficultyPreset) string {
	if preset == "" {
		preset = DifficultyPreset(c.Difficulty.Default)
	}
	if id, ok := c.Difficulty.Boards[string(preset)]; ok && id != "" {
		return id
	}
	if id, ok := defaultBoards[preset]; ok {
		return id
	}
	return defaultBoards[DifficultyNormal]
}

var defaultBoards = map[DifficultyPreset]string{
	DifficultyEasy:   "tileswap_mini",
	DifficultyNormal: "tileswap",
	DifficultyHard:   "tileswap_large",
}

// Normalize fills zero or out-of-range values with defaults.
func (c *TileswapConfig) Normalize() {
	def := DefaultTileswapConfig()

	if c.Replay.StepIntervalMS <= 0 {
		c.Replay.StepIntervalMS = def.Replay.StepIntervalMS
	}
	if c.Board.CellWidth < 4 {
		c.Board.CellWidth = def.Board.CellWidth
	}
	if c.Board.CellHeight < 2 {
		c.Board.CellHeight = def.Board.CellHeight
	}
	if c.Colors.Tile == "" {
		c.Colors.Tile = def.Colors.Tile
	}
	if c.Colors.Cursor == "" {
		c.Colors.Cursor = def.Colors.Cursor
	}
	if c.Colors.Highlight == "" {
		c.Colors.Highlight = def.Colors.Highlight
	}
	if c.Colors.Solved == "" {
		c.Colors.Solved = def.Colors.Solved
	}
	if c.Colors.HUD == "" {
		c.Colors.HUD = def.Colors.HUD
	}
	if c.Glyphs.Set != GlyphNumbers && c.Glyphs.Set != GlyphLetters {
		c.Glyphs.Set = def.Glyphs.Set
	}
	if c.Difficulty.Default == "" {
		c.Difficulty.Default = def.Difficulty.Default
	}
}
