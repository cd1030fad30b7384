package config

import (
	_ "embed"
)

//go:embed defaults/tileswap.yaml
var defaultTileswapYAML []byte

// DefaultTileswapConfig returns the hardcoded tileswap configuration.
func DefaultTileswapConfig() TileswapConfig {
	return TileswapConfig{
		Replay: ReplayConfig{
			StepIntervalMS: 1000,
		},
		Board: BoardConfig{
			CellWidth:  6,
			CellHeight: 3,
			ShowTarget: true,
		},
		Colors: ColorConfig{
			Tile:      "white",
			Cursor:    "bright_cyan",
			Highlight: "bright_yellow",
			Solved:    "bright_green",
			HUD:       "bright_white",
		},
		Glyphs: GlyphConfig{
			Set: GlyphNumbers,
		},
		Difficulty: DifficultyConfig{
			Default: string(DifficultyNormal),
			Boards: map[string]string{
				string(DifficultyEasy):   "tileswap_mini",
				string(DifficultyNormal): "tileswap",
				string(DifficultyHard):   "tileswap_large",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTileswapYAML
}
