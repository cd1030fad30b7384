package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swap/internal/platform/tui"
	"github.com/vovakirdan/tui-swap/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board. Without an argument the board
comes from --difficulty (or the config's default preset).

Controls:
  Arrows/WASD   - Move cursor
  Space/Enter   - Select tile (second pick swaps)
  Mouse click   - Select tile under the pointer
  U/Backspace   - Undo last swap
  Y             - Replay all swaps from the shuffle
  C             - Skip the running replay
  R             - Reshuffle
  P             - Pause
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 3x3 board
  normal - 4x4 board
  hard   - 5x5 board

Examples:
  tileswap play
  tileswap play tileswap_mini
  tileswap play --difficulty hard
  tileswap play --seed 42 --config ./my-tileswap.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	boardID := appConfig.BoardFor(appPreset)
	if len(args) == 1 {
		boardID = args[0]
	}

	game, err := registry.Create(boardID)
	if err != nil {
		return fmt.Errorf("%w (run 'tileswap list' to see available boards)", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
