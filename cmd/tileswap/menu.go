package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swap/internal/platform/tui"
	"github.com/vovakirdan/tui-swap/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board.
Quitting a board returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Best solves
  Q            - Quit

Examples:
  tileswap menu
  tileswap menu --fps 30
  tileswap menu --db ./solves.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	preferred := appConfig.BoardFor(appPreset)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, preferred)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, preferred)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		boardID := menuResult.GameID
		if boardID == "" {
			return nil
		}
		preferred = boardID

		game, err := registry.Create(boardID)
		if err != nil {
			logger.Error("cannot create board", "board", boardID, "error", err)
			continue
		}

		// Fresh shuffle for every round unless a seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("board failed", "board", boardID, "error", err)
		}
	}
}
