// tileswap is a terminal tile-swap puzzle: pick two tiles to swap them until
// the board matches its target, then watch the solve replayed.
//
// Usage:
//
//	tileswap list              - List available boards
//	tileswap play [board]      - Play a board
//	tileswap menu              - Start menu to pick boards interactively
//	tileswap serve             - Start SSH server for remote play
//	tileswap scores [board]    - Show best solves for a board
//	tileswap config init       - Write the default config file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible shuffle
//	--db <path>           - Set database path (default: ~/.tileswap/solves.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--player <name>       - Name stored with solves
//	--trace               - Export spans over OTLP HTTP
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import boards to register them
	_ "github.com/vovakirdan/tui-swap/internal/games/tileswap"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagTrace      bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tileswap"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tileswap",
	Short: "Tile Swap - a swap puzzle in your terminal",
	Long: `Tile Swap shuffles a board of numbered tiles. Select two tiles to
swap them; the puzzle is solved when every tile is back in place.
Undo takes back moves, and a finished solve can be replayed step by step.

Available commands:
  list     - Show all boards
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  scores   - View best solves
  config   - Manage the config file

Examples:
  tileswap list
  tileswap play
  tileswap play tileswap_large
  tileswap menu --difficulty easy
  tileswap serve --ssh :2222
  tileswap scores tileswap`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tileswap/solves.db", "Path to solves database (env TILESWAP_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name stored with solves (env TILESWAP_PLAYER, default $USER)")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false, "Export traces via OTLP (configure with OTEL_* env vars)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
