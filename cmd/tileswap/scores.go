package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swap/internal/registry"
	"github.com/vovakirdan/tui-swap/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show best solves for a board",
	Long: `Display the best solves for a board, fewest moves first.
Ties go to the faster solve.

Examples:
  tileswap scores
  tileswap scores tileswap_large --limit 20
  tileswap scores --all
  tileswap scores tileswap --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of solves to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all solves for the board")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary for every board")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresAll {
		return printAllStats(store)
	}

	boardID := appConfig.BoardFor(appPreset)
	if len(args) == 1 {
		boardID = args[0]
	}
	info, ok := registry.Lookup(boardID)
	if !ok {
		return fmt.Errorf("unknown board %q (run 'tileswap list' to see available boards)", boardID)
	}

	if flagScoresClear {
		if err := store.ClearSolves(boardID); err != nil {
			return err
		}
		fmt.Printf("Cleared solves for %s.\n", info.Title)
		return nil
	}

	solves, err := store.BestSolves(boardID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Solves - %s\n", info.Title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tileswap play %s' to set the first one!\n", boardID)
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %-12s  %s\n", "Rank", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "----", "------", "----")

	for i, s := range solves {
		fmt.Printf("  %-4d  %-5d  %-8s  %-12s  %s\n",
			i+1, s.Moves, clock(s.Duration), playerName(s.Player), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetBoardStats(boardID)
	if err == nil && stats.Solves > 0 {
		fmt.Println()
		fmt.Printf("Solves: %d  Best: %d moves  Avg: %.1f  Fastest: %s\n",
			stats.Solves, stats.BestMoves, stats.AvgMoves, clock(stats.Fastest))
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllBoardStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-4s  %-6s  %-8s  %s\n", "Board", "Solves", "Best", "Avg", "Fastest", "Last played")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-16s  %-6d  %-4d  %-6.1f  %-8s  %s\n",
			st.BoardID, st.Solves, st.BestMoves, st.AvgMoves, clock(st.Fastest), st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func clock(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	return fmt.Sprintf("%d:%04.1f", int(d.Minutes()), (d % time.Minute).Seconds())
}

func playerName(p string) string {
	if p == "" {
		return "-"
	}
	return p
}
