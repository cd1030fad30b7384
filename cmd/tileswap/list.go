package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swap/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows a list of all registered boards.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	boards := registry.List()

	if len(boards) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range boards {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	def := appConfig.BoardFor(appPreset)
	for _, b := range boards {
		mark := ""
		if b.ID == def {
			mark = "  (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, b.ID, b.Title, mark)
	}

	fmt.Println()
	fmt.Println("Run 'tileswap play <id>' to play a board.")
}
