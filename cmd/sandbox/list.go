package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the builtin levels and those found in the levels directory
(settings levels_dir, default ~/.sandbox/levels).`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, l := range levels {
		fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sandbox play <id>' to play a level.")
}
