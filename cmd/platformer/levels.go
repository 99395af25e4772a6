package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/world"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and any found in --levels.`,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels, err := world.NewLoader(flagLevelDir).LoadAll()
	if err != nil {
		fail("%v", err)
	}
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-20s  %-8s  %s\n", maxIDLen, "ID", "Name", "Spawns", "Next")
	fmt.Printf("  %-*s  %-20s  %-8s  %s\n", maxIDLen, "--", "----", "------", "----")
	for _, l := range levels {
		next := l.Next
		if next == "" {
			next = "-"
		}
		fmt.Printf("  %-*s  %-20s  %-8d  %s\n", maxIDLen, l.ID, l.Name, len(l.Spawns), next)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to start a level.")
}
