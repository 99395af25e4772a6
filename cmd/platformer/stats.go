package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/scene"
	"github.com/vovakirdan/tui-platformer/internal/storage"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

var flagPlain bool

var statsCmd = &cobra.Command{
	Use:   "stats [level]",
	Short: "Show best runs",
	Long: `Browse the best runs of every level, or print them for one level.

Examples:
  platformer stats
  platformer stats 01-meadow
  platformer stats --plain`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the browser")
}

func runStats(_ *cobra.Command, args []string) {
	levels, err := world.NewLoader(flagLevelDir).LoadAll()
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening save database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 && !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunStats(store, levels, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	if len(args) == 1 {
		printRuns(store, args[0])
		return
	}
	for _, l := range levels {
		printRuns(store, l.ID)
		fmt.Println()
	}
}

func printRuns(store *storage.Store, levelID string) {
	runs, err := store.TopRuns(levelID, 10)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("Best runs - %s\n", levelID)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-9s  %-12s  %s\n", "Rank", "Coins", "Time", "Slot", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-12s  %s\n", "----", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-9s  %-12s  %s\n",
			i+1, r.Coins, scene.FormatSteps(r.Steps), r.Slot, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.GetLevelStats(levelID); err == nil && st.Runs > 0 {
		fmt.Println()
		fmt.Printf("Clears: %d  Best: $%d  Fastest: %s\n", st.Runs, st.BestCoins, scene.FormatSteps(st.BestSteps))
	}
}
