// platformer is a 2D action platformer that runs in the terminal.
//
// Usage:
//
//	platformer play [level]   - Play from the title screen or a given level
//	platformer levels         - List available levels
//	platformer sim <level>    - Run a level headless and print its state hash
//	platformer stats          - Browse best runs per level
//	platformer serve          - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.platformer/platformer.db)
//	--config <path>      - Use a specific config file
//	--levels <dir>       - Add levels from a directory
//	--difficulty <name>  - easy, normal or hard
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevelDir   string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A terminal action platformer",
	Long: `Run, jump, swim and fight through hand-drawn levels in your terminal.

Available commands:
  play     - Play the game
  levels   - Show all available levels
  sim      - Run a level without a terminal (determinism check)
  stats    - View best runs
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play 02-caves --difficulty hard
  platformer sim 01-meadow --steps 3600 --seed 7
  platformer serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/platformer.db", "Path to save database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
