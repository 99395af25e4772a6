package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

var flagSlot string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start the game at the title screen, or go straight to a level.

Controls:
  Arrows/WASD  - Move, look up (doors), drop through platforms
  Space/Z      - Jump (hold for height)
  X/J          - Attack
  Enter        - Confirm
  P/Esc        - Pause
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Progress (opened chests, pulled levers, checkpoints) is saved when you
touch a checkpoint.

Examples:
  platformer play
  platformer play 03-keep
  platformer play --difficulty easy --slot kid`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSlot, "slot", storage.DefaultSlot, "Save slot name")
}

func runPlay(_ *cobra.Command, args []string) {
	level := ""
	if len(args) == 1 {
		level = args[0]
		if _, err := world.NewLoader(flagLevelDir).LoadByID(level); err != nil {
			fail("%v\nRun 'platformer levels' to see available levels.", err)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog := fileLogger("platformer")
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := game.Options{
		Config:   cfg,
		LevelDir: flagLevelDir,
		Slot:     flagSlot,
		Seed:     seed(),
		Width:    width,
		Height:   height,
		Logger:   logger,
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("playing without saves", "err", err)
	} else {
		defer store.Close()
		opts.Backend = store
	}

	session, err := game.New(opts)
	if err != nil {
		fail("%v", err)
	}
	defer session.Close()
	session.Start(level)

	if err := tui.Run(session); err != nil {
		logger.Error("session ended with error", "err", err)
		fail("%v", err)
	}
}
