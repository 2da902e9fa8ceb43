package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breaker/internal/platform/gui"
	"github.com/vovakirdan/tui-breaker/internal/platform/tui"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

var (
	flagWindowW int
	flagWindowH int
)

var guiCmd = &cobra.Command{
	Use:   "gui [mode]",
	Short: "Play in a desktop window",
	Long: `Open a resizable window and play the given mode (default: breakout).
Resizing the window restarts the run at the new size.

Controls:
  Left/Right, A/D    - Move the platform
  Mouse or touch     - Tap to jump, drag to slide
  Space/P            - Launch, pause, resume
  M                  - Mute
  Esc/Q              - Quit

Examples:
  breaker gui
  breaker gui breakout_campaign --level 2
  breaker gui --width 1280 --height 720`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGUI,
}

func init() {
	defaults := gui.DefaultOptions()
	guiCmd.Flags().IntVar(&flagWindowW, "width", defaults.Width, "Window width in pixels")
	guiCmd.Flags().IntVar(&flagWindowH, "height", defaults.Height, "Window height in pixels")
	guiCmd.Flags().IntVar(&flagStartLevel, "level", 1, "Level to start from (1-based)")
}

func runGUI(_ *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'breaker list' to see available modes.")
		os.Exit(1)
	}

	game, err := tui.NewGame(tui.Selection{
		GameID:     gameID,
		StartLevel: max(0, flagStartLevel-1),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	player := openAudio()

	runErr := gui.Run(game, store, player, logger, gui.Options{
		Width:  flagWindowW,
		Height: flagWindowH,
		FPS:    flagFPS,
		Seed:   flagSeed,
	})

	player.Close()
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
