package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breaker/internal/platform/tui"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode in the terminal. Without a mode the
interactive menu is shown.

Modes:
  breakout           - Endless: levels repeat with rising difficulty
  breakout_campaign  - Campaign: clear the last level to win

Controls:
  Left/Right, A/D, H/L  - Move the platform
  Mouse click/drag      - Jump or slide the platform
  Space/P               - Launch, pause, resume
  M                     - Mute
  Ctrl+S                - Save a screenshot
  Esc/B                 - Back to menu
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Start at the lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  breaker play
  breaker play breakout --difficulty hard
  breaker play breakout_campaign --level 4
  breaker play breakout --levels ./my-levels --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 1, "Level to start from (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runMenu(cmd, args)
		return
	}

	gameID := args[0]
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
	width, height := terminalSize()

	_, runErr := tui.Run(game, store, player, tui.HostConfig{
		Width:  width,
		Height: height,
		FPS:    flagFPS,
		Seed:   flagSeed,
	})

	// Release resources before potential exit
	player.Close()
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
