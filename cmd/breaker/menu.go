package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breaker/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the breaker with the interactive menu",
	Long: `Start the breaker in interactive menu mode.

Pick a mode, a difficulty and a starting level, then play. Leaving a game
with Esc returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty or level
  Enter/Space     - Start
  Tab             - Run history
  Q               - Quit

Examples:
  breaker menu
  breaker menu --fps 30
  breaker menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	player := openAudio()
	defer player.Close()

	width, height := terminalSize()

	// Menu loop
	for {
		result, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		width, height = result.Width, result.Height

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := tui.NewGame(result.Selection)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// A fixed seed replays the same run every time
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, player, tui.HostConfig{
			Width:  width,
			Height: height,
			FPS:    flagFPS,
			Seed:   seed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
