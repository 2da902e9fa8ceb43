// breaker is a brick-breaker for the terminal, a desktop window, or an SSH
// server.
//
// Usage:
//
//	breaker list              - List game modes
//	breaker play [mode]       - Play a mode, or pick one from the menu
//	breaker menu              - Start the interactive menu
//	breaker gui [mode]        - Play in a desktop window
//	breaker serve             - Start SSH server for remote play
//	breaker scores [mode]     - Show run history
//	breaker levels            - List the levels that would be played
//	breaker config            - Print the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.breaker/runs.db)
//	--config <path>       - Custom breakout config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--levels <dir>        - Directory of level files
//	--volume <0..1>       - Sound volume, 0 disables audio
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breaker/internal/audio"
	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/games/breakout"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagVolume     float64
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "breaker",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breaker",
	Short: "Breaker - a brick-breaker for your terminal",
	Long: `Breaker is a brick-breaker arcade game. Bounce the ball off the
platform, clear every brick before the timer runs out and catch the
bonuses that fall from broken bricks.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive menu
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View run history
  levels   - List levels
  config   - Print the default config

Examples:
  breaker play
  breaker play breakout_campaign --level 3
  breaker gui --width 1024 --height 768
  breaker serve --ssh :2222
  breaker scores breakout --recent`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		applyGameFlags()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breaker/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (built-in levels if empty)")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1 (0 = no audio)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags hands the game flags to the breakout factories. Broken
// configs and level directories are reported here; sessions fall back to
// defaults on their own.
func applyGameFlags() {
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	breakout.SetLevelsDir(flagLevelsDir)

	if flagDifficulty != "" && breakout.DefaultOptions().Preset == "" {
		logger.Warn("unknown difficulty preset, using config values", "preset", flagDifficulty)
	}
	if _, err := config.LoadBreakout(flagConfig); err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
	}
	if _, err := breakout.LoadLevels(flagLevelsDir); err != nil {
		logger.Warn("could not load levels", "dir", flagLevelsDir, "error", err)
	}
}

// openStore opens the run history. A missing store is not fatal: the game
// still works, runs are just not recorded.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

// openAudio returns a sound player, silent when no device is available.
func openAudio() audio.Player {
	player, err := audio.Open(flagVolume)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return player
}

// terminalSize returns the size of the controlling terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
