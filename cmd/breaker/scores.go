package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breaker/internal/registry"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show run history",
	Long: `Display the best runs of a mode (default: breakout) with its
statistics, or the most recent runs of every mode. --clear deletes the
history of the mode.

Examples:
  breaker scores
  breaker scores breakout_campaign
  breaker scores --recent --limit 20
  breaker scores breakout --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs of all modes")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecent {
		showRecent(store)
		return
	}

	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'breaker list' to see available modes.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared run history of %s\n", gameID)
		return
	}
	showTop(store, gameID)
}

func showTop(store *storage.Store, gameID string) {
	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best runs - %s\n", gameID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'breaker play %s' to set the first score!\n", gameID)
		return
	}

	printRunHeader(false)
	for i, run := range runs {
		printRun(i+1, run, false)
	}

	stats, err := store.GetModeStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Most levels: %d  Wins: %d\n",
		stats.RunsCount, stats.BestScore, stats.AvgScore, stats.MostLevels, stats.Wins)
	fmt.Printf("Time played: %s\n", (time.Duration(stats.TotalPlaySecs) * time.Second).String())
}

func showRecent(store *storage.Store) {
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	printRunHeader(true)
	for i, run := range runs {
		printRun(i+1, run, true)
	}
}

func printRunHeader(withMode bool) {
	if withMode {
		fmt.Printf("  %-4s  %-18s  %-8s  %-6s  %-10s  %-6s  %s\n", "#", "Mode", "Score", "Levels", "Outcome", "Time", "Date")
		fmt.Printf("  %-4s  %-18s  %-8s  %-6s  %-10s  %-6s  %s\n", "-", "----", "-----", "------", "-------", "----", "----")
		return
	}
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %-6s  %s\n", "Rank", "Score", "Levels", "Outcome", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %-6s  %s\n", "----", "-----", "------", "-------", "----", "----")
}

func printRun(rank int, run storage.Run, withMode bool) {
	dur := fmt.Sprintf("%d:%02d", run.Duration/60, run.Duration%60)
	date := run.CreatedAt.Format("2006-01-02 15:04")
	if withMode {
		fmt.Printf("  %-4d  %-18s  %-8d  %-6d  %-10s  %-6s  %s\n", rank, run.Mode, run.Score, run.LevelsCleared, run.Outcome, dur, date)
		return
	}
	fmt.Printf("  %-4d  %-8d  %-6d  %-10s  %-6s  %s\n", rank, run.Score, run.LevelsCleared, run.Outcome, dur, date)
}
