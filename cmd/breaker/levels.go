package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breaker/internal/games/breakout"
	"github.com/vovakirdan/tui-breaker/internal/games/breakout/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels that would be played",
	Long: `Show the level list in play order. With --levels, the directory is
scanned for .yaml, .yml and .toml level files, and files that
fail to parse are reported.

Examples:
  breaker levels
  breaker levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	if flagLevelsDir != "" {
		_, skipped, err := levels.NewLoader(flagLevelsDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flagLevelsDir, err)
		}
		for _, e := range skipped {
			fmt.Fprintf(os.Stderr, "Skipped: %v\n", e)
		}
	}

	lvls, _ := breakout.LoadLevels(flagLevelsDir)

	source := "built-in"
	if flagLevelsDir != "" {
		source = flagLevelsDir
	}
	fmt.Printf("Levels (%s):\n", source)
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-7s  %-6s  %s\n", "#", maxIDLen, "ID", "Size", "Bricks", "Name")
	fmt.Printf("  %-3s  %-*s  %-7s  %-6s  %s\n", "-", maxIDLen, "--", "----", "------", "----")

	for i, l := range lvls {
		cols := 0
		if len(l.Grid) > 0 {
			cols = len(l.Grid[0])
		}
		size := fmt.Sprintf("%dx%d", cols, len(l.Grid))
		fmt.Printf("  %-3d  %-*s  %-7s  %-6d  %s\n", i+1, maxIDLen, l.ID, size, countBricks(l.Grid), l.Name)
	}
}

func countBricks(grid [][]int) int {
	n := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell > 0 {
				n++
			}
		}
	}
	return n
}
