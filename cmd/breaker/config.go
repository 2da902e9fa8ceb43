package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breaker/internal/config"
)

var flagWriteConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default breakout config",
	Long: `Print the embedded default config as YAML. Files only need the keys
they override, so the output is a starting point for a custom config.

With --write the defaults are saved to ~/.breaker/configs/breakout.yaml,
unless that file already exists.

Examples:
  breaker config > my-breakout.yaml
  breaker config --write`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWriteConfig, "write", false, "Save the defaults to the user config directory")
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML("breakout")
	if !flagWriteConfig {
		os.Stdout.Write(data)
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot find home directory: %v\n", err)
		os.Exit(1)
	}
	path := filepath.Join(home, ".breaker", "configs", "breakout.yaml")
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
