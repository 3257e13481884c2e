// dino is a side-scrolling runner: jump the cactus, keep the streak going.
//
// Usage:
//
//	dino play              - Play (default backend: tui)
//	dino backends          - List available backends
//	dino runs              - Show runs recorded in a journal file
//	dino config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Config YAML (default: ~/.dino/configs/dino.yaml, then embedded)
//	--journal <path>  - Run journal (default: in-memory, gone on exit)
//	--log <path>      - Log file for terminal backends (default: ~/.dino/dino.log)
//	--debug           - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/dino-runner/internal/platform/tcellui"
	_ "github.com/vovakirdan/dino-runner/internal/platform/tui"
	_ "github.com/vovakirdan/dino-runner/internal/platform/window"
)

var (
	// Global flags
	flagConfig  string
	flagJournal string
	flagLog     string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Runner - jump the cactus",
	Long: `Dino Runner is a single-screen side-scroller. The runner stays in place
while the ground, a cloud and a cactus scroll by; every cactus cleared is a point.

Available commands:
  play      - Start a game
  backends  - Show the available renderers
  runs      - Show runs recorded in a journal file
  config    - Print the effective configuration

Examples:
  dino play
  dino play --backend window --assets ./assets --sound
  dino play --journal ~/.dino/runs.db --show-runs
  dino runs --journal ~/.dino/runs.db`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "Path to run journal database (empty = in-memory)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "~/.dino/dino.log", "Log file for terminal backends")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}
