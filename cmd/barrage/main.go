// barrage is a terminal arcade game: dodge the projectiles fired by shooters
// that keep spawning on a walled board.
//
// Usage:
//
//	barrage list                 - List available variants
//	barrage play [variant]       - Play a variant (menu when omitted)
//	barrage serve                - Start SSH server for remote play
//	barrage simulate <variant>   - Run a headless, scripted game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 20)
//	--config <path>       - Custom variant config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log <path>          - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-barrage/internal/games/barrage"
	"github.com/vovakirdan/tui-barrage/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barrage",
	Short: "Barrage - dodge projectiles in your terminal",
	SilenceErrors: true,
	Long: `Barrage is a terminal arcade game. Shooters keep spawning on a walled
board and fire projectiles at you; survive as many ticks as you can.

In barrage, shooters appear along row 3 near the top and drift downwards.
In barrage_drift, they appear on a random open cell and wander, and their
projectiles travel until they hit a wall.

Available commands:
  list      - Show all available variants
  play      - Play a variant directly, or pick one from a menu
  serve     - Start SSH server for remote play
  simulate  - Run a scripted game without a terminal

Examples:
  barrage list
  barrage play barrage
  barrage play barrage_drift --difficulty hard
  barrage serve --ssh :2222
  barrage simulate barrage --ticks 200 --keys "10:up,40:left"`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file (discarded when empty)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// gameOptions collects the global flags every game factory needs.
func gameOptions() registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

// newLogger opens the --log file, or discards everything when it is unset.
// The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLog == "" {
		return log.NewWithOptions(fallback, log.Options{Prefix: "barrage"}), func() {}, nil
	}
	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "barrage",
		ReportTimestamp: true,
	})
	return logger, func() { f.Close() }, nil
}
