package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/games/barrage"
	"github.com/vovakirdan/tui-barrage/internal/registry"
)

var (
	flagTicks int
	flagKeys  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <variant>",
	Short: "Run a scripted game without a terminal",
	Long: `Run a variant headlessly for a fixed number of ticks and print the final
board. Runs are deterministic: the same variant, config and key script
always produce the same board.

The key script is a comma separated list of tick:key pairs. Keys are
applied before the given tick, in script order. Key names:
  up, down, left, right   - Arrow keys
  R, S                    - Raw letter keys
  esc                     - Escape
  any single character    - A typed character (e.g. s)

Examples:
  barrage simulate barrage --ticks 200
  barrage simulate barrage_drift --ticks 500 --keys "10:up,10:up,80:left"
  barrage simulate barrage --ticks 300 --keys "120:s" --difficulty hard`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to run")
	simulateCmd.Flags().StringVar(&flagKeys, "keys", "", "Key script, e.g. \"10:up,25:left\"")
}

// keyStep is one scripted key press.
type keyStep struct {
	tick int
	key  core.KeyEvent
}

// parseKeySchedule decodes a "tick:key,tick:key" script. Steps keep their
// script order; ticks must be non-negative.
func parseKeySchedule(script string) ([]keyStep, error) {
	var steps []keyStep
	for _, item := range strings.Split(script, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		tickStr, keyStr, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("key script: %q is not tick:key", item)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(tickStr))
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("key script: bad tick in %q", item)
		}
		key, err := core.ParseKey(strings.TrimSpace(keyStr))
		if err != nil {
			return nil, fmt.Errorf("key script: %w", err)
		}
		steps = append(steps, keyStep{tick: tick, key: key})
	}
	return steps, nil
}

// simulate drives game for ticks ticks, feeding scripted keys before the
// tick they name.
func simulate(game registry.Game, ticks int, steps []keyStep) {
	next := 0
	for t := range ticks {
		for next < len(steps) && steps[next].tick <= t {
			game.HandleKey(steps[next].key)
			next++
		}
		game.Tick()
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}
	steps, err := parseKeySchedule(flagKeys)
	if err != nil {
		return err
	}
	// Out-of-order steps would never fire.
	for i := 1; i < len(steps); i++ {
		if steps[i].tick < steps[i-1].tick {
			return fmt.Errorf("key script: tick %d comes after tick %d", steps[i].tick, steps[i-1].tick)
		}
	}

	game, screen, err := registry.CreateWithScreen(args[0], gameOptions())
	if err != nil {
		return err
	}

	simulate(game, flagTicks, steps)
	report(cmd.OutOrStdout(), game, screen)
	return nil
}

// report prints the final board followed by the game state.
func report(w io.Writer, game registry.Game, screen *core.Screen) {
	fmt.Fprintln(w, screen.String())
	if g, ok := game.(*barrage.Game); ok {
		fmt.Fprint(w, g.Snapshot().String())
		return
	}
	state := game.State()
	fmt.Fprintf(w, "score: %d\ngame over: %t\n", state.Score, state.GameOver)
}
