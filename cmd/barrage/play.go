package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-barrage/internal/platform/sound"
	bterm "github.com/vovakirdan/tui-barrage/internal/platform/term"
	"github.com/vovakirdan/tui-barrage/internal/platform/tui"
	"github.com/vovakirdan/tui-barrage/internal/registry"
)

const (
	driverTUI   = "tui"
	driverTcell = "tcell"
)

var (
	flagDriver        string
	flagScreenshotDir string
	flagMute          bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or pick one from a menu.

Controls:
  Arrows     - Move
  R          - Restart
  S          - Play again (after game over)
  Ctrl+S     - Save a screenshot (tui driver)
  Esc        - Back (after game over, tui driver)
  Q/Ctrl+C   - Quit

Drivers:
  tui    - Bubble Tea renderer (default)
  tcell  - Direct tcell renderer

Examples:
  barrage play
  barrage play barrage
  barrage play barrage_drift --difficulty easy
  barrage play barrage --driver tcell --fps 30
  barrage play barrage --config ./my-board.yaml`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runPlay,
	SilenceUsage: true,
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", driverTUI, "Renderer: tui or tcell")
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Screenshot directory (default ~/.barrage/screenshots)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagDriver != driverTUI && flagDriver != driverTcell {
		return fmt.Errorf("unknown driver %q (use tui or tcell)", flagDriver)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
	} else {
		picked, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		if picked == "" {
			return nil
		}
		gameID = picked
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'barrage list' to see available variants", gameID)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, screen, err := registry.CreateWithScreen(gameID, gameOptions())
	if err != nil {
		logger.Error("cannot create game", "game", gameID, "error", err)
		return fmt.Errorf("creating game: %w", err)
	}

	// The help line takes one row below the board.
	if screen.Width() > width || screen.Height()+1 > height {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: board is %dx%d but the terminal is %dx%d\n",
			screen.Width(), screen.Height()+1, width, height)
	}

	player := sound.NewPlayer()
	if !flagMute {
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
	}
	defer player.Close()

	onGameOver := func(string, int) { player.GameOver() }

	var runErr error
	switch flagDriver {
	case driverTcell:
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		runErr = bterm.Run(ctx, game, screen, bterm.Options{
			TickRate:   flagFPS,
			Logger:     logger,
			OnGameOver: onGameOver,
		})
	default:
		runErr = tui.Run(game, screen, tui.Options{
			TickRate:      flagFPS,
			Logger:        logger,
			ScreenshotDir: flagScreenshotDir,
			OnGameOver:    onGameOver,
		})
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
