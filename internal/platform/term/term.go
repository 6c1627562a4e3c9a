// Package term runs a game directly on a tcell screen, as an alternative to
// the Bubble Tea host.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/registry"
)

const helpLine = "arrows move  r restart  s play again  q quit"

// Options configures a tcell host.
type Options struct {
	TickRate   int
	Logger     *log.Logger
	OnGameOver func(gameID string, score int)
}

// Host drives one game on a tcell screen. HandleEvent and Step are not safe
// for concurrent use; Run serializes them on a single goroutine.
type Host struct {
	screen tcell.Screen
	game   registry.Game
	buf    *core.Screen
	opts   Options
	logger *log.Logger
	styles map[core.Style]tcell.Style
	state  core.GameState
}

// New creates a host for game, which draws into buf.
// The tcell screen must already be initialized.
func New(screen tcell.Screen, game registry.Game, buf *core.Screen, opts Options) *Host {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		screen: screen,
		game:   game,
		buf:    buf,
		opts:   opts,
		logger: logger,
		styles: make(map[core.Style]tcell.Style),
	}
}

// KeyEvent translates a tcell key into a game key event.
// ok is false for keys the game never sees.
func KeyEvent(ev *tcell.EventKey) (core.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.RawKey(core.KeyArrowUp), true
	case tcell.KeyDown:
		return core.RawKey(core.KeyArrowDown), true
	case tcell.KeyLeft:
		return core.RawKey(core.KeyArrowLeft), true
	case tcell.KeyRight:
		return core.RawKey(core.KeyArrowRight), true
	case tcell.KeyEscape:
		return core.RawKey(core.KeyEscape), true
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'r', 'R':
			return core.RawKey(core.KeyR), true
		case 'S':
			return core.RawKey(core.KeyS), true
		default:
			return core.UnicodeKey(r), true
		}
	}
	return core.KeyEvent{}, false
}

// isQuit reports whether ev asks to leave the game.
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// HandleEvent applies one tcell event. It returns false when the user quits.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		kev, ok := KeyEvent(ev)
		if !ok {
			return true
		}
		wasOver := h.state.GameOver
		h.game.HandleKey(kev)
		h.state = h.game.State()
		if wasOver && !h.state.GameOver {
			h.logger.Info("game restarted", "game", h.game.ID())
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// Step ticks the game once and presents the frame.
func (h *Host) Step() {
	wasOver := h.state.GameOver
	h.game.Tick()
	h.state = h.game.State()

	if !wasOver && h.state.GameOver {
		h.logger.Info("game over", "game", h.game.ID(), "score", h.state.Score)
		if h.opts.OnGameOver != nil {
			h.opts.OnGameOver(h.game.ID(), h.state.Score)
		}
	}

	h.Blit()
}

// Blit copies the cell buffer to the tcell screen and shows it.
func (h *Host) Blit() {
	for y := range h.buf.Height() {
		for x := range h.buf.Width() {
			cell := h.buf.GetCell(x, y)
			h.screen.SetContent(x, y, cell.Rune, nil, h.style(cell.Style))
		}
	}

	help := tcell.StyleDefault.Foreground(tcell.PaletteColor(core.ColorGray.ANSI()))
	for i, r := range helpLine {
		h.screen.SetContent(i, h.buf.Height(), r, nil, help)
	}
	h.screen.Show()
}

// style converts and caches a cell style.
func (h *Host) style(s core.Style) tcell.Style {
	if st, ok := h.styles[s]; ok {
		return st
	}
	st := tcell.StyleDefault.Foreground(tcellColor(s.Fg)).Background(tcellColor(s.Bg))
	h.styles[s] = st
	return st
}

func tcellColor(c core.Color) tcell.Color {
	code := c.ANSI()
	if code < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(code)
}

// State returns the last observed game state.
func (h *Host) State() core.GameState {
	return h.state
}

// Loop runs the tick and event loop until the user quits or ctx is done.
func (h *Host) Loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(h.opts.TickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.logger.Info("game started", "game", h.game.ID(), "driver", "tcell")
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.Step()
		}
	}
}

// Run opens the terminal, plays game until the user quits, and restores
// the terminal.
func Run(ctx context.Context, game registry.Game, buf *core.Screen, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	New(screen, game, buf, opts).Loop(ctx)
	return nil
}
