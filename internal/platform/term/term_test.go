package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/games/barrage"
)

func newSimHost(t *testing.T, opts Options) (*Host, tcell.SimulationScreen, *barrage.Game) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(80, 26)

	cfg := config.DefaultBarrageConfig()
	buf := core.NewScreen(cfg.Board.Width, cfg.Board.Height)
	g, err := barrage.New(config.VariantBarrage, cfg, buf)
	if err != nil {
		t.Fatalf("barrage.New failed: %v", err)
	}
	return New(sim, g, buf, opts), sim, g
}

func cellRune(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected core.KeyEvent
		ok       bool
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.RawKey(core.KeyArrowUp), true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.RawKey(core.KeyArrowLeft), true},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), core.RawKey(core.KeyR), true},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), core.RawKey(core.KeyS), true},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), core.UnicodeKey('s'), true},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.RawKey(core.KeyEscape), true},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), core.KeyEvent{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := KeyEvent(tc.ev)
			if ok != tc.ok || ev != tc.expected {
				t.Errorf("KeyEvent = %v, %v, expected %v, %v", ev, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestHostStepBlits(t *testing.T) {
	h, sim, _ := newSimHost(t, Options{})

	h.Step()

	if r := cellRune(sim, 0, 5); r != barrage.WallChar {
		t.Errorf("cell (0,5) = %q, expected a wall", r)
	}
	if r := cellRune(sim, 40, 12); r != barrage.PlayerChar {
		t.Errorf("cell (40,12) = %q, expected the player", r)
	}
	if r := cellRune(sim, 0, 25); r != 'a' {
		t.Errorf("cell (0,25) = %q, expected the help line", r)
	}

	cells, w, _ := sim.GetContents()
	fg, _, _ := cells[12*w+40].Style.Decompose()
	if fg != tcell.PaletteColor(core.ColorGreen.ANSI()) {
		t.Errorf("player foreground = %v, expected green", fg)
	}
}

func TestHostHandleEvent(t *testing.T) {
	h, sim, g := newSimHost(t, Options{})

	if !h.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Fatal("arrow key should not quit")
	}
	h.Step()
	if r := cellRune(sim, 40, 11); r != barrage.PlayerChar {
		t.Errorf("cell (40,11) = %q, expected the player after moving up", r)
	}
	if g.Snapshot().Player != (barrage.Pos{X: 40, Y: 11}) {
		t.Errorf("player at %s, expected (40,11)", g.Snapshot().Player)
	}

	if h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("ctrl+c should quit")
	}
}

func TestHostLoopStopsOnQuit(t *testing.T) {
	h, sim, _ := newSimHost(t, Options{TickRate: 200})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		h.Loop(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("Loop did not return after q")
	}
	if h.State().Score == 0 {
		t.Error("Loop should have ticked the game before quitting")
	}
}
