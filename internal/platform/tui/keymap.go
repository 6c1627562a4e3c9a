package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

// KeyMap defines the key bindings shared by the game and menu screens.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Restart    key.Binding
	Again      key.Binding
	Select     key.Binding
	Results    key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Again, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Again, k.Screenshot},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Again: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "play again"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Results: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "results"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// GameKey translates a Bubble Tea key message into a game key event.
// Arrows and R are raw keys; lowercase s and any other single printable
// character arrive as unicode. ok is false for keys the game never sees.
func (k KeyMap) GameKey(msg tea.KeyMsg) (ev core.KeyEvent, ok bool) {
	switch msg.String() {
	case "up":
		return core.RawKey(core.KeyArrowUp), true
	case "down":
		return core.RawKey(core.KeyArrowDown), true
	case "left":
		return core.RawKey(core.KeyArrowLeft), true
	case "right":
		return core.RawKey(core.KeyArrowRight), true
	case "r", "R":
		return core.RawKey(core.KeyR), true
	case "S":
		return core.RawKey(core.KeyS), true
	case "esc":
		return core.RawKey(core.KeyEscape), true
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return core.UnicodeKey(msg.Runes[0]), true
	}
	return core.KeyEvent{}, false
}
