package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/registry"
)

// Options configures a game model.
type Options struct {
	TickRate      int
	Logger        *log.Logger
	ScreenshotDir string                         // Defaults to ~/.barrage/screenshots
	OnGameOver    func(gameID string, score int) // Called once per finished run
}

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

// Model is the Bubble Tea model for running a single game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	width     int
	height    int
	quitting  bool
	back      bool
	ended     bool // Set by the update whose tick ended the run
	lastShot  string
	tickID    int64
}

// NewModel creates a new Bubble Tea model for a game drawing into screen.
func NewModel(game registry.Game, screen *core.Screen, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: screen,
		opts:   opts,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		tickID: nextTickID(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID())
	return tickCmd(m.tickID, m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ended = false

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back) && m.gameState.GameOver:
		m.back = true
		return m, tea.Quit
	}

	ev, ok := m.keys.GameKey(msg)
	if !ok {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	m.game.HandleKey(ev)
	m.gameState = m.game.State()
	if wasOver && !m.gameState.GameOver {
		m.logger.Info("game restarted", "game", m.game.ID())
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	m.game.Tick()
	m.gameState = m.game.State()

	m.ended = !wasOver && m.gameState.GameOver
	if m.ended {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
		if m.opts.OnGameOver != nil {
			m.opts.OnGameOver(m.game.ID(), m.gameState.Score)
		}
	}

	return m, tickCmd(m.tickID, m.opts.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".barrage", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.lastShot = path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := m.screen.Width(), m.screen.Height()+1
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return warnStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height))
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.gameState.GameOver {
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Again, m.keys.Back, m.keys.Quit}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Ended reports whether the most recent update finished the run.
func (m Model) Ended() bool {
	return m.ended
}

// LastScreenshot returns the path of the last saved screenshot.
func (m Model) LastScreenshot() string {
	return m.lastShot
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave a finished game.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, screen *core.Screen, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, screen, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
