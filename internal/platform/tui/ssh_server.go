package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-barrage/internal/registry"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.barrage/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int

	// Game carries the config path and difficulty into each session's games.
	Game registry.Options
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    20,
	}
}

// SSHServer wraps a Wish SSH server. Every session gets its own menu and
// its own game instances; nothing is shared between sessions.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "barrage-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".barrage", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := NewSessionModel(SessionConfig{
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
		TickRate: s.config.TickRate,
		Game:     s.config.Game,
		Logger:   s.logger.With("user", sshSession.User()),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until interrupted.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionConfig configures one interactive session.
type SessionConfig struct {
	Width    int
	Height   int
	TickRate int
	Game     registry.Options
	Logger   *log.Logger
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewResults
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// a results table of the runs finished so far.
type SessionModel struct {
	config    SessionConfig
	logger    *log.Logger
	view      sessionView
	menu      MenuModel
	gameModel Model
	results   ResultsModel
	runs      []RunResult
	err       error
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(cfg.Width, cfg.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.Width = wsm.Width
		m.config.Height = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewResults:
		return m.updateResults(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		m.logger.Info("leaving", "runs", len(m.runs), "best", Best(m.runs))
		return m, tea.Quit
	}

	if m.menu.WantsResults() {
		m.results = NewResultsModel(m.runs, m.config.Width, m.config.Height)
		m.view = viewResults
		return m, m.results.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, screen, err := registry.CreateWithScreen(selected.ID, m.config.Game)
		if err != nil {
			m.logger.Error("cannot start game", "game", selected.ID, "error", err)
			m.err = err
			m.menu = NewMenuModel(m.config.Width, m.config.Height)
			return m, nil
		}
		m.err = nil

		m.gameModel = NewModel(game, screen, Options{
			TickRate: m.config.TickRate,
			Logger:   m.logger,
		})
		m.gameModel, _ = updateModel(m.gameModel, tea.WindowSizeMsg{Width: m.config.Width, Height: m.config.Height})
		m.view = viewGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.gameModel, cmd = updateModel(m.gameModel, msg)

	if m.gameModel.Ended() {
		m.runs = append(m.runs, RunResult{
			GameID:  m.gameModel.game.ID(),
			Score:   m.gameModel.State().Score,
			EndedAt: time.Now(),
		})
	}

	if m.gameModel.BackToMenu() {
		m.view = viewMenu
		m.menu = NewMenuModel(m.config.Width, m.config.Height)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		m.logger.Info("leaving", "runs", len(m.runs), "best", Best(m.runs))
		return m, tea.Quit
	}

	return m, cmd
}

// updateResults handles updates on the results screen.
func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	newResults, cmd := m.results.Update(msg)
	if resultsModel, ok := newResults.(ResultsModel); ok {
		m.results = resultsModel
	}

	if m.results.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.results.IsGoingBack() {
		m.view = viewMenu
		m.menu = NewMenuModel(m.config.Width, m.config.Height)
		return m, nil
	}
	return m, cmd
}

// updateModel forwards a message to a game model and keeps the concrete type.
func updateModel(gm Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := gm.Update(msg)
	if updated, ok := next.(Model); ok {
		gm = updated
	}
	return gm, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewResults:
		return m.results.View()
	}

	if m.err != nil {
		return m.menu.View() + "\n" + warnStyle.Render(m.err.Error())
	}
	return m.menu.View()
}

// Runs returns the runs finished so far.
func (m SessionModel) Runs() []RunResult {
	return m.runs
}
