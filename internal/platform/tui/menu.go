package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-barrage/internal/registry"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items       []registry.GameInfo
	cursor      int
	width       int
	height      int
	keys        KeyMap
	help        help.Model
	quitting    bool
	selected    *registry.GameInfo // Set when user selects a game
	openResults bool               // True if user pressed Tab for results
}

// NewMenuModel creates a new menu model listing every registered game.
func NewMenuModel(width, height int) MenuModel {
	h := help.New()
	h.Width = width

	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case key.Matches(msg, m.keys.Results):
		m.openResults = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  B A R R A G E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Dodge the shooters. Survive.", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Title)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %s", item.Title))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView([]key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Results, m.keys.Quit,
	}), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected game, or nil if none selected.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user asked for the session results.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu runs the picker and returns the chosen game ID, or "" if the user quit.
func RunMenu(width, height int) (string, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return "", nil
	}
	return m.Selected().ID, nil
}
