package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunResult is one finished run in the current session.
type RunResult struct {
	GameID  string
	Score   int
	EndedAt time.Time
}

// ResultsModel shows the runs finished in this session.
// Nothing is persisted; the list lives as long as the session.
type ResultsModel struct {
	results   []RunResult
	table     table.Model
	help      help.Model
	keys      KeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewResultsModel creates a results screen, newest run first.
func NewResultsModel(results []RunResult, width, height int) ResultsModel {
	h := help.New()
	h.Width = width

	m := ResultsModel{
		results: results,
		keys:    DefaultKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates the table sized to the window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Game", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, 0, len(m.results))
	for i := len(m.results) - 1; i >= 0; i-- {
		r := m.results[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			r.GameID,
			strconv.Itoa(r.Score),
			r.EndedAt.Format("15:04:05"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Results):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results table.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Render("SESSION RESULTS")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.results) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No finished runs yet.")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(empty)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.table.View())))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Down, m.keys.Back, m.keys.Quit})))

	return b.String()
}

// Best returns the highest score among results, or 0.
func Best(results []RunResult) int {
	best := 0
	for _, r := range results {
		best = max(best, r.Score)
	}
	return best
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}
