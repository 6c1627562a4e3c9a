package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

// lipglossColor maps a core color to a terminal color; ok is false for the
// terminal default.
func lipglossColor(c core.Color) (lipgloss.Color, bool) {
	code := c.ANSI()
	if code < 0 {
		return "", false
	}
	return lipgloss.Color(strconv.Itoa(code)), true
}

// styleFor builds the lipgloss style for a cell style.
func styleFor(s core.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if fg, ok := lipglossColor(s.Fg); ok {
		st = st.Foreground(fg)
	}
	if bg, ok := lipglossColor(s.Bg); ok {
		st = st.Background(bg)
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Style]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
