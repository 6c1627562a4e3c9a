package core

import (
	"strconv"
	"strings"
)

// Surface is the drawing target a game writes glyphs into.
// Coordinates are (col, row); writes outside the surface are dropped.
type Surface interface {
	Plot(r rune, col, row int, style Style)
	PlotText(text string, col, row int, style Style)
	PlotNumber(n int, col, row int, style Style)
	Width() int
	Height() int
}

// Cell is a single glyph with its colors.
type Cell struct {
	Rune  rune
	Style Style
}

// blankCell is what Clear fills the screen with.
var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var _ Surface = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// inBounds reports whether (x, y) addresses a cell.
func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Plot places a rune with the given style at (col, row).
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Plot(r rune, col, row int, style Style) {
	if !s.inBounds(col, row) {
		return
	}
	s.cells[row][col] = Cell{Rune: r, Style: style}
}

// PlotText writes a string horizontally starting at (col, row).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) PlotText(text string, col, row int, style Style) {
	i := 0
	for _, r := range text {
		s.Plot(r, col+i, row, style)
		i++
	}
}

// PlotNumber writes the decimal form of n starting at (col, row).
func (s *Screen) PlotNumber(n int, col, row int, style Style) {
	s.PlotText(strconv.Itoa(n), col, row, style)
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns an uncolored space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
