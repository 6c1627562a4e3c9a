package barrage

import (
	"strings"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

// WallChar marks an occupied cell in a wall map.
const WallChar = '#'

var wallStyle = core.NewStyle(core.ColorBlue, core.ColorBlack)

// Walls is the static occupancy map of the board.
type Walls struct {
	bounds core.Rect
	cells  [][]bool // [row][col]
}

// NewWalls parses a newline-delimited map of '#' and ' ' into a w×h board.
// Rows shorter than w leave their trailing cells open; anything past the
// board's width or height is ignored.
func NewWalls(mapText string, w, h int) *Walls {
	cells := make([][]bool, h)
	for row := range cells {
		cells[row] = make([]bool, w)
	}

	for row, line := range strings.Split(mapText, "\n") {
		if row >= h {
			break
		}
		col := 0
		for _, ch := range strings.TrimSuffix(line, "\r") {
			if col >= w {
				break
			}
			cells[row][col] = ch == WallChar
			col++
		}
	}

	return &Walls{
		bounds: core.NewRect(0, 0, w, h),
		cells:  cells,
	}
}

// Bounds returns the board rectangle.
func (w *Walls) Bounds() core.Rect {
	return w.bounds
}

// Occupied reports whether (row, col) is a wall. Cells off the board,
// including negative coordinates, count as occupied.
func (w *Walls) Occupied(row, col int) bool {
	if !w.bounds.Contains(col, row) {
		return true
	}
	return w.cells[row][col]
}

// Draw writes every cell of the board: a wall glyph or a blank.
func (w *Walls) Draw(dst core.Surface) {
	for row := range w.cells {
		for col, wall := range w.cells[row] {
			ch := ' '
			if wall {
				ch = WallChar
			}
			dst.Plot(ch, col, row, wallStyle)
		}
	}
}
