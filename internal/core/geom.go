// Package core provides the types shared by games and hosts: cells, keys and
// runtime settings.
// It contains no external dependencies (especially no Bubble Tea or tcell) to keep
// game logic pure and testable.
package core

// Rect represents an axis-aligned area of cells, used for board bounds.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle, rounding down.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
