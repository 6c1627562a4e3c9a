package barrage

import (
	"fmt"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

// ProjectileChar is the projectile glyph.
const ProjectileChar = 'X'

var projectileStyle = core.NewStyle(core.ColorYellow, core.ColorBlack)

// Pos is a board cell; X is the column and Y the row.
type Pos struct {
	X, Y int
}

// Add returns the position offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// String returns "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is the travel direction of a projectile.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the (dx, dy) step for one cell of travel.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Projectile is a directional hazard. The zero value is inactive and
// heading right.
type Projectile struct {
	pos    Pos
	dir    Direction
	active bool
}

// NewProjectile creates an active projectile at pos heading in dir.
func NewProjectile(pos Pos, dir Direction) Projectile {
	return Projectile{pos: pos, dir: dir, active: true}
}

// Active reports whether the projectile is live.
func (p Projectile) Active() bool {
	return p.active
}

// Pos returns the current cell. Meaningless when inactive.
func (p Projectile) Pos() Pos {
	return p.pos
}

// Dir returns the travel direction.
func (p Projectile) Dir() Direction {
	return p.dir
}

// Remove retires the projectile.
func (p *Projectile) Remove() {
	p.active = false
	p.pos = Pos{}
}

// Advance moves one cell along the travel direction. If that cell is a wall
// or off the board the projectile is removed instead.
func (p *Projectile) Advance(w *Walls) {
	if !p.active {
		return
	}
	next := p.pos.Add(p.dir.Delta())
	if w.Occupied(next.Y, next.X) {
		p.Remove()
		return
	}
	p.pos = next
}

// Occupied reports whether (row, col) is blocked by this projectile.
// Cells outside bounds always count as occupied; cells inside only match a
// live projectile standing on them.
func (p Projectile) Occupied(row, col int, bounds core.Rect) bool {
	if !bounds.Contains(col, row) {
		return true
	}
	return p.active && p.pos.X == col && p.pos.Y == row
}

// Draw writes the projectile glyph unless it is inactive or sits on the
// last row or column of the board.
func (p Projectile) Draw(dst core.Surface, board core.Rect) {
	if !p.active {
		return
	}
	visible := core.NewRect(board.X, board.Y, board.W-1, board.H-1)
	if !visible.Contains(p.pos.X, p.pos.Y) {
		return
	}
	dst.Plot(ProjectileChar, p.pos.X, p.pos.Y, projectileStyle)
}
