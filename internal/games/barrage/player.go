package barrage

import "github.com/vovakirdan/tui-barrage/internal/core"

// PlayerChar is the player's glyph.
const PlayerChar = '*'

var playerStyle = core.NewStyle(core.ColorGreen, core.ColorBlack)

// Player is the single controllable token.
// The directional moves never clamp; callers test a moved copy with
// IsColliding and keep it only when the check fails.
type Player struct {
	X, Y int
}

// NewPlayer places the player at the center of the board.
func NewPlayer(board core.Rect) Player {
	x, y := board.Center()
	return Player{X: x, Y: y}
}

func (p *Player) Up()    { p.Y-- }
func (p *Player) Down()  { p.Y++ }
func (p *Player) Left()  { p.X-- }
func (p *Player) Right() { p.X++ }

// IsColliding reports whether the player stands on a wall or off the board.
func (p Player) IsColliding(w *Walls) bool {
	return w.Occupied(p.Y, p.X)
}

// CollidesWith reports whether an active projectile sits on the player's cell.
func (p Player) CollidesWith(proj Projectile) bool {
	return proj.Active() && proj.Pos() == Pos{X: p.X, Y: p.Y}
}

// Draw writes the player glyph.
func (p Player) Draw(dst core.Surface) {
	dst.Plot(PlayerChar, p.X, p.Y, playerStyle)
}
