package barrage

import "github.com/vovakirdan/tui-barrage/internal/core"

// ShooterChar is the shooter glyph.
const ShooterChar = 'S'

var shooterStyle = core.NewStyle(core.ColorMagenta, core.ColorBlack)

// Shooter is a spawned hazard that emits projectiles. The zero value is an
// inactive slot.
type Shooter struct {
	pos    Pos
	active bool
}

// NewShooterAt creates an active shooter at (x, y).
func NewShooterAt(x, y int) Shooter {
	return Shooter{pos: Pos{X: x, Y: y}, active: true}
}

// Active reports whether the slot holds a live shooter.
func (s Shooter) Active() bool {
	return s.active
}

// Pos returns the shooter's cell.
func (s Shooter) Pos() Pos {
	return s.pos
}

// MoveTo activates the shooter at (x, y), or relocates it there.
func (s *Shooter) MoveTo(x, y int) {
	s.pos = Pos{X: x, Y: y}
	s.active = true
}

// Shoot returns a new projectile one cell away in dir.
func (s Shooter) Shoot(dir Direction) Projectile {
	return NewProjectile(s.pos.Add(dir.Delta()), dir)
}

func (s Shooter) ShootRight() Projectile { return s.Shoot(DirRight) }
func (s Shooter) ShootDown() Projectile  { return s.Shoot(DirDown) }
func (s Shooter) ShootLeft() Projectile  { return s.Shoot(DirLeft) }
func (s Shooter) ShootUp() Projectile    { return s.Shoot(DirUp) }

// Volley returns one projectile per direction, in firing order.
func (s Shooter) Volley() [4]Projectile {
	return [4]Projectile{s.ShootDown(), s.ShootLeft(), s.ShootUp(), s.ShootRight()}
}

// Shift takes one random cardinal step. If the chosen cell is occupied the
// shooter stays where it is this time; no other direction is tried.
func (s *Shooter) Shift(rng *Source, w *Walls) {
	dir := Direction(rng.Intn(4))
	next := s.pos.Add(dir.Delta())
	if w.Occupied(next.Y, next.X) {
		return
	}
	s.pos = next
}

// Drift steps one row down and one column sideways. Away from the left edge
// the side is random; at column 2 or less it is always to the right.
func (s *Shooter) Drift(rng *Source) {
	dx := 1
	if s.pos.X > 2 && rng.Intn(2) == 0 {
		dx = -1
	}
	s.pos = s.pos.Add(dx, 1)
}

// Draw writes the shooter glyph.
func (s Shooter) Draw(dst core.Surface) {
	dst.Plot(ShooterChar, s.pos.X, s.pos.Y, shooterStyle)
}
