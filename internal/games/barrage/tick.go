package barrage

import (
	"iter"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

const gameOverText = "Game Over! Press 's' to restart"

// Tick advances the simulation one step and redraws the surface.
// After game over nothing moves; the frozen board is redrawn.
func (g *Game) Tick() {
	if g.status == StatusNormal {
		g.step()
	}
	g.draw()
}

func (g *Game) step() {
	sched := g.cfg.Schedule

	if g.tickCount%sched.SpawnInterval == 0 {
		g.spawnShooter()
	}
	g.tickCount++

	if g.tickCount%sched.MoveInterval == 0 {
		g.moveShooters()
	}

	switch g.policy {
	case PolicyFireInPlace:
		for _, s := range g.shooters.All() {
			if g.armed(s) {
				g.fire(*s, false)
			}
		}
	case PolicyMoving:
		for _, p := range g.projectiles.All() {
			p.Advance(g.walls)
		}
		if g.tickCount%sched.FireInterval == 0 {
			for _, s := range g.shooters.All() {
				if g.armed(s) {
					g.fire(*s, true)
				}
			}
		}
	}

	for _, p := range g.live() {
		if g.player.CollidesWith(*p) {
			g.status = StatusOver
			// The fatal tick does not count toward the score.
			g.tickCount--
			break
		}
	}
}

// live yields the projectiles that are drawn and can hit the player.
// Fire-in-place projectiles only matter while they are among the newest
// DrawWindow writes; moving projectiles matter until a wall removes them.
func (g *Game) live() iter.Seq2[int, *Projectile] {
	if g.policy == PolicyMoving {
		return g.projectiles.All()
	}
	return g.projectiles.Recent(g.cfg.DrawWindow)
}

// spawnShooter activates the next shooter slot. The column is always
// random; the row is either the configured spawn row or a random interior
// row, drawn after the column. A random cell that lands on a wall is not
// redrawn: nothing spawns this time.
func (g *Game) spawnShooter() {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	if g.cfg.Spawn.RandomRow {
		col := 1 + g.rng.Intn(w-2)
		row := 1 + g.rng.Intn(h-2)
		if g.walls.Occupied(row, col) {
			return
		}
		g.shooters.Push(NewShooterAt(col, row))
		return
	}
	col := 1 + g.rng.Intn(w-1)
	g.shooters.Push(NewShooterAt(col, g.cfg.Spawn.Row))
}

func (g *Game) moveShooters() {
	for _, s := range g.shooters.All() {
		if !s.Active() {
			continue
		}
		switch g.policy {
		case PolicyFireInPlace:
			s.Drift(g.rng)
		case PolicyMoving:
			s.Shift(g.rng, g.walls)
		}
	}
}

// armed reports whether a shooter is live and still on the board.
// Shooters that drifted off the bottom stay in their slot but go quiet.
func (g *Game) armed(s *Shooter) bool {
	return s.Active() && g.walls.Bounds().Contains(s.pos.X, s.pos.Y)
}

// fire pushes a volley into the projectile ring. With skipWalls set,
// projectiles that would be born inside a wall are dropped.
func (g *Game) fire(s Shooter, skipWalls bool) {
	for _, p := range s.Volley() {
		if skipWalls && g.walls.Occupied(p.pos.Y, p.pos.X) {
			continue
		}
		g.projectiles.Push(p)
	}
}

func (g *Game) draw() {
	g.walls.Draw(g.dst)
	g.player.Draw(g.dst)

	for _, s := range g.shooters.All() {
		if g.armed(s) {
			s.Draw(g.dst)
		}
	}

	board := g.walls.Bounds()
	for _, p := range g.live() {
		p.Draw(g.dst, board)
	}

	g.dst.PlotText("Score:", scoreLabelCol, hudRow, hudStyle)
	g.dst.PlotNumber(g.tickCount, scoreValueCol, hudRow, hudStyle)
	if g.status == StatusOver {
		g.dst.PlotText(gameOverText, g.cfg.Board.Height/2, hudRow, hudStyle)
	}
}

// Surface returns the drawing target.
func (g *Game) Surface() core.Surface {
	return g.dst
}
