package barrage

import (
	"fmt"
	"slices"
	"strings"
)

// ProjectileState is one live projectile in a Snapshot.
type ProjectileState struct {
	Slot int
	Pos  Pos
	Dir  Direction
}

// ShooterState is one live shooter in a Snapshot.
type ShooterState struct {
	Slot int
	Pos  Pos
}

// Snapshot captures everything that evolves during play.
type Snapshot struct {
	Status           Status
	TickCount        int
	Player           Pos
	ShooterCursor    int
	ProjectileCursor int
	Shooters         []ShooterState
	Projectiles      []ProjectileState
}

// Snapshot returns the current state of the game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Status:           g.status,
		TickCount:        g.tickCount,
		Player:           Pos{X: g.player.X, Y: g.player.Y},
		ShooterCursor:    g.shooters.Cursor(),
		ProjectileCursor: g.projectiles.Cursor(),
	}
	for i, s := range g.shooters.All() {
		if s.Active() {
			snap.Shooters = append(snap.Shooters, ShooterState{Slot: i, Pos: s.pos})
		}
	}
	for i, p := range g.projectiles.All() {
		if p.Active() {
			snap.Projectiles = append(snap.Projectiles, ProjectileState{Slot: i, Pos: p.pos, Dir: p.dir})
		}
	}
	return snap
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Status == o.Status &&
		s.TickCount == o.TickCount &&
		s.Player == o.Player &&
		s.ShooterCursor == o.ShooterCursor &&
		s.ProjectileCursor == o.ProjectileCursor &&
		slices.Equal(s.Shooters, o.Shooters) &&
		slices.Equal(s.Projectiles, o.Projectiles)
}

// String returns a short multi-line summary.
func (s Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "status: %s\n", s.Status)
	fmt.Fprintf(&sb, "score: %d\n", s.TickCount)
	fmt.Fprintf(&sb, "player: %s\n", s.Player)
	fmt.Fprintf(&sb, "shooters: %d (cursor %d)\n", len(s.Shooters), s.ShooterCursor)
	for _, sh := range s.Shooters {
		fmt.Fprintf(&sb, "  [%d] %s\n", sh.Slot, sh.Pos)
	}
	fmt.Fprintf(&sb, "projectiles: %d (cursor %d)\n", len(s.Projectiles), s.ProjectileCursor)
	return sb.String()
}
