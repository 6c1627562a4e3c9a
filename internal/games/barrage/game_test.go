package barrage

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/registry"
)

func newTestGame(t *testing.T, cfg config.BarrageConfig) (*Game, *core.Screen) {
	t.Helper()
	screen := core.NewScreen(cfg.Board.Width, cfg.Board.Height)
	g, err := New("test", cfg, screen)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g, screen
}

func tickN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBarrageConfig()
	cfg.DrawWindow = 0

	_, err := New("barrage", cfg, core.NewScreen(80, 25))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New error = %v, expected ErrInvalidConfig", err)
	}
}

func TestInitialState(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultBarrageConfig())

	if g.Status() != StatusNormal {
		t.Errorf("Status() = %s, expected normal", g.Status())
	}
	if st := g.State(); st.Score != 0 || st.GameOver {
		t.Errorf("State() = %+v, expected zero score and not over", st)
	}
	if g.player.X != 40 || g.player.Y != 12 {
		t.Errorf("player at (%d,%d), expected (40,12)", g.player.X, g.player.Y)
	}
	if g.shooters.Written() != 0 || g.projectiles.Written() != 0 {
		t.Error("new game should have no shooters or projectiles")
	}
}

func TestDeterminism(t *testing.T) {
	for _, cfg := range []config.BarrageConfig{config.DefaultBarrageConfig(), config.DefaultDriftConfig()} {
		t.Run(cfg.Policy, func(t *testing.T) {
			g1, s1 := newTestGame(t, cfg)
			g2, s2 := newTestGame(t, cfg)

			keys := map[int]core.KeyEvent{
				7:  core.RawKey(core.KeyArrowUp),
				30: core.RawKey(core.KeyArrowLeft),
				31: core.RawKey(core.KeyArrowLeft),
				90: core.RawKey(core.KeyArrowDown),
			}
			for i := 0; i < 300; i++ {
				if ev, ok := keys[i]; ok {
					g1.HandleKey(ev)
					g2.HandleKey(ev)
				}
				g1.Tick()
				g2.Tick()
			}

			if !g1.Snapshot().Equal(g2.Snapshot()) {
				t.Errorf("snapshots diverged:\n%s\nvs\n%s", g1.Snapshot(), g2.Snapshot())
			}
			if s1.String() != s2.String() {
				t.Error("screens diverged for identical inputs")
			}
		})
	}
}

func TestRejectedMoveIsIdentity(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultBarrageConfig())
	g.player = Player{X: 1, Y: 5}

	before := g.Snapshot()
	g.HandleKey(core.RawKey(core.KeyArrowLeft))
	if !g.Snapshot().Equal(before) {
		t.Errorf("move into a wall changed state: %s", g.Snapshot())
	}

	g.HandleKey(core.RawKey(core.KeyArrowRight))
	if g.player.X != 2 {
		t.Errorf("player.X = %d after a legal move, expected 2", g.player.X)
	}
}

func TestMoveOffOpenBoardRejected(t *testing.T) {
	cfg := config.DefaultBarrageConfig()
	cfg.Walls = "." // No walls at all; the board edge is the only limit.
	g, _ := newTestGame(t, cfg)
	g.player = Player{X: 0, Y: 0}

	g.HandleKey(core.RawKey(core.KeyArrowUp))
	g.HandleKey(core.RawKey(core.KeyArrowLeft))
	if g.player.X != 0 || g.player.Y != 0 {
		t.Errorf("player = (%d,%d), expected moves off the board to be dropped", g.player.X, g.player.Y)
	}
}

func TestUnicodeKeysIgnoredWhilePlaying(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultBarrageConfig())
	tickN(g, 3)

	before := g.Snapshot()
	g.HandleKey(core.UnicodeKey('s'))
	g.HandleKey(core.UnicodeKey('r'))
	g.HandleKey(core.RawKey(core.KeyS))
	if !g.Snapshot().Equal(before) {
		t.Error("only arrows and raw R should act while playing")
	}
}

func TestResetEqualsNewGame(t *testing.T) {
	for _, cfg := range []config.BarrageConfig{config.DefaultBarrageConfig(), config.DefaultDriftConfig()} {
		t.Run(cfg.Policy, func(t *testing.T) {
			g, screen := newTestGame(t, cfg)
			g.HandleKey(core.RawKey(core.KeyArrowUp))
			tickN(g, 137)

			g.Reset()

			fresh, freshScreen := newTestGame(t, cfg)
			if !g.Snapshot().Equal(fresh.Snapshot()) {
				t.Fatalf("after Reset:\n%s\nexpected:\n%s", g.Snapshot(), fresh.Snapshot())
			}

			// The random source is reseeded too: the futures match.
			tickN(g, 80)
			tickN(fresh, 80)
			if !g.Snapshot().Equal(fresh.Snapshot()) {
				t.Error("reset game diverged from a new game")
			}
			if screen.String() != freshScreen.String() {
				t.Error("reset game draws differently from a new game")
			}
		})
	}
}

func TestRawRRestartsWhilePlaying(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultBarrageConfig())
	g.HandleKey(core.RawKey(core.KeyArrowDown))
	tickN(g, 3)

	g.HandleKey(core.RawKey(core.KeyR))

	fresh, _ := newTestGame(t, config.DefaultBarrageConfig())
	if !g.Snapshot().Equal(fresh.Snapshot()) {
		t.Errorf("after R:\n%s\nexpected:\n%s", g.Snapshot(), fresh.Snapshot())
	}
}

func TestSpawnScenario(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultBarrageConfig())

	// The first shooter spawns on tick 0 and drifts on ticks 5, 10, 15 and 20.
	ref := NewSource(6)
	col := 1 + ref.Intn(79)
	for i := 0; i < 4; i++ {
		if col > 2 && ref.Intn(2) == 0 {
			col--
		} else {
			col++
		}
	}

	tickN(g, 20)

	snap := g.Snapshot()
	if snap.Status != StatusNormal {
		t.Fatalf("Status = %s, expected normal", snap.Status)
	}
	if snap.TickCount != 20 {
		t.Errorf("TickCount = %d, expected 20", snap.TickCount)
	}
	if len(snap.Shooters) != 1 {
		t.Fatalf("got %d shooters, expected 1", len(snap.Shooters))
	}
	if got := snap.Shooters[0].Pos; got != (Pos{X: col, Y: 7}) {
		t.Errorf("shooter at %s, expected (%d,7)", got, col)
	}
	if got := screen.Row(0)[1:9]; got != "Score:20" {
		t.Errorf("HUD = %q, expected %q", got, "Score:20")
	}

	tickN(g, 5)
	snap = g.Snapshot()
	if len(snap.Shooters) != 2 {
		t.Fatalf("got %d shooters after 25 ticks, expected 2", len(snap.Shooters))
	}
	if snap.Shooters[0].Pos.Y != 8 {
		t.Errorf("first shooter row = %d, expected 8", snap.Shooters[0].Pos.Y)
	}
	if snap.Shooters[1].Pos.Y != 4 {
		t.Errorf("second shooter row = %d, expected 4", snap.Shooters[1].Pos.Y)
	}
}

func TestAdjacentShooterEndsGame(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultBarrageConfig())
	g.shooters.Push(NewShooterAt(g.player.X+1, g.player.Y))

	g.Tick()

	if g.Status() != StatusOver {
		t.Fatalf("Status() = %s, expected over", g.Status())
	}
	if st := g.State(); !st.GameOver || st.Score != 0 {
		t.Errorf("State() = %+v, expected game over with the fatal tick rolled back", st)
	}
	if !strings.HasPrefix(screen.Row(0)[12:], gameOverText) {
		t.Errorf("row 0 = %q, expected %q at column 12", screen.Row(0), gameOverText)
	}

	frozen := g.Snapshot()
	frozenScreen := screen.String()
	for i := 0; i < 10; i++ {
		g.HandleKey(core.RawKey(core.KeyArrowUp))
		g.HandleKey(core.RawKey(core.KeyR))
		g.HandleKey(core.UnicodeKey('x'))
		g.Tick()
		if g.Status() != StatusOver {
			t.Fatalf("tick %d: game left the over state", i)
		}
	}
	if !g.Snapshot().Equal(frozen) {
		t.Error("state changed while over")
	}
	if screen.String() != frozenScreen {
		t.Error("screen changed while over")
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected frozen at 0", g.State().Score)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	restarts := []core.KeyEvent{core.UnicodeKey('s'), core.RawKey(core.KeyS)}

	for _, ev := range restarts {
		t.Run(ev.String(), func(t *testing.T) {
			g, _ := newTestGame(t, config.DefaultBarrageConfig())
			g.shooters.Push(NewShooterAt(g.player.X, g.player.Y-1))
			g.Tick()
			if g.Status() != StatusOver {
				t.Fatalf("Status() = %s, expected over", g.Status())
			}

			g.HandleKey(ev)

			fresh, _ := newTestGame(t, config.DefaultBarrageConfig())
			if !g.Snapshot().Equal(fresh.Snapshot()) {
				t.Errorf("after restart:\n%s\nexpected:\n%s", g.Snapshot(), fresh.Snapshot())
			}
		})
	}
}

func TestScoreCountsSurvivedTicks(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultBarrageConfig())
	for i := 1; i <= 15; i++ {
		g.Tick()
		if g.State().Score != i {
			t.Fatalf("Score = %d after %d ticks", g.State().Score, i)
		}
	}
}

func TestShooterRingWraps(t *testing.T) {
	cfg := config.DefaultBarrageConfig()
	cfg.Capacity.Shooters = 3
	cfg.Schedule.SpawnInterval = 1
	cfg.Spawn.Row = 1
	g, _ := newTestGame(t, cfg)

	tickN(g, 5)

	if g.Status() != StatusNormal {
		t.Fatalf("Status() = %s, expected normal", g.Status())
	}
	if g.shooters.Written() != 3 {
		t.Errorf("Written() = %d, expected watermark capped at 3", g.shooters.Written())
	}
	if g.shooters.Cursor() != 5%3 {
		t.Errorf("Cursor() = %d, expected %d", g.shooters.Cursor(), 5%3)
	}
}

func TestProjectileRingWraps(t *testing.T) {
	cfg := config.DefaultBarrageConfig()
	cfg.Capacity.Projectiles = 10
	cfg.DrawWindow = 10
	g, _ := newTestGame(t, cfg)

	// One shooter, four projectiles per tick.
	tickN(g, 3)
	if g.projectiles.Cursor() != 12%10 {
		t.Errorf("Cursor() = %d, expected %d", g.projectiles.Cursor(), 12%10)
	}
	if g.projectiles.Written() != 10 {
		t.Errorf("Written() = %d, expected 10", g.projectiles.Written())
	}
}

func TestMovingPolicyProjectilesTravel(t *testing.T) {
	cfg := config.DefaultDriftConfig()
	cfg.Schedule.SpawnInterval = 1000
	cfg.Schedule.MoveInterval = 1000
	cfg.Schedule.FireInterval = 1000
	g, _ := newTestGame(t, cfg)

	g.shooters.Reset()
	g.shooters.Push(NewShooterAt(10, 5))
	g.projectiles.Push(NewProjectile(Pos{X: 11, Y: 5}, DirRight))
	g.projectiles.Push(NewProjectile(Pos{X: 10, Y: 2}, DirUp))
	g.tickCount = 1

	g.Tick()
	snap := g.Snapshot()
	if len(snap.Projectiles) != 2 {
		t.Fatalf("got %d projectiles, expected 2", len(snap.Projectiles))
	}
	if snap.Projectiles[0].Pos != (Pos{X: 12, Y: 5}) {
		t.Errorf("right-bound projectile at %s, expected (12,5)", snap.Projectiles[0].Pos)
	}
	if snap.Projectiles[1].Pos != (Pos{X: 10, Y: 1}) {
		t.Errorf("up-bound projectile at %s, expected (10,1)", snap.Projectiles[1].Pos)
	}

	// Row 0 is the border wall.
	g.Tick()
	snap = g.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Errorf("got %d projectiles, expected the up-bound one removed at the wall", len(snap.Projectiles))
	}
}

func TestMovingProjectileOutsideDrawWindowEndsGame(t *testing.T) {
	cfg := config.DefaultDriftConfig()
	cfg.Schedule.SpawnInterval = 1000
	cfg.Schedule.MoveInterval = 1000
	cfg.Schedule.FireInterval = 1000
	cfg.DrawWindow = 2
	g, screen := newTestGame(t, cfg)

	// The player sits at (40,12). The right-bound projectile is pushed first,
	// so the two later writes fill the whole draw window.
	g.projectiles.Push(NewProjectile(Pos{X: 39, Y: 12}, DirRight))
	g.projectiles.Push(NewProjectile(Pos{X: 10, Y: 2}, DirDown))
	g.projectiles.Push(NewProjectile(Pos{X: 10, Y: 3}, DirDown))
	g.tickCount = 1

	g.Tick()
	if g.Status() != StatusOver {
		t.Fatalf("Status() = %s, expected over after a projectile reached the player", g.Status())
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, expected the fatal tick rolled back to 1", g.State().Score)
	}
	if screen.Get(10, 4) != ProjectileChar {
		t.Errorf("row 4 = %q, expected every live projectile drawn", screen.Row(4))
	}
}

func TestRandomSpawnAvoidsWalls(t *testing.T) {
	cfg := config.DefaultDriftConfig()
	cfg.Board = config.BoardConfig{Width: 12, Height: 8}
	cfg.Walls = strings.Join([]string{
		"############",
		"#   ####   #",
		"#   ####   #",
		"#          #",
		"# ###  ### #",
		"#   ####   #",
		"#   ####   #",
		"############",
	}, "\n")
	cfg.Capacity.Shooters = 300
	cfg.Schedule.SpawnInterval = 1
	cfg.Schedule.MoveInterval = 1000
	cfg.Schedule.FireInterval = 1000
	g, _ := newTestGame(t, cfg)

	tickN(g, 200)

	spawned := 0
	for _, s := range g.shooters.All() {
		if !s.Active() {
			continue
		}
		spawned++
		if g.walls.Occupied(s.pos.Y, s.pos.X) {
			t.Errorf("shooter spawned inside a wall at %s", s.pos)
		}
	}
	if spawned == 0 || spawned == 200 {
		t.Errorf("spawned %d shooters in 200 ticks, expected some spawns skipped on walls", spawned)
	}
}

func TestMovingPolicyFireSkipsWalls(t *testing.T) {
	cfg := config.DefaultDriftConfig()
	cfg.Schedule.SpawnInterval = 1000
	cfg.Schedule.MoveInterval = 1000
	cfg.Schedule.FireInterval = 1
	g, _ := newTestGame(t, cfg)

	g.shooters.Reset()
	g.shooters.Push(NewShooterAt(1, 1)) // Walls above and to the left.
	g.tickCount = 1

	g.Tick()
	snap := g.Snapshot()
	if len(snap.Projectiles) != 2 {
		t.Fatalf("got %d projectiles, expected 2 (down and right)", len(snap.Projectiles))
	}
	if snap.Projectiles[0].Dir != DirDown || snap.Projectiles[1].Dir != DirRight {
		t.Errorf("fired %s and %s, expected down and right", snap.Projectiles[0].Dir, snap.Projectiles[1].Dir)
	}
}

func TestDrawLayout(t *testing.T) {
	g, screen := newTestGame(t, config.DefaultBarrageConfig())
	g.Tick()

	if screen.Get(0, 5) != WallChar || screen.Get(79, 24) != WallChar {
		t.Error("border walls should be drawn")
	}
	if screen.Get(40, 12) != PlayerChar {
		t.Errorf("Get(40, 12) = %q, expected the player", screen.Get(40, 12))
	}
	if cell := screen.GetCell(40, 12); cell.Style != playerStyle {
		t.Errorf("player style = %+v, expected %+v", cell.Style, playerStyle)
	}
	if got := screen.Row(0)[1:8]; got != "Score:1" {
		t.Errorf("HUD = %q, expected %q", got, "Score:1")
	}

	sh := g.Snapshot().Shooters[0].Pos
	if screen.Get(sh.X, sh.Y) != ShooterChar {
		t.Errorf("Get%s = %q, expected the shooter", sh, screen.Get(sh.X, sh.Y))
	}
}

func TestRegisteredVariants(t *testing.T) {
	for _, id := range []string{config.VariantBarrage, config.VariantDrift} {
		g, err := registry.Create(id, core.NewScreen(80, 25), registry.Options{Difficulty: "hard"})
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		bg, ok := g.(*Game)
		if !ok {
			t.Fatalf("Create(%q) returned %T", id, g)
		}
		if bg.Config().Schedule.MoveInterval != 2 {
			t.Errorf("hard MoveInterval = %d, expected 2", bg.Config().Schedule.MoveInterval)
		}
	}

	if _, err := registry.Create(config.VariantBarrage, core.NewScreen(80, 25), registry.Options{Difficulty: "brutal"}); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy(config.PolicyMoving); err != nil || p != PolicyMoving {
		t.Errorf("ParsePolicy(moving) = %v, %v", p, err)
	}
	if _, err := ParsePolicy("orbit"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
