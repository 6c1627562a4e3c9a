// Package barrage implements the Barrage arcade game: the player dodges the
// projectiles of shooters that keep spawning around a walled arena.
//
// The engine is clocked from outside. Hosts call HandleKey for every decoded
// key and Tick once per frame; both run to completion and never overlap.
package barrage

import (
	"fmt"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/registry"
)

// Status is the game's state machine position.
type Status int

const (
	StatusNormal Status = iota
	StatusOver
)

func (s Status) String() string {
	if s == StatusOver {
		return "over"
	}
	return "normal"
}

// Policy selects how projectiles behave.
type Policy int

const (
	// PolicyFireInPlace: every tick each shooter emits a fresh volley next to
	// itself; projectiles never move and age out of the ring.
	PolicyFireInPlace Policy = iota
	// PolicyMoving: projectiles travel one cell per tick until they hit a wall,
	// and shooters fire a volley every FireInterval ticks.
	PolicyMoving
)

// ParsePolicy maps a config policy name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case config.PolicyFireInPlace:
		return PolicyFireInPlace, nil
	case config.PolicyMoving:
		return PolicyMoving, nil
	default:
		return 0, fmt.Errorf("barrage: unknown policy %q", name)
	}
}

// HUD layout.
const (
	scoreLabelCol = 1
	scoreValueCol = 7
	hudRow        = 0
)

var hudStyle = core.NewStyle(core.ColorWhite, core.ColorBlack)

// Game is the Barrage engine. It owns every entity and the random source.
type Game struct {
	id     string
	title  string
	cfg    config.BarrageConfig
	policy Policy
	dst    core.Surface

	walls       *Walls
	player      Player
	shooters    *Ring[Shooter]
	projectiles *Ring[Projectile]
	rng         *Source

	status    Status
	tickCount int
}

// New creates a game for a validated config. It draws into dst on every tick.
func New(id string, cfg config.BarrageConfig, dst core.Surface) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("barrage: %w", err)
	}
	policy, err := ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}

	title := "Barrage"
	if policy == PolicyMoving {
		title = "Barrage (Drift)"
	}

	g := &Game{
		id:          id,
		title:       title,
		cfg:         cfg,
		policy:      policy,
		dst:         dst,
		shooters:    NewRing[Shooter](cfg.Capacity.Shooters),
		projectiles: NewRing[Projectile](cfg.Capacity.Projectiles),
		rng:         NewSource(cfg.Seed),
	}
	g.Reset()
	return g, nil
}

func init() {
	registry.Register(config.VariantBarrage, "Barrage", factory(config.VariantBarrage))
	registry.Register(config.VariantDrift, "Barrage (Drift)", factory(config.VariantDrift))
}

// factory loads the variant's config and applies the difficulty preset.
func factory(variant string) registry.Factory {
	return func(dst core.Surface, opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadBarrage(opts.ConfigPath, variant)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParseDifficultyPreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyBarragePreset(&cfg, preset)
		return New(variant, cfg, dst)
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Size returns the board dimensions.
func (g *Game) Size() (width, height int) {
	return g.cfg.Board.Width, g.cfg.Board.Height
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BarrageConfig {
	return g.cfg
}

// Reset returns the game to its post-construction state: walls rebuilt,
// player centered, every slot inactive, counters zeroed and the random
// source reseeded.
func (g *Game) Reset() {
	g.walls = NewWalls(g.cfg.WallMap(), g.cfg.Board.Width, g.cfg.Board.Height)
	g.player = NewPlayer(g.walls.Bounds())
	g.shooters.Reset()
	g.projectiles.Reset()
	g.rng.Reseed()
	g.status = StatusNormal
	g.tickCount = 0
}

// HandleKey applies one key event.
//
// While playing, arrow keys move the player (a move into a wall or off the
// board is dropped) and raw R restarts. After game over only raw S or the
// character 's' do anything: they restart.
func (g *Game) HandleKey(ev core.KeyEvent) {
	switch g.status {
	case StatusNormal:
		if ev.Kind != core.KeyRaw {
			return
		}
		if ev.Code == core.KeyR {
			g.Reset()
			return
		}
		g.movePlayer(ev.Code)

	case StatusOver:
		if (ev.Kind == core.KeyRaw && ev.Code == core.KeyS) ||
			(ev.Kind == core.KeyUnicode && ev.Char == 's') {
			g.Reset()
		}
	}
}

// movePlayer moves a copy of the player and commits it only if it lands on
// an open cell.
func (g *Game) movePlayer(code core.KeyCode) {
	next := g.player
	switch code {
	case core.KeyArrowUp:
		next.Up()
	case core.KeyArrowDown:
		next.Down()
	case core.KeyArrowLeft:
		next.Left()
	case core.KeyArrowRight:
		next.Right()
	default:
		return
	}
	if !next.IsColliding(g.walls) {
		g.player = next
	}
}

// State returns the score (ticks survived) and whether the game is over.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.tickCount,
		GameOver: g.status == StatusOver,
	}
}

// Status returns the state machine position.
func (g *Game) Status() Status {
	return g.status
}

var (
	_ registry.Game  = (*Game)(nil)
	_ registry.Sizer = (*Game)(nil)
)
