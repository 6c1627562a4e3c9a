// Package config provides YAML-based game configuration loading and
// difficulty presets for the barrage variants.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Projectile policies.
const (
	PolicyFireInPlace = "fire_in_place" // Shooters emit a fresh volley every tick; projectiles never move
	PolicyMoving      = "moving"        // Projectiles travel one cell per tick and stop at walls
)

// BarrageConfig contains all configuration for one barrage variant.
type BarrageConfig struct {
	Board      BoardConfig    `yaml:"board"`
	Walls      string         `yaml:"walls"` // '#' rows; empty means an enclosed border
	Policy     string         `yaml:"policy"`
	Capacity   CapacityConfig `yaml:"capacity"`
	Schedule   ScheduleConfig `yaml:"schedule"`
	Spawn      SpawnConfig    `yaml:"spawn"`
	DrawWindow int            `yaml:"draw_window"` // Fire-in-place: most recent projectiles drawn and checked each tick
	Seed       uint64         `yaml:"seed"`
}

// BoardConfig defines the fixed board size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CapacityConfig sizes the fixed slot rings.
type CapacityConfig struct {
	Shooters    int `yaml:"shooters"`
	Projectiles int `yaml:"projectiles"`
}

// ScheduleConfig defines how often things happen, in ticks.
type ScheduleConfig struct {
	SpawnInterval int `yaml:"spawn_interval"`
	MoveInterval  int `yaml:"move_interval"`
	FireInterval  int `yaml:"fire_interval"` // Moving policy only
}

// SpawnConfig defines where new shooters appear.
type SpawnConfig struct {
	Row       int  `yaml:"row"`        // Fixed spawn row when RandomRow is false
	RandomRow bool `yaml:"random_row"` // Pick a random interior row instead
}

// WallMap returns the configured wall map, or an enclosed border of the board size.
func (c BarrageConfig) WallMap() string {
	if strings.TrimSpace(c.Walls) == "" {
		return BorderWalls(c.Board.Width, c.Board.Height)
	}
	return c.Walls
}

// Validate checks that the config describes a playable board.
func (c BarrageConfig) Validate() error {
	switch {
	case c.Board.Width < 3 || c.Board.Height < 3:
		return fmt.Errorf("%w: board %dx%d is smaller than 3x3", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Policy != PolicyFireInPlace && c.Policy != PolicyMoving:
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, c.Policy)
	case c.Capacity.Shooters <= 0 || c.Capacity.Projectiles <= 0:
		return fmt.Errorf("%w: capacities must be positive", ErrInvalidConfig)
	case c.Schedule.SpawnInterval <= 0 || c.Schedule.MoveInterval <= 0:
		return fmt.Errorf("%w: spawn and move intervals must be positive", ErrInvalidConfig)
	case c.Policy == PolicyMoving && c.Schedule.FireInterval <= 0:
		return fmt.Errorf("%w: fire_interval must be positive for the moving policy", ErrInvalidConfig)
	case c.DrawWindow <= 0 || c.DrawWindow > c.Capacity.Projectiles:
		return fmt.Errorf("%w: draw_window %d must be in [1, %d]", ErrInvalidConfig, c.DrawWindow, c.Capacity.Projectiles)
	case !c.Spawn.RandomRow && (c.Spawn.Row < 0 || c.Spawn.Row >= c.Board.Height):
		return fmt.Errorf("%w: spawn row %d is off the board", ErrInvalidConfig, c.Spawn.Row)
	}
	return nil
}

// BorderWalls builds a w×h map whose border cells are walls.
func BorderWalls(w, h int) string {
	var sb strings.Builder
	full := strings.Repeat("#", w)
	inner := "#" + strings.Repeat(" ", max(w-2, 0)) + "#"
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		if y == 0 || y == h-1 {
			sb.WriteString(full)
		} else {
			sb.WriteString(inner)
		}
	}
	return sb.String()
}
