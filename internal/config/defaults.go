package config

import (
	_ "embed"
)

// Variant IDs with built-in defaults.
const (
	VariantBarrage = "barrage"
	VariantDrift   = "barrage_drift"
)

//go:embed defaults/barrage.yaml
var defaultBarrageYAML []byte

//go:embed defaults/barrage_drift.yaml
var defaultDriftYAML []byte

// DefaultBarrageConfig returns the fire-in-place configuration.
func DefaultBarrageConfig() BarrageConfig {
	return BarrageConfig{
		Board:  BoardConfig{Width: 80, Height: 25},
		Policy: PolicyFireInPlace,
		Capacity: CapacityConfig{
			Shooters:    99,
			Projectiles: 250,
		},
		Schedule: ScheduleConfig{
			SpawnInterval: 20,
			MoveInterval:  5,
		},
		Spawn:      SpawnConfig{Row: 3},
		DrawWindow: 50,
		Seed:       6,
	}
}

// DefaultDriftConfig returns the moving-projectile configuration.
func DefaultDriftConfig() BarrageConfig {
	return BarrageConfig{
		Board:  BoardConfig{Width: 80, Height: 25},
		Policy: PolicyMoving,
		Capacity: CapacityConfig{
			Shooters:    100,
			Projectiles: 1000,
		},
		Schedule: ScheduleConfig{
			SpawnInterval: 40,
			MoveInterval:  5,
			FireInterval:  10,
		},
		Spawn:      SpawnConfig{RandomRow: true},
		DrawWindow: 1000,
		Seed:       6,
	}
}

// Default returns the hardcoded default for a variant.
func Default(variant string) (BarrageConfig, bool) {
	switch variant {
	case VariantBarrage:
		return DefaultBarrageConfig(), true
	case VariantDrift:
		return DefaultDriftConfig(), true
	default:
		return BarrageConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantBarrage:
		return defaultBarrageYAML
	case VariantDrift:
		return defaultDriftYAML
	default:
		return nil
	}
}
