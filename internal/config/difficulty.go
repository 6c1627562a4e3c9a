package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyBarragePreset scales the spawn and move schedule for a difficulty preset.
// Normal and fixed keep the configured schedule untouched.
func ApplyBarragePreset(cfg *BarrageConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Schedule.SpawnInterval = cfg.Schedule.SpawnInterval * 3 / 2
		cfg.Schedule.MoveInterval = cfg.Schedule.MoveInterval * 3 / 2
	case DifficultyHard:
		cfg.Schedule.SpawnInterval = max(1, cfg.Schedule.SpawnInterval/2)
		cfg.Schedule.MoveInterval = max(1, cfg.Schedule.MoveInterval/2)
		if cfg.Schedule.FireInterval > 0 {
			cfg.Schedule.FireInterval = max(1, cfg.Schedule.FireInterval/2)
		}
	}
}
