package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// presetScale holds the multipliers a preset applies.
type presetScale struct {
	spawn  float64 // Level spawn probability
	fire   float64 // Enemy and boss fire rates
	health int     // Player starting health
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {spawn: 0.75, fire: 0.5, health: 7},
	DifficultyNormal: {spawn: 1, fire: 1, health: 0},
	DifficultyHard:   {spawn: 1.25, fire: 1.5, health: 3},
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the tuning untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok || preset == DifficultyNormal {
		return
	}

	for i := range cfg.Levels {
		cfg.Levels[i].SpawnProbability = clampF(cfg.Levels[i].SpawnProbability*scale.spawn, 0, 1)
	}
	cfg.Enemy.FireRate = clampF(cfg.Enemy.FireRate*scale.fire, 0, 1)

	bosses := make(map[string]BossConfig, len(cfg.Bosses))
	for name, b := range cfg.Bosses {
		b.FireRate = clampF(b.FireRate*scale.fire, 0, 1)
		bosses[name] = b
	}
	cfg.Bosses = bosses

	if scale.health > 0 {
		cfg.Player.Health = scale.health
		if cfg.Player.MaxHealth < scale.health {
			cfg.Player.MaxHealth = scale.health
		}
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
