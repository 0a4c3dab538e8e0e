package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value into a preset.
// An empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts enemy aggression for a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Combat.ShotChance *= 0.6
		cfg.Combat.AimNoise *= 1.75
		cfg.Combat.EnemyBulletDamage = max(1, cfg.Combat.EnemyBulletDamage*3/5)
		cfg.HealthItems.SpawnInterval = cfg.HealthItems.SpawnInterval * 3 / 4
	case DifficultyHard:
		cfg.Combat.ShotChance *= 1.6
		cfg.Combat.AimNoise *= 0.5
		cfg.Combat.EnemyBulletDamage = cfg.Combat.EnemyBulletDamage * 8 / 5
		cfg.Combat.ShotCooldown = max(1, cfg.Combat.ShotCooldown*2/3)
	}
	if cfg.Combat.ShotChance > 1 {
		cfg.Combat.ShotChance = 1
	}
}
