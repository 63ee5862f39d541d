// Package config provides shared configuration utilities and the
// difficulty presets that parameterize a session.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Difficulty selects one of the preset tuning tables. It is chosen once
// before a session starts and is immutable for the session.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// String returns the lowercase name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// DifficultySettings holds the tuning values for one difficulty.
type DifficultySettings struct {
	SpawnInterval int     `yaml:"spawnInterval"` // Base ticks between enemy spawns (shrinks with level)
	EnemySpeed    float64 `yaml:"enemySpeed"`    // Enemy forward units per tick
	EnemyDamage   int     `yaml:"enemyDamage"`   // Health lost when an enemy reaches the ship
}

// DefaultPresets returns the built-in difficulty table.
func DefaultPresets() map[Difficulty]DifficultySettings {
	return map[Difficulty]DifficultySettings{
		DifficultyEasy:   {SpawnInterval: 100, EnemySpeed: 0.2, EnemyDamage: 5},
		DifficultyNormal: {SpawnInterval: 60, EnemySpeed: 0.3, EnemyDamage: 10},
		DifficultyHard:   {SpawnInterval: 40, EnemySpeed: 0.4, EnemyDamage: 15},
	}
}

// presetFile is the YAML shape of a preset override file. Absent
// difficulties keep their built-in values.
type presetFile struct {
	Easy   *DifficultySettings `yaml:"easy"`
	Normal *DifficultySettings `yaml:"normal"`
	Hard   *DifficultySettings `yaml:"hard"`
}

// LoadPresets reads a preset override file and merges it over the
// built-in table.
func LoadPresets(path string) (map[Difficulty]DifficultySettings, error) {
	presets := DefaultPresets()

	data, err := os.ReadFile(path)
	if err != nil {
		return presets, fmt.Errorf("failed to read presets: %w", err)
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return presets, fmt.Errorf("failed to unmarshal presets: %w", err)
	}

	if file.Easy != nil {
		presets[DifficultyEasy] = *file.Easy
	}
	if file.Normal != nil {
		presets[DifficultyNormal] = *file.Normal
	}
	if file.Hard != nil {
		presets[DifficultyHard] = *file.Hard
	}
	return presets, nil
}

// PresetsEnvVar names the optional preset override file.
const PresetsEnvVar = "STARFIGHTER_PRESETS"

// PresetsFromEnv loads presets from the file named by PresetsEnvVar,
// or the built-in table when the variable is unset. The returned map is
// always usable; the error reports an unreadable or malformed file.
func PresetsFromEnv() (map[Difficulty]DifficultySettings, error) {
	path := GetEnv(PresetsEnvVar, "")
	if path == "" {
		return DefaultPresets(), nil
	}
	return LoadPresets(path)
}
