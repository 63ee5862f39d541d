package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPresets(t *testing.T) {
	presets := DefaultPresets()

	normal := presets[DifficultyNormal]
	if normal.SpawnInterval != 60 || normal.EnemySpeed != 0.3 || normal.EnemyDamage != 10 {
		t.Fatalf("normal preset = %+v", normal)
	}
	easy := presets[DifficultyEasy]
	if easy.SpawnInterval != 100 || easy.EnemyDamage != 5 {
		t.Fatalf("easy preset = %+v", easy)
	}
	hard := presets[DifficultyHard]
	if hard.SpawnInterval != 40 || hard.EnemySpeed != 0.4 {
		t.Fatalf("hard preset = %+v", hard)
	}
}

func TestLoadPresetsMergesOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := "normal:\n  spawnInterval: 30\n  enemySpeed: 0.5\n  enemyDamage: 12\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write presets: %v", err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}

	normal := presets[DifficultyNormal]
	if normal.SpawnInterval != 30 || normal.EnemySpeed != 0.5 || normal.EnemyDamage != 12 {
		t.Fatalf("overridden normal preset = %+v", normal)
	}

	// Difficulties absent from the file keep their defaults.
	if presets[DifficultyEasy] != DefaultPresets()[DifficultyEasy] {
		t.Fatal("easy preset should keep its default values")
	}
}

func TestLoadPresetsMissingFileKeepsDefaults(t *testing.T) {
	presets, err := LoadPresets(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if presets[DifficultyNormal] != DefaultPresets()[DifficultyNormal] {
		t.Fatal("missing file must fall back to the default table")
	}
}
