package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("parse(defaultYAML) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults drifted from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero viewport", func(c *Config) { c.Viewport.Width = 0 }},
		{"zero tick", func(c *Config) { c.TickMS = 0 }},
		{"dead player", func(c *Config) { c.Player.Health = 0 }},
		{"max health below health", func(c *Config) { c.Player.MaxHealth = 2 }},
		{"fire rate above one", func(c *Config) { c.Enemy.FireRate = 1.5 }},
		{"negative spawn probability", func(c *Config) { c.Levels[0].SpawnProbability = -0.1 }},
		{"unknown next level", func(c *Config) { c.Levels[0].Next = "level-nine" }},
		{"unknown boss phase", func(c *Config) { c.Levels[2].BossPhases = []string{"nobody"} }},
		{"no win condition", func(c *Config) { c.Levels[0].KillThreshold = 0 }},
		{"duplicate level", func(c *Config) { c.Levels[1].ID = c.Levels[0].ID }},
		{"empty volley", func(c *Config) {
			b := c.Bosses[BossMutation]
			b.Volley = nil
			c.Bosses[BossMutation] = b
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPathOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  health: 3\nlevels:\n  - id: only\n    enemy_cap: 2\n    spawn_probability: 0.5\n    kill_threshold: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Health != 3 {
		t.Errorf("Player.Health = %d, expected 3", cfg.Player.Health)
	}
	if cfg.Player.Speed != 8 {
		t.Errorf("Player.Speed = %v, expected default 8", cfg.Player.Speed)
	}
	if len(cfg.Levels) != 1 || cfg.FirstLevel() != "only" {
		t.Errorf("Levels = %+v, expected the single custom level", cfg.Levels)
	}
	if len(cfg.Bosses) != 2 {
		t.Errorf("Bosses should fall back to defaults, got %d entries", len(cfg.Bosses))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tick_ms: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, expected ErrInvalid", err)
	}
}

func TestEnemyPenetrationDefaultsToViewport(t *testing.T) {
	cfg := Default()
	if got := cfg.EnemyPenetration(); got != 1300 {
		t.Errorf("EnemyPenetration() = %v, expected 1300", got)
	}
	if got := cfg.EnemyMaxY(); got != 600 {
		t.Errorf("EnemyMaxY() = %v, expected 600", got)
	}
	cfg.Boundaries.EnemyPenetration = 900
	if got := cfg.EnemyPenetration(); got != 900 {
		t.Errorf("EnemyPenetration() = %v, expected 900", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)

	if cfg.Player.Health != 3 {
		t.Errorf("hard Player.Health = %d, expected 3", cfg.Player.Health)
	}
	if got := cfg.Levels[0].SpawnProbability; got < 0.249 || got > 0.251 {
		t.Errorf("hard spawn probability = %v, expected 0.25", got)
	}
	if got := cfg.Bosses[BossMutation].FireRate; got < 0.149 || got > 0.151 {
		t.Errorf("hard mutation fire rate = %v, expected 0.15", got)
	}
	if Default().Bosses[BossMutation].FireRate != 0.1 {
		t.Error("ApplyPreset must not modify another config's boss map")
	}

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, Default()) {
		t.Error("normal preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("brutal"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(brutal) = %v, expected ErrInvalid", err)
	}
}

func TestWatcherDeliversValidReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, defaultYAML, 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, nil)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("player:\n  health: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Changes():
		if cfg.Player.Health != 2 {
			t.Errorf("reloaded Player.Health = %d, expected 2", cfg.Player.Health)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload delivered")
	}
}
