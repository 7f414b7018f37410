package main

import (
	"time"

	"github.com/vovakirdan/skyfighter/internal/config"
	"github.com/vovakirdan/skyfighter/internal/core"
)

// loadTuning loads the config and applies the difficulty preset.
func loadTuning(path, difficulty string) (config.Config, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, preset, nil
}

// runtimeFor builds the runtime inputs for a session.
func runtimeFor(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ViewportW = cfg.Viewport.Width
	rc.ViewportH = cfg.Viewport.Height
	if cfg.TickMS > 0 {
		rc.TickPeriod = time.Duration(cfg.TickMS) * time.Millisecond
	}
	rc.Seed = flagSeed
	return rc
}
