package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "skyfighter.yaml"

// Load loads and validates the tuning.
// Search order: customPath -> ~/.skyfighter/configs/skyfighter.yaml ->
// ./configs/skyfighter.yaml -> embedded default -> Default().
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when absent or broken.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	cfg, err := parse(defaultYAML)
	if err != nil || cfg.Validate() != nil {
		return Default(), nil
	}
	return cfg, nil
}

// LoadFile reads a single config file. Fields missing from the file keep
// their Default() values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	// Maps and lists are replaced wholesale rather than merged.
	cfg.Bosses = nil
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Bosses == nil {
		cfg.Bosses = Default().Bosses
	}
	if cfg.Levels == nil {
		cfg.Levels = Default().Levels
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfighter", "configs", filename)
}
