package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// loadGame loads a game config into dst.
// Search order: customPath -> ~/.arcbox/configs/<file> -> ./configs/<file> -> embedded default.
func loadGame(customPath, filename string, embedded []byte, dst any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, dst); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, dst); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	return yaml.Unmarshal(embedded, dst)
}

// LoadTanks loads the Tank Arena configuration.
func LoadTanks(customPath string) (TanksConfig, error) {
	var cfg TanksConfig
	if err := loadGame(customPath, "tanks.yaml", defaultTanksYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultTanksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadTetris loads the Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig
	if err := loadGame(customPath, "tetris.yaml", defaultTetrisYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultTetrisConfig(), nil
	}
	return cfg, nil
}

// LoadSnake loads the Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := loadGame(customPath, "snake.yaml", defaultSnakeYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

// LoadCards loads the memory match configuration.
func LoadCards(customPath string) (CardsConfig, error) {
	var cfg CardsConfig
	if err := loadGame(customPath, "cards.yaml", defaultCardsYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultCardsConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcbox", "configs", filename)
}

// PresetByName returns the snake speed preset with the given name, falling
// back to the config's default preset, then to the first entry.
func (c SnakeConfig) PresetByName(name string) SnakePreset {
	for _, p := range c.Presets {
		if p.Name == name {
			return p
		}
	}
	if name != c.DefaultPreset && c.DefaultPreset != "" {
		return c.PresetByName(c.DefaultPreset)
	}
	if len(c.Presets) > 0 {
		return c.Presets[0]
	}
	return SnakePreset{Name: "normal", MoveEveryTicks: 8}
}
