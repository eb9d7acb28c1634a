package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLinkpop loads LinkPop configuration.
// Search order: customPath -> ~/.linkpop/configs/linkpop.yaml -> ./configs/linkpop.yaml -> embedded default
func LoadLinkpop(customPath string) (LinkpopConfig, error) {
	var cfg LinkpopConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("linkpop.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/linkpop.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLinkpopYAML, &cfg); err != nil {
		return DefaultLinkpopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linkpop", "configs", filename)
}

// ApplyLinkpopPreset modifies the config based on a difficulty preset.
func ApplyLinkpopPreset(cfg *LinkpopConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the endless board based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Board.ChipTypes = 4
		cfg.Board.MaxShuffles = 4
	case DifficultyHard:
		cfg.Board.ChipTypes = 6
		cfg.Board.MaxShuffles = 2
	}
}
