package config

import (
	_ "embed"
)

//go:embed defaults/linkpop.yaml
var defaultLinkpopYAML []byte

// DefaultLinkpopConfig returns the default LinkPop configuration.
func DefaultLinkpopConfig() LinkpopConfig {
	return LinkpopConfig{
		Board: BoardConfig{
			Rows:        8,
			Cols:        8,
			ChipTypes:   5,
			MaxShuffles: 3,
		},
		Scoring: ScoringConfig{
			ChipScore: 10,
		},
		Pacing: PacingConfig{
			DestroyTicks:    18,
			GravityTicks:    12,
			SpawnTicks:      12,
			ShuffleTicks:    30,
			LevelClearTicks: 120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "linkpop", "linkpop_endless":
		return defaultLinkpopYAML
	default:
		return nil
	}
}
