// Package config provides YAML-based game configuration loading and
// difficulty management for the LinkPop platform.
package config

// LinkpopConfig contains all configuration for the LinkPop game.
type LinkpopConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board used outside the campaign. Campaign
// levels carry their own board parameters.
type BoardConfig struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	ChipTypes   int `yaml:"chip_types"`
	MaxShuffles int `yaml:"max_shuffles"`
}

// ScoringConfig defines score values.
type ScoringConfig struct {
	ChipScore int `yaml:"chip_score"` // Points per popped chip
}

// PacingConfig defines how many host ticks each board phase holds before
// the next one runs. 60 ticks is one second.
type PacingConfig struct {
	DestroyTicks    int `yaml:"destroy_ticks"`
	GravityTicks    int `yaml:"gravity_ticks"`
	SpawnTicks      int `yaml:"spawn_ticks"`
	ShuffleTicks    int `yaml:"shuffle_ticks"`
	LevelClearTicks int `yaml:"level_clear_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Pace speed-up factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
