package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg LinkpopConfig
	if err := yaml.Unmarshal(defaultLinkpopYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if cfg != DefaultLinkpopConfig() {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", cfg, DefaultLinkpopConfig())
	}
}

func TestLoadLinkpopCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("board:\n  rows: 5\n  cols: 7\n  chip_types: 4\n  max_shuffles: 1\nscoring:\n  chip_score: 25\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadLinkpop(path)
	if err != nil {
		t.Fatalf("LoadLinkpop(%s) error: %v", path, err)
	}
	if cfg.Board.Rows != 5 || cfg.Board.Cols != 7 {
		t.Errorf("board = %dx%d, want 5x7", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Scoring.ChipScore != 25 {
		t.Errorf("chip score = %d, want 25", cfg.Scoring.ChipScore)
	}
}

func TestLoadLinkpopMissingCustomPath(t *testing.T) {
	if _, err := LoadLinkpop(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadLinkpopInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("board: [not a map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadLinkpop(path); err == nil {
		t.Error("expected parse error for invalid YAML")
	}
}

func TestApplyLinkpopPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantEnabled   bool
		wantInitial   float64
		wantChipTypes int
	}{
		{DifficultyEasy, true, 0.0, 4},
		{DifficultyNormal, true, 0.3, 5},
		{DifficultyHard, true, 0.7, 6},
		{DifficultyFixed, false, 0.0, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultLinkpopConfig()
			ApplyLinkpopPreset(&cfg, tt.preset)

			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if tt.wantEnabled && cfg.Difficulty.InitialLevel != tt.wantInitial {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tt.wantInitial)
			}
			if cfg.Board.ChipTypes != tt.wantChipTypes {
				t.Errorf("chip types = %d, want %d", cfg.Board.ChipTypes, tt.wantChipTypes)
			}
		})
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 2000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.5},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.0},
		{1000, 0.5},
		{2000, 1.0},
		{5000, 1.0}, // Clamped
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(score=%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyLevelInterpolatesFromInitial(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 2000},
	})

	// Halfway progress lands halfway between 0.3 and 1.0.
	if got := d.Level(1000, 0); math.Abs(got-0.65) > 1e-9 {
		t.Errorf("Level = %v, want 0.65", got)
	}
}

func TestDifficultyLevelDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if got := d.Level(1000, 1000); got != 0.4 {
		t.Errorf("disabled Level = %v, want the initial level 0.4", got)
	}
}

func TestPaceTicks(t *testing.T) {
	fixed := func(level float64) *DifficultyManager {
		return NewDifficultyManager(DifficultyConfig{
			Enabled:      false,
			InitialLevel: level,
			Scaling:      ScalingConfig{SpeedMultiplier: 1.5},
		})
	}

	// Level 0 keeps the base delay.
	if got := fixed(0.0).PaceTicks(18, 0, 0); got != 18 {
		t.Errorf("PaceTicks at level 0 = %d, want 18", got)
	}
	// Level 1 divides by 1 + multiplier: 18 / 2.5 rounds to 7.
	if got := fixed(1.0).PaceTicks(18, 0, 0); got != 7 {
		t.Errorf("PaceTicks at level 1 = %d, want 7", got)
	}
	// Short delays clamp to the minimum.
	if got := fixed(1.0).PaceTicks(3, 0, 0); got != 2 {
		t.Errorf("PaceTicks clamp = %d, want 2", got)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if GetDefaultYAML("linkpop") == nil {
		t.Error("no default YAML for linkpop")
	}
	if GetDefaultYAML("linkpop_endless") == nil {
		t.Error("no default YAML for linkpop_endless")
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("expected nil for unknown game")
	}
}
