package core

import "fmt"

// Config fixes the rules of one board for its whole lifetime. Dimensions,
// pool, and budgets are read at construction and never change mid-game; a
// new game means a new Config.
type Config struct {
	// Rows and Cols are the board dimensions.
	Rows int
	Cols int
	// ChipTypes is how many distinct chip types the spawn pool contains,
	// counted from the front of the standard palette.
	ChipTypes int
	// ChipScore is the point value of every chip.
	ChipScore int
	// TargetScore is the score that wins the level. Zero means no target.
	TargetScore int
	// MaxTurns is the turn budget. Non-positive means unlimited.
	MaxTurns int
	// MaxShuffles is how many shuffle attempts a single deadlock may use
	// before the game is declared unwinnable.
	MaxShuffles int
}

// DefaultConfig returns a mid-sized board suitable for quick games.
func DefaultConfig() Config {
	return Config{
		Rows:        6,
		Cols:        6,
		ChipTypes:   4,
		ChipScore:   10,
		TargetScore: 100,
		MaxTurns:    20,
		MaxShuffles: 3,
	}
}

// Validate checks the config for values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("config: board %dx%d: dimensions must be positive", c.Rows, c.Cols)
	}
	if c.ChipTypes < 1 || c.ChipTypes > MaxChipTypes {
		return fmt.Errorf("config: %d chip types: must be between 1 and %d", c.ChipTypes, MaxChipTypes)
	}
	if c.ChipScore < 1 {
		return fmt.Errorf("config: chip score %d: must be positive", c.ChipScore)
	}
	if c.TargetScore < 0 {
		return fmt.Errorf("config: target score %d: must not be negative", c.TargetScore)
	}
	if c.MaxShuffles < 0 {
		return fmt.Errorf("config: shuffle budget %d: must not be negative", c.MaxShuffles)
	}
	return nil
}

// pool returns the spawn pool the config describes.
func (c Config) pool() []ChipType {
	return allTypes[:c.ChipTypes]
}
