package core

// EffectSink receives visual side effects from the simulation. The core
// calls these methods at the moment the corresponding state change happens;
// the sink decides how (and whether) to show it. The core never waits for
// effects to finish, so a sink must not block.
type EffectSink interface {
	// ChipLinked fires when a chip joins the active link chain.
	ChipLinked(chip *Chip)
	// ChipUnlinked fires when a chip leaves the chain, either by backtrack
	// or because the chain was released or discarded.
	ChipUnlinked(chip *Chip)
	// ChipDestroyed fires when a popped chip is removed from the board.
	ChipDestroyed(chip *Chip, row, col int)
	// ChipMoved fires when a chip slides from one tile to another during
	// gravity compaction or a shuffle.
	ChipMoved(chip *Chip, fromRow, fromCol, toRow, toCol int)
	// ChipSpawned fires when a freshly drawn chip lands on an empty tile.
	ChipSpawned(chip *Chip, row, col int)
}

// NopEffects discards every effect. Useful for tests and headless runs.
type NopEffects struct{}

func (NopEffects) ChipLinked(*Chip) {}
func (NopEffects) ChipUnlinked(*Chip) {}
func (NopEffects) ChipDestroyed(*Chip, int, int) {}
func (NopEffects) ChipMoved(*Chip, int, int, int, int) {}
func (NopEffects) ChipSpawned(*Chip, int, int) {}

// Logger is the slice of logging the core needs: warnings about recoverable
// inconsistencies. The platform passes its own logger; tests usually pass
// nothing and get nopLogger.
type Logger interface {
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}
