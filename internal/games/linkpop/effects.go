package linkpop

import (
	"github.com/vovakirdan/tui-linkpop/internal/games/linkpop/core"
)

// pulseKind tags a transient board effect for the renderer.
type pulseKind uint8

const (
	pulseDestroy pulseKind = iota
	pulseSpawn
	pulseMove
)

// pulse is a short-lived visual marker on a tile. The renderer draws it
// until ttl runs out.
type pulse struct {
	kind pulseKind
	row  int
	col  int
	chip core.ChipType
	ttl  int
}

// Pulse lifetimes in ticks (60 ticks per second).
const (
	destroyPulseTicks = 14
	spawnPulseTicks   = 10
	movePulseTicks    = 6
)

// boardEffects adapts simulation callbacks into render pulses. It
// implements core.EffectSink and never blocks: callbacks only append to
// the pulse list.
type boardEffects struct {
	pulses []pulse
}

func newBoardEffects() *boardEffects {
	return &boardEffects{}
}

// ChipLinked and ChipUnlinked carry no pulse: the renderer reads the live
// chain from the orchestrator instead of replaying link history.
func (e *boardEffects) ChipLinked(chip *core.Chip)   {}
func (e *boardEffects) ChipUnlinked(chip *core.Chip) {}

func (e *boardEffects) ChipDestroyed(chip *core.Chip, row, col int) {
	e.pulses = append(e.pulses, pulse{kind: pulseDestroy, row: row, col: col, chip: chip.Type, ttl: destroyPulseTicks})
}

func (e *boardEffects) ChipMoved(chip *core.Chip, fromRow, fromCol, toRow, toCol int) {
	e.pulses = append(e.pulses, pulse{kind: pulseMove, row: toRow, col: toCol, chip: chip.Type, ttl: movePulseTicks})
}

func (e *boardEffects) ChipSpawned(chip *core.Chip, row, col int) {
	e.pulses = append(e.pulses, pulse{kind: pulseSpawn, row: row, col: col, chip: chip.Type, ttl: spawnPulseTicks})
}

// tick ages all pulses and drops the expired ones.
func (e *boardEffects) tick() {
	alive := e.pulses[:0]
	for _, p := range e.pulses {
		p.ttl--
		if p.ttl > 0 {
			alive = append(alive, p)
		}
	}
	e.pulses = alive
}

// destroyAt reports whether a destroy pulse is active on the tile and, if
// so, the chip type that was destroyed there.
func (e *boardEffects) destroyAt(row, col int) (core.ChipType, bool) {
	for i := len(e.pulses) - 1; i >= 0; i-- {
		p := e.pulses[i]
		if p.kind == pulseDestroy && p.row == row && p.col == col {
			return p.chip, true
		}
	}
	return core.TypeNone, false
}

// highlightAt reports whether a move or spawn pulse is active on the tile.
func (e *boardEffects) highlightAt(row, col int) bool {
	for _, p := range e.pulses {
		if p.kind != pulseDestroy && p.row == row && p.col == col {
			return true
		}
	}
	return false
}

// reset drops all pulses, e.g. when a new board is built.
func (e *boardEffects) reset() {
	e.pulses = e.pulses[:0]
}
