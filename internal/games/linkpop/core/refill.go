package core

import (
	"fmt"
	"math/rand"
)

// RefillPhase identifies one stage of the refill pipeline.
type RefillPhase uint8

const (
	// RefillIdle means no refill is in progress.
	RefillIdle RefillPhase = iota
	// RefillDestroy removes the popped chips from the board.
	RefillDestroy
	// RefillGravity slides surviving chips down into the gaps.
	RefillGravity
	// RefillSpawn fills the remaining empty tiles with fresh chips.
	RefillSpawn
)

func (p RefillPhase) String() string {
	switch p {
	case RefillIdle:
		return "idle"
	case RefillDestroy:
		return "destroy"
	case RefillGravity:
		return "gravity"
	case RefillSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// RefillPipeline restores the board after a pop in three strictly ordered
// phases: destroy, then gravity, then spawn. Each Step call runs exactly one
// phase, which lets the host insert a visible pause between them. Gravity
// never runs before every destroyed chip is gone, and spawn never runs
// before gravity finished, so chips cannot fall into a tile that is still
// being cleared.
type RefillPipeline struct {
	grid      *Grid
	occ       *Occupancy
	pool      []ChipType
	chipScore int
	rng       *rand.Rand
	fx        EffectSink
	log       Logger

	phase   RefillPhase
	pending []*Chip
}

// NewRefillPipeline creates an idle pipeline. New chips are drawn uniformly
// from pool and carry chipScore points each.
func NewRefillPipeline(grid *Grid, occ *Occupancy, pool []ChipType, chipScore int, rng *rand.Rand, fx EffectSink, log Logger) *RefillPipeline {
	if fx == nil {
		fx = NopEffects{}
	}
	if log == nil {
		log = nopLogger{}
	}
	return &RefillPipeline{
		grid:      grid,
		occ:       occ,
		pool:      pool,
		chipScore: chipScore,
		rng:       rng,
		fx:        fx,
		log:       log,
		phase:     RefillIdle,
	}
}

// Phase returns the phase the next Step call will run.
func (p *RefillPipeline) Phase() RefillPhase {
	return p.phase
}

// Active reports whether a refill is in progress.
func (p *RefillPipeline) Active() bool {
	return p.phase != RefillIdle
}

// Begin arms the pipeline with the chips to destroy. The first Step call
// afterwards runs the destroy phase.
func (p *RefillPipeline) Begin(chain []*Chip) {
	p.pending = chain
	p.phase = RefillDestroy
}

// Step runs the current phase and advances to the next one. It returns the
// phase that just ran; after RefillSpawn the pipeline is idle again. A
// non-nil error means the board reached a state the pipeline cannot repair
// and the game must stop.
func (p *RefillPipeline) Step() (RefillPhase, error) {
	switch p.phase {
	case RefillDestroy:
		p.destroy()
		p.phase = RefillGravity
		return RefillDestroy, nil
	case RefillGravity:
		if err := p.gravity(); err != nil {
			return RefillGravity, err
		}
		p.phase = RefillSpawn
		return RefillGravity, nil
	case RefillSpawn:
		if err := p.spawn(); err != nil {
			return RefillSpawn, err
		}
		p.phase = RefillIdle
		return RefillSpawn, nil
	default:
		return RefillIdle, nil
	}
}

// destroy vacates every pending chip. A chip that already left the board is
// skipped with a warning; the pop itself already happened, so a missing
// chip only means bookkeeping drifted, not that play must stop.
func (p *RefillPipeline) destroy() {
	for _, chip := range p.pending {
		tile := chip.tile
		if tile == nil {
			p.log.Warnf("refill: chip %s missing from board during destroy, skipping", chip.Type)
			continue
		}
		row, col := tile.Row(), tile.Col()
		if err := p.occ.Vacate(chip); err != nil {
			p.log.Warnf("refill: vacate %s at (%d,%d) during destroy: %v", chip.Type, row, col, err)
			continue
		}
		p.fx.ChipDestroyed(chip, row, col)
	}
	p.pending = nil
}

// gravity compacts each column toward the bottom row. Columns run left to
// right and rows bottom to top, one pass per column: each surviving chip
// drops to the lowest open row below its position, preserving the vertical
// order of chips within the column.
func (p *RefillPipeline) gravity() error {
	for c := 0; c < p.grid.Cols(); c++ {
		writeRow := p.grid.Rows() - 1
		for r := p.grid.Rows() - 1; r >= 0; r-- {
			chip := p.occ.At(r, c)
			if chip == nil {
				continue
			}
			if r != writeRow {
				if err := p.occ.Vacate(chip); err != nil {
					return fmt.Errorf("refill: gravity vacate at (%d,%d): %w", r, c, err)
				}
				if err := p.occ.Place(chip, p.grid.TileAt(writeRow, c)); err != nil {
					return fmt.Errorf("refill: gravity place at (%d,%d): %w", writeRow, c, err)
				}
				p.fx.ChipMoved(chip, r, c, writeRow, c)
			}
			writeRow--
		}
	}
	return nil
}

// spawn fills every empty tile with a fresh chip, walking columns left to
// right and rows bottom to top, the same order gravity uses. Afterwards the
// board must be completely full; anything less means the pipeline itself is
// broken and the error stops the game.
func (p *RefillPipeline) spawn() error {
	for c := 0; c < p.grid.Cols(); c++ {
		for r := p.grid.Rows() - 1; r >= 0; r-- {
			if p.occ.At(r, c) != nil {
				continue
			}
			if len(p.pool) == 0 {
				return fmt.Errorf("refill: spawn at (%d,%d): %w", r, c, ErrEmptyPool)
			}
			chip := NewChip(p.pool[p.rng.Intn(len(p.pool))], p.chipScore)
			if err := p.occ.Place(chip, p.grid.TileAt(r, c)); err != nil {
				return fmt.Errorf("refill: spawn place at (%d,%d): %w", r, c, err)
			}
			p.fx.ChipSpawned(chip, r, c)
		}
	}
	if !p.occ.Full() {
		return fmt.Errorf("refill: board not full after spawn: %d of %d tiles occupied",
			p.occ.Count(), p.grid.Rows()*p.grid.Cols())
	}
	return nil
}
