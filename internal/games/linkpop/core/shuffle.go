package core

import (
	"fmt"
	"math/rand"
)

// ShuffleEngine redistributes the chips already on the board. A shuffle
// permutes chips over the tiles they currently occupy, so the type counts
// on the board never change and empty tiles stay empty. Whether a shuffle
// actually produced a playable board, and how often to retry when it did
// not, is the orchestrator's decision.
type ShuffleEngine struct {
	grid *Grid
	occ  *Occupancy
	rng  *rand.Rand
	fx   EffectSink
}

// NewShuffleEngine creates an engine over the given board.
func NewShuffleEngine(grid *Grid, occ *Occupancy, rng *rand.Rand, fx EffectSink) *ShuffleEngine {
	if fx == nil {
		fx = NopEffects{}
	}
	return &ShuffleEngine{grid: grid, occ: occ, rng: rng, fx: fx}
}

// Shuffle permutes the placed chips over their occupied tiles. Boards with
// at most one chip have nothing to permute and return immediately. Chips
// that land on a new tile report a move effect; chips the permutation
// leaves in place report nothing.
func (e *ShuffleEngine) Shuffle() error {
	chips := e.occ.Chips()
	if len(chips) <= 1 {
		return nil
	}
	tiles := make([]*Tile, len(chips))
	for i, chip := range chips {
		tiles[i] = chip.tile
	}
	for _, chip := range chips {
		if err := e.occ.Vacate(chip); err != nil {
			return fmt.Errorf("shuffle: vacate: %w", err)
		}
	}
	perm := e.rng.Perm(len(chips))
	for i, chip := range chips {
		from, to := tiles[i], tiles[perm[i]]
		if err := e.occ.Place(chip, to); err != nil {
			return fmt.Errorf("shuffle: place at (%d,%d): %w", to.Row(), to.Col(), err)
		}
		if to != from {
			e.fx.ChipMoved(chip, from.Row(), from.Col(), to.Row(), to.Col())
		}
	}
	return nil
}
