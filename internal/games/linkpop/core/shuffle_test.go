package core

import (
	"math/rand"
	"testing"
)

func TestShufflePreservesTypeMultiset(t *testing.T) {
	grid, occ := newTestBoard(t, []string{
		"RRG.",
		"GB.Y",
		".YBR",
	})
	before := typeCounts(grid, occ)
	emptyBefore := emptyTiles(grid, occ)

	e := NewShuffleEngine(grid, occ, rand.New(rand.NewSource(3)), nil)
	if err := e.Shuffle(); err != nil {
		t.Fatalf("Shuffle: %v", err)
	}

	after := typeCounts(grid, occ)
	for ct, n := range before {
		if after[ct] != n {
			t.Errorf("count of %v = %d, want %d", ct, after[ct], n)
		}
	}
	if len(after) != len(before) {
		t.Errorf("type spread changed: %v, want %v", after, before)
	}
	emptyAfter := emptyTiles(grid, occ)
	if len(emptyAfter) != len(emptyBefore) {
		t.Fatalf("empty tile count = %d, want %d", len(emptyAfter), len(emptyBefore))
	}
	for i := range emptyAfter {
		if emptyAfter[i] != emptyBefore[i] {
			t.Error("shuffle moved a chip onto a previously empty tile")
		}
	}
}

func TestShuffleKeepsChipsConsistent(t *testing.T) {
	grid, occ := newTestBoard(t, []string{
		"RGB",
		"YRG",
	})
	e := NewShuffleEngine(grid, occ, rand.New(rand.NewSource(5)), nil)
	if err := e.Shuffle(); err != nil {
		t.Fatalf("Shuffle: %v", err)
	}
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			chip := occ.At(r, c)
			if chip == nil {
				t.Fatalf("tile (%d,%d) empty after shuffle of a full board", r, c)
			}
			if chip.Tile() != grid.TileAt(r, c) {
				t.Errorf("chip at (%d,%d) disagrees with its tile", r, c)
			}
		}
	}
}

func TestShuffleSingleChipNoOp(t *testing.T) {
	grid, occ := newTestBoard(t, []string{
		"..",
		".R",
	})
	fx := &fxRecorder{}
	e := NewShuffleEngine(grid, occ, rand.New(rand.NewSource(1)), fx)
	if err := e.Shuffle(); err != nil {
		t.Fatalf("Shuffle: %v", err)
	}
	if occ.At(1, 1) == nil {
		t.Error("single chip left its tile")
	}
	if len(fx.moved) != 0 {
		t.Errorf("moves = %v, want none", fx.moved)
	}
}

func TestShuffleEmptyBoardNoOp(t *testing.T) {
	grid := NewGrid(2, 2)
	occ := NewOccupancy(grid)
	e := NewShuffleEngine(grid, occ, rand.New(rand.NewSource(1)), nil)
	if err := e.Shuffle(); err != nil {
		t.Fatalf("Shuffle: %v", err)
	}
	if occ.Count() != 0 {
		t.Errorf("count = %d, want 0", occ.Count())
	}
}

func TestShuffleDeterministic(t *testing.T) {
	layout := []string{
		"RGBY",
		"YBGR",
		"RGYB",
	}
	gridA, occA := newTestBoard(t, layout)
	gridB, occB := newTestBoard(t, layout)

	if err := NewShuffleEngine(gridA, occA, rand.New(rand.NewSource(42)), nil).Shuffle(); err != nil {
		t.Fatalf("Shuffle A: %v", err)
	}
	if err := NewShuffleEngine(gridB, occB, rand.New(rand.NewSource(42)), nil).Shuffle(); err != nil {
		t.Fatalf("Shuffle B: %v", err)
	}
	a, b := boardString(gridA, occA), boardString(gridB, occB)
	if a != b {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s", a, b)
	}
}

func typeCounts(grid *Grid, occ *Occupancy) map[ChipType]int {
	counts := make(map[ChipType]int)
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if chip := occ.At(r, c); chip != nil {
				counts[chip.Type]++
			}
		}
	}
	return counts
}

func emptyTiles(grid *Grid, occ *Occupancy) []*Tile {
	var out []*Tile
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if occ.At(r, c) == nil {
				out = append(out, grid.TileAt(r, c))
			}
		}
	}
	return out
}
