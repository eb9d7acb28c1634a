package core

// Occupancy tracks which chip sits on which tile. It is the single source of
// truth for board occupation: chips and tiles never point at each other
// except through the chip's back-reference, which only Place and Vacate
// touch. A chip can occupy at most one tile and a tile can carry at most one
// chip; violations are rejected before any state changes.
type Occupancy struct {
	grid  *Grid
	chips map[*Tile]*Chip
}

// NewOccupancy creates an empty occupancy tracker over the grid.
func NewOccupancy(grid *Grid) *Occupancy {
	return &Occupancy{
		grid:  grid,
		chips: make(map[*Tile]*Chip, grid.Rows()*grid.Cols()),
	}
}

// Place puts the chip on the tile. The tile must belong to the grid, the
// chip must not already sit somewhere, and the tile must be empty. On any
// violation the board is left untouched.
func (o *Occupancy) Place(chip *Chip, tile *Tile) error {
	if !o.grid.Contains(tile) {
		return ErrTileNotInGrid
	}
	if chip.tile != nil {
		return ErrChipAlreadyPlaced
	}
	if _, occupied := o.chips[tile]; occupied {
		return ErrTileOccupied
	}
	o.chips[tile] = chip
	chip.tile = tile
	return nil
}

// Vacate removes the chip from the tile it occupies. Returns ErrNotOccupying
// when the chip is not on any tile of this tracker.
func (o *Occupancy) Vacate(chip *Chip) error {
	tile := chip.tile
	if tile == nil || o.chips[tile] != chip {
		return ErrNotOccupying
	}
	delete(o.chips, tile)
	chip.tile = nil
	return nil
}

// ChipAt returns the chip on the tile, or nil when the tile is empty or not
// part of the grid.
func (o *Occupancy) ChipAt(tile *Tile) *Chip {
	if tile == nil {
		return nil
	}
	return o.chips[tile]
}

// At returns the chip at (row, col), or nil for empty or out-of-range tiles.
func (o *Occupancy) At(row, col int) *Chip {
	return o.ChipAt(o.grid.TileAt(row, col))
}

// FirstEmpty returns the first unoccupied tile in row-major order, or nil
// when the board is full.
func (o *Occupancy) FirstEmpty() *Tile {
	for r := 0; r < o.grid.Rows(); r++ {
		for c := 0; c < o.grid.Cols(); c++ {
			tile := o.grid.TileAt(r, c)
			if o.chips[tile] == nil {
				return tile
			}
		}
	}
	return nil
}

// Count returns the number of placed chips.
func (o *Occupancy) Count() int {
	return len(o.chips)
}

// Full reports whether every tile carries a chip.
func (o *Occupancy) Full() bool {
	return len(o.chips) == o.grid.Rows()*o.grid.Cols()
}

// Chips returns all placed chips in row-major tile order. Iteration never
// ranges over the internal map, so the order is stable across runs.
func (o *Occupancy) Chips() []*Chip {
	out := make([]*Chip, 0, len(o.chips))
	for r := 0; r < o.grid.Rows(); r++ {
		for c := 0; c < o.grid.Cols(); c++ {
			if chip := o.chips[o.grid.TileAt(r, c)]; chip != nil {
				out = append(out, chip)
			}
		}
	}
	return out
}
