package core

import "errors"

// Occupancy protocol errors. Every mutating operation checks its
// precondition before touching state, so a returned error always means
// nothing changed.
var (
	// ErrTileOccupied is returned by Place when the target tile already
	// has an occupant.
	ErrTileOccupied = errors.New("tile already occupied")

	// ErrTileNotInGrid is returned by Place when the tile does not belong
	// to the occupancy's grid.
	ErrTileNotInGrid = errors.New("tile does not belong to this grid")

	// ErrChipAlreadyPlaced is returned by Place when the chip still
	// records a tile. Callers must Vacate first; there is no implicit move.
	ErrChipAlreadyPlaced = errors.New("chip already occupies a tile")

	// ErrNotOccupying is returned by Vacate when the chip has no
	// recorded tile.
	ErrNotOccupying = errors.New("chip does not occupy a tile")

	// ErrEmptyPool is returned by the refill pipeline when a spawn is
	// required but the chip type pool is empty.
	ErrEmptyPool = errors.New("chip type pool is empty")
)
