// Package core implements the LinkPop board simulation: grid and chip
// occupancy, link-chain building, match detection, the refill pipeline and
// the deadlock shuffle. This package is UI-agnostic and deterministic; all
// randomness comes from an injected rand source and all visual side effects
// go through the EffectSink interface.
package core

// ChipType identifies the color category a chip belongs to.
// Chips link only with chips of the same type.
type ChipType uint8

const (
	TypeNone ChipType = iota // empty, never spawned
	TypeRed
	TypeGreen
	TypeBlue
	TypeYellow
	TypePurple
	TypeOrange
)

// allTypes lists every spawnable type in pool order. A config with
// ChipTypes = n uses the first n entries.
var allTypes = [...]ChipType{TypeRed, TypeGreen, TypeBlue, TypeYellow, TypePurple, TypeOrange}

// MaxChipTypes is the largest spawn pool a board can be configured with.
const MaxChipTypes = len(allTypes)

// String returns a single-letter code for the type, "." for none.
func (t ChipType) String() string {
	switch t {
	case TypeRed:
		return "R"
	case TypeGreen:
		return "G"
	case TypeBlue:
		return "B"
	case TypeYellow:
		return "Y"
	case TypePurple:
		return "P"
	case TypeOrange:
		return "O"
	default:
		return "."
	}
}

// Tile is a fixed cell of the grid, identified by its row and column.
// Tiles are created by the grid once and never move or change.
type Tile struct {
	row int
	col int
}

// Row returns the tile's row index, 0 at the top of the board.
func (t *Tile) Row() int {
	return t.row
}

// Col returns the tile's column index, 0 at the left edge.
func (t *Tile) Col() int {
	return t.col
}

// AdjacentTo reports whether the other tile touches this one orthogonally:
// Manhattan distance exactly 1, so diagonals never count.
func (t *Tile) AdjacentTo(o *Tile) bool {
	if t == nil || o == nil {
		return false
	}
	dr := abs(t.row - o.row)
	dc := abs(t.col - o.col)
	return dr+dc == 1
}

// Chip is a typed occupant of exactly one tile. Its tile reference is
// maintained by Occupancy alone, which keeps the reference and the
// occupancy map in agreement at all times.
type Chip struct {
	Type  ChipType
	Score int // points contributed when resolved as part of a chain

	tile *Tile
}

// NewChip creates an unplaced chip of the given type and score value.
func NewChip(t ChipType, score int) *Chip {
	return &Chip{Type: t, Score: score}
}

// Tile returns the tile the chip currently occupies, or nil when unplaced.
func (c *Chip) Tile() *Tile {
	return c.tile
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
