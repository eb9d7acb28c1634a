package core

// Grid is the fixed-shape collection of tiles. It is created once at board
// initialization; row and column counts never change afterwards.
type Grid struct {
	rows  int
	cols  int
	tiles []*Tile // row-major
}

// NewGrid creates a grid with the given dimensions. Dimensions must be
// positive; Config.Validate checks this before a board is built.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]*Tile, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.tiles[r*cols+c] = &Tile{row: r, col: c}
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// TileAt returns the tile at (row, col), or nil when the coordinates are
// out of range. An out-of-range lookup is a normal query miss, not an error.
func (g *Grid) TileAt(row, col int) *Tile {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return g.tiles[row*g.cols+col]
}

// Contains reports whether the tile is one of this grid's own tiles.
// A tile with matching coordinates from another grid does not count.
func (g *Grid) Contains(t *Tile) bool {
	if t == nil {
		return false
	}
	return g.TileAt(t.row, t.col) == t
}
