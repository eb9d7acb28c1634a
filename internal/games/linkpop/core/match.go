package core

// MinChainLen is the smallest chain a player can pop.
const MinChainLen = 3

// MatchDetector answers connectivity questions about the current board:
// which chips form a same-type group, and whether any pop is possible at
// all. It holds no state of its own beyond references to the grid and the
// occupancy tracker, so it always sees the live board.
type MatchDetector struct {
	grid *Grid
	occ  *Occupancy
}

// NewMatchDetector creates a detector over the given grid and occupancy.
func NewMatchDetector(grid *Grid, occ *Occupancy) *MatchDetector {
	return &MatchDetector{grid: grid, occ: occ}
}

// ConnectedGroup returns every chip reachable from start through
// orthogonally adjacent chips of the same type, start included. The fill is
// iterative with an explicit stack; board size never threatens the call
// stack. Returns nil when start is nil or not placed.
func (m *MatchDetector) ConnectedGroup(start *Chip) []*Chip {
	if start == nil || start.tile == nil {
		return nil
	}
	visited := map[*Chip]bool{start: true}
	group := []*Chip{start}
	stack := []*Chip{start}
	for len(stack) > 0 {
		chip := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range m.neighbors(chip) {
			if next.Type != start.Type || visited[next] {
				continue
			}
			visited[next] = true
			group = append(group, next)
			stack = append(stack, next)
		}
	}
	return group
}

// CanFormMatch reports whether the chip belongs to a connected same-type
// group large enough to pop.
func (m *MatchDetector) CanFormMatch(chip *Chip) bool {
	return len(m.ConnectedGroup(chip)) >= MinChainLen
}

// HasPossibleMoves reports whether at least one poppable group exists
// anywhere on the board. Tiles are scanned in row-major order and the scan
// stops at the first hit.
func (m *MatchDetector) HasPossibleMoves() bool {
	for r := 0; r < m.grid.Rows(); r++ {
		for c := 0; c < m.grid.Cols(); c++ {
			chip := m.occ.At(r, c)
			if chip != nil && m.CanFormMatch(chip) {
				return true
			}
		}
	}
	return false
}

// neighbors returns the chips on the four orthogonally adjacent tiles.
// Order is up, down, left, right; empty and out-of-range tiles are skipped.
func (m *MatchDetector) neighbors(chip *Chip) []*Chip {
	tile := chip.tile
	if tile == nil {
		return nil
	}
	var out []*Chip
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if n := m.occ.At(tile.row+d[0], tile.col+d[1]); n != nil {
			out = append(out, n)
		}
	}
	return out
}
