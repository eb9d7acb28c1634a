package core

import (
	"fmt"
	"strings"
	"testing"
)

// newTestBoard builds a grid and occupancy from a row-per-string layout.
// Letters follow ChipType.String (R, G, B, Y, P, O); '.' leaves the tile
// empty. Every placed chip is worth 10 points.
func newTestBoard(t *testing.T, rows []string) (*Grid, *Occupancy) {
	t.Helper()
	grid := NewGrid(len(rows), len(rows[0]))
	occ := NewOccupancy(grid)
	for r, row := range rows {
		for c, ch := range row {
			if ch == '.' {
				continue
			}
			chip := NewChip(typeFromLetter(t, ch), 10)
			if err := occ.Place(chip, grid.TileAt(r, c)); err != nil {
				t.Fatalf("place %c at (%d,%d): %v", ch, r, c, err)
			}
		}
	}
	return grid, occ
}

func typeFromLetter(t *testing.T, ch rune) ChipType {
	t.Helper()
	for _, ct := range allTypes {
		if ct.String() == string(ch) {
			return ct
		}
	}
	t.Fatalf("unknown chip letter %q", ch)
	return TypeNone
}

// boardString renders the board the same way Snapshot.BoardString does,
// reading straight from the occupancy.
func boardString(grid *Grid, occ *Occupancy) string {
	var b strings.Builder
	for r := 0; r < grid.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < grid.Cols(); c++ {
			if chip := occ.At(r, c); chip != nil {
				b.WriteString(chip.Type.String())
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// fxRecorder captures effect calls for assertions.
type fxRecorder struct {
	linked    []*Chip
	unlinked  []*Chip
	destroyed []string
	moved     []string
	spawned   []string
}

func (f *fxRecorder) ChipLinked(c *Chip)   { f.linked = append(f.linked, c) }
func (f *fxRecorder) ChipUnlinked(c *Chip) { f.unlinked = append(f.unlinked, c) }

func (f *fxRecorder) ChipDestroyed(c *Chip, row, col int) {
	f.destroyed = append(f.destroyed, fmt.Sprintf("%s(%d,%d)", c.Type, row, col))
}

func (f *fxRecorder) ChipMoved(c *Chip, fromRow, fromCol, toRow, toCol int) {
	f.moved = append(f.moved, fmt.Sprintf("%s(%d,%d)>(%d,%d)", c.Type, fromRow, fromCol, toRow, toCol))
}

func (f *fxRecorder) ChipSpawned(c *Chip, row, col int) {
	f.spawned = append(f.spawned, fmt.Sprintf("%s(%d,%d)", c.Type, row, col))
}

// logRecorder captures Warnf output for assertions.
type logRecorder struct {
	warnings []string
}

func (l *logRecorder) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}
