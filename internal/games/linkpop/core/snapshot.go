package core

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Snapshot is a copy of everything that defines the simulation at one
// moment. Two runs of the same seed and the same inputs produce identical
// snapshots at every step; determinism tests compare them via Hash.
type Snapshot struct {
	State           State
	Score           int
	TurnsUsed       int
	TurnsRemaining  int
	ShuffleAttempts int
	Types           [][]ChipType // row-major; TypeNone for empty tiles
}

// Snapshot captures the current simulation state.
func (o *Orchestrator) Snapshot() Snapshot {
	types := make([][]ChipType, o.grid.Rows())
	for r := range types {
		types[r] = make([]ChipType, o.grid.Cols())
		for c := range types[r] {
			if chip := o.occ.At(r, c); chip != nil {
				types[r][c] = chip.Type
			}
		}
	}
	return Snapshot{
		State:           o.state,
		Score:           o.score.Current(),
		TurnsUsed:       o.turns.Used(),
		TurnsRemaining:  o.turns.Remaining(),
		ShuffleAttempts: o.shuffleAttempts,
		Types:           types,
	}
}

// Hash returns an FNV-1a digest of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%d|%d|%d|", s.State, s.Score, s.TurnsUsed, s.TurnsRemaining, s.ShuffleAttempts)
	for _, row := range s.Types {
		for _, t := range row {
			fmt.Fprintf(h, "%d,", t)
		}
		h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// BoardString renders the board as one letter per chip, rows separated by
// newlines. Empty tiles show as dots. Meant for test failure output.
func (s Snapshot) BoardString() string {
	var b strings.Builder
	for r, row := range s.Types {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, t := range row {
			b.WriteString(t.String())
		}
	}
	return b.String()
}
