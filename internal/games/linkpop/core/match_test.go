package core

import "testing"

func TestConnectedGroup(t *testing.T) {
	grid, occ := newTestBoard(t, []string{
		"RRG",
		"RGG",
		"BBY",
	})
	detector := NewMatchDetector(grid, occ)

	tests := []struct {
		name     string
		row, col int
		size     int
	}{
		{"red corner block", 0, 0, 3},
		{"green hook", 1, 1, 3},
		{"blue pair", 2, 0, 2},
		{"yellow singleton", 2, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := occ.At(tt.row, tt.col)
			group := detector.ConnectedGroup(start)
			if len(group) != tt.size {
				t.Fatalf("group size = %d, want %d", len(group), tt.size)
			}
			for _, chip := range group {
				if chip.Type != start.Type {
					t.Errorf("group contains %v chip, want only %v", chip.Type, start.Type)
				}
			}
		})
	}
}

// Every member of a group must report the same group: connectivity is an
// equivalence relation, so starting the fill anywhere inside reaches the
// same chips.
func TestConnectedGroupClosure(t *testing.T) {
	grid, occ := newTestBoard(t, []string{
		"RRG",
		"RGG",
		"BBY",
	})
	detector := NewMatchDetector(grid, occ)

	group := detector.ConnectedGroup(occ.At(0, 0))
	want := make(map[*Chip]bool, len(group))
	for _, chip := range group {
		want[chip] = true
	}
	for _, member := range group {
		regrown := detector.ConnectedGroup(member)
		if len(regrown) != len(group) {
			t.Fatalf("group from member has size %d, want %d", len(regrown), len(group))
		}
		for _, chip := range regrown {
			if !want[chip] {
				t.Errorf("group from member contains a chip the original group lacks")
			}
		}
	}
}

func TestConnectedGroupDiagonalsDoNotConnect(t *testing.T) {
	grid, occ := newTestBoard(t, []string{
		"R.R",
		".R.",
		"R.R",
	})
	detector := NewMatchDetector(grid, occ)
	if got := len(detector.ConnectedGroup(occ.At(1, 1))); got != 1 {
		t.Errorf("center group size = %d, want 1", got)
	}
}

func TestConnectedGroupUnplaced(t *testing.T) {
	grid, occ := newTestBoard(t, []string{"R"})
	detector := NewMatchDetector(grid, occ)
	if got := detector.ConnectedGroup(nil); got != nil {
		t.Errorf("group of nil chip = %v, want nil", got)
	}
	if got := detector.ConnectedGroup(NewChip(TypeRed, 10)); got != nil {
		t.Errorf("group of unplaced chip = %v, want nil", got)
	}
}

func TestCanFormMatch(t *testing.T) {
	grid, occ := newTestBoard(t, []string{
		"RRG",
		"RGG",
		"BBY",
	})
	detector := NewMatchDetector(grid, occ)

	if !detector.CanFormMatch(occ.At(0, 0)) {
		t.Error("red block of 3 cannot form a match")
	}
	if detector.CanFormMatch(occ.At(2, 0)) {
		t.Error("blue pair can form a match")
	}
	if detector.CanFormMatch(occ.At(2, 2)) {
		t.Error("yellow singleton can form a match")
	}
}

func TestHasPossibleMoves(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{
			name: "mixed board with a red run",
			rows: []string{
				"RRRG",
				"GYRG",
				"BBGR",
				"YYYB",
			},
			want: true,
		},
		{
			name: "alternating colors",
			rows: []string{
				"RGR",
				"GRG",
				"RGR",
			},
			want: false,
		},
		{
			name: "pairs only",
			rows: []string{
				"RRG",
				"BBG",
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, occ := newTestBoard(t, tt.rows)
			detector := NewMatchDetector(grid, occ)
			if got := detector.HasPossibleMoves(); got != tt.want {
				t.Errorf("HasPossibleMoves = %v, want %v", got, tt.want)
			}
		})
	}
}
