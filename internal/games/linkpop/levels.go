package linkpop

// Level defines a campaign level: the board it is played on and the goal
// that clears it.
type Level struct {
	ID          int
	Name        string
	Rows        int
	Cols        int
	ChipTypes   int
	ChipScore   int
	TargetScore int
	MaxTurns    int
	MaxShuffles int
}

// Levels defines the 8 campaign levels. Boards grow and the spawn pool
// widens while the per-turn score demand climbs, so later levels need long
// chains, not just any chains.
var Levels = []Level{
	{ID: 1, Name: "First Links", Rows: 6, Cols: 6, ChipTypes: 3, ChipScore: 10, TargetScore: 400, MaxTurns: 12, MaxShuffles: 3},
	{ID: 2, Name: "Four Colors", Rows: 6, Cols: 6, ChipTypes: 4, ChipScore: 10, TargetScore: 450, MaxTurns: 12, MaxShuffles: 3},
	{ID: 3, Name: "Wider Field", Rows: 7, Cols: 7, ChipTypes: 4, ChipScore: 10, TargetScore: 560, MaxTurns: 14, MaxShuffles: 3},
	{ID: 4, Name: "Five Colors", Rows: 7, Cols: 7, ChipTypes: 5, ChipScore: 10, TargetScore: 620, MaxTurns: 14, MaxShuffles: 3},
	{ID: 5, Name: "Big Board", Rows: 8, Cols: 8, ChipTypes: 5, ChipScore: 10, TargetScore: 720, MaxTurns: 16, MaxShuffles: 3},
	{ID: 6, Name: "Chain Builder", Rows: 8, Cols: 8, ChipTypes: 5, ChipScore: 10, TargetScore: 820, MaxTurns: 16, MaxShuffles: 2},
	{ID: 7, Name: "Six Colors", Rows: 9, Cols: 9, ChipTypes: 6, ChipScore: 10, TargetScore: 920, MaxTurns: 18, MaxShuffles: 2},
	{ID: 8, Name: "Master Linker", Rows: 9, Cols: 9, ChipTypes: 6, ChipScore: 10, TargetScore: 1040, MaxTurns: 18, MaxShuffles: 2},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the target scores of all levels.
func LevelTargets() []int {
	targets := make([]int, len(Levels))
	for i, lvl := range Levels {
		targets[i] = lvl.TargetScore
	}
	return targets
}
