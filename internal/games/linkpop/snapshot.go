package linkpop

import (
	"github.com/vovakirdan/tui-linkpop/internal/games/linkpop/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLinking      GameStateType = "linking"
	StateResolving    GameStateType = "resolving"
	StateShuffling    GameStateType = "shuffling"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Mode           string // "campaign" or "endless"
	Level          int    // Current level (1-indexed for display), 0 for endless
	Target         int    // Current target score, 0 for endless
	Score          int    // Banked + live score
	BoardScore     int    // Live board score only
	TurnsUsed      int
	TurnsRemaining int
	ChainLen       int
	Board          string // One row per line, chips as letters, empty as dots
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Score: g.totalScore(),
		State: StatePlaying,
	}
	if g.mode == ModeCampaign {
		snap.Level = g.levelIndex + 1
	}

	if g.orch != nil {
		board := g.orch.Snapshot()
		snap.Target = g.orch.Score().Target()
		snap.BoardScore = g.orch.Score().Current()
		snap.TurnsUsed = g.orch.Turns().Used()
		snap.TurnsRemaining = g.orch.Turns().Remaining()
		snap.ChainLen = g.orch.ChainLen()
		snap.Board = board.BoardString()
	}

	snap.State = g.snapshotState()
	return snap
}

func (g *Game) snapshotState() GameStateType {
	switch {
	case g.tooSmall:
		return StatePausedSmall
	case g.won:
		return StateWin
	case g.fatalErr != nil || g.orch == nil:
		return StateGameOver
	case g.levelCleared:
		return StateLevelCleared
	}

	if g.orch.Dragging() {
		return StateLinking
	}
	switch g.orch.State() {
	case core.StateResolvingChain:
		return StateResolving
	case core.StateShuffling:
		return StateShuffling
	case core.StateLevelWon:
		return StateLevelCleared
	case core.StateLevelLost, core.StateShuffleFailed:
		return StateGameOver
	default:
		return StatePlaying
	}
}
