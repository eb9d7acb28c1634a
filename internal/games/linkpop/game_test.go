package linkpop

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-linkpop/internal/core"
	"github.com/vovakirdan/tui-linkpop/internal/games/linkpop/core"
	"github.com/vovakirdan/tui-linkpop/internal/registry"
)

// withTestConfig points the shell at a fixed config file so tests never
// see a user's ~/.linkpop overrides. Pacing is shortened to keep test
// loops small.
func withTestConfig(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "linkpop.yaml")
	content := `board: {rows: 6, cols: 6, chip_types: 4, max_shuffles: 3}
scoring: {chip_score: 10}
pacing: {destroy_ticks: 2, gravity_ticks: 2, spawn_ticks: 2, shuffle_ticks: 2, level_clear_ticks: 5}
difficulty: {enabled: false, initial_level: 0.0}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func testRuntime(seed int64) platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func emptyFrame() platformcore.InputFrame {
	return platformcore.NewInputFrame()
}

func actionFrame(a platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	f.Set(a)
	return f
}

// stepUntilPlaying runs empty ticks until the board awaits input, so
// tests start from a settled state even if the opening board had to
// shuffle.
func stepUntilPlaying(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if g.snapshotState() == StatePlaying {
			return
		}
		g.Step(emptyFrame())
	}
	t.Fatalf("board never settled, state %s", g.snapshotState())
}

func TestGameRegistration(t *testing.T) {
	if !registry.Exists("linkpop") {
		t.Error("linkpop not registered")
	}
	if !registry.Exists("linkpop_endless") {
		t.Error("linkpop_endless not registered")
	}

	g, err := registry.Create("linkpop")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "linkpop" {
		t.Errorf("ID = %q, want linkpop", g.ID())
	}
}

func TestResetBuildsFullBoard(t *testing.T) {
	withTestConfig(t)

	g := New()
	g.Reset(testRuntime(7))

	snap := g.Snapshot()
	if strings.Contains(snap.Board, ".") {
		t.Errorf("board has empty tiles after reset:\n%s", snap.Board)
	}
	if snap.Level != 1 {
		t.Errorf("level = %d, want 1", snap.Level)
	}
	if snap.TurnsRemaining != Levels[0].MaxTurns {
		t.Errorf("turns = %d, want %d", snap.TurnsRemaining, Levels[0].MaxTurns)
	}
	if g.State().GameOver {
		t.Error("fresh game reports game over")
	}
}

func TestEndlessUsesConfiguredBoard(t *testing.T) {
	withTestConfig(t)

	g := NewEndless()
	g.Reset(testRuntime(7))

	snap := g.Snapshot()
	rows := strings.Split(snap.Board, "\n")
	if len(rows) != 6 {
		t.Fatalf("board rows = %d, want 6", len(rows))
	}
	if snap.Level != 0 {
		t.Errorf("endless level = %d, want 0", snap.Level)
	}
	if snap.Target != 0 {
		t.Errorf("endless target = %d, want 0", snap.Target)
	}
	if g.State().Level != 0 {
		t.Errorf("GameState.Level = %d, want 0", g.State().Level)
	}
}

func TestLevelTable(t *testing.T) {
	if LevelCount() != 8 {
		t.Fatalf("LevelCount = %d, want 8", LevelCount())
	}

	prevTarget := 0
	for i, lvl := range Levels {
		if lvl.ID != i+1 {
			t.Errorf("level %d has ID %d", i, lvl.ID)
		}

		cfg := core.Config{
			Rows:        lvl.Rows,
			Cols:        lvl.Cols,
			ChipTypes:   lvl.ChipTypes,
			ChipScore:   lvl.ChipScore,
			TargetScore: lvl.TargetScore,
			MaxTurns:    lvl.MaxTurns,
			MaxShuffles: lvl.MaxShuffles,
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("level %d (%s) config invalid: %v", lvl.ID, lvl.Name, err)
		}

		if lvl.TargetScore <= prevTarget {
			t.Errorf("level %d target %d does not exceed previous %d", lvl.ID, lvl.TargetScore, prevTarget)
		}
		prevTarget = lvl.TargetScore
	}
}

func TestGetLevelBounds(t *testing.T) {
	if GetLevel(-1) != nil || GetLevel(LevelCount()) != nil {
		t.Error("out-of-range levels should be nil")
	}
	if GetLevel(0) == nil || GetLevel(LevelCount()-1) == nil {
		t.Error("in-range levels should not be nil")
	}
	if len(LevelNames()) != LevelCount() {
		t.Error("LevelNames length mismatch")
	}
}

func TestScriptedDeterminism(t *testing.T) {
	withTestConfig(t)

	a, b := New(), New()
	a.Reset(testRuntime(42))
	b.Reset(testRuntime(42))

	// A fixed input script: start chains, sweep the cursor, release.
	// Whatever the boards contain, both games see the same inputs and
	// must stay identical.
	script := []platformcore.Action{
		platformcore.ActionLink,
		platformcore.ActionRight,
		platformcore.ActionDown,
		platformcore.ActionLink,
		platformcore.ActionUp,
		platformcore.ActionLeft,
	}

	for i := 0; i < 400; i++ {
		var fa, fb platformcore.InputFrame
		if i%4 == 0 {
			act := script[(i/4)%len(script)]
			fa, fb = actionFrame(act), actionFrame(act)
		} else {
			fa, fb = emptyFrame(), emptyFrame()
		}

		a.Step(fa)
		b.Step(fb)

		sa, sb := a.Snapshot(), b.Snapshot()
		if sa != sb {
			t.Fatalf("snapshots diverge at tick %d:\n%+v\n%+v", i, sa, sb)
		}
	}
}

func TestPauseCancelsDrag(t *testing.T) {
	withTestConfig(t)

	g := New()
	g.Reset(testRuntime(11))
	stepUntilPlaying(t, g)

	g.Step(actionFrame(platformcore.ActionLink))
	if !g.orch.Dragging() {
		t.Fatal("link action did not start a chain")
	}
	if g.Snapshot().State != StateLinking {
		t.Errorf("snapshot state = %s, want linking", g.Snapshot().State)
	}

	g.Step(actionFrame(platformcore.ActionPause))
	if !g.State().Paused {
		t.Error("pause action did not pause")
	}
	if g.orch.Dragging() {
		t.Error("pausing left a chain open")
	}
}

func TestKeyboardChainPops(t *testing.T) {
	withTestConfig(t)

	g := New()
	g.Reset(testRuntime(21))
	stepUntilPlaying(t, g)

	// Drive the cursor along a known chain found in the live board.
	chain := findBoardChain(g)
	if chain == nil {
		t.Fatal("no pop available on a settled board")
	}

	g.cursorRow, g.cursorCol = chain[0][0], chain[0][1]
	g.Step(actionFrame(platformcore.ActionLink))
	for _, rc := range chain[1:] {
		var act platformcore.Action
		switch {
		case rc[0] < g.cursorRow:
			act = platformcore.ActionUp
		case rc[0] > g.cursorRow:
			act = platformcore.ActionDown
		case rc[1] < g.cursorCol:
			act = platformcore.ActionLeft
		default:
			act = platformcore.ActionRight
		}
		g.Step(actionFrame(act))
	}
	if got := g.orch.ChainLen(); got != len(chain) {
		t.Fatalf("chain length = %d, want %d", got, len(chain))
	}

	turnsBefore := g.orch.Turns().Remaining()
	g.Step(actionFrame(platformcore.ActionLink))

	if g.orch.Dragging() {
		t.Error("release left the chain open")
	}
	if got := g.orch.Score().Current(); got != len(chain)*10 {
		t.Errorf("score = %d, want %d", got, len(chain)*10)
	}
	if got := g.orch.Turns().Remaining(); got != turnsBefore-1 {
		t.Errorf("turns = %d, want %d", got, turnsBefore-1)
	}

	// The board must refill completely once the pacing runs out.
	for i := 0; i < 2000 && g.snapshotState() == StateResolving; i++ {
		g.Step(emptyFrame())
	}
	if board := g.Snapshot().Board; strings.Contains(board, ".") {
		t.Errorf("board not refilled:\n%s", board)
	}
}

// findBoardChain returns the coordinates of a linkable chain of three on
// the live board, each step adjacent to the previous, or nil.
func findBoardChain(g *Game) [][2]int {
	rows, cols := g.orch.Rows(), g.orch.Cols()
	dirs := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			first := g.orch.ChipAt(r, c)
			if first == nil {
				continue
			}
			for _, d1 := range dirs {
				r2, c2 := r+d1[0], c+d1[1]
				second := g.orch.ChipAt(r2, c2)
				if second == nil || second.Type != first.Type {
					continue
				}
				for _, d2 := range dirs {
					r3, c3 := r2+d2[0], c2+d2[1]
					if r3 == r && c3 == c {
						continue
					}
					third := g.orch.ChipAt(r3, c3)
					if third != nil && third.Type == first.Type {
						return [][2]int{{r, c}, {r2, c2}, {r3, c3}}
					}
				}
			}
		}
	}
	return nil
}

func TestMouseDragPops(t *testing.T) {
	withTestConfig(t)

	g := New()
	g.Reset(testRuntime(33))
	stepUntilPlaying(t, g)

	chain := findBoardChain(g)
	if chain == nil {
		t.Fatal("no pop available on a settled board")
	}

	press := emptyFrame()
	press.Pointer = platformcore.PointerState{
		Active: true, Pressed: true, Held: true,
		X: g.boardX + chain[0][1]*cellWidth + 2,
		Y: g.boardY + chain[0][0]*cellHeight + 1,
	}
	g.Step(press)
	if !g.orch.Dragging() {
		t.Fatal("press did not start a chain")
	}

	for _, rc := range chain[1:] {
		drag := emptyFrame()
		drag.Pointer = platformcore.PointerState{
			Active: true, Held: true,
			X: g.boardX + rc[1]*cellWidth + 2,
			Y: g.boardY + rc[0]*cellHeight + 1,
		}
		g.Step(drag)
	}
	if got := g.orch.ChainLen(); got != len(chain) {
		t.Fatalf("chain length = %d, want %d", got, len(chain))
	}

	release := emptyFrame()
	release.Pointer = platformcore.PointerState{Active: true, Released: true, X: 0, Y: 0}
	g.Step(release)

	if g.orch.Dragging() {
		t.Error("release did not end the chain")
	}
	if got := g.orch.Score().Current(); got != len(chain)*10 {
		t.Errorf("score = %d, want %d", got, len(chain)*10)
	}
}

func TestTileAtMapping(t *testing.T) {
	withTestConfig(t)

	g := New()
	g.Reset(testRuntime(5))

	// Center of the top-left cell.
	if r, c, ok := g.tileAt(g.boardX+2, g.boardY+1); !ok || r != 0 || c != 0 {
		t.Errorf("center of (0,0) mapped to (%d,%d,%v)", r, c, ok)
	}
	// Interior border clicks land on the next cell.
	if r, c, ok := g.tileAt(g.boardX+cellWidth, g.boardY+1); !ok || r != 0 || c != 1 {
		t.Errorf("border click mapped to (%d,%d,%v), want (0,1)", r, c, ok)
	}
	// Outer right border misses.
	if _, _, ok := g.tileAt(g.boardX+g.orch.Cols()*cellWidth, g.boardY+1); ok {
		t.Error("outer right border should miss")
	}
	// Left of the board misses.
	if _, _, ok := g.tileAt(g.boardX-1, g.boardY+1); ok {
		t.Error("left of board should miss")
	}
	// Below the board misses.
	if _, _, ok := g.tileAt(g.boardX+2, g.boardY+g.orch.Rows()*cellHeight); ok {
		t.Error("outer bottom border should miss")
	}
}

func TestLevelClearAdvancesAndBanksScore(t *testing.T) {
	withTestConfig(t)

	g := New()
	g.Reset(testRuntime(3))

	g.orch.Score().Add(120)
	g.levelCleared = true
	g.levelClearTicks = 0

	if !g.State().Paused {
		t.Error("level clear overlay should report paused")
	}

	for i := 0; i < g.cfg.Pacing.LevelClearTicks+2 && g.levelCleared; i++ {
		g.Step(emptyFrame())
	}

	if g.levelCleared {
		t.Fatal("level clear overlay never advanced")
	}
	if g.levelIndex != 1 {
		t.Errorf("level index = %d, want 1", g.levelIndex)
	}
	if g.bankedScore != 120 {
		t.Errorf("banked score = %d, want 120", g.bankedScore)
	}
	if g.State().Level != 2 {
		t.Errorf("GameState.Level = %d, want 2", g.State().Level)
	}
	if got := g.State().Score; got != 120 {
		t.Errorf("total score = %d, want 120 (fresh board adds nothing)", got)
	}
	if strings.Contains(g.Snapshot().Board, ".") {
		t.Error("next level board not fully built")
	}
}

func TestFinalLevelClearWinsCampaign(t *testing.T) {
	withTestConfig(t)

	g := New()
	g.Reset(testRuntime(3))

	g.levelIndex = LevelCount() - 1
	g.levelCleared = true
	g.levelClearTicks = 0

	for i := 0; i < g.cfg.Pacing.LevelClearTicks+2 && g.levelCleared; i++ {
		g.Step(emptyFrame())
	}

	if !g.won {
		t.Fatal("clearing the final level did not win the campaign")
	}
	if !g.State().GameOver {
		t.Error("campaign win should report game over to the platform")
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("snapshot state = %s, want win", g.Snapshot().State)
	}
}

func TestStartLevelSelectionConsumedOnReset(t *testing.T) {
	withTestConfig(t)

	SetStartLevel(3)
	g := New()
	g.Reset(testRuntime(9))
	if g.Snapshot().Level != 3 {
		t.Errorf("level = %d, want 3", g.Snapshot().Level)
	}

	// A restart afterwards goes back to level 1.
	g.Reset(testRuntime(10))
	if g.Snapshot().Level != 1 {
		t.Errorf("level after restart = %d, want 1", g.Snapshot().Level)
	}
}

func TestTooSmallScreenPauses(t *testing.T) {
	withTestConfig(t)

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.tooSmall {
		t.Fatal("20x10 should be too small for a 6x6 board")
	}
	if !g.State().Paused {
		t.Error("too-small screen should report paused")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("snapshot state = %s, want paused_small_window", g.Snapshot().State)
	}
}
