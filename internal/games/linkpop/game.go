// Package linkpop implements LinkPop, a tile-linking match puzzle.
// The player drags chains across adjacent same-colored chips; chains of
// three or more pop, the board refills, and play continues until the
// level goal is met or turns run out.
package linkpop

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-linkpop/internal/config"
	platformcore "github.com/vovakirdan/tui-linkpop/internal/core"
	"github.com/vovakirdan/tui-linkpop/internal/games/linkpop/core"
	"github.com/vovakirdan/tui-linkpop/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// HUD pulse lifetimes in ticks.
const (
	flashTicks       = 10
	noticeShortTicks = 45
	noticeLongTicks  = 90
)

// Game implements the LinkPop game shell. It owns the board simulation
// and drives it from host ticks: input goes to the link session, and the
// resolution phases advance on a paced countdown.
type Game struct {
	mode Mode
	rng  *rand.Rand
	log  *log.Logger
	tick uint64

	runtime    platformcore.RuntimeConfig
	cfg        config.LinkpopConfig
	difficulty *config.DifficultyManager

	orch *core.Orchestrator
	fx   *boardEffects

	levelIndex  int // Current campaign level (0-indexed)
	bankedScore int // Score carried over from cleared levels

	// Countdown until the next automatic board step while resolving or
	// shuffling.
	waitTicks int

	// Game state flags
	won             bool
	paused          bool
	tooSmall        bool
	levelCleared    bool
	levelClearTicks int
	fatalErr        error

	// Keyboard cursor on the board
	cursorRow int
	cursorCol int

	// HUD pulses
	scoreFlashTicks int
	turnFlashTicks  int
	notice          string
	noticeTicks     int

	// Board placement on screen
	boardX int
	boardY int
}

// Package-level variables for config
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetStartLevel sets the starting level (1-8). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign mode LinkPop game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode LinkPop game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("linkpop", func() registry.Game {
		return New()
	})
	registry.Register("linkpop_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "linkpop_endless"
	}
	return "linkpop"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "LinkPop (Endless)"
	}
	return "LinkPop"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.bankedScore = 0
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.fatalErr = nil
	g.waitTicks = 0
	g.scoreFlashTicks = 0
	g.turnFlashTicks = 0
	g.notice = ""
	g.noticeTicks = 0

	if g.log == nil {
		g.log = newGameLogger()
	}
	if g.fx == nil {
		g.fx = newBoardEffects()
	}

	// Load game config
	cfg, err := config.LoadLinkpop(configPath)
	if err != nil {
		cfg = config.DefaultLinkpopConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyLinkpopPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.startLevel()
}

// boardConfig builds the simulation config for the current level.
func (g *Game) boardConfig() core.Config {
	if g.mode == ModeEndless {
		return core.Config{
			Rows:        g.cfg.Board.Rows,
			Cols:        g.cfg.Board.Cols,
			ChipTypes:   g.cfg.Board.ChipTypes,
			ChipScore:   g.cfg.Scoring.ChipScore,
			TargetScore: 0, // No target in endless
			MaxTurns:    0, // Unlimited turns
			MaxShuffles: g.cfg.Board.MaxShuffles,
		}
	}

	level := GetLevel(g.levelIndex)
	if level == nil {
		// Shouldn't happen, but default to last level
		level = GetLevel(LevelCount() - 1)
	}
	return core.Config{
		Rows:        level.Rows,
		Cols:        level.Cols,
		ChipTypes:   level.ChipTypes,
		ChipScore:   level.ChipScore,
		TargetScore: level.TargetScore,
		MaxTurns:    level.MaxTurns,
		MaxShuffles: level.MaxShuffles,
	}
}

// startLevel builds a fresh board for the current level and hooks the
// shell to its outputs.
func (g *Game) startLevel() {
	g.fx.reset()

	orch, err := core.NewOrchestrator(g.boardConfig(), g.rng.Int63(), g.fx, g.log)
	if err != nil {
		g.fatalErr = err
		g.log.Errorf("linkpop: start level: %v", err)
		return
	}
	g.orch = orch

	g.orch.OnEvent(func(ev core.Event) {
		switch e := ev.(type) {
		case core.ChainResolvedEvent:
			g.setNotice(fmt.Sprintf("+%d points (%d chips)", e.Points, e.Chips), noticeShortTicks)
		case core.ShuffleStartedEvent:
			g.setNotice(fmt.Sprintf("No moves, shuffling %d/%d", e.Attempt, e.MaxAttempts), noticeLongTicks)
		case core.LevelWonEvent:
			if g.mode == ModeCampaign {
				g.levelCleared = true
				g.levelClearTicks = 0
			}
		}
	})
	g.orch.Score().OnChange(func(core.ScoreChange) {
		g.scoreFlashTicks = flashTicks
	})
	g.orch.Turns().OnChange(func(core.TurnChange) {
		g.turnFlashTicks = flashTicks
	})

	g.cursorRow = g.orch.Rows() / 2
	g.cursorCol = g.orch.Cols() / 2

	g.calcLayout()
	g.armPhaseDelay()
}

// calcLayout centers the board under the HUD and checks that the screen
// fits it.
func (g *Game) calcLayout() {
	boardW := g.orch.Cols()*cellWidth + 1
	boardH := g.orch.Rows()*cellHeight + 1

	g.boardX = (g.runtime.ScreenW - boardW) / 2
	g.boardY = hudHeight + (g.runtime.ScreenH-hudHeight-boardH)/2
	if g.boardY < hudHeight {
		g.boardY = hudHeight
	}

	g.tooSmall = g.runtime.ScreenW < boardW || g.runtime.ScreenH < boardH+hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(platformcore.ActionPause) && !g.isOver() && !g.levelCleared {
		g.paused = !g.paused
		if g.paused && g.orch != nil {
			// A paused game holds no half-built chain.
			g.orch.CancelLink()
		}
	}

	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.fx.tick()
	g.tickNotices()

	// Handle level cleared animation
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Pacing.LevelClearTicks {
			g.advanceLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(platformcore.ActionRestart) && g.isOver() {
		// Will be reset by platform
		return platformcore.StepResult{State: g.State()}
	}

	// Don't process input once the run is over
	if g.isOver() {
		return platformcore.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.stepBoard()

	return platformcore.StepResult{State: g.State()}
}

// isOver reports whether the run has reached a terminal state.
func (g *Game) isOver() bool {
	if g.won || g.fatalErr != nil {
		return true
	}
	if g.orch == nil {
		return true
	}
	st := g.orch.State()
	return st == core.StateLevelLost || st == core.StateShuffleFailed
}

// handleInput routes pointer and keyboard input into the link session.
func (g *Game) handleInput(in platformcore.InputFrame) {
	if in.Pointer.Active {
		g.handlePointer(in.Pointer)
	}

	dr, dc := 0, 0
	switch {
	case in.Has(platformcore.ActionUp):
		dr = -1
	case in.Has(platformcore.ActionDown):
		dr = 1
	case in.Has(platformcore.ActionLeft):
		dc = -1
	case in.Has(platformcore.ActionRight):
		dc = 1
	}
	if dr != 0 || dc != 0 {
		g.moveCursor(dr, dc)
	}

	if in.Has(platformcore.ActionLink) {
		g.toggleLink()
	}
	if in.Has(platformcore.ActionConfirm) && g.orch.Dragging() {
		g.finishLink()
	}
}

// handlePointer maps mouse state onto the board. The cursor follows the
// pointer; press starts a chain, drag extends it, release pops it.
func (g *Game) handlePointer(p platformcore.PointerState) {
	if row, col, ok := g.tileAt(p.X, p.Y); ok {
		g.cursorRow = row
		g.cursorCol = col

		chip := g.orch.ChipAt(row, col)
		if p.Pressed && chip != nil && !g.orch.Dragging() {
			g.orch.BeginLink(chip)
		} else if p.Held && chip != nil && g.orch.Dragging() {
			g.orch.ExtendLink(chip)
		}
	}

	// Releasing anywhere ends the chain, even off the board.
	if p.Released && g.orch.Dragging() {
		g.finishLink()
	}
}

// tileAt converts screen coordinates to a board tile. Clicks on interior
// grid borders count as the cell below/right of the border; the outer
// right and bottom borders miss.
func (g *Game) tileAt(x, y int) (row, col int, ok bool) {
	bx := x - g.boardX
	by := y - g.boardY
	if bx < 0 || by < 0 {
		return 0, 0, false
	}
	col = bx / cellWidth
	row = by / cellHeight
	if row >= g.orch.Rows() || col >= g.orch.Cols() {
		return 0, 0, false
	}
	return row, col, true
}

// moveCursor shifts the keyboard cursor, clamped to the board. While
// dragging, the chip under the new cursor is offered to the chain.
func (g *Game) moveCursor(dr, dc int) {
	g.cursorRow = clamp(g.cursorRow+dr, 0, g.orch.Rows()-1)
	g.cursorCol = clamp(g.cursorCol+dc, 0, g.orch.Cols()-1)

	if g.orch.Dragging() {
		if chip := g.orch.ChipAt(g.cursorRow, g.cursorCol); chip != nil {
			g.orch.ExtendLink(chip)
		}
	}
}

// toggleLink starts a chain at the cursor, or pops the current one.
func (g *Game) toggleLink() {
	if g.orch.Dragging() {
		g.finishLink()
		return
	}
	if chip := g.orch.ChipAt(g.cursorRow, g.cursorCol); chip != nil {
		g.orch.BeginLink(chip)
	}
}

// finishLink ends the drag and arms the resolution pacing when the chain
// popped.
func (g *Game) finishLink() {
	if g.orch.EndLink() {
		g.armPhaseDelay()
	}
}

// stepBoard drives the resolution and shuffle phases on the pacing
// countdown. One Advance call per expired countdown.
func (g *Game) stepBoard() {
	st := g.orch.State()
	if st != core.StateResolvingChain && st != core.StateShuffling {
		return
	}

	if g.waitTicks > 0 {
		g.waitTicks--
		return
	}

	if err := g.orch.Advance(); err != nil {
		g.fatalErr = err
		g.log.Errorf("linkpop: board advance: %v", err)
		return
	}
	g.armPhaseDelay()
}

// armPhaseDelay sets the countdown before the next board step, based on
// what the board will do next.
func (g *Game) armPhaseDelay() {
	switch g.orch.State() {
	case core.StateResolvingChain:
		switch g.orch.RefillPhase() {
		case core.RefillDestroy:
			g.waitTicks = g.pace(g.cfg.Pacing.DestroyTicks)
		case core.RefillGravity:
			g.waitTicks = g.pace(g.cfg.Pacing.GravityTicks)
		case core.RefillSpawn:
			g.waitTicks = g.pace(g.cfg.Pacing.SpawnTicks)
		default:
			g.waitTicks = 0
		}
	case core.StateShuffling:
		g.waitTicks = g.pace(g.cfg.Pacing.ShuffleTicks)
	default:
		g.waitTicks = 0
	}
}

// pace scales a base delay by the current difficulty level, so resolution
// speeds up as the run progresses.
func (g *Game) pace(base int) int {
	return g.difficulty.PaceTicks(base, g.totalScore(), int(g.tick))
}

// advanceLevel banks the cleared level's score and moves to the next one.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0
	g.bankedScore += g.orch.Score().Current()

	if g.levelIndex >= LevelCount()-1 {
		// Completed all levels
		g.won = true
		return
	}

	g.levelIndex++
	g.startLevel()
}

// totalScore is the banked campaign score plus the live board score.
func (g *Game) totalScore() int {
	score := g.bankedScore
	if g.orch != nil {
		score += g.orch.Score().Current()
	}
	return score
}

func (g *Game) setNotice(text string, ticks int) {
	g.notice = text
	g.noticeTicks = ticks
}

func (g *Game) tickNotices() {
	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}
	if g.scoreFlashTicks > 0 {
		g.scoreFlashTicks--
	}
	if g.turnFlashTicks > 0 {
		g.turnFlashTicks--
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}
	return platformcore.GameState{
		Score:    g.totalScore(),
		Level:    level,
		GameOver: g.isOver(),
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// newGameLogger writes board diagnostics to ~/.linkpop/linkpop.log so
// they never corrupt the terminal UI. Falls back to a silent logger.
func newGameLogger() *log.Logger {
	opts := log.Options{ReportTimestamp: true, Prefix: "linkpop"}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.NewWithOptions(io.Discard, opts)
	}
	dir := filepath.Join(home, ".linkpop")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts)
	}
	f, err := os.OpenFile(filepath.Join(dir, "linkpop.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts)
	}
	return log.NewWithOptions(f, opts)
}
