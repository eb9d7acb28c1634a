package core

import (
	"fmt"
	"math/rand"
)

// State is the orchestrator's phase. The three terminal states stay put
// until the host builds a fresh orchestrator; nothing inside the core
// restarts a finished game.
type State string

const (
	// StateAwaitingInput accepts link input from the player.
	StateAwaitingInput State = "awaiting_input"
	// StateResolvingChain steps the refill pipeline after a pop.
	StateResolvingChain State = "resolving_chain"
	// StateShuffling retries shuffles until moves exist or the budget runs out.
	StateShuffling State = "shuffling"
	// StateLevelWon is terminal: the score target was reached.
	StateLevelWon State = "level_won"
	// StateLevelLost is terminal: turns ran out short of the target.
	StateLevelLost State = "level_lost"
	// StateShuffleFailed is terminal: no shuffle produced a playable board.
	StateShuffleFailed State = "shuffle_failed"
)

// Terminal reports whether the state ends the game.
func (s State) Terminal() bool {
	return s == StateLevelWon || s == StateLevelLost || s == StateShuffleFailed
}

// Orchestrator runs one game of LinkPop. It owns the board, the link
// session, the refill pipeline, the shuffle engine, and the score and turn
// trackers, and advances between phases one unit of work at a time. The
// host decides when to call Advance, which is where visible pauses between
// refill phases come from; the orchestrator itself never waits.
//
// All methods must be called from a single goroutine.
type Orchestrator struct {
	cfg      Config
	grid     *Grid
	occ      *Occupancy
	detector *MatchDetector
	session  *LinkSession
	refill   *RefillPipeline
	shuffler *ShuffleEngine
	score    *ScoreTracker
	turns    *TurnTracker
	rng      *rand.Rand

	state           State
	shuffleAttempts int
	events          signal[Event]
}

// NewOrchestrator builds a board from cfg, fills it from the spawn pool,
// and leaves the game ready for input. A freshly filled board with no
// possible moves starts in StateShuffling rather than StateAwaitingInput;
// the first Advance calls then spend the shuffle budget as usual.
func NewOrchestrator(cfg Config, seed int64, fx EffectSink, log Logger) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fx == nil {
		fx = NopEffects{}
	}
	if log == nil {
		log = nopLogger{}
	}
	rng := rand.New(rand.NewSource(seed))
	grid := NewGrid(cfg.Rows, cfg.Cols)
	occ := NewOccupancy(grid)
	o := &Orchestrator{
		cfg:      cfg,
		grid:     grid,
		occ:      occ,
		detector: NewMatchDetector(grid, occ),
		session:  NewLinkSession(fx),
		refill:   NewRefillPipeline(grid, occ, cfg.pool(), cfg.ChipScore, rng, fx, log),
		shuffler: NewShuffleEngine(grid, occ, rng, fx),
		score:    NewScoreTracker(cfg.TargetScore),
		turns:    NewTurnTracker(cfg.MaxTurns),
		rng:      rng,
	}
	if err := o.fillBoard(); err != nil {
		return nil, err
	}
	if o.detector.HasPossibleMoves() {
		o.state = StateAwaitingInput
	} else {
		o.enterShuffling()
	}
	return o, nil
}

// fillBoard places fresh chips on every tile in row-major order. The
// initial fill fires no effects; the board simply appears complete.
func (o *Orchestrator) fillBoard() error {
	pool := o.cfg.pool()
	for tile := o.occ.FirstEmpty(); tile != nil; tile = o.occ.FirstEmpty() {
		chip := NewChip(pool[o.rng.Intn(len(pool))], o.cfg.ChipScore)
		if err := o.occ.Place(chip, tile); err != nil {
			return fmt.Errorf("initial fill at (%d,%d): %w", tile.Row(), tile.Col(), err)
		}
	}
	return nil
}

// State returns the current phase.
func (o *Orchestrator) State() State {
	return o.state
}

// Score returns the score tracker. Subscribe there for score updates.
func (o *Orchestrator) Score() *ScoreTracker {
	return o.score
}

// Turns returns the turn tracker. Subscribe there for turn updates.
func (o *Orchestrator) Turns() *TurnTracker {
	return o.turns
}

// Rows returns the board height.
func (o *Orchestrator) Rows() int {
	return o.grid.Rows()
}

// Cols returns the board width.
func (o *Orchestrator) Cols() int {
	return o.grid.Cols()
}

// ChipAt returns the chip at (row, col), or nil for empty or out-of-range
// tiles.
func (o *Orchestrator) ChipAt(row, col int) *Chip {
	return o.occ.At(row, col)
}

// Linked reports whether the chip is part of the active link chain.
func (o *Orchestrator) Linked(chip *Chip) bool {
	return o.session.Contains(chip)
}

// Dragging reports whether a link chain is currently open.
func (o *Orchestrator) Dragging() bool {
	return o.session.State() == LinkDragging
}

// ChainLen returns the length of the active link chain.
func (o *Orchestrator) ChainLen() int {
	return o.session.Len()
}

// ChainTail returns the most recently linked chip, or nil.
func (o *Orchestrator) ChainTail() *Chip {
	return o.session.Tail()
}

// Chain returns a copy of the active link chain in drag order.
func (o *Orchestrator) Chain() []*Chip {
	return o.session.Chain()
}

// RefillPhase returns the refill phase the next Advance will run.
func (o *Orchestrator) RefillPhase() RefillPhase {
	return o.refill.Phase()
}

// ShuffleAttempts returns the attempts used in the current deadlock
// episode. The counter starts over each time the board deadlocks anew.
func (o *Orchestrator) ShuffleAttempts() int {
	return o.shuffleAttempts
}

// OnEvent subscribes fn to orchestrator events and returns an unsubscribe
// function.
func (o *Orchestrator) OnEvent(fn func(Event)) func() {
	return o.events.subscribe(fn)
}

// BeginLink opens a link chain on the chip. Only valid while awaiting
// input; returns false otherwise.
func (o *Orchestrator) BeginLink(chip *Chip) bool {
	if o.state != StateAwaitingInput {
		return false
	}
	return o.session.Begin(chip)
}

// ExtendLink feeds a chip under the pointer into the open chain.
func (o *Orchestrator) ExtendLink(chip *Chip) ExtendResult {
	if o.state != StateAwaitingInput {
		return ExtendIgnored
	}
	return o.session.Extend(chip)
}

// EndLink releases the chain. A chain of three or more chips pops: one turn
// is consumed, the chain's points are credited, a ChainResolvedEvent fires,
// and the orchestrator moves to StateResolvingChain with the refill
// pipeline armed. Shorter chains dissolve at no cost. Returns true when a
// pop happened.
func (o *Orchestrator) EndLink() bool {
	if o.state != StateAwaitingInput {
		return false
	}
	chain := o.session.End()
	if chain == nil {
		return false
	}
	points := 0
	for _, chip := range chain {
		points += chip.Score
	}
	o.turns.Consume()
	o.score.Add(points)
	o.events.emit(ChainResolvedEvent{Chips: len(chain), Points: points})
	o.refill.Begin(chain)
	o.state = StateResolvingChain
	return true
}

// CancelLink discards the open chain without popping. Used when the player
// pauses or input is otherwise interrupted mid-drag.
func (o *Orchestrator) CancelLink() {
	o.session.Cancel()
}

// Advance performs one unit of pending work: a single refill phase while
// resolving a chain, or a single shuffle attempt while shuffling. In
// StateAwaitingInput and the terminal states it does nothing. The host
// calls Advance whenever it has finished showing the previous unit, so
// pacing lives entirely outside the core. A non-nil error means the board
// is unrecoverable and the game must stop.
func (o *Orchestrator) Advance() error {
	switch o.state {
	case StateResolvingChain:
		return o.advanceRefill()
	case StateShuffling:
		return o.advanceShuffle()
	default:
		return nil
	}
}

func (o *Orchestrator) advanceRefill() error {
	phase, err := o.refill.Step()
	if err != nil {
		return err
	}
	if phase != RefillSpawn {
		return nil
	}
	// Spawn was the last phase; the board is whole again. Win beats lose
	// when the final turn reaches the target.
	switch {
	case o.score.TargetReached():
		o.state = StateLevelWon
		o.events.emit(LevelWonEvent{Score: o.score.Current()})
	case !o.turns.HasTurns():
		o.state = StateLevelLost
		o.events.emit(LevelLostEvent{Score: o.score.Current()})
	case !o.detector.HasPossibleMoves():
		o.enterShuffling()
	default:
		o.state = StateAwaitingInput
	}
	return nil
}

func (o *Orchestrator) advanceShuffle() error {
	if o.shuffleAttempts >= o.cfg.MaxShuffles {
		o.state = StateShuffleFailed
		o.events.emit(ShuffleFailedEvent{Attempts: o.shuffleAttempts})
		return nil
	}
	o.shuffleAttempts++
	o.events.emit(ShuffleStartedEvent{Attempt: o.shuffleAttempts, MaxAttempts: o.cfg.MaxShuffles})
	if err := o.shuffler.Shuffle(); err != nil {
		return err
	}
	if o.detector.HasPossibleMoves() {
		o.state = StateAwaitingInput
		return nil
	}
	if o.shuffleAttempts >= o.cfg.MaxShuffles {
		o.state = StateShuffleFailed
		o.events.emit(ShuffleFailedEvent{Attempts: o.shuffleAttempts})
	}
	return nil
}

// enterShuffling starts a fresh deadlock episode. The attempt counter
// belongs to the episode, not the game, so it starts at zero every time.
func (o *Orchestrator) enterShuffling() {
	o.shuffleAttempts = 0
	o.state = StateShuffling
}
