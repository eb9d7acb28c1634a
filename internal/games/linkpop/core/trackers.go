package core

// ScoreChange is the payload delivered to score subscribers.
type ScoreChange struct {
	Current int
	Delta   int
	Target  int
}

// ScoreTracker accumulates points toward an optional target. The tracker
// owns its subscriber list; anyone interested in score updates subscribes
// here directly rather than through the orchestrator.
type ScoreTracker struct {
	current int
	target  int
	changes signal[ScoreChange]
}

// NewScoreTracker creates a tracker. A target of zero means free play with
// no win condition.
func NewScoreTracker(target int) *ScoreTracker {
	return &ScoreTracker{target: target}
}

// Current returns the accumulated score.
func (t *ScoreTracker) Current() int {
	return t.current
}

// Target returns the score target, zero when there is none.
func (t *ScoreTracker) Target() int {
	return t.target
}

// Add credits points and notifies subscribers. Zero-point additions still
// notify; subscribers see every resolved chain.
func (t *ScoreTracker) Add(points int) {
	t.current += points
	t.changes.emit(ScoreChange{Current: t.current, Delta: points, Target: t.target})
}

// TargetReached reports whether a target exists and has been met.
func (t *ScoreTracker) TargetReached() bool {
	return t.target > 0 && t.current >= t.target
}

// OnChange subscribes fn to score updates and returns an unsubscribe
// function.
func (t *ScoreTracker) OnChange(fn func(ScoreChange)) func() {
	return t.changes.subscribe(fn)
}

// TurnChange is the payload delivered to turn subscribers.
type TurnChange struct {
	Remaining int
	Used      int
	Unlimited bool
}

// TurnTracker counts the moves a level allows. Exactly one turn is consumed
// per resolved chain; releasing a chain too short to pop costs nothing.
type TurnTracker struct {
	remaining int
	used      int
	unlimited bool
	changes   signal[TurnChange]
}

// NewTurnTracker creates a tracker with max turns. A non-positive max means
// unlimited turns.
func NewTurnTracker(max int) *TurnTracker {
	return &TurnTracker{remaining: max, unlimited: max <= 0}
}

// Remaining returns the turns left. Meaningless when Unlimited.
func (t *TurnTracker) Remaining() int {
	return t.remaining
}

// Used returns the number of turns consumed so far.
func (t *TurnTracker) Used() int {
	return t.used
}

// Unlimited reports whether this tracker ever runs out.
func (t *TurnTracker) Unlimited() bool {
	return t.unlimited
}

// HasTurns reports whether at least one more turn may be played.
func (t *TurnTracker) HasTurns() bool {
	return t.unlimited || t.remaining > 0
}

// Consume spends one turn and notifies subscribers.
func (t *TurnTracker) Consume() {
	t.used++
	if !t.unlimited {
		t.remaining--
	}
	t.changes.emit(TurnChange{Remaining: t.remaining, Used: t.used, Unlimited: t.unlimited})
}

// OnChange subscribes fn to turn updates and returns an unsubscribe
// function.
func (t *TurnTracker) OnChange(fn func(TurnChange)) func() {
	return t.changes.subscribe(fn)
}
