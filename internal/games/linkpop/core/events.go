package core

// Event is a notification from the orchestrator about a game-level
// occurrence. Concrete event types carry the details; subscribers type
// switch on them. Events describe what already happened; nothing a
// subscriber does can veto or alter the transition.
type Event interface {
	orchestratorEvent()
}

// ChainResolvedEvent fires when a released chain pops.
type ChainResolvedEvent struct {
	Chips  int // number of chips popped
	Points int // score awarded for the chain
}

// ShuffleStartedEvent fires when the orchestrator begins a shuffle attempt.
type ShuffleStartedEvent struct {
	Attempt     int // 1-based attempt number within this deadlock
	MaxAttempts int
}

// LevelWonEvent fires once when the score target is reached.
type LevelWonEvent struct {
	Score int
}

// LevelLostEvent fires once when the turns run out short of the target.
type LevelLostEvent struct {
	Score int
}

// ShuffleFailedEvent fires once when the shuffle budget is exhausted
// without producing a playable board.
type ShuffleFailedEvent struct {
	Attempts int
}

func (ChainResolvedEvent) orchestratorEvent() {}
func (ShuffleStartedEvent) orchestratorEvent() {}
func (LevelWonEvent) orchestratorEvent() {}
func (LevelLostEvent) orchestratorEvent() {}
func (ShuffleFailedEvent) orchestratorEvent() {}
