package core

// LinkState is the drag lifecycle of a LinkSession.
type LinkState uint8

const (
	// LinkIdle means no chain is being built.
	LinkIdle LinkState = iota
	// LinkDragging means a chain is open and can be extended.
	LinkDragging
)

// ExtendResult reports what Extend did with a chip.
type ExtendResult uint8

const (
	// ExtendIgnored means the chip was nil, already mid-chain, or the
	// session was idle. Nothing changed.
	ExtendIgnored ExtendResult = iota
	// ExtendAdded means the chip was appended to the chain.
	ExtendAdded
	// ExtendBacktracked means the chip was the second-to-last link and the
	// tail was removed instead.
	ExtendBacktracked
	// ExtendRejected means the chip failed the type or adjacency rule.
	ExtendRejected
)

// LinkSession builds one chain of same-type, orthogonally adjacent chips
// while the player drags. The session owns the chain order and the linked
// visual state; popping and scoring are the orchestrator's job.
type LinkSession struct {
	state  LinkState
	locked ChipType
	chain  []*Chip
	member map[*Chip]bool
	fx     EffectSink
}

// NewLinkSession creates an idle session reporting link effects to fx.
func NewLinkSession(fx EffectSink) *LinkSession {
	if fx == nil {
		fx = NopEffects{}
	}
	return &LinkSession{
		state:  LinkIdle,
		member: make(map[*Chip]bool),
		fx:     fx,
	}
}

// State returns the current drag state.
func (s *LinkSession) State() LinkState {
	return s.state
}

// Len returns the number of chips in the chain.
func (s *LinkSession) Len() int {
	return len(s.chain)
}

// Contains reports whether the chip is currently linked.
func (s *LinkSession) Contains(chip *Chip) bool {
	return s.member[chip]
}

// Tail returns the most recently linked chip, or nil for an empty chain.
func (s *LinkSession) Tail() *Chip {
	if len(s.chain) == 0 {
		return nil
	}
	return s.chain[len(s.chain)-1]
}

// Chain returns the linked chips in drag order. The returned slice is a
// copy; mutating it does not affect the session.
func (s *LinkSession) Chain() []*Chip {
	out := make([]*Chip, len(s.chain))
	copy(out, s.chain)
	return out
}

// Begin opens a chain on the chip and locks the chain's type to the chip's
// type. Returns false without changing anything when the session is already
// dragging or the chip is nil or unplaced.
func (s *LinkSession) Begin(chip *Chip) bool {
	if s.state != LinkIdle || chip == nil || chip.tile == nil {
		return false
	}
	s.state = LinkDragging
	s.locked = chip.Type
	s.chain = append(s.chain[:0], chip)
	s.member[chip] = true
	s.fx.ChipLinked(chip)
	return true
}

// Extend tries to append the chip to the open chain. A chip of the locked
// type that is orthogonally adjacent to the tail joins the chain. Dragging
// back onto the second-to-last link removes the tail instead, undoing the
// last extension. Any other already-linked chip is ignored, as is a nil
// chip or an idle session.
func (s *LinkSession) Extend(chip *Chip) ExtendResult {
	if s.state != LinkDragging || chip == nil || chip.tile == nil {
		return ExtendIgnored
	}
	if s.member[chip] {
		if len(s.chain) >= 2 && chip == s.chain[len(s.chain)-2] {
			s.removeTail()
			return ExtendBacktracked
		}
		return ExtendIgnored
	}
	tail := s.Tail()
	if chip.Type != s.locked || !chip.tile.AdjacentTo(tail.tile) {
		return ExtendRejected
	}
	s.chain = append(s.chain, chip)
	s.member[chip] = true
	s.fx.ChipLinked(chip)
	return ExtendAdded
}

// End closes the chain. When the chain is long enough to pop it is returned
// in drag order; shorter chains return nil. Either way every linked chip is
// visually unlinked and the session goes idle.
func (s *LinkSession) End() []*Chip {
	if s.state != LinkDragging {
		return nil
	}
	var popped []*Chip
	if len(s.chain) >= MinChainLen {
		popped = make([]*Chip, len(s.chain))
		copy(popped, s.chain)
	}
	s.reset()
	return popped
}

// Cancel discards the chain without popping, regardless of length. Used
// when the game is paused or the board is about to change under the drag.
func (s *LinkSession) Cancel() {
	if s.state != LinkDragging {
		return
	}
	s.reset()
}

func (s *LinkSession) removeTail() {
	tail := s.chain[len(s.chain)-1]
	s.chain = s.chain[:len(s.chain)-1]
	delete(s.member, tail)
	s.fx.ChipUnlinked(tail)
}

func (s *LinkSession) reset() {
	for _, chip := range s.chain {
		s.fx.ChipUnlinked(chip)
	}
	s.chain = s.chain[:0]
	for chip := range s.member {
		delete(s.member, chip)
	}
	s.state = LinkIdle
	s.locked = TypeNone
}
