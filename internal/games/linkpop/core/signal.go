package core

// signal is a plain subscriber list. Whoever owns the state owns the signal
// and emits on it; there is no central event bus. Everything runs on the
// host's single goroutine, so no locking.
type signal[T any] struct {
	nextID int
	subs   []subscriberEntry[T]
}

type subscriberEntry[T any] struct {
	id int
	fn func(T)
}

// subscribe registers fn and returns a function that removes it again.
// Unsubscribing twice is harmless.
func (s *signal[T]) subscribe(fn func(T)) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriberEntry[T]{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// emit calls every subscriber with v. The list is copied first, so a
// subscriber may unsubscribe itself (or others) from inside its handler.
func (s *signal[T]) emit(v T) {
	subs := make([]subscriberEntry[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(v)
	}
}
