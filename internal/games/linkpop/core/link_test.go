package core

import "testing"

func TestLinkBegin(t *testing.T) {
	_, occ := newTestBoard(t, []string{
		"RRG",
		"RGG",
	})
	fx := &fxRecorder{}
	session := NewLinkSession(fx)

	if session.Begin(nil) {
		t.Error("Begin(nil) succeeded")
	}
	if session.Begin(NewChip(TypeRed, 10)) {
		t.Error("Begin on unplaced chip succeeded")
	}

	start := occ.At(0, 0)
	if !session.Begin(start) {
		t.Fatal("Begin on placed chip failed")
	}
	if session.State() != LinkDragging {
		t.Errorf("state = %v, want LinkDragging", session.State())
	}
	if session.Len() != 1 || !session.Contains(start) {
		t.Error("chain does not hold the starting chip")
	}
	if len(fx.linked) != 1 || fx.linked[0] != start {
		t.Error("link effect not fired for the starting chip")
	}

	if session.Begin(occ.At(0, 1)) {
		t.Error("Begin succeeded while already dragging")
	}
}

func TestLinkExtendRules(t *testing.T) {
	_, occ := newTestBoard(t, []string{
		"RRG",
		"RGG",
	})
	session := NewLinkSession(nil)
	if !session.Begin(occ.At(0, 0)) {
		t.Fatal("Begin failed")
	}

	tests := []struct {
		name     string
		row, col int
		want     ExtendResult
	}{
		{"adjacent same type", 0, 1, ExtendAdded},
		{"tail itself", 0, 1, ExtendIgnored},
		{"adjacent different type", 0, 2, ExtendRejected},
		{"same type not adjacent to tail", 1, 0, ExtendRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := session.Extend(occ.At(tt.row, tt.col)); got != tt.want {
				t.Errorf("Extend = %v, want %v", got, tt.want)
			}
		})
	}

	if session.Len() != 2 {
		t.Errorf("chain length = %d, want 2", session.Len())
	}
}

func TestLinkExtendWhileIdle(t *testing.T) {
	_, occ := newTestBoard(t, []string{"RR"})
	session := NewLinkSession(nil)
	if got := session.Extend(occ.At(0, 0)); got != ExtendIgnored {
		t.Errorf("Extend while idle = %v, want ExtendIgnored", got)
	}
}

// Backtracking must be the exact inverse of the last extension: after
// extend then backtrack, the chain looks as if the extend never happened.
func TestLinkBacktrackInverse(t *testing.T) {
	_, occ := newTestBoard(t, []string{"RRR"})
	fx := &fxRecorder{}
	session := NewLinkSession(fx)

	a, b := occ.At(0, 0), occ.At(0, 1)
	if !session.Begin(a) {
		t.Fatal("Begin failed")
	}
	if got := session.Extend(b); got != ExtendAdded {
		t.Fatalf("Extend = %v, want ExtendAdded", got)
	}

	if got := session.Extend(a); got != ExtendBacktracked {
		t.Fatalf("Extend back onto previous link = %v, want ExtendBacktracked", got)
	}
	if session.Len() != 1 || session.Tail() != a {
		t.Errorf("after backtrack: len = %d, tail = %v, want the original single-chip chain", session.Len(), session.Tail())
	}
	if session.Contains(b) {
		t.Error("backtracked chip still counted as linked")
	}
	if len(fx.unlinked) != 1 || fx.unlinked[0] != b {
		t.Error("unlink effect not fired for the backtracked chip")
	}

	// The freed chip is immediately linkable again.
	if got := session.Extend(b); got != ExtendAdded {
		t.Errorf("re-extend after backtrack = %v, want ExtendAdded", got)
	}
}

func TestLinkEndShortChain(t *testing.T) {
	_, occ := newTestBoard(t, []string{"RRR"})
	fx := &fxRecorder{}
	session := NewLinkSession(fx)

	session.Begin(occ.At(0, 0))
	session.Extend(occ.At(0, 1))
	if got := session.End(); got != nil {
		t.Errorf("End on 2-chip chain = %v, want nil", got)
	}
	if session.State() != LinkIdle || session.Len() != 0 {
		t.Error("session not idle after End")
	}
	if len(fx.unlinked) != 2 {
		t.Errorf("unlink effects = %d, want 2 (every linked chip clears)", len(fx.unlinked))
	}
	// The chips stay on the board; only the orchestrator removes chips.
	if occ.Count() != 3 {
		t.Errorf("board count = %d, want 3", occ.Count())
	}
}

func TestLinkEndPopChain(t *testing.T) {
	_, occ := newTestBoard(t, []string{"RRRR"})
	fx := &fxRecorder{}
	session := NewLinkSession(fx)

	want := []*Chip{occ.At(0, 2), occ.At(0, 1), occ.At(0, 0)}
	session.Begin(want[0])
	session.Extend(want[1])
	session.Extend(want[2])

	got := session.End()
	if len(got) != 3 {
		t.Fatalf("End returned %d chips, want 3", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chain[%d] out of drag order", i)
		}
	}
	if len(fx.unlinked) != 3 {
		t.Errorf("unlink effects = %d, want 3 (popped chains clear too)", len(fx.unlinked))
	}
	if session.State() != LinkIdle {
		t.Error("session not idle after pop")
	}
}

func TestLinkCancel(t *testing.T) {
	_, occ := newTestBoard(t, []string{"RRR"})
	fx := &fxRecorder{}
	session := NewLinkSession(fx)

	session.Begin(occ.At(0, 0))
	session.Extend(occ.At(0, 1))
	session.Extend(occ.At(0, 2))
	session.Cancel()

	if session.State() != LinkIdle || session.Len() != 0 {
		t.Error("session not idle after Cancel")
	}
	if len(fx.unlinked) != 3 {
		t.Errorf("unlink effects = %d, want 3", len(fx.unlinked))
	}
	if got := session.End(); got != nil {
		t.Errorf("End after Cancel = %v, want nil", got)
	}
}
