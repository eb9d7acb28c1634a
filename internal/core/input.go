package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move the board cursor up
	ActionDown           // S, Down arrow - move the board cursor down
	ActionLeft           // A, Left arrow - move the board cursor left
	ActionRight          // D, Right arrow - move the board cursor right
	ActionLink           // Space - begin a link drag, or finish the one in progress
	ActionConfirm        // Enter - confirm selection, also finishes a link drag
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLink:
		return "Link"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerState carries mouse/touch input sampled by the platform.
// X and Y are screen cell coordinates; the game translates them to board
// tiles itself, so the core stays agnostic to the input device.
//
// Held, X and Y are level state and persist across frames. Pressed and
// Released are edge flags valid for a single frame only; Clear resets them.
type PointerState struct {
	Active   bool // True once the terminal has reported any mouse event
	X        int  // Pointer column in screen cells
	Y        int  // Pointer row in screen cells
	Held     bool // Primary button currently down
	Pressed  bool // Primary button went down this frame
	Released bool // Primary button went up this frame
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame plus the
// latest pointer sample.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the most recent pointer sample, if the terminal reports mouse.
	Pointer PointerState
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets per-frame input: all actions and the pointer edge flags.
// Pointer position and hold state persist, they are sampled, not triggered.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Pressed = false
	f.Pointer.Released = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
