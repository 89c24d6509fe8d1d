package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, H, A - shift piece left
	ActionRight          // Right arrow, L, D - shift piece right
	ActionDown           // Down arrow, J, S - single-step soft drop
	ActionRotate         // Up arrow, K, W, X - rotate clockwise
	ActionRestart        // R - start over after game over
	ActionQuit           // Q, Esc, Ctrl+C, window close - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the queue of actions collected since the previous frame.
// Unlike a set of pressed keys, it keeps arrival order and repeats: two
// Left presses between frames shift the piece twice.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the queue. ActionNone is ignored.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets the queue for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// FrameOf builds an input frame from a list of actions.
func FrameOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Push(a)
	}
	return f
}
