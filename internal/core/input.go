package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move/rotate (Tetris) or face up (Tanks, Snake)
	ActionDown           // S, Down arrow - move down / soft drop
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionFire           // Space - fire (Tanks), hard drop (Tetris), flip (Cards)
	ActionHold           // H - hold the active piece (Tetris)
	ActionConfirm        // Enter - confirm / start / flip card under cursor
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
	case ActionFire:
		return "Fire"
	case ActionHold:
		return "Hold"
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

// InputFrame represents the buffered input state consumed during one
// simulation tick. Keys pressed between ticks accumulate here and the tick
// handler reads them at a defined point; for directions the last writer wins
// because games resolve at most one direction per step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	lastDir    Direction
	hasLastDir bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame. Directional actions
// also update the buffered direction, most recent write winning.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if d, ok := directionFor(a); ok {
		f.lastDir = d
		f.hasLastDir = true
	}
}

func directionFor(a Action) (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return DirUp, false
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the buffered directional intent, if any. When several
// direction keys landed in the same frame, the last one written wins.
func (f InputFrame) Direction() (Direction, bool) {
	return f.lastDir, f.hasLastDir
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.hasLastDir = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.lastDir = f.lastDir
	clone.hasLastDir = f.hasLastDir
	return clone
}
