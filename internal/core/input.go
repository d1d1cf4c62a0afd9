package core

// Action represents a semantic game action, abstracted from physical key
// presses or gesture recognition results. The session state machine only
// consumes named actions, never raw device codes.
type Action int

const (
	ActionNone          Action = iota
	ActionStart                // Enter/Space in menu - begin a run
	ActionJump                 // Space, W, Up - jump over obstacles
	ActionDuck                 // S, Down - crouch (reserved for gesture parity)
	ActionPause                // P - pause/resume
	ActionRestart              // R - restart after game over
	ActionMute                 // M - toggle all audio
	ActionToggleGesture        // G - enable/disable gesture input
	ActionQuit                 // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionToggleGesture:
		return "ToggleGesture"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
