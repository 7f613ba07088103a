package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionConfirm           // Enter
	ActionBack              // B, Escape - back to menu
	ActionRestart           // R - restart after game over
	ActionQuit              // Q, Ctrl+C
	ActionPause             // P
	ActionToggleMode        // M - switch smooth/grid movement
	ActionGiveUp            // K - self-destruct when trapped
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
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
	case ActionToggleMode:
		return "ToggleMode"
	case ActionGiveUp:
		return "GiveUp"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one frame: actions newly pressed this frame,
// actions still held down, and the elapsed time since the previous frame.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
	DT      float64 // Seconds since the previous frame
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame. A pressed action is also held.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// Hold marks an action as held without a new press.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld returns true if the action is held down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Pressed[a]
}

// Clear resets all actions for the next frame. DT is kept.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.DT = f.DT
	return clone
}
