package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents rather than raw keys.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionConfirm          // Enter - submit entry / evaluate
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R - restart after the game has ended
	ActionQuit             // Q, Ctrl+C - exit
	ActionPause            // Space, P - pause/unpause
	ActionBackspace        // Backspace - delete last typed character
	ActionClear            // C - clear entry
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
	case ActionBackspace:
		return "Backspace"
	case ActionClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// InputFrame is the input collected between two frames.
// Actions is an unordered set; Text keeps typed characters in arrival order
// for games that take free-form entry (digits, operators).
type InputFrame struct {
	Actions map[Action]bool
	Text    []rune
	// Moves holds every directional action in arrival order.
	Moves []Action
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
	if a.Directional() {
		f.Moves = append(f.Moves, a)
	}
}

// Type appends a typed character to the frame.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing was pressed or typed.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Text) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
	f.Moves = f.Moves[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Text = append([]rune(nil), f.Text...)
	clone.Moves = append([]Action(nil), f.Moves...)
	return clone
}

// Last returns the most recent directional action, or ActionNone.
func (f InputFrame) Last() Action {
	if len(f.Moves) == 0 {
		return ActionNone
	}
	return f.Moves[len(f.Moves)-1]
}

// Directional reports whether the action is one of the four arrows.
func (a Action) Directional() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
