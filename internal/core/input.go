package core

// Action represents a semantic play action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // Up arrow, k
	ActionDown          // Down arrow, j
	ActionLeft          // Left arrow, h
	ActionRight         // Right arrow, l
	ActionSelect        // Space - extend or shrink the path
	ActionSubmit        // Enter - play the selected word
	ActionUndo          // U - take back the last word
	ActionClear         // Escape - drop the selection
	ActionNext          // N - next level once cleared
	ActionHint          // ? - toggle the move hint
	ActionQuit          // Q, Ctrl+C
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
	case ActionSelect:
		return "Select"
	case ActionSubmit:
		return "Submit"
	case ActionUndo:
		return "Undo"
	case ActionClear:
		return "Clear"
	case ActionNext:
		return "Next"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor movement for a direction action as
// (column delta, row delta) with rows counted upward.
func (a Action) Delta() (int, int) {
	switch a {
	case ActionUp:
		return 0, 1
	case ActionDown:
		return 0, -1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	}
	return 0, 0
}
