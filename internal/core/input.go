package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move one lane left
	ActionRight          // D, Right arrow - move one lane right
	ActionJump           // Space - jump
	ActionUp             // Up arrow, W, K - previous menu option
	ActionDown           // Down arrow, S, J - next menu option
	ActionConfirm        // Enter - activate menu option, leave game over
	ActionClick          // Primary pointer button
	ActionQuit           // Q, Ctrl+C, Escape - exit
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
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionClick:
		return "Click"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the pointer position in logical pixels.
type Pointer struct {
	X, Y  int
	Moved bool // Pointer moved since the previous frame
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions holds the actions that are held down this frame.
	Actions map[Action]bool

	// Pressed holds the actions that went from released to held this frame.
	// Filled in by EdgeDetector.
	Pressed map[Action]bool

	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Press records a discrete press event: the action is held and has a
// rising edge this frame. Frontends that receive press events instead of
// polling held keys use this in place of an EdgeDetector.
func (f *InputFrame) Press(a Action) {
	f.Set(a)
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// JustPressed returns true if the action's rising edge happened this frame.
func (f InputFrame) JustPressed(a Action) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[a]
}

// Clear resets all actions for the next frame. The pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	f.Pointer.Moved = false
}

// EdgeDetector turns per-frame held state into rising edges.
// It keeps the previous frame's snapshot; an action is pressed when it is
// held now and was not held in the previous frame.
type EdgeDetector struct {
	prev map[Action]bool
}

// NewEdgeDetector creates a detector with nothing held.
func NewEdgeDetector() *EdgeDetector {
	return &EdgeDetector{prev: make(map[Action]bool)}
}

// Apply fills f.Pressed from f.Actions and the previous snapshot, then
// stores f.Actions as the new snapshot.
func (d *EdgeDetector) Apply(f *InputFrame) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	for a, held := range f.Actions {
		if held && !d.prev[a] {
			f.Pressed[a] = true
		}
	}

	for k := range d.prev {
		delete(d.prev, k)
	}
	for a, held := range f.Actions {
		if held {
			d.prev[a] = true
		}
	}
}

// Reset forgets the previous snapshot.
func (d *EdgeDetector) Reset() {
	for k := range d.prev {
		delete(d.prev, k)
	}
}
