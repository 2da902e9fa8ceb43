package core

// Direction is the level-triggered horizontal intent of the player.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// CommandKind is a discrete player command.
type CommandKind int

const (
	CmdToggle CommandKind = iota // Space, P - pause/resume
	CmdTap                       // pointer press - resume or jump
	CmdDrag                      // pointer drag - jump
)

// String returns a human-readable name for the command.
func (k CommandKind) String() string {
	switch k {
	case CmdToggle:
		return "Toggle"
	case CmdTap:
		return "Tap"
	case CmdDrag:
		return "Drag"
	default:
		return "Unknown"
	}
}

// Command is a queued command with the pointer x-coordinate in canvas
// pixels for tap and drag.
type Command struct {
	Kind CommandKind
	X    float64
}

// InputFrame collects the input delivered between two simulation ticks.
// It is consumed at the start of the next tick.
type InputFrame struct {
	// Direction replaces the held direction when HasDirection is set.
	Direction    Direction
	HasDirection bool

	// Commands are applied in arrival order.
	Commands []Command
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// SetDirection records a direction change.
func (f *InputFrame) SetDirection(d Direction) {
	f.Direction = d
	f.HasDirection = true
}

// Push queues a command.
func (f *InputFrame) Push(kind CommandKind, x float64) {
	f.Commands = append(f.Commands, Command{Kind: kind, X: x})
}

// Has returns true if a command of the given kind is queued.
func (f InputFrame) Has(kind CommandKind) bool {
	for _, c := range f.Commands {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

// Empty reports whether the frame carries no input.
func (f InputFrame) Empty() bool {
	return !f.HasDirection && len(f.Commands) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	f.Direction = DirNone
	f.HasDirection = false
	f.Commands = f.Commands[:0]
}

// Clone creates a deep copy of the input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Commands = append([]Command(nil), f.Commands...)
	return clone
}
