package input

import "github.com/vovakirdan/termsnake/internal/core"

// State is the Tracker's state.
type State int

const (
	StateTracking State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateTracking:
		return "tracking"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Signal is the outcome of feeding one key event to the Tracker.
type Signal int

const (
	// SignalNone means the event produced nothing: unmapped key,
	// suppressed repeat or an event after termination.
	SignalNone Signal = iota
	// SignalIntent means a new direction intent was emitted.
	SignalIntent
	// SignalTerminate means the interrupt key was pressed.
	SignalTerminate
)

// Tracker turns key presses into direction intents. It suppresses a mapped
// key equal to the last emitted intent so that key auto-repeat does not
// flood the driver with no-op changes.
type Tracker struct {
	state   State
	last    core.Direction
	hasLast bool
}

// NewTracker returns a Tracker in the tracking state with no intent emitted.
func NewTracker() *Tracker {
	return &Tracker{}
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// Feed processes one key event.
func (t *Tracker) Feed(ev KeyEvent) (core.Direction, Signal) {
	if t.state == StateTerminated {
		return 0, SignalNone
	}

	if ev.IsInterrupt() {
		t.state = StateTerminated
		return 0, SignalTerminate
	}

	dir, ok := DirectionFor(ev)
	if !ok {
		return 0, SignalNone
	}
	if t.hasLast && dir == t.last {
		return 0, SignalNone
	}

	t.last = dir
	t.hasLast = true
	return dir, SignalIntent
}

// DirectionFor maps arrow keys and WASD (either case) to a direction.
func DirectionFor(ev KeyEvent) (core.Direction, bool) {
	if ev.Mod&(ModCtrl|ModAlt) != 0 {
		return 0, false
	}

	switch ev.Key {
	case KeyUp:
		return core.Up, true
	case KeyDown:
		return core.Down, true
	case KeyLeft:
		return core.Left, true
	case KeyRight:
		return core.Right, true
	case KeyRune:
		switch ev.Rune {
		case 'w', 'W':
			return core.Up, true
		case 's', 'S':
			return core.Down, true
		case 'a', 'A':
			return core.Left, true
		case 'd', 'D':
			return core.Right, true
		}
	}
	return 0, false
}
