package core

// Key is a platform-independent key identifier.
// Hosts map their native key codes onto this fixed set.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRestart
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyOther:
		return "Other"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Direction returns the heading a key steers toward, or DirNone.
func (k Key) Direction() Direction {
	switch k {
	case KeyUp:
		return DirUp
	case KeyDown:
		return DirDown
	case KeyLeft:
		return DirLeft
	case KeyRight:
		return DirRight
	default:
		return DirNone
	}
}

// KeyAction distinguishes presses from releases.
type KeyAction int

const (
	Press KeyAction = iota
	Release
)

// KeyEvent is one discrete key transition delivered by a host.
type KeyEvent struct {
	Key    Key
	Action KeyAction
}

// Pressed builds a press event for k.
func Pressed(k Key) KeyEvent {
	return KeyEvent{Key: k, Action: Press}
}

// EventQueue buffers key events between frames.
// Hosts push from their input callbacks; the frame loop drains once per frame.
type EventQueue struct {
	events []KeyEvent
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]KeyEvent, 0, 8)}
}

// Push appends an event.
func (q *EventQueue) Push(ev KeyEvent) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *EventQueue) Drain() []KeyEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]KeyEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
