package rendering

import "fmt"

// EventType identifies a backend-level input event.
type EventType int

const (
	// PointerEnter is delivered when the pointer enters a node's subtree.
	PointerEnter EventType = iota
	// PointerLeave is delivered when the pointer leaves a node's subtree.
	PointerLeave
	// PointerDown is delivered when a pointer button goes down over a node.
	PointerDown
	// PointerUp is delivered when a pointer button is released over a node.
	PointerUp
	// PointerMove is delivered when the pointer moves over a node.
	PointerMove
	// KeyUp is delivered to the surface root when a key is released.
	KeyUp
)

func (t EventType) String() string {
	switch t {
	case PointerEnter:
		return "pointerenter"
	case PointerLeave:
		return "pointerleave"
	case PointerDown:
		return "pointerdown"
	case PointerUp:
		return "pointerup"
	case PointerMove:
		return "pointermove"
	case KeyUp:
		return "keyup"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is the payload handed to node handlers. The interaction core treats
// it as opaque and only stores it for widgets to inspect.
type Event struct {
	Type EventType
	// Position is the pointer location in surface coordinates.
	Position Offset
	// Buttons is the pointer button mask at the time of the event.
	Buttons int
	// Key is the key name for KeyUp events ("a", "Enter", "ArrowUp", ...).
	Key string
	// Target is the deepest node the event was dispatched to.
	Target Node

	defaultPrevented bool
}

// PreventDefault asks the backend to skip its default action for the
// event, such as starting a text selection.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Handler receives backend events registered with Node.On.
type Handler func(e *Event)
