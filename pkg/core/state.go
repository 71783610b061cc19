package core

import "fmt"

// State is the interaction state of a Component.
type State uint8

const (
	// StateNone is the zero value, held before the first transition.
	StateNone State = iota
	// IdleUp: pointer outside, no button held.
	IdleUp
	// IdleDown: button held, pointer not over the component.
	IdleDown
	// Hover: pointer over the component, no button held.
	Hover
	// HoverPressed: pointer entered while the button was already held elsewhere.
	HoverPressed
	// Pressed: button went down over the component.
	Pressed
	// PressedOut: pressed here, then the pointer left.
	PressedOut
	// DragWindow: a draggable component moved while pressed.
	DragWindow
	// Keypress marks a key release broadcast by the Window. Components only
	// hold it if a widget sets it explicitly.
	Keypress

	stateCount
)

var stateNames = [stateCount]string{
	StateNone:    "none",
	IdleUp:       "idleup",
	IdleDown:     "idledown",
	Hover:        "hover",
	HoverPressed: "hoverpressed",
	Pressed:      "pressed",
	PressedOut:   "pressedout",
	DragWindow:   "dragwindow",
	Keypress:     "keypress",
}

func (s State) String() string {
	if s < stateCount {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// EventKind is the input fed to the transition table.
type EventKind uint8

const (
	EventEnter EventKind = iota
	EventLeave
	EventPress
	EventRelease
	EventMove
	EventKeyup

	eventCount
)

var eventNames = [eventCount]string{
	EventEnter:   "enter",
	EventLeave:   "leave",
	EventPress:   "press",
	EventRelease: "release",
	EventMove:    "move",
	EventKeyup:   "keyup",
}

func (k EventKind) String() string {
	if k < eventCount {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Role is the accessibility role published on a component's node. The empty
// Role means no role has been assigned.
type Role string

const (
	RoleUnset       Role = ""
	RoleButton      Role = "button"
	RoleGroup       Role = "group"
	RoleHeading     Role = "heading"
	RoleNone        Role = "none"
	RoleScrollbar   Role = "scrollbar"
	RoleWindow      Role = "window"
	RoleCheckbox    Role = "checkbox"
	RoleRadio       Role = "radio"
	RoleProgressbar Role = "progressbar"
)
