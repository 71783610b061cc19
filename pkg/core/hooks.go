package core

import "github.com/go-drift/widgetkit/pkg/rendering"

// Hooks are the state-entry callbacks every concrete widget supplies. The
// transition table calls them after the new state has been recorded, so
// State and Previous already reflect the transition. A widget with nothing
// to do for a hook implements it as a no-op.
type Hooks interface {
	IdleUpState()
	IdleDownState()
	PressedState()
	PressReleaseState()
	HoverState()
	HoverPressedState()
	PressedOutState()
	MoveState()
	// KeyupState receives the Window's last key event, which may be nil.
	KeyupState(key *rendering.Event)
}

// Painter is implemented by widgets that repaint on Update. Paint runs only
// after the role check has passed.
type Painter interface {
	Paint()
}
