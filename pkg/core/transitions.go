package core

// transition is one cell of the table. A zero next keeps the current state.
// When guard is set and fails, otherwise is tried instead; a nil otherwise
// makes the cell a no-op.
type transition struct {
	next      State
	call      func(h Hooks, c *Component)
	guard     func(c *Component) bool
	otherwise *transition
}

func callIdleUp(h Hooks, _ *Component)       { h.IdleUpState() }
func callIdleDown(h Hooks, _ *Component)     { h.IdleDownState() }
func callPressed(h Hooks, _ *Component)      { h.PressedState() }
func callPressRelease(h Hooks, _ *Component) { h.PressReleaseState() }
func callHover(h Hooks, _ *Component)        { h.HoverState() }
func callHoverPressed(h Hooks, _ *Component) { h.HoverPressedState() }
func callPressedOut(h Hooks, _ *Component)   { h.PressedOutState() }
func callMove(h Hooks, _ *Component)         { h.MoveState() }
func callKeyup(h Hooks, c *Component)        { h.KeyupState(c.keyEvent()) }

func parentIdleDown(c *Component) bool {
	p := c.Parent()
	return p != nil && p.State() == IdleDown
}

func draggable(c *Component) bool {
	return c.Draggable
}

var transitions = [stateCount][eventCount]*transition{
	IdleUp: {
		EventEnter: {
			next: HoverPressed, call: callHoverPressed, guard: parentIdleDown,
			otherwise: &transition{next: Hover, call: callHover},
		},
		EventPress: {next: IdleDown, call: callIdleDown},
		EventKeyup: {call: callKeyup},
	},
	IdleDown: {
		EventRelease: {next: IdleUp, call: callIdleUp},
		EventMove:    {call: callMove},
	},
	Hover: {
		EventLeave: {next: IdleUp, call: callIdleUp},
		EventPress: {next: Pressed, call: callPressed},
	},
	HoverPressed: {
		EventLeave:   {next: IdleUp, call: callIdleUp},
		EventRelease: {next: Hover, call: callHover},
	},
	Pressed: {
		EventLeave:   {next: PressedOut, call: callPressedOut},
		EventRelease: {next: Hover, call: callPressRelease},
		EventMove:    {next: DragWindow, call: callMove, guard: draggable},
	},
	PressedOut: {
		EventEnter:   {next: Pressed, call: callPressed},
		EventRelease: {next: IdleUp, call: callIdleUp},
		EventMove:    {call: callMove, guard: draggable},
	},
	DragWindow: {
		EventLeave:   {next: PressedOut, call: callPressedOut},
		EventRelease: {next: Hover, call: callHover},
		EventMove:    {call: callMove},
	},
	Keypress: {
		EventKeyup: {call: callKeyup},
	},
}

// lookup resolves the cell for (s, k) against c, following guards.
func lookup(c *Component, s State, k EventKind) *transition {
	if s >= stateCount || k >= eventCount {
		return nil
	}
	t := transitions[s][k]
	for t != nil && t.guard != nil && !t.guard(c) {
		t = t.otherwise
	}
	return t
}

// HasTransition reports whether (s, k) has an entry in the table, ignoring
// guards.
func HasTransition(s State, k EventKind) bool {
	return s < stateCount && k < eventCount && transitions[s][k] != nil
}
