package core

import (
	"fmt"
	"sync"

	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/rendering"
)

// Component is the part of every widget, and of the Window, that takes part
// in the state machine and the accessibility contract. It is embedded, never
// used on its own.
type Component struct {
	// TabIndex is published as the "tabindex" attribute on Update.
	TabIndex int
	// Draggable lets Pressed and PressedOut react to move events.
	Draggable bool

	mu         sync.Mutex
	state      State
	previous   State
	role       Role
	selectable bool

	parent    *Component
	window    *Window
	node      rendering.Node
	hooks     Hooks
	listeners registry[EventArgs]
}

// State returns the current state.
func (c *Component) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Previous returns the state held before the latest SetState call, or
// StateNone before the first one.
func (c *Component) Previous() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previous
}

// SetState records the current state as previous and moves to next. It does
// not check next against the transition table.
func (c *Component) SetState(next State) {
	c.mu.Lock()
	c.previous = c.state
	c.state = next
	c.mu.Unlock()
}

// Role returns the assigned accessibility role.
func (c *Component) Role() Role {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.role
}

// SetRole assigns the accessibility role. Update fails until one is set.
func (c *Component) SetRole(r Role) {
	c.mu.Lock()
	c.role = r
	c.mu.Unlock()
}

// Selectable reports whether pointer-down keeps the backend's default action
// (such as text selection).
func (c *Component) Selectable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectable
}

func (c *Component) SetSelectable(v bool) {
	c.mu.Lock()
	c.selectable = v
	c.mu.Unlock()
}

// Parent returns the enclosing component, or nil for a Window.
func (c *Component) Parent() *Component {
	return c.parent
}

// Node returns the backend node the component publishes to.
func (c *Component) Node() rendering.Node {
	return c.node
}

// SetNode replaces the component's outer node.
func (c *Component) SetNode(n rendering.Node) {
	c.node = n
}

// Hooks returns the hook implementation driven by Dispatch.
func (c *Component) Hooks() Hooks {
	return c.hooks
}

// Attach registers a listener for the component's public event. The same
// function may be attached more than once.
func (c *Component) Attach(listener func(EventArgs)) *Subscription {
	return c.listeners.add(listener)
}

// Raise calls the listeners registered when Raise began, in order.
func (c *Component) Raise(args EventArgs) {
	c.listeners.notify(args)
}

// ListenerCount returns the number of attached listeners.
func (c *Component) ListenerCount() int {
	return c.listeners.len()
}

// Dispatch feeds an event to the transition table. The new state is
// recorded before the hook runs. Pairs absent from the table, or whose guard
// fails with no fallback, leave the component untouched.
func (c *Component) Dispatch(kind EventKind) {
	from := c.State()
	t := lookup(c, from, kind)
	if t == nil {
		return
	}
	if t.next != StateNone {
		c.SetState(t.next)
	}
	debugf("%s %s: %s -> %s", c.name(), kind, from, c.State())
	if t.call != nil && c.hooks != nil {
		t.call(c.hooks, c)
	}
}

// Update pushes the component's accessibility attributes to its node, after
// running the widget's Painter. It fails without touching the node when no
// role has been assigned.
func (c *Component) Update() error {
	role := c.Role()
	if role == RoleUnset {
		return &errors.AccessibilityError{Component: c.name(), Op: "update"}
	}
	if p, ok := c.hooks.(Painter); ok {
		p.Paint()
	}
	if c.node != nil {
		c.node.SetAttr("role", string(role))
		c.node.SetAttr("tabindex", c.TabIndex)
	}
	return nil
}

// Move positions the component's node relative to its parent and updates.
func (c *Component) Move(x, y float64) error {
	if c.node != nil {
		c.node.Move(x, y)
	}
	return c.Update()
}

func (c *Component) keyEvent() *rendering.Event {
	if c.window == nil {
		return nil
	}
	return c.window.KeyEvent()
}

func (c *Component) name() string {
	if c.hooks == nil {
		return "core.Component"
	}
	return fmt.Sprintf("%T", c.hooks)
}
