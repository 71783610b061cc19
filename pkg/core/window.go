package core

import (
	"github.com/go-drift/widgetkit/pkg/rendering"
)

// Window is the root component. It owns the surface, turns surface-wide
// pointer and key events into its own transitions and broadcasts a State to
// its observers after each of them.
type Window struct {
	Component

	surface    rendering.Surface
	background rendering.Node
	keyEvent   *rendering.Event
	pointer    *rendering.Event
	observers  registry[State]
}

var _ Hooks = (*Window)(nil)

// NewWindow attaches a window to surface. It paints a white, black-stroked
// background, creates the content group that widgets are added to, and
// starts in IdleUp.
func NewWindow(surface rendering.Surface) (*Window, error) {
	root := surface.Root()
	size := surface.Size()

	w := &Window{surface: surface}
	w.background = root.Rect(size.Width, size.Height)
	w.background.Fill(rendering.ColorWhite)
	w.background.Stroke(rendering.ColorBlack, 3)

	w.node = root.Group()
	w.window = w
	w.hooks = w
	w.SetRole(RoleWindow)
	w.registerEvent(root)
	w.SetState(IdleUp)
	return w, w.Update()
}

func (w *Window) registerEvent(root rendering.Node) {
	root.On(rendering.PointerDown, func(e *rendering.Event) {
		if !w.Selectable() {
			e.PreventDefault()
		}
		w.Dispatch(EventPress)
	})
	root.On(rendering.PointerUp, func(*rendering.Event) {
		w.Dispatch(EventRelease)
	})
	root.On(rendering.PointerMove, func(e *rendering.Event) {
		w.mu.Lock()
		w.pointer = e
		w.mu.Unlock()
		w.Dispatch(EventMove)
	})
	root.On(rendering.KeyUp, func(e *rendering.Event) {
		w.mu.Lock()
		w.keyEvent = e
		w.mu.Unlock()
		w.Dispatch(EventKeyup)
	})
}

// Surface returns the surface the window is attached to.
func (w *Window) Surface() rendering.Surface {
	return w.surface
}

// KeyEvent returns the last key release seen by the window, or nil.
func (w *Window) KeyEvent() *rendering.Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.keyEvent
}

// PointerEvent returns the last pointer move seen anywhere on the surface,
// or nil. Dragging widgets use it to follow the pointer outside their bounds.
func (w *Window) PointerEvent() *rendering.Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pointer
}

// AddObserver registers fn to receive broadcasts in registration order.
func (w *Window) AddObserver(fn func(State)) *Subscription {
	return w.observers.add(fn)
}

// RemoveObserver cancels a subscription returned by AddObserver.
func (w *Window) RemoveObserver(s *Subscription) {
	s.Cancel()
}

// ObserverCount returns the number of registered observers.
func (w *Window) ObserverCount() int {
	return w.observers.len()
}

func (w *Window) notify(s State) {
	debugf("window broadcast %s to %d observers", s, w.ObserverCount())
	w.observers.notify(s)
}

// IdleUpState broadcasts the window's state.
func (w *Window) IdleUpState() { w.notify(w.State()) }

// IdleDownState broadcasts the window's state.
func (w *Window) IdleDownState() { w.notify(w.State()) }

// MoveState broadcasts the window's state.
func (w *Window) MoveState() { w.notify(w.State()) }

// KeyupState broadcasts Keypress rather than the window's own state.
func (w *Window) KeyupState(*rendering.Event) { w.notify(Keypress) }

func (w *Window) PressedState()      {}
func (w *Window) PressReleaseState() {}
func (w *Window) HoverState()        {}
func (w *Window) HoverPressedState() {}
func (w *Window) PressedOutState()   {}
