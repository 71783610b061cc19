package core

import (
	"fmt"

	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/rendering"
)

// Widget is a Component contained in a Window. Embed it in a concrete
// widget and call Init from the constructor.
type Widget struct {
	Component

	Width  float64
	Height float64

	foreColor    rendering.Color
	backColor    rendering.Color
	rawEvent     *rendering.Event
	subscription *Subscription
}

// Init binds the widget to win. self is the concrete widget, whose hooks the
// state machine will call. Init creates the widget's outer group in the
// window's content, marks it selectable and subscribes to the window's
// broadcast.
func (w *Widget) Init(win *Window, self Hooks) error {
	if self == nil {
		return &errors.CapabilityError{Widget: "core.Widget", Missing: "hooks"}
	}
	if win == nil {
		return &errors.CapabilityError{Widget: fmt.Sprintf("%T", self), Missing: "window"}
	}
	w.hooks = self
	w.window = win
	w.parent = &win.Component
	w.node = win.Node().Group()
	w.SetSelectable(true)
	w.subscription = win.AddObserver(w.onBroadcast)
	return nil
}

func (w *Widget) onBroadcast(s State) {
	// Released outside the widget after leaving it while pressed.
	if s == IdleUp && w.State() == PressedOut {
		w.SetState(IdleUp)
	}
	if s == IdleDown {
		w.hooks.IdleDownState()
	}
	if s == Keypress {
		w.hooks.KeyupState(w.window.KeyEvent())
	}
	if w.State() == DragWindow {
		w.hooks.MoveState()
	}
}

// RegisterEvent routes the backend pointer events of node into the widget's
// transitions. Widgets call it for their outer group or for an inner part,
// such as a scrollbar thumb.
func (w *Widget) RegisterEvent(node rendering.Node) {
	node.On(rendering.PointerUp, func(*rendering.Event) {
		w.Dispatch(EventRelease)
	})
	node.On(rendering.PointerDown, func(e *rendering.Event) {
		if !w.Selectable() {
			e.PreventDefault()
		}
		w.Dispatch(EventPress)
	})
	node.On(rendering.PointerEnter, func(*rendering.Event) {
		w.Dispatch(EventEnter)
	})
	node.On(rendering.PointerLeave, func(*rendering.Event) {
		w.Dispatch(EventLeave)
	})
	node.On(rendering.PointerMove, func(e *rendering.Event) {
		w.mu.Lock()
		w.rawEvent = e
		w.mu.Unlock()
		w.Dispatch(EventMove)
	})
}

// Window returns the window the widget belongs to.
func (w *Widget) Window() *Window {
	return w.window
}

// RawEvent returns the last pointer move delivered to the widget's own
// nodes, or nil.
func (w *Widget) RawEvent() *rendering.Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rawEvent
}

func (w *Widget) ForeColor() rendering.Color { return w.foreColor }

func (w *Widget) SetForeColor(c rendering.Color) { w.foreColor = c }

func (w *Widget) BackColor() rendering.Color { return w.backColor }

// SetBackColor stores the color and repaints.
func (w *Widget) SetBackColor(c rendering.Color) error {
	w.backColor = c
	return w.Update()
}

// Destroy unsubscribes from the window and removes the widget's node.
func (w *Widget) Destroy() {
	w.subscription.Cancel()
	w.subscription = nil
	if w.node != nil {
		w.node.Remove()
	}
}
