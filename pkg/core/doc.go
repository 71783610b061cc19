// Package core provides the interaction core shared by every widget: a
// per-component state machine, the accessibility contract and the Window
// broadcast that keeps widgets consistent when the pointer acts outside them.
//
// # Components and States
//
// A Component holds exactly one current State and remembers the previous
// one. Backend pointer and key events are turned into an EventKind and fed to
// Dispatch, which looks up the (State, EventKind) pair in a fixed transition
// table. A table entry may move the component to a new State and then call one
// of the nine Hooks on the concrete widget:
//
//	IdleUp --press--> IdleDown --release--> IdleUp
//	IdleUp --enter--> Hover --press--> Pressed --release--> Hover (PressReleaseState)
//
// Pairs that are not in the table are no-ops.
//
// # Window and Widgets
//
// Window is the root Component. It receives every pointer event that lands
// on its surface and every key release, and after its own transition it
// broadcasts a State to its observers. Each Widget registers one observer at
// Init and uses the broadcast to recover from a release outside its bounds,
// to react to presses elsewhere, to keys, and to keep dragging while the
// pointer is outside it.
//
// A concrete widget embeds Widget, implements Hooks, and calls Init with
// itself:
//
//	type Button struct {
//	    core.Widget
//	}
//
//	func NewButton(win *core.Window) (*Button, error) {
//	    b := &Button{}
//	    if err := b.Init(win, b); err != nil {
//	        return nil, err
//	    }
//	    b.SetRole(core.RoleButton)
//	    b.RegisterEvent(b.Node())
//	    b.SetState(core.IdleUp)
//	    return b, b.Update()
//	}
//
// # Accessibility
//
// Update refuses to run until a Role has been assigned and returns an
// *errors.AccessibilityError without touching the backend. With a role it
// runs the widget's Painter, if any, and publishes the "role" and "tabindex"
// attributes on the component's node.
//
// # Threading
//
// The model is single threaded: drive all events from one goroutine. The
// state pair and the listener and observer registries are still guarded by
// mutexes, and registries are copied before notification, so attaching or
// cancelling from inside a callback is safe.
package core
