package core

import (
	"testing"

	"github.com/go-drift/widgetkit/pkg/rendering"
)

// recorder is a widget that logs every hook call.
type recorder struct {
	Widget
	calls   []string
	keys    []*rendering.Event
	clicks  int
	painted int
}

var _ Hooks = (*recorder)(nil)

func (r *recorder) IdleUpState()       { r.calls = append(r.calls, "idleup") }
func (r *recorder) IdleDownState()     { r.calls = append(r.calls, "idledown") }
func (r *recorder) PressedState()      { r.calls = append(r.calls, "pressed") }
func (r *recorder) HoverState()        { r.calls = append(r.calls, "hover") }
func (r *recorder) HoverPressedState() { r.calls = append(r.calls, "hoverpressed") }
func (r *recorder) PressedOutState()   { r.calls = append(r.calls, "pressedout") }
func (r *recorder) MoveState()         { r.calls = append(r.calls, "move") }

func (r *recorder) PressReleaseState() {
	r.calls = append(r.calls, "pressrelease")
	if r.Previous() == Pressed {
		r.clicks++
		r.Raise(NewEventArgs(&r.Component, nil, nil))
	}
}

func (r *recorder) KeyupState(key *rendering.Event) {
	r.calls = append(r.calls, "keyup")
	r.keys = append(r.keys, key)
}

func (r *recorder) Paint() { r.painted++ }

func (r *recorder) reset() { r.calls = nil }

// newTestWindow creates a 200x200 scene with a window on it.
func newTestWindow(t *testing.T) (*rendering.Scene, *Window) {
	t.Helper()
	scene := rendering.NewScene(200, 200)
	win, err := NewWindow(scene)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	return scene, win
}

// newRecorder adds a 50x50 recorder at (x, y).
func newRecorder(t *testing.T, win *Window, x, y float64) *recorder {
	t.Helper()
	r := &recorder{}
	if err := r.Init(win, r); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r.SetRole(RoleButton)
	r.Node().Rect(50, 50)
	r.RegisterEvent(r.Node())
	r.SetState(IdleUp)
	if err := r.Move(x, y); err != nil {
		t.Fatalf("Move: %v", err)
	}
	r.reset()
	return r
}

func equalCalls(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
