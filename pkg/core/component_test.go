package core

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/rendering"
)

func TestSetState_PreviousTracksLastState(t *testing.T) {
	var c Component
	if c.State() != StateNone || c.Previous() != StateNone {
		t.Fatalf("zero component = %s/%s", c.State(), c.Previous())
	}
	seq := []State{IdleUp, Hover, Hover, Pressed, DragWindow, PressedOut, IdleUp}
	for _, next := range seq {
		before := c.State()
		c.SetState(next)
		if c.Previous() != before {
			t.Errorf("after SetState(%s): previous = %s, want %s", next, c.Previous(), before)
		}
		if c.State() != next {
			t.Errorf("state = %s, want %s", c.State(), next)
		}
	}
}

func TestRaise_SnapshotIsolation(t *testing.T) {
	var c Component
	var log []string
	var late *Subscription

	var second *Subscription
	c.Attach(func(EventArgs) {
		log = append(log, "first")
		second.Cancel()
		late = c.Attach(func(EventArgs) { log = append(log, "late") })
	})
	second = c.Attach(func(EventArgs) { log = append(log, "second") })

	c.Raise(NewEventArgs(&c, nil, nil))
	if !equalCalls(log, []string{"first", "second"}) {
		t.Errorf("first raise = %v, want [first second]", log)
	}

	log = nil
	late.Cancel()
	c.Raise(NewEventArgs(&c, nil, nil))
	if !equalCalls(log, []string{"first"}) {
		t.Errorf("second raise = %v, want [first]", log)
	}
}

func TestAttach_AllowsDuplicates(t *testing.T) {
	var c Component
	n := 0
	fn := func(EventArgs) { n++ }
	c.Attach(fn)
	c.Attach(fn)
	c.Raise(NewEventArgs(&c, nil, nil))
	if n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
	if c.ListenerCount() != 2 {
		t.Errorf("listeners = %d, want 2", c.ListenerCount())
	}
}

func TestSubscription_CancelIdempotent(t *testing.T) {
	var c Component
	s := c.Attach(func(EventArgs) {})
	c.Attach(func(EventArgs) {})
	s.Cancel()
	s.Cancel()
	if c.ListenerCount() != 1 {
		t.Errorf("listeners = %d, want 1", c.ListenerCount())
	}
	var nilSub *Subscription
	nilSub.Cancel()
}

func TestEventArgs(t *testing.T) {
	var c Component
	ev := &rendering.Event{Type: rendering.PointerUp}
	args := NewEventArgs(&c, ev, 3)
	if args.Obj() != &c || args.Event() != ev || args.ItemRef() != 3 {
		t.Errorf("unexpected args %+v", args)
	}
	empty := NewEventArgs(&c, nil, nil)
	if empty.Event() != nil || empty.ItemRef() != nil {
		t.Error("unset fields should be nil")
	}
}

func TestUpdate_RequiresRole(t *testing.T) {
	_, win := newTestWindow(t)
	r := &recorder{}
	if err := r.Init(win, r); err != nil {
		t.Fatal(err)
	}
	node := r.Node()

	err := r.Update()
	if err == nil {
		t.Fatal("expected accessibility error")
	}
	var accErr *errors.AccessibilityError
	if !stderrors.As(err, &accErr) {
		t.Fatalf("error type = %T", err)
	}
	if !stderrors.Is(err, errors.ErrNoRole) {
		t.Error("error should match ErrNoRole")
	}
	if accErr.Component != "*core.recorder" {
		t.Errorf("component = %q", accErr.Component)
	}
	if r.painted != 0 {
		t.Error("paint ran without a role")
	}
	if _, ok := node.Attr("role"); ok {
		t.Error("role attribute set without a role")
	}
	if _, ok := node.Attr("tabindex"); ok {
		t.Error("tabindex attribute set without a role")
	}
}

func TestUpdate_PublishesAttributes(t *testing.T) {
	_, win := newTestWindow(t)
	r := newRecorder(t, win, 0, 0)
	r.TabIndex = 4
	r.painted = 0
	if err := r.Update(); err != nil {
		t.Fatal(err)
	}
	if r.painted != 1 {
		t.Errorf("painted = %d, want 1", r.painted)
	}
	if v, _ := r.Node().Attr("role"); v != "button" {
		t.Errorf("role attr = %v", v)
	}
	if v, _ := r.Node().Attr("tabindex"); v != 4 {
		t.Errorf("tabindex attr = %v", v)
	}
}

func TestUpdate_RoleNoneIsValid(t *testing.T) {
	_, win := newTestWindow(t)
	r := newRecorder(t, win, 0, 0)
	r.SetRole(RoleNone)
	if err := r.Update(); err != nil {
		t.Errorf("RoleNone should be accepted: %v", err)
	}
}

func TestMove_PositionsAndUpdates(t *testing.T) {
	_, win := newTestWindow(t)
	r := newRecorder(t, win, 0, 0)
	if err := r.Move(30, 40); err != nil {
		t.Fatal(err)
	}
	if p := r.Node().Position(); p.X != 30 || p.Y != 40 {
		t.Errorf("position = %v", p)
	}
	var c Component
	if err := c.Move(1, 1); err == nil {
		t.Error("move without role should fail")
	}
}
