package core

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/rendering"
)

func at(x, y float64) rendering.Offset {
	return rendering.Offset{X: x, Y: y}
}

func TestNewWindow(t *testing.T) {
	scene, win := newTestWindow(t)
	if win.State() != IdleUp {
		t.Errorf("state = %s, want idleup", win.State())
	}
	if win.Role() != RoleWindow {
		t.Errorf("role = %q", win.Role())
	}
	if v, _ := win.Node().Attr("role"); v != "window" {
		t.Errorf("role attr = %v", v)
	}
	if win.Surface() != scene {
		t.Error("surface not retained")
	}
	kids := scene.Root().Children()
	if len(kids) != 2 {
		t.Fatalf("root children = %d, want background and content", len(kids))
	}
	bg := kids[0]
	if bg.FillColor() != rendering.ColorWhite || bg.StrokeColor() != rendering.ColorBlack || bg.StrokeWidth() != 3 {
		t.Errorf("background = fill %s stroke %s/%v", bg.FillColor(), bg.StrokeColor(), bg.StrokeWidth())
	}
}

func TestWindow_PressReleaseBroadcast(t *testing.T) {
	scene, win := newTestWindow(t)
	var got []State
	win.AddObserver(func(s State) { got = append(got, s) })

	scene.PointerDown(at(150, 150))
	scene.PointerMove(at(160, 160))
	scene.PointerUp(at(160, 160))
	scene.PointerMove(at(170, 170))

	// The final move happens in IdleUp, which has no move entry.
	want := []State{IdleDown, IdleDown, IdleUp}
	if len(got) != len(want) {
		t.Fatalf("broadcasts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("broadcast %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWindow_PreventsDefaultWhenNotSelectable(t *testing.T) {
	scene, win := newTestWindow(t)
	var prevented []bool
	// Registered after the window's handler, so it sees the shared event last.
	scene.Root().On(rendering.PointerDown, func(e *rendering.Event) {
		prevented = append(prevented, e.DefaultPrevented())
	})

	scene.PointerDown(at(10, 10))
	scene.PointerUp(at(10, 10))
	win.SetSelectable(true)
	scene.PointerDown(at(10, 10))

	if len(prevented) != 2 || !prevented[0] || prevented[1] {
		t.Errorf("prevented = %v, want [true false]", prevented)
	}
}

func TestWindow_KeyupBroadcastsKeypress(t *testing.T) {
	scene, win := newTestWindow(t)
	var got []State
	win.AddObserver(func(s State) { got = append(got, s) })

	scene.KeyUp("x")

	if len(got) != 1 || got[0] != Keypress {
		t.Fatalf("broadcasts = %v, want [keypress]", got)
	}
	if win.State() != IdleUp {
		t.Errorf("window state = %s, want idleup", win.State())
	}
	if k := win.KeyEvent(); k == nil || k.Key != "x" {
		t.Errorf("key event = %+v", k)
	}
}

func TestWindow_ObserversOrderedAndRemovable(t *testing.T) {
	scene, win := newTestWindow(t)
	var log []string
	a := win.AddObserver(func(State) { log = append(log, "a") })
	win.AddObserver(func(State) { log = append(log, "b") })
	win.AddObserver(func(State) { log = append(log, "c") })

	scene.PointerDown(at(1, 1))
	win.RemoveObserver(a)
	scene.PointerUp(at(1, 1))

	if !equalCalls(log, []string{"a", "b", "c", "b", "c"}) {
		t.Errorf("log = %v", log)
	}
	if win.ObserverCount() != 2 {
		t.Errorf("observers = %d, want 2", win.ObserverCount())
	}
}

func TestWindow_ObserverRemovedDuringBroadcast(t *testing.T) {
	scene, win := newTestWindow(t)
	var log []string
	var b *Subscription
	win.AddObserver(func(State) {
		log = append(log, "a")
		b.Cancel()
	})
	b = win.AddObserver(func(State) { log = append(log, "b") })

	scene.PointerDown(at(1, 1))
	scene.PointerUp(at(1, 1))

	if !equalCalls(log, []string{"a", "b", "a"}) {
		t.Errorf("log = %v", log)
	}
}

func TestWindow_PointerEvent(t *testing.T) {
	scene, win := newTestWindow(t)
	if win.PointerEvent() != nil {
		t.Fatal("expected no pointer event yet")
	}
	scene.PointerMove(at(12, 34))
	if p := win.PointerEvent(); p == nil || p.Position != at(12, 34) {
		t.Errorf("pointer event = %+v", p)
	}
}

func TestWidgetInit_CapabilityErrors(t *testing.T) {
	_, win := newTestWindow(t)

	var w Widget
	err := w.Init(win, nil)
	var capErr *errors.CapabilityError
	if !stderrors.As(err, &capErr) || capErr.Missing != "hooks" {
		t.Errorf("nil hooks: err = %v", err)
	}

	r := &recorder{}
	err = r.Init(nil, r)
	if !stderrors.As(err, &capErr) || capErr.Missing != "window" || capErr.Widget != "*core.recorder" {
		t.Errorf("nil window: err = %v", err)
	}
}

func TestWidgetInit_Wiring(t *testing.T) {
	_, win := newTestWindow(t)
	r := newRecorder(t, win, 0, 0)
	if r.Window() != win {
		t.Error("window not recorded")
	}
	if r.Parent() != &win.Component {
		t.Error("parent should be the window component")
	}
	if !r.Selectable() {
		t.Error("widgets start selectable")
	}
	if r.Node().Parent() != win.Node() {
		t.Error("widget group should live in the window content")
	}
	if win.ObserverCount() != 1 {
		t.Errorf("observers = %d, want 1", win.ObserverCount())
	}
	r.Destroy()
	if win.ObserverCount() != 0 {
		t.Errorf("observers after destroy = %d", win.ObserverCount())
	}
	if len(win.Node().Children()) != 0 {
		t.Error("widget node not removed")
	}
}

func TestWidget_BackColorUpdates(t *testing.T) {
	_, win := newTestWindow(t)
	r := newRecorder(t, win, 0, 0)
	r.painted = 0
	if err := r.SetBackColor(rendering.ColorSilver); err != nil {
		t.Fatal(err)
	}
	if r.BackColor() != rendering.ColorSilver || r.painted != 1 {
		t.Errorf("back color = %s painted = %d", r.BackColor(), r.painted)
	}
	r.SetForeColor(rendering.ColorBlack)
	if r.ForeColor() != rendering.ColorBlack {
		t.Errorf("fore color = %s", r.ForeColor())
	}
}

func TestWidget_RecoversFromReleaseOutside(t *testing.T) {
	_, win := newTestWindow(t)
	r := newRecorder(t, win, 0, 0)
	r.SetState(PressedOut)

	win.IdleUpState()

	if r.State() != IdleUp {
		t.Errorf("state = %s, want idleup", r.State())
	}
	if len(r.calls) != 0 {
		t.Errorf("recovery should not call hooks, got %v", r.calls)
	}
}

func TestWidget_BroadcastPolicy(t *testing.T) {
	tests := []struct {
		name      string
		own       State
		broadcast State
		wantState State
		wantCalls []string
	}{
		{"idleup leaves hover alone", Hover, IdleUp, Hover, nil},
		{"idledown informs", Hover, IdleDown, Hover, []string{"idledown"}},
		{"idledown informs idleup", IdleUp, IdleDown, IdleUp, []string{"idledown"}},
		{"keypress", IdleUp, Keypress, IdleUp, []string{"keyup"}},
		{"drag refresh on idledown", DragWindow, IdleDown, DragWindow, []string{"idledown", "move"}},
		{"drag refresh on any", DragWindow, Hover, DragWindow, []string{"move"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, win := newTestWindow(t)
			r := newRecorder(t, win, 0, 0)
			r.SetState(tt.own)

			win.notify(tt.broadcast)

			if r.State() != tt.wantState {
				t.Errorf("state = %s, want %s", r.State(), tt.wantState)
			}
			if !equalCalls(r.calls, tt.wantCalls) {
				t.Errorf("calls = %v, want %v", r.calls, tt.wantCalls)
			}
		})
	}
}

func TestWidget_NonDraggableNeverDrags(t *testing.T) {
	scene, win := newTestWindow(t)
	r := newRecorder(t, win, 10, 10)

	scene.PointerMove(at(20, 20))
	scene.PointerDown(at(20, 20))
	for i := 0; i < 5; i++ {
		scene.PointerMove(at(21+float64(i), 20))
		if r.State() == DragWindow {
			t.Fatal("non-draggable widget entered dragwindow")
		}
	}
	if r.State() != Pressed {
		t.Errorf("state = %s, want pressed", r.State())
	}
}

// Scenario: press and release while IdleUp (pointer never entered).
func TestScenario_IdlePressReleaseNoClick(t *testing.T) {
	_, win := newTestWindow(t)
	r := newRecorder(t, win, 0, 0)
	clicks := 0
	r.Attach(func(EventArgs) { clicks++ })

	r.Dispatch(EventPress)
	if r.State() != IdleDown {
		t.Fatalf("after press = %s, want idledown", r.State())
	}
	r.Dispatch(EventRelease)
	if r.State() != IdleUp {
		t.Fatalf("after release = %s, want idleup", r.State())
	}
	if r.Previous() != IdleDown {
		t.Errorf("previous = %s, want idledown", r.Previous())
	}
	if clicks != 0 || r.clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
	for _, c := range r.calls {
		if c == "pressrelease" {
			t.Error("pressrelease hook should not run")
		}
	}
}

// Scenario: press and release over the widget raises exactly one click.
func TestScenario_HoverPressReleaseClicksOnce(t *testing.T) {
	scene, win := newTestWindow(t)
	r := newRecorder(t, win, 10, 10)
	var args []EventArgs
	r.Attach(func(a EventArgs) { args = append(args, a) })

	scene.PointerMove(at(20, 20))
	if r.State() != Hover {
		t.Fatalf("after enter = %s, want hover", r.State())
	}
	scene.PointerDown(at(20, 20))
	if r.State() != Pressed {
		t.Fatalf("after press = %s, want pressed", r.State())
	}
	scene.PointerUp(at(20, 20))
	if r.State() != Hover {
		t.Fatalf("after release = %s, want hover", r.State())
	}
	if len(args) != 1 {
		t.Fatalf("clicks = %d, want 1", len(args))
	}
	if args[0].Obj() != &r.Component {
		t.Error("event args should carry the raising component")
	}
	// The window saw the same press and release.
	if win.State() != IdleUp || win.Previous() != IdleDown {
		t.Errorf("window = %s (prev %s)", win.State(), win.Previous())
	}
}

// Scenario: a draggable widget drags, leaves and is released.
func TestScenario_DragLeaveRelease(t *testing.T) {
	t.Run("release while dragging", func(t *testing.T) {
		scene, win := newTestWindow(t)
		r := newRecorder(t, win, 10, 10)
		r.Draggable = true

		scene.PointerMove(at(20, 20))
		scene.PointerDown(at(20, 20))
		scene.PointerMove(at(25, 25))
		if r.State() != DragWindow {
			t.Fatalf("after move = %s, want dragwindow", r.State())
		}
		scene.PointerUp(at(25, 25))
		if r.State() != Hover {
			t.Errorf("after release = %s, want hover", r.State())
		}
	})

	t.Run("leave then release outside", func(t *testing.T) {
		scene, win := newTestWindow(t)
		r := newRecorder(t, win, 10, 10)
		r.Draggable = true

		scene.PointerMove(at(20, 20))
		scene.PointerDown(at(20, 20))
		scene.PointerMove(at(25, 25))
		r.reset()

		scene.PointerMove(at(150, 150))
		if r.State() != PressedOut {
			t.Fatalf("after leave = %s, want pressedout", r.State())
		}
		if r.calls[0] != "pressedout" {
			t.Errorf("calls = %v", r.calls)
		}

		scene.PointerUp(at(150, 150))
		if r.State() != IdleUp {
			t.Errorf("after release outside = %s, want idleup", r.State())
		}
	})

	t.Run("leave then release via table", func(t *testing.T) {
		_, win := newTestWindow(t)
		r := newRecorder(t, win, 0, 0)
		r.Draggable = true
		r.SetState(Pressed)

		r.Dispatch(EventMove)
		r.Dispatch(EventLeave)
		r.Dispatch(EventRelease)
		if r.State() != IdleUp {
			t.Errorf("state = %s, want idleup", r.State())
		}
	})
}

// Scenario: a key release reaches every widget with the recorded event.
func TestScenario_KeyupReachesAllWidgets(t *testing.T) {
	scene, win := newTestWindow(t)
	a := newRecorder(t, win, 0, 0)
	b := newRecorder(t, win, 100, 100)
	b.SetState(Hover)

	scene.KeyUp("Enter")

	for name, r := range map[string]*recorder{"a": a, "b": b} {
		if len(r.keys) != 1 {
			t.Fatalf("%s: keyup calls = %d, want 1", name, len(r.keys))
		}
		if r.keys[0] != win.KeyEvent() || r.keys[0].Key != "Enter" {
			t.Errorf("%s: key event = %+v", name, r.keys[0])
		}
	}
	if a.State() != IdleUp || b.State() != Hover {
		t.Errorf("states changed: %s %s", a.State(), b.State())
	}
}

func TestScenario_EnterWhileWindowPressed(t *testing.T) {
	scene, win := newTestWindow(t)
	r := newRecorder(t, win, 10, 10)

	scene.PointerDown(at(150, 150))
	scene.PointerMove(at(20, 20))
	if r.State() != HoverPressed {
		t.Fatalf("state = %s, want hoverpressed", r.State())
	}
	scene.PointerUp(at(20, 20))
	if r.State() != Hover {
		t.Errorf("state = %s, want hover", r.State())
	}
	if r.clicks != 0 {
		t.Error("release after entering pressed should not click")
	}
}
