package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/rendering"
	"github.com/go-drift/widgetkit/pkg/theme"
)

// ProgressBar shows a value between 0 and 100 as a filled bar with a
// percentage label. Releasing "+" or ArrowRight while the pointer is over
// the bar increments it.
type ProgressBar struct {
	core.Widget

	value     float64
	increment float64
	palette   theme.ProgressBarThemeData
	focus     pointerFocus

	track rendering.Node
	bar   rendering.Node
	text  rendering.Node
}

var (
	_ core.Hooks   = (*ProgressBar)(nil)
	_ core.Painter = (*ProgressBar)(nil)
)

// NewProgressBar creates an empty progress bar.
func NewProgressBar(win *core.Window) (*ProgressBar, error) {
	th := theme.Current().ProgressBar
	p := &ProgressBar{palette: th, increment: th.Increment}
	p.Width = th.Width
	p.Height = th.Height
	if err := p.Init(win, p); err != nil {
		return nil, err
	}
	p.SetRole(core.RoleProgressbar)

	g := p.Node()
	p.track = g.Rect(p.Width, p.Height)
	p.track.SetRadius(5)
	p.track.Fill(th.TrackColor)
	p.bar = g.Rect(0, p.Height)
	p.bar.SetRadius(5)
	p.bar.Fill(th.BarColor)
	p.text = g.Text("")
	p.text.SetFontSize(th.FontSize)
	p.text.Fill(th.LabelColor)
	p.RegisterEvent(g)
	p.focus.track(g)

	p.SetState(core.IdleUp)
	if err := p.Update(); err != nil {
		return nil, err
	}
	return p, nil
}

// Paint sizes the bar for the value and centers the label.
func (p *ProgressBar) Paint() {
	p.track.Resize(p.Width, p.Height)
	p.bar.Resize(p.value/100*p.Width, p.Height)
	p.text.SetText(fmt.Sprintf("%d%%", int(math.Round(p.value))))
	centerText(p.text, p.Width, p.Height, -1)
	p.Node().SetAttr("value", p.value)
}

// Value returns the current value.
func (p *ProgressBar) Value() float64 {
	return p.value
}

// SetValue sets the value, clamped to [0, 100], without notifying
// listeners.
func (p *ProgressBar) SetValue(v float64) error {
	p.value = rendering.Clamp(v, 0, 100)
	return p.Update()
}

// Increment returns the step used for key presses.
func (p *ProgressBar) Increment() float64 {
	return p.increment
}

// SetIncrement changes the step used for key presses.
func (p *ProgressBar) SetIncrement(step float64) {
	p.increment = step
}

// SetWidth changes the bar length.
func (p *ProgressBar) SetWidth(w float64) error {
	p.Width = w
	return p.Update()
}

// IncrementBy adds delta to the value. Listeners registered with
// OnIncrement are notified only when the clamped value changes.
func (p *ProgressBar) IncrementBy(delta float64) error {
	old := p.value
	if err := p.SetValue(p.value + delta); err != nil {
		return err
	}
	if p.value != old {
		p.Raise(core.NewEventArgs(&p.Component, p.RawEvent(), p.value))
	}
	return nil
}

// OnIncrement registers fn to receive the new value after IncrementBy
// changes it.
func (p *ProgressBar) OnIncrement(fn func(value float64)) *core.Subscription {
	return p.Attach(func(args core.EventArgs) {
		if v, ok := args.ItemRef().(float64); ok {
			fn(v)
		}
	})
}

// OnStateChange registers fn to receive the bar's state whenever it enters
// IdleUp, Pressed, Hover or HoverPressed, or the pointer moves over it
// while pressed elsewhere.
func (p *ProgressBar) OnStateChange(fn func(state core.State)) *core.Subscription {
	return p.Attach(func(args core.EventArgs) {
		if s, ok := args.ItemRef().(core.State); ok {
			fn(s)
		}
	})
}

func (p *ProgressBar) stateChanged() {
	p.Raise(core.NewEventArgs(&p.Component, p.RawEvent(), p.State()))
}

func (p *ProgressBar) IdleUpState() {
	p.track.Fill(p.palette.TrackColor)
	p.track.Stroke(p.palette.TrackColor, 0)
	p.stateChanged()
}

func (p *ProgressBar) IdleDownState() {}

func (p *ProgressBar) PressedState() { p.stateChanged() }

func (p *ProgressBar) PressReleaseState() {}

func (p *ProgressBar) HoverState() { p.stateChanged() }

func (p *ProgressBar) HoverPressedState() {
	p.track.Stroke(p.palette.HoverPressedColor, 2)
	p.stateChanged()
}

func (p *ProgressBar) PressedOutState() {}

func (p *ProgressBar) MoveState() {
	p.track.Fill(p.palette.MoveColor)
	p.stateChanged()
}

func (p *ProgressBar) KeyupState(key *rendering.Event) {
	if !p.focus.focused() {
		return
	}
	switch keyName(key) {
	case "+", "ArrowRight":
		reportRender("widgets.ProgressBar.KeyupState", p.IncrementBy(p.increment))
	}
}
