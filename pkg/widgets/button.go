package widgets

import (
	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/rendering"
	"github.com/go-drift/widgetkit/pkg/theme"
)

// DefaultButtonLabel is the label of a new Button.
const DefaultButtonLabel = "Click me!"

// Button is a clickable labelled rectangle.
//
// Its colors follow the state machine: every state hook applies the matching
// palette from [theme.ButtonThemeData]. A click is a release that directly
// follows a press on the button; listeners registered with OnClick receive
// it.
//
//	b, err := widgets.NewButton(win)
//	if err != nil {
//	    return err
//	}
//	b.OnClick(func(core.EventArgs) { fmt.Println("clicked") })
//	b.Move(10, 50)
type Button struct {
	core.Widget

	label    string
	fontSize float64
	palette  theme.ButtonThemeData

	rect  rendering.Node
	text  rendering.Node
	event rendering.Node
}

var (
	_ core.Hooks   = (*Button)(nil)
	_ core.Painter = (*Button)(nil)
)

// NewButton creates a button in win, styled with the current theme.
func NewButton(win *core.Window) (*Button, error) {
	th := theme.Current().Button
	b := &Button{
		label:    DefaultButtonLabel,
		fontSize: th.FontSize,
		palette:  th,
	}
	b.Width = th.Width
	b.Height = th.Height
	if err := b.Init(win, b); err != nil {
		return nil, err
	}
	b.SetRole(core.RoleButton)
	b.SetSelectable(false)

	g := b.Node()
	b.rect = g.Rect(b.Width, b.Height)
	b.rect.Stroke(th.BorderColor, 1)
	b.text = g.Text(b.label)
	// Transparent cover so the label never splits the hit area.
	b.event = g.Rect(b.Width, b.Height)
	b.event.SetOpacity(0)
	b.RegisterEvent(b.event)

	b.SetState(core.IdleUp)
	b.SetForeColor(th.IdleUp.Text)
	if err := b.SetBackColor(th.IdleUp.Fill); err != nil {
		return nil, err
	}
	return b, nil
}

// Paint lays out and colors the rectangle and label.
func (b *Button) Paint() {
	b.rect.Resize(b.Width, b.Height)
	b.event.Resize(b.Width, b.Height)
	b.rect.Fill(b.BackColor())
	b.text.SetFontSize(b.fontSize)
	b.text.SetText(b.label)
	b.text.Fill(b.ForeColor())
	centerText(b.text, b.Width, b.Height, 4)
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// SetLabel changes the button text.
func (b *Button) SetLabel(label string) error {
	b.label = label
	return b.Update()
}

// FontSize returns the label font size.
func (b *Button) FontSize() float64 {
	return b.fontSize
}

// SetFontSize changes the label font size.
func (b *Button) SetFontSize(size float64) error {
	b.fontSize = size
	return b.Update()
}

// Size returns the button dimensions.
func (b *Button) Size() rendering.Size {
	return rendering.Size{Width: b.Width, Height: b.Height}
}

// SetSize resizes the button.
func (b *Button) SetSize(width, height float64) error {
	b.Width = width
	b.Height = height
	return b.Update()
}

// OnClick registers fn to run after every click. The event arguments carry
// the button's component and the last pointer move seen by the button.
func (b *Button) OnClick(fn func(core.EventArgs)) *core.Subscription {
	return b.Attach(fn)
}

func (b *Button) apply(p theme.StatePalette) {
	b.SetForeColor(p.Text)
	reportRender("widgets.Button.apply", b.SetBackColor(p.Fill))
}

func (b *Button) IdleUpState() { b.apply(b.palette.IdleUp) }

func (b *Button) IdleDownState() { b.apply(b.palette.IdleDown) }

func (b *Button) PressedState() { b.apply(b.palette.Pressed) }

// PressReleaseState raises a click when the release ends a press that
// started on the button.
func (b *Button) PressReleaseState() {
	b.apply(b.palette.Hover)
	if b.Previous() == core.Pressed {
		b.Raise(core.NewEventArgs(&b.Component, b.RawEvent(), nil))
	}
}

func (b *Button) HoverState() { b.apply(b.palette.Hover) }

func (b *Button) HoverPressedState() { b.apply(b.palette.HoverPressed) }

func (b *Button) PressedOutState() { b.apply(b.palette.PressedOut) }

func (b *Button) MoveState() { b.apply(b.palette.Move) }

func (b *Button) KeyupState(*rendering.Event) { b.apply(b.palette.Keyup) }
