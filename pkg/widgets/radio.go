package widgets

import (
	"fmt"

	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/rendering"
	"github.com/go-drift/widgetkit/pkg/theme"
)

const (
	radioWidth   = 150
	radioHeight  = 30
	radioCircleY = 7
	radioDot     = 8
	radioLabelX  = 24
)

// RadioButton is one option of a RadioGroup. It shows a circle that fills
// and gains a dot when checked. A click on an unchecked button notifies
// OnSelect listeners with the button's index; the group decides what is
// checked.
type RadioButton struct {
	core.Widget

	label   string
	index   int
	checked bool
	palette theme.RadioThemeData

	circle rendering.Node
	dot    rendering.Node
	text   rendering.Node
}

var (
	_ core.Hooks   = (*RadioButton)(nil)
	_ core.Painter = (*RadioButton)(nil)
)

// NewRadioButton creates an unchecked radio button.
func NewRadioButton(win *core.Window, label string, index int) (*RadioButton, error) {
	th := theme.Current().Radio
	r := &RadioButton{label: label, index: index, palette: th}
	r.Width = radioWidth
	r.Height = radioHeight
	if err := r.Init(win, r); err != nil {
		return nil, err
	}
	r.SetRole(core.RoleRadio)

	g := r.Node()
	r.circle = g.Circle(th.Size)
	r.circle.Move(0, radioCircleY)
	r.circle.Stroke(th.BorderColor, 2)
	r.dot = g.Circle(radioDot)
	r.dot.Move((th.Size-radioDot)/2, radioCircleY+(th.Size-radioDot)/2)
	r.dot.Fill(th.DotColor)
	r.text = g.Text(label)
	r.RegisterEvent(g)

	r.SetState(core.IdleUp)
	if err := r.Update(); err != nil {
		return nil, err
	}
	return r, nil
}

// Paint draws the circle, dot and label for the checked value.
func (r *RadioButton) Paint() {
	th := r.palette
	if r.checked {
		r.circle.Fill(th.ActiveColor)
		r.dot.Show()
	} else {
		r.circle.Fill(th.InactiveColor)
		r.dot.Hide()
	}
	r.text.SetFontSize(th.FontSize)
	r.text.SetText(r.label)
	r.text.Fill(th.LabelColor)
	r.text.Move(radioLabelX, (r.Height-r.text.Size().Height)/2)
	r.Node().SetAttr("checked", r.checked)
}

// Index returns the position of the button in its group.
func (r *RadioButton) Index() int {
	return r.index
}

// Label returns the button text.
func (r *RadioButton) Label() string {
	return r.label
}

// SetLabel changes the button text.
func (r *RadioButton) SetLabel(label string) error {
	r.label = label
	return r.Update()
}

// Checked reports whether the button is the selected one.
func (r *RadioButton) Checked() bool {
	return r.checked
}

// SetChecked sets the checked value without notifying listeners.
func (r *RadioButton) SetChecked(v bool) error {
	r.checked = v
	return r.Update()
}

// OnSelect registers fn to receive the button's index when it is clicked.
func (r *RadioButton) OnSelect(fn func(index int)) *core.Subscription {
	return r.Attach(func(args core.EventArgs) {
		if i, ok := args.ItemRef().(int); ok {
			fn(i)
		}
	})
}

func (r *RadioButton) fill(c rendering.Color) {
	if !r.checked {
		r.circle.Fill(c)
	}
}

func (r *RadioButton) IdleUpState() { r.fill(r.palette.InactiveColor) }

func (r *RadioButton) IdleDownState() {}

func (r *RadioButton) PressedState() { r.fill(r.palette.ActiveColor) }

func (r *RadioButton) PressReleaseState() {
	if r.Previous() == core.Pressed {
		r.Raise(core.NewEventArgs(&r.Component, r.RawEvent(), r.index))
	}
}

func (r *RadioButton) HoverState() { r.fill(r.palette.HoverColor) }

func (r *RadioButton) HoverPressedState() {}

func (r *RadioButton) PressedOutState() { r.fill(r.palette.InactiveColor) }

func (r *RadioButton) MoveState() {}

func (r *RadioButton) KeyupState(*rendering.Event) {}

// RadioGroup lays out radio buttons vertically and keeps exactly one of them
// checked once a selection has been made.
type RadioGroup struct {
	core.Widget

	buttons  []*RadioButton
	subs     []*core.Subscription
	selected int
	spacing  float64
}

var _ core.Hooks = (*RadioGroup)(nil)

// NewRadioGroup creates one radio button per label. Nothing is selected
// until the user clicks a button or SetSelectedIndex is called.
func NewRadioGroup(win *core.Window, labels []string) (*RadioGroup, error) {
	th := theme.Current().Radio
	g := &RadioGroup{selected: -1, spacing: th.Spacing}
	if err := g.Init(win, g); err != nil {
		return nil, err
	}
	g.SetRole(core.RoleGroup)
	g.Width = radioWidth
	g.Height = float64(len(labels)) * g.spacing

	for i, label := range labels {
		b, err := NewRadioButton(win, label, i)
		if err != nil {
			return nil, err
		}
		g.buttons = append(g.buttons, b)
		g.subs = append(g.subs, b.OnSelect(g.selectIndex))
	}
	if err := g.Move(0, 0); err != nil {
		return nil, err
	}
	return g, nil
}

// Move places the group at (x, y) and stacks its buttons below it.
func (g *RadioGroup) Move(x, y float64) error {
	if err := g.Widget.Move(x, y); err != nil {
		return err
	}
	for i, b := range g.buttons {
		if err := b.Move(x, y+float64(i)*g.spacing); err != nil {
			return err
		}
	}
	return nil
}

// Buttons returns the group's radio buttons in order.
func (g *RadioGroup) Buttons() []*RadioButton {
	return g.buttons
}

// SelectedIndex returns the index of the checked button, or -1.
func (g *RadioGroup) SelectedIndex() int {
	return g.selected
}

// SetSelectedIndex checks button i and notifies OnChange listeners.
func (g *RadioGroup) SetSelectedIndex(i int) error {
	if i < 0 || i >= len(g.buttons) {
		return fmt.Errorf("widgets: radio index %d out of range [0, %d)", i, len(g.buttons))
	}
	g.selectIndex(i)
	return nil
}

// SetLabel changes the label of button i.
func (g *RadioGroup) SetLabel(i int, label string) error {
	if i < 0 || i >= len(g.buttons) {
		return fmt.Errorf("widgets: radio index %d out of range [0, %d)", i, len(g.buttons))
	}
	return g.buttons[i].SetLabel(label)
}

// OnChange registers fn to receive the selected index after every
// selection.
func (g *RadioGroup) OnChange(fn func(index int)) *core.Subscription {
	return g.Attach(func(args core.EventArgs) {
		if i, ok := args.ItemRef().(int); ok {
			fn(i)
		}
	})
}

func (g *RadioGroup) selectIndex(i int) {
	for j, b := range g.buttons {
		reportRender("widgets.RadioGroup.select", b.SetChecked(j == i))
	}
	g.selected = i
	g.Raise(core.NewEventArgs(&g.Component, nil, i))
}

// Destroy removes the group and its buttons.
func (g *RadioGroup) Destroy() {
	for _, s := range g.subs {
		s.Cancel()
	}
	for _, b := range g.buttons {
		b.Destroy()
	}
	g.Widget.Destroy()
}

func (g *RadioGroup) IdleUpState() {}

func (g *RadioGroup) IdleDownState() {}

func (g *RadioGroup) PressedState() {}

func (g *RadioGroup) PressReleaseState() {}

func (g *RadioGroup) HoverState() {}

func (g *RadioGroup) HoverPressedState() {}

func (g *RadioGroup) PressedOutState() {}

func (g *RadioGroup) MoveState() {}

func (g *RadioGroup) KeyupState(*rendering.Event) {}
