package widgets

import (
	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/rendering"
	"github.com/go-drift/widgetkit/pkg/theme"
)

const (
	checkboxBoxX   = 10
	checkboxBoxY   = 5
	checkboxLabelX = 35
	checkboxHeight = 30
)

// Checkbox is a box with a label that toggles when pressed, or when space or
// Enter is released while the pointer is over it.
type Checkbox struct {
	core.Widget

	label   string
	checked bool
	palette theme.CheckboxThemeData
	focus   pointerFocus

	box  rendering.Node
	text rendering.Node
}

var (
	_ core.Hooks   = (*Checkbox)(nil)
	_ core.Painter = (*Checkbox)(nil)
)

// NewCheckbox creates an unchecked checkbox labelled label.
func NewCheckbox(win *core.Window, label string) (*Checkbox, error) {
	th := theme.Current().Checkbox
	c := &Checkbox{label: label, palette: th}
	if err := c.Init(win, c); err != nil {
		return nil, err
	}
	c.SetRole(core.RoleCheckbox)

	g := c.Node()
	c.box = g.Rect(th.Size, th.Size)
	c.box.Move(checkboxBoxX, checkboxBoxY)
	c.box.SetRadius(4)
	c.text = g.Text(label)
	c.RegisterEvent(g)
	c.focus.track(g)

	c.SetState(core.IdleUp)
	if err := c.Update(); err != nil {
		return nil, err
	}
	return c, nil
}

// Paint draws the box and label for the current checked value.
func (c *Checkbox) Paint() {
	th := c.palette
	c.box.Stroke(th.ActiveColor, 2)
	c.text.SetFontSize(th.FontSize)
	c.text.SetText(c.label)
	if c.checked {
		c.box.Fill(th.ActiveColor)
		c.text.Fill(th.CheckedLabelColor)
	} else {
		c.box.Fill(th.BoxColor)
		c.text.Fill(th.LabelColor)
	}
	c.text.Move(checkboxLabelX, checkboxBoxY+(th.Size-c.text.Size().Height)/2)
	c.Width = checkboxLabelX + c.text.Size().Width
	c.Height = checkboxHeight
	c.Node().SetAttr("checked", c.checked)
}

// Label returns the checkbox text.
func (c *Checkbox) Label() string {
	return c.label
}

// SetLabel changes the checkbox text.
func (c *Checkbox) SetLabel(label string) error {
	c.label = label
	return c.Update()
}

// Checked reports whether the box is checked.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked sets the checked value without notifying listeners.
func (c *Checkbox) SetChecked(v bool) error {
	c.checked = v
	return c.Update()
}

// Toggle flips the checked value and notifies OnChange listeners.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
	repaint(&c.Component, "widgets.Checkbox.Toggle")
	c.Raise(core.NewEventArgs(&c.Component, c.RawEvent(), c.checked))
}

// OnChange registers fn to receive the new value after every toggle.
func (c *Checkbox) OnChange(fn func(checked bool)) *core.Subscription {
	return c.Attach(func(args core.EventArgs) {
		if v, ok := args.ItemRef().(bool); ok {
			fn(v)
		}
	})
}

func (c *Checkbox) IdleUpState() { repaint(&c.Component, "widgets.Checkbox.IdleUpState") }

func (c *Checkbox) IdleDownState() {}

func (c *Checkbox) PressedState() { c.Toggle() }

func (c *Checkbox) PressReleaseState() {}

func (c *Checkbox) HoverState() { c.box.Fill(c.palette.HoverColor) }

func (c *Checkbox) HoverPressedState() { c.box.Stroke(c.palette.HoverPressedColor, 2) }

func (c *Checkbox) PressedOutState() {}

func (c *Checkbox) MoveState() {}

func (c *Checkbox) KeyupState(key *rendering.Event) {
	if c.focus.focused() && isActivationKey(keyName(key)) {
		c.Toggle()
	}
}
