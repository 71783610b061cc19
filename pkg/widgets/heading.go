package widgets

import (
	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/rendering"
	"github.com/go-drift/widgetkit/pkg/theme"
)

// DefaultHeadingText is the text of a new Heading.
const DefaultHeadingText = "Heading"

const headingPadding = 4

// Heading is a line of static text on a background sized to fit it. It
// takes part in the state machine but has no interactive behavior.
type Heading struct {
	core.Widget

	text     string
	fontSize float64

	rect  rendering.Node
	label rendering.Node
}

var (
	_ core.Hooks   = (*Heading)(nil)
	_ core.Painter = (*Heading)(nil)
)

// NewHeading creates a heading with DefaultHeadingText.
func NewHeading(win *core.Window) (*Heading, error) {
	th := theme.Current().Heading
	h := &Heading{text: DefaultHeadingText, fontSize: th.FontSize}
	if err := h.Init(win, h); err != nil {
		return nil, err
	}
	h.SetRole(core.RoleHeading)
	h.SetSelectable(false)
	h.SetForeColor(th.TextColor)

	g := h.Node()
	h.rect = g.Rect(0, 0)
	h.label = g.Text(h.text)
	h.RegisterEvent(g)

	h.SetState(core.IdleUp)
	if err := h.SetBackColor(th.BackgroundColor); err != nil {
		return nil, err
	}
	return h, nil
}

// Paint sizes the background to the measured text.
func (h *Heading) Paint() {
	h.label.SetFontSize(h.fontSize)
	h.label.SetText(h.text)
	h.label.Fill(h.ForeColor())
	h.label.Move(headingPadding, 0)
	size := h.label.Size()
	h.Width = size.Width + 2*headingPadding
	h.Height = size.Height
	h.rect.Resize(h.Width, h.Height)
	h.rect.Fill(h.BackColor())
}

// Text returns the heading text.
func (h *Heading) Text() string {
	return h.text
}

// SetText changes the heading text and refits the background.
func (h *Heading) SetText(text string) error {
	h.text = text
	return h.Update()
}

// FontSize returns the text size.
func (h *Heading) FontSize() float64 {
	return h.fontSize
}

// SetFontSize changes the text size and refits the background.
func (h *Heading) SetFontSize(size float64) error {
	h.fontSize = size
	return h.Update()
}

func (h *Heading) IdleUpState() {}

func (h *Heading) IdleDownState() {}

func (h *Heading) PressedState() {}

func (h *Heading) PressReleaseState() {}

func (h *Heading) HoverState() {}

func (h *Heading) HoverPressedState() {}

func (h *Heading) PressedOutState() {}

func (h *Heading) MoveState() {}

func (h *Heading) KeyupState(*rendering.Event) {}
