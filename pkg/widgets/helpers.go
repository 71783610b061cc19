package widgets

import (
	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/rendering"
)

// pointerFocus records whether the pointer is inside a widget's outer
// group. Key releases are broadcast to every widget in the window; widgets
// that react to keys only do so while they hold pointer focus.
type pointerFocus struct {
	inside bool
}

func (f *pointerFocus) track(n rendering.Node) {
	n.On(rendering.PointerEnter, func(*rendering.Event) { f.inside = true })
	n.On(rendering.PointerLeave, func(*rendering.Event) { f.inside = false })
}

func (f *pointerFocus) focused() bool {
	return f.inside
}

// keyName returns the key of a key event, or "" for nil.
func keyName(e *rendering.Event) string {
	if e == nil {
		return ""
	}
	return e.Key
}

// isActivationKey reports whether key activates a control, like a click.
func isActivationKey(key string) bool {
	return key == " " || key == "Enter"
}

// reportRender reports a repaint failure from inside a hook, where there is
// no caller to return the error to.
func reportRender(op string, err error) {
	if err != nil {
		errors.Report(&errors.KitError{Op: op, Kind: errors.KindRender, Err: err})
	}
}

// repaint runs Update from inside a hook.
func repaint(c *core.Component, op string) {
	reportRender(op, c.Update())
}

// onClick calls fn when a press and a release both land on n without the
// pointer leaving it in between.
func onClick(n rendering.Node, fn func(e *rendering.Event)) {
	armed := false
	n.On(rendering.PointerDown, func(*rendering.Event) { armed = true })
	n.On(rendering.PointerLeave, func(*rendering.Event) { armed = false })
	n.On(rendering.PointerUp, func(e *rendering.Event) {
		if armed {
			armed = false
			fn(e)
		}
	})
}

// centerText positions text inside a box of the given size, offset by
// padding from the left. A negative padding centers horizontally.
func centerText(text rendering.Node, width, height, padding float64) {
	size := text.Size()
	x := padding
	if padding < 0 {
		x = (width - size.Width) / 2
	}
	text.Move(x, (height-size.Height)/2)
}
