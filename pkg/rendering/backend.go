// Package rendering defines the rendering backend consumed by the widget
// core, plus Scene, a retained in-memory implementation of it.
//
// The core only talks to the Surface and Node interfaces. Scene is used by
// the tester, the snapshot command and the terminal front end.
package rendering

// NodeKind identifies the primitive a Node draws.
type NodeKind int

const (
	KindGroup NodeKind = iota
	KindRect
	KindCircle
	KindText
)

func (k NodeKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Surface is the drawing area a Window is attached to.
type Surface interface {
	// Root returns the node covering the whole surface. It receives every
	// pointer event that lands on the surface and every key event.
	Root() Node
	// Size returns the surface dimensions.
	Size() Size
}

// Node is a visual node attached to a Surface.
//
// Positions passed to Move are relative to the parent node. Bounds reports
// surface coordinates.
type Node interface {
	ID() string
	Kind() NodeKind
	Parent() Node
	Children() []Node

	// Group, Rect, Circle and Text create child nodes.
	Group() Node
	Rect(width, height float64) Node
	Circle(diameter float64) Node
	Text(content string) Node

	Move(x, y float64)
	Position() Offset
	Resize(width, height float64)
	Size() Size
	Bounds() Rect

	Fill(c Color)
	FillColor() Color
	Stroke(c Color, width float64)
	StrokeColor() Color
	StrokeWidth() float64
	SetRadius(r float64)
	SetText(content string)
	Content() string
	SetFontSize(size float64)
	FontSize() float64
	SetOpacity(o float64)
	Opacity() float64
	Show()
	Hide()
	Visible() bool

	// SetAttr sets a string-keyed presentation attribute, such as "role"
	// or "tabindex".
	SetAttr(key string, value any)
	Attr(key string) (any, bool)

	// On registers h for events of type t on this node.
	On(t EventType, h Handler)

	// Clear removes all children.
	Clear()
	// Remove detaches the node from its parent.
	Remove()
}
