package rendering

import (
	"math"

	"github.com/google/uuid"
)

// Scene is a retained, in-memory Surface. It keeps a tree of nodes, does its
// own hit testing and delivers pointer and key events to node handlers.
//
// Scene is not safe for concurrent use; drive it from one goroutine.
type Scene struct {
	size  Size
	root  *sceneNode
	index map[string]*sceneNode

	// hover is the path from the root to the deepest node under the pointer.
	hover   []*sceneNode
	pointer Offset
	buttons int
}

var _ Surface = (*Scene)(nil)

// NewScene creates a scene of the given size.
func NewScene(width, height float64) *Scene {
	s := &Scene{
		size:  Size{Width: width, Height: height},
		index: make(map[string]*sceneNode),
	}
	s.root = s.newNode(KindGroup, nil)
	s.root.size = s.size
	return s
}

// Root returns the node covering the whole scene.
func (s *Scene) Root() Node {
	return s.root
}

// Size returns the scene dimensions.
func (s *Scene) Size() Size {
	return s.size
}

// Resize changes the scene dimensions.
func (s *Scene) Resize(width, height float64) {
	s.size = Size{Width: width, Height: height}
	s.root.size = s.size
}

// Find returns the node with the given ID, or nil.
func (s *Scene) Find(id string) Node {
	if n, ok := s.index[id]; ok {
		return n
	}
	return nil
}

// Walk visits every node depth-first in paint order. Returning false from
// visit skips the node's children.
func (s *Scene) Walk(visit func(n Node, depth int) bool) {
	var walk func(n *sceneNode, depth int)
	walk = func(n *sceneNode, depth int) {
		if !visit(n, depth) {
			return
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(s.root, 0)
}

// Pointer returns the last pointer position seen by the scene.
func (s *Scene) Pointer() Offset {
	return s.pointer
}

func (s *Scene) newNode(kind NodeKind, parent *sceneNode) *sceneNode {
	n := &sceneNode{
		scene:    s,
		id:       uuid.NewString(),
		kind:     kind,
		parent:   parent,
		opacity:  1,
		fill:     ColorBlack,
		fontSize: DefaultFontSize,
	}
	if kind == KindGroup {
		n.fill = ColorTransparent
	}
	s.index[n.id] = n
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	return n
}

func (s *Scene) forget(n *sceneNode) {
	delete(s.index, n.id)
	for _, c := range n.children {
		s.forget(c)
	}
	for i, h := range s.hover {
		if h == n {
			s.hover = s.hover[:i]
			break
		}
	}
}

type sceneNode struct {
	scene    *Scene
	id       string
	kind     NodeKind
	parent   *sceneNode
	children []*sceneNode

	pos         Offset
	size        Size
	fill        Color
	stroke      Color
	strokeWidth float64
	radius      float64
	text        string
	fontSize    float64
	opacity     float64
	hidden      bool

	attrs    map[string]any
	handlers map[EventType][]Handler
}

func (n *sceneNode) ID() string     { return n.id }
func (n *sceneNode) Kind() NodeKind { return n.kind }

func (n *sceneNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *sceneNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *sceneNode) Group() Node {
	return n.scene.newNode(KindGroup, n)
}

func (n *sceneNode) Rect(width, height float64) Node {
	c := n.scene.newNode(KindRect, n)
	c.size = Size{Width: width, Height: height}
	return c
}

func (n *sceneNode) Circle(diameter float64) Node {
	c := n.scene.newNode(KindCircle, n)
	c.size = Size{Width: diameter, Height: diameter}
	return c
}

func (n *sceneNode) Text(content string) Node {
	c := n.scene.newNode(KindText, n)
	c.SetText(content)
	return c
}

func (n *sceneNode) Move(x, y float64) {
	n.pos = Offset{X: x, Y: y}
}

func (n *sceneNode) Position() Offset {
	return n.pos
}

// Resize is ignored for groups, whose size follows their children, and for
// text, whose size follows its content.
func (n *sceneNode) Resize(width, height float64) {
	if n.kind == KindGroup || n.kind == KindText {
		return
	}
	n.size = Size{Width: width, Height: height}
}

func (n *sceneNode) Size() Size {
	return n.Bounds().Size()
}

func (n *sceneNode) origin() Offset {
	o := n.pos
	for p := n.parent; p != nil; p = p.parent {
		o = o.Add(p.pos)
	}
	return o
}

func (n *sceneNode) Bounds() Rect {
	if n.parent == nil {
		return RectFromLTWH(0, 0, n.scene.size.Width, n.scene.size.Height)
	}
	if n.kind != KindGroup {
		o := n.origin()
		return RectFromLTWH(o.X, o.Y, n.size.Width, n.size.Height)
	}
	var r Rect
	for _, c := range n.children {
		if c.hidden {
			continue
		}
		r = r.Union(c.Bounds())
	}
	return r
}

func (n *sceneNode) Fill(c Color) { n.fill = c }

func (n *sceneNode) FillColor() Color { return n.fill }

func (n *sceneNode) StrokeColor() Color { return n.stroke }

func (n *sceneNode) StrokeWidth() float64 { return n.strokeWidth }

func (n *sceneNode) Stroke(c Color, width float64) {
	n.stroke = c
	n.strokeWidth = width
}

func (n *sceneNode) SetRadius(r float64) { n.radius = r }

func (n *sceneNode) SetText(content string) {
	n.text = content
	if n.kind == KindText {
		n.size = MeasureText(content, n.fontSize)
	}
}

func (n *sceneNode) Content() string { return n.text }

func (n *sceneNode) SetFontSize(size float64) {
	n.fontSize = size
	if n.kind == KindText {
		n.size = MeasureText(n.text, size)
	}
}

func (n *sceneNode) FontSize() float64 { return n.fontSize }

func (n *sceneNode) SetOpacity(o float64) {
	n.opacity = Clamp(o, 0, 1)
}

func (n *sceneNode) Opacity() float64 { return n.opacity }

func (n *sceneNode) Show() { n.hidden = false }

func (n *sceneNode) Hide() { n.hidden = true }

// Visible reports whether the node and all of its ancestors are shown.
func (n *sceneNode) Visible() bool {
	for p := n; p != nil; p = p.parent {
		if p.hidden {
			return false
		}
	}
	return true
}

func (n *sceneNode) SetAttr(key string, value any) {
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[key] = value
}

func (n *sceneNode) Attr(key string) (any, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// Attrs returns a copy of the node's attributes.
func (n *sceneNode) Attrs() map[string]any {
	out := make(map[string]any, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

func (n *sceneNode) On(t EventType, h Handler) {
	if h == nil {
		return
	}
	if n.handlers == nil {
		n.handlers = make(map[EventType][]Handler)
	}
	n.handlers[t] = append(n.handlers[t], h)
}

func (n *sceneNode) Clear() {
	for _, c := range n.children {
		c.parent = nil
		n.scene.forget(c)
	}
	n.children = nil
}

func (n *sceneNode) Remove() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
	n.scene.forget(n)
}

// contains reports whether p hits the node's own geometry.
func (n *sceneNode) contains(p Offset) bool {
	b := n.Bounds()
	if n.kind == KindCircle {
		c := b.Center()
		r := b.Width() / 2
		return math.Hypot(p.X-c.X, p.Y-c.Y) <= r
	}
	return b.Contains(p)
}
