package rendering

import (
	"github.com/go-drift/widgetkit/pkg/errors"
)

// HitTest returns the deepest visible node under p. Groups are only hit
// through their children; the root is hit anywhere on the scene.
func (s *Scene) HitTest(p Offset) Node {
	path := s.pathAt(p)
	return path[len(path)-1]
}

// pathAt returns the nodes under p from the root down to the deepest hit.
// It always contains at least the root.
func (s *Scene) pathAt(p Offset) []*sceneNode {
	path := []*sceneNode{s.root}
	if !s.root.Bounds().Contains(p) {
		return path
	}
	n := s.root
	for {
		next := hitChild(n, p)
		if next == nil {
			return path
		}
		path = append(path, next)
		n = next
	}
}

// hitChild returns the topmost child of n whose subtree contains p.
func hitChild(n *sceneNode, p Offset) *sceneNode {
	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		if c.hidden {
			continue
		}
		if c.kind == KindGroup {
			if hitChild(c, p) != nil {
				return c
			}
			continue
		}
		if c.contains(p) {
			return c
		}
	}
	return nil
}

// PointerMove moves the pointer to p. Nodes the pointer left receive
// PointerLeave deepest first, nodes it entered receive PointerEnter outermost
// first, then PointerMove bubbles from the deepest node to the root.
func (s *Scene) PointerMove(p Offset) {
	s.pointer = p
	s.updateHover(p)
	s.bubble(PointerMove, p)
}

// PointerDown presses the primary button at p.
func (s *Scene) PointerDown(p Offset) {
	s.pointer = p
	s.buttons |= 1
	s.updateHover(p)
	s.bubble(PointerDown, p)
}

// PointerUp releases the primary button at p.
func (s *Scene) PointerUp(p Offset) {
	s.pointer = p
	s.buttons &^= 1
	s.updateHover(p)
	s.bubble(PointerUp, p)
}

// KeyUp delivers a key release to the root node.
func (s *Scene) KeyUp(key string) {
	e := &Event{Type: KeyUp, Position: s.pointer, Buttons: s.buttons, Key: key, Target: s.root}
	s.deliver(s.root, e)
}

func (s *Scene) updateHover(p Offset) {
	next := s.pathAt(p)
	common := 0
	for common < len(s.hover) && common < len(next) && s.hover[common] == next[common] {
		common++
	}
	prev := s.hover
	s.hover = next
	for i := len(prev) - 1; i >= common; i-- {
		e := &Event{Type: PointerLeave, Position: p, Buttons: s.buttons, Target: prev[i]}
		s.deliver(prev[i], e)
	}
	for i := common; i < len(next); i++ {
		e := &Event{Type: PointerEnter, Position: p, Buttons: s.buttons, Target: next[i]}
		s.deliver(next[i], e)
	}
}

func (s *Scene) bubble(t EventType, p Offset) {
	if len(s.hover) == 0 {
		return
	}
	path := append([]*sceneNode(nil), s.hover...)
	e := &Event{Type: t, Position: p, Buttons: s.buttons, Target: path[len(path)-1]}
	for i := len(path) - 1; i >= 0; i-- {
		s.deliver(path[i], e)
	}
}

func (s *Scene) deliver(n *sceneNode, e *Event) {
	handlers := append([]Handler(nil), n.handlers[e.Type]...)
	for _, h := range handlers {
		call(n, h, e)
	}
}

// call runs one handler of n. A panicking handler is reported against n
// and the remaining handlers still run.
func call(n *sceneNode, h Handler, e *Event) {
	defer errors.RecoverNode("rendering.Scene."+e.Type.String(), n.id)
	h(e)
}
