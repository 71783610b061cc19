package testing

import (
	"fmt"

	"github.com/go-drift/widgetkit/pkg/rendering"
)

// dragSteps is the number of move events emitted between press and release.
const dragSteps = 5

// MoveTo moves the pointer to pos, producing enter, leave and move events.
func (t *Tester) MoveTo(pos rendering.Offset) {
	t.pointer = pos
	t.scene.PointerMove(pos)
}

// Press moves the pointer to pos and presses the button there.
func (t *Tester) Press(pos rendering.Offset) {
	t.MoveTo(pos)
	t.scene.PointerDown(pos)
}

// Release releases the button at the current pointer position.
func (t *Tester) Release() {
	t.scene.PointerUp(t.pointer)
}

// TapAt presses and releases at pos.
func (t *Tester) TapAt(pos rendering.Offset) {
	t.Press(pos)
	t.Release()
}

// Tap taps the center of the first node matched by finder.
func (t *Tester) Tap(finder Finder) error {
	center, err := t.centerOf("Tap", finder)
	if err != nil {
		return err
	}
	t.TapAt(center)
	return nil
}

// Hover moves the pointer to the center of the first node matched by finder.
func (t *Tester) Hover(finder Finder) error {
	center, err := t.centerOf("Hover", finder)
	if err != nil {
		return err
	}
	t.MoveTo(center)
	return nil
}

// Drag presses the center of the first node matched by finder, moves by
// delta and releases.
func (t *Tester) Drag(finder Finder, delta rendering.Offset) error {
	center, err := t.centerOf("Drag", finder)
	if err != nil {
		return err
	}
	t.DragFrom(center, delta)
	return nil
}

// DragFrom presses at start, moves to start+delta in even steps and
// releases there.
func (t *Tester) DragFrom(start, delta rendering.Offset) {
	t.Press(start)
	for i := 1; i <= dragSteps; i++ {
		frac := float64(i) / dragSteps
		t.MoveTo(rendering.Offset{
			X: start.X + delta.X*frac,
			Y: start.Y + delta.Y*frac,
		})
	}
	t.Release()
}

// KeyUp releases key. Key names follow the DOM convention: "a", " ",
// "Enter", "ArrowUp".
func (t *Tester) KeyUp(key string) {
	t.scene.KeyUp(key)
}

func (t *Tester) centerOf(op string, finder Finder) (rendering.Offset, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return rendering.Offset{}, fmt.Errorf("%s: finder matched no nodes: %s", op, finder.Description())
	}
	b := result.First().Bounds()
	if b.IsEmpty() {
		return rendering.Offset{}, fmt.Errorf("%s: node has empty bounds: %s", op, finder.Description())
	}
	return b.Center(), nil
}
