package testing

import (
	"testing"

	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/rendering"
	"github.com/go-drift/widgetkit/pkg/theme"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
)

// Tester drives widgets on an in-memory scene. It owns a Scene, the Window
// attached to it and the simulated pointer position.
type Tester struct {
	scene     *rendering.Scene
	window    *core.Window
	size      rendering.Size
	pointer   rendering.Offset
	prevTheme *theme.ThemeData
}

// NewTester creates a tester with a DefaultTestWidth x DefaultTestHeight
// window. Call Cleanup when done, or use NewTesterWithT instead.
func NewTester() (*Tester, error) {
	t := &Tester{
		size:      rendering.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		prevTheme: theme.Current(),
	}
	if err := t.reset(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup. This is the
// recommended constructor for tests.
func NewTesterWithT(t testing.TB) *Tester {
	t.Helper()
	tester, err := NewTester()
	if err != nil {
		t.Fatalf("NewTester: %v", err)
	}
	t.Cleanup(tester.Cleanup)
	return tester
}

func (t *Tester) reset() error {
	t.scene = rendering.NewScene(t.size.Width, t.size.Height)
	win, err := core.NewWindow(t.scene)
	if err != nil {
		return err
	}
	t.window = win
	t.pointer = rendering.Offset{}
	return nil
}

// Cleanup restores the theme that was current when the tester was created.
func (t *Tester) Cleanup() {
	theme.SetCurrent(t.prevTheme)
}

// SetSize replaces the scene and window with ones of the given size. Widgets
// created before the call are discarded.
func (t *Tester) SetSize(size rendering.Size) error {
	t.size = size
	return t.reset()
}

// SetTheme makes td current for widgets created afterwards.
func (t *Tester) SetTheme(td *theme.ThemeData) {
	theme.SetCurrent(td)
}

// Scene returns the scene events are dispatched on.
func (t *Tester) Scene() *rendering.Scene {
	return t.scene
}

// Window returns the window widgets should be created in.
func (t *Tester) Window() *core.Window {
	return t.window
}

// Pointer returns the simulated pointer position.
func (t *Tester) Pointer() rendering.Offset {
	return t.pointer
}

// Find evaluates finder against the scene.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{nodes: finder.Evaluate(t.scene), finder: finder}
}

// CaptureSnapshot captures the current scene.
func (t *Tester) CaptureSnapshot() *Snapshot {
	return CaptureScene(t.scene)
}
