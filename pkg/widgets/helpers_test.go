package widgets_test

import (
	"testing"

	"github.com/go-drift/widgetkit/pkg/rendering"
	wktest "github.com/go-drift/widgetkit/pkg/testing"
)

// child returns the i-th child of a widget's outer group.
func child(t *testing.T, n rendering.Node, i int) rendering.Node {
	t.Helper()
	children := n.Children()
	if i >= len(children) {
		t.Fatalf("node %s has %d children, want index %d", n.ID(), len(children), i)
	}
	return children[i]
}

func tap(t *testing.T, tester *wktest.Tester, f wktest.Finder) {
	t.Helper()
	if err := tester.Tap(f); err != nil {
		t.Fatal(err)
	}
}

func hover(t *testing.T, tester *wktest.Tester, f wktest.Finder) {
	t.Helper()
	if err := tester.Hover(f); err != nil {
		t.Fatal(err)
	}
}

// away is a point on the window background, clear of every widget in these
// tests.
var away = rendering.Offset{X: 780, Y: 580}
