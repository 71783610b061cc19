// Package testing drives widgets on an in-memory scene.
//
// # Quick Start
//
// Create a tester, build a widget in its window, and make assertions:
//
//	func TestMyButton(t *testing.T) {
//	    tester := wktest.NewTesterWithT(t)
//	    b, err := widgets.NewButton(tester.Window())
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    clicks := 0
//	    b.OnClick(func(core.EventArgs) { clicks++ })
//
//	    // Simulate gestures
//	    tester.Tap(wktest.ByText("Click me!"))
//
//	    if clicks != 1 {
//	        t.Errorf("clicks = %d, want 1", clicks)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare scene snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.json")
//
// Update snapshots with:
//
//	WIDGETKIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import wktest "github.com/go-drift/widgetkit/pkg/testing"
package testing
