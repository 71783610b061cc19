package terminal

import (
	"strings"
	"testing"

	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/rendering"
	"github.com/go-drift/widgetkit/pkg/theme"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

// newButtonScene places a default button at (16, 32), covering columns
// 2..11 and rows 2..3.
func newButtonScene(t *testing.T) (*rendering.Scene, *core.Window, *widgets.Button) {
	t.Helper()
	scene := rendering.NewScene(160, 96)
	win, err := core.NewWindow(scene)
	if err != nil {
		t.Fatal(err)
	}
	b, err := widgets.NewButton(win)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Move(16, 32); err != nil {
		t.Fatal(err)
	}
	return scene, win, b
}

func rowText(grid [][]cell, row int) string {
	var sb strings.Builder
	for _, c := range grid[row] {
		sb.WriteRune(c.ch)
	}
	return sb.String()
}

func TestGrid(t *testing.T) {
	tests := []struct {
		w, h       float64
		cols, rows int
	}{
		{160, 96, 20, 6},
		{161, 97, 21, 7},
		{800, 600, 100, 38},
	}
	for _, tt := range tests {
		cols, rows := Grid(rendering.NewScene(tt.w, tt.h))
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("Grid(%vx%v) = %dx%d, want %dx%d", tt.w, tt.h, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestLayoutCells_Button(t *testing.T) {
	scene, _, _ := newButtonScene(t)
	grid := layoutCells(scene, 20, 6)
	fill := theme.DefaultButtonTheme().IdleUp.Fill

	if got := grid[2][2].bg; got != fill {
		t.Errorf("button cell bg = %v, want %v", got, fill)
	}
	if got := grid[0][0].bg; got != rendering.ColorWhite {
		t.Errorf("background cell bg = %v, want white", got)
	}
	if got := rowText(grid, 2); !strings.Contains(got, "Click me!") {
		t.Errorf("row 2 = %q, want the label", got)
	}
	if c := grid[2][3]; c.ch != 'C' || c.fg != theme.DefaultButtonTheme().IdleUp.Text {
		t.Errorf("label start cell = %+v", c)
	}
}

func TestLayoutCells_HiddenSkipped(t *testing.T) {
	scene := rendering.NewScene(32, 32)
	g := scene.Root().Group()
	r := g.Rect(32, 32)
	r.Fill(rendering.RGB(255, 0, 0))
	g.Text("hi")
	g.Hide()

	grid := layoutCells(scene, 4, 2)
	if grid[0][0].bg != rendering.ColorWhite || grid[0][0].ch != ' ' {
		t.Errorf("hidden subtree drawn: %+v", grid[0][0])
	}
}

func TestLayoutCells_Circle(t *testing.T) {
	scene := rendering.NewScene(64, 64)
	c := scene.Root().Circle(64)
	c.Fill(rendering.RGB(0, 0, 255))

	grid := layoutCells(scene, 8, 4)
	if grid[0][0].bg != rendering.ColorWhite {
		t.Error("corner outside the circle should be background")
	}
	if grid[1][3].bg != rendering.RGB(0, 0, 255) {
		t.Error("center should be inside the circle")
	}
}

func TestRender_ContainsLabel(t *testing.T) {
	scene, _, _ := newButtonScene(t)
	out := Render(scene, 20, 6)

	if lines := strings.Count(out, "\n") + 1; lines != 6 {
		t.Errorf("lines = %d, want 6", lines)
	}
	if !strings.Contains(out, "Click me!") {
		t.Errorf("render missing label:\n%s", out)
	}
}
