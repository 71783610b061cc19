package terminal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/widgetkit/pkg/rendering"
)

const (
	// CellWidth is the number of scene pixels covered by one terminal column.
	CellWidth = 8
	// CellHeight is the number of scene pixels covered by one terminal row.
	CellHeight = 16
)

// cell is one terminal character.
type cell struct {
	ch rune
	fg rendering.Color
	bg rendering.Color
}

// Grid returns the number of columns and rows needed to show scene.
func Grid(scene *rendering.Scene) (cols, rows int) {
	size := scene.Size()
	return int(math.Ceil(size.Width / CellWidth)), int(math.Ceil(size.Height / CellHeight))
}

// CellCenter returns the scene point at the center of terminal cell
// (col, row).
func CellCenter(col, row int) rendering.Offset {
	return rendering.Offset{
		X: float64(col)*CellWidth + CellWidth/2,
		Y: float64(row)*CellHeight + CellHeight/2,
	}
}

// layoutCells samples the scene into a cols x rows grid. Each cell takes the
// fill of the topmost visible shape under its center; text nodes are then
// written one character per cell along the row through their middle.
func layoutCells(scene *rendering.Scene, cols, rows int) [][]cell {
	cols, rows = max(cols, 0), max(rows, 0)
	var shapes, texts []rendering.Node
	scene.Walk(func(n rendering.Node, _ int) bool {
		if !n.Visible() {
			return false
		}
		if n.Opacity() == 0 {
			return true
		}
		switch n.Kind() {
		case rendering.KindRect, rendering.KindCircle:
			if n.FillColor().Alpha() > 0 {
				shapes = append(shapes, n)
			}
		case rendering.KindText:
			texts = append(texts, n)
		}
		return true
	})

	grid := make([][]cell, rows)
	for row := range grid {
		grid[row] = make([]cell, cols)
		for col := range grid[row] {
			c := cell{ch: ' ', fg: rendering.ColorBlack, bg: rendering.ColorWhite}
			p := CellCenter(col, row)
			for i := len(shapes) - 1; i >= 0; i-- {
				if shapeContains(shapes[i], p) {
					c.bg = shapes[i].FillColor()
					break
				}
			}
			grid[row][col] = c
		}
	}

	for _, t := range texts {
		b := t.Bounds()
		row := int(((b.Top + b.Bottom) / 2) / CellHeight)
		if row < 0 || row >= rows {
			continue
		}
		col := int(math.Round(b.Left / CellWidth))
		for _, r := range t.Content() {
			if col >= 0 && col < cols {
				grid[row][col].ch = r
				grid[row][col].fg = t.FillColor()
			}
			col++
		}
	}
	return grid
}

func shapeContains(n rendering.Node, p rendering.Offset) bool {
	b := n.Bounds()
	if !b.Contains(p) {
		return false
	}
	if n.Kind() != rendering.KindCircle {
		return true
	}
	c := b.Center()
	r := b.Width() / 2
	dx, dy := p.X-c.X, p.Y-c.Y
	return dx*dx+dy*dy <= r*r
}

// Render draws scene as cols x rows styled terminal cells. Runs of cells
// with the same colors share one lipgloss style.
func Render(scene *rendering.Scene, cols, rows int) string {
	grid := layoutCells(scene, cols, rows)
	var out strings.Builder
	for row, line := range grid {
		if row > 0 {
			out.WriteByte('\n')
		}
		start := 0
		for col := 1; col <= len(line); col++ {
			if col < len(line) && line[col].fg == line[start].fg && line[col].bg == line[start].bg {
				continue
			}
			var run strings.Builder
			for _, c := range line[start:col] {
				run.WriteRune(c.ch)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(line[start].fg.Hex())).
				Background(lipgloss.Color(line[start].bg.Hex()))
			out.WriteString(style.Render(run.String()))
			start = col
		}
	}
	return out.String()
}
