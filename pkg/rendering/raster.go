package rendering

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Rasterize paints the scene into a new RGBA image, one pixel per unit.
// Opacity is applied per node and is not inherited.
func (s *Scene) Rasterize() *image.RGBA {
	w := int(math.Ceil(s.size.Width))
	h := int(math.Ceil(s.size.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	s.Walk(func(n Node, _ int) bool {
		sn := n.(*sceneNode)
		if sn.hidden {
			return false
		}
		switch sn.kind {
		case KindRect:
			paintRect(img, sn)
		case KindCircle:
			paintCircle(img, sn)
		case KindText:
			paintText(img, sn)
		}
		return true
	})
	return img
}

func fade(c Color, opacity float64) color.NRGBA {
	nc := c.NRGBA()
	nc.A = uint8(math.Round(float64(nc.A) * opacity))
	return nc
}

func toImageRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
}

func paintRect(img *image.RGBA, n *sceneNode) {
	r := toImageRect(n.Bounds())
	if n.fill.Alpha() != 0 {
		draw.Draw(img, r, image.NewUniform(fade(n.fill, n.opacity)), image.Point{}, draw.Over)
	}
	if n.strokeWidth <= 0 || n.stroke.Alpha() == 0 {
		return
	}
	sw := int(math.Max(1, math.Round(n.strokeWidth)))
	src := image.NewUniform(fade(n.stroke, n.opacity))
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+sw),
		image.Rect(r.Min.X, r.Max.Y-sw, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+sw, r.Max.Y),
		image.Rect(r.Max.X-sw, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(r), src, image.Point{}, draw.Over)
	}
}

func paintCircle(img *image.RGBA, n *sceneNode) {
	b := n.Bounds()
	c := b.Center()
	radius := b.Width() / 2
	r := toImageRect(b).Intersect(img.Bounds())
	fill := fade(n.fill, n.opacity)
	stroke := fade(n.stroke, n.opacity)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-c.X, float64(y)+0.5-c.Y)
			switch {
			case d > radius:
				continue
			case n.strokeWidth > 0 && d > radius-n.strokeWidth:
				blend(img, x, y, stroke)
			default:
				blend(img, x, y, fill)
			}
		}
	}
}

func blend(img *image.RGBA, x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	px := image.Rect(x, y, x+1, y+1)
	draw.Draw(img, px, image.NewUniform(c), image.Point{}, draw.Over)
}

// paintText draws the label with the bitmap face at its native size and
// scales the result into the node's measured bounds.
func paintText(img *image.RGBA, n *sceneNode) {
	if n.text == "" {
		return
	}
	native := font.MeasureString(Face, n.text).Round()
	if native <= 0 {
		return
	}
	glyphs := image.NewRGBA(image.Rect(0, 0, native, faceHeight))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(fade(n.fill, n.opacity)),
		Face: Face,
		Dot:  fixed.P(0, Face.Metrics().Ascent.Round()),
	}
	d.DrawString(n.text)
	dst := toImageRect(n.Bounds())
	xdraw.NearestNeighbor.Scale(img, dst, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}
