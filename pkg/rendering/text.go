package rendering

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// DefaultFontSize is used when a text node has no explicit size.
	DefaultFontSize = 16

	// faceHeight is the pixel height of the bundled bitmap face.
	faceHeight = 13
)

// Face is the bitmap face used for metrics and rasterization.
var Face font.Face = basicfont.Face7x13

// MeasureText returns the size of content drawn at fontSize. The bundled
// face is bitmap-only, so metrics are scaled linearly from its native size.
func MeasureText(content string, fontSize float64) Size {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	width := font.MeasureString(Face, content)
	return Size{
		Width:  math.Ceil(float64(width.Round()) * fontSize / faceHeight),
		Height: math.Ceil(fontSize),
	}
}
