// Package button computes the geometry of the round add/subtract buttons.
package button

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/verte-zerg/hydro/internal/geom"
)

const (
	glyphScale     = 0.6
	halfPointShift = 0.5
	referenceSide  = 100.0
	referenceGlyph = 3.0
)

// Kind distinguishes the two buttons.
type Kind int

const (
	// Add increments the counter and shows a plus glyph.
	Add Kind = iota
	// Subtract decrements the counter and shows a minus glyph.
	Subtract
)

func (k Kind) String() string {
	if k == Add {
		return "add"
	}
	return "subtract"
}

// White is the glyph color of a released button.
var White = colorful.Color{R: 1, G: 1, B: 1}

// Button is the render state of one push button.
type Button struct {
	Kind    Kind
	Fill    colorful.Color
	Pressed bool
}

// Geometry is the drawable description of a button.
type Geometry struct {
	Circle     geom.Circle
	Glyph      []geom.Segment
	GlyphWidth float64
	GlyphColor colorful.Color
}

// GlyphColor returns white when released and the fill color when pressed.
func (b Button) GlyphColor() colorful.Color {
	if b.Pressed {
		return b.Fill
	}
	return White
}

// Layout computes button geometry inscribed in bounds.
func (b Button) Layout(bounds geom.Rect) Geometry {
	sq := bounds.Square()
	c := sq.Center()
	half := sq.Width * glyphScale / 2
	width := referenceGlyph * sq.Width / referenceSide
	if width < 1 {
		width = 1
	}
	g := Geometry{
		Circle:     geom.Circle{Center: c, Radius: sq.Width / 2},
		GlyphWidth: width,
		GlyphColor: b.GlyphColor(),
	}
	g.Glyph = append(g.Glyph, geom.Segment{
		From: geom.Point{X: c.X - half + halfPointShift, Y: c.Y + halfPointShift},
		To:   geom.Point{X: c.X + half + halfPointShift, Y: c.Y + halfPointShift},
	})
	if b.Kind == Add {
		g.Glyph = append(g.Glyph, geom.Segment{
			From: geom.Point{X: c.X + halfPointShift, Y: c.Y - half + halfPointShift},
			To:   geom.Point{X: c.X + halfPointShift, Y: c.Y + half + halfPointShift},
		})
	}
	return g
}
