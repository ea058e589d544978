package button

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/verte-zerg/hydro/internal/geom"
)

var teal = colorful.Color{R: 17.0 / 255, G: 112.0 / 255, B: 124.0 / 255}

func TestGlyphSegments(t *testing.T) {
	bounds := geom.Rect{Width: 100, Height: 100}
	plus := Button{Kind: Add, Fill: teal}.Layout(bounds)
	if len(plus.Glyph) != 2 {
		t.Fatalf("plus should have 2 segments, got %d", len(plus.Glyph))
	}
	minus := Button{Kind: Subtract, Fill: teal}.Layout(bounds)
	if len(minus.Glyph) != 1 {
		t.Fatalf("minus should have 1 segment, got %d", len(minus.Glyph))
	}
	h := minus.Glyph[0]
	if h.From.Y != h.To.Y {
		t.Fatalf("minus glyph should be horizontal")
	}
	if h.Length() != 60 {
		t.Fatalf("expected glyph length 60, got %f", h.Length())
	}
	if plus.Circle.Radius != 50 || plus.Circle.Center != (geom.Point{X: 50, Y: 50}) {
		t.Fatalf("unexpected circle %+v", plus.Circle)
	}
}

func TestPressedSwapsGlyphColor(t *testing.T) {
	b := Button{Kind: Add, Fill: teal}
	if b.GlyphColor() != White {
		t.Fatalf("released glyph should be white")
	}
	b.Pressed = true
	if b.GlyphColor() != teal {
		t.Fatalf("pressed glyph should take the fill color")
	}
	if got := b.Layout(geom.Rect{Width: 10, Height: 10}).GlyphColor; got != teal {
		t.Fatalf("layout should carry the pressed color")
	}
}

func TestKindString(t *testing.T) {
	if Add.String() != "add" || Subtract.String() != "subtract" {
		t.Fatalf("unexpected kind names")
	}
}
