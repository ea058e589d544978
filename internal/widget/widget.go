// Package widget draws the gauge, graph, and buttons onto a canvas.
package widget

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hydro/internal/button"
	"github.com/verte-zerg/hydro/internal/canvas"
	"github.com/verte-zerg/hydro/internal/gauge"
	"github.com/verte-zerg/hydro/internal/geom"
	"github.com/verte-zerg/hydro/internal/graph"
	"github.com/verte-zerg/hydro/internal/model"
)

const (
	guideAlpha      = 0.3
	referenceStroke = 2.0
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// DrawCounter draws the gauge filled to value over the whole canvas.
func DrawCounter(c *canvas.Canvas, value float64, segments int, p model.Palette) gauge.Geometry {
	bounds := c.Bounds()
	style := gauge.ScaledStyle(bounds.MinSide())
	g := gauge.Layout(bounds, value, segments, style)

	c.FillPolygon(g.Track.Polygon(geom.FlattenStep), p.Counter)
	c.Polyline(g.Outline.Polygon(geom.FlattenStep), true, style.LineWidth, p.Outline)
	for _, m := range g.Markers {
		c.FillPolygon(m, p.Outline)
	}
	return g
}

// DrawGraph draws the chart for s over the whole canvas.
func DrawGraph(c *canvas.Canvas, s graph.Series, p model.Palette) graph.Geometry {
	bounds := c.Bounds()
	frame := graph.ScaledFrame(bounds.Width, bounds.Height)
	g := graph.Layout(bounds, frame, s)

	background := canvas.Gradient(p.GraphStart, p.GraphEnd, bounds.Y, bounds.Y+bounds.Height)
	c.ShadePolygon(g.Clip, background)
	c.ShadePolygon(g.Area, canvas.Gradient(p.GraphStart, p.GraphEnd, g.AreaTop, bounds.Y+bounds.Height))

	for _, guide := range g.Guides {
		c.Line(guide.From, guide.To, canvas.Translucent(white, background(guide.From.Y), guideAlpha))
	}

	k := math.Min(bounds.Width/300, bounds.Height/250)
	c.Polyline(g.Points, false, math.Max(1, referenceStroke*k), white)
	for _, m := range g.Markers {
		c.FillCircle(m, white)
	}
	return g
}

// DrawButton draws b over the whole canvas.
func DrawButton(c *canvas.Canvas, b button.Button) button.Geometry {
	g := b.Layout(c.Bounds())
	c.FillCircle(g.Circle, b.Fill)
	for _, s := range g.Glyph {
		c.Stroke(s, g.GlyphWidth, g.GlyphColor)
	}
	return g
}

// DayStrip lays labels out along the chart's x axis as one line of cols cells.
// Labels are spread evenly between the first and last data column.
func DayStrip(g graph.Geometry, labels []string, cols int) string {
	if cols <= 0 {
		return ""
	}
	line := []rune(strings.Repeat(" ", cols))
	if len(labels) == 0 || len(g.Points) == 0 {
		return string(line)
	}
	first := g.Points[0].X
	last := g.Points[len(g.Points)-1].X
	for i, label := range labels {
		x := first
		if len(labels) > 1 {
			x = first + float64(i)*(last-first)/float64(len(labels)-1)
		}
		col := int(math.Floor(x/2)) - runewidth.StringWidth(label)/2
		for j, r := range []rune(label) {
			pos := col + j
			if pos >= 0 && pos < cols {
				line[pos] = r
			}
		}
	}
	return string(line)
}
