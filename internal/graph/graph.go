package graph

import (
	"math"

	"github.com/verte-zerg/hydro/internal/geom"
)

// Reference frame, in points, for a 300x250 chart.
const (
	referenceWidth    = 300.0
	referenceHeight   = 250.0
	referenceMargin   = 20.0
	referenceTop      = 60.0
	referenceBottom   = 50.0
	referenceCorner   = 8.0
	referenceDiameter = 5.0
)

// Frame holds the insets and decoration sizes of the chart in dot units.
type Frame struct {
	Margin         float64
	TopBorder      float64
	BottomBorder   float64
	CornerRadius   float64
	CircleDiameter float64
}

// ScaledFrame returns the reference frame scaled to a chart of the given size.
func ScaledFrame(width, height float64) Frame {
	kx := width / referenceWidth
	ky := height / referenceHeight
	return Frame{
		Margin:         referenceMargin * kx,
		TopBorder:      referenceTop * ky,
		BottomBorder:   referenceBottom * ky,
		CornerRadius:   referenceCorner * math.Min(kx, ky),
		CircleDiameter: math.Max(2, referenceDiameter*math.Min(kx, ky)),
	}
}

// Mapping converts sample indices and values to chart coordinates.
type Mapping struct {
	Bounds      geom.Rect
	Frame       Frame
	Count       int
	Peak        int
	GraphWidth  float64
	GraphHeight float64
}

// NewMapping builds the axis mapping for s inside bounds.
func NewMapping(bounds geom.Rect, frame Frame, s Series) Mapping {
	return Mapping{
		Bounds:      bounds,
		Frame:       frame,
		Count:       s.Len(),
		Peak:        s.Max(),
		GraphWidth:  bounds.Width - frame.Margin*2 - 4,
		GraphHeight: bounds.Height - frame.TopBorder - frame.BottomBorder,
	}
}

// X returns the horizontal position of column i.
func (m Mapping) X(i int) float64 {
	spacing := m.GraphWidth / float64(m.Count-1)
	return m.Bounds.X + float64(i)*spacing + m.Frame.Margin + 2
}

// Y returns the vertical position of value v. The peak maps to the top border
// and zero to the bottom of the graph band.
func (m Mapping) Y(v int) float64 {
	h := float64(v) / float64(m.Peak) * m.GraphHeight
	return m.Bounds.Y + m.GraphHeight + m.Frame.TopBorder - h
}

// Geometry is the drawable description of the chart for one render.
type Geometry struct {
	Mapping Mapping
	// Clip is the rounded frame the background and everything else is clipped to.
	Clip geom.Polygon
	// Points are the data points, left to right.
	Points []geom.Point
	// Area is the region under the line down to the bottom of the view.
	Area geom.Polygon
	// AreaTop is where the area gradient starts (the peak's y).
	AreaTop float64
	Markers []geom.Circle
	// Guides are the top, middle, and bottom reference lines.
	Guides []geom.Segment
}

// Layout computes fresh chart geometry for s inside bounds.
func Layout(bounds geom.Rect, frame Frame, s Series) Geometry {
	m := NewMapping(bounds, frame, s)
	g := Geometry{
		Mapping: m,
		Clip:    geom.RoundedRect(bounds, frame.CornerRadius),
		Points:  make([]geom.Point, s.Len()),
		Markers: make([]geom.Circle, s.Len()),
		AreaTop: m.Y(s.Max()),
	}
	for i := 0; i < s.Len(); i++ {
		p := geom.Point{X: m.X(i), Y: m.Y(s.At(i))}
		g.Points[i] = p
		g.Markers[i] = geom.Circle{Center: p, Radius: frame.CircleDiameter / 2}
	}

	bottom := bounds.Y + bounds.Height
	g.Area = make(geom.Polygon, 0, len(g.Points)+2)
	g.Area = append(g.Area, g.Points...)
	g.Area = append(g.Area,
		geom.Point{X: m.X(s.Len() - 1), Y: bottom},
		geom.Point{X: m.X(0), Y: bottom},
	)

	left := bounds.X + frame.Margin
	right := bounds.X + bounds.Width - frame.Margin
	for _, y := range []float64{
		bounds.Y + frame.TopBorder,
		bounds.Y + m.GraphHeight/2 + frame.TopBorder,
		bottom - frame.BottomBorder,
	} {
		g.Guides = append(g.Guides, geom.Segment{
			From: geom.Point{X: left, Y: y},
			To:   geom.Point{X: right, Y: y},
		})
	}
	return g
}
