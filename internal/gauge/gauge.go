// Package gauge computes the geometry of the segmented glass counter arc.
package gauge

import (
	"math"

	"github.com/verte-zerg/hydro/internal/geom"
)

const (
	// StartAngle is where the track begins (lower left on screen).
	StartAngle = 3 * math.Pi / 4
	// EndAngle is where the track ends (lower right on screen).
	EndAngle = math.Pi / 4
)

// Reference proportions, relative to a 230 point square.
const (
	referenceSide   = 230.0
	referenceArc    = 76.0
	referenceLine   = 5.0
	referenceMarkW  = 5.0
	referenceMarkSz = 10.0
)

// Style holds the stroke dimensions of the gauge in dot units.
type Style struct {
	ArcWidth    float64
	LineWidth   float64
	MarkerWidth float64
	MarkerSize  float64
}

// ScaledStyle returns the reference proportions scaled to a square of the given side.
// Line and marker widths never drop below one dot.
func ScaledStyle(side float64) Style {
	k := side / referenceSide
	return Style{
		ArcWidth:    referenceArc * k,
		LineWidth:   math.Max(1, referenceLine*k),
		MarkerWidth: math.Max(1, referenceMarkW*k),
		MarkerSize:  math.Max(2, referenceMarkSz*k),
	}
}

// Geometry is the complete drawable description of the gauge for one render.
type Geometry struct {
	Center          geom.Point
	Side            float64
	AnglePerSegment float64
	Sweep           float64
	// Track is the full background arc, stroked arcWidth wide.
	Track geom.RingSector
	// Outline is the filled portion, stroked lineWidth wide.
	Outline geom.RingSector
	// Markers are the tick rectangles at each segment boundary.
	Markers []geom.Polygon
}

// AnglePerSegment returns the angular extent of one glass.
func AnglePerSegment(segments int) float64 {
	if segments <= 0 {
		return 0
	}
	return (2*math.Pi - StartAngle + EndAngle) / float64(segments)
}

// Layout computes gauge geometry inside bounds. value may be fractional while
// animating; it is clamped to [0, segments].
func Layout(bounds geom.Rect, value float64, segments int, style Style) Geometry {
	sq := bounds.Square()
	side := sq.Width
	center := sq.Center()
	per := AnglePerSegment(segments)
	value = math.Max(0, math.Min(value, float64(segments)))
	sweep := per * value

	trackRadius := side/2 - style.ArcWidth/2
	g := Geometry{
		Center:          center,
		Side:            side,
		AnglePerSegment: per,
		Sweep:           sweep,
		Track: geom.RingSector{
			Center: center,
			Inner:  math.Max(0, trackRadius-style.ArcWidth/2),
			Outer:  trackRadius + style.ArcWidth/2,
			Start:  StartAngle,
			End:    2*math.Pi + EndAngle,
		},
		Outline: geom.RingSector{
			Center: center,
			Inner:  math.Max(0, side/2-style.ArcWidth+style.LineWidth/2),
			Outer:  side/2 - style.LineWidth/2,
			Start:  StartAngle,
			End:    StartAngle + sweep,
		},
	}

	g.Markers = make([]geom.Polygon, 0, segments)
	for i := 1; i <= segments; i++ {
		angle := per*float64(i) + StartAngle - math.Pi/2
		g.Markers = append(g.Markers, geom.RotatedRect(
			center,
			-style.MarkerWidth/2,
			side/2-style.MarkerSize,
			style.MarkerWidth,
			style.MarkerSize,
			angle,
		))
	}
	return g
}
