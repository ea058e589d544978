package geom

import "math"

// FlattenStep is the default maximum angular step used to approximate arcs.
const FlattenStep = math.Pi / 90

// Arc is a circular arc. Start to End runs clockwise on screen when End > Start.
type Arc struct {
	Center Point
	Radius float64
	Start  float64
	End    float64
}

// Sweep returns the signed angular extent of the arc.
func (a Arc) Sweep() float64 {
	return a.End - a.Start
}

// PointAt returns the point on the arc circle at angle theta.
func (a Arc) PointAt(theta float64) Point {
	return Polar(a.Center, a.Radius, theta)
}

// Flatten approximates the arc with points no more than step radians apart.
// Both endpoints are always included.
func (a Arc) Flatten(step float64) []Point {
	if step <= 0 {
		step = FlattenStep
	}
	n := int(math.Ceil(math.Abs(a.Sweep()) / step))
	if n < 1 {
		n = 1
	}
	out := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		theta := a.Start + a.Sweep()*float64(i)/float64(n)
		out = append(out, a.PointAt(theta))
	}
	return out
}

// RingSector is the region between two concentric arcs sharing an angular range.
type RingSector struct {
	Center Point
	Inner  float64
	Outer  float64
	Start  float64
	End    float64
}

// OuterArc returns the outer boundary arc.
func (s RingSector) OuterArc() Arc {
	return Arc{Center: s.Center, Radius: s.Outer, Start: s.Start, End: s.End}
}

// InnerArc returns the inner boundary arc.
func (s RingSector) InnerArc() Arc {
	return Arc{Center: s.Center, Radius: s.Inner, Start: s.Start, End: s.End}
}

// Polygon returns the closed outline: along the outer arc from Start to End,
// then back along the inner arc from End to Start.
func (s RingSector) Polygon(step float64) Polygon {
	outer := s.OuterArc().Flatten(step)
	inner := s.InnerArc().Flatten(step)
	out := make(Polygon, 0, len(outer)+len(inner))
	out = append(out, outer...)
	for i := len(inner) - 1; i >= 0; i-- {
		out = append(out, inner[i])
	}
	return out
}

// RotatedRect returns the rectangle [x0,x0+w]x[y0,y0+h] in local space,
// rotated by angle and translated to origin.
func RotatedRect(origin Point, x0, y0, w, h, angle float64) Polygon {
	local := []Point{
		{X: x0, Y: y0},
		{X: x0 + w, Y: y0},
		{X: x0 + w, Y: y0 + h},
		{X: x0, Y: y0 + h},
	}
	out := make(Polygon, len(local))
	for i, p := range local {
		out[i] = p.Rotate(angle).Add(origin)
	}
	return out
}

// RoundedRect approximates r with corners of the given radius.
func RoundedRect(r Rect, radius float64) Polygon {
	radius = math.Max(0, math.Min(radius, math.Min(r.Width, r.Height)/2))
	if radius == 0 {
		return Polygon{
			{X: r.X, Y: r.Y},
			{X: r.X + r.Width, Y: r.Y},
			{X: r.X + r.Width, Y: r.Y + r.Height},
			{X: r.X, Y: r.Y + r.Height},
		}
	}
	corners := []Arc{
		{Center: Point{X: r.X + r.Width - radius, Y: r.Y + radius}, Radius: radius, Start: -math.Pi / 2, End: 0},
		{Center: Point{X: r.X + r.Width - radius, Y: r.Y + r.Height - radius}, Radius: radius, Start: 0, End: math.Pi / 2},
		{Center: Point{X: r.X + radius, Y: r.Y + r.Height - radius}, Radius: radius, Start: math.Pi / 2, End: math.Pi},
		{Center: Point{X: r.X + radius, Y: r.Y + radius}, Radius: radius, Start: math.Pi, End: 3 * math.Pi / 2},
	}
	var out Polygon
	for _, c := range corners {
		out = append(out, c.Flatten(math.Pi/8)...)
	}
	return out
}
