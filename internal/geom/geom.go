// Package geom provides the 2D primitives shared by the widgets.
//
// Coordinates are y-down screen space: angles increase clockwise on screen.
package geom

import "math"

// Point is a location in dot space.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rotate returns p rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Polar returns the point at radius r and angle theta from center.
func Polar(center Point, r, theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{X: center.X + r*cos, Y: center.Y + r*sin}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// MinSide returns the shorter side of r.
func (r Rect) MinSide() float64 {
	return math.Min(r.Width, r.Height)
}

// Square returns the largest square centered inside r.
func (r Rect) Square() Rect {
	side := r.MinSide()
	c := r.Center()
	return Rect{X: c.X - side/2, Y: c.Y - side/2, Width: side, Height: side}
}

// Segment is a straight line between two points.
type Segment struct {
	From Point
	To   Point
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.From.Dist(s.To)
}

// Polygon is a closed sequence of vertices. The last vertex connects back to the first.
type Polygon []Point

// Bounds returns the bounding rectangle of poly.
func (poly Polygon) Bounds() Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Circle is a disc with a center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Polygon approximates c with n vertices.
func (c Circle) Polygon(n int) Polygon {
	if n < 3 {
		n = 3
	}
	out := make(Polygon, n)
	for i := 0; i < n; i++ {
		out[i] = Polar(c.Center, c.Radius, 2*math.Pi*float64(i)/float64(n))
	}
	return out
}
