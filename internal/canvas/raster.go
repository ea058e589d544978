package canvas

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/verte-zerg/hydro/internal/geom"
)

const discVertices = 24

// Line draws a one dot wide line between a and b.
func (c *Canvas) Line(a, b geom.Point, col colorful.Color) {
	a, b = c.apply(a), c.apply(b)
	drawLine(dotCoord(a.X), dotCoord(a.Y), dotCoord(b.X), dotCoord(b.Y), func(x, y int) {
		c.Set(x, y, col)
	})
}

// Polyline strokes the connected points with the given width in dots.
// When closed, the last point connects back to the first.
func (c *Canvas) Polyline(pts []geom.Point, closed bool, width float64, col colorful.Color) {
	if len(pts) == 0 {
		return
	}
	segs := make([]geom.Segment, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		segs = append(segs, geom.Segment{From: pts[i-1], To: pts[i]})
	}
	if closed && len(pts) > 2 {
		segs = append(segs, geom.Segment{From: pts[len(pts)-1], To: pts[0]})
	}
	if len(segs) == 0 {
		segs = append(segs, geom.Segment{From: pts[0], To: pts[0]})
	}
	for _, s := range segs {
		c.Stroke(s, width, col)
	}
}

// Stroke draws a segment with the given width in dots. Widths up to 1.5 use a
// plain line; wider strokes fill a quad with round joints.
func (c *Canvas) Stroke(s geom.Segment, width float64, col colorful.Color) {
	if width <= 1.5 {
		c.Line(s.From, s.To, col)
		return
	}
	half := width / 2
	length := s.Length()
	if length > 0 {
		nx := -(s.To.Y - s.From.Y) / length * half
		ny := (s.To.X - s.From.X) / length * half
		n := geom.Point{X: nx, Y: ny}
		c.FillPolygon(geom.Polygon{
			s.From.Add(n),
			s.To.Add(n),
			s.To.Sub(n),
			s.From.Sub(n),
		}, col)
	}
	c.FillCircle(geom.Circle{Center: s.From, Radius: half}, col)
	c.FillCircle(geom.Circle{Center: s.To, Radius: half}, col)
}

// FillCircle fills a disc. Discs smaller than a dot still light their center.
func (c *Canvas) FillCircle(circle geom.Circle, col colorful.Color) {
	c.FillPolygon(circle.Polygon(discVertices), col)
	center := c.apply(circle.Center)
	c.Set(dotCoord(center.X), dotCoord(center.Y), col)
}

// FillPolygon lights every dot whose center lies inside poly (even-odd rule).
func (c *Canvas) FillPolygon(poly geom.Polygon, col colorful.Color) {
	if len(poly) < 3 {
		return
	}
	pts := geom.Polygon(c.applyAll(poly))
	b := pts.Bounds()
	y0 := clampInt(int(math.Floor(b.Y)), 0, c.Height()-1)
	y1 := clampInt(int(math.Ceil(b.Y+b.Height)), 0, c.Height()-1)
	for y := y0; y <= y1; y++ {
		xs := spans(pts, float64(y)+0.5)
		for i := 0; i+1 < len(xs); i += 2 {
			from := int(math.Ceil(xs[i] - 0.5))
			to := int(math.Ceil(xs[i+1]-0.5)) - 1
			for x := clampInt(from, 0, c.Width()); x <= to && x < c.Width(); x++ {
				c.Set(x, y, col)
			}
		}
	}
}

// ShadePolygon sets the background of every cell whose center lies inside
// poly. colorAt receives the dot-space y of the cell center.
func (c *Canvas) ShadePolygon(poly geom.Polygon, colorAt func(y float64) colorful.Color) {
	if len(poly) < 3 {
		return
	}
	pts := geom.Polygon(c.applyAll(poly))
	for cy := 0; cy < c.rows; cy++ {
		yc := float64(cy*dotsPerRow) + dotsPerRow/2
		xs := spans(pts, yc)
		if len(xs) < 2 {
			continue
		}
		col := colorAt(yc)
		for cx := 0; cx < c.cols; cx++ {
			xc := float64(cx*dotsPerCol) + dotsPerCol/2
			if insideSpans(xs, xc) {
				c.setBackground(cx, cy, col)
			}
		}
	}
}

// spans returns the sorted x coordinates where the horizontal line at y
// crosses the polygon edges.
func spans(poly geom.Polygon, y float64) []float64 {
	var xs []float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if (a.Y <= y && y < b.Y) || (b.Y <= y && y < a.Y) {
			xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
	}
	sort.Float64s(xs)
	return xs
}

func insideSpans(xs []float64, x float64) bool {
	for i := 0; i+1 < len(xs); i += 2 {
		if x >= xs[i] && x < xs[i+1] {
			return true
		}
	}
	return false
}

func dotCoord(v float64) int {
	return int(math.Floor(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}
