// Package canvas rasterizes widget geometry onto a braille cell grid.
//
// Each terminal cell holds a 2x4 block of dots, so a canvas of c columns and
// r rows is 2c dots wide and 4r dots tall. Within one cell the last color
// drawn owns the cell's dots; backgrounds are tracked per cell.
package canvas

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/verte-zerg/hydro/internal/geom"
)

const (
	dotsPerCol = 2
	dotsPerRow = 4
)

type cell struct {
	mask  uint8
	fg    colorful.Color
	hasFg bool
	bg    colorful.Color
	hasBg bool
}

// Transform maps geometry coordinates to dot coordinates before rasterizing.
type Transform func(geom.Point) geom.Point

// Canvas is a grid of braille cells.
type Canvas struct {
	cols      int
	rows      int
	cells     [][]cell
	transform Transform
}

// New returns an empty canvas of the given size in cells.
func New(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cells := make([][]cell, rows)
	for y := range cells {
		cells[y] = make([]cell, cols)
	}
	return &Canvas{cols: cols, rows: rows, cells: cells}
}

// Cols returns the width in cells.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the height in cells.
func (c *Canvas) Rows() int {
	return c.rows
}

// Width returns the width in dots.
func (c *Canvas) Width() int {
	return c.cols * dotsPerCol
}

// Height returns the height in dots.
func (c *Canvas) Height() int {
	return c.rows * dotsPerRow
}

// Bounds returns the full dot area as a rectangle.
func (c *Canvas) Bounds() geom.Rect {
	return geom.Rect{Width: float64(c.Width()), Height: float64(c.Height())}
}

// SetTransform installs a mapping applied to all geometry drawn afterwards.
// A nil transform draws geometry as is.
func (c *Canvas) SetTransform(t Transform) {
	c.transform = t
}

// SqueezeX returns a transform that scales x by scale around the pivot column,
// given as a fraction of the canvas width.
func (c *Canvas) SqueezeX(scale, pivot float64) Transform {
	px := pivot * float64(c.Width())
	return func(p geom.Point) geom.Point {
		return geom.Point{X: px + (p.X-px)*scale, Y: p.Y}
	}
}

func (c *Canvas) apply(p geom.Point) geom.Point {
	if c.transform == nil {
		return p
	}
	return c.transform(p)
}

func (c *Canvas) applyAll(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = c.apply(p)
	}
	return out
}

// Set lights the dot at (x, y) in color col. Out of range dots are ignored.
func (c *Canvas) Set(x, y int, col colorful.Color) {
	if x < 0 || y < 0 {
		return
	}
	cy := y / dotsPerRow
	cx := x / dotsPerCol
	if cy >= c.rows || cx >= c.cols {
		return
	}
	ce := &c.cells[cy][cx]
	if ce.hasFg && ce.fg != col {
		ce.mask = 0
	}
	ce.fg = col
	ce.hasFg = true
	ce.mask |= brailleDotMask(x%dotsPerCol, y%dotsPerRow)
}

// lit reports whether the dot at (x, y) is set.
func (c *Canvas) lit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	cy := y / dotsPerRow
	cx := x / dotsPerCol
	if cy >= c.rows || cx >= c.cols {
		return false
	}
	return c.cells[cy][cx].mask&brailleDotMask(x%dotsPerCol, y%dotsPerRow) != 0
}

// Foreground returns the dot color of cell (cx, cy) when any dot is lit.
func (c *Canvas) Foreground(cx, cy int) (colorful.Color, bool) {
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return colorful.Color{}, false
	}
	ce := c.cells[cy][cx]
	return ce.fg, ce.hasFg && ce.mask != 0
}

// Background returns the background of cell (cx, cy), if any.
func (c *Canvas) Background(cx, cy int) (colorful.Color, bool) {
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return colorful.Color{}, false
	}
	ce := c.cells[cy][cx]
	return ce.bg, ce.hasBg
}

func (c *Canvas) setBackground(cx, cy int, col colorful.Color) {
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return
	}
	c.cells[cy][cx].bg = col
	c.cells[cy][cx].hasBg = true
}

func brailleDotMask(x, y int) uint8 {
	switch {
	case x == 0 && y == 0:
		return 0x01
	case x == 0 && y == 1:
		return 0x02
	case x == 0 && y == 2:
		return 0x04
	case x == 0 && y == 3:
		return 0x40
	case x == 1 && y == 0:
		return 0x08
	case x == 1 && y == 1:
		return 0x10
	case x == 1 && y == 2:
		return 0x20
	case x == 1 && y == 3:
		return 0x80
	default:
		return 0
	}
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
