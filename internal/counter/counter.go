// Package counter holds the clamped glass counter.
package counter

import "strconv"

// Segments is the number of glasses the gauge is divided into.
const Segments = 8

// DefaultStart is the counter value shown on first launch.
const DefaultStart = 5

// Counter is an integer clamped to [0, Max].
type Counter struct {
	value int
	max   int
}

// New returns a counter clamped to [0, limit]. A non-positive limit falls back to Segments.
func New(value, limit int) *Counter {
	if limit <= 0 {
		limit = Segments
	}
	c := &Counter{max: limit}
	c.value = c.clamp(value)
	return c
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}

// Max returns the upper bound.
func (c *Counter) Max() int {
	return c.max
}

// Increment adds one glass. It reports false when already at Max.
func (c *Counter) Increment() bool {
	if c.value >= c.max {
		return false
	}
	c.value++
	return true
}

// Decrement removes one glass. It reports false when already at zero.
func (c *Counter) Decrement() bool {
	if c.value <= 0 {
		return false
	}
	c.value--
	return true
}

// String returns the counter label text.
func (c *Counter) String() string {
	return strconv.Itoa(c.value)
}

func (c *Counter) clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > c.max {
		return c.max
	}
	return v
}
