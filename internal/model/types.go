// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Default palette colors.
const (
	DefaultOutlineHex    = "#2F6FDB"
	DefaultCounterHex    = "#F0A04B"
	DefaultGraphStartHex = "#FCE9DE"
	DefaultGraphEndHex   = "#FC4F08"
	DefaultButtonHex     = "#11707C"
)

// DefaultAverageLabel is the text the graph average is appended to.
const DefaultAverageLabel = "Average:"

// Palette holds the widget colors.
type Palette struct {
	Outline    colorful.Color
	Counter    colorful.Color
	GraphStart colorful.Color
	GraphEnd   colorful.Color
	Button     colorful.Color
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		Outline:    mustHex(DefaultOutlineHex),
		Counter:    mustHex(DefaultCounterHex),
		GraphStart: mustHex(DefaultGraphStartHex),
		GraphEnd:   mustHex(DefaultGraphEndHex),
		Button:     mustHex(DefaultButtonHex),
	}
}

// ParseColor parses a #rrggbb or #rgb color.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Config defines resolved application settings.
type Config struct {
	Start        int
	Samples      []int
	FlipDuration time.Duration
	AverageLabel string
	Palette      Palette
}
