// Package graph computes the geometry of the daily intake line chart.
package graph

import (
	"errors"
	"fmt"
)

// DefaultSamples is the built-in week of intake values, oldest day first.
var DefaultSamples = []int{4, 2, 6, 4, 5, 8, 3}

var (
	// ErrTooFewSamples means the series cannot span an x axis.
	ErrTooFewSamples = errors.New("series needs at least 2 samples")
	// ErrNegativeSample means a sample is below zero.
	ErrNegativeSample = errors.New("series samples must be non-negative")
	// ErrZeroPeak means every sample is zero, so the y axis has no scale.
	ErrZeroPeak = errors.New("series maximum must be greater than 0")
)

// ConfigError reports an unusable sample series.
type ConfigError struct {
	Samples []int
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid sample series %v: %v", e.Samples, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Series is a validated, immutable sample sequence.
type Series struct {
	values []int
	max    int
	sum    int
}

// NewSeries validates values and returns a series that is safe to map onto axes.
func NewSeries(values []int) (Series, error) {
	if len(values) < 2 {
		return Series{}, &ConfigError{Samples: values, Err: ErrTooFewSamples}
	}
	s := Series{values: make([]int, len(values))}
	copy(s.values, values)
	for _, v := range s.values {
		if v < 0 {
			return Series{}, &ConfigError{Samples: values, Err: ErrNegativeSample}
		}
		if v > s.max {
			s.max = v
		}
		s.sum += v
	}
	if s.max == 0 {
		return Series{}, &ConfigError{Samples: values, Err: ErrZeroPeak}
	}
	return s, nil
}

// MustSeries is NewSeries for values known to be valid.
func MustSeries(values []int) Series {
	s, err := NewSeries(values)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.values)
}

// At returns sample i.
func (s Series) At(i int) int {
	return s.values[i]
}

// Max returns the largest sample.
func (s Series) Max() int {
	return s.max
}

// Values returns a copy of the samples.
func (s Series) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)
	return out
}

// Average returns the integer mean, truncated.
func (s Series) Average() int {
	if len(s.values) == 0 {
		return 0
	}
	return s.sum / len(s.values)
}

// AverageLabel appends the average to the base label text.
func (s Series) AverageLabel(base string) string {
	return fmt.Sprintf("%s %d", base, s.Average())
}
