package screen

import (
	"math"
	"time"
)

// Flip tracks a running transition against wall-clock time.
type Flip struct {
	Transition Transition
	StartedAt  time.Time
}

// NewFlip starts t at now.
func NewFlip(t Transition, now time.Time) *Flip {
	return &Flip{Transition: t, StartedAt: now}
}

// Progress returns the linear completion in [0, 1].
func (f *Flip) Progress(now time.Time) float64 {
	if f == nil || f.Transition.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(f.StartedAt)) / float64(f.Transition.Duration)
	return math.Max(0, math.Min(1, p))
}

// Done reports whether the flip has finished.
func (f *Flip) Done(now time.Time) bool {
	return f.Progress(now) >= 1
}

// Frame describes what to draw at one instant of a flip.
type Frame struct {
	// View is the face currently turned toward the viewer.
	View View
	// Scale is the horizontal squeeze of that face in [0, 1].
	Scale float64
	// Pivot is the normalized x the face collapses toward: 0 left edge, 1 right edge.
	Pivot float64
}

// FrameAt returns the face, squeeze, and pivot at now. The old face collapses
// during the first half and the new face expands during the second.
func (f *Flip) FrameAt(now time.Time) Frame {
	p := f.Progress(now)
	scale := math.Abs(math.Cos(p * math.Pi))
	view := f.Transition.From
	if p >= 0.5 {
		view = f.Transition.To
	}
	// From the left, the old face folds toward the right edge and the new one
	// unfolds from the left edge; from the right it is mirrored.
	pivot := 1.0
	if p >= 0.5 {
		pivot = 0
	}
	if f.Transition.Direction == FlipFromRight {
		pivot = 1 - pivot
	}
	return Frame{View: view, Scale: scale, Pivot: pivot}
}
