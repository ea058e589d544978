// Package screen models which widget is visible and the flip between them.
package screen

import "time"

// DefaultFlipDuration is how long a flip transition runs.
const DefaultFlipDuration = 700 * time.Millisecond

// View is the widget shown in the container.
type View int

const (
	// ShowingCounter is the gauge.
	ShowingCounter View = iota
	// ShowingGraph is the weekly chart.
	ShowingGraph
)

func (v View) String() string {
	if v == ShowingGraph {
		return "graph"
	}
	return "counter"
}

// Direction is the side a flip turns from.
type Direction int

const (
	// FlipFromLeft is used when hiding the graph.
	FlipFromLeft Direction = iota
	// FlipFromRight is used when showing the graph.
	FlipFromRight
)

func (d Direction) String() string {
	if d == FlipFromRight {
		return "from-right"
	}
	return "from-left"
}

// Transition describes one flip between views.
type Transition struct {
	From      View
	To        View
	Direction Direction
	Duration  time.Duration
}

// State is the two-state visibility machine.
type State struct {
	view     View
	duration time.Duration
}

// New returns a state showing the counter. A non-positive duration uses DefaultFlipDuration.
func New(duration time.Duration) State {
	if duration <= 0 {
		duration = DefaultFlipDuration
	}
	return State{view: ShowingCounter, duration: duration}
}

// View returns the visible widget.
func (s State) View() View {
	return s.view
}

// GraphShowing reports whether the graph is visible.
func (s State) GraphShowing() bool {
	return s.view == ShowingGraph
}

// Toggle switches views and returns the transition to play.
func (s *State) Toggle() Transition {
	t := Transition{From: s.view, Duration: s.duration}
	if s.view == ShowingGraph {
		t.To = ShowingCounter
		t.Direction = FlipFromLeft
	} else {
		t.To = ShowingGraph
		t.Direction = FlipFromRight
	}
	s.view = t.To
	return t
}
