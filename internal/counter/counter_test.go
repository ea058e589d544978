package counter

import "testing"

func TestNewClamps(t *testing.T) {
	tests := []struct {
		name  string
		value int
		max   int
		want  int
	}{
		{name: "in_range", value: 5, max: 8, want: 5},
		{name: "above", value: 12, max: 8, want: 8},
		{name: "below", value: -3, max: 8, want: 0},
		{name: "default_max", value: 20, max: 0, want: Segments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.value, tt.max).Value(); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestIncrementStopsAtMax(t *testing.T) {
	c := New(Segments, Segments)
	if c.Increment() {
		t.Fatalf("increment at max should report no change")
	}
	if c.Value() != Segments {
		t.Fatalf("expected %d, got %d", Segments, c.Value())
	}
}

func TestDecrementStopsAtZero(t *testing.T) {
	c := New(0, Segments)
	if c.Decrement() {
		t.Fatalf("decrement at zero should report no change")
	}
	if c.Value() != 0 {
		t.Fatalf("expected 0, got %d", c.Value())
	}
}

func TestPressSequence(t *testing.T) {
	c := New(DefaultStart, Segments)
	for i := 0; i < 3; i++ {
		c.Increment()
	}
	if c.Value() != 8 {
		t.Fatalf("expected 8 after three increments, got %d", c.Value())
	}
	c.Increment()
	if c.Value() != 8 {
		t.Fatalf("expected clamp at 8, got %d", c.Value())
	}
	for i := 0; i < 8; i++ {
		c.Decrement()
	}
	if c.Value() != 0 {
		t.Fatalf("expected 0 after eight decrements, got %d", c.Value())
	}
	c.Decrement()
	if c.Value() != 0 {
		t.Fatalf("expected clamp at 0, got %d", c.Value())
	}
	if c.String() != "0" {
		t.Fatalf("unexpected label %q", c.String())
	}
}
