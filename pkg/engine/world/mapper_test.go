package world

import (
	"math"
	"testing"
)

func TestMapper_RoundTrip(t *testing.T) {
	m := NewMapper(DefaultSpacing)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := Cell{X: x, Y: y}
			if got := m.ToGrid(m.ToWorld(c)); got != c {
				t.Errorf("ToGrid(ToWorld(%v)) = %v", c, got)
			}
		}
	}
}

func TestMapper_ToGridTruncates(t *testing.T) {
	m := NewMapper(1.1)
	tests := []struct {
		name string
		p    Position
		want Cell
	}{
		{"origin", Position{}, Cell{0, 0}},
		{"just below next cell", Position{X: 2.19, Z: 1.09}, Cell{1, 0}},
		{"midway rounds down", Position{X: 1.65, Z: 3.85}, Cell{1, 3}},
		{"small negative truncates to zero", Position{X: -0.5, Z: 0}, Cell{0, 0}},
		{"large negative", Position{X: -1.2, Z: 0}, Cell{-1, 0}},
		{"height ignored", Position{X: 1.1, Y: 5, Z: 1.1}, Cell{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ToGrid(tt.p); got != tt.want {
				t.Errorf("ToGrid(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMapper_DefaultSpacing(t *testing.T) {
	if got := NewMapper(0).Spacing(); got != DefaultSpacing {
		t.Errorf("NewMapper(0).Spacing() = %v, want %v", got, DefaultSpacing)
	}
	var zero Mapper
	if got := zero.Spacing(); got != DefaultSpacing {
		t.Errorf("zero Mapper Spacing() = %v, want %v", got, DefaultSpacing)
	}
}

func TestMoveTowards(t *testing.T) {
	from := Position{}
	to := Position{X: 3, Z: 4}

	got := MoveTowards(from, to, 1)
	if math.Abs(Distance(from, got)-1) > 1e-12 {
		t.Errorf("step length = %v, want 1", Distance(from, got))
	}
	if math.Abs(got.X-0.6) > 1e-12 || math.Abs(got.Z-0.8) > 1e-12 {
		t.Errorf("MoveTowards = %v, want (0.60, 0.00, 0.80)", got)
	}

	if got := MoveTowards(from, to, 10); got != to {
		t.Errorf("overshooting step = %v, want clamp to %v", got, to)
	}
	if got := MoveTowards(from, to, 0); got != from {
		t.Errorf("zero step = %v, want %v", got, from)
	}
}

func TestDirection_DeltaOrder(t *testing.T) {
	want := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for i, d := range AllDirections() {
		dx, dy := d.Delta()
		if dx != want[i][0] || dy != want[i][1] {
			t.Errorf("%v delta = (%d,%d), want (%d,%d)", d, dx, dy, want[i][0], want[i][1])
		}
	}
	if dx, dy := Direction(42).Delta(); dx != 0 || dy != 0 {
		t.Errorf("Direction(42).Delta() = (%d,%d), want (0,0)", dx, dy)
	}
}

func TestManhattanDistance(t *testing.T) {
	if got := ManhattanDistance(Cell{0, 0}, Cell{3, 2}); got != 5 {
		t.Errorf("ManhattanDistance = %d, want 5", got)
	}
	if got := ManhattanDistance(Cell{4, 1}, Cell{1, 5}); got != 7 {
		t.Errorf("ManhattanDistance = %d, want 7", got)
	}
}
