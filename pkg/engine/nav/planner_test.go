package nav

import (
	"errors"
	"testing"

	"gridwalk/pkg/engine/world"
)

// makeGrid creates a w x h grid with the given cells blocked
func makeGrid(t *testing.T, w, h int, blocked ...world.Cell) *world.Grid {
	t.Helper()
	g := world.NewGrid(w, h, world.NewMapper(world.DefaultSpacing))
	for _, c := range blocked {
		if !g.MarkBlocked(c) {
			t.Fatalf("MarkBlocked(%v) failed", c)
		}
	}
	return g
}

func cellsEqual(a, b []world.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindPath_ConcreteScenario(t *testing.T) {
	g := makeGrid(t, 10, 10)
	p := NewPlanner(g)
	m := g.Mapper()

	path, err := p.FindPath(m.ToWorld(world.Cell{X: 0, Y: 0}), m.ToWorld(world.Cell{X: 3, Y: 2}))
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	want := []world.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}}
	if !cellsEqual(path.Cells, want) {
		t.Fatalf("path cells = %v, want %v", path.Cells, want)
	}
	if path.Len() != 5 {
		t.Fatalf("path.Len() = %d, want 5", path.Len())
	}
	for i, c := range want {
		if path.Waypoints[i] != m.ToWorld(c) {
			t.Errorf("waypoint %d = %v, want %v", i, path.Waypoints[i], m.ToWorld(c))
		}
	}
}

func TestFindPath_ManhattanLengthOnOpenGrid(t *testing.T) {
	g := makeGrid(t, 6, 5)
	p := NewPlanner(g)
	g.ForEachCell(func(start world.Cell, _ bool) {
		g.ForEachCell(func(goal world.Cell, _ bool) {
			path, err := p.FindCellPath(start, goal)
			if err != nil {
				t.Fatalf("FindCellPath(%v, %v): %v", start, goal, err)
			}
			if path == nil {
				t.Fatalf("FindCellPath(%v, %v) = nil, want a path", start, goal)
			}
			if got, want := path.Len(), world.ManhattanDistance(start, goal); got != want {
				t.Errorf("FindCellPath(%v, %v) length = %d, want %d", start, goal, got, want)
			}
		})
	})
}

func TestFindPath_StartEqualsGoal(t *testing.T) {
	g := makeGrid(t, 10, 10)
	p := NewPlanner(g)
	path, err := p.FindCellPath(world.Cell{}, world.Cell{})
	if err != nil {
		t.Fatalf("FindCellPath: %v", err)
	}
	if path == nil {
		t.Fatal("FindCellPath(start, start) = nil, want empty path")
	}
	if path.Len() != 0 {
		t.Errorf("path.Len() = %d, want 0", path.Len())
	}
	if _, ok := path.Goal(); ok {
		t.Error("empty path Goal() ok = true, want false")
	}
}

func TestFindPath_EnclosedGoal(t *testing.T) {
	goal := world.Cell{X: 5, Y: 5}
	g := makeGrid(t, 10, 10, world.Cell{X: 6, Y: 5}, world.Cell{X: 4, Y: 5}, world.Cell{X: 5, Y: 6}, world.Cell{X: 5, Y: 4})
	p := NewPlanner(g)
	path, err := p.FindCellPath(world.Cell{}, goal)
	if err != nil {
		t.Fatalf("FindCellPath: %v", err)
	}
	if path != nil {
		t.Errorf("FindCellPath to enclosed goal = %v, want nil", path.Cells)
	}
}

func TestFindPath_BlockedGoalTerminates(t *testing.T) {
	g := makeGrid(t, 10, 10, world.Cell{X: 7, Y: 7})
	p := NewPlanner(g)
	path, err := p.FindCellPath(world.Cell{}, world.Cell{X: 7, Y: 7})
	if err != nil || path != nil {
		t.Errorf("FindCellPath to blocked goal = %v, %v, want nil, nil", path, err)
	}
}

func TestFindPath_RoutesAroundWall(t *testing.T) {
	// Wall along x=2 from y=0..3, gap at y=4.
	var wall []world.Cell
	for y := 0; y < 4; y++ {
		wall = append(wall, world.Cell{X: 2, Y: y})
	}
	g := makeGrid(t, 5, 5, wall...)
	p := NewPlanner(g)

	path, err := p.FindCellPath(world.Cell{X: 0, Y: 0}, world.Cell{X: 4, Y: 0})
	if err != nil || path == nil {
		t.Fatalf("FindCellPath = %v, %v, want a path", path, err)
	}
	if path.Len() != 12 {
		t.Errorf("path.Len() = %d, want 12 (detour through gap)", path.Len())
	}
	for _, c := range path.Cells {
		if g.IsBlocked(c) {
			t.Errorf("path passes through blocked cell %v", c)
		}
	}
	prev := world.Cell{X: 0, Y: 0}
	for _, c := range path.Cells {
		if world.ManhattanDistance(prev, c) != 1 {
			t.Errorf("non-adjacent step %v -> %v", prev, c)
		}
		prev = c
	}
}

func TestFindPath_TieBreakDeterministic(t *testing.T) {
	g := makeGrid(t, 3, 3, world.Cell{X: 1, Y: 1})
	p := NewPlanner(g)

	first, err := p.FindCellPath(world.Cell{X: 0, Y: 0}, world.Cell{X: 2, Y: 2})
	if err != nil || first == nil {
		t.Fatalf("FindCellPath = %v, %v", first, err)
	}
	// +x is expanded before +y, so the route along y=0 wins.
	want := []world.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	if !cellsEqual(first.Cells, want) {
		t.Fatalf("path = %v, want %v", first.Cells, want)
	}
	for i := 0; i < 10; i++ {
		again, _ := p.FindCellPath(world.Cell{X: 0, Y: 0}, world.Cell{X: 2, Y: 2})
		if !cellsEqual(again.Cells, first.Cells) {
			t.Fatalf("run %d path = %v, want %v", i, again.Cells, first.Cells)
		}
	}
}

func TestFindPath_OutOfRange(t *testing.T) {
	g := makeGrid(t, 10, 10)
	p := NewPlanner(g)
	m := g.Mapper()
	tests := []struct {
		name        string
		start, goal world.Position
	}{
		{"goal beyond width", m.ToWorld(world.Cell{}), m.ToWorld(world.Cell{X: 10, Y: 0})},
		{"goal beyond height", m.ToWorld(world.Cell{}), m.ToWorld(world.Cell{X: 0, Y: 12})},
		{"start negative", world.Position{X: -5}, m.ToWorld(world.Cell{X: 1, Y: 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := p.FindPath(tt.start, tt.goal)
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("err = %v, want ErrOutOfRange", err)
			}
			if path != nil {
				t.Errorf("path = %v, want nil", path.Cells)
			}
		})
	}
}
