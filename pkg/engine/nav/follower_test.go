package nav

import (
	"testing"

	"gridwalk/pkg/engine/world"
)

func TestAdvance_ReachesGoalExactly(t *testing.T) {
	g := makeGrid(t, 10, 10)
	p := NewPlanner(g)
	m := g.Mapper()

	path, err := p.FindCellPath(world.Cell{X: 0, Y: 0}, world.Cell{X: 3, Y: 2})
	if err != nil || path == nil {
		t.Fatalf("FindCellPath = %v, %v", path, err)
	}

	motion := NewMotion(m.ToWorld(world.Cell{}))
	Start(motion, path)
	if !motion.Following {
		t.Fatal("Following = false after Start with a 5-waypoint path")
	}

	const speed, dt = 5.0, 1.0 / 60.0
	// Each hop is one spacing long; allow one extra tick per waypoint for the snap.
	limit := int(float64(path.Len())*world.DefaultSpacing/(speed*dt)) + path.Len() + 1
	ticks := 0
	for motion.Following {
		Advance(motion, speed, dt)
		ticks++
		if ticks > limit {
			t.Fatalf("still following after %d ticks", ticks)
		}
	}

	want := m.ToWorld(world.Cell{X: 3, Y: 2})
	if motion.Position != want {
		t.Errorf("final position = %v, want %v", motion.Position, want)
	}
	if motion.Path() != nil {
		t.Error("Path() != nil after reaching the goal")
	}
}

func TestAdvance_NeverOvershoots(t *testing.T) {
	path := &Path{
		Waypoints: []world.Position{{X: 1}},
		Cells:     []world.Cell{{X: 1}},
	}
	motion := NewMotion(world.Position{})
	Start(motion, path)

	Advance(motion, 100, 1)
	if motion.Position != (world.Position{X: 1}) {
		t.Errorf("position = %v, want clamp to waypoint", motion.Position)
	}
	if motion.Following {
		t.Error("Following = true after the only waypoint was reached")
	}
}

func TestAdvance_BoundedStep(t *testing.T) {
	path := &Path{
		Waypoints: []world.Position{{X: 2}},
		Cells:     []world.Cell{{X: 2}},
	}
	motion := NewMotion(world.Position{})
	Start(motion, path)

	Advance(motion, 0.5, 1)
	if motion.Position != (world.Position{X: 0.5}) {
		t.Errorf("position after one tick = %v, want (0.50, 0.00, 0.00)", motion.Position)
	}
	if !motion.Following {
		t.Error("Following = false mid-segment")
	}
	if target, ok := motion.Target(); !ok || target != (world.Position{X: 2}) {
		t.Errorf("Target() = %v, %v, want (2.00, 0.00, 0.00), true", target, ok)
	}
}

func TestStart_EmptyPathIsIdle(t *testing.T) {
	g := makeGrid(t, 10, 10)
	p := NewPlanner(g)
	path, _ := p.FindCellPath(world.Cell{}, world.Cell{})

	motion := NewMotion(world.Position{})
	Start(motion, path)
	if motion.Following {
		t.Error("Following = true after Start with an empty path")
	}
	Start(motion, nil)
	if motion.Following {
		t.Error("Following = true after Start with a nil path")
	}
	Advance(motion, 5, 1)
	if motion.Position != (world.Position{}) {
		t.Errorf("idle Advance moved the agent to %v", motion.Position)
	}
}

func TestStart_PreemptsActivePath(t *testing.T) {
	first := &Path{
		Waypoints: []world.Position{{X: 1}, {X: 2}},
		Cells:     []world.Cell{{X: 1}, {X: 2}},
	}
	second := &Path{
		Waypoints: []world.Position{{Z: 1}},
		Cells:     []world.Cell{{Y: 1}},
	}
	motion := NewMotion(world.Position{})
	Start(motion, first)
	Advance(motion, 0.5, 1)

	Start(motion, second)
	if motion.Path() != second {
		t.Fatal("Path() is not the replacement path")
	}
	if motion.Position != (world.Position{X: 0.5}) {
		t.Errorf("preemption moved the agent to %v", motion.Position)
	}
	for motion.Following {
		Advance(motion, 0.25, 1)
	}
	if motion.Position != (world.Position{Z: 1}) {
		t.Errorf("final position = %v, want the replacement goal", motion.Position)
	}
}

func TestStop_CancelsPath(t *testing.T) {
	path := &Path{
		Waypoints: []world.Position{{X: 1}},
		Cells:     []world.Cell{{X: 1}},
	}
	motion := NewMotion(world.Position{})
	Start(motion, path)
	Stop(motion)
	if motion.Following || motion.Path() != nil || motion.Remaining() != nil {
		t.Error("Stop left an active path behind")
	}
}

func TestMotion_Remaining(t *testing.T) {
	path := &Path{
		Waypoints: []world.Position{{X: 1}, {X: 2}, {X: 3}},
		Cells:     []world.Cell{{X: 1}, {X: 2}, {X: 3}},
	}
	motion := NewMotion(world.Position{})
	Start(motion, path)
	Advance(motion, 1, 1)
	rest := motion.Remaining()
	if len(rest) != 2 || rest[0] != (world.Cell{X: 2}) {
		t.Errorf("Remaining() = %v, want [(2, 0) (3, 0)]", rest)
	}
}
