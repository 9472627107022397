package nav

import "gridwalk/pkg/engine/world"

// Epsilon is the distance at which an agent counts as standing on a waypoint
const Epsilon = 1e-6

// Motion is an agent's motion state. It carries everything Advance needs to
// resume on the next tick, so following a path is just calling Advance once per tick.
type Motion struct {
	Position  world.Position
	Following bool

	path  *Path
	index int
}

// NewMotion creates an idle motion state at pos
func NewMotion(pos world.Position) *Motion {
	return &Motion{Position: pos}
}

// Start begins following path from the current position, replacing any active path.
// A nil or empty path leaves the motion idle.
func Start(m *Motion, path *Path) {
	m.path = path
	m.index = 0
	m.Following = path.Len() > 0
	if !m.Following {
		m.path = nil
	}
}

// Stop cancels the active path. The agent stays where it is.
func Stop(m *Motion) {
	m.path = nil
	m.index = 0
	m.Following = false
}

// Path returns the active path, or nil when idle
func (m *Motion) Path() *Path {
	return m.path
}

// Target returns the waypoint currently being approached
func (m *Motion) Target() (world.Position, bool) {
	if !m.Following || m.path == nil || m.index >= len(m.path.Waypoints) {
		return world.Position{}, false
	}
	return m.path.Waypoints[m.index], true
}

// Remaining returns the cells still ahead, the current target first
func (m *Motion) Remaining() []world.Cell {
	if !m.Following || m.path == nil {
		return nil
	}
	return m.path.Cells[m.index:]
}

// Advance moves the agent toward its current waypoint by at most speed*dt
// without overshooting. On reaching the waypoint the position snaps to it and the
// next waypoint becomes the target; after the last one the motion goes idle.
// Calling Advance on an idle motion does nothing.
func Advance(m *Motion, speed, dt float64) {
	target, ok := m.Target()
	if !ok {
		m.Following = false
		m.path = nil
		return
	}

	step := speed * dt
	if step < 0 {
		step = 0
	}
	m.Position = world.MoveTowards(m.Position, target, step)

	if world.Distance(m.Position, target) > Epsilon {
		return
	}
	m.Position = target
	m.index++
	if m.index >= len(m.path.Waypoints) {
		m.Following = false
		m.path = nil
		m.index = 0
	}
}
