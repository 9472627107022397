// Package nav provides breadth-first path planning over a world.Grid and
// the per-tick path follower that moves an agent along a planned path.
package nav

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/queue"

	"gridwalk/pkg/engine/world"
)

// ErrOutOfRange is returned when a start or goal position maps outside the grid
var ErrOutOfRange = errors.New("nav: cell out of range")

// Path is an ordered list of waypoints from (excluding) the start cell to
// (including) the goal cell. A nil *Path means no path exists; a non-nil
// empty Path means start and goal are the same cell.
type Path struct {
	Waypoints []world.Position
	Cells     []world.Cell

	// Expanded is the number of cells popped from the frontier
	Expanded int
}

// Len returns the number of waypoints (0 for a nil path)
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Waypoints)
}

// Goal returns the final cell of the path, or false if the path has no waypoints
func (p *Path) Goal() (world.Cell, bool) {
	if p.Len() == 0 {
		return world.Cell{}, false
	}
	return p.Cells[len(p.Cells)-1], true
}

// Planner finds shortest 4-directional paths on a read-only grid
type Planner struct {
	grid *world.Grid
}

// NewPlanner creates a planner over grid
func NewPlanner(grid *world.Grid) *Planner {
	return &Planner{grid: grid}
}

// Grid returns the grid the planner searches
func (p *Planner) Grid() *world.Grid {
	return p.grid
}

// FindPath maps start and goal to cells and plans between them.
// See FindCellPath for the result contract.
func (p *Planner) FindPath(start, goal world.Position) (*Path, error) {
	m := p.grid.Mapper()
	return p.FindCellPath(m.ToGrid(start), m.ToGrid(goal))
}

// FindCellPath runs a breadth-first search from start to goal.
// It returns ErrOutOfRange if either cell is outside the grid, and a nil path
// with a nil error if goal cannot be reached. A blocked goal is not special-cased:
// the search exhausts the reachable area and reports no path.
func (p *Planner) FindCellPath(start, goal world.Cell) (*Path, error) {
	if !p.grid.InBounds(start) {
		return nil, fmt.Errorf("nav: start %v: %w", start, ErrOutOfRange)
	}
	if !p.grid.InBounds(goal) {
		return nil, fmt.Errorf("nav: goal %v: %w", goal, ErrOutOfRange)
	}

	frontier := queue.New[world.Cell]()
	frontier.Enqueue(start)

	cameFrom := make(map[world.Cell]world.Cell, p.grid.Width()*p.grid.Height())
	cameFrom[start] = start

	expanded := 0
	for !frontier.Empty() {
		current := frontier.Dequeue()
		expanded++

		if current == goal {
			path := p.reconstruct(cameFrom, start, goal)
			path.Expanded = expanded
			return path, nil
		}

		for _, next := range p.grid.Neighbors(current) {
			if _, seen := cameFrom[next]; seen {
				continue
			}
			if p.grid.IsBlocked(next) {
				continue
			}
			cameFrom[next] = current
			frontier.Enqueue(next)
		}
	}

	return nil, nil
}

func (p *Planner) reconstruct(cameFrom map[world.Cell]world.Cell, start, goal world.Cell) *Path {
	cells := make([]world.Cell, 0, world.ManhattanDistance(start, goal))
	for current := goal; current != start; current = cameFrom[current] {
		cells = append(cells, current)
	}

	// reverse
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	m := p.grid.Mapper()
	waypoints := make([]world.Position, len(cells))
	for i, c := range cells {
		waypoints[i] = m.ToWorld(c)
	}
	return &Path{Waypoints: waypoints, Cells: cells}
}
