// Package agent provides the player and enemy controllers: when to request a
// path, and driving the path follower once per tick.
package agent

import (
	"errors"

	"gridwalk/pkg/engine/nav"
	"gridwalk/pkg/engine/world"
)

// ErrBlockedTarget is returned when a player selects an obstacle cell
var ErrBlockedTarget = errors.New("agent: target cell is blocked")

// Kind identifies the controller variant
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Locator is anything with a world position an agent can chase
type Locator interface {
	Position() world.Position
}

// Controller is one mobile entity ticked by the driver
type Controller interface {
	Locator
	Kind() Kind
	Cell() world.Cell
	Motion() *nav.Motion
	Speed() float64
	Tick(dt float64) error
}

// base holds the state shared by every controller variant
type base struct {
	planner *nav.Planner
	motion  *nav.Motion
	speed   float64
}

func newBase(planner *nav.Planner, start world.Cell, speed float64) base {
	return base{
		planner: planner,
		motion:  nav.NewMotion(planner.Grid().Mapper().ToWorld(start)),
		speed:   speed,
	}
}

// Position returns the agent's current world position
func (b *base) Position() world.Position {
	return b.motion.Position
}

// Cell returns the cell the agent currently occupies
func (b *base) Cell() world.Cell {
	return b.planner.Grid().Mapper().ToGrid(b.motion.Position)
}

// Motion returns the agent's motion state
func (b *base) Motion() *nav.Motion {
	return b.motion
}

// Speed returns the movement speed in world units per second
func (b *base) Speed() float64 {
	return b.speed
}

// follow plans to goal and starts following the result, replacing any active path.
// No path leaves the current motion untouched.
func (b *base) follow(goal world.Cell) (*nav.Path, error) {
	path, err := b.planner.FindPath(b.motion.Position, b.planner.Grid().Mapper().ToWorld(goal))
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, nil
	}
	if path.Len() == 0 {
		// Preempted between tiles: finish on the goal tile rather than stopping short
		centre := b.planner.Grid().Mapper().ToWorld(goal)
		if world.Distance(b.motion.Position, centre) > nav.Epsilon {
			path.Waypoints = []world.Position{centre}
			path.Cells = []world.Cell{goal}
		}
	}
	nav.Start(b.motion, path)
	return path, nil
}
