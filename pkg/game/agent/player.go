package agent

import (
	"fmt"

	"gridwalk/pkg/engine/nav"
	"gridwalk/pkg/engine/world"
)

// Player moves to whichever cell was last selected
type Player struct {
	base
}

// NewPlayer creates a player standing on start
func NewPlayer(planner *nav.Planner, start world.Cell, speed float64) *Player {
	return &Player{base: newBase(planner, start, speed)}
}

// Kind returns KindPlayer
func (p *Player) Kind() Kind {
	return KindPlayer
}

// Select handles a "select target cell" event. Out-of-range and blocked cells are
// refused before any planning. Otherwise the player plans from where it stands and,
// if a path exists, follows it, preempting any path in progress.
// A nil path with a nil error means the cell is unreachable.
func (p *Player) Select(c world.Cell) (*nav.Path, error) {
	grid := p.planner.Grid()
	if !grid.InBounds(c) {
		return nil, fmt.Errorf("agent: select %v: %w", c, nav.ErrOutOfRange)
	}
	if grid.IsBlocked(c) {
		return nil, fmt.Errorf("agent: select %v: %w", c, ErrBlockedTarget)
	}
	return p.follow(c)
}

// Tick advances the player along its path
func (p *Player) Tick(dt float64) error {
	nav.Advance(p.motion, p.speed, dt)
	return nil
}
