package agent

import (
	"fmt"
	"math"

	"gridwalk/pkg/engine/nav"
	"gridwalk/pkg/engine/world"
)

// Enemy chases a target by walking to the open tile next to it that is closest
// to the enemy. It only re-plans once its previous path is used up.
type Enemy struct {
	base
	target Locator
}

// NewEnemy creates an enemy standing on start that chases target
func NewEnemy(planner *nav.Planner, start world.Cell, speed float64, target Locator) *Enemy {
	return &Enemy{base: newBase(planner, start, speed), target: target}
}

// Kind returns KindEnemy
func (e *Enemy) Kind() Kind {
	return KindEnemy
}

// Target returns what the enemy is chasing
func (e *Enemy) Target() Locator {
	return e.target
}

// Approach picks the tile to walk to: among the open 4-neighbours of targetCell,
// the one nearest the enemy in a straight line. Ties go to the first neighbour in
// expansion order. With no open neighbour the target cell itself is returned.
func (e *Enemy) Approach(targetCell world.Cell) world.Cell {
	grid := e.planner.Grid()
	mapper := grid.Mapper()

	closest := targetCell
	closestDist := math.MaxFloat64
	for _, n := range grid.Neighbors(targetCell) {
		if grid.IsBlocked(n) {
			continue
		}
		d := world.Distance(e.motion.Position, mapper.ToWorld(n))
		if d < closestDist {
			closestDist = d
			closest = n
		}
	}
	return closest
}

// Tick re-plans toward the target when idle, then advances along the path
func (e *Enemy) Tick(dt float64) error {
	if !e.motion.Following && e.target != nil {
		if err := e.chase(); err != nil {
			return err
		}
	}
	nav.Advance(e.motion, e.speed, dt)
	return nil
}

func (e *Enemy) chase() error {
	grid := e.planner.Grid()
	targetCell := grid.Mapper().ToGrid(e.target.Position())
	if !grid.InBounds(targetCell) {
		return fmt.Errorf("agent: chase %v: %w", targetCell, nav.ErrOutOfRange)
	}

	goal := e.Approach(targetCell)
	if grid.IsBlocked(goal) {
		return nil
	}
	if _, err := e.follow(goal); err != nil {
		return fmt.Errorf("agent: chase: %w", err)
	}
	return nil
}
