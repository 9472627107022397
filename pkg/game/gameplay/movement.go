package gameplay

import (
	"errors"
	"log"

	"gridwalk/pkg/engine/nav"
	"gridwalk/pkg/engine/world"
	"gridwalk/pkg/game/agent"
	"gridwalk/pkg/game/state"
)

// Step ticks every agent once, player first, then enemies in spawn order.
// Agent errors are logged and do not stop the other agents.
func Step(s *state.Session, dt float64) {
	for _, a := range s.Agents() {
		if err := a.Tick(dt); err != nil {
			log.Printf("gameplay: step %d: %v: %v", s.Steps, a.Kind(), err)
		}
	}
	s.Steps++
}

// Run calls Step n times with a fixed dt
func Run(s *state.Session, dt float64, n int) {
	for i := 0; i < n; i++ {
		Step(s, dt)
	}
}

// Select asks the player to walk to c and logs the outcome
func Select(s *state.Session, c world.Cell) *nav.Path {
	path, err := s.Player.Select(c)
	switch {
	case errors.Is(err, nav.ErrOutOfRange):
		logMessage(s, "OUT_OF_RANGE", c)
		return nil
	case errors.Is(err, agent.ErrBlockedTarget):
		logMessage(s, "TARGET_BLOCKED", c)
		return nil
	case err != nil:
		log.Printf("gameplay: select %v: %v", c, err)
		return nil
	}

	s.Cursor = c
	switch {
	case path == nil:
		logMessage(s, "NO_PATH", c)
	case path.Len() == 0:
		logMessage(s, "ALREADY_THERE", c)
	default:
		log.Printf("gameplay: path to %v: %d tiles, %d cells expanded", c, path.Len(), path.Expanded)
		logMessage(s, "PATH_FOUND", c, path.Len())
	}
	return path
}

// MoveCursor shifts the hovered cell, staying inside the grid
func MoveCursor(s *state.Session, dx, dy int) {
	next := world.Cell{X: s.Cursor.X + dx, Y: s.Cursor.Y + dy}
	if s.Grid.InBounds(next) {
		s.Cursor = next
	}
}
