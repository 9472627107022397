// Package gameplay drives a session: building it from a level, ticking agents and
// applying player intents.
package gameplay

import (
	"fmt"
	"log"

	"gridwalk/pkg/engine/nav"
	"gridwalk/pkg/game/agent"
	"gridwalk/pkg/game/i18n"
	"gridwalk/pkg/game/level"
	"gridwalk/pkg/game/state"
)

// NewSession builds the grid, planner and agents described by lvl.
// Every spawn speed is multiplied by speedScale; a non-positive scale means 1.
func NewSession(lvl *level.Level, speedScale float64) (*state.Session, error) {
	if speedScale <= 0 {
		speedScale = 1
	}

	grid, err := lvl.Grid()
	if err != nil {
		return nil, fmt.Errorf("gameplay: new session: %w", err)
	}
	planner := nav.NewPlanner(grid)

	s := &state.Session{
		Level:    lvl,
		Grid:     grid,
		Planner:  planner,
		Messages: make([]string, 0),
	}
	s.Player = agent.NewPlayer(planner, lvl.Player.Cell(), lvl.Player.Speed*speedScale)
	s.Cursor = lvl.Player.Cell()
	for _, sp := range lvl.Enemies {
		s.Enemies = append(s.Enemies, agent.NewEnemy(planner, sp.Cell(), sp.Speed*speedScale, s.Player))
	}

	log.Printf("gameplay: loaded level %q (%dx%d, spacing %.2f, %d obstacles, %d enemies)",
		lvl.Name, lvl.Width, lvl.Height, lvl.Spacing, grid.BlockedCount(), len(s.Enemies))
	logMessage(s, "LEVEL_LOADED", lvl.Name, lvl.Width, lvl.Height)
	return s, nil
}

// Reload replaces the session's level, grid and agents with a fresh build of lvl.
// The message log carries over. On error the session is left unchanged.
func Reload(s *state.Session, lvl *level.Level, speedScale float64) error {
	fresh, err := NewSession(lvl, speedScale)
	if err != nil {
		logMessage(s, "RELOAD_FAILED", err)
		return err
	}

	previous := s.Messages
	*s = *fresh
	s.Messages = previous
	for _, msg := range fresh.Messages {
		s.AddMessage(msg)
	}
	logMessage(s, "RELOADED")
	return nil
}

// logMessage adds a translated message to the session's message log
func logMessage(s *state.Session, key string, args ...any) {
	s.AddMessage(i18n.T(key, args...))
}
