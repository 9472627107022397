package state

import (
	"gridwalk/pkg/engine/nav"
	"gridwalk/pkg/engine/world"
	"gridwalk/pkg/game/agent"
	"gridwalk/pkg/game/level"
)

// MaxMessages is how many log lines a session keeps
const MaxMessages = 5

// Session is one loaded level with its agents
type Session struct {
	Level   *level.Level
	Grid    *world.Grid
	Planner *nav.Planner

	Player  *agent.Player
	Enemies []*agent.Enemy

	// Cursor is the hovered cell, moved by the arrow keys or the mouse
	Cursor world.Cell

	Messages []string

	Steps int // Ticks run since the level was loaded
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	if len(s.Messages) > MaxMessages {
		s.Messages = s.Messages[len(s.Messages)-MaxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// Agents returns every controller in tick order: the player, then enemies as spawned
func (s *Session) Agents() []agent.Controller {
	agents := make([]agent.Controller, 0, 1+len(s.Enemies))
	if s.Player != nil {
		agents = append(agents, s.Player)
	}
	for _, e := range s.Enemies {
		agents = append(agents, e)
	}
	return agents
}

// EnemyAt reports whether any enemy currently occupies c
func (s *Session) EnemyAt(c world.Cell) bool {
	for _, e := range s.Enemies {
		if e.Cell() == c {
			return true
		}
	}
	return false
}
