package state

import (
	"fmt"
	"testing"

	"gridwalk/pkg/engine/nav"
	"gridwalk/pkg/engine/world"
	"gridwalk/pkg/game/agent"
)

func TestAddMessage_KeepsLastFive(t *testing.T) {
	s := &Session{}
	for i := 0; i < 8; i++ {
		s.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(s.Messages) != MaxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(s.Messages), MaxMessages)
	}
	if s.Messages[0] != "m3" || s.Messages[4] != "m7" {
		t.Errorf("Messages = %v, want m3..m7", s.Messages)
	}
	s.ClearMessages()
	if len(s.Messages) != 0 {
		t.Errorf("len(Messages) after clear = %d, want 0", len(s.Messages))
	}
}

func TestAgents_PlayerFirst(t *testing.T) {
	planner := nav.NewPlanner(world.NewGrid(5, 5, world.NewMapper(1)))
	p := agent.NewPlayer(planner, world.Cell{}, 1)
	s := &Session{
		Player: p,
		Enemies: []*agent.Enemy{
			agent.NewEnemy(planner, world.Cell{X: 4, Y: 4}, 1, p),
			agent.NewEnemy(planner, world.Cell{X: 4, Y: 0}, 1, p),
		},
	}
	agents := s.Agents()
	if len(agents) != 3 {
		t.Fatalf("len(Agents()) = %d, want 3", len(agents))
	}
	if agents[0].Kind() != agent.KindPlayer {
		t.Errorf("Agents()[0].Kind() = %v, want player", agents[0].Kind())
	}
	if agents[2] != agent.Controller(s.Enemies[1]) {
		t.Error("enemies not in spawn order")
	}
	if !s.EnemyAt(world.Cell{X: 4, Y: 0}) || s.EnemyAt(world.Cell{X: 2, Y: 2}) {
		t.Error("EnemyAt reported the wrong cells")
	}
}
