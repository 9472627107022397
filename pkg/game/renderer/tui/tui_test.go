package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"gridwalk/pkg/engine/nav"
	"gridwalk/pkg/engine/world"
	"gridwalk/pkg/game/agent"
	"gridwalk/pkg/game/state"
)

func makeSession(t *testing.T) *state.Session {
	t.Helper()
	grid := world.NewGrid(3, 2, world.NewMapper(1))
	grid.MarkBlocked(world.Cell{X: 2, Y: 1})
	planner := nav.NewPlanner(grid)
	return &state.Session{
		Grid:    grid,
		Planner: planner,
		Player:  agent.NewPlayer(planner, world.Cell{}, 1),
		Cursor:  world.Cell{X: 1, Y: 0},
	}
}

// frameLines renders s and returns the frame with colour codes and surrounding spaces removed
func frameLines(t *testing.T, s *state.Session) []string {
	t.Helper()
	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.Init()
	r.RenderFrame(s)

	var lines []string
	for _, l := range strings.Split(color.ClearCode(buf.String()), "\n") {
		lines = append(lines, strings.TrimSpace(l))
	}
	return lines
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func TestRenderFrame_MapAndCursor(t *testing.T) {
	lines := frameLines(t, makeSession(t))
	for _, want := range []string{"@[·]·", "· · ▒"} {
		if !contains(lines, want) {
			t.Errorf("frame missing map row %q:\n%s", want, strings.Join(lines, "\n"))
		}
	}
}

func TestRenderFrame_StatusAndMessages(t *testing.T) {
	s := makeSession(t)
	s.AddMessage("hello")
	lines := frameLines(t, s)
	for _, want := range []string{"Tile Position: (1, 0)", "hello"} {
		if !contains(lines, want) {
			t.Errorf("frame missing %q:\n%s", want, strings.Join(lines, "\n"))
		}
	}
}

func TestRenderFrame_PathOverlay(t *testing.T) {
	s := makeSession(t)
	s.Cursor = world.Cell{X: 0, Y: 1}
	if _, err := s.Player.Select(world.Cell{X: 2, Y: 0}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	lines := frameLines(t, s)
	if !contains(lines, "@ • •") {
		t.Errorf("frame missing path row:\n%s", strings.Join(lines, "\n"))
	}
}
