// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"

	"gridwalk/pkg/engine/world"
	"gridwalk/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// Map symbols, in overlay priority order (agents over path over terrain)
const (
	SymbolPlayer   = '@'
	SymbolEnemy    = 'E'
	SymbolPath     = '*'
	SymbolObstacle = '#'
	SymbolOpen     = '.'
)

// PathCells returns every cell still ahead of any agent on its active path
func PathCells(s *state.Session) mapset.Set[world.Cell] {
	cells := mapset.New[world.Cell]()
	for _, a := range s.Agents() {
		for _, c := range a.Motion().Remaining() {
			cells.Put(c)
		}
	}
	return cells
}

// CellSymbol returns the single-character symbol for a cell given the path overlay
func CellSymbol(s *state.Session, path mapset.Set[world.Cell], c world.Cell) rune {
	switch {
	case s.Player != nil && s.Player.Cell() == c:
		return SymbolPlayer
	case s.EnemyAt(c):
		return SymbolEnemy
	case path.Has(c):
		return SymbolPath
	case s.Grid.IsBlocked(c):
		return SymbolObstacle
	default:
		return SymbolOpen
	}
}

// WriteMapGrid writes the grid, row y=0 first
func WriteMapGrid(w io.Writer, s *state.Session) {
	path := PathCells(s)
	for y := 0; y < s.Grid.Height(); y++ {
		for x := 0; x < s.Grid.Width(); x++ {
			fmt.Fprintf(w, "%c", CellSymbol(s, path, world.Cell{X: x, Y: y}))
		}
		fmt.Fprintln(w)
	}
}

// DumpMap writes a full debug dump: metadata, legend, map and agent list.
// Format is human-readable (sections, key: value, consistent structure).
func DumpMap(s *state.Session, w io.Writer) error {
	if s == nil || s.Grid == nil {
		return fmt.Errorf("devtools: no grid")
	}
	mapper := s.Grid.Mapper()

	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	if s.Level != nil {
		fmt.Fprintf(w, "level: %s\n", s.Level.Name)
	}
	fmt.Fprintf(w, "grid_width: %d\n", s.Grid.Width())
	fmt.Fprintf(w, "grid_height: %d\n", s.Grid.Height())
	fmt.Fprintf(w, "spacing: %.3f\n", mapper.Spacing())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, world = (x*spacing, 0, y*spacing))\n")
	fmt.Fprintf(w, "obstacles: %d\n", s.Grid.BlockedCount())
	fmt.Fprintf(w, "steps: %d\n", s.Steps)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintf(w, "%c = open  %c = obstacle  %c = path ahead  %c = player  %c = enemy\n",
		SymbolOpen, SymbolObstacle, SymbolPath, SymbolPlayer, SymbolEnemy)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (row y=0 first) ---")
	WriteMapGrid(w, s)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Obstacles ---")
	s.Grid.ForEachCell(func(c world.Cell, blocked bool) {
		if blocked {
			fmt.Fprintf(w, "  %v at %v\n", c, s.Grid.ObstaclePosition(c))
		}
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Agents ---")
	for i, a := range s.Agents() {
		m := a.Motion()
		fmt.Fprintf(w, "  %d: kind: %v cell: %v position: %v speed: %.2f following: %v remaining: %d\n",
			i, a.Kind(), a.Cell(), a.Position(), a.Speed(), m.Following, len(m.Remaining()))
	}
	return nil
}

// DumpMapToFile writes DumpMap output to map.txt and returns its absolute path
func DumpMapToFile(s *state.Session) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(s, f); err != nil {
		return "", err
	}
	return absPath, nil
}
