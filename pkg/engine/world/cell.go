// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game:
// grid cells, the occupancy grid, and the world/grid coordinate mapper.
package world

import "fmt"

// Cell is one discrete address in the grid.
// Cells are plain values; two cells are the same cell when X and Y match,
// so a Cell can be used directly as a map or set key.
type Cell struct {
	X int
	Y int
}

// String returns the cell as "(x, y)"
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Step returns the adjacent cell in the given direction (bounds are not checked)
func (c Cell) Step(dir Direction) Cell {
	dx, dy := dir.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// ManhattanDistance returns the 4-directional hop distance between two cells
func ManhattanDistance(a, b Cell) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// TileName returns the layout name of the tile at c, e.g. "Tile_3_2"
func TileName(c Cell) string {
	return fmt.Sprintf("Tile_%d_%d", c.X, c.Y)
}
