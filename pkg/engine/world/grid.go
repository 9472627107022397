package world

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned for a grid with a non-positive width or height
	ErrInvalidDimensions = errors.New("world: grid dimensions must be positive")
	// ErrTableSize is returned when an occupancy table does not hold width*height entries
	ErrTableSize = errors.New("world: occupancy table size mismatch")
)

// Tile is one laid-out grid tile: its cell, its layout name and its world position.
type Tile struct {
	Name     string
	Cell     Cell
	Position Position
}

// Grid is a fixed-size occupancy grid with its tile layout.
// The blocked table is indexed y*width+x, the same order the level data is authored in.
// Once planning starts the grid is read-only and may be shared by any number of planners.
type Grid struct {
	width   int
	height  int
	blocked []bool
	mapper  Mapper

	tiles   []Tile
	tileDir map[string]*Tile
}

// NewGrid lays out an obstacle-free grid with the given dimensions and mapper
func NewGrid(width, height int, mapper Mapper) *Grid {
	g := &Grid{}
	g.Build(width, height, mapper)
	return g
}

// NewGridFromTable builds a grid from an authored occupancy table (index y*width+x)
func NewGridFromTable(width, height int, mapper Mapper, obstacles []bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(obstacles) != width*height {
		return nil, fmt.Errorf("%w: got %d entries, want %d", ErrTableSize, len(obstacles), width*height)
	}
	g := NewGrid(width, height, mapper)
	copy(g.blocked, obstacles)
	return g, nil
}

// Build initializes the grid layout with the given dimensions
func (g *Grid) Build(width, height int, mapper Mapper) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.mapper = mapper
	g.blocked = make([]bool, width*height)
	g.tiles = make([]Tile, width*height)
	g.tileDir = make(map[string]*Tile, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Cell{X: x, Y: y}
			idx := g.Index(c)
			g.tiles[idx] = Tile{
				Name:     TileName(c),
				Cell:     c,
				Position: mapper.ToWorld(c),
			}
			g.tileDir[g.tiles[idx].Name] = &g.tiles[idx]
		}
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Mapper returns the coordinate mapper the grid was laid out with
func (g *Grid) Mapper() Mapper {
	return g.mapper
}

// InBounds reports whether c lies inside the grid
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index returns the table index of c (y*width+x). The caller checks bounds.
func (g *Grid) Index(c Cell) int {
	return c.Y*g.width + c.X
}

// CellAt returns the cell stored at table index i
func (g *Grid) CellAt(i int) Cell {
	return Cell{X: i % g.width, Y: i / g.width}
}

// IsBlocked reports whether c is impassable.
// Cells outside the grid count as blocked.
func (g *Grid) IsBlocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.Index(c)]
}

// MarkBlocked marks c as an obstacle. Setup only: never call once planning has started.
// Returns false if c is out of bounds.
func (g *Grid) MarkBlocked(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	g.blocked[g.Index(c)] = true
	return true
}

// Neighbors returns the in-bounds 4-neighbours of c in expansion order +x, -x, +y, -y.
// Blocked neighbours are included; callers filter with IsBlocked.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, dir := range AllDirections() {
		n := c.Step(dir)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// ForEachCell iterates over all cells in table order, calling fn for each
func (g *Grid) ForEachCell(fn func(c Cell, blocked bool)) {
	for i, b := range g.blocked {
		fn(g.CellAt(i), b)
	}
}

// BlockedCount returns the number of obstacle cells
func (g *Grid) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// Obstacles returns a copy of the occupancy table (index y*width+x)
func (g *Grid) Obstacles() []bool {
	out := make([]bool, len(g.blocked))
	copy(out, g.blocked)
	return out
}

// Tile returns the laid-out tile for c, or nil if out of bounds
func (g *Grid) Tile(c Cell) *Tile {
	if !g.InBounds(c) {
		return nil
	}
	return &g.tiles[g.Index(c)]
}

// GetTileByName returns a tile by its layout name, or nil if not found
func (g *Grid) GetTileByName(name string) *Tile {
	if g.tileDir == nil {
		return nil
	}
	return g.tileDir[name]
}

// ObstaclePosition returns where an obstacle on c sits in the world
func (g *Grid) ObstaclePosition(c Cell) Position {
	return g.mapper.ToWorldAt(c, ObstacleHeight)
}

// CellAtPixel maps a screen pixel to a cell for a top-down view drawn with
// square tiles of tileSize pixels, row y=0 at the top.
func (g *Grid) CellAtPixel(px, py, tileSize int) (Cell, bool) {
	if tileSize <= 0 || px < 0 || py < 0 {
		return Cell{}, false
	}
	c := Cell{X: px / tileSize, Y: py / tileSize}
	return c, g.InBounds(c)
}

// Validate checks the grid for common issues: dimensions, table size, and that the
// mapper maps every tile's world position back to the tile's own cell.
func (g *Grid) Validate() error {
	if g.width <= 0 || g.height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, g.width, g.height)
	}
	if len(g.blocked) != g.width*g.height || len(g.tiles) != len(g.blocked) {
		return fmt.Errorf("%w: %d cells, %d tiles", ErrTableSize, len(g.blocked), len(g.tiles))
	}
	for _, t := range g.tiles {
		if got := g.mapper.ToGrid(t.Position); got != t.Cell {
			return fmt.Errorf("world: tile %s at %v maps to cell %v", t.Name, t.Position, got)
		}
	}
	return nil
}
