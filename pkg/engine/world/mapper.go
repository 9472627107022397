package world

// DefaultSpacing is the canonical distance between adjacent tile centres.
// Layout, obstacle placement and path conversion all use the same value.
const DefaultSpacing = 1.1

// truncEpsilon absorbs float error in x*s/s so ToGrid(ToWorld(c)) == c.
const truncEpsilon = 1e-9

// Mapper converts between world positions and grid cells
type Mapper struct {
	spacing float64
}

// NewMapper creates a mapper for the given tile spacing.
// Non-positive spacing falls back to DefaultSpacing.
func NewMapper(spacing float64) Mapper {
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	return Mapper{spacing: spacing}
}

// Spacing returns the tile spacing in world units
func (m Mapper) Spacing() float64 {
	if m.spacing <= 0 {
		return DefaultSpacing
	}
	return m.spacing
}

// ToGrid maps a world position to its cell, truncating X/spacing and Z/spacing toward zero.
func (m Mapper) ToGrid(p Position) Cell {
	s := m.Spacing()
	return Cell{X: truncate(p.X / s), Y: truncate(p.Z / s)}
}

// ToWorld returns the ground-level world position of a cell
func (m Mapper) ToWorld(c Cell) Position {
	return m.ToWorldAt(c, GroundHeight)
}

// ToWorldAt returns the world position of a cell at the given height
func (m Mapper) ToWorldAt(c Cell, height float64) Position {
	s := m.Spacing()
	return Position{X: float64(c.X) * s, Y: height, Z: float64(c.Y) * s}
}

func truncate(v float64) int {
	if v >= 0 {
		return int(v + truncEpsilon)
	}
	return int(v - truncEpsilon)
}
