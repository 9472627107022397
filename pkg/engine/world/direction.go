package world

// Direction represents a cardinal direction on the grid
type Direction int

// Direction constants. East/West move along x, North/South along y.
const (
	East Direction = iota
	West
	North
	South
)

// AllDirections returns the directions in neighbour expansion order: +x, -x, +y, -y.
// Path tie-breaking depends on this order; do not reorder.
func AllDirections() []Direction {
	return []Direction{East, West, North, South}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case West:
		return "West"
	case North:
		return "North"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case West:
		return -1, 0
	case North:
		return 0, 1
	case South:
		return 0, -1
	default:
		return 0, 0
	}
}
