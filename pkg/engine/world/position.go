package world

import (
	"fmt"
	"math"
)

// Heights of the two entity classes placed on the grid
const (
	GroundHeight   = 0.0
	ObstacleHeight = 0.5
)

// Position is a continuous world-space point. Y is the height axis;
// the grid lies in the X/Z plane.
type Position struct {
	X float64
	Y float64
	Z float64
}

// String returns the position with two decimals per axis
func (p Position) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
}

// Sub returns p - q
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Length returns the euclidean length of p treated as a vector
func (p Position) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the straight-line distance between a and b
func Distance(a, b Position) float64 {
	return b.Sub(a).Length()
}

// MoveTowards moves current toward target by at most maxDelta and never past target.
func MoveTowards(current, target Position, maxDelta float64) Position {
	delta := target.Sub(current)
	dist := delta.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	if maxDelta <= 0 {
		return current
	}
	scale := maxDelta / dist
	return Position{
		X: current.X + delta.X*scale,
		Y: current.Y + delta.Y*scale,
		Z: current.Z + delta.Z*scale,
	}
}
