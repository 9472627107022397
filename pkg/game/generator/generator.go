// Package generator builds random levels: open rooms joined by corridors, carved
// out of solid obstacle.
package generator

import (
	"errors"

	"gridwalk/pkg/game/level"
)

// ErrTooSmall is returned when the requested grid cannot hold a single room
var ErrTooSmall = errors.New("generator: grid too small")

// Options controls the size and population of a generated level
type Options struct {
	Width   int
	Height  int
	Enemies int
	Spacing float64
	Seed    int64
}

// DefaultOptions is a medium level with two enemies
func DefaultOptions() Options {
	return Options{Width: 24, Height: 16, Enemies: 2}
}

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(opts Options) (*level.Level, error)
	Name() string
}

// BSP is the binary space partitioning generator
var BSP = &BSPGenerator{}

// DefaultGenerator is the default level generator
var DefaultGenerator LevelGenerator = BSP
