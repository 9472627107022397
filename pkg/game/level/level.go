// Package level loads obstacle layouts and agent spawns from YAML level files.
package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"

	"gridwalk/pkg/engine/world"
)

//go:embed levels/*.yaml
var levelsFS embed.FS

// DefaultName is the embedded level used when no file is given
const DefaultName = "courtyard.yaml"

// Obstacle and open-ground characters in a level row
const (
	ObstacleRune = '#'
	OpenRune     = '.'
)

// Default movement speeds in world units per second
const (
	DefaultPlayerSpeed = 5.0
	DefaultEnemySpeed  = 5.0
)

// ErrInvalidLevel is wrapped by every level validation failure
var ErrInvalidLevel = errors.New("level: invalid level")

// Spawn places an agent on a cell with a movement speed
type Spawn struct {
	X     int     `yaml:"x"`
	Y     int     `yaml:"y"`
	Speed float64 `yaml:"speed"`
}

// Cell returns the spawn cell
func (s Spawn) Cell() world.Cell {
	return world.Cell{X: s.X, Y: s.Y}
}

// Level is the authored description of one grid: its size, tile spacing,
// obstacle rows and agent spawns.
type Level struct {
	Name    string   `yaml:"name"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Spacing float64  `yaml:"spacing"`
	Rows    []string `yaml:"rows"`
	Player  Spawn    `yaml:"player"`
	Enemies []Spawn  `yaml:"enemies"`
}

// Load reads and validates a level file from disk
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", path, err)
	}
	return lvl, nil
}

// Default returns the embedded default level
func Default() (*Level, error) {
	data, err := fs.ReadFile(levelsFS, "levels/"+DefaultName)
	if err != nil {
		return nil, fmt.Errorf("level: read embedded %s: %w", DefaultName, err)
	}
	return Parse(data)
}

// Parse decodes and validates level YAML, filling defaults for omitted fields
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}
	lvl.applyDefaults()
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) applyDefaults() {
	if l.Spacing <= 0 {
		l.Spacing = world.DefaultSpacing
	}
	if l.Player.Speed <= 0 {
		l.Player.Speed = DefaultPlayerSpeed
	}
	for i := range l.Enemies {
		if l.Enemies[i].Speed <= 0 {
			l.Enemies[i].Speed = DefaultEnemySpeed
		}
	}
	// No rows means an obstacle-free grid.
	if len(l.Rows) == 0 && l.Width > 0 && l.Height > 0 {
		row := make([]byte, l.Width)
		for i := range row {
			row[i] = OpenRune
		}
		l.Rows = make([]string, l.Height)
		for y := range l.Rows {
			l.Rows[y] = string(row)
		}
	}
}

// Validate checks dimensions, row shapes and that every spawn is an open in-bounds cell
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	if len(l.Rows) != l.Height {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidLevel, len(l.Rows), l.Height)
	}
	for y, row := range l.Rows {
		if len(row) != l.Width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLevel, y, len(row), l.Width)
		}
		for x, r := range row {
			if r != ObstacleRune && r != OpenRune {
				return fmt.Errorf("%w: row %d col %d: unknown cell %q", ErrInvalidLevel, y, x, r)
			}
		}
	}

	blocked := l.BlockedCells()
	spawns := append([]Spawn{l.Player}, l.Enemies...)
	for i, s := range spawns {
		c := s.Cell()
		if c.X < 0 || c.X >= l.Width || c.Y < 0 || c.Y >= l.Height {
			return fmt.Errorf("%w: spawn %d at %v is out of bounds", ErrInvalidLevel, i, c)
		}
		if blocked.Has(c) {
			return fmt.Errorf("%w: spawn %d at %v is on an obstacle", ErrInvalidLevel, i, c)
		}
	}
	return nil
}

// BlockedCells returns the set of obstacle cells
func (l *Level) BlockedCells() mapset.Set[world.Cell] {
	blocked := mapset.New[world.Cell]()
	for y, row := range l.Rows {
		for x, r := range row {
			if r == ObstacleRune {
				blocked.Put(world.Cell{X: x, Y: y})
			}
		}
	}
	return blocked
}

// Obstacles returns the occupancy table, indexed y*Width+x
func (l *Level) Obstacles() []bool {
	table := make([]bool, l.Width*l.Height)
	l.BlockedCells().Each(func(c world.Cell) {
		table[c.Y*l.Width+c.X] = true
	})
	return table
}

// Mapper returns the coordinate mapper for the level's spacing
func (l *Level) Mapper() world.Mapper {
	return world.NewMapper(l.Spacing)
}

// Grid builds the occupancy grid described by the level
func (l *Level) Grid() (*world.Grid, error) {
	g, err := world.NewGridFromTable(l.Width, l.Height, l.Mapper(), l.Obstacles())
	if err != nil {
		return nil, fmt.Errorf("level: build grid: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	return g, nil
}
