package generator

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/queue"

	"gridwalk/pkg/engine/world"
	"gridwalk/pkg/game/level"
)

// BSPGenerator generates levels using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) center() world.Cell {
	return world.Cell{X: r.x + r.width/2, Y: r.y + r.height/2}
}

// Constants for BSP generation
const (
	minNodeSize = 6 // Minimum size of a BSP node
	minRoomSize = 3 // Minimum size of a room
	roomPadding = 1 // Padding between room and node edge
	minGridSize = minNodeSize + 2
)

// Generate carves a level. The same options always produce the same level.
func (g *BSPGenerator) Generate(opts Options) (*level.Level, error) {
	if opts.Width < minGridSize || opts.Height < minGridSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, opts.Width, opts.Height, minGridSize, minGridSize)
	}
	if opts.Spacing <= 0 {
		opts.Spacing = world.DefaultSpacing
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	rows := make([][]byte, opts.Height)
	for y := range rows {
		rows[y] = bytes.Repeat([]byte{level.ObstacleRune}, opts.Width)
	}

	// Leave a 1 cell border of obstacle around the edge
	root := &bspNode{x: 1, y: 1, width: opts.Width - 2, height: opts.Height - 2}
	splitBSP(rng, root, minNodeSize)
	createRooms(rng, root)
	carveRooms(rows, root)
	connectRooms(rng, rows, root)

	lvl := &level.Level{
		Name:    fmt.Sprintf("generated-%d", opts.Seed),
		Width:   opts.Width,
		Height:  opts.Height,
		Spacing: opts.Spacing,
		Rows:    make([]string, opts.Height),
	}
	for y, row := range rows {
		lvl.Rows[y] = string(row)
	}

	rooms := collectRooms(root)
	start := rooms[rng.Intn(len(rooms))].center()
	lvl.Player = level.Spawn{X: start.X, Y: start.Y, Speed: level.DefaultPlayerSpeed}

	grid, err := lvl.Grid()
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	for _, c := range furthestCells(grid, start, opts.Enemies) {
		lvl.Enemies = append(lvl.Enemies, level.Spawn{X: c.X, Y: c.Y, Speed: level.DefaultEnemySpeed})
	}

	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	return lvl, nil
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	canSplitX := node.width >= minSize*2
	canSplitY := node.height >= minSize*2

	var splitHorizontal bool
	switch {
	case canSplitX && canSplitY:
		if node.width == node.height {
			splitHorizontal = rng.Intn(2) == 0
		} else {
			splitHorizontal = node.height > node.width
		}
	case canSplitX:
		splitHorizontal = false
	case canSplitY:
		splitHorizontal = true
	default:
		return
	}

	if splitHorizontal {
		// Split into top and bottom
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split into left and right
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// createRooms creates a room in every leaf node
func createRooms(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(rng, node.left)
		}
		if node.right != nil {
			createRooms(rng, node.right)
		}
		return
	}

	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)

	node.room = &bspRoom{
		x:      node.x + rng.Intn(node.width-roomWidth),
		y:      node.y + rng.Intn(node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms opens every room cell
func carveRooms(rows [][]byte, node *bspNode) {
	if node.room != nil {
		r := node.room
		for y := r.y; y < r.y+r.height; y++ {
			for x := r.x; x < r.x+r.width; x++ {
				rows[y][x] = level.OpenRune
			}
		}
	}
	if node.left != nil {
		carveRooms(rows, node.left)
	}
	if node.right != nil {
		carveRooms(rows, node.right)
	}
}

// connectRooms joins a room from each pair of sibling subtrees with an L-shaped corridor
func connectRooms(rng *rand.Rand, rows [][]byte, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	a := getRoom(rng, node.left).center()
	b := getRoom(rng, node.right).center()
	if rng.Intn(2) == 0 {
		carveCorridorX(rows, a.Y, a.X, b.X)
		carveCorridorY(rows, b.X, a.Y, b.Y)
	} else {
		carveCorridorY(rows, a.X, a.Y, b.Y)
		carveCorridorX(rows, b.Y, a.X, b.X)
	}

	connectRooms(rng, rows, node.left)
	connectRooms(rng, rows, node.right)
}

// carveCorridorX opens row y between x0 and x1 inclusive
func carveCorridorX(rows [][]byte, y, x0, x1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		rows[y][x] = level.OpenRune
	}
}

// carveCorridorY opens column x between y0 and y1 inclusive
func carveCorridorY(rows [][]byte, x, y0, y1 int) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		rows[y][x] = level.OpenRune
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(rng *rand.Rand, node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = getRoom(rng, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(rng, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom
	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}

// furthestCells returns up to n open cells reachable from start, furthest by
// walking distance first. Ties go to the lower grid index.
func furthestCells(grid *world.Grid, start world.Cell, n int) []world.Cell {
	if n <= 0 {
		return nil
	}
	dist := Distances(grid, start)
	cells := make([]world.Cell, 0, len(dist))
	for c := range dist {
		if c != start {
			cells = append(cells, c)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if dist[cells[i]] != dist[cells[j]] {
			return dist[cells[i]] > dist[cells[j]]
		}
		return grid.Index(cells[i]) < grid.Index(cells[j])
	})
	if n < len(cells) {
		cells = cells[:n]
	}
	return cells
}

// Distances returns the walking distance from start to every open cell reachable from it
func Distances(grid *world.Grid, start world.Cell) map[world.Cell]int {
	dist := map[world.Cell]int{start: 0}
	frontier := queue.New[world.Cell]()
	frontier.Enqueue(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		for _, n := range grid.Neighbors(current) {
			if grid.IsBlocked(n) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[current] + 1
			frontier.Enqueue(n)
		}
	}
	return dist
}
