package maze

import (
	"math/rand"
	"time"
)

// RNG is the random source used for carving. *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// MinSize is the smallest accepted width and height.
const MinSize = 3

type point struct {
	r, c int
}

// carve offsets to the room cells two steps away.
var carveDirs = [4]point{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// ValidateDimensions checks generation dimensions without generating.
func ValidateDimensions(width, height int) error {
	if width < MinSize || height < MinSize {
		return configErrorf(CodeBadDimensions,
			"maze must be at least %dx%d, got %dx%d", MinSize, MinSize, width, height)
	}
	if width%2 == 0 || height%2 == 0 {
		return configErrorf(CodeBadDimensions,
			"maze dimensions must be odd, got %dx%d", width, height)
	}
	if width == MinSize && height == MinSize {
		// One room only: entrance and exit would share a cell.
		return configErrorf(CodeBadDimensions,
			"%dx%d maze has a single room; entrance and exit would coincide", width, height)
	}
	return nil
}

// Generate carves a perfect maze with the recursive backtracker.
//
// Room cells sit at odd coordinates; every other cell starts as wall. The
// walk starts at the entrance (1,1), repeatedly steps to a random unvisited
// room two cells away (opening the wall between) and backtracks when stuck.
// Each room is opened exactly once, so the passages form a spanning tree.
// The exit is placed at (height-2, width-2).
//
// A nil rng uses a time-seeded source.
func Generate(width, height int, rng RNG) (*Maze, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := newGrid(width, height)
	stack := make([]point, 0, (width/2)*(height/2))

	start := point{EntranceRow, EntranceCol}
	cells[start.r][start.c] = Open
	stack = append(stack, start)

	var candidates [4]point
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		n := 0
		for _, d := range carveDirs {
			nr, nc := cur.r+d.r, cur.c+d.c
			if nr < 1 || nr > height-2 || nc < 1 || nc > width-2 {
				continue
			}
			if cells[nr][nc] == Wall {
				candidates[n] = point{nr, nc}
				n++
			}
		}

		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(n)]
		cells[(cur.r+next.r)/2][(cur.c+next.c)/2] = Open
		cells[next.r][next.c] = Open
		stack = append(stack, next)
	}

	exitR, exitC := height-2, width-2
	cells[exitR][exitC] = Exit

	return &Maze{
		width:  width,
		height: height,
		cells:  cells,
		exitR:  exitR,
		exitC:  exitC,
	}, nil
}

// GenerateSeeded generates a maze from a deterministic seed.
func GenerateSeeded(width, height int, seed int64) (*Maze, error) {
	return Generate(width, height, rand.New(rand.NewSource(seed)))
}

// RoomCount returns the number of room cells of a width x height lattice.
func RoomCount(width, height int) int {
	return ((width - 1) / 2) * ((height - 1) / 2)
}
