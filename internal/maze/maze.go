// Package maze holds the maze grid, the perfect-maze generator, the level
// character-grid codec and the player session that moves through a grid.
// It has no UI dependencies; the platform layer drives it.
package maze

import "strings"

// EntranceRow and EntranceCol locate the fixed player start cell.
const (
	EntranceRow = 1
	EntranceCol = 1
)

// Maze is an immutable grid of cells indexed [row][col].
// Exactly one cell is Exit and the entrance (1,1) is walkable.
type Maze struct {
	width  int
	height int
	cells  [][]Cell
	exitR  int
	exitC  int
}

// newGrid allocates a width x height grid filled with walls.
func newGrid(width, height int) [][]Cell {
	cells := make([][]Cell, height)
	for r := range cells {
		cells[r] = make([]Cell, width)
	}
	return cells
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// InBounds reports whether (row, col) indexes a cell of the grid.
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// At returns the cell at (row, col). Out-of-bounds positions read as Wall.
func (m *Maze) At(row, col int) Cell {
	if !m.InBounds(row, col) {
		return Wall
	}
	return m.cells[row][col]
}

// Exit returns the position of the exit cell.
func (m *Maze) Exit() (row, col int) {
	return m.exitR, m.exitC
}

// CountCells returns how many cells are in the given state.
func (m *Maze) CountCells(state Cell) int {
	n := 0
	for _, row := range m.cells {
		for _, c := range row {
			if c == state {
				n++
			}
		}
	}
	return n
}

// Rows serializes the maze into level-file rows. The entrance is always
// written as 'P'.
func (m *Maze) Rows() []string {
	rows := make([]string, m.height)
	var sb strings.Builder
	for r := range m.cells {
		sb.Reset()
		sb.Grow(m.width)
		for c, cell := range m.cells[r] {
			if r == EntranceRow && c == EntranceCol && cell == Open {
				sb.WriteRune(runeEntrance)
				continue
			}
			sb.WriteRune(cell.Rune())
		}
		rows[r] = sb.String()
	}
	return rows
}

// String renders the maze as newline-separated level rows.
func (m *Maze) String() string {
	return strings.Join(m.Rows(), "\n")
}
