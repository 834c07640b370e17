package maze

// Cell is the state of a single maze tile.
// The zero value is Wall so a freshly allocated grid is solid rock.
type Cell uint8

const (
	Wall Cell = iota
	Open
	Exit
)

// Level file characters.
const (
	runeWall     = '#'
	runeOpen     = ' '
	runeExit     = 'E'
	runeEntrance = 'P'
)

// Rune returns the level-file character for the cell.
func (c Cell) Rune() rune {
	switch c {
	case Open:
		return runeOpen
	case Exit:
		return runeExit
	default:
		return runeWall
	}
}

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Walkable reports whether the player may stand on the cell.
func (c Cell) Walkable() bool {
	return c == Open || c == Exit
}

// Direction is one of the four axis-aligned moves.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (row, col) offset for one step in the direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}
