package maze

import "strings"

// Parse builds a Maze from level-file rows.
//
// Characters:
//
//	'#' = wall
//	' ' = open
//	'E' = exit (exactly one)
//	'P' = entrance marker, read as open
//
// Rows must all have the same length and the entrance (1,1) must be an
// open cell.
func Parse(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, configErrorf(CodeEmpty, "level has no rows")
	}

	width := len(rows[0])
	height := len(rows)
	cells := newGrid(width, height)
	exits := 0
	exitR, exitC := -1, -1

	for r, line := range rows {
		if len(line) != width {
			return nil, configErrorf(CodeNotRectangular,
				"row %d has length %d, expected %d", r, len(line), width)
		}
		for c := 0; c < width; c++ {
			switch ch := line[c]; ch {
			case runeWall:
				cells[r][c] = Wall
			case runeOpen, runeEntrance:
				cells[r][c] = Open
			case runeExit:
				cells[r][c] = Exit
				exits++
				exitR, exitC = r, c
			default:
				return nil, configErrorf(CodeUnknownCell,
					"unknown character %q at row %d col %d", ch, r, c)
			}
		}
	}

	switch {
	case exits == 0:
		return nil, configErrorf(CodeMissingExit, "level has no exit")
	case exits > 1:
		return nil, configErrorf(CodeMultipleExits, "level has %d exits, expected 1", exits)
	}

	if EntranceRow >= height || EntranceCol >= width {
		return nil, configErrorf(CodeBadEntrance,
			"entrance (%d,%d) is outside a %dx%d grid", EntranceRow, EntranceCol, width, height)
	}
	if cells[EntranceRow][EntranceCol] != Open {
		return nil, configErrorf(CodeBadEntrance,
			"entrance (%d,%d) must be open, found %s",
			EntranceRow, EntranceCol, cells[EntranceRow][EntranceCol])
	}

	return &Maze{
		width:  width,
		height: height,
		cells:  cells,
		exitR:  exitR,
		exitC:  exitC,
	}, nil
}

// ParseString parses a newline-separated level. A single trailing newline
// is ignored; carriage returns are stripped.
func ParseString(s string) (*Maze, error) {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return Parse(nil)
	}
	return Parse(strings.Split(s, "\n"))
}
