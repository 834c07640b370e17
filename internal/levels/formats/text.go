package formats

import (
	"fmt"
	"strings"
)

// ParseText parses a plain character grid. The level ID and name are taken
// from the file name stem. Trailing blank lines are dropped; blank lines
// inside the grid are kept so the maze parser can reject them.
func ParseText(data []byte, stem string) (Level, error) {
	if stem == "" {
		return Level{}, fmt.Errorf("missing id")
	}

	text := strings.ReplaceAll(string(data), "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return Level{}, fmt.Errorf("empty grid")
	}

	return Level{
		ID:   stem,
		Name: stem,
		Rows: strings.Split(text, "\n"),
	}, nil
}
