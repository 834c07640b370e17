// Package levels provides the campaign level table and level file loading.
// This package depends on maze but maze does not depend on levels.
package levels

import (
	"fmt"

	"github.com/vovakirdan/maze-escape/internal/levels/formats"
	"github.com/vovakirdan/maze-escape/internal/maze"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Rows     []string              // Static grid, nil for generated levels
	Generate *formats.YAMLGenerate // Generator parameters, nil for static levels
	Metadata map[string]string
	FilePath string // Empty for built-in levels
}

// Label is the text shown in the HUD and stored with completion times.
func (l Level) Label() string {
	return fmt.Sprintf("Level %s: %s", l.ID, l.Name)
}

// Generated reports whether the level is produced by the generator.
func (l Level) Generated() bool {
	return l.Generate != nil
}

// Size returns the maze dimensions without building it.
func (l Level) Size() (width, height int) {
	if l.Generate != nil {
		return l.Generate.Width, l.Generate.Height
	}
	if len(l.Rows) == 0 {
		return 0, 0
	}
	return len(l.Rows[0]), len(l.Rows)
}

// Build turns the level into a maze. Generated levels with a fixed seed
// always produce the same maze; unseeded ones draw from rng.
func (l Level) Build(rng maze.RNG) (*maze.Maze, error) {
	if l.Generate != nil {
		g := l.Generate
		if g.Seed != 0 {
			return maze.GenerateSeeded(g.Width, g.Height, g.Seed)
		}
		return maze.Generate(g.Width, g.Height, rng)
	}
	return maze.Parse(l.Rows)
}

// Validate checks the level without generating it.
func (l Level) Validate() error {
	switch {
	case l.ID == "":
		return fmt.Errorf("level has no id")
	case l.Generate != nil && len(l.Rows) > 0:
		return fmt.Errorf("level %s: rows and generate are mutually exclusive", l.ID)
	case l.Generate != nil:
		return maze.ValidateDimensions(l.Generate.Width, l.Generate.Height)
	default:
		_, err := maze.Parse(l.Rows)
		return err
	}
}

func fromParsed(p formats.Level, path string) Level {
	return Level{
		ID:       p.ID,
		Name:     p.Name,
		Rows:     p.Rows,
		Generate: p.Generate,
		Metadata: p.Metadata,
		FilePath: path,
	}
}
