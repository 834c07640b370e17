// Package formats provides the level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
// Exactly one of Rows or Generate is set.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows,omitempty"`
	Generate *YAMLGenerate     `yaml:"generate,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLGenerate describes a level produced by the maze generator.
type YAMLGenerate struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed,omitempty"` // 0 means a fresh maze on every play
}

// Level represents a parsed level file before validation.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Generate *YAMLGenerate
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}

	name := yl.Name
	if name == "" {
		name = "Level " + yl.ID
	}

	return Level{
		ID:       yl.ID,
		Name:     name,
		Rows:     yl.Rows,
		Generate: yl.Generate,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML renders a level in the YAML file format.
func MarshalYAML(l Level) ([]byte, error) {
	return yaml.Marshal(YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Rows:     l.Rows,
		Generate: l.Generate,
		Metadata: l.Metadata,
	})
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}
