package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-escape/internal/levels/formats"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Loader handles loading levels from a directory tree.
type Loader struct {
	FS     fs.FS
	Root   string      // Shown in errors and stored as the level source
	Logger *log.Logger // Optional, receives skipped files

	embedded bool
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: root}
}

// Builtin returns a loader over the campaign compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		panic(err) // data/ is embedded at compile time
	}
	return &Loader{FS: sub, Root: "builtin", embedded: true}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level file", "path", l.display(path), "err", err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads and validates a single level file, relative to the loader root.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := fs.ReadFile(l.FS, path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", l.display(path), err)
	}
	source := ""
	if !l.embedded {
		source = l.display(path)
	}
	return decode(data, path, source)
}

func (l *Loader) display(path string) string {
	if l.embedded {
		return "builtin:" + path
	}
	return filepath.Join(l.Root, filepath.FromSlash(path))
}

// LoadPath loads a single level file from disk.
func LoadPath(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	return decode(data, filepath.Base(path), path)
}

// Campaign returns the built-in levels merged with the levels found in
// customDir. A custom level replaces the built-in one with the same ID.
// An empty customDir yields the built-in campaign.
func Campaign(customDir string, logger *log.Logger) ([]Level, error) {
	builtin := Builtin()
	builtin.Logger = logger
	levels, err := builtin.LoadAll()
	if err != nil {
		return nil, err
	}
	if customDir == "" {
		return levels, nil
	}

	custom := NewLoader(customDir)
	custom.Logger = logger
	extra, err := custom.LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(levels))
	for i, lvl := range levels {
		byID[lvl.ID] = i
	}
	for _, lvl := range extra {
		if i, ok := byID[lvl.ID]; ok {
			levels[i] = lvl
			continue
		}
		levels = append(levels, lvl)
	}

	sortByID(levels)
	return levels, nil
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// Index returns the position of the level with the given ID, or -1.
func Index(levels []Level, id string) int {
	for i, lvl := range levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

func decode(data []byte, name, source string) (Level, error) {
	ext := strings.ToLower(filepath.Ext(name))
	parsed, err := parseByExtension(data, ext, strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", name, err)
	}

	level := fromParsed(parsed, source)
	if err := level.Validate(); err != nil {
		return Level{}, fmt.Errorf("levels: invalid %s: %w", name, err)
	}
	return level, nil
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext, stem string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt":
		return formats.ParseText(data, stem)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
