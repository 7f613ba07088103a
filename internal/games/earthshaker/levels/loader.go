package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/levels/formats"
)

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a new level loader rooted at a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over an arbitrary file system, such as an embedded pack.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{Root: ".", fsys: fsys}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering, numbered from 1.
// Files that fail to parse or validate are skipped; their errors are joined
// into the returned error alongside the valid levels.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	var skipped []error

	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, path)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("reading file %s: %w", path, err))
			return nil
		}
		level, err := build(data, filepath.Join(l.Root, filepath.FromSlash(path)))
		if err != nil {
			skipped = append(skipped, err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	for i := range levels {
		levels[i].Number = i + 1
	}

	return levels, errors.Join(skipped...)
}

// LoadFile loads and validates a single level file from disk.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return build(data, path)
}

// build parses and validates level data read from path.
func build(data []byte, path string) (Level, error) {
	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if err := Validate(parsed.Layout); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", path, err)
	}

	return Level{
		ID:        parsed.ID,
		Name:      parsed.Name,
		Layout:    parsed.Layout,
		Overrides: parsed.Overrides,
		FilePath:  path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if levels == nil && err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
