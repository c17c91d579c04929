// Package levels provides level loading for the puzzle.
// This package depends on puzzle but puzzle does not depend on levels.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/gravity-tiles/internal/levels/formats"
	"github.com/vovakirdan/gravity-tiles/internal/puzzle"
)

//go:embed defaults/classic.txt
var classicCatalog []byte

// ErrNotFound is returned by LoadByID when no level matches.
var ErrNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID         string
	Name       string
	Index      int // 1-based position in the loaded list
	Definition string
	FilePath   string // empty for the embedded catalog
}

// Grid builds a fresh grid from the level definition.
func (l *Level) Grid() (*puzzle.Grid, error) {
	g, err := puzzle.New(l.Definition)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return g, nil
}

// Title returns the name when set, otherwise the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from a file or a directory.
// An empty Root loads the embedded catalog.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every level under Root.
// Directories are walked in lexical order and catalog files keep their
// internal order, so level order is deterministic. Files that fail to parse
// are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	if l.Root == "" {
		levels = fromCatalog(classicCatalog, "classic", "")
		return number(levels), nil
	}

	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("reading levels %s: %w", l.Root, err)
	}
	if !info.IsDir() {
		levels, err := l.LoadFile(l.Root)
		if err != nil {
			return nil, err
		}
		return number(levels), nil
	}

	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		found, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, found...)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	return number(levels), nil
}

// LoadFile loads the levels in a single file. A catalog file yields many
// levels; a YAML file yields one.
func (l *Loader) LoadFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch ext {
	case ".txt":
		levels := fromCatalog(data, stem, path)
		if len(levels) == 0 {
			return nil, fmt.Errorf("parsing file %s: no levels", path)
		}
		return levels, nil
	case ".yaml", ".yml":
		parsed, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing file %s: %w", path, err)
		}
		id := parsed.ID
		if id == "" {
			id = stem
		}
		return []Level{{
			ID:         id,
			Name:       parsed.Name,
			Definition: parsed.Grid,
			FilePath:   path,
		}}, nil
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// LoadByID loads a specific level by ID. A plain number selects the level
// at that 1-based position.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	if n, err := strconv.Atoi(id); err == nil && n >= 1 && n <= len(levels) {
		return levels[n-1], nil
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in load order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func fromCatalog(data []byte, stem, path string) []Level {
	parsed := formats.ParseCatalog(data)
	levels := make([]Level, len(parsed))
	for i, p := range parsed {
		levels[i] = Level{
			ID:         fmt.Sprintf("%s-%d", stem, i+1),
			Definition: p.Grid,
			FilePath:   path,
		}
	}
	return levels
}

func number(levels []Level) []Level {
	for i := range levels {
		levels[i].Index = i + 1
	}
	return levels
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}
