// Package levels loads Power Crisis maps from files or the built-in set.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/power-crisis/internal/core"
	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/levels/formats"
	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/sim"
)

//go:embed maps/*
var builtinMaps embed.FS

// DefaultID is the built-in map used when none is requested.
const DefaultID = "default"

// Level is a validated map.
type Level struct {
	ID        string
	Name      string
	Player    core.Vec2
	Walls     []core.Rect
	Equipment []core.Rect
	Van       core.Rect
	Metadata  map[string]string
	FilePath  string
}

// Layout converts the level to simulation input.
func (l *Level) Layout() sim.Layout {
	return sim.Layout{
		PlayerStart: l.Player,
		Walls:       append([]core.Rect(nil), l.Walls...),
		Equipment:   append([]core.Rect(nil), l.Equipment...),
		Van:         l.Van,
	}
}

// Loader handles loading levels from a directory.
// An empty Root means the built-in maps.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

func (l *Loader) fsys() fs.FS {
	if l.Root == "" {
		sub, _ := fs.Sub(builtinMaps, "maps") // static path
		return sub
	}
	return os.DirFS(l.Root)
}

// LoadAll recursively scans and loads all map files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	fsys := l.fsys()

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := loadFS(fsys, p)
		if err != nil {
			return nil
		}
		if l.Root != "" {
			level.FilePath = filepath.Join(l.Root, filepath.FromSlash(p))
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking maps %s: %w", l.describe(), err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single map file from disk.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	level, err := parse(data, strings.ToLower(filepath.Ext(p)), idFromPath(p))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// LoadByID loads a specific level by ID.
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
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
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

// Resolve picks a level from a reference that is either a file path or
// the ID of a built-in map. An empty reference selects the default map.
func Resolve(ref string) (Level, error) {
	if ref == "" {
		ref = DefaultID
	}
	if isSupportedExtension(strings.ToLower(filepath.Ext(ref))) {
		if _, err := os.Stat(ref); err == nil {
			return LoadFile(ref)
		}
	}
	return NewLoader("").LoadByID(ref)
}

func (l *Loader) describe() string {
	if l.Root == "" {
		return "(built-in)"
	}
	return l.Root
}

func loadFS(fsys fs.FS, p string) (Level, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, strings.ToLower(path.Ext(p)), idFromPath(p))
}

func parse(data []byte, ext, fallbackID string) (Level, error) {
	m, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, err
	}

	id := m.ID
	if id == "" {
		id = fallbackID
	}
	name := m.Name
	if name == "" {
		name = id
	}

	level := Level{
		ID:        id,
		Name:      name,
		Player:    m.Player,
		Walls:     m.Walls,
		Equipment: m.Equipment,
		Van:       m.Van,
		Metadata:  m.Metadata,
	}
	if err := level.Layout().Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

func idFromPath(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
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
func parseByExtension(data []byte, ext string) (formats.Map, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".json":
		return formats.ParseJSON(data)
	default:
		return formats.Map{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// Export renders a level as YAML.
func Export(l Level) ([]byte, error) {
	return formats.EncodeYAML(formats.Map{
		ID:        l.ID,
		Name:      l.Name,
		Player:    l.Player,
		Walls:     l.Walls,
		Equipment: l.Equipment,
		Van:       l.Van,
		Metadata:  l.Metadata,
	})
}
