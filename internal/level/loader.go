package level

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/level/formats"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new level loader.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: root, Logger: logger}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are logged and skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
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

		lvl, err := l.LoadFile(path)
		if err != nil {
			l.logger().Warn("skipping level file", "path", path, "err", err)
			return nil
		}

		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortLevels(levels)
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	lvl, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if lvl.ID == "" {
		lvl.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if lvl.Name == "" {
			lvl.Name = lvl.ID
		}
	}
	if err := Validate(lvl); err != nil {
		return Level{}, fmt.Errorf("invalid level %s: %w", path, err)
	}

	lvl.FilePath = path
	return lvl, nil
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

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
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

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}

// Parse decodes level data in the format given by a file extension.
func Parse(data []byte, ext string) (Level, error) {
	doc, err := formats.Parse(data, strings.ToLower(ext))
	if err != nil {
		return Level{}, err
	}
	return FromDocument(doc)
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func sortLevels(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}
