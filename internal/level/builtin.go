package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
)

//go:embed builtin/*
var builtinFS embed.FS

// Builtin returns the levels shipped with the binary, sorted by ID.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("level: reading builtin levels: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		name := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("level: reading %s: %w", name, err)
		}
		lvl, err := Parse(data, path.Ext(name))
		if err != nil {
			return nil, fmt.Errorf("level: parsing %s: %w", name, err)
		}
		if err := Validate(lvl); err != nil {
			return nil, fmt.Errorf("level: invalid builtin %s: %w", name, err)
		}
		levels = append(levels, lvl)
	}

	sortLevels(levels)
	return levels, nil
}

// BuiltinByID returns one embedded level.
func BuiltinByID(id string) (Level, error) {
	levels, err := Builtin()
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

// Catalog merges the builtin levels with those found in dir.
// A level file in dir replaces a builtin with the same ID. An empty dir
// returns only the builtins; a missing dir is logged and ignored.
func Catalog(dir string, logger *log.Logger) ([]Level, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return levels, nil
	}

	loader := NewLoader(dir, logger)
	extra, err := loader.LoadAll()
	if errors.Is(err, fs.ErrNotExist) {
		loader.logger().Debug("no level directory", "dir", dir)
		return levels, nil
	}
	if err != nil {
		loader.logger().Warn("level directory unavailable", "dir", dir, "err", err)
		return levels, nil
	}

	index := make(map[string]int, len(levels))
	for i, lvl := range levels {
		index[lvl.ID] = i
	}
	for _, lvl := range extra {
		if i, ok := index[lvl.ID]; ok {
			levels[i] = lvl
			continue
		}
		index[lvl.ID] = len(levels)
		levels = append(levels, lvl)
	}

	sortLevels(levels)
	return levels, nil
}

// Find looks a level up in the catalog.
func Find(id, dir string, logger *log.Logger) (Level, error) {
	levels, err := Catalog(dir, logger)
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
