// Package config provides YAML-based settings loading for the sandbox:
// display size, frame pacing, key bindings, physics constants and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/behaviour"
	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// Settings is the complete user configuration.
type Settings struct {
	Display   DisplaySettings       `yaml:"display"`
	Frame     FrameSettings         `yaml:"frame"`
	Keymap    map[string]string     `yaml:"keymap"`
	Physics   behaviour.Environment `yaml:"physics"`
	Log       LogSettings           `yaml:"log"`
	LevelsDir string                `yaml:"levels_dir"`
	Database  string                `yaml:"database"`
}

// DisplaySettings fixes the screen size in cells. Zero follows the terminal.
type DisplaySettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FrameSettings controls frame pacing.
type FrameSettings struct {
	LimitActive bool `yaml:"limit_active"` // Pace frames at Limit; otherwise run as fast as the terminal allows
	Limit       int  `yaml:"limit"`        // Frames per second
	HoldTicks   int  `yaml:"hold_ticks"`   // Frames a key press stays active
}

// LogSettings controls the charmbracelet logger.
type LogSettings struct {
	Level string `yaml:"level"`
}

// Validate checks values the platform cannot run with.
func (s Settings) Validate() error {
	var errs []error
	if s.Display.Width < 0 || s.Display.Height < 0 {
		errs = append(errs, errors.New("display size must not be negative"))
	}
	if s.Frame.Limit <= 0 {
		errs = append(errs, fmt.Errorf("frame limit must be positive, got %d", s.Frame.Limit))
	}
	if s.Frame.HoldTicks <= 0 {
		errs = append(errs, fmt.Errorf("hold_ticks must be positive, got %d", s.Frame.HoldTicks))
	}
	if s.Physics.PixelsPerMeter <= 0 {
		errs = append(errs, fmt.Errorf("pixels_per_meter must be positive, got %v", s.Physics.PixelsPerMeter))
	}
	if _, err := s.Keys(); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Keys parses the keymap. Each value is a comma separated list of action names.
func (s Settings) Keys() (map[string]core.ActionSet, error) {
	keys := make(map[string]core.ActionSet, len(s.Keymap))

	names := make([]string, 0, len(s.Keymap))
	for k := range s.Keymap {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, key := range names {
		var set core.ActionSet
		for _, name := range strings.Split(s.Keymap[key], ",") {
			a, err := core.ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("keymap %q: %w", key, err)
			}
			set = set.With(a)
		}
		keys[key] = set
	}
	return keys, nil
}

// Environment returns the physics constants, falling back to the defaults
// when pixels_per_meter is unset.
func (s Settings) Environment() behaviour.Environment {
	if s.Physics.PixelsPerMeter == 0 {
		return behaviour.DefaultEnvironment()
	}
	return s.Physics
}

// LogLevel parses the configured log level. Empty means info.
func (s Settings) LogLevel() (log.Level, error) {
	if s.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
