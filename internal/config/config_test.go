package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/behaviour"
	"github.com/vovakirdan/tui-sandbox/internal/core"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEmbeddedDefaults(t *testing.T) {
	cfg := embeddedSettings()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded settings invalid: %v", err)
	}
	if cfg.Frame.Limit != 60 || !cfg.Frame.LimitActive {
		t.Errorf("frame = %+v", cfg.Frame)
	}
	if cfg.Physics != behaviour.DefaultEnvironment() {
		t.Errorf("physics = %+v, want defaults", cfg.Physics)
	}

	keys, err := cfg.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if !keys[" "].Has(core.ActionJump) {
		t.Error("space should jump")
	}
	if d := keys["D"]; !d.Has(core.ActionMoveRight) || !d.Has(core.ActionSprint) {
		t.Errorf("D should sprint right, got %v", d)
	}
}

func TestHardcodedDefaultsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("DefaultSettings invalid: %v", err)
	}
}

func TestLoadCustomOverlay(t *testing.T) {
	p := writeSettings(t, `
frame:
  limit: 30
physics:
  pixels_per_meter: 16
log:
  level: debug
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Frame.Limit != 30 {
		t.Errorf("limit = %d, want 30", cfg.Frame.Limit)
	}
	if cfg.Frame.HoldTicks != 8 {
		t.Errorf("unset hold_ticks should keep default, got %d", cfg.Frame.HoldTicks)
	}
	if cfg.Environment().PixelsPerMeter != 16 {
		t.Errorf("ppm = %v", cfg.Environment().PixelsPerMeter)
	}
	if len(cfg.Keymap) == 0 {
		t.Error("keymap should fall back to defaults")
	}
	if lvl, _ := cfg.LogLevel(); lvl != log.DebugLevel {
		t.Errorf("log level = %v", lvl)
	}
}

func TestLoadKeymapReplaces(t *testing.T) {
	p := writeSettings(t, "keymap:\n  k: Jump\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	keys, err := cfg.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || !keys["k"].Has(core.ActionJump) {
		t.Errorf("keys = %v", keys)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"bad yaml", "frame: [", "failed to parse"},
		{"bad action", "keymap:\n  z: Fly\n", "invalid config"},
		{"bad limit", "frame:\n  limit: 0\n", "invalid config"},
		{"bad level", "log:\n  level: loud\n", "invalid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSettings(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}
}

func TestEnvironmentFallback(t *testing.T) {
	var s Settings
	if s.Environment() != behaviour.DefaultEnvironment() {
		t.Error("zero physics should fall back to defaults")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/x/y.db"); got != filepath.Join(home, "x", "y.db") {
		t.Errorf("ExpandPath = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
