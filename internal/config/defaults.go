package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-sandbox/internal/behaviour"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hardcoded settings, used when even the
// embedded file cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		Frame: FrameSettings{
			LimitActive: true,
			Limit:       60,
			HoldTicks:   8,
		},
		Keymap: map[string]string{
			"q":      "Quit",
			"ctrl+c": "Quit",
			"f2":     "Debug",
			"f3":     "FpsLimit",
			"a":      "MoveLeft",
			"left":   "MoveLeft",
			"d":      "MoveRight",
			"right":  "MoveRight",
			"A":      "MoveLeft,Sprint",
			"D":      "MoveRight,Sprint",
			"w":      "MoveUp",
			"up":     "MoveUp",
			"s":      "MoveDown",
			"down":   "MoveDown",
			" ":      "Jump",
			"esc":    "Menu",
			"p":      "Pause",
			"r":      "Restart",
		},
		Physics:   behaviour.DefaultEnvironment(),
		Log:       LogSettings{Level: "info"},
		LevelsDir: "~/.sandbox/levels",
		Database:  "~/.sandbox/sandbox.db",
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
