package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the settings.
// Search order: customPath -> ~/.sandbox/settings.yaml -> ./configs/settings.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Settings, error) {
	base := embeddedSettings()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, base)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, p := range []string{userConfigPath("settings.yaml"), filepath.Join("configs", "settings.yaml")} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if cfg, err := parse(data, base); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedSettings parses the embedded default YAML.
func embeddedSettings() Settings {
	cfg, err := parse(defaultSettingsYAML, DefaultSettings())
	if err != nil {
		return DefaultSettings() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// parse overlays data onto base. A keymap in data replaces the base keymap.
func parse(data []byte, base Settings) (Settings, error) {
	cfg := base
	cfg.Keymap = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	if cfg.Keymap == nil {
		cfg.Keymap = base.Keymap
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sandbox", filename)
}
