package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/platform/tui"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Default controls (see keymap in the settings file):
  A/D, Left/Right   - Move
  Shift + move      - Run
  Space             - Jump
  P                 - Pause
  R                 - Restart the level
  F2                - Debug overlay
  F3                - Toggle frame limit
  Ctrl+S            - Save a screenshot to ~/.sandbox/screenshots
  Esc, Q/Ctrl+C     - Quit

Examples:
  sandbox play platformer
  sandbox play bouncers --seed 42
  sandbox play my-level --fps 30`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	levelID := args[0]

	if !registry.Exists(levelID) {
		return fmt.Errorf("unknown level %q, run 'sandbox list' to see available levels", levelID)
	}

	game, err := registry.Create(levelID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	quietLogs()
	if _, err := tui.Run(game, runtimeConfig(), tuiOptions(store)); err != nil {
		return fmt.Errorf("running level: %w", err)
	}
	return nil
}
