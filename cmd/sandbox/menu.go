package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/platform/tui"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the sandbox with a level picker menu",
	Long: `Start the sandbox in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
Leaving a level with Esc returns to the menu; Q quits.
Tab opens the run history.

Examples:
  sandbox menu
  sandbox menu --fps 30
  sandbox menu --db ./sandbox.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	quietLogs()
	cfg := runtimeConfig()
	lastLevel := ""

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return nil

		case menuResult.WantsRuns:
			goBack, err := tui.RunRuns(store, lastLevel, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(menuResult.LevelID)
			if err != nil {
				return fmt.Errorf("creating level: %w", err)
			}
			lastLevel = menuResult.LevelID

			quit, err := tui.Run(game, cfg, tuiOptions(store))
			if err != nil {
				return fmt.Errorf("running level: %w", err)
			}
			if quit {
				return nil
			}
		}
	}
}
