package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/level"
	"github.com/vovakirdan/tui-sandbox/internal/sandbox"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse, validate and build level files (.yaml, .yml, .toml, .json)
and report every problem found.

Examples:
  sandbox check ~/.sandbox/levels/*.yaml
  sandbox check ./my-level.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if err := checkLevel(path); err != nil {
			fmt.Printf("FAIL  %s\n      %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d level files failed", failed, len(args))
	}
	return nil
}

func checkLevel(path string) error {
	lvl, err := level.NewLoader(filepath.Dir(path), app.logger).LoadFile(path)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	w, err := level.Build(lvl, level.BuildOptions{
		Boundary: core.NewRect(0, 0, float64(cfg.ScreenW*sandbox.CellW), float64(cfg.ScreenH*sandbox.CellH)),
		Env:      app.settings.Environment(),
		Logger:   app.logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("ok    %s  %s (%q, %d entities)\n", path, lvl.ID, lvl.Name, w.Len())
	return nil
}
