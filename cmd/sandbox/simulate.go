package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
	"github.com/vovakirdan/tui-sandbox/internal/sandbox"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

var (
	flagSimFrames   int
	flagSimDelta    float64
	flagSimHold     string
	flagSimRender   bool
	flagSimNoRecord bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <level>",
	Short: "Run a level without a terminal",
	Long: `Step a level a fixed number of frames with a fixed delta time and
print where every entity ended up. The same seed always gives the same result.

Examples:
  sandbox simulate bouncers --frames 600 --seed 7
  sandbox simulate platformer --hold MoveRight,Sprint --render
  sandbox simulate platformer --dt 0.001 --frames 10000 --no-record`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 600, "Number of frames to simulate")
	simulateCmd.Flags().Float64Var(&flagSimDelta, "dt", 1.0/60, "Delta time per frame in seconds")
	simulateCmd.Flags().StringVar(&flagSimHold, "hold", "", "Comma separated actions held during the whole run")
	simulateCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
	simulateCmd.Flags().BoolVar(&flagSimNoRecord, "no-record", false, "Do not record the run in the history")
}

// parseActions reads a comma separated action list.
func parseActions(list string) (core.ActionSet, error) {
	var set core.ActionSet
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		a, err := core.ParseAction(name)
		if err != nil {
			return set, err
		}
		set = set.With(a)
	}
	return set, nil
}

func runSimulate(_ *cobra.Command, args []string) error {
	if flagSimFrames < 0 {
		return fmt.Errorf("--frames must not be negative")
	}
	held, err := parseActions(flagSimHold)
	if err != nil {
		return fmt.Errorf("--hold: %w", err)
	}

	created, err := registry.Create(args[0])
	if err != nil {
		return err
	}
	game, ok := created.(*sandbox.Game)
	if !ok {
		return fmt.Errorf("level %q cannot be simulated", args[0])
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if app.settings.Display.Width > 0 {
		cfg.ScreenW = app.settings.Display.Width
	}
	if app.settings.Display.Height > 0 {
		cfg.ScreenH = app.settings.Display.Height
	}

	game.Reset(cfg)
	if err := game.Err(); err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < flagSimFrames; i++ {
		game.Step(flagSimDelta, held)
	}
	wall := time.Since(start)
	state := game.State()

	fmt.Printf("%s: %d frames, %.3fs simulated in %s\n", game.Title(), state.Frames, state.SimTime, wall.Round(time.Microsecond))
	fmt.Println()
	fmt.Printf("  %4s  %-12s  %9s  %9s  %7s  %7s\n", "ID", "Name", "X", "Y", "W", "H")
	fmt.Printf("  %4s  %-12s  %9s  %9s  %7s  %7s\n", "--", "----", "-", "-", "-", "-")
	for _, e := range game.World().Entities() {
		r := e.Bounds.Normalized()
		fmt.Printf("  %4d  %-12s  %9.2f  %9.2f  %7.2f  %7.2f\n", e.ID, e.Name, r.X, r.Y, r.W, r.H)
	}

	if flagSimRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}

	if flagSimNoRecord || state.Frames == 0 {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		app.logger.Warn("run not recorded", "err", err)
		return nil
	}
	defer store.Close()

	_, err = store.SaveRun(storage.Run{
		LevelID:     game.ID(),
		Frames:      state.Frames,
		SimSeconds:  state.SimTime,
		WallSeconds: wall.Seconds(),
		Seed:        cfg.Seed,
		Source:      storage.SourceSimulate,
	})
	return err
}
