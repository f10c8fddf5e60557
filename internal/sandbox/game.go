// Package sandbox implements the playable scene: it builds a world from a
// level, steps it with the platform's actions and draws it into a Screen.
package sandbox

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/behaviour"
	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/level"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// World pixels covered by one terminal cell when a level has no bounds.
// Cells are about twice as tall as wide.
const (
	CellW = 4
	CellH = 8
)

// Options are shared by every scene created from the catalog.
type Options struct {
	Env    behaviour.Environment
	Logger *log.Logger
}

// Game runs one level.
type Game struct {
	level  level.Level
	opts   Options
	config core.RuntimeConfig

	world *world.World
	err   error // Last build failure; world is nil while set

	state     core.GameState
	held      core.ActionSet // Actions of the previous frame, for toggles
	lastDelta float64
}

// New creates a scene for a level. Reset must be called before Step.
func New(lvl level.Level, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{level: lvl, opts: opts}
}

// ID returns the level id.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	return g.level.Name
}

// Level returns the definition the scene was created from.
func (g *Game) Level() level.Level {
	return g.level
}

// World returns the running world, or nil if the level failed to build.
func (g *Game) World() *world.World {
	return g.world
}

// Err returns the last build error.
func (g *Game) Err() error {
	return g.err
}

// Reset rebuilds the world from the level definition.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.state = core.GameState{
		ShowDebug: g.state.ShowDebug,
		FpsLimit:  cfg.FrameLimit,
	}
	g.held = core.ActionSet{}
	g.lastDelta = 0
	g.rebuild()
}

func (g *Game) rebuild() {
	w, err := level.Build(g.level, level.BuildOptions{
		Boundary: core.NewRect(0, 0, float64(g.config.ScreenW*CellW), float64(g.config.ScreenH*CellH)),
		Rand:     rand.New(rand.NewSource(g.config.Seed)),
		Env:      g.opts.Env,
		Logger:   g.opts.Logger,
	})
	if err != nil {
		g.opts.Logger.Error("failed to build level", "level", g.level.ID, "err", err)
		g.world, g.err = nil, err
		return
	}
	g.world, g.err = w, nil
	g.opts.Logger.Debug("level built", "level", g.level.ID, "entities", w.Len(), "seed", g.config.Seed)
}

// Step advances the simulation. Debug, FpsLimit and Pause toggle on the
// frame they are first held; Restart rebuilds the level.
func (g *Game) Step(dt float64, in core.ActionSet) core.StepResult {
	pressed := func(a core.Action) bool {
		return in.Has(a) && !g.held.Has(a)
	}
	if pressed(core.ActionDebug) {
		g.state.ShowDebug = !g.state.ShowDebug
	}
	if pressed(core.ActionFpsLimit) {
		g.state.FpsLimit = !g.state.FpsLimit
	}
	if pressed(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	restart := pressed(core.ActionRestart)
	g.held = in
	g.lastDelta = dt

	if restart {
		frames, simTime := g.state.Frames, g.state.SimTime
		g.rebuild()
		g.state.Frames, g.state.SimTime = frames, simTime
	}

	if g.world == nil || g.state.Paused {
		return core.StepResult{State: g.State(), Skipped: true}
	}

	g.world.Tick(dt, in)
	if dt <= 0 {
		return core.StepResult{State: g.State(), Skipped: true}
	}

	g.state.Frames++
	g.state.SimTime += dt
	return core.StepResult{State: g.State()}
}

// State returns the current scene state.
func (g *Game) State() core.GameState {
	return g.state
}
