package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

// Options configures a scene model.
type Options struct {
	Store     *storage.Store // Optional run history
	Keys      map[string]core.ActionSet
	HoldTicks int
	Source    string // Recorded with the run, storage.SourceLocal if empty
	Logger    *log.Logger
}

// Model is the Bubble Tea model for running a scene.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	loop       uint64
	gameState  core.GameState
	started    time.Time
	lastTick   time.Time
	standalone bool // Runs as its own program; leaving it ends the program
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewModel creates a new Bubble Tea model for the given scene.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Source == "" {
		opts.Source = storage.SourceLocal
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:   opts,
		config: cfg,
		keys:   NewKeyMapper(opts.Keys, opts.HoldTicks),
		loop:   nextLoop(),
	}
}

// Init resets the scene and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.loop, frameInterval(m.config.TickRate, m.game.State().FpsLimit))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	actions := m.keys.Press(msg)
	switch {
	case actions.Has(core.ActionQuit):
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	case actions.Has(core.ActionMenu):
		m.saveRun()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick advances the scene by the time since the previous tick.
// The first tick has no predecessor and steps with a zero delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := 0.0
	if m.lastTick.IsZero() {
		m.started = now
	} else {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	result := m.game.Step(dt, m.keys.Frame())
	m.gameState = result.State

	return m, tickCmd(m.loop, frameInterval(m.config.TickRate, m.gameState.FpsLimit))
}

// saveRun records the session in the run history once.
func (m *Model) saveRun() {
	if m.runSaved || m.opts.Store == nil || m.gameState.Frames == 0 {
		return
	}
	m.runSaved = true

	wall := 0.0
	if !m.started.IsZero() {
		wall = m.lastTick.Sub(m.started).Seconds()
	}
	run := storage.Run{
		LevelID:     m.game.ID(),
		Frames:      m.gameState.Frames,
		SimSeconds:  m.gameState.SimTime,
		WallSeconds: wall,
		Seed:        m.config.Seed,
		Source:      m.opts.Source,
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save run", "level", run.LevelID, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".sandbox", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the scene state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested the level menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a scene in the current terminal until the user leaves it.
// It returns true when the user asked to quit rather than go back to a menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (quit bool, err error) {
	model := NewModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return true, err
	}

	m, ok := finalModel.(Model)
	return !ok || m.IsQuitting(), nil
}
