// sandbox is a terminal 2D sandbox: levels of rectangles driven by
// behaviour chains, played in the terminal or over SSH.
//
// Usage:
//
//	sandbox list                 - List available levels
//	sandbox play <level>         - Play a level
//	sandbox menu                 - Pick levels interactively
//	sandbox serve                - Start SSH server for remote play
//	sandbox stats [level]        - Show the run history
//	sandbox simulate <level>     - Run a level headless and print the result
//	sandbox check <file>...      - Validate level files
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: settings frame.limit)
//	--seed <value>        - Set RNG seed for reproducible layouts
//	--db <path>           - Set database path (default: settings database)
//	--config <path>       - Settings file
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file (interactive commands are silent otherwise)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sandbox/internal/config"
	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/level"
	"github.com/vovakirdan/tui-sandbox/internal/platform/tui"
	"github.com/vovakirdan/tui-sandbox/internal/sandbox"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// app is the state shared by every command after setup.
var app struct {
	settings config.Settings
	keys     map[string]core.ActionSet
	logger   *log.Logger
	logFile  *os.File
}

func main() {
	err := rootCmd.Execute()
	if app.logFile != nil {
		app.logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "TUI Sandbox - a 2D physics sandbox in your terminal",
	Long: `TUI Sandbox runs levels of rectangles driven by behaviour chains
(bouncing, player control, collisions and physics) in the terminal.

Available commands:
  list      - Show all available levels
  play      - Play a specific level directly
  menu      - Interactive level picker
  serve     - Start SSH server for remote play
  stats     - View the run history
  simulate  - Run a level without a terminal
  check     - Validate level files

Examples:
  sandbox list
  sandbox play platformer
  sandbox menu --fps 30
  sandbox serve --ssh :2222
  sandbox simulate bouncers --frames 600 --seed 7`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sandbox/sandbox.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(checkCmd)
}

// setup loads the settings, builds the logger and registers the level catalog.
// Flags given on the command line win over the settings file.
func setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	app.settings = settings

	logLevel, err := settings.LogLevel()
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		if logLevel, err = log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		app.logFile = f
		out = f
	}
	app.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "sandbox",
		Level:           logLevel,
	})

	if app.keys, err = settings.Keys(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = settings.Frame.Limit
	}
	if !flags.Changed("db") && settings.Database != "" {
		flagDBPath = settings.Database
	}

	sandbox.Configure(sandbox.Options{
		Env:    settings.Environment(),
		Logger: app.logger,
	})
	return loadLevels()
}

// loadLevels registers the builtin levels and those of the levels directory.
func loadLevels() error {
	levels, err := level.Catalog(config.ExpandPath(app.settings.LevelsDir), app.logger)
	if err != nil {
		return err
	}
	sandbox.UseLevels(levels)
	return nil
}

// quietLogs stops logging to the terminal while a TUI owns it.
func quietLogs() {
	if app.logFile == nil {
		app.logger.SetOutput(io.Discard)
	}
}

// runtimeConfig sizes the screen from the settings or the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	if app.settings.Display.Width > 0 {
		width = app.settings.Display.Width
	}
	if app.settings.Display.Height > 0 {
		height = app.settings.Display.Height
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		FrameLimit: app.settings.Frame.LimitActive,
	}
}

// openStore opens the run history. The sandbox works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		app.logger.Warn("could not open run history", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// tuiOptions returns the scene options for a terminal session.
func tuiOptions(store *storage.Store) tui.Options {
	return tui.Options{
		Store:     store,
		Keys:      app.keys,
		HoldTicks: app.settings.Frame.HoldTicks,
		Source:    storage.SourceLocal,
		Logger:    app.logger,
	}
}
