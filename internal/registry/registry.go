// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// Game is the interface every playable scene implements.
// Scenes contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this scene (e.g., "bouncers").
	// Used for CLI commands and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the scene.
	// Called once at start and again on restart.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds with the given actions held.
	// A dt of zero or less skips the frame.
	Step(dt float64, in core.ActionSet) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current scene state.
	State() core.GameState
}

// GameInfo contains metadata about a registered scene.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a scene.
type Factory func() Game

// ErrUnknown is returned by Create for unregistered IDs.
var ErrUnknown = errors.New("registry: unknown scene")

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from an init() function.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered scenes, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error wrapping ErrUnknown if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}

	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
