package sandbox

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/level"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
)

var (
	mu       sync.RWMutex
	levels   = make(map[string]level.Level)
	defaults Options
)

// Configure sets the options handed to scenes created afterwards.
func Configure(opts Options) {
	mu.Lock()
	defer mu.Unlock()
	defaults = opts
}

// UseLevels registers every level as a scene. A level whose ID is already
// registered replaces the earlier definition.
func UseLevels(lvls []level.Level) {
	for _, lvl := range lvls {
		mu.Lock()
		_, known := levels[lvl.ID]
		levels[lvl.ID] = lvl
		mu.Unlock()

		if !known && !registry.Exists(lvl.ID) {
			id := lvl.ID
			registry.Register(id, func() registry.Game {
				return create(id)
			})
		}
	}
}

func create(id string) *Game {
	mu.RLock()
	defer mu.RUnlock()
	return New(levels[id], defaults)
}

// Register the builtin levels with the registry
func init() {
	builtin, err := level.Builtin()
	if err != nil {
		log.Error("builtin levels unavailable", "err", err)
		return
	}
	UseLevels(builtin)
}
