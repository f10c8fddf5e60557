// Package world orchestrates entities: it keeps them in draw order, steps
// their behaviour chains once per frame and reports what is visible.
package world

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/behaviour"
	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// ErrDuplicateID is returned by Add when the id is already taken.
var ErrDuplicateID = errors.New("world: duplicate entity id")

// DrawItem is one entry of the render list.
type DrawItem struct {
	ID       int
	Name     string
	Bounds   core.Rect
	Drawable Drawable
}

// World owns a fixed boundary and an ordered set of entities.
// It is not safe for concurrent use; one goroutine drives the frame loop.
type World struct {
	boundary core.Rect
	entities []*Entity
	byID     map[int]*Entity
	frames   uint64
	logger   *log.Logger
}

// WorldOption configures a World.
type WorldOption func(*World)

// WithLogger sends diagnostics (skipped frames, culled entities) to l.
func WithLogger(l *log.Logger) WorldOption {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates an empty world.
func New(boundary core.Rect, opts ...WorldOption) *World {
	w := &World{
		boundary: boundary,
		byID:     make(map[int]*Entity),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Boundary returns the world rectangle.
func (w *World) Boundary() core.Rect {
	return w.boundary
}

// Len returns the number of entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Frame returns how many ticks were simulated. Skipped frames do not count.
func (w *World) Frame() uint64 {
	return w.frames
}

// Add inserts an entity and restores draw order. Entities on the same layer
// keep their insertion order.
func (w *World) Add(e *Entity) error {
	if _, ok := w.byID[e.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, e.ID)
	}
	w.entities = append(w.entities, e)
	w.byID[e.ID] = e
	sort.SliceStable(w.entities, func(i, j int) bool {
		return w.entities[i].layer().Less(w.entities[j].layer())
	})
	return nil
}

// Remove deletes an entity. It reports whether the id existed.
func (w *World) Remove(id int) bool {
	if _, ok := w.byID[id]; !ok {
		return false
	}
	delete(w.byID, id)
	for i, e := range w.entities {
		if e.ID == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			break
		}
	}
	return true
}

// Entity looks up an entity by id.
func (w *World) Entity(id int) (*Entity, bool) {
	e, ok := w.byID[id]
	return e, ok
}

// Entities returns the entities in draw order.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Snapshot captures every entity's bounds and mask.
func (w *World) Snapshot() []behaviour.BoundInfo {
	snap := make([]behaviour.BoundInfo, len(w.entities))
	for i, e := range w.entities {
		snap[i] = behaviour.BoundInfo{ID: e.ID, Rect: e.Bounds, Mask: e.Mask}
	}
	return snap
}

// Tick advances the simulation by dt seconds.
//
// A non-positive dt skips the frame; the platform uses it on the first frame,
// before a real delta is known. Every entity sees the same snapshot taken
// before any of them moved.
func (w *World) Tick(dt float64, actions core.ActionSet) {
	if dt <= 0 {
		w.logger.Debug("skipping frame", "dt", dt)
		return
	}

	ctx := FrameContext{
		Delta:    dt,
		Actions:  actions,
		Boundary: w.boundary,
		Snapshot: w.Snapshot(),
	}
	for _, e := range w.entities {
		e.Tick(ctx)
	}
	w.frames++
}

// Drawables returns the visible entities in draw order.
func (w *World) Drawables() []DrawItem {
	items := make([]DrawItem, 0, len(w.entities))
	for _, e := range w.entities {
		if e.Drawable == nil {
			continue
		}
		if !e.Bounds.Intersects(w.boundary) {
			w.logger.Debug("entity outside boundary", "id", e.ID, "bounds", e.Bounds)
			continue
		}
		items = append(items, DrawItem{
			ID:       e.ID,
			Name:     e.Name,
			Bounds:   e.Bounds,
			Drawable: *e.Drawable,
		})
	}
	return items
}
