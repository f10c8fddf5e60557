package world

import (
	"github.com/vovakirdan/tui-sandbox/internal/behaviour"
	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// LayerKind splits the draw order into two bands.
type LayerKind int

const (
	Background LayerKind = iota
	Foreground
)

// DrawLayer positions an entity in the draw order.
// Every background layer is drawn before every foreground layer; within a
// band lower Order values are drawn first.
type DrawLayer struct {
	Kind  LayerKind
	Order int
}

// Less reports whether l is drawn before o.
func (l DrawLayer) Less(o DrawLayer) bool {
	if l.Kind != o.Kind {
		return l.Kind < o.Kind
	}
	return l.Order < o.Order
}

// Drawable is the render metadata of an entity. The simulation never reads it.
type Drawable struct {
	Layer     DrawLayer
	Color     *core.RGBA
	TextureID *int
	Tint      bool // Color the texture glyph instead of using its default color
}

// FrameContext is what the world hands every entity for one tick.
type FrameContext struct {
	Delta    float64
	Actions  core.ActionSet
	Boundary core.Rect
	Snapshot []behaviour.BoundInfo
}

// Entity is a rectangle driven by an ordered behaviour chain.
type Entity struct {
	ID       int
	Name     string
	Bounds   core.Rect
	Mask     behaviour.Mask
	Drawable *Drawable

	behaviours []behaviour.Behaviour
}

// Option configures an Entity.
type Option func(*Entity)

// WithName labels the entity for logs and the debug overlay.
func WithName(name string) Option {
	return func(e *Entity) { e.Name = name }
}

// WithMask sets the collision group.
func WithMask(m behaviour.Mask) Option {
	return func(e *Entity) { e.Mask = m }
}

// WithDrawable makes the entity visible.
func WithDrawable(d Drawable) Option {
	return func(e *Entity) { e.Drawable = &d }
}

// WithBehaviours appends stages to the chain in the given order.
func WithBehaviours(bs ...behaviour.Behaviour) Option {
	return func(e *Entity) { e.behaviours = append(e.behaviours, bs...) }
}

// NewEntity creates an entity. Without WithBehaviours it never moves.
func NewEntity(id int, bounds core.Rect, opts ...Option) *Entity {
	e := &Entity{ID: id, Bounds: bounds}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Behaviours returns a copy of the chain.
func (e *Entity) Behaviours() []behaviour.Behaviour {
	out := make([]behaviour.Behaviour, len(e.behaviours))
	copy(out, e.behaviours)
	return out
}

// Behaviour returns the first stage of the given kind.
func (e *Entity) Behaviour(k behaviour.Kind) (behaviour.Behaviour, bool) {
	for _, b := range e.behaviours {
		if b.Kind() == k {
			return b, true
		}
	}
	return nil, false
}

// layer returns the draw layer, treating invisible entities as Background(0).
func (e *Entity) layer() DrawLayer {
	if e.Drawable == nil {
		return DrawLayer{}
	}
	return e.Drawable.Layer
}

// Tick runs the chain once.
//
// Each stage sees the bounds left by the stages before it. Bounds and the
// collision list are replaced only when a stage produces them. Force and
// impulse are replaced by every stage, so only the immediately preceding
// stage's values reach the next one.
func (e *Entity) Tick(ctx FrameContext) {
	bounds := e.Bounds
	var (
		collisions []behaviour.CollisionInfo
		force      *core.Vec
		impulse    *core.Vec
	)

	for _, b := range e.behaviours {
		res := b.Tick(behaviour.Params{
			ID:         e.ID,
			Bounds:     bounds,
			Actions:    ctx.Actions,
			World:      ctx.Boundary,
			Others:     ctx.Snapshot,
			Collisions: collisions,
			Force:      force,
			Impulse:    impulse,
		}, ctx.Delta)

		if res.Bounds != nil {
			bounds = *res.Bounds
		}
		if res.HasCollisions {
			collisions = res.Collisions
		}
		force = res.Force
		impulse = res.Impulse
	}

	e.Bounds = bounds
}
