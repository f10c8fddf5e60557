// Package behaviour implements the per-entity logic stages that run once per
// frame: bouncing movers, player input, collision detection and physics.
//
// The set of behaviours is closed. An entity owns an ordered chain of them and
// runs the chain sequentially, feeding each stage a Params built from the
// previous stages' Results.
package behaviour

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// Kind identifies one of the four behaviour implementations.
type Kind int

const (
	KindDvd Kind = iota
	KindControllable
	KindCollision
	KindPhysics
)

// String returns the name used in level files.
func (k Kind) String() string {
	switch k {
	case KindDvd:
		return "dvd"
	case KindControllable:
		return "controllable"
	case KindCollision:
		return "collision"
	case KindPhysics:
		return "physics"
	default:
		return "unknown"
	}
}

// ParseKind resolves a behaviour name as written in level files.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dvd":
		return KindDvd, nil
	case "controllable":
		return KindControllable, nil
	case "collision":
		return KindCollision, nil
	case "physics":
		return KindPhysics, nil
	default:
		return 0, fmt.Errorf("unknown behaviour type %q", name)
	}
}

// Mask is a collision group bitset. The zero mask collides with everything.
type Mask uint32

// Interacts reports whether two masks allow a collision between their owners.
func (m Mask) Interacts(other Mask) bool {
	return m == 0 || other == 0 || m&other != 0
}

// BoundInfo is one entry of the pre-tick snapshot of all entities.
type BoundInfo struct {
	ID   int
	Rect core.Rect
	Mask Mask
}

// CollisionInfo describes an overlap found by a Collision stage.
// Rect is the intersection area, not the other entity's full bounds.
type CollisionInfo struct {
	ID   int
	Rect core.Rect
	Mask Mask
}

// Params is the read-only input of a single stage.
type Params struct {
	ID         int              // Entity being ticked
	Bounds     core.Rect        // Carry bounds, updated by earlier stages this frame
	Actions    core.ActionSet   // Actions active this frame
	World      core.Rect        // World boundary
	Others     []BoundInfo      // Pre-tick snapshot of every entity, self included
	Collisions []CollisionInfo  // Output of the latest Collision stage, empty if none ran
	Force      *core.Vec        // Force emitted by the previous stage
	Impulse    *core.Vec        // Impulse emitted by the previous stage
}

// Result is the output of a single stage. Nil fields leave the carry unchanged,
// except Force and Impulse, which always replace the carry values.
type Result struct {
	Bounds        *core.Rect
	Collisions    []CollisionInfo
	HasCollisions bool
	Force         *core.Vec
	Impulse       *core.Vec
}

// Behaviour is a unit of per-frame entity logic.
// dt is the frame delta in seconds and is always positive.
type Behaviour interface {
	Kind() Kind
	Tick(p Params, dt float64) Result

	sealed()
}

func vecPtr(v core.Vec) *core.Vec {
	return &v
}

func rectPtr(r core.Rect) *core.Rect {
	return &r
}
