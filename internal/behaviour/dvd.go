package behaviour

import "github.com/vovakirdan/tui-sandbox/internal/core"

// Dvd moves at constant speed and bounces off the edges of its clamp rect,
// like the old DVD player screensaver. Velocity is in pixels per second.
type Dvd struct {
	Clamp *core.Rect // nil bounces inside the world boundary

	velocity core.Vec
}

// NewDvd creates a bouncing mover.
func NewDvd(velocity core.Vec, clamp *core.Rect) *Dvd {
	return &Dvd{Clamp: clamp, velocity: velocity}
}

// Kind returns KindDvd.
func (d *Dvd) Kind() Kind { return KindDvd }

func (d *Dvd) sealed() {}

// Velocity returns the current velocity.
func (d *Dvd) Velocity() core.Vec {
	return d.velocity
}

// Tick advances the center and reflects each axis that left the clamp rect.
// The reflection is approximate: the center is pinned to the edge and the
// axis direction flipped, so a fast mover may sit on the edge for a frame.
func (d *Dvd) Tick(p Params, dt float64) Result {
	clamp := p.World
	if d.Clamp != nil {
		clamp = *d.Clamp
	}

	pos := p.Bounds.Center().Add(d.velocity.Scale(dt))

	if pos.X < clamp.Left() || pos.X > clamp.Right() {
		d.velocity.X = -d.velocity.X
	}
	if pos.Y < clamp.Top() || pos.Y > clamp.Bottom() {
		d.velocity.Y = -d.velocity.Y
	}
	pos = clamp.ClampPoint(pos)

	return Result{Bounds: rectPtr(p.Bounds.SetCenter(pos))}
}
