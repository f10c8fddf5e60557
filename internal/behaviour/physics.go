package behaviour

import (
	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// Environment holds the constants shared by every Physics stage of a world.
type Environment struct {
	PixelsPerMeter float64  `yaml:"pixels_per_meter" toml:"pixels_per_meter" json:"pixels_per_meter"`
	Gravity        core.Vec `yaml:"gravity" toml:"gravity" json:"gravity"`
	AirResistance  float64  `yaml:"air_resistance" toml:"air_resistance" json:"air_resistance"`
}

// DefaultEnvironment returns Earth gravity at 32 pixels per meter.
func DefaultEnvironment() Environment {
	return Environment{
		PixelsPerMeter: 32,
		Gravity:        core.V(0, 9.81),
		AirResistance:  0.001,
	}
}

// Physics integrates force and impulse from earlier stages into movement.
// Velocity is kept in meters per second.
type Physics struct {
	Mass  float64
	Clamp *core.Rect // nil clamps to the world boundary
	Env   Environment

	velocity core.Vec
}

// NewPhysics creates a physics stage at rest. Mass must be positive;
// level validation rejects anything else before a world is built.
func NewPhysics(mass float64, clamp *core.Rect, env Environment) *Physics {
	return &Physics{Mass: mass, Clamp: clamp, Env: env}
}

// Kind returns KindPhysics.
func (ph *Physics) Kind() Kind { return KindPhysics }

func (ph *Physics) sealed() {}

// Velocity returns the current velocity in meters per second.
func (ph *Physics) Velocity() core.Vec {
	return ph.velocity
}

// SetVelocity overrides the current velocity.
func (ph *Physics) SetVelocity(v core.Vec) {
	ph.velocity = v
}

// Tick applies one integration step and emits the new bounds.
// Force and impulse are consumed, so the result carries neither.
func (ph *Physics) Tick(p Params, dt float64) Result {
	ppm := ph.Env.PixelsPerMeter
	pos := p.Bounds.Center().Div(ppm)

	accel := ph.Env.Gravity.Add(ph.drag())
	if p.Force != nil {
		accel = accel.Add(p.Force.Div(ph.Mass))
	}

	if p.Impulse != nil {
		ph.velocity = ph.velocity.Add(p.Impulse.Div(ph.Mass))
	}
	ph.velocity = ph.velocity.Add(accel.Scale(dt))

	for _, c := range p.Collisions {
		n := ContactNormal(p.Bounds, c.Rect)
		if n.Y != 0 && n.Y == float64(core.Sign(ph.velocity.Y)) {
			ph.velocity.Y = 0
		}
		if n.X != 0 && n.X == float64(core.Sign(ph.velocity.X)) {
			ph.velocity.X = 0
		}
	}

	pos = pos.Add(ph.velocity.Scale(dt))

	clamp := p.World
	if ph.Clamp != nil {
		clamp = *ph.Clamp
	}
	center := clamp.ClampPoint(pos.Scale(ppm))

	return Result{Bounds: rectPtr(p.Bounds.SetCenter(center))}
}

// drag opposes motion with magnitude coef*|v|².
func (ph *Physics) drag() core.Vec {
	speed := core.Length(ph.velocity)
	if speed == 0 {
		return core.Vec{}
	}
	return core.Normalize(ph.velocity).Neg().Scale(ph.Env.AirResistance * speed * speed)
}
