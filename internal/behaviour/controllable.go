package behaviour

import (
	"math"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// JumpCooldown is the time after a jump during which Jump is ignored.
// It debounces a held key firing several jumps before the entity leaves the floor.
const JumpCooldown = 0.3

// Controllable turns player actions into a drive force and a jump impulse.
// It never moves the entity itself; a later Physics stage integrates its output.
type Controllable struct {
	Speed    float64 // Drive force while walking
	RunSpeed float64 // Drive force while sprinting, also the jump impulse

	cooldown float64 // Seconds until the next jump is allowed
}

// NewControllable creates an input stage.
func NewControllable(speed, runSpeed float64) *Controllable {
	return &Controllable{Speed: speed, RunSpeed: runSpeed}
}

// Kind returns KindControllable.
func (c *Controllable) Kind() Kind { return KindControllable }

func (c *Controllable) sealed() {}

// Cooldown returns the remaining jump cooldown in seconds.
func (c *Controllable) Cooldown() float64 {
	return c.cooldown
}

// Tick reads the action set and the collisions of the current frame.
func (c *Controllable) Tick(p Params, dt float64) Result {
	speed := c.Speed
	if p.Actions.Has(core.ActionSprint) {
		speed = c.RunSpeed
	}

	var impulse core.Vec
	if Grounded(p.Bounds, p.Collisions) && p.Actions.Has(core.ActionJump) && c.cooldown == 0 {
		c.cooldown = JumpCooldown
		impulse = core.V(0, -c.RunSpeed)
	}

	c.cooldown = math.Max(0, c.cooldown-dt)

	var force core.Vec
	if p.Actions.Has(core.ActionMoveLeft) {
		force = core.V(-1, 0)
	} else if p.Actions.Has(core.ActionMoveRight) {
		force = core.V(1, 0)
	}
	if core.Length(force) != 0 {
		force = core.Normalize(force).Scale(speed)
	}

	return Result{
		Force:   vecPtr(force),
		Impulse: vecPtr(impulse),
	}
}
