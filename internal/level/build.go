package level

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/behaviour"
	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// PlayerOrder is the foreground order of the player, above regular objects.
const PlayerOrder = 100

// BuildOptions carries what a level does not define itself.
type BuildOptions struct {
	Boundary core.Rect             // Used when the level has no bounds
	Rand     *rand.Rand            // Source for random speeds; nil seeds with 1
	Env      behaviour.Environment // Zero value uses behaviour.DefaultEnvironment
	Logger   *log.Logger
}

// Build validates a level and creates its world.
// Behaviours are attached in the order the file declares them.
func Build(l Level, opts BuildOptions) (*world.World, error) {
	if err := Validate(l); err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}

	boundary := opts.Boundary
	if l.Bounds != nil {
		boundary = *l.Bounds
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	env := opts.Env
	if env.PixelsPerMeter == 0 {
		env = behaviour.DefaultEnvironment()
	}

	w := world.New(boundary, world.WithLogger(opts.Logger))

	for _, o := range l.Objects {
		chain := make([]behaviour.Behaviour, 0, len(o.Behaviours))
		for _, spec := range o.Behaviours {
			b, err := newBehaviour(spec, o.Mask, rng, env)
			if err != nil {
				return nil, fmt.Errorf("level %s: object %d: %w", l.ID, o.ID, err)
			}
			chain = append(chain, b)
		}

		entityOpts := []world.Option{
			world.WithName(o.Name),
			world.WithMask(o.Mask),
			world.WithBehaviours(chain...),
		}
		if !o.Hidden {
			entityOpts = append(entityOpts, world.WithDrawable(world.Drawable{
				Layer:     o.Layer,
				Color:     o.Color,
				TextureID: o.TextureID,
				Tint:      o.Tint,
			}))
		}
		if err := w.Add(world.NewEntity(o.ID, o.Bounds, entityOpts...)); err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
	}

	if p := l.Player; p != nil {
		color := p.Color
		player := world.NewEntity(PlayerID, core.NewRect(l.Start.X, l.Start.Y, p.Size.X, p.Size.Y),
			world.WithName("player"),
			world.WithMask(p.Mask),
			world.WithDrawable(world.Drawable{
				Layer:     world.DrawLayer{Kind: world.Foreground, Order: PlayerOrder},
				Color:     &color,
				TextureID: p.TextureID,
				Tint:      true,
			}),
			world.WithBehaviours(
				behaviour.NewCollision(p.Mask),
				behaviour.NewControllable(p.Speed, p.RunSpeed),
				behaviour.NewPhysics(p.Mass, nil, env),
			),
		)
		if err := w.Add(player); err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
	}

	return w, nil
}

func newBehaviour(spec BehaviourSpec, objMask behaviour.Mask, rng *rand.Rand, env behaviour.Environment) (behaviour.Behaviour, error) {
	kind, err := behaviour.ParseKind(spec.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case behaviour.KindDvd:
		return behaviour.NewDvd(spec.Speed.velocity(rng), spec.Clamp), nil
	case behaviour.KindControllable:
		return behaviour.NewControllable(spec.WalkSpeed, spec.RunSpeed), nil
	case behaviour.KindCollision:
		mask := objMask
		if spec.Mask != nil {
			mask = *spec.Mask
		}
		return behaviour.NewCollision(mask), nil
	default:
		return behaviour.NewPhysics(spec.Mass, spec.Clamp, env), nil
	}
}

// velocity resolves the speed, drawing random components from rng.
func (s *SpeedSpec) velocity(rng *rand.Rand) core.Vec {
	if !s.Random {
		return s.Value
	}
	return core.V(
		s.Min.X+rng.Float64()*(s.Max.X-s.Min.X),
		s.Min.Y+rng.Float64()*(s.Max.Y-s.Min.Y),
	)
}
