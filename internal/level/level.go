// Package level turns level files into worlds.
//
// Files are decoded by the formats package, converted into Level values,
// validated, and finally built into a world.World with Build.
package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sandbox/internal/behaviour"
	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/level/formats"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// PlayerID is the entity id reserved for the player.
const PlayerID = 100

// Player defaults.
const (
	DefaultPlayerSpeed    = 5.0
	DefaultPlayerRunSpeed = 10.0
	DefaultMass           = 1.0
)

// ErrNotFound is returned when no level has the requested id.
var ErrNotFound = errors.New("level: not found")

// Level is a complete level definition.
type Level struct {
	ID       string
	Name     string
	Start    core.Vec   // Top-left corner of the player
	Bounds   *core.Rect // World boundary; nil uses the screen-sized default
	Player   *Player
	Objects  []Object
	Metadata map[string]string
	FilePath string
}

// Player describes the controllable entity.
type Player struct {
	TextureID *int
	Size      core.Vec
	Speed     float64
	RunSpeed  float64
	Mass      float64
	Mask      behaviour.Mask
	Color     core.RGBA
}

// Object describes one non-player entity.
type Object struct {
	ID         int
	Name       string
	Bounds     core.Rect
	Mask       behaviour.Mask
	Layer      world.DrawLayer
	Hidden     bool
	Color      *core.RGBA
	TextureID  *int
	Tint       bool
	Behaviours []BehaviourSpec
}

// SpeedSpec is a Dvd velocity, fixed or drawn from [Min, Max] per axis.
type SpeedSpec struct {
	Random bool
	Value  core.Vec
	Min    core.Vec
	Max    core.Vec
}

// BehaviourSpec configures one chain stage.
type BehaviourSpec struct {
	Type      string
	Clamp     *core.Rect
	Speed     *SpeedSpec
	WalkSpeed float64
	RunSpeed  float64
	Mask      *behaviour.Mask // Collision mask; nil uses the object's mask
	Mass      float64
}

// FromDocument converts a decoded file into a Level, filling in defaults.
func FromDocument(doc formats.Document) (Level, error) {
	l := Level{
		ID:       doc.ID,
		Name:     doc.Name,
		Start:    core.V(doc.Start.X, doc.Start.Y),
		Metadata: doc.Metadata,
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	if doc.Bounds != nil {
		r := rectOf(*doc.Bounds)
		l.Bounds = &r
	}

	if p := doc.Player; p != nil {
		l.Player = &Player{
			TextureID: p.TextureID,
			Size:      core.V(p.Size.W, p.Size.H),
			Speed:     floatOr(p.Speed, DefaultPlayerSpeed),
			RunSpeed:  floatOr(p.RunSpeed, DefaultPlayerRunSpeed),
			Mass:      floatOr(p.Mass, DefaultMass),
			Mask:      behaviour.Mask(p.Mask),
			Color:     core.Magenta,
		}
		if p.Color != nil {
			l.Player.Color = colorOf(*p.Color)
		}
	}

	for i, o := range doc.Objects {
		obj := Object{
			ID:        o.ID,
			Name:      o.Name,
			Bounds:    rectOf(o.Bounds),
			Mask:      behaviour.Mask(o.Mask),
			Hidden:    o.Hidden,
			TextureID: o.TextureID,
			Tint:      o.TintTexture,
		}
		kind, err := parseLayer(o.Layer)
		if err != nil {
			return Level{}, fmt.Errorf("object #%d (id %d): %w", i, o.ID, err)
		}
		obj.Layer = world.DrawLayer{Kind: kind, Order: o.Order}
		if o.Color != nil {
			c := colorOf(*o.Color)
			obj.Color = &c
		}

		for _, b := range o.Behaviours {
			spec := BehaviourSpec{
				Type:      b.Type,
				WalkSpeed: b.WalkSpeed,
				RunSpeed:  b.RunSpeed,
				Mass:      floatOr(b.Mass, DefaultMass),
			}
			if b.Bounds != nil {
				r := rectOf(*b.Bounds)
				spec.Clamp = &r
			}
			if b.Mask != nil {
				m := behaviour.Mask(*b.Mask)
				spec.Mask = &m
			}
			if b.Speed != nil {
				s, err := speedOf(*b.Speed)
				if err != nil {
					return Level{}, fmt.Errorf("object #%d (id %d): %w", i, o.ID, err)
				}
				spec.Speed = &s
			}
			obj.Behaviours = append(obj.Behaviours, spec)
		}
		l.Objects = append(l.Objects, obj)
	}

	return l, nil
}

// Validate reports every problem in the definition at once.
// Mass and speed preconditions of the simulation are enforced here.
func Validate(l Level) error {
	var errs []error

	if l.ID == "" {
		errs = append(errs, errors.New("missing level id"))
	}
	if l.Bounds != nil && (l.Bounds.W == 0 || l.Bounds.H == 0) {
		errs = append(errs, errors.New("level bounds have zero area"))
	}

	if p := l.Player; p != nil {
		if p.Size.X <= 0 || p.Size.Y <= 0 {
			errs = append(errs, fmt.Errorf("player: size must be positive, got %vx%v", p.Size.X, p.Size.Y))
		}
		if p.Mass <= 0 {
			errs = append(errs, fmt.Errorf("player: mass must be positive, got %v", p.Mass))
		}
		if p.Speed < 0 || p.RunSpeed < 0 {
			errs = append(errs, errors.New("player: speeds must not be negative"))
		}
	}

	seen := make(map[int]bool, len(l.Objects))
	for _, o := range l.Objects {
		if seen[o.ID] {
			errs = append(errs, fmt.Errorf("object %d: duplicate id", o.ID))
		}
		seen[o.ID] = true
		if l.Player != nil && o.ID == PlayerID {
			errs = append(errs, fmt.Errorf("object %d: id is reserved for the player", o.ID))
		}

		for i, b := range o.Behaviours {
			if err := validateBehaviour(b); err != nil {
				errs = append(errs, fmt.Errorf("object %d behaviour #%d: %w", o.ID, i, err))
			}
		}
	}

	return errors.Join(errs...)
}

func validateBehaviour(b BehaviourSpec) error {
	kind, err := behaviour.ParseKind(b.Type)
	if err != nil {
		return err
	}

	switch kind {
	case behaviour.KindDvd:
		if b.Speed == nil {
			return errors.New("dvd needs a speed")
		}
		if b.Speed.Random && (b.Speed.Min.X > b.Speed.Max.X || b.Speed.Min.Y > b.Speed.Max.Y) {
			return fmt.Errorf("random speed min %v exceeds max %v", b.Speed.Min, b.Speed.Max)
		}
	case behaviour.KindControllable:
		if b.WalkSpeed < 0 || b.RunSpeed < 0 {
			return errors.New("controllable speeds must not be negative")
		}
	case behaviour.KindPhysics:
		if b.Mass <= 0 {
			return fmt.Errorf("mass must be positive, got %v", b.Mass)
		}
	}
	return nil
}

func parseLayer(name string) (world.LayerKind, error) {
	switch strings.ToLower(name) {
	case "", "background":
		return world.Background, nil
	case "foreground":
		return world.Foreground, nil
	default:
		return 0, fmt.Errorf("unknown layer %q", name)
	}
}

func speedOf(s formats.Speed) (SpeedSpec, error) {
	switch strings.ToLower(s.Type) {
	case "", "fixed":
		return SpeedSpec{Value: core.V(s.Value.X, s.Value.Y)}, nil
	case "random":
		return SpeedSpec{
			Random: true,
			Min:    core.V(s.Min.X, s.Min.Y),
			Max:    core.V(s.Max.X, s.Max.Y),
		}, nil
	default:
		return SpeedSpec{}, fmt.Errorf("unknown speed type %q", s.Type)
	}
}

func rectOf(b formats.Bounds) core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

func colorOf(c formats.Color) core.RGBA {
	out := core.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	if c.A != nil {
		out.A = *c.A
	}
	return out
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
