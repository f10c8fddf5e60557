// Package formats provides pluggable level file format parsers.
//
// Every format decodes into the same Document tree; the level package turns
// a Document into a validated level definition.
package formats

import "fmt"

// Document is the on-disk shape of a level file.
type Document struct {
	ID       string            `yaml:"id" toml:"id" json:"id"`
	Name     string            `yaml:"name" toml:"name" json:"name"`
	Start    Point             `yaml:"start" toml:"start" json:"start"`
	Bounds   *Bounds           `yaml:"bounds,omitempty" toml:"bounds,omitempty" json:"bounds,omitempty"`
	Player   *Player           `yaml:"player,omitempty" toml:"player,omitempty" json:"player,omitempty"`
	Objects  []Object          `yaml:"objects" toml:"objects" json:"objects"`
	Metadata map[string]string `yaml:"metadata,omitempty" toml:"metadata,omitempty" json:"metadata,omitempty"`
}

// Point is a position or velocity.
type Point struct {
	X float64 `yaml:"x" toml:"x" json:"x"`
	Y float64 `yaml:"y" toml:"y" json:"y"`
}

// Size is a width and height.
type Size struct {
	W float64 `yaml:"w" toml:"w" json:"w"`
	H float64 `yaml:"h" toml:"h" json:"h"`
}

// Bounds is a rectangle; width and height may be negative.
type Bounds struct {
	X float64 `yaml:"x" toml:"x" json:"x"`
	Y float64 `yaml:"y" toml:"y" json:"y"`
	W float64 `yaml:"w" toml:"w" json:"w"`
	H float64 `yaml:"h" toml:"h" json:"h"`
}

// Color is an RGBA color. A missing alpha is opaque.
type Color struct {
	R uint8  `yaml:"r" toml:"r" json:"r"`
	G uint8  `yaml:"g" toml:"g" json:"g"`
	B uint8  `yaml:"b" toml:"b" json:"b"`
	A *uint8 `yaml:"a,omitempty" toml:"a,omitempty" json:"a,omitempty"`
}

// Player describes the controllable entity.
type Player struct {
	TextureID *int     `yaml:"texture_id,omitempty" toml:"texture_id,omitempty" json:"texture_id,omitempty"`
	Size      Size     `yaml:"size" toml:"size" json:"size"`
	Speed     *float64 `yaml:"speed,omitempty" toml:"speed,omitempty" json:"speed,omitempty"`
	RunSpeed  *float64 `yaml:"run_speed,omitempty" toml:"run_speed,omitempty" json:"run_speed,omitempty"`
	Mass      *float64 `yaml:"mass,omitempty" toml:"mass,omitempty" json:"mass,omitempty"`
	Mask      uint32   `yaml:"mask,omitempty" toml:"mask,omitempty" json:"mask,omitempty"`
	Color     *Color   `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
}

// Object describes one level entity.
type Object struct {
	ID          int         `yaml:"id" toml:"id" json:"id"`
	Name        string      `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Bounds      Bounds      `yaml:"bounds" toml:"bounds" json:"bounds"`
	Mask        uint32      `yaml:"mask,omitempty" toml:"mask,omitempty" json:"mask,omitempty"`
	Layer       string      `yaml:"layer,omitempty" toml:"layer,omitempty" json:"layer,omitempty"`
	Order       int         `yaml:"order,omitempty" toml:"order,omitempty" json:"order,omitempty"`
	Hidden      bool        `yaml:"hidden,omitempty" toml:"hidden,omitempty" json:"hidden,omitempty"`
	Color       *Color      `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	TextureID   *int        `yaml:"texture_id,omitempty" toml:"texture_id,omitempty" json:"texture_id,omitempty"`
	TintTexture bool        `yaml:"tint_texture,omitempty" toml:"tint_texture,omitempty" json:"tint_texture,omitempty"`
	Behaviours  []Behaviour `yaml:"behaviours,omitempty" toml:"behaviours,omitempty" json:"behaviours,omitempty"`
}

// Behaviour configures one chain stage. Which fields apply depends on Type.
type Behaviour struct {
	Type      string   `yaml:"type" toml:"type" json:"type"`
	Bounds    *Bounds  `yaml:"bounds,omitempty" toml:"bounds,omitempty" json:"bounds,omitempty"`
	Speed     *Speed   `yaml:"speed,omitempty" toml:"speed,omitempty" json:"speed,omitempty"`
	WalkSpeed float64  `yaml:"walk_speed,omitempty" toml:"walk_speed,omitempty" json:"walk_speed,omitempty"`
	RunSpeed  float64  `yaml:"run_speed,omitempty" toml:"run_speed,omitempty" json:"run_speed,omitempty"`
	Mask      *uint32  `yaml:"mask,omitempty" toml:"mask,omitempty" json:"mask,omitempty"`
	Mass      *float64 `yaml:"mass,omitempty" toml:"mass,omitempty" json:"mass,omitempty"`
}

// Speed is a Dvd velocity: either fixed or drawn uniformly from [min, max].
type Speed struct {
	Type  string `yaml:"type" toml:"type" json:"type"`
	Value Point  `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty"`
	Min   Point  `yaml:"min,omitempty" toml:"min,omitempty" json:"min,omitempty"`
	Max   Point  `yaml:"max,omitempty" toml:"max,omitempty" json:"max,omitempty"`
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml", ".json"}
}

// Parse routes to the parser registered for ext.
func Parse(data []byte, ext string) (Document, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return Document{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
