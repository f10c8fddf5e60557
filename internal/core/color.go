package core

import "fmt"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for HUD elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGBA is a true color as written in level files.
type RGBA struct {
	R uint8 `yaml:"r" toml:"r" json:"r"`
	G uint8 `yaml:"g" toml:"g" json:"g"`
	B uint8 `yaml:"b" toml:"b" json:"b"`
	A uint8 `yaml:"a" toml:"a" json:"a"`
}

// Common colors.
var (
	White   = RGBA{R: 255, G: 255, B: 255, A: 255}
	Magenta = RGBA{R: 255, G: 0, B: 255, A: 255}
)

// Hex returns the color as "#rrggbb". Alpha is dropped; terminals have no blending.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
