// Package core provides fundamental types and utilities for the sandbox.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in world pixels.
// Width and height may be negative; the edge accessors always report
// normalized values so that Left <= Right and Top <= Bottom.
type Rect struct {
	X, Y float64 // Anchor corner
	W, H float64 // Width and height, either sign
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the smaller x edge.
func (r Rect) Left() float64 {
	return math.Min(r.X, r.X+r.W)
}

// Right returns the larger x edge.
func (r Rect) Right() float64 {
	return math.Max(r.X, r.X+r.W)
}

// Top returns the smaller y edge (y grows downward).
func (r Rect) Top() float64 {
	return math.Min(r.Y, r.Y+r.H)
}

// Bottom returns the larger y edge.
func (r Rect) Bottom() float64 {
	return math.Max(r.Y, r.Y+r.H)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{
		X: (r.Left() + r.Right()) / 2,
		Y: (r.Top() + r.Bottom()) / 2,
	}
}

// SetCenter returns a copy of r moved so that its center is p.
// Width and height, including their signs, are preserved.
func (r Rect) SetCenter(p Vec) Rect {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H/2
	return r
}

// Normalized returns the equivalent rectangle with non-negative size.
func (r Rect) Normalized() Rect {
	return Rect{X: r.Left(), Y: r.Top(), W: r.Right() - r.Left(), H: r.Bottom() - r.Top()}
}

// IsInside reports whether p lies inside the rectangle, edges included.
func (r Rect) IsInside(p Vec) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects returns true if this rectangle overlaps with another.
// Edges are closed: rectangles that only touch are reported as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() <= other.Right() &&
		r.Right() >= other.Left() &&
		r.Top() <= other.Bottom() &&
		r.Bottom() >= other.Top()
}

// Intersection returns the overlapping area of two rectangles.
// Touching rectangles yield a zero-width or zero-height rectangle on the shared edge.
// Disjoint rectangles yield the zero Rect.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	left := math.Max(r.Left(), other.Left())
	right := math.Min(r.Right(), other.Right())
	top := math.Max(r.Top(), other.Top())
	bottom := math.Min(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// ClampPoint restricts p to lie within the rectangle.
func (r Rect) ClampPoint(p Vec) Vec {
	return Vec{
		X: ClampF(p.X, r.Left(), r.Right()),
		Y: ClampF(p.Y, r.Top(), r.Bottom()),
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0, or 1.
func Sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
