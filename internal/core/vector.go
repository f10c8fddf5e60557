package core

import "math"

// Integer lists the integer kinds a Vector2 may be instantiated with.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float lists the floating point kinds. Length and Normalize need these.
type Float interface {
	~float32 | ~float64
}

// Number is any kind Vector2 arithmetic is closed over.
type Number interface {
	Integer | Float
}

// Vector2 is a 2D value type.
type Vector2[T Number] struct {
	X T `yaml:"x" toml:"x" json:"x"`
	Y T `yaml:"y" toml:"y" json:"y"`
}

// Vec is the float vector used by the simulation.
type Vec = Vector2[float64]

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Unit returns {1, 1}.
func Unit[T Number]() Vector2[T] {
	return Vector2[T]{X: 1, Y: 1}
}

// Add returns v + o.
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s. Integer division by zero panics like any Go division.
func (v Vector2[T]) Div(s T) Vector2[T] {
	return Vector2[T]{X: v.X / s, Y: v.Y / s}
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{X: -v.X, Y: -v.Y}
}

// Dot returns x1*x2 + y1*y2.
func (v Vector2[T]) Dot(o Vector2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// IsZero reports whether both components are zero.
func (v Vector2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Length returns sqrt(x² + y²).
func Length[F Float](v Vector2[F]) F {
	return F(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns v scaled to unit length.
// A zero vector produces NaN components; callers must check Length first.
func Normalize[F Float](v Vector2[F]) Vector2[F] {
	return v.Div(Length(v))
}
