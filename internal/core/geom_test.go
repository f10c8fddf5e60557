package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRectEdgesNormalized(t *testing.T) {
	tests := []struct {
		name                     string
		r                        Rect
		left, right, top, bottom float64
	}{
		{"positive size", NewRect(0, 0, 10, 10), 0, 10, 0, 10},
		{"negative size", NewRect(10, 10, -10, -10), 0, 10, 0, 10},
		{"negative width only", NewRect(5, 2, -4, 3), 1, 5, 2, 5},
		{"negative height only", NewRect(5, 2, 4, -3), 5, 9, -1, 2},
		{"zero size", NewRect(3, 4, 0, 0), 3, 3, 4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.r.Left() != tc.left || tc.r.Right() != tc.right {
				t.Errorf("Left/Right = %v/%v, expected %v/%v", tc.r.Left(), tc.r.Right(), tc.left, tc.right)
			}
			if tc.r.Top() != tc.top || tc.r.Bottom() != tc.bottom {
				t.Errorf("Top/Bottom = %v/%v, expected %v/%v", tc.r.Top(), tc.r.Bottom(), tc.top, tc.bottom)
			}
			if tc.r.Left() > tc.r.Right() || tc.r.Top() > tc.r.Bottom() {
				t.Error("edges are not ordered")
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	c := NewRect(10, 10, -10, -10).Center()
	if c != V(5, 5) {
		t.Errorf("Center() = %v, expected (5, 5)", c)
	}
}

func TestRectSetCenter(t *testing.T) {
	rects := []Rect{
		NewRect(0, 0, 10, 20),
		NewRect(10, 10, -10, -4),
		NewRect(-3, 7, 0.5, -2.25),
	}
	points := []Vec{V(0, 0), V(100, -50), V(3.3, 7.7)}

	for _, r := range rects {
		for _, p := range points {
			moved := r.SetCenter(p)
			c := moved.Center()
			if !approx(c.X, p.X) || !approx(c.Y, p.Y) {
				t.Errorf("SetCenter(%v) on %v: center = %v", p, r, c)
			}
			if moved.W != r.W || moved.H != r.H {
				t.Errorf("SetCenter changed size: %v -> %v", r, moved)
			}
		}
	}
}

func TestRectIntersects(t *testing.T) {
	canvas := NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"completely inside", canvas, NewRect(0, 0, 1, 1), true},
		{"corner overlap", canvas, NewRect(-1, -1, 1, 1), true},
		{"disjoint", canvas, NewRect(11, 0, 1, 1), false},
		{"cross shape", canvas, NewRect(4, -1, 1, 20), true},
		{"x between edges but no overlap", canvas, NewRect(4, 100, 1, 1), false},
		{"shared vertical edge", canvas, NewRect(10, 2, 5, 5), true},
		{"shared horizontal edge", canvas, NewRect(2, 10, 5, 5), true},
		{"gap of one", canvas, NewRect(11, 11, 5, 5), false},
		{"negative size overlap", canvas, NewRect(12, 12, -4, -4), true},
		{"self", canvas, canvas, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	got := a.Intersection(NewRect(5, 8, 10, 10))
	if got != NewRect(5, 8, 5, 2) {
		t.Errorf("Intersection() = %v, expected (5,8,5,2)", got)
	}

	edge := a.Intersection(NewRect(10, 0, 5, 10))
	if edge.W != 0 || edge.H != 10 {
		t.Errorf("edge Intersection() = %v, expected zero width and height 10", edge)
	}

	if none := a.Intersection(NewRect(20, 20, 1, 1)); none != (Rect{}) {
		t.Errorf("disjoint Intersection() = %v, expected zero rect", none)
	}
}

func TestRectIsInside(t *testing.T) {
	for _, r := range []Rect{NewRect(0, 0, 10, 10), NewRect(10, 10, -10, -10)} {
		tests := []struct {
			p        Vec
			expected bool
		}{
			{V(0, 0), true},
			{V(10, 10), true},
			{V(5, 5), true},
			{V(0, 100), false},
			{V(100, 0), false},
			{V(-10, 0), false},
		}
		for _, tc := range tests {
			if got := r.IsInside(tc.p); got != tc.expected {
				t.Errorf("%v.IsInside(%v) = %v, expected %v", r, tc.p, got, tc.expected)
			}
		}
	}
}

func TestRectClampPoint(t *testing.T) {
	r := NewRect(0, 0, 200, 100)
	if got := r.ClampPoint(V(250, -5)); got != V(200, 0) {
		t.Errorf("ClampPoint() = %v, expected (200, 0)", got)
	}
	if got := r.ClampPoint(V(20, 30)); got != V(20, 30) {
		t.Errorf("ClampPoint() moved an inside point: %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(0.1) != 1 {
		t.Error("Sign returned an unexpected value")
	}
}
