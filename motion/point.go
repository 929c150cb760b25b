package motion

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Point is a plain 2-D value in device-independent pixels.
type Point = dmath.Vec2

// Pt is shorthand for building a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sanitize coerces non-finite components to 0 so a coordinate computed
// before layout is ready never spreads NaN through later frames.
func Sanitize(p Point) Point {
	return Point{X: finite(p.X), Y: finite(p.Y)}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Near reports whether both axis deltas between a and b are below eps.
func Near(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the box.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the box, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Inset grows the box by pad on every side. Negative pad shrinks it.
func (r Rect) Inset(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// Normalize maps a signed distance d from the center of a span with
// half-extent m into [-1, 1]. Values outside the span are clamped.
func Normalize(d, m float64) float64 {
	if m <= 0 || math.IsNaN(d) {
		return 0
	}
	n := 2*(d-(-m))/(m-(-m)) - 1
	return math.Max(-1, math.Min(1, n))
}
