// Package core provides fundamental types and utilities for Power Crisis.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when a rectangle has a non-positive or
// non-finite size, or a non-finite position.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect represents an axis-aligned bounding box in world units.
// The Y axis points down: Top is Y, Bottom is Y+H.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
// It does not validate; use Validate before handing geometry to a simulation.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// MoveTo returns a copy of r with its top-left corner at p.
func (r Rect) MoveTo(p Vec2) Rect {
	r.X = p.X
	r.Y = p.Y
	return r
}

// Grow returns r expanded by m on every side.
func (r Rect) Grow(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Validate reports whether r is usable for collision tests.
func (r Rect) Validate() error {
	for _, f := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("rect %v: non-finite field: %w", r, ErrInvalidGeometry)
		}
	}
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("rect %v: width and height must be positive: %w", r, ErrInvalidGeometry)
	}
	return nil
}

// Contains returns true if the point p is inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// HitBoxer is implemented by anything that takes part in collision tests.
type HitBoxer interface {
	HitBox() Rect
}

// Overlaps reports whether the open interiors of a and b intersect.
// Rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}

// Resolve computes where mover has to go to stop overlapping obstacle.
//
// The correction is applied along the single direction that needs the
// least displacement, so a mover pressed against a wall slides along it
// instead of snapping. Depths are compared in the order bottom, top,
// left, right and the first minimum wins.
//
// The returned position is the new top-left corner of mover. ok is false
// when the rectangles do not overlap.
func Resolve(mover, obstacle Rect) (pos Vec2, ok bool) {
	if !Overlaps(mover, obstacle) {
		return Vec2{}, false
	}

	// How far mover must travel in each direction to clear obstacle.
	bottomIn := mover.Bottom() - obstacle.Top() // push up, mover ends above
	topIn := obstacle.Bottom() - mover.Top()    // push down, mover ends below
	leftIn := mover.Right() - obstacle.Left()   // push left
	rightIn := obstacle.Right() - mover.Left()  // push right

	switch {
	case bottomIn <= topIn && bottomIn <= leftIn && bottomIn <= rightIn:
		return Vec2{X: mover.X, Y: before(obstacle.Top(), mover.H)}, true
	case topIn <= leftIn && topIn <= rightIn:
		return Vec2{X: mover.X, Y: obstacle.Bottom()}, true
	case leftIn <= rightIn:
		return Vec2{X: before(obstacle.Left(), mover.W), Y: mover.Y}, true
	default:
		return Vec2{X: obstacle.Right(), Y: mover.Y}, true
	}
}

// before returns edge-size, stepped down until p+size no longer rounds
// past edge.
func before(edge, size float64) float64 {
	p := edge - size
	for p+size > edge {
		p = math.Nextafter(p, math.Inf(-1))
	}
	return p
}

// ResolveAll corrects mover against each obstacle in turn.
// A later correction may push mover back into an earlier obstacle; that
// residual overlap is left for the next frame.
func ResolveAll[T HitBoxer](mover Rect, obstacles []T) Rect {
	for _, o := range obstacles {
		if p, ok := Resolve(mover, o.HitBox()); ok {
			mover = mover.MoveTo(p)
		}
	}
	return mover
}

// ClampToBounds keeps r inside [0, w] x [0, h].
// Each edge is checked independently: left, top, right, bottom.
func ClampToBounds(r Rect, w, h float64) Rect {
	if r.Left() < 0 {
		r.X = 0
	}
	if r.Top() < 0 {
		r.Y = 0
	}
	if r.Right() > w {
		r.X = w - r.W
	}
	if r.Bottom() > h {
		r.Y = h - r.H
	}
	return r
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
