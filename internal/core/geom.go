// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in screen-space pixels.
// The origin is the top-left corner of the play area.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height, never negative
}

// NewRect creates a new rectangle with the given position and dimensions.
// Negative sizes are clamped to zero.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Uses half-open intervals on both axes; empty rectangles never intersect
// anything, themselves included.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Intersects is the free-function form of Rect.Intersects.
func Intersects(a, b Rect) bool {
	return a.Intersects(b)
}

// Inflate grows (or shrinks, for negative deltas) the rectangle around its
// center. The resulting size never goes below zero.
func (r Rect) Inflate(dw, dh float64) Rect {
	cx, cy := r.Center()
	w := max(r.W+dw, 0)
	h := max(r.H+dh, 0)
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset describes how a hitbox is derived from visual bounds:
// the bounds are inflated by (DW, DH) and then shifted down by DY.
type Inset struct {
	DW float64 `yaml:"dw"`
	DH float64 `yaml:"dh"`
	DY float64 `yaml:"dy"`
}

// Apply returns the hitbox for the given visual bounds.
func (in Inset) Apply(r Rect) Rect {
	return r.Inflate(in.DW, in.DH).Offset(0, in.DY)
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
