// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "math"

// RectF is an axis-aligned bounding box in world pixels.
// Y grows downward, matching screen coordinates.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRectF creates a rectangle with the given position and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset returns a copy of the rectangle with margin trimmed from all four
// edges. Used to erode obstacle hitboxes so near-miss corner overlaps do not
// count as collisions. A margin larger than half the extent collapses the
// rectangle to zero size at its center.
func (r RectF) Inset(margin float64) RectF {
	out := RectF{
		X: r.X + margin,
		Y: r.Y + margin,
		W: r.W - 2*margin,
		H: r.H - 2*margin,
	}
	if out.W < 0 {
		out.X = r.X + r.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = r.Y + r.H/2
		out.H = 0
	}
	return out
}

// Intersects reports whether this rectangle overlaps another.
// Touching edges do not count as overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// IsFinite reports whether all four fields are finite numbers.
// A rectangle that fails this check came from a corrupt frame and must be
// treated as a degraded tick, never fed into collision tests.
func (r RectF) IsFinite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.W) && isFinite(r.H)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
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
