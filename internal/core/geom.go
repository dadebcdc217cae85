// Package core provides fundamental types and utilities for the breakout engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// BoundingBox is an axis-aligned box in arena-relative pixels.
// The same shape is used for the arena, paddle, ball and every brick.
type BoundingBox struct {
	Left, Right float64
	Top, Bottom float64
}

// NewBox creates a box from its top-left corner and size.
func NewBox(left, top, width, height float64) BoundingBox {
	return BoundingBox{
		Left:   left,
		Right:  left + width,
		Top:    top,
		Bottom: top + height,
	}
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// CenterX returns the horizontal center of the box.
func (b BoundingBox) CenterX() float64 {
	return b.Left + (b.Right-b.Left)/2
}

// IsZero reports whether every edge is zero. Geometry providers return the
// zero box for elements that are not mounted yet.
func (b BoundingBox) IsZero() bool {
	return b == BoundingBox{}
}

// Overlaps returns true if the two boxes overlap.
// Edges are inclusive: boxes that touch along an edge count as overlapping.
func (b BoundingBox) Overlaps(other BoundingBox) bool {
	return b.Right >= other.Left &&
		b.Left <= other.Right &&
		b.Bottom >= other.Top &&
		b.Top <= other.Bottom
}

// OverlapWidth returns the width of the horizontal intersection of two boxes.
// The result is negative when the boxes are horizontally apart.
func (b BoundingBox) OverlapWidth(other BoundingBox) float64 {
	return min(b.Right, other.Right) - max(b.Left, other.Left)
}

// Translate returns the box moved by (dx, dy).
func (b BoundingBox) Translate(dx, dy float64) BoundingBox {
	return BoundingBox{
		Left:   b.Left + dx,
		Right:  b.Right + dx,
		Top:    b.Top + dy,
		Bottom: b.Bottom + dy,
	}
}

// Vector2 is a 2D vector in pixels per tick.
type Vector2 struct {
	X, Y float64
}

// Scale returns the vector multiplied by f.
func (v Vector2) Scale(f float64) Vector2 {
	return Vector2{X: v.X * f, Y: v.Y * f}
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
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
