// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned box in world units. Positions are real-valued so
// entities can move by fractions of a unit per tick.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
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

// Empty reports whether the rectangle has no area.
func (r RectF) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if the rectangles overlap.
// Rectangles that only share an edge do not intersect.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// IntersectsAny returns true if r overlaps at least one of the given rectangles.
func (r RectF) IntersectsAny(others []RectF) bool {
	for _, o := range others {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

// Subtract returns the parts of r that lie outside cut.
// The result has up to four pieces; r itself is returned when they don't overlap.
func (r RectF) Subtract(cut RectF) []RectF {
	if !r.Intersects(cut) {
		return []RectF{r}
	}

	var pieces []RectF
	// Band above the cut, full width
	if cut.Y > r.Y {
		pieces = append(pieces, NewRectF(r.X, r.Y, r.W, cut.Y-r.Y))
	}
	// Band below the cut, full width
	if cut.Bottom() < r.Bottom() {
		pieces = append(pieces, NewRectF(r.X, cut.Bottom(), r.W, r.Bottom()-cut.Bottom()))
	}

	// Middle band, restricted to the vertical overlap
	top := maxF(r.Y, cut.Y)
	bottom := minF(r.Bottom(), cut.Bottom())
	if cut.X > r.X {
		pieces = append(pieces, NewRectF(r.X, top, cut.X-r.X, bottom-top))
	}
	if cut.Right() < r.Right() {
		pieces = append(pieces, NewRectF(cut.Right(), top, r.Right()-cut.Right(), bottom-top))
	}
	return pieces
}

// Axis selects the direction of a single-axis move.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// ResolveAxis pushes a rectangle that has just moved by delta along axis out of
// any obstacle it now overlaps. The leading edge is clamped flush against the
// nearest overlapping obstacle's opposing edge: moving right clamps the right
// edge to the obstacle's left edge, moving up clamps the top edge to the
// obstacle's bottom edge, and so on.
func ResolveAxis(moving RectF, obstacles []RectF, axis Axis, delta float64) RectF {
	if delta == 0 {
		return moving
	}

	hit := false
	var limit float64
	for _, o := range obstacles {
		if !moving.Intersects(o) {
			continue
		}
		var edge float64
		switch {
		case axis == AxisX && delta > 0:
			edge = o.X
		case axis == AxisX:
			edge = o.Right()
		case delta > 0:
			edge = o.Y
		default:
			edge = o.Bottom()
		}

		// Keep the edge closest to where the move started
		if !hit || (delta > 0 && edge < limit) || (delta < 0 && edge > limit) {
			limit = edge
		}
		hit = true
	}

	if !hit {
		return moving
	}

	switch {
	case axis == AxisX && delta > 0:
		moving.X = limit - moving.W
	case axis == AxisX:
		moving.X = limit
	case delta > 0:
		moving.Y = limit - moving.H
	default:
		moving.Y = limit
	}
	return moving
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

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
