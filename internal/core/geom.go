// Package core provides the shared building blocks of every level.
// It has no external dependencies (especially no Bubble Tea) so level logic
// stays pure and testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	return r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of r.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Vec is a point in session-local (continuous) coordinates.
type Vec struct {
	X, Y float64
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Project maps v from a field of size fieldW x fieldH into r.
func (r Rect) Project(v Vec, fieldW, fieldH float64) (int, int) {
	if fieldW <= 0 || fieldH <= 0 {
		return r.X, r.Y
	}
	x := r.X + int(v.X/fieldW*float64(r.W-1)+0.5)
	y := r.Y + int(v.Y/fieldH*float64(r.H-1)+0.5)
	return x, y
}

// Accuracy returns round(correct/(correct+incorrect)*100); 0/0 is 0.
func Accuracy(correct, incorrect int) int {
	return Percent(correct, correct+incorrect)
}

// Percent returns round(part/total*100), with a zero total giving 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
