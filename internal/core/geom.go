// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a position (or offset) on the game plane, measured in board units.
// The Y axis points up, like the drawing surface the game was designed for.
type Vec struct {
	X, Y int
}

// V is shorthand for constructing a Vec.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k int) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Distance returns the Euclidean distance between two positions.
func (v Vec) Distance(o Vec) float64 {
	d := v.Sub(o)
	return math.Hypot(float64(d.X), float64(d.Y))
}

// Within reports whether o lies strictly closer than r to v.
func (v Vec) Within(o Vec, r int) bool {
	return v.Distance(o) < float64(r)
}

// Bounds describes a board centred on the origin by its half-extents.
// Valid positions satisfy -XLimit <= x <= XLimit and -YLimit <= y <= YLimit.
type Bounds struct {
	XLimit int
	YLimit int
}

// BoundsFor returns the bounds of a board with the given full width and height.
func BoundsFor(width, height int) Bounds {
	return Bounds{XLimit: width / 2, YLimit: height / 2}
}

// Contains reports whether p is inside the bounds (edges inclusive).
func (b Bounds) Contains(p Vec) bool {
	return Abs(p.X) <= b.XLimit && Abs(p.Y) <= b.YLimit
}

// Rect represents an axis-aligned box in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
