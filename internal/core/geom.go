// Package core holds the types shared by the simulation and every
// front-end: geometry, input frames, cues, run state and the character
// screen buffer. It imports nothing outside the standard library so game
// logic stays free of terminal and window code.
package core

import "math"

// Rect represents an axis-aligned cell rectangle used for screen drawing.
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

// Box is an axis-aligned rectangle in world space.
// Simulation code works in base-viewport units, not terminal cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a world-space rectangle.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Inset shrinks the box by margin on every side.
// A margin larger than half a side collapses that side to zero length.
func (b Box) Inset(margin float64) Box {
	return Box{
		X: b.X + margin,
		Y: b.Y + margin,
		W: max(b.W-2*margin, 0),
		H: max(b.H-2*margin, 0),
	}
}

// BoxesIntersect is the strict AABB overlap test. Touching edges do not
// count as overlap.
func BoxesIntersect(a, b Box) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Circle is a world-space circle (center plus radius).
type Circle struct {
	X, Y float64
	R    float64
}

// CircleBoxIntersect tests the circle against the box using the closest
// point on the box to the circle center.
func CircleBoxIntersect(c Circle, b Box) bool {
	nx := min(max(c.X, b.X), b.Right())
	ny := min(max(c.Y, b.Y), b.Bottom())
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy < c.R*c.R
}

// Round converts a world coordinate to the nearest cell index.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}
