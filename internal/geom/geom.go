// Package geom provides the viewport-relative geometry used by the
// focus graph and the scroll coordinator. Coordinates follow screen
// convention: X grows rightward, Y grows downward.
package geom

import "math"

// Point represents a position in viewport-relative units.
type Point struct {
	X float64
	Y float64
}

// Add returns the point translated by the given offset.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the point translated by the negation of the given offset.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Axis identifies a movement axis.
type Axis uint8

const (
	// AxisHorizontal is the X axis.
	AxisHorizontal Axis = iota
	// AxisVertical is the Y axis.
	AxisVertical
)

// String returns a string representation of the axis.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Rect is an axis-aligned bounding box in viewport-relative units.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns the rectangle moved by the given offset.
func (r Rect) Translate(by Point) Rect {
	return Rect{X: r.X + by.X, Y: r.Y + by.Y, W: r.W, H: r.H}
}

// ContainsPoint returns true if the point lies inside the rectangle.
// Edges are inclusive on the min side and exclusive on the max side.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// ContainsRect returns true if other lies entirely inside r.
// A rectangle contains itself.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.MaxX() <= r.MaxX() &&
		other.Y >= r.Y && other.MaxY() <= r.MaxY()
}

// Intersects returns true if the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.MaxX() && other.X < r.MaxX() &&
		r.Y < other.MaxY() && other.Y < r.MaxY()
}

// OverlapFraction returns the fraction of r's extent along the given
// axis that overlaps other's extent on the same axis. The result is in
// [0, 1]; zero-extent rectangles yield 0.
func (r Rect) OverlapFraction(other Rect, axis Axis) float64 {
	var lo, hi, extent float64
	switch axis {
	case AxisHorizontal:
		lo = math.Max(r.X, other.X)
		hi = math.Min(r.MaxX(), other.MaxX())
		extent = r.W
	case AxisVertical:
		lo = math.Max(r.Y, other.Y)
		hi = math.Min(r.MaxY(), other.MaxY())
		extent = r.H
	}
	if extent <= 0 || hi <= lo {
		return 0
	}
	return (hi - lo) / extent
}
