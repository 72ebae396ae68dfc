// Package catchit implements the simulation core of the catchit chase game.
// A pointer-driven hunter chases a prey around a bounded field while dodging
// obstacles that accumulate with every capture.
//
// The package has no dependencies outside the standard library and no
// notion of rendering, input devices or wall-clock time. Hosts feed it
// pointer positions and elapsed seconds and read back state snapshots.
package catchit

import "math"

// Vec2 is a two-component vector in field units.
type Vec2 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Position is a point in the field, origin at the top-left corner.
type Position = Vec2

// Velocity is a rate of change in field units per second.
type Velocity = Vec2

// Extent is a width/height pair.
type Extent = Vec2

// V is shorthand for constructing a Vec2.
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

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length.
// The zero vector stays zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Shape selects the collision test used for an object.
type Shape int

const (
	Circle Shape = iota
	Square
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the shape by name.
func (s Shape) MarshalYAML() (any, error) {
	return s.String(), nil
}

// Object is a positioned game entity. Pos is its center.
type Object struct {
	Pos      Position `yaml:"pos" json:"pos"`
	HalfSize float64  `yaml:"half_size" json:"half_size"`
	Shape    Shape    `yaml:"shape" json:"shape"`
}

// Left returns the x coordinate of the left bound.
func (o Object) Left() float64 {
	return o.Pos.X - o.HalfSize
}

// Right returns the x coordinate of the right bound.
func (o Object) Right() float64 {
	return o.Pos.X + o.HalfSize
}

// Top returns the y coordinate of the top bound.
func (o Object) Top() float64 {
	return o.Pos.Y - o.HalfSize
}

// Bottom returns the y coordinate of the bottom bound.
func (o Object) Bottom() float64 {
	return o.Pos.Y + o.HalfSize
}

// Intersects reports whether o and other overlap.
// Two circles use a true center-distance test. Every other pairing falls
// back to an inclusive bounding-box overlap, so a circle against a square is
// an approximation.
func (o Object) Intersects(other Object) bool {
	if o.Shape == Circle && other.Shape == Circle {
		return o.Pos.Sub(other.Pos).Len() <= o.HalfSize+other.HalfSize
	}
	return o.Left() <= other.Right() && o.Right() >= other.Left() &&
		o.Top() <= other.Bottom() && o.Bottom() >= other.Top()
}
