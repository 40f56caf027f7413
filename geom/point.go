package geom

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
// Without this, angle derivations on nearly coincident points produce
// garbage directions instead of failing cleanly.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Point is an immutable 2D coordinate. All operations return new values;
// a Point is never modified in place, so values can be shared freely
// between goroutines.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Linear interpolation between p and q. t=0 gives p, t=1 gives q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Dist(q Point) float64 {
	return q.Sub(p).Length()
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Z component of the cross product. The sign tells you which side of p the
// vector q lies on; near zero means the vectors are parallel.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Angle of the vector from the origin to p, in degrees, measured counter
// clockwise from the positive x axis and normalized to [0, 360).
func (p Point) Angle() float64 {
	deg := math.Atan2(p.Y, p.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Unit returns the direction of p with length 1. The zero vector has no
// direction; callers must check for that case themselves (see Line).
func (p Point) Unit() Point {
	length := p.Length()
	return Point{p.X / length, p.Y / length}
}

func (p Point) Coincides(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// FromDegAngle constructs the point at the given polar angle (degrees,
// counter clockwise from the positive x axis) and distance from the origin.
func FromDegAngle(deg, length float64) Point {
	rad := deg * math.Pi / 180
	return Point{math.Cos(rad) * length, math.Sin(rad) * length}
}
