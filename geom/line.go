package geom

import "math"

// Cross products below this bound (on unit directions) are treated as
// parallel. This is much tighter than Tolerance on purpose: the coordinate
// tolerance would reject legitimately skinny angles on the order of a ten
// thousandth of a degree, while unit directions make this bound scale free.
const ParallelTolerance = 1e-9

// Line is the infinite line through two distinct points. The two points are
// also kept as a segment when a caller cares about which end is which.
type Line struct {
	Start Point
	End   Point
}

func (l Line) Dir() Point {
	return l.End.Sub(l.Start)
}

// A line whose defining points coincide has no direction.
func (l Line) IsDegenerate() bool {
	return l.Start.Coincides(l.End)
}

// Outward returns whichever defining point of l is farther from p. When a
// segment is dimensioned against a vertex, this is the endpoint that fixes
// the ray direction of the measured angle.
func (l Line) Outward(p Point) Point {
	if p.Dist(l.Start) > p.Dist(l.End) {
		return l.Start
	}
	return l.End
}

// Intersect computes the intersection of the infinite lines through a and b.
// ok is false when the lines are parallel or coincident.
func Intersect(a, b Line) (p Point, ok bool) {
	da := a.Dir().Unit()
	db := b.Dir().Unit()
	denom := da.Cross(db)
	// Negated >= so that a NaN denom (a line whose points coincide has no
	// unit direction) lands on the no-intersection side instead of leaking
	// NaN coordinates to the caller.
	if !(math.Abs(denom) >= ParallelTolerance) {
		return Point{}, false
	}
	// Solve a.Start + t*da == b.Start + u*db for t.
	t := b.Start.Sub(a.Start).Cross(db) / denom
	return a.Start.Add(da.Scale(t)), true
}
