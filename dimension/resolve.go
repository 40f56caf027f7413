package dimension

import (
	"math"

	"github.com/cadkit/angdim/geom"
)

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FromCenterRadiusAngles resolves the direct convention: the vertex, the
// extension circle radius, the two boundary ray angles in degrees, and the
// extension line length out to the dimension arc.
//
// All inputs pass through into the Spec unchanged. In particular the angles
// are not normalized and their order is meaningful: the measurement is the
// counter clockwise sweep from startAngle to endAngle.
func FromCenterRadiusAngles(center geom.Point, radius, startAngle, endAngle, distance float64, textRotation *float64) (Spec, error) {
	if !center.IsFinite() || !finite(radius, startAngle, endAngle, distance) {
		return Spec{}, invalidf("non-finite input")
	}
	if textRotation != nil && !finite(*textRotation) {
		return Spec{}, invalidf("non-finite text rotation")
	}
	if radius <= 0 {
		return Spec{}, invalidf("radius %g must be > 0", radius)
	}
	return Spec{
		Center:       center,
		Radius:       radius,
		StartAngle:   startAngle,
		EndAngle:     endAngle,
		Distance:     distance,
		TextRotation: textRotation,
	}, nil
}

// FromThreePoints resolves the defpoint convention: the dimension line
// anchor, the vertex, and one point on each boundary ray. The extension
// circle passes through p1; the extension line length is whatever is left
// between that circle and the anchor.
//
// Feeding the resolved parameters back through FromCenterRadiusAngles
// reproduces base (up to floating point noise), so the two conventions
// describe the same drawing.
func FromThreePoints(base, center, p1, p2 geom.Point, textRotation *float64) (Spec, error) {
	for _, p := range []geom.Point{base, center, p1, p2} {
		if !p.IsFinite() {
			return Spec{}, invalidf("non-finite input point")
		}
	}
	if p1.Coincides(center) || p2.Coincides(center) {
		return Spec{}, degeneratef("boundary point coincides with center %v", center)
	}
	if base.Coincides(center) {
		return Spec{}, degeneratef("dimension line point coincides with center %v", center)
	}
	radius := center.Dist(p1)
	if radius < geom.Tolerance {
		return Spec{}, degeneratef("derived radius %g is zero", radius)
	}
	return FromCenterRadiusAngles(
		center,
		radius,
		p1.Sub(center).Angle(),
		p2.Sub(center).Angle(),
		center.Dist(base)-radius,
		textRotation,
	)
}

// FromTwoLines resolves the convention used to dimension the angle between
// two drawn lines. The vertex is the intersection of the infinite lines; the
// rays point at the farther endpoint of each segment, since the dimension
// measures the angle between the rays, not the raw segments.
//
// The intersection splits the plane into four angles, and base picks which
// one is dimensioned: line1's ray is the start, but if the counter clockwise
// sector from it does not contain the base direction, the rays swap.
func FromTwoLines(base geom.Point, line1, line2 geom.Line) (Spec, error) {
	for _, p := range []geom.Point{base, line1.Start, line1.End, line2.Start, line2.End} {
		if !p.IsFinite() {
			return Spec{}, invalidf("non-finite input point")
		}
	}
	if line1.IsDegenerate() || line2.IsDegenerate() {
		return Spec{}, degeneratef("line endpoints coincide")
	}
	center, ok := geom.Intersect(line1, line2)
	if !ok {
		return Spec{}, parallelf("no intersection between %v and %v", line1, line2)
	}
	if base.Coincides(center) {
		return Spec{}, degeneratef("dimension line point coincides with center %v", center)
	}

	out1 := line1.Outward(center)
	out2 := line2.Outward(center)
	start := out1.Sub(center).Angle()
	end := out2.Sub(center).Angle()
	if !ccwContains(start, end, base.Sub(center).Angle()) {
		start, end = end, start
	}

	radius := math.Min(center.Dist(out1), center.Dist(out2))
	if radius < geom.Tolerance {
		return Spec{}, degeneratef("measured segments collapse onto the vertex %v", center)
	}
	return FromCenterRadiusAngles(
		center,
		radius,
		start,
		end,
		center.Dist(base)-radius,
		nil,
	)
}

// Is the angle a on the counter clockwise arc from start to end?
func ccwContains(start, end, a float64) bool {
	sweep := math.Mod(end-start, 360)
	if sweep < 0 {
		sweep += 360
	}
	to := math.Mod(a-start, 360)
	if to < 0 {
		to += 360
	}
	return to <= sweep
}
