// Angular dimension geometry for Go.
//
// This package resolves the three conventions CAD users describe an angular
// dimension with — center/radius/angles, three defpoints, or two measured
// lines — into one canonical Spec, and renders specs to raster sheets (see
// the render subpackage).
//
// The measured arc always runs counter clockwise from the start ray to the
// end ray. Swapping the rays measures the complementary arc; that is how a
// caller chooses between the two angles at a vertex, and it is never
// "corrected" to the smaller one.
package angdim

import (
	"github.com/cadkit/angdim/dimension"
	"github.com/cadkit/angdim/geom"
)

type Point = geom.Point
type Line = geom.Line
type Spec = dimension.Spec
type AngleUnit = dimension.AngleUnit

var (
	ErrInvalidGeometry    = dimension.ErrInvalidGeometry
	ErrDegenerateGeometry = dimension.ErrDegenerateGeometry
	ErrParallelLines      = dimension.ErrParallelLines
)

// FromCenterRadiusAngles resolves a dimension from its vertex, the radius
// of the extension circle, the two boundary ray angles in degrees, and the
// extension line length out to the dimension arc.
func FromCenterRadiusAngles(center Point, radius, startAngle, endAngle, distance float64, textRotation *float64) (Spec, error) {
	return dimension.FromCenterRadiusAngles(center, radius, startAngle, endAngle, distance, textRotation)
}

// FromThreePoints resolves a dimension from its dimension line point, its
// vertex, and one point on each boundary ray.
func FromThreePoints(base, center, p1, p2 Point, textRotation *float64) (Spec, error) {
	return dimension.FromThreePoints(base, center, p1, p2, textRotation)
}

// FromTwoLines resolves a dimension measuring the angle between two lines,
// placed at base. The base picks which of the four angles at the
// intersection is dimensioned.
func FromTwoLines(base Point, line1, line2 Line) (Spec, error) {
	return dimension.FromTwoLines(base, line1, line2)
}

// Rotation fills the optional text rotation argument.
func Rotation(deg float64) *float64 {
	return dimension.Rotation(deg)
}
