// Package dimension resolves angular dimensions. Three input conventions
// (center/radius/angles, three points, two lines) converge on one canonical
// Spec value, which a renderer turns into extension lines, a dimension arc,
// arrowheads and a measurement label.
package dimension

import (
	"math"

	"github.com/cadkit/angdim/geom"
)

// Spec is the canonical description of an angular dimension. It is a pure
// immutable value: the resolvers construct it, nothing mutates it afterward,
// and all derived geometry is computed on demand.
//
// The measured arc always runs counter clockwise from StartAngle to
// EndAngle. This is NOT the same as "the smaller angle between the rays":
// swapping the arguments measures the complementary arc, and that is the
// caller's way of choosing which of the two angles they mean. The angles are
// stored exactly as given, with no normalization.
type Spec struct {
	// Vertex of the measured angle.
	Center geom.Point
	// Distance from Center to the start of the extension lines. Always > 0.
	Radius float64
	// Boundary ray angles in degrees. Any finite value; not normalized.
	StartAngle float64
	EndAngle   float64
	// Offset from Radius to the dimension arc, i.e. the length of the
	// extension lines. Negative puts the arc inside the extension circle,
	// which is unusual but legal and preserved as given.
	Distance float64
	// Explicit text baseline rotation in degrees. Nil means the renderer
	// picks its default (tangent to the arc, flipped to stay readable).
	TextRotation *float64
}

// Rotation is a convenience for filling the optional TextRotation argument.
func Rotation(deg float64) *float64 {
	return &deg
}

// Sweep is the measured angle in degrees: the counter clockwise span from
// StartAngle to EndAngle, in [0, 360). Start 300 / end 240 sweeps 300, not
// 60 — the "long way around" is a legitimate measurement.
func (s Spec) Sweep() float64 {
	sweep := math.Mod(s.EndAngle-s.StartAngle, 360)
	if sweep < 0 {
		sweep += 360
	}
	return sweep
}

// Measurement is an alias for Sweep, named for what the dimension displays.
func (s Spec) Measurement() float64 {
	return s.Sweep()
}

// MidAngle is the angle of the midpoint of the swept arc. Because the sweep
// is counter clockwise from start to end, this is not the numeric average of
// the two angles once the arc crosses 0°: for start 300 / end 240 the
// midpoint sits at 90°.
func (s Spec) MidAngle() float64 {
	return s.StartAngle + s.Sweep()/2
}

// ArcRadius is the radius of the dimension arc itself.
func (s Spec) ArcRadius() float64 {
	return s.Radius + s.Distance
}

// DimLinePoint is the anchor on the dimension arc used for default text and
// arc placement: the arc midpoint direction scaled out to the arc radius.
func (s Spec) DimLinePoint() geom.Point {
	return s.Center.Add(geom.FromDegAngle(s.MidAngle(), s.ArcRadius()))
}

// ExtensionStart is where the first extension line leaves the measured
// geometry: on the radius circle along the start ray.
func (s Spec) ExtensionStart() geom.Point {
	return s.Center.Add(geom.FromDegAngle(s.StartAngle, s.Radius))
}

// ExtensionEnd is the matching anchor on the end ray.
func (s Spec) ExtensionEnd() geom.Point {
	return s.Center.Add(geom.FromDegAngle(s.EndAngle, s.Radius))
}
