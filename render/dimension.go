package render

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/cadkit/angdim/dimension"
	"github.com/cadkit/angdim/geom"
)

// Dimension renders a resolved angular dimension onto the sheet. The spec
// is assumed valid (resolver output); nothing is re-validated here.
func (s *Sheet) Dimension(spec dimension.Spec, st Style) {
	s.placed = append(s.placed, &placedDim{spec, st})

	c := s.ctx
	c.SetRGB(st.LineColor.R, st.LineColor.G, st.LineColor.B)
	c.SetLineWidth(st.LineWidth)

	arcR := spec.ArcRadius()

	// Extension lines run from the measured geometry out past the arc. A
	// negative distance puts the arc inside the extension circle, so the
	// overshoot flips inward with it.
	over := st.Overshoot
	if spec.Distance < 0 {
		over = -over
	}
	for _, a := range []float64{spec.StartAngle, spec.EndAngle} {
		p0 := spec.Center.Add(geom.FromDegAngle(a, spec.Radius))
		p1 := spec.Center.Add(geom.FromDegAngle(a, arcR+over))
		c.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	}
	c.Stroke()

	// The dimension arc, counter clockwise from the start ray. This is the
	// measured span, so for a reflex spec it really does sweep the long way
	// around.
	start := gg.Radians(spec.StartAngle)
	c.DrawArc(spec.Center.X, spec.Center.Y, arcR, start, start+gg.Radians(spec.Sweep()))
	c.Stroke()

	s.arrows(spec, st)
	s.label(spec, st)
}

func (s *Sheet) label(spec dimension.Spec, st Style) {
	text := spec.Text(st.Unit, st.Precision)
	anchor := spec.DimLinePoint()

	loc := anchor
	if st.TextLocation != nil {
		if st.Relative {
			loc = anchor.Add(*st.TextLocation)
		} else {
			loc = *st.TextLocation
		}
		if st.Leader {
			s.Line(anchor, loc, st.LineWidth, st.LineColor)
		}
	}

	switch st.Placement {
	case TextAbove:
		loc = loc.Add(geom.FromDegAngle(spec.MidAngle(), st.TextGap+st.TextHeight/2))
	case TextBelow:
		loc = loc.Sub(geom.FromDegAngle(spec.MidAngle(), st.TextGap+st.TextHeight/2))
	}

	rot := defaultTextRotation(spec)
	if spec.TextRotation != nil {
		rot = *spec.TextRotation
	}
	s.Text(text, loc, rot, st.TextHeight, st.Face, st.TextColor)
}

// Default text rotation: tangent to the arc at the anchor, flipped when it
// would read upside down.
func defaultTextRotation(spec dimension.Spec) float64 {
	rot := math.Mod(spec.MidAngle()+90, 360)
	if rot < 0 {
		rot += 360
	}
	if rot > 90 && rot <= 270 {
		rot -= 180
	}
	return rot
}
