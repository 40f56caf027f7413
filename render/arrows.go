package render

import (
	"github.com/cadkit/angdim/dimension"
	"github.com/cadkit/angdim/geom"
)

// Arrowheads sit on the ends of the dimension arc, tangent to it, pointing
// away from the swept span.
func (s *Sheet) arrows(spec dimension.Spec, st Style) {
	if st.Arrow == NoArrow || st.ArrowSize <= 0 {
		return
	}
	arcR := spec.ArcRadius()
	tipStart := spec.Center.Add(geom.FromDegAngle(spec.StartAngle, arcR))
	tipEnd := spec.Center.Add(geom.FromDegAngle(spec.EndAngle, arcR))
	s.arrowhead(tipStart, spec.StartAngle-90, st)
	s.arrowhead(tipEnd, spec.EndAngle+90, st)
}

// arrowhead draws one head with its tip at p, pointing along dir degrees.
func (s *Sheet) arrowhead(p geom.Point, dir float64, st Style) {
	c := s.ctx
	c.SetRGB(st.LineColor.R, st.LineColor.G, st.LineColor.B)
	switch st.Arrow {
	case ClosedFilled:
		back := p.Add(geom.FromDegAngle(dir+180, st.ArrowSize))
		half := geom.FromDegAngle(dir+90, st.ArrowSize/6)
		a := back.Add(half)
		b := back.Sub(half)
		c.MoveTo(p.X, p.Y)
		c.LineTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.ClosePath()
		c.Fill()
	case ObliqueTick:
		half := geom.FromDegAngle(dir+45, st.ArrowSize/2)
		c.SetLineWidth(st.LineWidth)
		c.DrawLine(p.X-half.X, p.Y-half.Y, p.X+half.X, p.Y+half.Y)
		c.Stroke()
	case Dot:
		c.DrawCircle(p.X, p.Y, st.ArrowSize/4)
		c.Fill()
	}
}
