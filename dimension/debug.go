package dimension

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

// This is for debugging purposes only

// DbgString dumps a spec on one colored line: start ray green, end ray red,
// matching the leg colors the debug preview draws.
func (s Spec) DbgString() string {
	rot := "auto"
	if s.TextRotation != nil {
		rot = fmt.Sprintf("%.4g°", *s.TextRotation)
	}
	return fmt.Sprintf("%s %s..%s sweep %s r=%.4g d=%.4g text %s",
		aurora.Cyan(fmt.Sprintf("(%.4g, %.4g)", s.Center.X, s.Center.Y)),
		aurora.Green(fmt.Sprintf("%.4g°", s.StartAngle)),
		aurora.Red(fmt.Sprintf("%.4g°", s.EndAngle)),
		aurora.Bold(fmt.Sprintf("%.4g°", s.Sweep())),
		s.Radius,
		s.Distance,
		rot,
	)
}
