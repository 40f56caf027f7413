package render

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/cadkit/angdim/dimension"
	"github.com/cadkit/angdim/geom"
)

// TextPlacement positions the measurement text relative to the dimension
// arc, offset along the arc midpoint direction.
type TextPlacement int

const (
	TextAbove TextPlacement = iota
	TextCenter
	TextBelow
)

// ArrowStyle selects the head drawn at both ends of the dimension arc.
// These are the head shapes that read well on curved dimension lines;
// heads designed for straight lines tend to look broken on short arcs.
type ArrowStyle int

const (
	ClosedFilled ArrowStyle = iota
	ObliqueTick
	Dot
	NoArrow
)

type RGB struct {
	R, G, B float64
}

// Style collects everything about a dimension's appearance that is not
// geometry. The resolved Spec says where things are; the Style says how
// they look. Lengths are in drawing units except LineWidth, which is in
// pixels (stroke width is not scaled by the sheet transform).
type Style struct {
	TextHeight float64
	TextGap    float64
	Placement  TextPlacement
	Unit       dimension.AngleUnit
	Precision  int
	Arrow      ArrowStyle
	ArrowSize  float64
	// Extension line overshoot past the dimension arc.
	Overshoot float64
	LineWidth float64
	LineColor RGB
	TextColor RGB
	Face      font.Face

	// Optional user override for the text location, in drawing coordinates,
	// or relative to the arc anchor when Relative is set. Leader connects
	// the arc anchor to the relocated text.
	TextLocation *geom.Point
	Relative     bool
	Leader       bool
}

// DefaultStyle mirrors the usual curved dimension defaults: decimal
// degrees, closed filled arrows of size 0.25, text above the dimension
// line.
func DefaultStyle() Style {
	return Style{
		TextHeight: 0.25,
		TextGap:    0.09,
		Placement:  TextAbove,
		Unit:       dimension.DecimalDegrees,
		Precision:  2,
		Arrow:      ClosedFilled,
		ArrowSize:  0.25,
		Overshoot:  0.12,
		LineWidth:  1,
		LineColor:  RGB{0, 0, 0},
		TextColor:  RGB{0, 0, 0},
		Face:       basicfont.Face7x13,
	}
}
