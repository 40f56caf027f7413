package dimension

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AngleUnit selects how a measurement is displayed. The values mirror the
// four angular unit modes CAD packages support for dimension text.
type AngleUnit int

const (
	DecimalDegrees AngleUnit = iota
	DegMinSec
	Gradians
	Radians
)

// FormatAngle renders a measurement in degrees as dimension text. prec is
// the number of decimal places for the fractional unit modes; trailing
// zeros are trimmed so a right angle reads "90°", not "90.00°".
//
// DegMinSec ignores prec and rounds to whole seconds, which is as fine as
// dimension text ever needs.
func FormatAngle(deg float64, unit AngleUnit, prec int) string {
	switch unit {
	case DegMinSec:
		return formatDMS(deg)
	case Gradians:
		return trimZeros(strconv.FormatFloat(deg*10.0/9.0, 'f', prec, 64)) + "g"
	case Radians:
		return trimZeros(strconv.FormatFloat(deg*math.Pi/180, 'f', prec, 64)) + "r"
	default:
		return trimZeros(strconv.FormatFloat(deg, 'f', prec, 64)) + "°"
	}
}

func formatDMS(deg float64) string {
	sign := ""
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	// Round in whole seconds first so 59.999..." carries into the minute
	// instead of printing 60".
	total := int(math.Round(deg * 3600))
	d := total / 3600
	m := total / 60 % 60
	s := total % 60
	return fmt.Sprintf("%s%d°%d'%d\"", sign, d, m, s)
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Text is the default label for the dimension: its measurement in the given
// unit mode.
func (s Spec) Text(unit AngleUnit, prec int) string {
	return FormatAngle(s.Measurement(), unit, prec)
}
