package dimension

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cadkit/angdim/geom"
)

func TestSweep(t *testing.T) {
	cases := []struct {
		start, end float64
		expected   float64
	}{
		{60, 120, 60},
		{120, 60, 300},
		{300, 240, 300},
		{240, 300, 60},
		{300, 30, 90}, // crosses 0°
		{45, 45, 0},
		{-30, 30, 60}, // no normalization required of the inputs
		{350, 370, 20},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%g to %g", c.start, c.end), func(t *testing.T) {
			s := Spec{Radius: 1, StartAngle: c.start, EndAngle: c.end}
			assert.InDelta(t, c.expected, s.Sweep(), geom.Tolerance)
			assert.Equal(t, s.Sweep(), s.Measurement())
		})
	}
}

func TestMidAngle(t *testing.T) {
	// The midpoint follows the counter clockwise sweep, so for 300..240 it
	// sits at 90° (300 + 300/2 = 450), NOT at the numeric average 270.
	s := Spec{Radius: 1, StartAngle: 300, EndAngle: 240}
	assert.InDelta(t, 90, geom.FromDegAngle(s.MidAngle(), 1).Angle(), geom.Tolerance)

	s = Spec{Radius: 1, StartAngle: 60, EndAngle: 120}
	assert.InDelta(t, 90, s.MidAngle(), geom.Tolerance)
}

func TestAnchors(t *testing.T) {
	s := Spec{
		Center:     geom.Point{X: 10, Y: 0},
		Radius:     5,
		StartAngle: 0,
		EndAngle:   90,
		Distance:   2,
	}
	assert.InDelta(t, 7, s.ArcRadius(), geom.Tolerance)

	start := s.ExtensionStart()
	assert.InDelta(t, 15, start.X, geom.Tolerance)
	assert.InDelta(t, 0, start.Y, geom.Tolerance)

	end := s.ExtensionEnd()
	assert.InDelta(t, 10, end.X, geom.Tolerance)
	assert.InDelta(t, 5, end.Y, geom.Tolerance)

	// Mid angle 45, magnitude 7.
	anchor := s.DimLinePoint()
	assert.InDelta(t, 10+7*0.7071067811865476, anchor.X, 1e-9)
	assert.InDelta(t, 7*0.7071067811865476, anchor.Y, 1e-9)
}

func TestNegativeDistance(t *testing.T) {
	// A negative distance renders the arc inside the extension circle. It
	// must be preserved, not rejected or clamped.
	s, err := FromCenterRadiusAngles(geom.Point{}, 5, 0, 180, -2, nil)
	assert.NoError(t, err)
	assert.Equal(t, -2.0, s.Distance)
	assert.InDelta(t, 3, s.DimLinePoint().Length(), 1e-9)
}

func TestRotation(t *testing.T) {
	r := Rotation(15)
	assert.Equal(t, 15.0, *r)
}
