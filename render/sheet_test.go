package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadkit/angdim/dimension"
	"github.com/cadkit/angdim/geom"
)

// countInk counts non-white pixels inside the rect.
func countInk(img image.Image, rect image.Rectangle) int {
	count := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r < 0xf000 || g < 0xf000 || b < 0xf000 {
				count++
			}
		}
	}
	return count
}

// near is a small pixel window around a drawing-space point, given the
// sheet parameters used by the test.
func near(min geom.Point, scale float64, imgHeight int, p geom.Point) image.Rectangle {
	px := sheetPadding + int((p.X-min.X)*scale)
	py := imgHeight - (sheetPadding + int((p.Y-min.Y)*scale))
	return image.Rect(px-3, py-3, px+4, py+4)
}

func TestSheetLine(t *testing.T) {
	min := geom.Point{X: -8, Y: -8}
	s := NewSheet(min, geom.Point{X: 8, Y: 8}, 10)
	img := s.Image()
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
	assert.Zero(t, countInk(img, img.Bounds()), "fresh sheet should be blank")

	s.Line(geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 5}, 1, RGB{0, 0, 0})
	assert.NotZero(t, countInk(img, near(min, 10, 240, geom.Point{X: 0, Y: 2.5})))
	assert.Zero(t, countInk(img, near(min, 10, 240, geom.Point{X: 5, Y: -5})))
}

func TestDimensionInk(t *testing.T) {
	min := geom.Point{X: -8, Y: -8}
	s := NewSheet(min, geom.Point{X: 8, Y: 8}, 10)
	spec, err := dimension.FromCenterRadiusAngles(geom.Point{}, 5, 60, 120, 2, nil)
	require.NoError(t, err)
	s.Dimension(spec, DefaultStyle())

	img := s.Image()
	// The arc passes through its anchor at (0, 7).
	assert.NotZero(t, countInk(img, near(min, 10, 240, geom.Point{X: 0, Y: 7})))
	// Extension line anchors on the radius circle.
	assert.NotZero(t, countInk(img, near(min, 10, 240, spec.ExtensionStart())))
	assert.NotZero(t, countInk(img, near(min, 10, 240, spec.ExtensionEnd())))
	// Nothing below the center: the dimension lives entirely in the
	// measured sector.
	assert.Zero(t, countInk(img, near(min, 10, 240, geom.Point{X: 0, Y: -5})))
}

func TestArrowStylesLeaveInk(t *testing.T) {
	for _, arrow := range []ArrowStyle{ClosedFilled, ObliqueTick, Dot} {
		min := geom.Point{X: -8, Y: -8}
		s := NewSheet(min, geom.Point{X: 8, Y: 8}, 20)
		spec, err := dimension.FromCenterRadiusAngles(geom.Point{}, 4, 30, 150, 1, nil)
		require.NoError(t, err)
		st := DefaultStyle()
		st.Arrow = arrow
		st.ArrowSize = 0.5
		s.Dimension(spec, st)

		img := s.Image()
		tip := spec.Center.Add(geom.FromDegAngle(spec.StartAngle, spec.ArcRadius()))
		assert.NotZero(t, countInk(img, near(min, 20, img.Bounds().Dy(), tip)))
	}
}

func TestUserTextLocation(t *testing.T) {
	min := geom.Point{X: -8, Y: -8}
	s := NewSheet(min, geom.Point{X: 8, Y: 8}, 10)
	spec, err := dimension.FromCenterRadiusAngles(geom.Point{}, 4, 60, 120, 1, nil)
	require.NoError(t, err)

	st := DefaultStyle()
	loc := geom.Point{X: 5, Y: -5}
	st.TextLocation = &loc
	st.Leader = true
	s.Dimension(spec, st)

	img := s.Image()
	// The leader runs from the arc anchor toward the relocated text, so
	// there is ink along the way.
	mid := spec.DimLinePoint().Lerp(loc, 0.5)
	assert.NotZero(t, countInk(img, near(min, 10, 240, mid)))
	assert.NotZero(t, countInk(img, near(min, 10, 240, loc)))
}

func TestSavePNGPreview(t *testing.T) {
	s := NewSheet(geom.Point{X: -2, Y: -2}, geom.Point{X: 2, Y: 2}, 10)
	spec, err := dimension.FromCenterRadiusAngles(geom.Point{}, 1, 0, 90, 0.5, nil)
	require.NoError(t, err)
	s.Dimension(spec, DefaultStyle())

	// With the preview variable set, SavePNG also runs the terminal dump.
	// The imgcat output is harmless noise outside iTerm; this just makes
	// sure the path runs and the save still succeeds.
	t.Setenv(previewEnv, "1")
	path := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, s.SavePNG(path))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRelativeTextLocation(t *testing.T) {
	min := geom.Point{X: -8, Y: -8}
	s := NewSheet(min, geom.Point{X: 8, Y: 8}, 10)
	spec, err := dimension.FromCenterRadiusAngles(geom.Point{}, 4, 60, 120, 1, nil)
	require.NoError(t, err)

	// A relative location offsets from the arc anchor instead of being an
	// absolute drawing-space point.
	st := DefaultStyle()
	rel := geom.Point{X: 2, Y: -2}
	st.TextLocation = &rel
	st.Relative = true
	st.Leader = true
	s.Dimension(spec, st)

	img := s.Image()
	target := spec.DimLinePoint().Add(rel)
	assert.NotZero(t, countInk(img, near(min, 10, 240, target)))
	// The leader connects the anchor to the offset location.
	mid := spec.DimLinePoint().Lerp(target, 0.5)
	assert.NotZero(t, countInk(img, near(min, 10, 240, mid)))
	// And nothing lands at the absolute point (2, -2) itself.
	assert.Zero(t, countInk(img, near(min, 10, 240, geom.Point{X: 2, Y: -2})))
}

func TestDefaultTextRotation(t *testing.T) {
	// Tangent at the arc midpoint, flipped to stay readable.
	cases := []struct {
		start, end float64
		expected   float64
	}{
		{60, 120, 0},   // mid 90, tangent 180, flipped
		{240, 300, 0},  // mid 270, tangent 360
		{150, 210, 90}, // mid 180, tangent 270, flipped
		{330, 30, 90},  // mid 0, tangent 90
	}
	for _, c := range cases {
		spec := dimension.Spec{Radius: 1, StartAngle: c.start, EndAngle: c.end}
		assert.InDelta(t, c.expected, defaultTextRotation(spec), geom.Tolerance)
	}
}
