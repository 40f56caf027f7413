package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cadkit/angdim/dimension"
	"github.com/cadkit/angdim/geom"
	"github.com/cadkit/angdim/render"
)

// Generates the sample sheets: one PNG per input convention plus the unit
// mode, text placement and user location sweeps. The optional single
// argument is the output directory; there are no flags, the sequence is a
// fixed demonstration.
func main() {
	outdir := "."
	if len(os.Args) > 1 {
		outdir = os.Args[1]
	}
	if err := os.MkdirAll(outdir, 0755); err != nil {
		log.Fatal(err)
	}

	save := func(s *render.Sheet, name string) {
		path := filepath.Join(outdir, name)
		if err := s.SavePNG(path); err != nil {
			log.Fatalf("Could not write %s: %v", path, err)
		}
		fmt.Println("wrote", path)
	}

	save(craSheet(), "dim_angular_cra.png")
	save(threePointSheet(), "dim_angular_3p.png")
	save(twoLineSheet(), "dim_angular_2l.png")
	save(unitsSheet(), "dim_angular_units.png")
	save(fanSheet(6), "dim_angular_6_deg_fan.png")
	save(userLocationSheet(30, 345), "dim_angular_usr_loc.png")
	save(arrowSheet(), "dim_angular_arrows.png")
}

var craData = []struct {
	center     geom.Point
	start, end float64
}{
	{geom.Point{X: 0, Y: 0}, 60, 120},
	{geom.Point{X: 10, Y: 0}, 300, 240},
	{geom.Point{X: 20, Y: 0}, 240, 300},
	{geom.Point{X: 30, Y: 0}, 300, 30},
}

// legs draws the measured rays themselves, so the dimension annotates some
// actual geometry instead of floating in space.
func legs(s *render.Sheet, spec dimension.Spec) {
	red := render.RGB{R: 0.8, G: 0, B: 0}
	s.Line(spec.Center, spec.ExtensionStart(), 1, red)
	s.Line(spec.Center, spec.ExtensionEnd(), 1, red)
}

func craSheet() *render.Sheet {
	sheet := render.NewSheet(geom.Point{X: -8, Y: -8}, geom.Point{X: 38, Y: 8}, 12)
	for _, d := range craData {
		spec, err := dimension.FromCenterRadiusAngles(d.center, 5, d.start, d.end, 2, nil)
		if err != nil {
			log.Fatal(err)
		}
		legs(sheet, spec)
		sheet.Dimension(spec, render.DefaultStyle())
	}
	return sheet
}

func threePointSheet() *render.Sheet {
	sheet := render.NewSheet(geom.Point{X: -8, Y: -8}, geom.Point{X: 38, Y: 8}, 12)
	for _, d := range craData {
		// Derive the defpoints from the direct convention, then resolve the
		// other way around.
		cra, err := dimension.FromCenterRadiusAngles(d.center, 5, d.start, d.end, 2, nil)
		if err != nil {
			log.Fatal(err)
		}
		spec, err := dimension.FromThreePoints(
			cra.DimLinePoint(), d.center, cra.ExtensionStart(), cra.ExtensionEnd(), nil)
		if err != nil {
			log.Fatal(err)
		}
		legs(sheet, spec)
		sheet.Dimension(spec, render.DefaultStyle())
	}
	return sheet
}

func twoLineSheet() *render.Sheet {
	sheet := render.NewSheet(geom.Point{X: -6, Y: -8}, geom.Point{X: 16, Y: 8}, 16)
	black := render.RGB{R: 0, G: 0, B: 0}
	for _, loc := range []struct {
		offset geom.Point
		flip   float64
	}{
		{geom.Point{X: 0, Y: 0}, 1},
		{geom.Point{X: 10, Y: 0}, -1},
	} {
		base := geom.Point{X: 0, Y: 5}.Add(loc.offset)
		line1 := geom.Line{
			Start: geom.Point{X: -4, Y: 3 * loc.flip}.Add(loc.offset),
			End:   geom.Point{X: -1, Y: 0}.Add(loc.offset),
		}
		line2 := geom.Line{
			Start: geom.Point{X: 1, Y: 0}.Add(loc.offset),
			End:   geom.Point{X: 4, Y: 3 * loc.flip}.Add(loc.offset),
		}
		sheet.Line(line1.Start, line1.End, 1, black)
		sheet.Line(line2.Start, line2.End, 1, black)

		spec, err := dimension.FromTwoLines(base, line1, line2)
		if err != nil {
			log.Fatal(err)
		}
		sheet.Dimension(spec, render.DefaultStyle())
	}
	return sheet
}

func unitsSheet() *render.Sheet {
	sheet := render.NewSheet(geom.Point{X: -8, Y: -8}, geom.Point{X: 38, Y: 68}, 10)
	units := []dimension.AngleUnit{
		dimension.DecimalDegrees,
		dimension.DegMinSec,
		dimension.Gradians,
		dimension.Radians,
	}
	for row, unit := range units {
		offset := geom.Point{X: 0, Y: float64(row) * 20}
		for _, d := range craData {
			spec, err := dimension.FromCenterRadiusAngles(d.center.Add(offset), 5, d.start, d.end, 2, nil)
			if err != nil {
				log.Fatal(err)
			}
			st := render.DefaultStyle()
			st.Unit = unit
			st.Precision = 3
			legs(sheet, spec)
			sheet.Dimension(spec, st)
		}
	}
	return sheet
}

// fanSheet measures the same fixed angle at eight orientations, one row per
// text placement mode.
func fanSheet(angle float64) *render.Sheet {
	sheet := render.NewSheet(geom.Point{X: -6, Y: -6}, geom.Point{X: 111, Y: 46}, 8)
	placements := []render.TextPlacement{render.TextCenter, render.TextAbove, render.TextBelow}
	for row, placement := range placements {
		for count := 0; count < 8; count++ {
			center := geom.Point{X: 15 * float64(count), Y: float64(row) * 20}
			main := 45.0 * float64(count)
			spec, err := dimension.FromCenterRadiusAngles(center, 3, main-angle/2, main+angle/2, 1, nil)
			if err != nil {
				log.Fatal(err)
			}
			st := render.DefaultStyle()
			st.Placement = placement
			legs(sheet, spec)
			sheet.Dimension(spec, st)
		}
	}
	return sheet
}

// userLocationSheet relocates the text away from the arc anchor: one row of
// absolute locations without a leader, one with, and one row of locations
// relative to the anchor. All rows use an explicit text rotation.
func userLocationSheet(angle, rotation float64) *render.Sheet {
	sheet := render.NewSheet(geom.Point{X: -6, Y: -6}, geom.Point{X: 111, Y: 46}, 8)
	rows := []struct {
		relative, leader bool
	}{
		{false, false},
		{false, true},
		{true, true},
	}
	for row, mode := range rows {
		for count := 0; count < 8; count++ {
			center := geom.Point{X: 15 * float64(count), Y: float64(row) * 20}
			main := 45.0 * float64(count)
			spec, err := dimension.FromCenterRadiusAngles(
				center, 3, main-angle/2, main+angle/2, 1, dimension.Rotation(rotation))
			if err != nil {
				log.Fatal(err)
			}
			st := render.DefaultStyle()
			var loc geom.Point
			if mode.relative {
				loc = geom.FromDegAngle(main, 2)
			} else {
				loc = center.Add(geom.FromDegAngle(main, 5))
			}
			st.TextLocation = &loc
			st.Relative = mode.relative
			st.Leader = mode.leader
			legs(sheet, spec)
			sheet.Dimension(spec, st)
		}
	}
	return sheet
}

func arrowSheet() *render.Sheet {
	sheet := render.NewSheet(geom.Point{X: -6, Y: -6}, geom.Point{X: 51, Y: 12}, 10)
	arrows := []render.ArrowStyle{render.ClosedFilled, render.ObliqueTick, render.Dot, render.NoArrow}
	for col, arrow := range arrows {
		for row, angle := range []float64{3, 30} {
			center := geom.Point{X: 15 * float64(col), Y: 6 * float64(row)}
			spec, err := dimension.FromCenterRadiusAngles(center, 3, 90-angle/2, 90+angle/2, 1, nil)
			if err != nil {
				log.Fatal(err)
			}
			st := render.DefaultStyle()
			st.Arrow = arrow
			legs(sheet, spec)
			sheet.Dimension(spec, st)
		}
	}
	return sheet
}
