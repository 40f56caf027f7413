// Package render rasterizes resolved angular dimensions: extension lines,
// the dimension arc, arrowheads and the measurement text, drawn onto a
// Sheet in drawing coordinates.
package render

import (
	"image"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/cadkit/angdim/dimension"
	"github.com/cadkit/angdim/geom"
)

// Padding around the drawing area, in pixels.
const sheetPadding = 40

// Sheet is a raster drawing surface addressed in drawing coordinates: the
// y axis grows upward and one drawing unit maps to scale pixels. The
// underlying context carries the flipped, padded world transform, so all
// drawing code works in the same coordinates the resolvers do.
type Sheet struct {
	ctx    *gg.Context
	scale  float64
	placed []*placedDim
}

type placedDim struct {
	spec  dimension.Spec
	style Style
}

// NewSheet creates a white sheet covering the drawing-space rectangle from
// min to max.
func NewSheet(min, max geom.Point, scale float64) *Sheet {
	width := int(scale*(max.X-min.X)) + sheetPadding*2
	height := int(scale*(max.Y-min.Y)) + sheetPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(sheetPadding, sheetPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)

	return &Sheet{ctx: c, scale: scale}
}

// Line strokes a segment between two drawing-space points. width is in
// pixels.
func (s *Sheet) Line(a, b geom.Point, width float64, color RGB) {
	c := s.ctx
	c.SetRGB(color.R, color.G, color.B)
	c.SetLineWidth(width)
	c.DrawLine(a.X, a.Y, b.X, b.Y)
	c.Stroke()
}

// Text draws str centered on p, rotated rot degrees counter clockwise,
// with a cap height of height drawing units. Glyphs come out of the face
// y-down, so the sheet's flip is undone locally around the anchor.
func (s *Sheet) Text(str string, p geom.Point, rot, height float64, face font.Face, color RGB) {
	c := s.ctx
	c.SetFontFace(face)
	c.SetRGB(color.R, color.G, color.B)
	k := height / float64(face.Metrics().Ascent.Round())
	c.Push()
	c.Translate(p.X, p.Y)
	c.Rotate(gg.Radians(rot))
	c.Scale(k, -k)
	c.DrawStringAnchored(str, 0, 0, 0.5, 0.5)
	c.Pop()
}

// Image exposes the rendered raster, mostly for tests.
func (s *Sheet) Image() image.Image {
	return s.ctx.Image()
}

func (s *Sheet) SavePNG(path string) error {
	if os.Getenv(previewEnv) != "" {
		s.dbgPreview()
	}
	return s.ctx.SavePNG(path)
}
