package text

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// Draw renders s onto dst with its first baseline starting at origin.
// Further lines are placed one LineHeight below. Pixels outside dst are
// clipped. Glyphs are composited source-over in colour c.
func (f *Face) Draw(dst draw.Image, s string, origin image.Point, c color.Color) {
	src := image.NewUniform(c)
	baseline := fixed.I(origin.Y)
	step := fixed.I(f.LineHeight())

	for _, line := range f.Layout(s) {
		for _, g := range line.Glyphs {
			dot := fixed.Point26_6{X: fixed.I(origin.X) + g.X, Y: baseline}
			dr, mask, maskp, _, ok := f.outline.Glyph(dot, g.Rune)
			if !ok || dr.Empty() {
				continue
			}
			draw.DrawMask(dst, dr, src, image.Point{}, mask, maskp, draw.Over)
		}
		baseline += step
	}
}
