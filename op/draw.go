package op

import (
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/gogpu/andie/internal/text"
	"github.com/gogpu/andie/raster"
)

// shapeMask returns an alpha mask of the shape covering dst bounds.
// Points outside bounds are dropped.
func shapeMask(shape Shape, r Rect, bounds image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(bounds)
	rect := r.Normalize()

	switch shape {
	case Rectangle:
		draw.Draw(mask, rect.Intersect(bounds), image.Opaque, image.Point{}, draw.Src)
	case Oval:
		fillOval(mask, rect)
	case Line:
		drawLine(mask, r.X0, r.Y0, r.X1, r.Y1)
	}
	return mask
}

// fillOval marks the pixels whose centres lie inside the ellipse
// inscribed in rect.
func fillOval(mask *image.Alpha, rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2
	cx := float64(rect.Min.X) + rx
	cy := float64(rect.Min.Y) + ry

	area := rect.Intersect(mask.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		ny := (float64(y) + 0.5 - cy) / ry
		for x := area.Min.X; x < area.Max.X; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			if nx*nx+ny*ny <= 1 {
				mask.Pix[mask.PixOffset(x, y)] = 0xff
			}
		}
	}
}

// drawLine marks a one pixel Bresenham line, both ends included.
func drawLine(mask *image.Alpha, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		if image.Pt(x0, y0).In(mask.Rect) {
			mask.Pix[mask.PixOffset(x0, y0)] = 0xff
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawShape composites the shape over a copy of src.
func drawShape(src *raster.Buffer, shape Shape, r Rect, c raster.Colour) (*raster.Buffer, error) {
	if int(shape) >= len(shapeNames) {
		return nil, errors.Wrapf(ErrInvalidOp, "shape %d", uint8(shape))
	}
	dst := src.Clone()
	mask := shapeMask(shape, r, dst.Bounds())
	draw.DrawMask(dst.NRGBA(), dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, mask, image.Point{}, draw.Over)
	return dst, nil
}

// drawText composites the string over a copy of src.
func drawText(src *raster.Buffer, o Op) (*raster.Buffer, error) {
	face, err := text.NewFace(o.FontSize)
	if err != nil {
		return nil, err
	}
	defer func() { _ = face.Close() }()

	dst := src.Clone()
	face.Draw(dst.NRGBA(), o.Text, o.textOrigin(), o.Colour.NRGBA())
	return dst, nil
}
