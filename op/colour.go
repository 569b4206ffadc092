package op

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/gogpu/andie/internal/filter"
	"github.com/gogpu/andie/raster"
)

// adjust applies the brightness/contrast formula to one channel value.
func adjust(v uint8, brightness, contrast int) uint8 {
	c := 1 + float32(contrast)/100
	b := 1 + float32(brightness)/100
	return raster.ClampByte(c*(float32(v)-127.5) + 127.5*b)
}

func brightnessContrast(src *raster.Buffer, brightness, contrast int) *raster.Buffer {
	// Only 256 inputs exist, so the formula is tabulated once.
	var lut [256]uint8
	for v := range lut {
		lut[v] = adjust(uint8(v), brightness, contrast)
	}

	dst := src.Clone()
	data := dst.Pix()
	for i := 0; i < len(data); i += raster.BytesPerPixel {
		data[i+0] = lut[data[i+0]]
		data[i+1] = lut[data[i+1]]
		data[i+2] = lut[data[i+2]]
	}
	return dst
}

func cycleColour(src *raster.Buffer, perm Permutation) (*raster.Buffer, error) {
	if !perm.Valid() {
		return nil, errors.Wrapf(ErrInvalidOp, "cycle colour permutation %v", [3]Channel(perm))
	}

	dst := src.Clone()
	data := dst.Pix()
	var rgb [3]uint8
	for i := 0; i < len(data); i += raster.BytesPerPixel {
		copy(rgb[:], data[i:i+3])
		for c, to := range perm {
			data[i+int(to)] = rgb[c]
		}
	}
	return dst, nil
}

// rgbToHSB converts 8-bit RGB to hue, saturation and brightness in [0, 1].
func rgbToHSB(r, g, b uint8) (hue, sat, bri float32) {
	cmax := max(r, g, b)
	cmin := min(r, g, b)

	bri = float32(cmax) / 255
	if cmax != 0 {
		sat = float32(cmax-cmin) / float32(cmax)
	}
	if sat == 0 {
		return 0, 0, bri
	}

	span := float32(cmax - cmin)
	rc := float32(cmax-r) / span
	gc := float32(cmax-g) / span
	bc := float32(cmax-b) / span
	switch {
	case r == cmax:
		hue = bc - gc
	case g == cmax:
		hue = 2 + rc - bc
	default:
		hue = 4 + gc - rc
	}
	hue /= 6
	if hue < 0 {
		hue++
	}
	return hue, sat, bri
}

// hsbToRGB is the inverse of rgbToHSB.
func hsbToRGB(hue, sat, bri float32) (r, g, b uint8) {
	if sat == 0 {
		v := uint8(bri*255 + 0.5)
		return v, v, v
	}

	h := (hue - math32.Floor(hue)) * 6
	f := h - math32.Floor(h)
	p := bri * (1 - sat)
	q := bri * (1 - sat*f)
	t := bri * (1 - sat*(1-f))

	var rf, gf, bf float32
	switch int(h) {
	case 0:
		rf, gf, bf = bri, t, p
	case 1:
		rf, gf, bf = q, bri, p
	case 2:
		rf, gf, bf = p, bri, t
	case 3:
		rf, gf, bf = p, q, bri
	case 4:
		rf, gf, bf = t, p, bri
	case 5:
		rf, gf, bf = bri, p, q
	}
	return uint8(rf*255 + 0.5), uint8(gf*255 + 0.5), uint8(bf*255 + 0.5)
}

func saturate(src *raster.Buffer, amount float32) *raster.Buffer {
	dst := src.Clone()
	data := dst.Pix()
	for i := 0; i < len(data); i += raster.BytesPerPixel {
		hue, sat, bri := rgbToHSB(data[i], data[i+1], data[i+2])
		sat = min(max(sat*amount, 0), 1)
		data[i], data[i+1], data[i+2] = hsbToRGB(hue, sat, bri)
	}
	return dst
}

// vignette scales colour channels by (1 - d/dmax)^0.5, where d is the
// distance from the integer image centre and dmax the centre's distance
// from the origin.
func vignette(src *raster.Buffer) *raster.Buffer {
	width := src.Width()
	height := src.Height()
	cx := width / 2
	cy := height / 2
	maxDist := math32.Sqrt(float32(cx*cx + cy*cy))

	dst := src.Clone()
	data := dst.Pix()
	for y := range height {
		dy := y - cy
		for x := range width {
			dx := x - cx
			factor := float32(1)
			if maxDist > 0 {
				dist := math32.Sqrt(float32(dx*dx + dy*dy))
				factor = math32.Pow(max(1-dist/maxDist, 0), 0.5)
			}

			i := (y*width + x) * raster.BytesPerPixel
			data[i+0] = raster.ClampByte(factor * float32(data[i+0]))
			data[i+1] = raster.ClampByte(factor * float32(data[i+1]))
			data[i+2] = raster.ClampByte(factor * float32(data[i+2]))
		}
	}
	return dst
}

var (
	greyMatrix   = filter.GreyscaleMatrix()
	sepiaMatrix  = filter.SepiaMatrix()
	invertMatrix = filter.InvertMatrix()
)
