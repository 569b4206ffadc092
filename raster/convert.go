package raster

import (
	"image"
	"image/color"
)

// FromImage copies a standard library image into a new buffer.
// Premultiplied sources are converted to straight alpha.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		rowBytes := buf.Stride()
		for y := range buf.height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.pix[y*rowBytes:(y+1)*rowBytes], nrgba.Pix[srcStart:srcStart+rowBytes])
		}
		return buf, nil
	}

	// Generic slow path for any image type
	for y := range buf.height {
		for x := range buf.width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*buf.width + x) * BytesPerPixel
			buf.pix[i] = c.R
			buf.pix[i+1] = c.G
			buf.pix[i+2] = c.B
			buf.pix[i+3] = c.A
		}
	}
	return buf, nil
}

// ToImage copies the buffer into a new [image.NRGBA].
// Unlike [Buffer.NRGBA], the result does not share pixels with the buffer.
func (b *Buffer) ToImage() *image.NRGBA {
	dst := image.NewNRGBA(b.Bounds())
	copy(dst.Pix, b.pix)
	return dst
}
