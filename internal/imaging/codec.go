// Package imaging reads and writes raster image files and provides the
// affine sampling used by geometric operations.
package imaging

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register the WebP decoder

	"github.com/gogpu/andie/raster"
)

// Codec errors.
var (
	// ErrDecode is returned when data is not a readable image.
	ErrDecode = errors.New("imaging: cannot decode image")

	// ErrEncode is returned when the target format cannot represent the
	// buffer or has no encoder.
	ErrEncode = errors.New("imaging: cannot encode image")
)

// DefaultJPEGQuality is used when no quality is configured.
const DefaultJPEGQuality = 90

// Format identifies a raster file format.
type Format int

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatTIFF
	FormatWebP
)

var formatNames = [...]string{
	FormatUnknown: "unknown",
	FormatPNG:     "png",
	FormatJPEG:    "jpeg",
	FormatGIF:     "gif",
	FormatBMP:     "bmp",
	FormatTIFF:    "tiff",
	FormatWebP:    "webp",
}

// String returns the lowercase format name.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// CanEncode reports whether files of this format can be written.
// WebP is read-only.
func (f Format) CanEncode() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF:
		return true
	default:
		return false
	}
}

// FormatFromPath resolves the format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".gif":
		return FormatGIF
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	case ".webp":
		return FormatWebP
	default:
		return FormatUnknown
	}
}

// EncoderFor returns the format for path, or ErrEncode if nothing can
// write files with that extension.
func EncoderFor(path string) (Format, error) {
	f := FormatFromPath(path)
	if !f.CanEncode() {
		return f, errors.Wrapf(ErrEncode, "no encoder for %q", filepath.Ext(path))
	}
	return f, nil
}

// Options controls encoding.
type Options struct {
	// JPEGQuality is the JPEG quality in [1, 100]. Zero selects
	// DefaultJPEGQuality.
	JPEGQuality int
}

func (o Options) jpegQuality() int {
	if o.JPEGQuality == 0 {
		return DefaultJPEGQuality
	}
	return raster.ClampInt(o.JPEGQuality, 1, 100)
}

// Decode decodes an image from r, detecting the format from its content.
// It returns the format name reported by the decoder.
func Decode(r io.Reader) (*raster.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrapf(ErrDecode, "%v", err)
	}
	buf, err := raster.FromImage(img)
	if err != nil {
		return nil, format, errors.Wrapf(ErrDecode, "%v", err)
	}
	return buf, format, nil
}

// Load decodes the image file at path.
func Load(path string) (*raster.Buffer, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "imaging: read file")
	}
	if len(data) == 0 {
		return nil, errors.Wrapf(ErrDecode, "%s: empty file", path)
	}
	buf, _, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return buf, nil
}

// Encode writes buf to w in the given format.
func Encode(w io.Writer, buf *raster.Buffer, format Format, opts Options) error {
	if !format.CanEncode() {
		return errors.Wrapf(ErrEncode, "format %s", format)
	}

	img := buf.NRGBA()
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: opts.jpegQuality()})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return errors.Wrapf(ErrEncode, "%s: %v", format, err)
	}
	return nil
}

// Save writes buf to path, choosing the format from the extension.
// Nothing is created when the extension has no encoder.
func Save(path string, buf *raster.Buffer, opts Options) error {
	format, err := EncoderFor(path)
	if err != nil {
		return err
	}

	var data bytes.Buffer
	if err := Encode(&data, buf, format, opts); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(path), data.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "imaging: write file")
	}
	return nil
}
