package compose

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/blend"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Format identifies an output image format, derived from the output
// path's extension.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatGIF
	FormatTIFF
	FormatBMP
	FormatWebP
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatTIFF:
		return "tiff"
	case FormatBMP:
		return "bmp"
	case FormatWebP:
		return "webp"
	}
	return "unknown"
}

// SupportsAlpha reports whether the format's encoding carries an alpha
// channel. Images headed for a format without one are flattened onto an
// opaque backdrop before encoding.
func (f Format) SupportsAlpha() bool {
	switch f {
	case FormatJPEG, FormatBMP:
		return false
	}
	return true
}

// FormatFromPath resolves the output format from the path's extension,
// case-insensitively. An unrecognized extension is an error for the
// caller to report.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".webp":
		return FormatWebP, nil
	}
	return FormatPNG, fmt.Errorf("unsupported output format %q", ext)
}

// ParseBackdrop parses a hex color string such as "#ffffff" into the
// opaque backdrop color used when flattening for alpha-less formats.
func ParseBackdrop(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid backdrop color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Flatten removes transparency by compositing img over an opaque
// backdrop of the same dimensions, using the image's own alpha channel
// as the blend mask.
func Flatten(img image.Image, backdrop color.NRGBA) *image.RGBA {
	bounds := img.Bounds()
	base := imaging.New(bounds.Dx(), bounds.Dy(), backdrop)
	return blend.Normal(base, img)
}

// EncodeBytes serializes img in the given format, flattening it onto the
// backdrop first when the format has no alpha channel. The entire result
// is produced in memory so a failed encode leaves nothing half-written.
func EncodeBytes(img image.Image, format Format, backdrop color.NRGBA) ([]byte, error) {
	var toEncode image.Image = img
	if !format.SupportsAlpha() {
		toEncode = Flatten(img, backdrop)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatWebP:
		err = webp.Encode(&buf, toEncode, &webp.Options{Lossless: true})
	default:
		err = imaging.Encode(&buf, toEncode, imagingFormat(format))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s image: %w", format, err)
	}
	return buf.Bytes(), nil
}

func imagingFormat(f Format) imaging.Format {
	switch f {
	case FormatJPEG:
		return imaging.JPEG
	case FormatGIF:
		return imaging.GIF
	case FormatTIFF:
		return imaging.TIFF
	case FormatBMP:
		return imaging.BMP
	default:
		return imaging.PNG
	}
}
