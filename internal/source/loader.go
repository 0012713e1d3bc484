package source

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// FromFile loads and decodes the image matched by pattern. The pattern
// may contain glob wildcards; the first match in lexical order is used.
// The resolved path is returned alongside the image for reporting.
func FromFile(pattern string) (image.Image, string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, "", fmt.Errorf("invalid path pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, "", fmt.Errorf("image file not found: %s", pattern)
	}
	path := matches[0]

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, path, nil
}

// ImageInfo contains metadata about a decoded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is the format implied by the path extension: "png", "jpeg",
	// "gif", "bmp", "tiff", "webp", or "unknown".
	Format string

	// HasAlpha indicates whether the decoded image carries an alpha
	// (transparency) channel.
	HasAlpha bool
}

// Describe returns metadata for a decoded image. The path is used only
// for extension-based format naming and may be empty (e.g. clipboard
// images), in which case the format is "unknown".
func Describe(img image.Image, path string) *ImageInfo {
	bounds := img.Bounds()

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	case ".webp":
		format = "webp"
	}

	return &ImageInfo{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   format,
		HasAlpha: HasAlpha(img),
	}
}

// HasAlpha reports whether the image's color model carries an alpha
// channel. Images without one are treated as fully opaque by the
// compositor.
func HasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.Alpha, *image.Alpha16:
		return true
	}
	return false
}
