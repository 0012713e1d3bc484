package compose

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ZoomSpec describes how the foreground is scaled before placement:
// either by a fixed multiplicative factor or to fit the background width
// minus margins. Construct values with FixedFactor or FitToWidth.
type ZoomSpec struct {
	fitWidth bool
	factor   float64
}

// FixedFactor returns a ZoomSpec scaling both dimensions by factor.
// The factor must be positive; callers validate before constructing.
func FixedFactor(factor float64) ZoomSpec {
	return ZoomSpec{factor: factor}
}

// FitToWidth returns a ZoomSpec that scales the foreground so its width
// fills the background width minus the margin on each side, preserving
// aspect ratio.
func FitToWidth() ZoomSpec {
	return ZoomSpec{fitWidth: true}
}

// IsFitToWidth reports whether the spec is the fit-to-width marker.
func (z ZoomSpec) IsFitToWidth() bool { return z.fitWidth }

// Factor returns the fixed scale factor, or 0 for fit-to-width specs.
func (z ZoomSpec) Factor() float64 {
	if z.fitWidth {
		return 0
	}
	return z.factor
}

// Scale resizes the foreground according to zoom. The background width
// and margin are consulted only in fit-to-width mode. The input image is
// never mutated; when no resampling is needed the input is returned
// unchanged.
//
// Resampling uses Lanczos to avoid aliasing artifacts.
func Scale(fg image.Image, zoom ZoomSpec, bgWidth, margin int) image.Image {
	if zoom.fitWidth {
		return scaleToWidth(fg, bgWidth, margin)
	}
	return scaleByFactor(fg, zoom.factor)
}

func scaleByFactor(fg image.Image, factor float64) image.Image {
	if factor == 1.0 {
		return fg
	}

	bounds := fg.Bounds()
	newW := int(float64(bounds.Dx()) * factor)
	newH := int(float64(bounds.Dy()) * factor)

	// A sub-pixel result would flip imaging.Resize into its
	// aspect-preserving zero-dimension mode; pin to 1px instead.
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	return imaging.Resize(fg, newW, newH, imaging.Lanczos)
}

func scaleToWidth(fg image.Image, bgWidth, margin int) image.Image {
	available := bgWidth - 2*margin
	if available < 0 {
		available = 0
	}

	bounds := fg.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	// available == 0 leaves the foreground unscaled rather than
	// collapsing it to nothing; w == 0 guards the degenerate input.
	if available == 0 || w == 0 || w == available {
		return fg
	}

	newH := int(math.Round(float64(h) * float64(available) / float64(w)))
	if newH < 1 {
		newH = 1
	}

	return imaging.Resize(fg, available, newH, imaging.Lanczos)
}
