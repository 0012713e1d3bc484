package compose

import (
	"image"

	"github.com/disintegration/imaging"
)

// Composite overlays the foreground onto the background at pos using
// straight-alpha "over" compositing, with the foreground's own alpha
// channel as the mask. Inputs lacking an alpha channel are treated as
// fully opaque.
//
// The background is not mutated; the result is a new NRGBA image of the
// background's dimensions. Any part of the foreground falling outside
// the background bounds is clipped.
func Composite(bg, fg image.Image, pos image.Point) *image.NRGBA {
	return imaging.Overlay(bg, fg, pos, 1.0)
}

// Compose runs the full pipeline: scale the foreground per zoom, resolve
// its position from the alignment and margin, and overlay it onto a copy
// of the background. Pure transform; no I/O.
func Compose(bg, fg image.Image, align Alignment, margin int, zoom ZoomSpec) *image.NRGBA {
	bgBounds := bg.Bounds()

	scaled := Scale(fg, zoom, bgBounds.Dx(), margin)
	fgBounds := scaled.Bounds()

	pos := Position(bgBounds.Dx(), bgBounds.Dy(), fgBounds.Dx(), fgBounds.Dy(), align, margin)
	return Composite(bg, scaled, pos)
}
