// Package compose implements the image composition pipeline: placing a
// foreground image onto a background image with configurable alignment,
// margin, and scaling, then flattening the result for a target output
// format.
//
// The pipeline is a linear sequence of pure transforms:
//
//	scaled := compose.Scale(fg, zoom, bgWidth, margin)
//	pos := compose.Position(bgW, bgH, scaled.Bounds().Dx(), scaled.Bounds().Dy(), align, margin)
//	result := compose.Composite(bg, scaled, pos)
//	data, err := compose.EncodeBytes(result, format, backdrop)
//
// or, for the common case, a single call to Compose followed by
// EncodeBytes. No function in this package performs I/O or mutates its
// inputs; each stage returns a new image.
//
// # Coordinate System
//
// All positions use the standard image coordinate system: (0,0) at the
// top-left of the background, X increasing rightward, Y increasing
// downward. A computed position may be negative or exceed the background
// bounds; the compositor clips the paste to the canvas rather than
// clamping the position.
//
// # Alpha Handling
//
// Compositing uses straight (non-premultiplied) "over" semantics with the
// foreground's own per-pixel alpha as the mask. Images without an alpha
// channel are treated as fully opaque. Formats whose encoding has no
// alpha channel (JPEG, BMP) are flattened onto an opaque backdrop before
// serialization; alpha-capable formats are serialized as-is.
//
// # Thread Safety
//
// All operations are stateless and safe to call concurrently on distinct
// images. A single image value must not be shared across concurrent
// compositions while intermediate conversions are running.
package compose
