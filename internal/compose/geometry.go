package compose

import (
	"fmt"
	"image"
	"strings"
)

// HAlign selects the horizontal placement of the foreground.
type HAlign string

// VAlign selects the vertical placement of the foreground.
type VAlign string

const (
	AlignLeft    HAlign = "left"
	AlignHCenter HAlign = "center"
	AlignRight   HAlign = "right"

	AlignTop     VAlign = "top"
	AlignVCenter VAlign = "center"
	AlignBottom  VAlign = "bottom"
)

// Alignment pairs a horizontal and a vertical placement.
type Alignment struct {
	H HAlign
	V VAlign
}

// ParseHAlign validates a horizontal alignment token (case-insensitive).
func ParseHAlign(s string) (HAlign, error) {
	switch h := HAlign(strings.ToLower(s)); h {
	case AlignLeft, AlignHCenter, AlignRight:
		return h, nil
	}
	return "", fmt.Errorf("invalid horizontal alignment %q: must be left, center, or right", s)
}

// ParseVAlign validates a vertical alignment token (case-insensitive).
func ParseVAlign(s string) (VAlign, error) {
	switch v := VAlign(strings.ToLower(s)); v {
	case AlignTop, AlignVCenter, AlignBottom:
		return v, nil
	}
	return "", fmt.Errorf("invalid vertical alignment %q: must be top, center, or bottom", s)
}

// Position computes the top-left corner at which a foreground of size
// (fgW, fgH) is placed on a background of size (bgW, bgH).
//
// Left/top alignment insets by the margin; right/bottom insets from the
// far edge; center ignores the margin. The result is not clamped: a
// foreground larger than the remaining space yields a negative or
// out-of-bounds position, which the compositor handles by clipping.
func Position(bgW, bgH, fgW, fgH int, align Alignment, margin int) image.Point {
	var x, y int

	switch align.H {
	case AlignLeft:
		x = margin
	case AlignRight:
		x = bgW - fgW - margin
	default: // center
		x = floorHalf(bgW - fgW)
	}

	switch align.V {
	case AlignTop:
		y = margin
	case AlignBottom:
		y = bgH - fgH - margin
	default: // center
		y = floorHalf(bgH - fgH)
	}

	return image.Pt(x, y)
}

// floorHalf returns floor(n/2). Go's integer division truncates toward
// zero, which differs from floor when the foreground is larger than the
// background and the difference is odd.
func floorHalf(n int) int {
	if n < 0 {
		n--
	}
	return n / 2
}
