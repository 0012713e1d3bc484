package source

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"golang.design/x/clipboard"
)

// ErrNoClipboardImage is returned when the clipboard is readable but
// holds no image data.
var ErrNoClipboardImage = errors.New("no image found in clipboard")

// FromClipboard reads an image from the system clipboard. The clipboard
// delivers PNG-encoded bytes, which are decoded before returning.
func FromClipboard() (image.Image, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("cannot access clipboard: %w", err)
	}

	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		return nil, ErrNoClipboardImage
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode clipboard image: %w", err)
	}
	return img, nil
}
