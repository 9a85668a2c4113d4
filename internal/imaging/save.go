package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// SaveLossless writes img to path in the lossless format implied by the
// extension (PNG or BMP). Any other extension is rejected before the file is
// created.
func SaveLossless(path string, img image.Image) error {
	var encoder imgio.Encoder
	switch FormatOf(path) {
	case FormatPNG:
		encoder = imgio.PNGEncoder()
	case FormatBMP:
		encoder = imgio.BMPEncoder()
	default:
		return ValidateLosslessFormat(path)
	}

	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
