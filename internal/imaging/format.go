package imaging

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned when a file's format is not allowed for
// the requested operation.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format names as reported by FormatOf.
const (
	FormatPNG     = "png"
	FormatJPEG    = "jpeg"
	FormatGIF     = "gif"
	FormatBMP     = "bmp"
	FormatTIFF    = "tiff"
	FormatWebP    = "webp"
	FormatUnknown = "unknown"
)

// FormatOf returns the image format implied by the extension of path.
//
// Detection is case-insensitive:
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//   - ".gif" -> "gif"
//   - ".bmp" -> "bmp"
//   - ".tif", ".tiff" -> "tiff"
//   - ".webp" -> "webp"
//   - anything else -> "unknown"
func FormatOf(path string) string {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		if strings.EqualFold(filepath.Ext(path), ".webp") {
			return FormatWebP
		}
		return FormatUnknown
	}

	switch f {
	case imaging.PNG:
		return FormatPNG
	case imaging.JPEG:
		return FormatJPEG
	case imaging.GIF:
		return FormatGIF
	case imaging.BMP:
		return FormatBMP
	case imaging.TIFF:
		return FormatTIFF
	default:
		return FormatUnknown
	}
}

// IsLossless reports whether format preserves every channel bit when written
// and read back by this package.
func IsLossless(format string) bool {
	return format == FormatPNG || format == FormatBMP
}

// ValidateCoverFormat checks that path names an image this package can decode
// for use as an encode source.
func ValidateCoverFormat(path string) error {
	switch FormatOf(path) {
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF, FormatWebP:
		return nil
	default:
		return fmt.Errorf("%w: %s (cover image must be png, jpeg, gif, bmp, tiff or webp)",
			ErrUnsupportedFormat, filepath.Base(path))
	}
}

// ValidateLosslessFormat checks that path names a lossless format, as required
// for encode output and decode input.
func ValidateLosslessFormat(path string) error {
	if !IsLossless(FormatOf(path)) {
		return fmt.Errorf("%w: %s (stego image must be png or bmp)",
			ErrUnsupportedFormat, filepath.Base(path))
	}
	return nil
}
