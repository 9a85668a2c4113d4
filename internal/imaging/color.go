package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/image-steg-mcp/internal/stego"
)

// RGBAColor represents an RGBA color with 8-bit, non-premultiplied components.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// LSBBits holds the least significant bit of each color channel.
type LSBBits struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ChannelSample describes one pixel as the codec sees it.
type ChannelSample struct {
	Label string    `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int       `json:"x"`               // X coordinate that was sampled
	Y     int       `json:"y"`               // Y coordinate that was sampled
	Hex   string    `json:"hex"`             // Hex format "#RRGGBB" (no alpha)
	RGBA  RGBAColor `json:"rgba"`            // 8-bit channel values
	LSB   LSBBits   `json:"lsb"`             // Bit 0 of each color channel

	// Region is "header" for the pixels reserved for the length header and
	// "payload" for all others.
	Region string `json:"region"`
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// MultiSampleResult contains samples from multiple points in input order.
type MultiSampleResult struct {
	Samples []ChannelSample `json:"samples"`
}

// SampleChannels returns the 8-bit channel values and their LSBs at (x, y).
//
// Coordinates are 0-based relative to the image bounds. Values are read
// through the non-premultiplied 8-bit model the codec uses, so they match the
// bits Encode writes and Decode reads.
func SampleChannels(img image.Image, x, y int) (*ChannelSample, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)

	// A single-pixel grid lets the LSBs go through the codec's own accessor.
	px := stego.NewPixelAccessor(&image.NRGBA{
		Pix:    []uint8{c.R, c.G, c.B, c.A},
		Stride: 4,
		Rect:   image.Rect(0, 0, 1, 1),
	}, 1)

	return &ChannelSample{
		X:   x,
		Y:   y,
		Hex: fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		RGBA: RGBAColor{
			R: c.R, G: c.G, B: c.B, A: c.A,
		},
		LSB: LSBBits{
			R: px.ReadLSB(0, 0, stego.Red),
			G: px.ReadLSB(0, 0, stego.Green),
			B: px.ReadLSB(0, 0, stego.Blue),
		},
		Region: regionOf(x, y, bounds.Dx(), bounds.Dy()),
	}, nil
}

// SampleChannelsMulti samples several points in one call. On error no
// partial results are returned.
func SampleChannelsMulti(img image.Image, points []LabeledPoint) (*MultiSampleResult, error) {
	samples := make([]ChannelSample, 0, len(points))

	for _, p := range points {
		s, err := SampleChannels(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		s.Label = p.Label
		samples = append(samples, *s)
	}

	return &MultiSampleResult{Samples: samples}, nil
}

// regionOf classifies a pixel as part of the reserved header block or not.
func regionOf(x, y, width, height int) string {
	n := width * height
	if y*width+x >= n-stego.DefaultConfig().HeaderPixels {
		return "header"
	}
	return "payload"
}

// toNRGBA returns img as an *image.NRGBA with bounds starting at (0,0),
// copying only when needed.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}
