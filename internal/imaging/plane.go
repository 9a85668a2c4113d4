package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/image-steg-mcp/internal/stego"
)

// LSBPlaneResult contains a visualisation of an image's least significant bits.
type LSBPlaneResult struct {
	// Width of the output image in pixels (source width × scale).
	Width int `json:"width"`

	// Height of the output image in pixels (source height × scale).
	Height int `json:"height"`

	// ImageBase64 is the plane encoded as base64 PNG. Each channel is 255
	// where the source LSB is 1 and 0 where it is 0; alpha is opaque.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// OnesRatio is the fraction of set LSBs per channel (0.0 to 1.0).
	// Natural images sit near 0.5; long runs of 0 or 1 show up as flat areas.
	OnesRatio LSBRatio `json:"ones_ratio"`
}

// LSBRatio holds a per-channel fraction.
type LSBRatio struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// LSBPlane renders the LSB plane of img.
//
// Parameters:
//   - img: Source image.
//   - scale: Integer upscale factor (1 = native size). Scaling uses
//     nearest-neighbour so each source pixel stays a crisp block.
//
// Returns an error if img is empty, scale is outside 1-16, or PNG encoding
// fails.
func LSBPlane(img image.Image, scale int) (*LSBPlaneResult, error) {
	if scale < 1 || scale > 16 {
		return nil, fmt.Errorf("scale must be between 1 and 16, got %d", scale)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image is empty")
	}

	src := stego.NewPixelAccessor(toNRGBA(img), 1)
	width, height := src.Width(), src.Height()

	plane := image.NewNRGBA(image.Rect(0, 0, width, height))
	var ones [3]int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var v [3]uint8
			for i, ch := range []stego.Channel{stego.Red, stego.Green, stego.Blue} {
				if src.ReadLSB(x, y, ch) == 1 {
					v[i] = 255
					ones[i]++
				}
			}
			plane.SetNRGBA(x, y, color.NRGBA{R: v[0], G: v[1], B: v[2], A: 255})
		}
	}

	var out image.Image = plane
	if scale > 1 {
		out = imaging.Resize(plane, width*scale, height*scale, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	total := float64(width * height)
	return &LSBPlaneResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		OnesRatio: LSBRatio{
			R: roundRatio(float64(ones[0]) / total),
			G: roundRatio(float64(ones[1]) / total),
			B: roundRatio(float64(ones[2]) / total),
		},
	}, nil
}

func roundRatio(v float64) float64 {
	return math.Round(v*1000) / 1000
}
