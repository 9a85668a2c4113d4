// Package analysis measures how much an embedding changed a cover image.
package analysis

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DistortionReport compares a cover image with its stego counterpart.
type DistortionReport struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// PixelsChanged is the number of pixels with at least one channel changed.
	PixelsChanged int `json:"pixels_changed"`

	// ChannelsChanged is the number of R, G or B channel values that differ.
	ChannelsChanged int `json:"channels_changed"`

	// MaxChannelDelta is the largest absolute difference of any channel.
	// An LSB embedding never exceeds 1.
	MaxChannelDelta int `json:"max_channel_delta"`

	// AlphaChanged reports whether any alpha value differs.
	AlphaChanged bool `json:"alpha_changed"`

	// LSBOnly is true when every difference is confined to bit 0 of a color
	// channel and alpha is untouched.
	LSBOnly bool `json:"lsb_only"`

	// MeanDeltaE and MaxDeltaE are CIE76 color differences over changed
	// pixels. Values below about 1.0 are imperceptible.
	MeanDeltaE float64 `json:"mean_delta_e"`
	MaxDeltaE  float64 `json:"max_delta_e"`
}

// Compare reports the differences between cover and stego. Both images must
// have the same dimensions.
//
// Both images are compared as non-premultiplied 8-bit NRGBA, the same view the
// codec reads and writes, so translucent pixels are compared exactly.
func Compare(cover, stego image.Image) (*DistortionReport, error) {
	cb, sb := cover.Bounds(), stego.Bounds()
	if cb.Dx() != sb.Dx() || cb.Dy() != sb.Dy() {
		return nil, fmt.Errorf("image sizes differ: %dx%d vs %dx%d", cb.Dx(), cb.Dy(), sb.Dx(), sb.Dy())
	}

	a := toNRGBA(cover)
	b := toNRGBA(stego)

	report := &DistortionReport{
		Width:   cb.Dx(),
		Height:  cb.Dy(),
		LSBOnly: true,
	}

	var sumDeltaE float64
	for y := 0; y < cb.Dy(); y++ {
		for x := 0; x < cb.Dx(); x++ {
			ca := nrgbaAt(a, x, y)
			cs := nrgbaAt(b, x, y)
			if ca == cs {
				continue
			}

			report.PixelsChanged++
			if ca.A != cs.A {
				report.AlphaChanged = true
				report.LSBOnly = false
			}
			for _, pair := range [3][2]uint8{{ca.R, cs.R}, {ca.G, cs.G}, {ca.B, cs.B}} {
				if pair[0] == pair[1] {
					continue
				}
				report.ChannelsChanged++
				d := absDiff(pair[0], pair[1])
				if d > report.MaxChannelDelta {
					report.MaxChannelDelta = d
				}
				if pair[0]&^1 != pair[1]&^1 {
					report.LSBOnly = false
				}
			}

			de := deltaE(ca, cs)
			sumDeltaE += de
			if de > report.MaxDeltaE {
				report.MaxDeltaE = de
			}
		}
	}

	if report.PixelsChanged > 0 {
		report.MeanDeltaE = round3(sumDeltaE / float64(report.PixelsChanged))
	}
	report.MaxDeltaE = round3(report.MaxDeltaE)

	return report, nil
}

// toNRGBA returns img as an NRGBA grid, sharing the pixels of an
// *image.NRGBA and converting anything else into a copy.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}

// nrgbaAt reads the stored bytes of a pixel, coordinates relative to the grid
// bounds.
func nrgbaAt(img *image.NRGBA, x, y int) color.NRGBA {
	i := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
	p := img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func deltaE(a, b color.NRGBA) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	// DistanceCIE76 works on L*a*b* in 0..1 units; scale to the usual 0..100.
	return ca.DistanceCIE76(cb) * 100
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
