package stego

import (
	"fmt"
	"image"
)

// Channel identifies one color component of a pixel.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// PixelAccessor reads and writes the data bit of individual channels of an
// 8-bit NRGBA grid.
//
// Coordinates are 0-based and relative to the grid's bounds, so (0,0) is
// always the top-left pixel regardless of img.Rect.Min.
//
// WriteLSB is the only mutating operation in the codec. It touches exactly one
// bit of exactly one channel; the alpha byte is never written.
type PixelAccessor struct {
	img  *image.NRGBA
	mask uint8
}

// NewPixelAccessor wraps img using mask to select the data bit. Only the
// lowest set bit of mask is used, so reads and writes always touch a single
// bit; a zero mask selects bit 0.
func NewPixelAccessor(img *image.NRGBA, mask uint8) *PixelAccessor {
	mask &= -mask
	if mask == 0 {
		mask = 1
	}
	return &PixelAccessor{img: img, mask: mask}
}

// Width returns the grid width in pixels.
func (p *PixelAccessor) Width() int { return p.img.Rect.Dx() }

// Height returns the grid height in pixels.
func (p *PixelAccessor) Height() int { return p.img.Rect.Dy() }

// Image returns the wrapped grid.
func (p *PixelAccessor) Image() *image.NRGBA { return p.img }

func (p *PixelAccessor) offset(x, y int, ch Channel) int {
	return p.img.PixOffset(p.img.Rect.Min.X+x, p.img.Rect.Min.Y+y) + int(ch)
}

// ReadLSB returns 1 if the data bit of channel ch at (x, y) is set, else 0.
func (p *PixelAccessor) ReadLSB(x, y int, ch Channel) uint8 {
	if p.img.Pix[p.offset(x, y, ch)]&p.mask != 0 {
		return 1
	}
	return 0
}

// WriteLSB sets (bit != 0) or clears (bit == 0) the data bit of channel ch at
// (x, y). All other bits of the channel and all other channels are unchanged.
func (p *PixelAccessor) WriteLSB(x, y int, ch Channel, bit uint8) {
	i := p.offset(x, y, ch)
	if bit != 0 {
		p.img.Pix[i] |= p.mask
	} else {
		p.img.Pix[i] &^= p.mask
	}
}

// ReadChannelLSB returns bit 0 of channel ch at (x, y).
func ReadChannelLSB(img *image.NRGBA, x, y int, ch Channel) uint8 {
	return NewPixelAccessor(img, 1).ReadLSB(x, y, ch)
}

// WriteChannelLSB sets or clears bit 0 of channel ch at (x, y) in place.
func WriteChannelLSB(img *image.NRGBA, x, y int, ch Channel, bit uint8) {
	NewPixelAccessor(img, 1).WriteLSB(x, y, ch, bit)
}

// rasterXY maps a row-major pixel index to 0-based coordinates.
func rasterXY(index, width int) (x, y int) {
	return index % width, index / width
}
