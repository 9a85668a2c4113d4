package stego

import (
	"image"

	"github.com/disintegration/imaging"
)

// Decoder recovers text embedded by Encoder.
type Decoder struct {
	cfg Config
}

// NewDecoder returns a Decoder using cfg.
func NewDecoder(cfg Config) *Decoder {
	return &Decoder{cfg: cfg}
}

// PeekHeader returns the raw payload bit count stored in the header of img
// without validating it.
func (d *Decoder) PeekHeader(img image.Image) (uint64, error) {
	px, err := d.accessor(img)
	if err != nil {
		return 0, err
	}
	return d.readHeader(px)
}

// Decode reads the header of img, then that many payload bits, and returns
// the text they encode. A zero-length header yields "".
//
// # Errors
//
//   - KindInvalidInput if the Config is invalid
//   - KindFraming if img is smaller than the header, if the header count is
//     not a multiple of 8, or if it exceeds the image capacity
func (d *Decoder) Decode(img image.Image) (string, error) {
	px, err := d.accessor(img)
	if err != nil {
		return "", err
	}

	count, err := d.readHeader(px)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", nil
	}
	if count%BitsPerChar != 0 {
		return "", newError(KindFraming, "decode",
			"header bit count %d is not a multiple of %d", count, BitsPerChar)
	}
	maxBits := d.cfg.MaxPayloadBits(px.Width(), px.Height())
	if count > uint64(maxBits) {
		return "", newError(KindFraming, "decode",
			"header bit count %d exceeds image capacity of %d bits", count, maxBits)
	}

	return BitsToText(d.readPayload(px, int(count)))
}

// accessor exposes img as an NRGBA grid. An *image.NRGBA is used directly
// (it is only read); other types are converted into a copy.
func (d *Decoder) accessor(img image.Image) (*PixelAccessor, error) {
	if err := d.cfg.Validate(); err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 || b.Dx()*b.Dy() < d.cfg.HeaderPixels {
		return nil, newError(KindFraming, "decode",
			"a %dx%d image is too small to hold a %d-pixel header", b.Dx(), b.Dy(), d.cfg.HeaderPixels)
	}
	grid, ok := img.(*image.NRGBA)
	if !ok {
		grid = imaging.Clone(img)
	}
	return NewPixelAccessor(grid, d.cfg.LSBMask), nil
}

func (d *Decoder) readHeader(px *PixelAccessor) (uint64, error) {
	width := px.Width()
	last := width*px.Height() - 1
	header := make(Bits, 0, d.cfg.HeaderBits())
	for i := 0; i < d.cfg.HeaderPixels; i++ {
		x, y := rasterXY(last-i, width)
		for _, ch := range d.cfg.HeaderOrder {
			header = append(header, px.ReadLSB(x, y, ch))
		}
	}
	return BitsToInt(header)
}

func (d *Decoder) readPayload(px *PixelAccessor, count int) Bits {
	width := px.Width()
	payload := make(Bits, count)
	for i := range payload {
		x, y := rasterXY(i/ChannelsPerPixel, width)
		payload[i] = px.ReadLSB(x, y, d.cfg.PayloadOrder[i%ChannelsPerPixel])
	}
	return payload
}

// Decode recovers text from img using DefaultConfig.
func Decode(img image.Image) (string, error) {
	return NewDecoder(DefaultConfig()).Decode(img)
}
