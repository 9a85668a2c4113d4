package stego

import (
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Encoder embeds text into the least significant bits of an image.
type Encoder struct {
	cfg Config
}

// NewEncoder returns an Encoder using cfg.
func NewEncoder(cfg Config) *Encoder {
	return &Encoder{cfg: cfg}
}

// Config returns the wire-format configuration of the encoder.
func (e *Encoder) Config() Config { return e.cfg }

// Capacity reports how much text src can carry.
func (e *Encoder) Capacity(src image.Image) CapacityReport {
	return e.cfg.Capacity(src.Bounds())
}

// Encode returns a copy of src with text embedded.
//
// The payload length in bits is written big-endian into the header pixels at
// the end of the raster (bottom row, right to left), channels B, G, R. The
// payload follows in row-major order from the top-left pixel, channels R, G, B.
// Every other bit of the copy equals src. src is never modified.
//
// # Errors
//
//   - KindInvalidInput if text is empty or whitespace only, or the Config
//     is invalid
//   - KindEncoding if text contains a character above U+00FF
//   - KindCapacity if the payload does not fit
func (e *Encoder) Encode(src image.Image, text string) (*image.NRGBA, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, newError(KindInvalidInput, "encode", "text must be non-empty")
	}

	payload, err := TextToBits(text)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if !e.cfg.Fits(len(payload), width, height) {
		return nil, newError(KindCapacity, "encode",
			"text needs %d bits but a %dx%d image holds at most %d",
			len(payload), width, height, e.cfg.MaxPayloadBits(width, height))
	}

	header, err := IntToBits(uint64(len(payload)), e.cfg.HeaderBits())
	if err != nil {
		return nil, err
	}

	dst := imaging.Clone(src)
	px := NewPixelAccessor(dst, e.cfg.LSBMask)
	e.writeHeader(px, header)
	e.writePayload(px, payload)

	return dst, nil
}

// writeHeader stores header in the reserved pixels. Header pixel i is raster
// pixel N-1-i, which for images at least HeaderPixels wide is
// (width-1-i, height-1).
func (e *Encoder) writeHeader(px *PixelAccessor, header Bits) {
	width := px.Width()
	last := width*px.Height() - 1
	for i := 0; i < e.cfg.HeaderPixels; i++ {
		x, y := rasterXY(last-i, width)
		for k, ch := range e.cfg.HeaderOrder {
			px.WriteLSB(x, y, ch, header[i*ChannelsPerPixel+k])
		}
	}
}

// writePayload stores payload in raster order. Capacity has been checked, so
// the payload never reaches the reserved pixels.
func (e *Encoder) writePayload(px *PixelAccessor, payload Bits) {
	width := px.Width()
	for i, bit := range payload {
		x, y := rasterXY(i/ChannelsPerPixel, width)
		px.WriteLSB(x, y, e.cfg.PayloadOrder[i%ChannelsPerPixel], bit)
	}
}

// Encode embeds text into src using DefaultConfig.
func Encode(src image.Image, text string) (*image.NRGBA, error) {
	return NewEncoder(DefaultConfig()).Encode(src, text)
}
