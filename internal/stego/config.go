package stego

import "math/bits"

// Config holds the wire-format constants shared by Encoder and Decoder.
//
// Both sides must use the same Config; DefaultConfig returns the canonical
// layout and is what every caller in this module uses.
type Config struct {
	// HeaderPixels is the number of pixels at the end of the raster reserved
	// for the length header.
	HeaderPixels int

	// LSBMask selects the bit of each channel that carries data. It must
	// have exactly one bit set; see Validate.
	LSBMask uint8

	// HeaderOrder is the per-pixel channel order for header bits.
	HeaderOrder [3]Channel

	// PayloadOrder is the per-pixel channel order for payload bits.
	PayloadOrder [3]Channel
}

const (
	// DefaultHeaderPixels is the canonical number of reserved header pixels.
	DefaultHeaderPixels = 11

	// ChannelsPerPixel is the number of data-carrying channels per pixel.
	ChannelsPerPixel = 3

	// BitsPerChar is the width of one encoded character.
	BitsPerChar = 8
)

// DefaultConfig returns the canonical wire format: 11 header pixels (33 bits),
// bit 0 of each channel, header channels B,G,R and payload channels R,G,B.
func DefaultConfig() Config {
	return Config{
		HeaderPixels: DefaultHeaderPixels,
		LSBMask:      1,
		HeaderOrder:  [3]Channel{Blue, Green, Red},
		PayloadOrder: [3]Channel{Red, Green, Blue},
	}
}

// HeaderBits is the width of the length header field.
func (c Config) HeaderBits() int {
	return c.HeaderPixels * ChannelsPerPixel
}

// Validate reports a KindInvalidInput error if c cannot describe a usable
// wire format: the mask must be a single bit, the header must fit a 64-bit
// count, and each channel order must name R, G and B once each.
func (c Config) Validate() error {
	if bits.OnesCount8(c.LSBMask) != 1 {
		return newError(KindInvalidInput, "config", "LSB mask %08b must have exactly one bit set", c.LSBMask)
	}
	if c.HeaderPixels < 1 || c.HeaderBits() > 64 {
		return newError(KindInvalidInput, "config",
			"%d header pixels give a %d-bit header, want 1 to 64 bits", c.HeaderPixels, c.HeaderBits())
	}
	for _, order := range [][3]Channel{c.HeaderOrder, c.PayloadOrder} {
		var seen [ChannelsPerPixel]bool
		for _, ch := range order {
			if ch < Red || ch > Blue || seen[ch] {
				return newError(KindInvalidInput, "config", "channel order %v is not a permutation of R, G, B", order)
			}
			seen[ch] = true
		}
	}
	return nil
}
