package stego

import "image"

// MaxPayloadBits returns the number of payload bits a width×height image can
// hold after reserving the header pixels. Images smaller than the header hold
// nothing and report 0.
func (c Config) MaxPayloadBits(width, height int) int {
	free := width*height - c.HeaderPixels
	if width < 1 || height < 1 || free < 0 {
		return 0
	}
	return free * ChannelsPerPixel
}

// Fits reports whether payloadBits bits fit in a width×height image. An image
// too small to hold the header never fits anything, not even an empty payload.
func (c Config) Fits(payloadBits, width, height int) bool {
	if width < 1 || height < 1 || width*height < c.HeaderPixels {
		return false
	}
	return payloadBits >= 0 && payloadBits <= c.MaxPayloadBits(width, height)
}

// MaxPayloadBits uses DefaultConfig.
func MaxPayloadBits(width, height int) int {
	return DefaultConfig().MaxPayloadBits(width, height)
}

// Fits uses DefaultConfig.
func Fits(payloadBits, width, height int) bool {
	return DefaultConfig().Fits(payloadBits, width, height)
}

// CapacityReport summarizes how much text an image can carry.
type CapacityReport struct {
	Width          int `json:"width"`
	Height         int `json:"height"`
	HeaderPixels   int `json:"header_pixels"`
	HeaderBits     int `json:"header_bits"`
	MaxPayloadBits int `json:"max_payload_bits"`
	MaxCharacters  int `json:"max_characters"`
}

// Capacity reports the capacity of an image with the given bounds.
func (c Config) Capacity(bounds image.Rectangle) CapacityReport {
	w, h := bounds.Dx(), bounds.Dy()
	maxBits := c.MaxPayloadBits(w, h)
	return CapacityReport{
		Width:          w,
		Height:         h,
		HeaderPixels:   c.HeaderPixels,
		HeaderBits:     c.HeaderBits(),
		MaxPayloadBits: maxBits,
		MaxCharacters:  maxBits / BitsPerChar,
	}
}
