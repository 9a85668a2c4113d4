package stego

import "strings"

// Bits is an ordered sequence of single-bit values, each 0 or 1.
type Bits []uint8

// String renders the sequence as a run of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// TextToBits encodes each character of text as 8 bits, most significant bit
// first. Characters are taken as Unicode code points and must be at most 255;
// invalid UTF-8 decodes to U+FFFD and is rejected the same way.
func TextToBits(text string) (Bits, error) {
	bits := make(Bits, 0, len(text)*BitsPerChar)
	for i, r := range text {
		if r < 0 || r > 0xFF {
			return nil, newError(KindEncoding, "text to bits",
				"character %q at byte offset %d is outside the single-byte range", r, i)
		}
		c := byte(r)
		for j := BitsPerChar - 1; j >= 0; j-- {
			bits = append(bits, (c>>uint(j))&1)
		}
	}
	return bits, nil
}

// BitsToText is the inverse of TextToBits. Each 8-bit group becomes the
// character with the same numeric value.
func BitsToText(bits Bits) (string, error) {
	if len(bits)%BitsPerChar != 0 {
		return "", newError(KindFraming, "bits to text",
			"bit count %d is not a multiple of %d", len(bits), BitsPerChar)
	}
	runes := make([]rune, 0, len(bits)/BitsPerChar)
	for i := 0; i < len(bits); i += BitsPerChar {
		var c byte
		for j := 0; j < BitsPerChar; j++ {
			c = c<<1 | bits[i+j]&1
		}
		runes = append(runes, rune(c))
	}
	return string(runes), nil
}

// IntToBits returns the big-endian binary form of n, left-padded with zero
// bits to exactly width bits.
func IntToBits(n uint64, width int) (Bits, error) {
	if width < 0 || width > 64 {
		return nil, newError(KindOverflow, "int to bits", "unsupported field width %d", width)
	}
	if width < 64 && n>>uint(width) != 0 {
		return nil, newError(KindOverflow, "int to bits",
			"value %d does not fit in %d bits", n, width)
	}
	bits := make(Bits, width)
	for i := 0; i < width; i++ {
		bits[i] = uint8(n>>uint(width-1-i)) & 1
	}
	return bits, nil
}

// BitsToInt reads bits as a big-endian unsigned integer.
func BitsToInt(bits Bits) (uint64, error) {
	if len(bits) > 64 {
		return 0, newError(KindOverflow, "bits to int",
			"%d bits do not fit in a 64-bit integer", len(bits))
	}
	var n uint64
	for _, bit := range bits {
		n = n<<1 | uint64(bit&1)
	}
	return n, nil
}
