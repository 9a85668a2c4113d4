package stego

import (
	"testing"
)

func TestTextToBits(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"single char", "H", "01001000"},
		{"two chars", "Hi", "0100100001101001"},
		{"nul", "\x00", "00000000"},
		{"latin-1", "ÿ", "11111111"},
		{"space", " ", "00100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits, err := TextToBits(tt.text)
			if err != nil {
				t.Fatalf("TextToBits failed: %v", err)
			}
			if got := bits.String(); got != tt.want {
				t.Errorf("TextToBits(%q): got %s, want %s", tt.text, got, tt.want)
			}
			if len(bits)%8 != 0 {
				t.Errorf("bit count %d is not a multiple of 8", len(bits))
			}
		})
	}
}

func TestTextToBits_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"euro sign", "price: €5"},
		{"cjk", "漢"},
		{"invalid utf-8", "ok\xffok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TextToBits(tt.text)
			if !IsKind(err, KindEncoding) {
				t.Errorf("TextToBits(%q): got %v, want encoding error", tt.text, err)
			}
		})
	}
}

func TestBitsToText(t *testing.T) {
	text, err := BitsToText(Bits{0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0, 1})
	if err != nil {
		t.Fatalf("BitsToText failed: %v", err)
	}
	if text != "Hi" {
		t.Errorf("BitsToText: got %q, want %q", text, "Hi")
	}
}

func TestBitsToText_NotByteAligned(t *testing.T) {
	for _, n := range []int{1, 7, 9, 15} {
		_, err := BitsToText(make(Bits, n))
		if !IsKind(err, KindFraming) {
			t.Errorf("BitsToText with %d bits: got %v, want framing error", n, err)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	texts := []string{
		"Hello, World!",
		"line one\nline two\ttabbed",
		"café naïve © ¿",
		"\x00\x01\x7f",
	}

	for _, text := range texts {
		bits, err := TextToBits(text)
		if err != nil {
			t.Fatalf("TextToBits(%q) failed: %v", text, err)
		}
		got, err := BitsToText(bits)
		if err != nil {
			t.Fatalf("BitsToText failed: %v", err)
		}
		if got != text {
			t.Errorf("round trip: got %q, want %q", got, text)
		}
	}
}

func TestIntToBits(t *testing.T) {
	tests := []struct {
		n     uint64
		width int
		want  string
	}{
		{0, 4, "0000"},
		{5, 4, "0101"},
		{16, 33, "000000000000000000000000000010000"},
		{1<<33 - 1, 33, "111111111111111111111111111111111"},
		{0, 0, ""},
	}

	for _, tt := range tests {
		bits, err := IntToBits(tt.n, tt.width)
		if err != nil {
			t.Fatalf("IntToBits(%d, %d) failed: %v", tt.n, tt.width, err)
		}
		if len(bits) != tt.width {
			t.Errorf("IntToBits(%d, %d): got %d bits", tt.n, tt.width, len(bits))
		}
		if got := bits.String(); got != tt.want {
			t.Errorf("IntToBits(%d, %d): got %s, want %s", tt.n, tt.width, got, tt.want)
		}
	}
}

func TestIntToBits_Overflow(t *testing.T) {
	tests := []struct {
		n     uint64
		width int
	}{
		{16, 4},
		{1 << 33, 33},
		{1, 0},
		{1, 65},
	}

	for _, tt := range tests {
		_, err := IntToBits(tt.n, tt.width)
		if !IsKind(err, KindOverflow) {
			t.Errorf("IntToBits(%d, %d): got %v, want overflow error", tt.n, tt.width, err)
		}
	}
}

func TestBitsToInt(t *testing.T) {
	for _, n := range []uint64{0, 1, 7, 16, 267, 1<<33 - 1} {
		bits, err := IntToBits(n, 33)
		if err != nil {
			t.Fatalf("IntToBits failed: %v", err)
		}
		got, err := BitsToInt(bits)
		if err != nil {
			t.Fatalf("BitsToInt failed: %v", err)
		}
		if got != n {
			t.Errorf("BitsToInt: got %d, want %d", got, n)
		}
	}

	if _, err := BitsToInt(make(Bits, 65)); !IsKind(err, KindOverflow) {
		t.Errorf("BitsToInt with 65 bits: got %v, want overflow error", err)
	}
}
