package imaging

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"testing"
)

func TestLSBPlane(t *testing.T) {
	img := createCheckerImage(10, 10)

	result, err := LSBPlane(img, 1)
	if err != nil {
		t.Fatalf("LSBPlane failed: %v", err)
	}

	if result.Width != 10 || result.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 10x10", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if result.OnesRatio != (LSBRatio{0.5, 0.5, 0.5}) {
		t.Errorf("OnesRatio: got %+v, want 0.5 each", result.OnesRatio)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	plane, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}

	even := color.NRGBAModel.Convert(plane.At(0, 0)).(color.NRGBA)
	odd := color.NRGBAModel.Convert(plane.At(1, 0)).(color.NRGBA)
	if even != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("even pixel: got %v, want black", even)
	}
	if odd != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("odd pixel: got %v, want white", odd)
	}
}

func TestLSBPlane_Scaled(t *testing.T) {
	img := createCheckerImage(6, 4)

	result, err := LSBPlane(img, 3)
	if err != nil {
		t.Fatalf("LSBPlane failed: %v", err)
	}
	if result.Width != 18 || result.Height != 12 {
		t.Fatalf("dimensions: got %dx%d, want 18x12", result.Width, result.Height)
	}

	data, _ := base64.StdEncoding.DecodeString(result.ImageBase64)
	plane, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}

	// Source pixel (1,0) is odd and covers output (3..5, 0..2).
	for _, p := range [][2]int{{3, 0}, {5, 2}, {4, 1}} {
		c := color.NRGBAModel.Convert(plane.At(p[0], p[1])).(color.NRGBA)
		if c.R != 255 {
			t.Errorf("scaled pixel (%d,%d): got %v, want white", p[0], p[1], c)
		}
	}
}

func TestLSBPlane_InvalidScale(t *testing.T) {
	img := createCheckerImage(4, 4)

	for _, scale := range []int{0, -1, 17} {
		if _, err := LSBPlane(img, scale); err == nil {
			t.Errorf("LSBPlane(scale=%d) should fail", scale)
		}
	}
}

func TestLSBPlane_UniformImage(t *testing.T) {
	img := createInMemoryImage(8, 8, color.RGBA{255, 254, 1, 255})

	result, err := LSBPlane(img, 1)
	if err != nil {
		t.Fatalf("LSBPlane failed: %v", err)
	}
	if result.OnesRatio != (LSBRatio{1, 0, 1}) {
		t.Errorf("OnesRatio: got %+v, want {1 0 1}", result.OnesRatio)
	}
}
