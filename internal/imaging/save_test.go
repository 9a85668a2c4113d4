package imaging

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/image-steg-mcp/internal/stego"
)

// createNoiseImage creates an opaque image with varied channel values.
func createNoiseImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x*31 + y*7),
				G: uint8(x*5 + y*53 + 1),
				B: uint8(x*97 + y*13 + 200),
				A: 255,
			})
		}
	}
	return img
}

func TestSaveLossless_PreservesPixels(t *testing.T) {
	for _, ext := range []string{".png", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			src := createNoiseImage(37, 23)
			path := filepath.Join(t.TempDir(), "saved"+ext)

			if err := SaveLossless(path, src); err != nil {
				t.Fatalf("SaveLossless failed: %v", err)
			}

			loaded, err := NewImageCache().Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if loaded.Bounds().Dx() != 37 || loaded.Bounds().Dy() != 23 {
				t.Fatalf("dimensions: got %v", loaded.Bounds())
			}

			for y := 0; y < 23; y++ {
				for x := 0; x < 37; x++ {
					got := color.NRGBAModel.Convert(loaded.At(x, y)).(color.NRGBA)
					if want := src.NRGBAAt(x, y); got != want {
						t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestSaveLossless_RejectsLossy(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"out.jpg", "out.gif", "out.webp", "out"} {
		path := filepath.Join(dir, name)
		err := SaveLossless(path, createNoiseImage(4, 4))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("SaveLossless(%s): got %v, want ErrUnsupportedFormat", name, err)
		}
		if _, statErr := os.Stat(path); statErr == nil {
			t.Errorf("SaveLossless(%s) created a file", name)
		}
	}
}

func TestSaveLossless_BadDirectory(t *testing.T) {
	err := SaveLossless("/nonexistent/dir/out.png", createNoiseImage(4, 4))
	if err == nil {
		t.Error("SaveLossless should fail for a missing directory")
	}
}

func TestStegoRoundTrip_ThroughFiles(t *testing.T) {
	dir := t.TempDir()
	text := "hidden in a file"

	for _, ext := range []string{".png", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			coverPath := filepath.Join(dir, "cover"+ext)
			if err := SaveLossless(coverPath, createNoiseImage(40, 30)); err != nil {
				t.Fatalf("SaveLossless(cover) failed: %v", err)
			}

			cache := NewImageCache()
			cover, err := cache.Load(coverPath)
			if err != nil {
				t.Fatalf("Load(cover) failed: %v", err)
			}

			encoded, err := stego.Encode(cover, text)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			outPath := filepath.Join(dir, "stego"+ext)
			if err := SaveLossless(outPath, encoded); err != nil {
				t.Fatalf("SaveLossless(stego) failed: %v", err)
			}

			loaded, err := cache.Load(outPath)
			if err != nil {
				t.Fatalf("Load(stego) failed: %v", err)
			}
			got, err := stego.Decode(loaded)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != text {
				t.Errorf("Decode: got %q, want %q", got, text)
			}
		})
	}
}

func TestImageCache_EvictAfterOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overwrite.png")
	if err := SaveLossless(path, createInMemoryImage(8, 8, color.RGBA{0, 0, 0, 255})); err != nil {
		t.Fatalf("SaveLossless failed: %v", err)
	}

	cache := NewImageCache()
	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := SaveLossless(path, createInMemoryImage(16, 4, color.RGBA{0, 0, 0, 255})); err != nil {
		t.Fatalf("SaveLossless failed: %v", err)
	}
	cache.Evict(path)

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 4 {
		t.Errorf("dimensions after evict: got %v, want 16x4", img.Bounds())
	}
}
