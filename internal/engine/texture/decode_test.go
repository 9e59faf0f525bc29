package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %s: %v", name, err)
	}
	return path
}

func writeJPEG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatalf("encoding %s: %v", name, err)
	}
	return path
}

func TestDecodeGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, t.TempDir(), "gray.png", img)

	decoded, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if decoded.Channels != 1 {
		t.Errorf("expected 1 channel, got %d", decoded.Channels)
	}
	if decoded.Width != 2 || decoded.Height != 2 {
		t.Errorf("expected 2x2, got %dx%d", decoded.Width, decoded.Height)
	}
	if len(decoded.Pixels) != 4 {
		t.Errorf("expected 4 bytes, got %d", len(decoded.Pixels))
	}
}

func TestDecodeJPEGIsRGB(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	path := writeJPEG(t, t.TempDir(), "color.jpg", img)

	decoded, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if decoded.Channels != 3 {
		t.Errorf("expected 3 channels for color JPEG, got %d", decoded.Channels)
	}
	if len(decoded.Pixels) != 4*4*3 {
		t.Errorf("expected %d bytes, got %d", 4*4*3, len(decoded.Pixels))
	}
}

func TestDecodeRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	path := writePNG(t, t.TempDir(), "rgba.png", img)

	decoded, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if decoded.Channels != 4 {
		t.Errorf("expected 4 channels, got %d", decoded.Channels)
	}
}

func TestDecodeFlipsVertically(t *testing.T) {
	// Top row black, bottom row white; decoded data starts with the
	// bottom row to match the GL UV origin.
	img := image.NewGray(image.Rect(0, 0, 1, 2))
	img.SetGray(0, 0, color.Gray{Y: 10})  // top
	img.SetGray(0, 1, color.Gray{Y: 200}) // bottom
	path := writePNG(t, t.TempDir(), "flip.png", img)

	decoded, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if decoded.Pixels[0] != 200 || decoded.Pixels[1] != 10 {
		t.Errorf("expected flipped rows [200 10], got %v", decoded.Pixels)
	}
}

func TestDecodeUnsupportedLayout(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{
		color.RGBA{A: 255}, color.RGBA{R: 255, A: 255},
	})
	path := writePNG(t, t.TempDir(), "pal.png", img)

	if _, err := DecodeFile(path); err == nil {
		t.Error("expected error for paletted image, got nil")
	}
}

func TestDecodeMissingFile(t *testing.T) {
	if _, err := DecodeFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
