// Package texture provides image decoding and the texture registry that maps
// human-readable tags to GPU texture slots.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// Registered decoders for the scene's image formats.
	_ "image/jpeg"
	_ "image/png"
)

// Image holds decoded pixel data ready for GPU upload.
// Pixels are tightly packed rows, bottom row first (flipped vertically to
// match the GL UV convention), Channels bytes per pixel.
type Image struct {
	Pixels   []byte
	Width    int
	Height   int
	Channels int
}

// DecodeFile decodes the image at path into raw pixel data.
// Supported channel layouts: 1 (grayscale), 3 (RGB), 4 (RGBA); any other
// layout is an error and no data is returned.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return fromImage(img)
}

// fromImage flattens a decoded image into packed, vertically flipped rows.
func fromImage(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		out := &Image{Pixels: make([]byte, w*h), Width: w, Height: h, Channels: 1}
		for y := 0; y < h; y++ {
			srcRow := src.Pix[y*src.Stride : y*src.Stride+w]
			copy(out.Pixels[(h-1-y)*w:], srcRow)
		}
		return out, nil

	case *image.YCbCr:
		// JPEG color images decode as YCbCr; convert to 3-channel RGB.
		out := &Image{Pixels: make([]byte, w*h*3), Width: w, Height: h, Channels: 3}
		for y := 0; y < h; y++ {
			dst := out.Pixels[(h-1-y)*w*3:]
			for x := 0; x < w; x++ {
				yi := src.YOffset(bounds.Min.X+x, bounds.Min.Y+y)
				ci := src.COffset(bounds.Min.X+x, bounds.Min.Y+y)
				r, g, b := color.YCbCrToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
				dst[x*3+0] = r
				dst[x*3+1] = g
				dst[x*3+2] = b
			}
		}
		return out, nil

	case *image.RGBA:
		out := &Image{Pixels: make([]byte, w*h*4), Width: w, Height: h, Channels: 4}
		for y := 0; y < h; y++ {
			srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
			copy(out.Pixels[(h-1-y)*w*4:], srcRow)
		}
		return out, nil

	case *image.NRGBA:
		out := &Image{Pixels: make([]byte, w*h*4), Width: w, Height: h, Channels: 4}
		for y := 0; y < h; y++ {
			srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
			copy(out.Pixels[(h-1-y)*w*4:], srcRow)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported channel layout %T", img)
	}
}
