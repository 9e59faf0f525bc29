package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glUploader uploads decoded images to OpenGL texture objects.
type glUploader struct{}

// NewGLUploader returns the OpenGL-backed uploader.
// Requires a current GL context.
func NewGLUploader() Uploader {
	return glUploader{}
}

func glWrap(w Wrap) int32 {
	if w == WrapClampToEdge {
		return gl.CLAMP_TO_EDGE
	}
	return gl.REPEAT
}

func (glUploader) Upload(img *Image, wrapS, wrapT Wrap) (uint32, error) {
	var format int32
	switch img.Channels {
	case 1:
		format = gl.RED
	case 3:
		format = gl.RGB
	case 4:
		format = gl.RGBA
	default:
		return 0, fmt.Errorf("unsupported number of channels: %d", img.Channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// Rows are tightly packed regardless of channel count.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexImage2D(gl.TEXTURE_2D, 0, format,
		int32(img.Width), int32(img.Height), 0,
		uint32(format), gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))

	// Generate mipmaps BEFORE setting wrap parameters; the reverse order
	// produces broken minification filtering on some drivers.
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(wrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(wrapT))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

func (glUploader) Bind(slot int32, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (glUploader) Delete(ids []uint32) {
	if len(ids) > 0 {
		gl.DeleteTextures(int32(len(ids)), &ids[0])
	}
}
