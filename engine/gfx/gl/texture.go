package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/groveray/engine/native"
)

func pixelFormat(f native.PixelFormat) (internal int32, format uint32, err error) {
	switch f {
	case native.PixelFormatGrayscale:
		return gl.R8, gl.RED, nil
	case native.PixelFormatGrayAlpha:
		return gl.RG8, gl.RG, nil
	case native.PixelFormatR8G8B8:
		return gl.RGB8, gl.RGB, nil
	case native.PixelFormatR8G8B8A8:
		return gl.RGBA8, gl.RGBA, nil
	}
	return 0, 0, fmt.Errorf("unsupported pixel format %d", f)
}

// NewTexture uploads tightly packed pixels (nil allocates storage only).
func NewTexture(w, h int32, pix []byte, f native.PixelFormat) (uint32, error) {
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("texture size %dx%d", w, h)
	}
	internal, format, err := pixelFormat(f)
	if err != nil {
		return 0, err
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	var ptr unsafe.Pointer
	if len(pix) > 0 {
		ptr = gl.Ptr(pix)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, w, h, 0, format, gl.UNSIGNED_BYTE, ptr)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	if f == native.PixelFormatGrayscale {
		swizzle := [4]int32{gl.RED, gl.RED, gl.RED, gl.ONE}
		gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])
	} else if f == native.PixelFormatGrayAlpha {
		swizzle := [4]int32{gl.RED, gl.RED, gl.RED, gl.GREEN}
		gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}

func SetFilter(tex uint32, filter native.TextureFilter, mipmapped bool) {
	minF, magF := int32(gl.NEAREST), int32(gl.NEAREST)
	switch filter {
	case native.FilterBilinear:
		minF, magF = gl.LINEAR, gl.LINEAR
		if mipmapped {
			minF = gl.LINEAR_MIPMAP_NEAREST
		}
	case native.FilterTrilinear:
		minF, magF = gl.LINEAR, gl.LINEAR
		if mipmapped {
			minF = gl.LINEAR_MIPMAP_LINEAR
		}
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minF)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magF)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// GenerateMipmaps builds the mip chain and returns the number of levels.
func GenerateMipmaps(tex uint32, w, h int32) int32 {
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	levels := int32(1)
	for w > 1 || h > 1 {
		w, h = max(w/2, 1), max(h/2, 1)
		levels++
	}
	return levels
}

func DeleteTexture(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}

// Framebuffer is a colour texture plus a depth renderbuffer.
type Framebuffer struct {
	ID, Color, Depth uint32
	W, H             int32
}

func NewFramebuffer(w, h int32) (Framebuffer, error) {
	color, err := NewTexture(w, h, nil, native.PixelFormatR8G8B8A8)
	if err != nil {
		return Framebuffer{}, err
	}
	fb := Framebuffer{Color: color, W: w, H: h}
	gl.GenFramebuffers(1, &fb.ID)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, color, 0)

	gl.GenRenderbuffers(1, &fb.Depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.Depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, w, h)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.Depth)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Delete()
		return Framebuffer{}, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return fb, nil
}

func (fb *Framebuffer) Delete() {
	if fb.Depth != 0 {
		gl.DeleteRenderbuffers(1, &fb.Depth)
	}
	if fb.ID != 0 {
		gl.DeleteFramebuffers(1, &fb.ID)
	}
	DeleteTexture(fb.Color)
	*fb = Framebuffer{}
}

// ReadPixels reads the bound framebuffer as RGBA8 rows, bottom row first.
func ReadPixels(w, h int32) []byte {
	pix := make([]byte, int(w)*int(h)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return pix
}
