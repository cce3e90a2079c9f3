package gfx

import (
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/native"
)

func textureKind(lib native.Library) handle.Kind[native.Texture] {
	return handle.Kind[native.Texture]{ID: handle.KindTexture, Valid: lib.IsTextureReady, Release: lib.UnloadTexture}
}

func renderTextureKind(lib native.Library) handle.Kind[native.RenderTexture] {
	return handle.Kind[native.RenderTexture]{
		ID:      handle.KindRenderTexture,
		Valid:   lib.IsRenderTextureReady,
		Release: lib.UnloadRenderTexture,
	}
}

// Texture is GPU-side pixel data.
type Texture struct {
	*handle.Handle[native.Texture]
	lib native.Library
}

// LoadTexture uploads an image file to the GPU.
func LoadTexture(lib native.Library, path string) (*Texture, error) {
	h, err := textureKind(lib).Load(func() native.Texture { return lib.LoadTexture(path) })
	if err != nil {
		return nil, err
	}
	return &Texture{Handle: h, lib: lib}, nil
}

// TextureFromImage uploads img. The image stays owned by the caller.
func TextureFromImage(lib native.Library, img *Image) (*Texture, error) {
	h, err := textureKind(lib).Load(func() native.Texture { return lib.LoadTextureFromImage(img.Raw()) })
	if err != nil {
		return nil, err
	}
	return &Texture{Handle: h, lib: lib}, nil
}

func (t *Texture) Width() int32  { return t.Raw().Width }
func (t *Texture) Height() int32 { return t.Raw().Height }

func (t *Texture) SetFilter(filter native.TextureFilter) { t.lib.SetTextureFilter(t.Raw(), filter) }

// GenMipmaps builds the mipmap chain in place.
func (t *Texture) GenMipmaps() { t.lib.GenTextureMipmaps(t.Ptr()) }

// RenderTexture is an off-screen framebuffer usable as a texture mode target.
type RenderTexture struct {
	*handle.Handle[native.RenderTexture]
	lib native.Library
}

func LoadRenderTexture(lib native.Library, width, height int32) (*RenderTexture, error) {
	h, err := renderTextureKind(lib).Load(func() native.RenderTexture { return lib.LoadRenderTexture(width, height) })
	if err != nil {
		return nil, err
	}
	return &RenderTexture{Handle: h, lib: lib}, nil
}

// Texture returns a borrowed view of the color attachment.
func (rt *RenderTexture) Texture() *Texture {
	return &Texture{Handle: textureKind(rt.lib).Unowned(rt.Raw().Texture), lib: rt.lib}
}
