package platform

import (
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/assets"
	glbackend "github.com/hubastard/groveray/engine/gfx/gl"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/text"
)

const defaultFontSize = 20

// Textures

func (n *Native) LoadTexture(path string) native.Texture {
	img := n.LoadImage(path)
	if !n.IsImageReady(img) {
		return native.Texture{}
	}
	defer n.UnloadImage(img)
	return n.LoadTextureFromImage(img)
}

func (n *Native) LoadTextureFromImage(img native.Image) native.Texture {
	if !n.ready() {
		n.log.Warn("texture needs an open window")
		return native.Texture{}
	}
	if !n.IsImageReady(img) {
		n.log.Warn("texture upload failed", zap.Error(imageError("LoadTextureFromImage", img)))
		return native.Texture{}
	}
	id, err := glbackend.NewTexture(img.Width, img.Height, img.Pixels, img.Format)
	if err != nil {
		n.log.Warn("texture upload failed", zap.Error(err))
		return native.Texture{}
	}
	n.track("texture")
	return native.Texture{ID: id, Width: img.Width, Height: img.Height, Mipmaps: 1, Format: img.Format}
}

func (n *Native) IsTextureReady(texture native.Texture) bool {
	return texture.ID > 0 && texture.Width > 0 && texture.Height > 0
}

func (n *Native) SetTextureFilter(texture native.Texture, filter native.TextureFilter) {
	if n.ready() && texture.ID > 0 {
		glbackend.SetFilter(texture.ID, filter, texture.Mipmaps > 1)
	}
}

func (n *Native) GenTextureMipmaps(texture *native.Texture) {
	if n.ready() && texture != nil && texture.ID > 0 {
		texture.Mipmaps = glbackend.GenerateMipmaps(texture.ID, texture.Width, texture.Height)
	}
}

func (n *Native) UnloadTexture(texture native.Texture) {
	if !n.ready() || texture.ID == 0 {
		return
	}
	glbackend.DeleteTexture(texture.ID)
	n.untrack("texture")
}

// Render textures

func (n *Native) LoadRenderTexture(width, height int32) native.RenderTexture {
	if !n.ready() || width <= 0 || height <= 0 {
		return native.RenderTexture{}
	}
	fb, err := glbackend.NewFramebuffer(width, height)
	if err != nil {
		n.log.Warn("render texture failed", zap.Error(err))
		return native.RenderTexture{}
	}
	n.fbs[fb.ID] = fb
	n.track("render texture")
	return native.RenderTexture{
		ID:      fb.ID,
		Texture: native.Texture{ID: fb.Color, Width: width, Height: height, Mipmaps: 1, Format: native.PixelFormatR8G8B8A8},
		Depth:   native.Texture{ID: fb.Depth, Width: width, Height: height, Mipmaps: 1},
	}
}

func (n *Native) IsRenderTextureReady(target native.RenderTexture) bool {
	_, ok := n.fbs[target.ID]
	return ok && target.ID > 0 && target.Texture.ID > 0
}

func (n *Native) UnloadRenderTexture(target native.RenderTexture) {
	fb, ok := n.fbs[target.ID]
	if !ok {
		return
	}
	fb.Delete()
	delete(n.fbs, target.ID)
	n.untrack("render texture")
}

// Fonts

// GetFontDefault returns the shared default font. It is owned by the
// backend and released with the window.
func (n *Native) GetFontDefault() native.Font {
	if n.defFont.Texture.ID != 0 || !n.ready() {
		return n.defFont
	}
	atlas, err := text.Default(defaultFontSize)
	if err != nil {
		n.log.Error("default font failed", zap.Error(err))
		return native.Font{}
	}
	font, ok := n.uploadFont(atlas)
	if ok {
		n.defFont = font
	}
	return n.defFont
}

func (n *Native) uploadFont(atlas *text.Atlas) (native.Font, bool) {
	pix := atlas.Pixels()
	id, err := glbackend.NewTexture(pix.Width, pix.Height, pix.Pixels, pix.Format)
	if err != nil {
		n.log.Warn("font upload failed", zap.Error(err))
		return native.Font{}, false
	}
	tex := native.Texture{ID: id, Width: pix.Width, Height: pix.Height, Mipmaps: 1, Format: pix.Format}
	glbackend.SetFilter(id, native.FilterBilinear, false)
	n.fonts[id] = atlas
	return atlas.Native(tex), true
}

func (n *Native) LoadFontEx(path string, fontSize int32, codepoints []rune) native.Font {
	if !n.ready() || fontSize <= 0 {
		return native.Font{}
	}
	atlas, err := text.LoadFile(path, float32(fontSize), codepoints)
	if err != nil {
		n.log.Warn("font load failed", zap.String("path", path), zap.Error(err))
		return native.Font{}
	}
	font, ok := n.uploadFont(atlas)
	if !ok {
		return native.Font{}
	}
	n.track("font")
	return font
}

func (n *Native) IsFontReady(font native.Font) bool {
	return font.Texture.ID > 0 && font.BaseSize > 0 && font.GlyphCount > 0
}

func (n *Native) MeasureTextEx(font native.Font, s string, fontSize, spacing float32) native.Vector2 {
	atlas, err := n.cpuAtlas(font)
	if err != nil {
		return native.Vector2{}
	}
	return atlas.Measure(s, fontSize, spacing)
}

// cpuAtlas finds the atlas behind font, or the default face when font was
// not loaded by this backend.
func (n *Native) cpuAtlas(font native.Font) (*text.Atlas, error) {
	if a := n.fonts[font.Texture.ID]; a != nil {
		return a, nil
	}
	if n.cpuFont == nil {
		a, err := text.Default(defaultFontSize)
		if err != nil {
			return nil, err
		}
		n.cpuFont = a
	}
	return n.cpuFont, nil
}

// UnloadFont ignores the default font.
func (n *Native) UnloadFont(font native.Font) {
	if font.Texture.ID == 0 || font.Texture.ID == n.defFont.Texture.ID {
		return
	}
	if _, ok := n.fonts[font.Texture.ID]; !ok {
		return
	}
	delete(n.fonts, font.Texture.ID)
	if n.ready() {
		glbackend.DeleteTexture(font.Texture.ID)
	}
	n.untrack("font")
}

// Shaders

func (n *Native) LoadShader(vsPath, fsPath string) native.Shader {
	vs, err := assets.LoadShader(vsPath)
	if err != nil {
		n.log.Warn("shader load failed", zap.String("path", vsPath), zap.Error(err))
		return native.Shader{}
	}
	fs, err := assets.LoadShader(fsPath)
	if err != nil {
		n.log.Warn("shader load failed", zap.String("path", fsPath), zap.Error(err))
		return native.Shader{}
	}
	return n.LoadShaderFromMemory(vs, fs)
}

// LoadShaderFromMemory compiles the stages; an empty stage uses the default.
func (n *Native) LoadShaderFromMemory(vsCode, fsCode string) native.Shader {
	if !n.ready() {
		return native.Shader{}
	}
	s, err := glbackend.NewProgram(vsCode, fsCode)
	if err != nil {
		n.log.Warn("shader compile failed", zap.Error(err))
		return native.Shader{}
	}
	n.track("shader")
	return s
}

func (n *Native) IsShaderReady(shader native.Shader) bool { return shader.ID > 0 && shader.Locs != nil }

func (n *Native) GetShaderLocation(shader native.Shader, name string) int32 {
	if !n.ready() || shader.ID == 0 {
		return -1
	}
	return glbackend.UniformLocation(shader.ID, name)
}

func (n *Native) SetShaderValue(shader native.Shader, loc int32, value []float32, uniform native.ShaderUniformType) {
	if !n.ready() || shader.ID == 0 || loc < 0 {
		return
	}
	n.batch.Flush()
	n.gl.BindShader(shader)
	if err := glbackend.SetUniform(loc, value, uniform); err != nil {
		n.log.Warn("shader value rejected", zap.Int32("loc", loc), zap.Error(err))
	}
}

func (n *Native) isDefaultShader(s native.Shader) bool {
	return n.gl != nil && s.ID == n.gl.DefaultShader().ID
}

func (n *Native) UnloadShader(shader native.Shader) {
	if !n.ready() || shader.ID == 0 || n.isDefaultShader(shader) {
		return
	}
	glbackend.DeleteProgram(shader.ID)
	n.untrack("shader")
}
