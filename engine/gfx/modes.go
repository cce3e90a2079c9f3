package gfx

import "github.com/hubastard/groveray/engine/native"

func begin2D(p *scope, camera native.Camera2D) (*Mode2D, error) {
	s, err := p.open("mode 2d", func() { p.lib.BeginMode2D(camera) }, p.lib.EndMode2D)
	if err != nil {
		return nil, err
	}
	return &Mode2D{scope: s, screen2D: screen2D{s}}, nil
}

func begin3D(p *scope, camera native.Camera3D) (*Mode3D, error) {
	s, err := p.open("mode 3d", func() { p.lib.BeginMode3D(camera) }, p.lib.EndMode3D)
	if err != nil {
		return nil, err
	}
	return &Mode3D{scope: s, screen3D: screen3D{s}}, nil
}

func openShader(p *scope, shader *Shader) (*scope, error) {
	return p.open("shader mode", func() { p.lib.BeginShaderMode(shader.Raw()) }, p.lib.EndShaderMode)
}

func openBlend(p *scope, mode native.BlendMode) (*scope, error) {
	return p.open("blend mode", func() { p.lib.BeginBlendMode(mode) }, p.lib.EndBlendMode)
}

func beginShader(p *scope, shader *Shader) (*Shaded, error) {
	s, err := openShader(p, shader)
	if err != nil {
		return nil, err
	}
	return &Shaded{scope: s, screen2D: screen2D{s}}, nil
}

func beginBlend(p *scope, mode native.BlendMode) (*Blended, error) {
	s, err := openBlend(p, mode)
	if err != nil {
		return nil, err
	}
	return &Blended{scope: s, screen2D: screen2D{s}}, nil
}

func beginViewport(p *scope, rect native.Rectangle) (*Viewport, error) {
	begin := func() {
		p.lib.BeginScissorMode(int32(rect.X), int32(rect.Y), int32(rect.Width), int32(rect.Height))
	}
	s, err := p.open("viewport mode", begin, p.lib.EndScissorMode)
	if err != nil {
		return nil, err
	}
	return &Viewport{scope: s, screen2D: screen2D{s}}, nil
}

func beginVR(p *scope, config *VrStereoConfig) (*VR, error) {
	s, err := p.open("vr stereo mode", func() { p.lib.BeginVrStereoMode(config.Raw()) }, p.lib.EndVrStereoMode)
	if err != nil {
		return nil, err
	}
	return &VR{scope: s, screen3D: screen3D{s}}, nil
}

func beginTexture(p *scope, target *RenderTexture) (*TextureTarget, error) {
	s, err := p.open("texture mode", func() { p.lib.BeginTextureMode(target.Raw()) }, p.lib.EndTextureMode)
	if err != nil {
		return nil, err
	}
	return &TextureTarget{scope: s, screen2D: screen2D{s}}, nil
}

// Mode2D is an open BeginMode2D/EndMode2D pair.
type Mode2D struct {
	*scope
	screen2D
}

func (m *Mode2D) BeginShader(shader *Shader) (*Shaded, error)        { return beginShader(m.scope, shader) }
func (m *Mode2D) BeginBlend(mode native.BlendMode) (*Blended, error) { return beginBlend(m.scope, mode) }
func (m *Mode2D) BeginViewport(rect native.Rectangle) (*Viewport, error) {
	return beginViewport(m.scope, rect)
}

func (m *Mode2D) DrawShader(shader *Shader, f func(*Shaded) error) error {
	g, err := m.BeginShader(shader)
	return scoped(g, err, f)
}

func (m *Mode2D) DrawBlend(mode native.BlendMode, f func(*Blended) error) error {
	g, err := m.BeginBlend(mode)
	return scoped(g, err, f)
}

func (m *Mode2D) DrawViewport(rect native.Rectangle, f func(*Viewport) error) error {
	g, err := m.BeginViewport(rect)
	return scoped(g, err, f)
}

// Mode3D is an open BeginMode3D/EndMode3D pair.
type Mode3D struct {
	*scope
	screen3D
}

func (m *Mode3D) BeginShader(shader *Shader) (*Shaded3D, error) {
	s, err := openShader(m.scope, shader)
	if err != nil {
		return nil, err
	}
	return &Shaded3D{scope: s, screen3D: screen3D{s}}, nil
}

func (m *Mode3D) BeginBlend(mode native.BlendMode) (*Blended3D, error) {
	s, err := openBlend(m.scope, mode)
	if err != nil {
		return nil, err
	}
	return &Blended3D{scope: s, screen3D: screen3D{s}}, nil
}

func (m *Mode3D) DrawShader(shader *Shader, f func(*Shaded3D) error) error {
	g, err := m.BeginShader(shader)
	return scoped(g, err, f)
}

func (m *Mode3D) DrawBlend(mode native.BlendMode, f func(*Blended3D) error) error {
	g, err := m.BeginBlend(mode)
	return scoped(g, err, f)
}

// VR is an open BeginVrStereoMode/EndVrStereoMode pair.
type VR struct {
	*scope
	screen3D
}

func (v *VR) Begin3D(camera native.Camera3D) (*Mode3D, error) { return begin3D(v.scope, camera) }

func (v *VR) Draw3D(camera native.Camera3D, f func(*Mode3D) error) error {
	g, err := v.Begin3D(camera)
	return scoped(g, err, f)
}

// TextureTarget is an open BeginTextureMode/EndTextureMode pair.
type TextureTarget struct {
	*scope
	screen2D
}

func (t *TextureTarget) Begin2D(camera native.Camera2D) (*Mode2D, error) { return begin2D(t.scope, camera) }
func (t *TextureTarget) Begin3D(camera native.Camera3D) (*Mode3D, error) { return begin3D(t.scope, camera) }
func (t *TextureTarget) BeginShader(shader *Shader) (*Shaded, error) {
	return beginShader(t.scope, shader)
}
func (t *TextureTarget) BeginBlend(mode native.BlendMode) (*Blended, error) {
	return beginBlend(t.scope, mode)
}
func (t *TextureTarget) BeginViewport(rect native.Rectangle) (*Viewport, error) {
	return beginViewport(t.scope, rect)
}

func (t *TextureTarget) Draw2D(camera native.Camera2D, f func(*Mode2D) error) error {
	g, err := t.Begin2D(camera)
	return scoped(g, err, f)
}

func (t *TextureTarget) Draw3D(camera native.Camera3D, f func(*Mode3D) error) error {
	g, err := t.Begin3D(camera)
	return scoped(g, err, f)
}

func (t *TextureTarget) DrawShader(shader *Shader, f func(*Shaded) error) error {
	g, err := t.BeginShader(shader)
	return scoped(g, err, f)
}

func (t *TextureTarget) DrawBlend(mode native.BlendMode, f func(*Blended) error) error {
	g, err := t.BeginBlend(mode)
	return scoped(g, err, f)
}

func (t *TextureTarget) DrawViewport(rect native.Rectangle, f func(*Viewport) error) error {
	g, err := t.BeginViewport(rect)
	return scoped(g, err, f)
}

// Leaf modes: they draw but open nothing further.
type (
	Shaded struct {
		*scope
		screen2D
	}
	Blended struct {
		*scope
		screen2D
	}
	Viewport struct {
		*scope
		screen2D
	}
	Shaded3D struct {
		*scope
		screen3D
	}
	Blended3D struct {
		*scope
		screen3D
	}
)
