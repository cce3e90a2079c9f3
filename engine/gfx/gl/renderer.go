// Package glbackend draws renderer2d batches with OpenGL 3.3 core and owns
// the GPU objects (programs, textures, framebuffers) behind native handles.
package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/groveray/engine/gfx/renderer2d"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/scene"
)

type RendererGL struct {
	vao      uint32
	vbo      uint32
	capacity int // bytes allocated in vbo
	white    uint32
	def      native.Shader
	program  native.Shader
	mvp      scene.Matrix
}

var _ renderer2d.Backend = (*RendererGL)(nil)

// NewRendererGL must run after gl.Init on the thread owning the context.
func NewRendererGL() (*RendererGL, error) {
	r := &RendererGL{mvp: scene.Identity()}
	var err error
	r.def, err = NewProgram("", "")
	if err != nil {
		return nil, err
	}
	r.program = r.def

	r.white, err = NewTexture(1, 1, []byte{255, 255, 255, 255}, native.PixelFormatR8G8B8A8)
	if err != nil {
		DeleteProgram(r.def.ID)
		return nil, err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// layout: vec3 position, vec4 color, vec2 uv
	const stride = renderer2d.VertexStride * 4 // bytes
	gl.EnableVertexAttribArray(attrPosition)
	gl.VertexAttribPointerWithOffset(attrPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attrColor)
	gl.VertexAttribPointerWithOffset(attrColor, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(attrTexCoord)
	gl.VertexAttribPointerWithOffset(attrTexCoord, 2, gl.FLOAT, false, stride, 7*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	r.Blend(native.BlendAlpha)
	return r, nil
}

func (r *RendererGL) Shutdown() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	DeleteTexture(r.white)
	DeleteProgram(r.def.ID)
}

func (r *RendererGL) DefaultShader() native.Shader { return r.def }

// UseShader selects the program for subsequent batches; a zero shader restores the default.
func (r *RendererGL) UseShader(s native.Shader) {
	if s.ID == 0 || len(s.Locs) < locCount {
		s = r.def
	}
	r.program = s
}

// BindShader makes s current so its uniforms can be set outside a batch.
func (r *RendererGL) BindShader(s native.Shader) { gl.UseProgram(s.ID) }

func (r *RendererGL) SetMVP(m scene.Matrix) { r.mvp = m }

func (r *RendererGL) DrawBatch(prim renderer2d.Primitive, texture uint32, vertices []float32) {
	if len(vertices) == 0 {
		return
	}
	if texture == 0 {
		texture = r.white
	}
	locs := r.program.Locs
	gl.UseProgram(r.program.ID)
	gl.UniformMatrix4fv(locs[LocMVP], 1, false, &r.mvp[0])
	gl.Uniform1i(locs[LocTexture0], 0)
	gl.Uniform4f(locs[LocColDiffuse], 1, 1, 1, 1)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	size := len(vertices) * 4
	if size > r.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(vertices), gl.STREAM_DRAW)
		r.capacity = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	}

	mode := uint32(gl.TRIANGLES)
	if prim == renderer2d.Lines {
		mode = gl.LINES
	}
	gl.DrawArrays(mode, 0, int32(len(vertices)/renderer2d.VertexStride))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *RendererGL) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }

func (r *RendererGL) Clear(c native.Color) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Scissor clips to the rect given in framebuffer pixels, bottom-left origin.
func (r *RendererGL) Scissor(x, y, w, h int32) {
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(x, y, w, h)
}

func (r *RendererGL) NoScissor() { gl.Disable(gl.SCISSOR_TEST) }

func (r *RendererGL) DepthTest(on bool) {
	if on {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (r *RendererGL) Blend(mode native.BlendMode) {
	eq := uint32(gl.FUNC_ADD)
	var src, dst uint32
	switch mode {
	case native.BlendAdditive:
		src, dst = gl.SRC_ALPHA, gl.ONE
	case native.BlendMultiplied:
		src, dst = gl.DST_COLOR, gl.ONE_MINUS_SRC_ALPHA
	case native.BlendAddColors:
		src, dst = gl.ONE, gl.ONE
	case native.BlendSubtractColors:
		src, dst, eq = gl.ONE, gl.ONE, gl.FUNC_SUBTRACT
	case native.BlendAlphaPremultiply:
		src, dst = gl.ONE, gl.ONE_MINUS_SRC_ALPHA
	default:
		src, dst = gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA
	}
	gl.BlendFunc(src, dst)
	gl.BlendEquation(eq)
}

// BindFramebuffer targets fb, or the window when fb is 0.
func (r *RendererGL) BindFramebuffer(fb uint32) { gl.BindFramebuffer(gl.FRAMEBUFFER, fb) }
