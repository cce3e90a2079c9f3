package platform

import (
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	glbackend "github.com/hubastard/groveray/engine/gfx/gl"
	"github.com/hubastard/groveray/engine/gfx/renderer2d"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/scene"
)

func (n *Native) SetConfigFlags(flags native.ConfigFlags) { n.flags = flags }

func (n *Native) has(f native.ConfigFlags) bool { return n.flags&f != 0 }

func hint(on bool) int {
	if on {
		return glfw.True
	}
	return glfw.False
}

// InitWindow opens the window and GL context. Failures are logged and leave
// IsWindowReady false.
func (n *Native) InitWindow(width, height int32, title string) {
	if n.win != nil {
		n.log.Warn("window already open")
		return
	}
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		n.log.Error("glfw init failed", zap.Error(err))
		return
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, hint(n.has(native.FlagWindowResizable)))
	glfw.WindowHint(glfw.Decorated, hint(!n.has(native.FlagWindowUndecorated|native.FlagBorderlessWindow)))
	glfw.WindowHint(glfw.Visible, hint(!n.has(native.FlagWindowHidden)))
	glfw.WindowHint(glfw.Floating, hint(n.has(native.FlagWindowTopmost)))
	glfw.WindowHint(glfw.FocusOnShow, hint(!n.has(native.FlagWindowUnfocused)))
	glfw.WindowHint(glfw.Maximized, hint(n.has(native.FlagWindowMaximized)))
	glfw.WindowHint(glfw.ScaleToMonitor, hint(n.has(native.FlagWindowHighDPI)))
	samples := 0
	if n.has(native.FlagMSAA4xHint) {
		samples = 4
	}
	glfw.WindowHint(glfw.Samples, samples)

	var monitor *glfw.Monitor
	w, h := int(width), int(height)
	if n.has(native.FlagFullscreenMode | native.FlagBorderlessWindow) {
		if m := glfw.GetPrimaryMonitor(); m != nil {
			mode := m.GetVideoMode()
			if w == 0 || n.has(native.FlagBorderlessWindow) {
				w, h = mode.Width, mode.Height
			}
			if n.has(native.FlagFullscreenMode) {
				monitor = m
			}
		}
	}

	win, err := glfw.CreateWindow(w, h, title, monitor, nil)
	if err != nil {
		n.log.Error("window creation failed", zap.Error(err))
		glfw.Terminate()
		return
	}
	win.MakeContextCurrent()
	if n.has(native.FlagVsyncHint) {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		n.log.Error("gl init failed", zap.Error(err))
		win.Destroy()
		glfw.Terminate()
		return
	}
	r, err := glbackend.NewRendererGL()
	if err != nil {
		n.log.Error("renderer init failed", zap.Error(err))
		win.Destroy()
		glfw.Terminate()
		return
	}
	if n.has(native.FlagWindowMinimized) {
		win.Iconify()
	}

	n.win, n.gl = win, r
	n.batch = renderer2d.New(router{n}, 0)
	n.minSize, n.maxSize = [2]int{glfw.DontCare, glfw.DontCare}, [2]int{glfw.DontCare, glfw.DontCare}
	n.lastFrame = time.Now()
	n.installCallbacks()

	n.log.Info("window opened",
		zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int("width", w), zap.Int("height", h))
}

func (n *Native) CloseWindow() {
	if n.win == nil {
		return
	}
	for id, fb := range n.fbs {
		fb.Delete()
		delete(n.fbs, id)
	}
	if n.defFont.Texture.ID != 0 {
		glbackend.DeleteTexture(n.defFont.Texture.ID)
		delete(n.fonts, n.defFont.Texture.ID)
		n.defFont = native.Font{}
	}
	n.gl.Shutdown()
	n.win.Destroy()
	glfw.Terminate()
	n.win, n.gl, n.batch = nil, nil, nil
	n.reportLeaks()
	n.log.Info("window closed", zap.Int64("frames", n.frames))
}

func (n *Native) IsWindowReady() bool { return n.win != nil }

func (n *Native) WindowShouldClose() bool {
	if n.win == nil {
		return true
	}
	return n.win.ShouldClose()
}

func (n *Native) SetTargetFPS(fps int32) { n.targetFPS = max(fps, 0) }

func (n *Native) SetWindowMinSize(width, height int32) {
	n.minSize = [2]int{int(width), int(height)}
	n.applySizeLimits()
}

func (n *Native) SetWindowMaxSize(width, height int32) {
	n.maxSize = [2]int{int(width), int(height)}
	n.applySizeLimits()
}

func (n *Native) applySizeLimits() {
	if n.win != nil {
		n.win.SetSizeLimits(n.minSize[0], n.minSize[1], n.maxSize[0], n.maxSize[1])
	}
}

func (n *Native) SetWindowTitle(title string) {
	if n.win != nil {
		n.win.SetTitle(title)
	}
}

// SetExitKey uses GLFW key codes; 0 disables the exit key.
func (n *Native) SetExitKey(key int32) { n.exitKey = glfw.Key(key) }

func (n *Native) size() (int32, int32) {
	if n.win == nil {
		return 0, 0
	}
	w, h := n.win.GetSize()
	return int32(w), int32(h)
}

func (n *Native) framebufferSize() (int32, int32) {
	if n.win == nil {
		return 0, 0
	}
	w, h := n.win.GetFramebufferSize()
	return int32(w), int32(h)
}

func (n *Native) GetScreenWidth() int32 {
	w, _ := n.size()
	return w
}

func (n *Native) GetScreenHeight() int32 {
	_, h := n.size()
	return h
}

func (n *Native) GetFrameTime() float32 { return n.frameTime }

func (n *Native) GetTime() float64 {
	if n.win == nil {
		return 0
	}
	return glfw.GetTime()
}

func (n *Native) GetFPS() int32 { return n.fps.fps() }

func (n *Native) GetClipboardText() string {
	if n.win == nil {
		return ""
	}
	return n.win.GetClipboardString()
}

func (n *Native) SetClipboardText(text string) {
	if n.win != nil {
		n.win.SetClipboardString(text)
	}
}

func (n *Native) monitor(i int32) *glfw.Monitor {
	if n.win == nil {
		return nil
	}
	ms := glfw.GetMonitors()
	if i < 0 || int(i) >= len(ms) {
		return nil
	}
	return ms[i]
}

func (n *Native) GetMonitorCount() int32 {
	if n.win == nil {
		return 0
	}
	return int32(len(glfw.GetMonitors()))
}

// GetCurrentMonitor returns the monitor containing the window centre.
func (n *Native) GetCurrentMonitor() int32 {
	if n.win == nil {
		return 0
	}
	if m := n.win.GetMonitor(); m != nil {
		for i, o := range glfw.GetMonitors() {
			if o == m {
				return int32(i)
			}
		}
	}
	x, y := n.win.GetPos()
	w, h := n.win.GetSize()
	cx, cy := x+w/2, y+h/2
	for i, m := range glfw.GetMonitors() {
		mx, my := m.GetPos()
		mode := m.GetVideoMode()
		if cx >= mx && cx < mx+mode.Width && cy >= my && cy < my+mode.Height {
			return int32(i)
		}
	}
	return 0
}

func (n *Native) GetMonitorWidth(monitor int32) int32 {
	if m := n.monitor(monitor); m != nil {
		return int32(m.GetVideoMode().Width)
	}
	return 0
}

func (n *Native) GetMonitorHeight(monitor int32) int32 {
	if m := n.monitor(monitor); m != nil {
		return int32(m.GetVideoMode().Height)
	}
	return 0
}

func (n *Native) GetMonitorRefreshRate(monitor int32) int32 {
	if m := n.monitor(monitor); m != nil {
		return int32(m.GetVideoMode().RefreshRate)
	}
	return 0
}

func (n *Native) GetMonitorName(monitor int32) string {
	if m := n.monitor(monitor); m != nil {
		return m.GetName()
	}
	return ""
}

// Callbacks feed the exit key and automation recording.
func (n *Native) installCallbacks() {
	n.win.SetCloseCallback(func(*glfw.Window) { n.record(eventWindowClose, 0, 0) })
	n.win.SetSizeCallback(func(_ *glfw.Window, w, h int) { n.record(eventWindowResize, int32(w), int32(h)) })
	n.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) { n.record(eventMousePosition, int32(x), int32(y)) })
	n.win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) { n.record(eventMouseWheel, 0, int32(yoff)) })
	n.win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press {
			n.record(eventMouseDown, int32(b), 0)
		} else if action == glfw.Release {
			n.record(eventMouseUp, int32(b), 0)
		}
	})
	n.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			n.record(eventKeyDown, int32(key), 0)
			n.keyDown(key)
		case glfw.Release:
			n.record(eventKeyUp, int32(key), 0)
		}
	})
}

func (n *Native) keyDown(key glfw.Key) {
	if n.exitKey != 0 && key == n.exitKey {
		n.win.SetShouldClose(true)
	}
}

// Drawing session

type router struct{ n *Native }

// DrawBatch applies the current transform, drawing each eye in stereo mode.
func (r router) DrawBatch(prim renderer2d.Primitive, texture uint32, vertices []float32) {
	n := r.n
	if n.vr == nil {
		n.gl.SetMVP(scene.Mul(n.state.proj, n.state.view))
		n.gl.DrawBatch(prim, texture, vertices)
		return
	}
	vp := n.state.viewport
	half := vp[2] / 2
	for eye := int32(0); eye < 2; eye++ {
		n.gl.Viewport(vp[0]+eye*half, vp[1], half, vp[3])
		n.gl.SetMVP(scene.Mul(n.vr.Projection[eye], scene.Mul(n.vr.ViewOffset[eye], n.state.view)))
		n.gl.DrawBatch(prim, texture, vertices)
	}
	n.gl.Viewport(vp[0], vp[1], vp[2], vp[3])
}

func (n *Native) ready() bool { return n.win != nil }

func (n *Native) BeginDrawing() {
	if !n.ready() {
		return
	}
	n.spans = n.spans[:0]
	n.openSpan("frame")
	n.frameStart = time.Now()
	w, h := n.size()
	fw, fh := n.framebufferSize()
	n.state = transform{proj: scene.Screen(w, h), view: scene.Identity(), viewport: [4]int32{0, 0, fw, fh}}
	n.stack = n.stack[:0]
	n.gl.Viewport(0, 0, fw, fh)
	n.batch.ResetStats()
}

// EndDrawing presents the frame, polls events and paces to the target FPS.
func (n *Native) EndDrawing() {
	if !n.ready() {
		return
	}
	n.batch.Flush()
	n.win.SwapBuffers()
	glfw.PollEvents()

	if n.targetFPS > 0 {
		budget := time.Second / time.Duration(n.targetFPS)
		if spent := time.Since(n.frameStart); spent < budget {
			time.Sleep(budget - spent)
		}
	}
	now := time.Now()
	n.frameTime = float32(now.Sub(n.lastFrame).Seconds())
	n.lastFrame = now
	n.fps.add(n.frameTime)
	n.frames++
	for len(n.spans) > 0 {
		n.closeSpan()
	}
}

func (n *Native) push(t transform) {
	n.batch.Flush()
	n.stack = append(n.stack, n.state)
	n.state = t
}

func (n *Native) pop() {
	n.batch.Flush()
	if len(n.stack) == 0 {
		return
	}
	n.state = n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	v := n.state.viewport
	n.gl.Viewport(v[0], v[1], v[2], v[3])
}

func (n *Native) BeginMode2D(camera native.Camera2D) {
	if !n.ready() {
		return
	}
	n.openSpan("mode2d")
	t := n.state
	t.view = scene.View2D(camera)
	n.push(t)
}

func (n *Native) EndMode2D() {
	if n.ready() {
		n.pop()
		n.closeSpan()
	}
}

func (n *Native) BeginMode3D(camera native.Camera3D) {
	if !n.ready() {
		return
	}
	n.openSpan("mode3d")
	t := n.state
	aspect := float32(1)
	if t.viewport[3] > 0 {
		aspect = float32(t.viewport[2]) / float32(t.viewport[3])
	}
	t.view, t.proj = scene.View3D(camera, aspect)
	n.push(t)
	n.gl.DepthTest(true)
}

func (n *Native) EndMode3D() {
	if !n.ready() {
		return
	}
	n.closeSpan()
	n.pop()
	n.gl.DepthTest(false)
}

func (n *Native) BeginShaderMode(shader native.Shader) {
	if !n.ready() {
		return
	}
	n.openSpan("shader")
	n.batch.Flush()
	n.gl.UseShader(shader)
}

func (n *Native) EndShaderMode() {
	if !n.ready() {
		return
	}
	n.closeSpan()
	n.batch.Flush()
	n.gl.UseShader(native.Shader{})
}

func (n *Native) BeginBlendMode(mode native.BlendMode) {
	if !n.ready() {
		return
	}
	n.openSpan("blend")
	n.batch.Flush()
	n.gl.Blend(mode)
}

func (n *Native) EndBlendMode() {
	if !n.ready() {
		return
	}
	n.closeSpan()
	n.batch.Flush()
	n.gl.Blend(native.BlendAlpha)
}

// BeginScissorMode takes a top-left origin rect in screen coordinates.
func (n *Native) BeginScissorMode(x, y, width, height int32) {
	if !n.ready() {
		return
	}
	n.openSpan("scissor")
	n.batch.Flush()
	if n.target != nil {
		n.gl.Scissor(x, n.target.H-(y+height), width, height)
		return
	}
	w, h := n.size()
	fw, fh := n.framebufferSize()
	sx, sy := float32(1), float32(1)
	if w > 0 && h > 0 {
		sx, sy = float32(fw)/float32(w), float32(fh)/float32(h)
	}
	n.gl.Scissor(int32(float32(x)*sx), int32(float32(h-(y+height))*sy), int32(float32(width)*sx), int32(float32(height)*sy))
}

func (n *Native) EndScissorMode() {
	if !n.ready() {
		return
	}
	n.closeSpan()
	n.batch.Flush()
	n.gl.NoScissor()
}

func (n *Native) BeginVrStereoMode(config native.VrStereoConfig) {
	if !n.ready() {
		return
	}
	n.openSpan("vr")
	n.batch.Flush()
	n.vr = &config
}

func (n *Native) EndVrStereoMode() {
	if !n.ready() {
		return
	}
	n.closeSpan()
	n.batch.Flush()
	n.vr = nil
}

// BeginTextureMode redirects drawing into target. As with every GL
// framebuffer the result is stored bottom-up.
func (n *Native) BeginTextureMode(target native.RenderTexture) {
	if !n.ready() {
		return
	}
	fb, ok := n.fbs[target.ID]
	if !ok {
		n.log.Warn("unknown render texture", zap.Uint32("id", target.ID))
		return
	}
	n.push(transform{proj: scene.Screen(fb.W, fb.H), view: scene.Identity(), viewport: [4]int32{0, 0, fb.W, fb.H}})
	n.target = &fb
	n.openSpan("texture")
	n.gl.BindFramebuffer(fb.ID)
	n.gl.Viewport(0, 0, fb.W, fb.H)
}

func (n *Native) EndTextureMode() {
	if !n.ready() || n.target == nil {
		return
	}
	n.batch.Flush()
	n.gl.BindFramebuffer(0)
	n.target = nil
	n.pop()
	n.closeSpan()
}
