package main

import (
	"math"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/colors"
	"github.com/hubastard/groveray/engine/core"
	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
)

// pulse tints whatever it draws by a time uniform.
const pulseFragment = `#version 330 core
in vec4 fragColor;
in vec2 fragTexCoord;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform float time;
out vec4 finalColor;
void main() {
    float k = 0.6 + 0.4 * sin(time * 3.0);
    finalColor = texture(texture0, fragTexCoord) * fragColor * colDiffuse * vec4(k, k, 1.0, 1.0);
}
`

// Layer3D orbits a camera around a small scene. A scissored corner panel and
// a shader-tinted bar sit on top. With vr set the scene renders through the
// stereo distortion pass instead.
type Layer3D struct {
	vr bool

	cube   *gfx.Model
	pulse  *gfx.Shader
	stereo *gfx.VrStereoConfig
	t      float32
}

func (l *Layer3D) OnAttach(e *core.Engine) {
	log := logging.Named("sandbox")
	lib := e.Ctx.Native()

	mesh, err := gfx.GenMeshCube(lib, 1, 1, 1)
	if err == nil {
		l.cube, err = gfx.ModelFromMesh(lib, mesh)
	}
	if err != nil {
		log.Warn("cube model", zap.Error(err))
	}
	if l.pulse, err = gfx.ShaderFromSource(lib, "", pulseFragment); err != nil {
		log.Warn("pulse shader", zap.Error(err))
	}
	if l.vr {
		l.stereo = gfx.LoadVrStereoConfig(lib, gfx.OculusRiftCV1)
	}
}

func (l *Layer3D) OnDetach(e *core.Engine) {
	if l.cube != nil {
		_ = l.cube.Close()
	}
	if l.pulse != nil {
		_ = l.pulse.Close()
	}
	if l.stereo != nil {
		_ = l.stereo.Close()
	}
}

func (l *Layer3D) OnUpdate(e *core.Engine, dt float64) { l.t += float32(dt) }

func (l *Layer3D) camera() native.Camera3D {
	a := float64(l.t) * 0.4
	return native.Camera3D{
		Position:   native.Vector3{X: float32(8 * math.Cos(a)), Y: 5, Z: float32(8 * math.Sin(a))},
		Up:         native.Vector3{Y: 1},
		Fovy:       45,
		Projection: native.CameraPerspective,
	}
}

func (l *Layer3D) scene(m *gfx.Mode3D) error {
	m.DrawGrid(10, 1)
	if err := m.DrawShape3D(gfx.Plane{Size: native.Vector2{X: 4, Y: 4}}, colors.Lime); err != nil {
		return err
	}
	if err := m.DrawShape3D(gfx.Sphere{Center: native.Vector3{X: -2, Y: 1}, Radius: 1}, colors.Blue); err != nil {
		return err
	}
	if err := m.DrawWires3D(gfx.Sphere{Center: native.Vector3{X: -2, Y: 1}, Radius: 1.02, Rings: 8, Slices: 8}, colors.DarkBlue); err != nil {
		return err
	}
	if l.cube != nil {
		m.DrawModel(l.cube, native.Vector3{X: 2, Y: 0.5}, 1, colors.Red)
		m.DrawModelWires(l.cube, native.Vector3{X: 2, Y: 0.5}, 1, colors.Maroon)
	}
	return m.DrawWires3D(gfx.Cube{Pos: native.Vector3{Y: 2.5}, Width: 1, Height: 1, Length: 1}, colors.Purple)
}

func (l *Layer3D) OnRender(e *core.Engine, d *gfx.Drawing, alpha float64) error {
	cam := l.camera()
	if l.stereo != nil {
		return d.DrawVR(l.stereo, func(v *gfx.VR) error { return v.Draw3D(cam, l.scene) })
	}

	if err := d.Draw3D(cam, l.scene); err != nil {
		return err
	}

	w, h := float32(e.Window.Width()), float32(e.Window.Height())
	pip := native.Rectangle{X: w - 336, Y: h - 216, Width: 320, Height: 200}
	err := d.DrawViewport(pip, func(v *gfx.Viewport) error {
		// the panel is larger than the scissor rect; only the corner shows
		if err := v.DrawGradientH(gfx.Rect{Rec: native.Rectangle{X: pip.X - 40, Y: pip.Y - 40, Width: 400, Height: 280}}, colors.DarkPurple, colors.SkyBlue); err != nil {
			return err
		}
		return v.DrawShapeLines(gfx.Rect{Rec: pip}, 2, colors.Black)
	})
	if err != nil {
		return err
	}
	if l.pulse == nil {
		return nil
	}
	if err := l.pulse.Set("time", []float32{l.t}, native.UniformFloat); err != nil {
		// uniform optimised out; draw untinted
		logging.Named("sandbox").Debug("pulse uniform", zap.Error(err))
	}
	return d.DrawShader(l.pulse, func(s *gfx.Shaded) error {
		return s.DrawShape(gfx.Rect{Rec: native.Rectangle{X: 16, Y: h - 56, Width: 240, Height: 40}}, colors.Orange)
	})
}
