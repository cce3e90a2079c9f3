// Package gfx implements the drawing session, the nested mode guards that
// wrap every native Begin*/End* pair, and the graphics resource handles.
//
// A Drawing is the root of one frame. Each guard may have at most one nested
// mode open at a time; a second Begin on the same guard fails with
// ThreadAlreadyLocked("drawing") before any native call. Guards end innermost
// first, and End on a guard with an open nested mode fails with
// NestingViolation. The Draw* closures instead unwind: modes the callback
// left open are ended innermost first, then the closure's own mode, and the
// call reports NestingViolation.
package gfx

import (
	"github.com/hubastard/groveray/engine/guard"
	"github.com/hubastard/groveray/engine/native"
)

// Drawing is an open BeginDrawing/EndDrawing frame.
type Drawing struct {
	*scope
	screen2D
}

// Begin opens a frame. tok is the context's drawing lock; it is released when
// the frame ends.
func Begin(lib native.Library, tok *guard.Token) *Drawing {
	lib.BeginDrawing()
	s := newScope(lib, "drawing", &guard.Stack{}, tok, lib.EndDrawing)
	return &Drawing{scope: s, screen2D: screen2D{s}}
}

func (d *Drawing) Begin2D(camera native.Camera2D) (*Mode2D, error)    { return begin2D(d.scope, camera) }
func (d *Drawing) Begin3D(camera native.Camera3D) (*Mode3D, error)    { return begin3D(d.scope, camera) }
func (d *Drawing) BeginShader(shader *Shader) (*Shaded, error)        { return beginShader(d.scope, shader) }
func (d *Drawing) BeginBlend(mode native.BlendMode) (*Blended, error) { return beginBlend(d.scope, mode) }
func (d *Drawing) BeginViewport(rect native.Rectangle) (*Viewport, error) {
	return beginViewport(d.scope, rect)
}
func (d *Drawing) BeginVR(config *VrStereoConfig) (*VR, error) { return beginVR(d.scope, config) }
func (d *Drawing) BeginTexture(target *RenderTexture) (*TextureTarget, error) {
	return beginTexture(d.scope, target)
}

func (d *Drawing) Draw2D(camera native.Camera2D, f func(*Mode2D) error) error {
	m, err := d.Begin2D(camera)
	return scoped(m, err, f)
}

func (d *Drawing) Draw3D(camera native.Camera3D, f func(*Mode3D) error) error {
	m, err := d.Begin3D(camera)
	return scoped(m, err, f)
}

func (d *Drawing) DrawShader(shader *Shader, f func(*Shaded) error) error {
	m, err := d.BeginShader(shader)
	return scoped(m, err, f)
}

func (d *Drawing) DrawBlend(mode native.BlendMode, f func(*Blended) error) error {
	m, err := d.BeginBlend(mode)
	return scoped(m, err, f)
}

func (d *Drawing) DrawViewport(rect native.Rectangle, f func(*Viewport) error) error {
	m, err := d.BeginViewport(rect)
	return scoped(m, err, f)
}

func (d *Drawing) DrawVR(config *VrStereoConfig, f func(*VR) error) error {
	m, err := d.BeginVR(config)
	return scoped(m, err, f)
}

func (d *Drawing) DrawToTexture(target *RenderTexture, f func(*TextureTarget) error) error {
	m, err := d.BeginTexture(target)
	return scoped(m, err, f)
}
