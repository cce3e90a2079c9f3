package scene

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/groveray/engine/native"
)

const deg2rad = math32.Pi / 180

// Screen maps pixel coordinates (origin top-left, +Y down) of a w×h target to clip space.
func Screen(w, h int32) Matrix {
	return Ortho(0, float32(w), float32(h), 0, -1, 1)
}

// View2D is the world-to-screen transform of cam: the target lands on the
// offset, rotated by Rotation degrees and scaled by Zoom.
func View2D(cam native.Camera2D) Matrix {
	zoom := cam.Zoom
	if zoom == 0 {
		zoom = 1
	}
	m := Translate(-cam.Target.X, -cam.Target.Y, 0)
	m = Mul(RotateZ(cam.Rotation*deg2rad), m)
	m = Mul(Scale(zoom, zoom, 1), m)
	return Mul(Translate(cam.Offset.X, cam.Offset.Y, 0), m)
}
