package scene

import "github.com/hubastard/groveray/engine/native"

const (
	nearPlane = 0.01
	farPlane  = 1000
)

// View3D returns the view and projection matrices of cam for a target with the given aspect ratio.
func View3D(cam native.Camera3D, aspect float32) (view, proj Matrix) {
	up := cam.Up
	if up == (native.Vector3{}) {
		up = native.Vector3{Y: 1}
	}
	view = LookAt(cam.Position, cam.Target, up)
	if cam.Projection == native.CameraOrthographic {
		top := cam.Fovy / 2
		right := top * aspect
		return view, Ortho(-right, right, -top, top, nearPlane, farPlane)
	}
	return view, Perspective(cam.Fovy*deg2rad, aspect, nearPlane, farPlane)
}
