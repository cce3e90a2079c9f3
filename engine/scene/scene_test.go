package scene_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/scene"
)

func assertPoint(t *testing.T, want, got native.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-4, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-4, "z")
}

func TestMulAppliesRightOperandFirst(t *testing.T) {
	m := scene.Mul(scene.Translate(10, 0, 0), scene.Scale(2, 2, 2))
	assertPoint(t, native.Vector3{X: 12, Y: 2, Z: 2}, scene.Apply(m, native.Vector3{X: 1, Y: 1, Z: 1}))

	assert.Equal(t, scene.Translate(1, 2, 3), scene.Mul(scene.Identity(), scene.Translate(1, 2, 3)))
}

func TestRotateZ(t *testing.T) {
	got := scene.Apply(scene.RotateZ(math32.Pi/2), native.Vector3{X: 1})
	assertPoint(t, native.Vector3{Y: 1}, got)

	axis := scene.Apply(scene.RotateAxis(native.Vector3{Z: 5}, math32.Pi/2), native.Vector3{X: 1})
	assertPoint(t, native.Vector3{Y: 1}, axis)
}

func TestScreenMapsCornersToClipSpace(t *testing.T) {
	m := scene.Screen(800, 450)
	assertPoint(t, native.Vector3{X: -1, Y: 1}, scene.Apply(m, native.Vector3{}))
	assertPoint(t, native.Vector3{X: 1, Y: -1}, scene.Apply(m, native.Vector3{X: 800, Y: 450}))
}

func TestView2D(t *testing.T) {
	cam := native.Camera2D{
		Offset: native.Vector2{X: 400, Y: 225},
		Target: native.Vector2{X: 10, Y: 10},
		Zoom:   2,
	}
	m := scene.View2D(cam)
	assertPoint(t, native.Vector3{X: 400, Y: 225}, scene.Apply(m, native.Vector3{X: 10, Y: 10}))
	assertPoint(t, native.Vector3{X: 402, Y: 225}, scene.Apply(m, native.Vector3{X: 11, Y: 10}))

	// zero zoom is treated as 1
	id := scene.View2D(native.Camera2D{})
	assertPoint(t, native.Vector3{X: 3, Y: 4}, scene.Apply(id, native.Vector3{X: 3, Y: 4}))
}

func TestView3DLooksDownNegativeZ(t *testing.T) {
	cam := native.Camera3D{
		Position: native.Vector3{Z: 10},
		Up:       native.Vector3{Y: 1},
		Fovy:     45,
	}
	view, proj := scene.View3D(cam, 16.0/9)
	eye := scene.Apply(view, native.Vector3{})
	assertPoint(t, native.Vector3{Z: -10}, eye)

	clip := scene.Apply(scene.Mul(proj, view), native.Vector3{})
	assert.InDelta(t, 0, clip.X, 1e-4)
	assert.InDelta(t, 0, clip.Y, 1e-4)
	assert.True(t, clip.Z > -1 && clip.Z < 1)

	cam.Projection = native.CameraOrthographic
	_, ortho := scene.View3D(cam, 1)
	corner := scene.Apply(ortho, native.Vector3{X: 22.5, Y: 22.5, Z: -1})
	assert.InDelta(t, 1, corner.X, 1e-4)
	assert.InDelta(t, 1, corner.Y, 1e-4)
}

func TestGeneratedMeshCounts(t *testing.T) {
	cube := scene.Cube(1, 2, 3)
	assert.Equal(t, int32(24), cube.VertexCount)
	assert.Equal(t, int32(12), cube.TriangleCount)
	assert.Len(t, cube.Normals, 72)
	assert.Len(t, cube.Texcoords, 48)

	plane := scene.Plane(10, 10, 2, 3)
	assert.Equal(t, int32(12), plane.VertexCount)
	assert.Equal(t, int32(12), plane.TriangleCount)

	sphere := scene.Sphere(1, 8, 16)
	assert.Equal(t, int32(9*17), sphere.VertexCount)
	assert.Equal(t, int32(8*16*2), sphere.TriangleCount)

	assert.Zero(t, scene.Plane(1, 1, 0, 1).VertexCount)
	assert.Zero(t, scene.Sphere(1, 1, 16).VertexCount)
}

func TestTriangles(t *testing.T) {
	tris := scene.Triangles(scene.Cube(2, 2, 2))
	assert.Len(t, tris, 36)
	for _, p := range tris {
		assert.InDelta(t, 1, math32.Abs(p.X), 1e-6)
	}

	flat := native.Mesh{Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 9, 9}}
	assert.Len(t, scene.Triangles(flat), 3)
}

func TestStereoConfigIsSymmetric(t *testing.T) {
	cfg := scene.StereoConfig(native.VrDeviceInfo{
		HResolution:            2160,
		VResolution:            1200,
		HScreenSize:            0.133793,
		VScreenSize:            0.0669,
		EyeToScreenDistance:    0.041,
		LensSeparationDistance: 0.07,
		InterpupillaryDistance: 0.07,
		LensDistortionValues:   [4]float32{1, 0.22, 0.24, 0},
	})
	assert.InDelta(t, 1, cfg.LeftLensCenter[0]+cfg.RightLensCenter[0], 1e-6)
	assert.Equal(t, [2]float32{0.25, 0.5}, cfg.LeftScreenCenter)
	assert.Equal(t, -cfg.ViewOffset[0][12], cfg.ViewOffset[1][12])
	assert.NotEqual(t, cfg.Projection[0], cfg.Projection[1])

	assert.Equal(t, native.VrStereoConfig{}, scene.StereoConfig(native.VrDeviceInfo{}))
}
