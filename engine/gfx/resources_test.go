package gfx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/native/nativetest"
)

// asset writes a placeholder file so path based loaders succeed.
func asset(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("asset"), 0o644))
	return path
}

func TestLoadTextureMissingFile(t *testing.T) {
	lib := nativetest.New()

	tex, err := gfx.LoadTexture(lib, filepath.Join(t.TempDir(), "nope.png"))
	assert.Nil(t, tex)
	assert.True(t, errors.Is(err, errors.UnableToLoad("texture")))
	assert.Equal(t, "unable to load texture", err.Error())
	assert.Zero(t, lib.Count("UnloadTexture"))
}

func TestTextureReleasedOnce(t *testing.T) {
	lib := nativetest.New()
	tex, err := gfx.LoadTexture(lib, asset(t, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, int32(16), tex.Width())
	assert.Equal(t, 1, lib.Live())

	tex.SetFilter(native.FilterBilinear)
	tex.GenMipmaps()
	assert.Equal(t, int32(4), tex.Raw().Mipmaps)

	require.NoError(t, tex.Close())
	require.NoError(t, tex.Close())
	assert.Equal(t, 1, lib.Count("UnloadTexture"))
	assert.Zero(t, lib.Live())
	assert.Empty(t, lib.DoubleFrees)
}

func TestTextureFromImageKeepsImage(t *testing.T) {
	lib := nativetest.New()
	img, err := gfx.GenImageColor(lib, 8, 4, native.Color{R: 255, A: 255})
	require.NoError(t, err)

	tex, err := gfx.TextureFromImage(lib, img)
	require.NoError(t, err)
	assert.Equal(t, int32(8), tex.Width())
	assert.Equal(t, int32(4), tex.Height())

	require.NoError(t, tex.Close())
	require.NoError(t, img.Close())
	assert.Zero(t, lib.Live())
	assert.Empty(t, lib.DoubleFrees)
}

func TestRenderTextureViewIsBorrowed(t *testing.T) {
	lib := nativetest.New()
	rt, err := gfx.LoadRenderTexture(lib, 32, 32)
	require.NoError(t, err)

	view := rt.Texture()
	assert.False(t, view.Owned())
	require.NoError(t, view.Close())
	assert.Zero(t, lib.Count("UnloadTexture"))

	require.NoError(t, rt.Close())
	assert.Equal(t, 1, lib.Count("UnloadRenderTexture"))
	assert.Empty(t, lib.DoubleFrees)

	_, err = gfx.LoadRenderTexture(lib, 0, 32)
	assert.True(t, errors.Is(err, errors.UnableToLoad("render texture")))
}

func TestGenImageColorRejectsEmptySize(t *testing.T) {
	lib := nativetest.New()
	_, err := gfx.GenImageColor(lib, 0, 10, native.Color{})
	assert.True(t, errors.Is(err, errors.UnableToLoad("image")))
	assert.Zero(t, lib.Count("UnloadImage"))
}

func TestImageCloneIsIndependent(t *testing.T) {
	lib := nativetest.New()
	img, err := gfx.GenImageColor(lib, 4, 4, native.Color{})
	require.NoError(t, err)
	img.Raw().Pixels[0] = 200

	clone, err := img.Clone()
	require.NoError(t, err)
	assert.Equal(t, native.Color{R: 200}, clone.Pixel(0, 0))

	clone.Raw().Pixels[0] = 7
	assert.Equal(t, uint8(200), img.Raw().Pixels[0])

	require.NoError(t, img.Close())
	require.NoError(t, clone.Close())
	assert.Equal(t, 2, lib.Count("UnloadImage"))
	assert.Zero(t, lib.Live())
}

func TestImageCanvas(t *testing.T) {
	lib := nativetest.New()
	img, err := gfx.GenImageColor(lib, 16, 16, native.Color{})
	require.NoError(t, err)
	defer img.Close()

	white := native.Color{R: 255, G: 255, B: 255, A: 255}
	img.ClearBackground(white)
	require.NoError(t, img.DrawShape(gfx.TriangleFan{{X: 1}, {Y: 1}, {X: 2, Y: 2}}, white))
	require.NoError(t, img.DrawShape(gfx.LineStrip{{}, {X: 2}, {X: 2, Y: 2}}, white))
	require.NoError(t, img.DrawShapeLines(gfx.Rect{Rec: native.Rectangle{Width: 4, Height: 4}}, 2, white))
	require.NoError(t, img.DrawText(nil, "ok", native.Vector2{}, 10, 1, white))

	assert.Equal(t, 1, lib.Count("ImageClearBackground"))
	assert.Equal(t, 1, lib.Count("ImageDrawTriangleFan"))
	assert.Equal(t, 2, lib.Count("ImageDrawLineV"))
	assert.Equal(t, 1, lib.Count("ImageDrawRectangleLines"))
	assert.Equal(t, 1, lib.Count("ImageDrawTextEx"))

	tests := []struct {
		name string
		err  error
		verb string
		noun string
	}{
		{"rotated rect", img.DrawShape(gfx.RotatedRect{}, white), "shape drawing", "rotated rectangles"},
		{"poly", img.DrawShape(gfx.Poly{Sides: 5}, white), "shape drawing", "polygons"},
		{"fan lines", img.DrawShapeLines(gfx.TriangleFan{}, 1, white), "line drawing", "triangle fans"},
		{"gradient h", img.DrawGradientH(gfx.Rect{}, white, white), "gradient drawing", "horizontal gradients"},
		{"gradient v", img.DrawGradientV(gfx.Rect{}, white, white), "gradient drawing", "vertical gradients"},
		{"texture", img.DrawTexture(nil, native.Vector2{}, 0, 1, white), "texture drawing", "images"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, errors.OperationNotSupported(tt.verb, tt.noun)), "got %v", tt.err)
		})
	}
}

func TestImageExport(t *testing.T) {
	lib := nativetest.New()
	img, err := gfx.GenImageColor(lib, 2, 2, native.Color{})
	require.NoError(t, err)
	defer img.Close()

	out := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, img.Export(out))
	assert.FileExists(t, out)

	assert.True(t, errors.Is(img.Export(""), errors.ErrInvalidArgument))
	err = img.Export(filepath.Join(t.TempDir(), "missing", "dir", "out.png"))
	assert.True(t, errors.Is(err, errors.ErrIO))
}

func TestScreenGradientsAndWires(t *testing.T) {
	f := newFixture(t)
	c := native.Color{A: 255}

	require.NoError(t, f.d.DrawGradientH(gfx.Rect{Rec: native.Rectangle{Width: 8, Height: 8}}, c, c))
	require.NoError(t, f.d.DrawGradientV(gfx.Circle{Radius: 4}, c, c))
	assert.Equal(t, 1, f.lib.Count("DrawRectangleGradientH"))
	assert.Equal(t, 1, f.lib.Count("DrawCircleGradient"))

	err := f.d.DrawGradientH(gfx.RotatedRect{}, c, c)
	assert.True(t, errors.Is(err, errors.OperationNotSupported("gradient drawing", "rotated rectangles")))
	err = f.d.DrawGradientV(gfx.Triangle{}, c, c)
	assert.True(t, errors.Is(err, errors.OperationNotSupported("gradient drawing", "non-rectangle/non-circle shapes")))
	err = f.d.DrawShapeLines(gfx.TriangleStrip{}, 1, c)
	assert.True(t, errors.Is(err, errors.OperationNotSupported("line drawing", "triangle strips")))

	err = f.d.Draw3D(native.Camera3D{Fovy: 45}, func(m *gfx.Mode3D) error {
		require.NoError(t, m.DrawWires3D(gfx.Sphere{Radius: 1}, c))
		return m.DrawWires3D(gfx.Plane{Size: native.Vector2{X: 1, Y: 1}}, c)
	})
	assert.True(t, errors.Is(err, errors.OperationNotSupported("wireframe drawing", "planes")))
	assert.Equal(t, 1, f.lib.Count("DrawSphereWires"))
	assert.Equal(t, 1, f.lib.Count("EndMode3D"))
}

func TestDefaultFontNeverReleased(t *testing.T) {
	lib := nativetest.New()
	font := gfx.DefaultFont(lib)
	assert.False(t, font.Owned())
	assert.Equal(t, int32(10), font.BaseSize())

	require.NoError(t, font.Close())
	assert.Zero(t, lib.Count("UnloadFont"))
	assert.Empty(t, lib.DoubleFrees)
}

func TestLoadFont(t *testing.T) {
	lib := nativetest.New()
	font, err := gfx.LoadFont(lib, asset(t, "font.ttf"), 24, []rune("abc"))
	require.NoError(t, err)
	assert.Equal(t, int32(24), font.BaseSize())
	assert.Equal(t, native.Vector2{X: 36 + 2, Y: 24}, font.Measure("abc", 24, 1))

	require.NoError(t, font.Close())
	assert.Equal(t, 1, lib.Count("UnloadFont"))
	assert.Zero(t, lib.Live())

	_, err = gfx.LoadFont(lib, "", 24, nil)
	assert.True(t, errors.Is(err, errors.UnableToLoad("font")))
}

func TestShaderLocation(t *testing.T) {
	lib := nativetest.New()
	sh, err := gfx.ShaderFromSource(lib, "vs", "fs")
	require.NoError(t, err)
	defer sh.Close()

	loc, err := sh.Location("tint")
	require.NoError(t, err)
	assert.Equal(t, int32(4), loc)

	loc, err = sh.Location("missingUniform")
	assert.Equal(t, int32(-1), loc)
	assert.True(t, errors.Is(err, errors.UnableToLoad("shader location")))

	require.NoError(t, sh.Set("tint", []float32{1, 0, 0, 1}, native.UniformVec4))
	assert.Error(t, sh.Set("missingTint", []float32{1}, native.UniformFloat))
	assert.Equal(t, 1, lib.Count("SetShaderValue"))
}

func TestLoadShaderMissingStage(t *testing.T) {
	lib := nativetest.New()
	_, err := gfx.LoadShader(lib, "", filepath.Join(t.TempDir(), "none.fs"))
	assert.True(t, errors.Is(err, errors.UnableToLoad("shader")))

	sh, err := gfx.LoadShader(lib, "", asset(t, "ok.fs"))
	require.NoError(t, err)
	require.NoError(t, sh.Close())
	assert.Equal(t, 1, lib.Count("UnloadShader"))
}

func TestDefaultMaterialNeverReleased(t *testing.T) {
	lib := nativetest.New()
	m := gfx.DefaultMaterial(lib)
	require.NoError(t, m.Close())
	assert.Zero(t, lib.Count("UnloadMaterial"))
	assert.Empty(t, lib.DoubleFrees)
}

func TestLoadMaterials(t *testing.T) {
	lib := nativetest.New()
	mats, err := gfx.LoadMaterials(lib, asset(t, "scene.mtl"))
	require.NoError(t, err)
	require.Len(t, mats, 2)
	for _, m := range mats {
		require.NoError(t, m.Close())
	}
	assert.Equal(t, 2, lib.Count("UnloadMaterial"))
	assert.Zero(t, lib.Live())

	_, err = gfx.LoadMaterials(lib, "")
	assert.True(t, errors.Is(err, errors.UnableToLoad("material")))
}

func TestModelFromMeshTakesOwnership(t *testing.T) {
	lib := nativetest.New()
	mesh, err := gfx.GenMeshCube(lib, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(24), mesh.VertexCount())

	model, err := gfx.ModelFromMesh(lib, mesh)
	require.NoError(t, err)
	assert.True(t, mesh.Closed())
	assert.Equal(t, 1, model.MeshCount())

	view, err := model.Mesh(0)
	require.NoError(t, err)
	require.NoError(t, view.Close())
	require.NoError(t, mesh.Close())
	require.NoError(t, model.Close())

	assert.Zero(t, lib.Count("UnloadMesh"))
	assert.Equal(t, 1, lib.Count("UnloadModel"))
	assert.Zero(t, lib.Live())
	assert.Empty(t, lib.DoubleFrees)
}

func TestModelFromMeshRejectsBorrowedAndClosed(t *testing.T) {
	lib := nativetest.New()
	mesh, err := gfx.GenMeshCube(lib, 1, 1, 1)
	require.NoError(t, err)
	model, err := gfx.ModelFromMesh(lib, mesh)
	require.NoError(t, err)

	view, err := model.Mesh(0)
	require.NoError(t, err)
	_, err = gfx.ModelFromMesh(lib, view)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))

	// mesh was absorbed by the first model
	_, err = gfx.ModelFromMesh(lib, mesh)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))

	closed, err := gfx.GenMeshPlane(lib, 1, 1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, closed.Close())
	_, err = gfx.ModelFromMesh(lib, closed)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))

	_, err = gfx.ModelFromMesh(lib, nil)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))

	require.NoError(t, model.Close())
	assert.Equal(t, 1, lib.Count("UnloadModel"))
	assert.Equal(t, 1, lib.Count("UnloadMesh"))
	assert.Zero(t, lib.Live())
	assert.Empty(t, lib.DoubleFrees)
}

func TestModelMeshIndexChecked(t *testing.T) {
	lib := nativetest.New()
	mesh, err := gfx.GenMeshCube(lib, 1, 1, 1)
	require.NoError(t, err)
	model, err := gfx.ModelFromMesh(lib, mesh)
	require.NoError(t, err)
	defer model.Close()

	for _, i := range []int{-1, 1} {
		m, err := model.Mesh(i)
		assert.Nil(t, m)
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument), "index %d", i)
	}
}

func TestGenMeshFailure(t *testing.T) {
	lib := nativetest.New()
	lib.Fail["GenMeshSphere"] = true
	_, err := gfx.GenMeshSphere(lib, 1, 8, 8)
	assert.True(t, errors.Is(err, errors.UnableToLoad("mesh")))
	assert.Zero(t, lib.Count("UnloadMesh"))
}

func TestModelAnimations(t *testing.T) {
	lib := nativetest.New()
	model, err := gfx.LoadModel(lib, asset(t, "robot.glb"))
	require.NoError(t, err)
	defer model.Close()

	anims, err := gfx.LoadModelAnimations(lib, model, asset(t, "robot.anim"))
	require.NoError(t, err)
	require.Len(t, anims, 2)
	assert.Equal(t, "idle", anims[0].Name())
	assert.Equal(t, int32(30), anims[0].FrameCount())

	anims[0].Apply(model, 45)
	assert.Equal(t, 1, lib.Count("UpdateModelAnimation"))

	for _, a := range anims {
		require.NoError(t, a.Close())
	}
	assert.Equal(t, 2, lib.Count("UnloadModelAnimation"))
}

func TestModelAnimationsRejectMismatchedSkeleton(t *testing.T) {
	lib := nativetest.New()
	mesh, err := gfx.GenMeshPlane(lib, 1, 1, 2, 2)
	require.NoError(t, err)
	model, err := gfx.ModelFromMesh(lib, mesh)
	require.NoError(t, err)
	defer model.Close()

	anims, err := gfx.LoadModelAnimations(lib, model, asset(t, "robot.anim"))
	assert.Nil(t, anims)
	assert.True(t, errors.Is(err, errors.UnableToLoad("model animation")))
	assert.Equal(t, 2, lib.Count("UnloadModelAnimation"))
}

func TestMeshExport(t *testing.T) {
	lib := nativetest.New()
	mesh, err := gfx.GenMeshCube(lib, 1, 1, 1)
	require.NoError(t, err)
	defer mesh.Close()

	out := filepath.Join(t.TempDir(), "cube.obj")
	require.NoError(t, mesh.Export(out))
	assert.FileExists(t, out)
}

func TestVrStereoConfigReleasedOnClose(t *testing.T) {
	lib := nativetest.New()
	cfg := gfx.LoadVrStereoConfig(lib, gfx.OculusRiftCV1)
	assert.Equal(t, float32(2160), cfg.Raw().Scale[0])
	require.NoError(t, cfg.Close())
	require.NoError(t, cfg.Close())
	assert.Equal(t, 1, lib.Count("UnloadVrStereoConfig"))
}
