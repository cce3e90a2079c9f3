package assets_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveray/engine/assets"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/scene"
)

func checker() native.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	img.Set(1, 1, color.NRGBA{255, 255, 255, 255})
	return assets.FromImage(img)
}

func TestFromImageRepacksTight(t *testing.T) {
	img := checker()
	assert.Equal(t, int32(2), img.Width)
	assert.Equal(t, native.PixelFormatR8G8B8A8, img.Format)
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 255, 0, 255, 0, 0, 255, 255, 255, 255, 255, 255}, img.Pixels)

	sub := image.NewRGBA(image.Rect(0, 0, 4, 4)).SubImage(image.Rect(1, 1, 3, 2))
	assert.Len(t, assets.FromImage(sub).Pixels, 2*1*4)
}

func TestImageRoundTrip(t *testing.T) {
	for _, ext := range []string{".png", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "checker"+ext)
			require.NoError(t, assets.ExportImage(checker(), path))

			got, err := assets.LoadImage(path)
			require.NoError(t, err)
			assert.Equal(t, checker().Pixels, got.Pixels)
		})
	}
}

func TestExportImageRejectsUnknownExtension(t *testing.T) {
	err := assets.ExportImage(checker(), filepath.Join(t.TempDir(), "checker.tga"))
	assert.ErrorContains(t, err, "unsupported image format")
}

func TestLoadImageErrors(t *testing.T) {
	_, err := assets.LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = assets.LoadImage(junk)
	assert.Error(t, err)
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 1))))
	img, err := assets.DecodeImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0, 255}, img.Pixels)
}

func TestRGBAConvertsNarrowFormats(t *testing.T) {
	gray := native.Image{Width: 2, Height: 1, Format: native.PixelFormatGrayAlpha, Pixels: []byte{10, 20, 30, 40}}
	rgba := assets.RGBA(gray)
	assert.Equal(t, color.RGBA{10, 10, 10, 20}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{30, 30, 30, 40}, rgba.RGBAAt(1, 0))

	full := checker()
	view := assets.RGBA(full)
	view.SetRGBA(0, 0, color.RGBA{1, 2, 3, 4})
	assert.Equal(t, []byte{1, 2, 3, 4}, full.Pixels[:4], "RGBA8 images share pixels")
	assert.Equal(t, 3, assets.BytesPerPixel(native.PixelFormatR8G8B8))
}

func TestFlipVertical(t *testing.T) {
	assert.Equal(t, []byte{3, 4, 1, 2}, assets.FlipVertical([]byte{1, 2, 3, 4}, 2, 2))
}

func TestLoadShader(t *testing.T) {
	src, err := assets.LoadShader("")
	require.NoError(t, err)
	assert.Empty(t, src)

	path := filepath.Join(t.TempDir(), "tint.fs")
	require.NoError(t, os.WriteFile(path, []byte("void main() {}"), 0o644))
	src, err = assets.LoadShader(path)
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", src)

	_, err = assets.LoadShader(path + ".missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWaveRoundTrip(t *testing.T) {
	w := native.Wave{
		SampleRate: 22050,
		SampleSize: 16,
		Channels:   1,
		FrameCount: 4,
		Data:       []float32{0, 0.5, -0.5, 0.25},
	}
	path := filepath.Join(t.TempDir(), "tone.wav")
	require.NoError(t, assets.ExportWave(w, path))

	got, err := assets.LoadWave(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(22050), got.SampleRate)
	assert.Equal(t, uint32(1), got.Channels)
	assert.Equal(t, uint32(4), got.FrameCount)
	for i := range w.Data {
		assert.InDelta(t, w.Data[i], got.Data[i], 1e-3)
	}

	assert.Error(t, assets.ExportWave(native.Wave{}, path))
}

func TestSamplesStreamsStereo(t *testing.T) {
	s := assets.Samples(native.Wave{Channels: 2, Data: []float32{0.1, 0.2, 0.3, 0.4}})
	assert.Equal(t, 2, s.Len())

	buf := make([][2]float64, 8)
	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 0.4, buf[1][1], 1e-6)

	_, ok = s.Stream(buf)
	assert.False(t, ok)
	require.NoError(t, s.Seek(1))
	assert.Equal(t, 1, s.Position())
	assert.Error(t, s.Seek(3))
}

func TestEventsRoundTrip(t *testing.T) {
	empty, err := assets.LoadEvents("")
	require.NoError(t, err)
	assert.Empty(t, empty.Events)
	assert.Equal(t, uint32(assets.MaxAutomationEvents), empty.Capacity)

	list := native.AutomationEventList{Events: []native.AutomationEvent{
		{Frame: 1, Type: 2, Params: [4]int32{65, 0, 0, 0}},
		{Frame: 30, Type: 5, Params: [4]int32{100, 200, 0, 0}},
	}}
	path := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, assets.SaveEvents(list, path))

	got, err := assets.LoadEvents(path)
	require.NoError(t, err)
	assert.Equal(t, list.Events, got.Events)

	_, err = assets.LoadEvents(path + ".missing")
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("events: {"), 0o644))
	_, err = assets.LoadEvents(bad)
	assert.Error(t, err)
}

func TestMeshExportLoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.glb")
	require.NoError(t, assets.ExportMesh(scene.Cube(1, 1, 1), path))

	data, err := assets.LoadModel(path)
	require.NoError(t, err)
	require.Len(t, data.Meshes, 1)
	assert.Equal(t, int32(24), data.Meshes[0].VertexCount)
	assert.Equal(t, int32(12), data.Meshes[0].TriangleCount)
	assert.Len(t, data.Meshes[0].Normals, 72)
	assert.Equal(t, []int32{-1}, data.MeshMaterial)
	assert.Empty(t, data.Animations)

	mats, err := assets.LoadMaterials(path)
	require.NoError(t, err)
	assert.Empty(t, mats)

	assert.Error(t, assets.ExportMesh(native.Mesh{}, path))
	_, err = assets.LoadModel(filepath.Join(t.TempDir(), "missing.glb"))
	assert.Error(t, err)
}
