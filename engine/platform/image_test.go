package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveray/engine/native"
)

var (
	black = native.Color{A: 255}
	red   = native.Color{R: 255, A: 255}
)

func TestGenImageColor(t *testing.T) {
	n := quiet()
	img := n.GenImageColor(4, 3, red)
	require.True(t, n.IsImageReady(img))
	assert.Equal(t, 1, n.Live("image"))
	assert.Equal(t, red, n.GetImageColor(img, 3, 2))
	assert.Zero(t, n.GetImageColor(img, 4, 0))
	assert.Zero(t, n.GetImageColor(img, -1, 0))

	assert.False(t, n.IsImageReady(n.GenImageColor(0, 3, red)))

	cp := n.ImageCopy(img)
	n.ImageClearBackground(&cp, black)
	assert.Equal(t, red, n.GetImageColor(img, 0, 0), "copy owns its pixels")
	assert.Equal(t, black, n.GetImageColor(cp, 0, 0))
	assert.NotEqual(t, img.ID, cp.ID)

	n.UnloadImage(img)
	n.UnloadImage(cp)
	assert.Zero(t, n.Live("image"))
}

func TestImageDrawing(t *testing.T) {
	n := quiet()
	img := n.GenImageColor(16, 16, black)

	n.ImageDrawPixelV(&img, native.Vector2{X: 1, Y: 1}, red)
	assert.Equal(t, red, n.GetImageColor(img, 1, 1))

	n.ImageDrawRectangleRec(&img, native.Rectangle{X: 4, Y: 4, Width: 4, Height: 4}, red)
	assert.Equal(t, red, n.GetImageColor(img, 7, 7))
	assert.Equal(t, black, n.GetImageColor(img, 8, 8))

	n.ImageDrawLineV(&img, native.Vector2{X: 0, Y: 15}, native.Vector2{X: 15, Y: 15}, red)
	assert.Equal(t, red, n.GetImageColor(img, 10, 15))

	n.ImageDrawCircleV(&img, native.Vector2{X: 12, Y: 3}, 2, red)
	assert.Equal(t, red, n.GetImageColor(img, 12, 3))

	n.ImageDrawRectangleLines(&img, native.Rectangle{X: 0, Y: 0, Width: 16, Height: 16}, 1, red)
	assert.Equal(t, red, n.GetImageColor(img, 0, 8))
	assert.Equal(t, red, n.GetImageColor(img, 15, 8))

	// A nil destination or an empty image is ignored.
	n.ImageDrawPixelV(nil, native.Vector2{}, red)
	var empty native.Image
	n.ImageDrawRectangleRec(&empty, native.Rectangle{Width: 2, Height: 2}, red)
	assert.Nil(t, empty.Pixels)
}

func TestImageDrawConvertsToRGBA8(t *testing.T) {
	n := quiet()
	gray := native.Image{Pixels: make([]byte, 4), Width: 2, Height: 2, Mipmaps: 1, Format: native.PixelFormatGrayscale}
	n.ImageDrawPixelV(&gray, native.Vector2{X: 1, Y: 0}, red)
	assert.Equal(t, native.PixelFormatR8G8B8A8, gray.Format)
	assert.Len(t, gray.Pixels, 16)
	assert.Equal(t, red, n.GetImageColor(gray, 1, 0))
	assert.Equal(t, black, n.GetImageColor(gray, 0, 0))
}

func TestImageDrawScales(t *testing.T) {
	n := quiet()
	src := n.GenImageColor(2, 2, red)
	dst := n.GenImageColor(8, 8, black)
	n.ImageDraw(&dst, src,
		native.Rectangle{Width: 2, Height: 2},
		native.Rectangle{X: 2, Y: 2, Width: 4, Height: 4},
		native.Color{R: 255, G: 255, B: 255, A: 255})
	assert.Equal(t, red, n.GetImageColor(dst, 3, 3))
	assert.Equal(t, black, n.GetImageColor(dst, 0, 0))
	assert.Equal(t, black, n.GetImageColor(dst, 7, 7))
}

func TestImageText(t *testing.T) {
	n := quiet()
	img := n.GenImageColor(64, 32, black)
	n.ImageDrawTextEx(&img, native.Font{}, "Hi", native.Vector2{X: 2, Y: 2}, 20, 1, red)

	inked := 0
	for y := int32(0); y < img.Height; y++ {
		for x := int32(0); x < img.Width; x++ {
			if n.GetImageColor(img, x, y).R > 0 {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 10)

	size := n.MeasureTextEx(native.Font{}, "Hi", 20, 1)
	assert.Greater(t, size.X, float32(0))
	assert.Equal(t, float32(20), size.Y)
	assert.Zero(t, n.MeasureTextEx(native.Font{}, "", 20, 1))
}

func TestExportImage(t *testing.T) {
	n := quiet()
	img := n.GenImageColor(3, 2, red)
	path := filepath.Join(t.TempDir(), "red.png")
	require.True(t, n.ExportImage(img, path))

	back := n.LoadImage(path)
	require.True(t, n.IsImageReady(back))
	assert.Equal(t, int32(3), back.Width)
	assert.Equal(t, red, n.GetImageColor(back, 2, 1))

	assert.False(t, n.IsImageReady(n.LoadImage(filepath.Join(t.TempDir(), "missing.png"))))
}
