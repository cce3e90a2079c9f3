package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/text"
)

var (
	red   = native.Color{R: 255, A: 255}
	white = native.Color{R: 255, G: 255, B: 255, A: 255}
)

func count(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestClearAndPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Clear(img, white)
	assert.Equal(t, 16, count(img, color.RGBA{255, 255, 255, 255}))

	Pixel(img, 1, 2, red)
	Pixel(img, -1, 9, red)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 2))
	assert.Equal(t, 1, count(img, color.RGBA{255, 0, 0, 255}))
}

func TestLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	Line(img, 0, 0, 7, 7, red)
	assert.Equal(t, 8, count(img, color.RGBA{255, 0, 0, 255}))
	for i := 0; i < 8; i++ {
		assert.Equal(t, uint8(255), img.RGBAAt(i, i).R)
	}

	img = image.NewRGBA(image.Rect(0, 0, 8, 8))
	Line(img, 6, 3, 1, 3, red)
	assert.Equal(t, 6, count(img, color.RGBA{255, 0, 0, 255}))
}

func TestCircle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 11, 11))
	Circle(img, 5, 5, 3, red)
	filled := count(img, color.RGBA{255, 0, 0, 255})
	assert.Equal(t, 29, filled)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)

	img = image.NewRGBA(image.Rect(0, 0, 11, 11))
	CircleLines(img, 5, 5, 3, red)
	assert.Less(t, count(img, color.RGBA{255, 0, 0, 255}), filled)
	assert.Equal(t, uint8(255), img.RGBAAt(5, 2).A)
	assert.Zero(t, img.RGBAAt(5, 5).A)
}

func TestRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Rect(img, native.Rectangle{X: 8, Y: 8, Width: 5, Height: 5}, red)
	assert.Equal(t, 4, count(img, color.RGBA{255, 0, 0, 255}), "clipped to bounds")

	img = image.NewRGBA(image.Rect(0, 0, 10, 10))
	RectLines(img, native.Rectangle{Width: 6, Height: 6}, 1, red)
	assert.Equal(t, 20, count(img, color.RGBA{255, 0, 0, 255}))
	RectLines(img, native.Rectangle{Width: 6, Height: 6}, 0, white)
	assert.Zero(t, count(img, color.RGBA{255, 255, 255, 255}))
}

func TestTriangle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Triangle(img, native.Vector2{}, native.Vector2{X: 10}, native.Vector2{Y: 10}, red)
	assert.Equal(t, uint8(255), img.RGBAAt(1, 1).A)
	assert.Zero(t, img.RGBAAt(9, 9).A)

	img = image.NewRGBA(image.Rect(0, 0, 10, 10))
	TriangleFan(img, []native.Vector2{{}, {X: 10}, {X: 10, Y: 10}, {Y: 10}}, red)
	assert.GreaterOrEqual(t, count(img, color.RGBA{255, 0, 0, 255}), 90)
	assert.Equal(t, uint8(255), img.RGBAAt(9, 0).A)
	assert.Equal(t, uint8(255), img.RGBAAt(0, 9).A)

	img = image.NewRGBA(image.Rect(0, 0, 10, 10))
	TriangleStrip(img, []native.Vector2{{}, {X: 10}}, red)
	assert.Zero(t, count(img, color.RGBA{255, 0, 0, 255}))
}

func TestBlit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	Clear(src, white)
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))

	Blit(dst, src, native.Rectangle{Width: 2, Height: 2}, native.Rectangle{X: 1, Y: 1, Width: 2, Height: 2}, white)
	assert.Equal(t, 4, count(dst, color.RGBA{255, 255, 255, 255}))

	Blit(dst, src, native.Rectangle{Width: 2, Height: 2}, native.Rectangle{X: 4, Y: 4, Width: 4, Height: 4}, red)
	assert.Equal(t, 16, count(dst, color.RGBA{255, 0, 0, 255}))

	Blit(dst, src, native.Rectangle{X: 5, Width: 2, Height: 2}, native.Rectangle{Width: 2, Height: 2}, white)
	assert.Equal(t, 4, count(dst, color.RGBA{255, 255, 255, 255}), "empty source is ignored")
}

func TestText(t *testing.T) {
	atlas, err := text.Default(16)
	require.NoError(t, err)
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	require.NoError(t, Text(img, atlas, "Hi", native.Vector2{X: 2, Y: 2}, 16, 1, red))

	inked := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			inked++
		}
	}
	assert.Greater(t, inked, 10)
}
