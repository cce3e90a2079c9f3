package platform

import (
	"fmt"
	"image"
	"slices"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/assets"
	glbackend "github.com/hubastard/groveray/engine/gfx/gl"
	"github.com/hubastard/groveray/engine/gfx/raster"
	"github.com/hubastard/groveray/engine/native"
)

func (n *Native) newImage(img native.Image) native.Image {
	img.ID = n.id()
	n.track("image")
	return img
}

func (n *Native) LoadImage(path string) native.Image {
	img, err := assets.LoadImage(path)
	if err != nil {
		n.log.Warn("image load failed", zap.String("path", path), zap.Error(err))
		return native.Image{}
	}
	return n.newImage(img)
}

// LoadImageFromScreen reads back the window framebuffer, top row first.
func (n *Native) LoadImageFromScreen() native.Image {
	if !n.ready() {
		return native.Image{}
	}
	n.batch.Flush()
	w, h := n.framebufferSize()
	pix := assets.FlipVertical(glbackend.ReadPixels(w, h), int(w)*4, int(h))
	return n.newImage(native.Image{Pixels: pix, Width: w, Height: h, Mipmaps: 1, Format: native.PixelFormatR8G8B8A8})
}

func (n *Native) GenImageColor(width, height int32, color native.Color) native.Image {
	if width <= 0 || height <= 0 {
		return native.Image{}
	}
	img := native.Image{
		Pixels:  make([]byte, int(width)*int(height)*4),
		Width:   width,
		Height:  height,
		Mipmaps: 1,
		Format:  native.PixelFormatR8G8B8A8,
	}
	raster.Clear(assets.RGBA(img), color)
	return n.newImage(img)
}

func (n *Native) ImageCopy(img native.Image) native.Image {
	if !n.IsImageReady(img) {
		return native.Image{}
	}
	img.Pixels = slices.Clone(img.Pixels)
	return n.newImage(img)
}

func (n *Native) IsImageReady(img native.Image) bool {
	return img.Pixels != nil && img.Width > 0 && img.Height > 0 && img.Format > 0
}

func (n *Native) ExportImage(img native.Image, path string) bool {
	if err := assets.ExportImage(img, path); err != nil {
		n.log.Warn("image export failed", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// GetImageColor returns the pixel at x, y, or blank when out of bounds.
func (n *Native) GetImageColor(img native.Image, x, y int32) native.Color {
	if !n.IsImageReady(img) || x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return native.Color{}
	}
	p := assets.RGBA(img).RGBAAt(int(x), int(y))
	return native.Color{R: p.R, G: p.G, B: p.B, A: p.A}
}

func (n *Native) UnloadImage(img native.Image) {
	if img.ID != 0 {
		n.untrack("image")
	}
}

// paint runs f over an RGBA view of dst. Images in other formats are
// converted to RGBA8 in place.
func (n *Native) paint(dst *native.Image, f func(*image.RGBA)) {
	if dst == nil || !n.IsImageReady(*dst) {
		return
	}
	view := assets.RGBA(*dst)
	f(view)
	if dst.Format != native.PixelFormatR8G8B8A8 {
		dst.Pixels = view.Pix
		dst.Format = native.PixelFormatR8G8B8A8
	}
}

func (n *Native) ImageClearBackground(dst *native.Image, color native.Color) {
	n.paint(dst, func(img *image.RGBA) { raster.Clear(img, color) })
}

func (n *Native) ImageDrawPixelV(dst *native.Image, position native.Vector2, color native.Color) {
	n.paint(dst, func(img *image.RGBA) { raster.Pixel(img, int(position.X), int(position.Y), color) })
}

func (n *Native) ImageDrawLineV(dst *native.Image, start, end native.Vector2, color native.Color) {
	n.paint(dst, func(img *image.RGBA) {
		raster.Line(img, int(start.X), int(start.Y), int(end.X), int(end.Y), color)
	})
}

func (n *Native) ImageDrawCircleV(dst *native.Image, center native.Vector2, radius int32, color native.Color) {
	n.paint(dst, func(img *image.RGBA) { raster.Circle(img, int(center.X), int(center.Y), int(radius), color) })
}

func (n *Native) ImageDrawCircleLinesV(dst *native.Image, center native.Vector2, radius int32, color native.Color) {
	n.paint(dst, func(img *image.RGBA) { raster.CircleLines(img, int(center.X), int(center.Y), int(radius), color) })
}

func (n *Native) ImageDrawRectangleRec(dst *native.Image, rec native.Rectangle, color native.Color) {
	n.paint(dst, func(img *image.RGBA) { raster.Rect(img, rec, color) })
}

func (n *Native) ImageDrawRectangleLines(dst *native.Image, rec native.Rectangle, thick int32, color native.Color) {
	n.paint(dst, func(img *image.RGBA) { raster.RectLines(img, rec, int(thick), color) })
}

func (n *Native) ImageDrawTriangle(dst *native.Image, v1, v2, v3 native.Vector2, color native.Color) {
	n.paint(dst, func(img *image.RGBA) { raster.Triangle(img, v1, v2, v3, color) })
}

func (n *Native) ImageDrawTriangleLines(dst *native.Image, v1, v2, v3 native.Vector2, color native.Color) {
	n.paint(dst, func(img *image.RGBA) { raster.TriangleLines(img, v1, v2, v3, color) })
}

func (n *Native) ImageDrawTriangleFan(dst *native.Image, points []native.Vector2, color native.Color) {
	n.paint(dst, func(img *image.RGBA) { raster.TriangleFan(img, points, color) })
}

func (n *Native) ImageDrawTriangleStrip(dst *native.Image, points []native.Vector2, color native.Color) {
	n.paint(dst, func(img *image.RGBA) { raster.TriangleStrip(img, points, color) })
}

// ImageDrawTextEx rasterises with the font's atlas; fonts unknown to this
// backend fall back to the embedded default face.
func (n *Native) ImageDrawTextEx(dst *native.Image, font native.Font, s string, position native.Vector2, fontSize, spacing float32, tint native.Color) {
	atlas, err := n.cpuAtlas(font)
	if err != nil {
		n.log.Warn("image text failed", zap.Error(err))
		return
	}
	n.paint(dst, func(img *image.RGBA) {
		if err := raster.Text(img, atlas, s, position, fontSize, spacing, tint); err != nil {
			n.log.Warn("image text failed", zap.Error(err))
		}
	})
}

func (n *Native) ImageDraw(dst *native.Image, src native.Image, srcRec, dstRec native.Rectangle, tint native.Color) {
	if !n.IsImageReady(src) {
		return
	}
	n.paint(dst, func(img *image.RGBA) { raster.Blit(img, assets.RGBA(src), srcRec, dstRec, tint) })
}

func imageError(op string, img native.Image) error {
	return fmt.Errorf("%s: image %dx%d format %d not usable", op, img.Width, img.Height, img.Format)
}
