package gfx

import (
	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/native"
)

func imageKind(lib native.Library) handle.Kind[native.Image] {
	return handle.Kind[native.Image]{ID: handle.KindImage, Valid: lib.IsImageReady, Release: lib.UnloadImage}
}

// Image is CPU-side pixel data. It is also an off-screen Canvas2D.
type Image struct {
	*handle.Handle[native.Image]
	lib native.Library
}

func wrapImage(lib native.Library, load func() native.Image) (*Image, error) {
	h, err := imageKind(lib).Load(load)
	if err != nil {
		return nil, err
	}
	return &Image{Handle: h, lib: lib}, nil
}

// LoadImage loads an image file.
func LoadImage(lib native.Library, path string) (*Image, error) {
	return wrapImage(lib, func() native.Image { return lib.LoadImage(path) })
}

// ImageFromScreen grabs the current framebuffer.
func ImageFromScreen(lib native.Library) (*Image, error) {
	return wrapImage(lib, lib.LoadImageFromScreen)
}

// GenImageColor creates a width x height image filled with color.
func GenImageColor(lib native.Library, width, height int32, color native.Color) (*Image, error) {
	return wrapImage(lib, func() native.Image { return lib.GenImageColor(width, height, color) })
}

// Clone deep-copies the pixels into a new owned image.
func (img *Image) Clone() (*Image, error) {
	return wrapImage(img.lib, func() native.Image { return img.lib.ImageCopy(img.Raw()) })
}

func (img *Image) Width() int32  { return img.Raw().Width }
func (img *Image) Height() int32 { return img.Raw().Height }

// Pixel returns the color at x, y.
func (img *Image) Pixel(x, y int32) native.Color { return img.lib.GetImageColor(img.Raw(), x, y) }

// Export writes the image to path; the format follows the extension.
func (img *Image) Export(path string) error {
	if path == "" {
		return errors.InvalidArgument("empty export path")
	}
	if !img.lib.ExportImage(img.Raw(), path) {
		return errors.IO("export", path)
	}
	return nil
}

// DrawImage blits src into this image.
func (img *Image) DrawImage(src *Image, srcRec, dstRec native.Rectangle, tint native.Color) {
	img.lib.ImageDraw(img.Ptr(), src.Raw(), srcRec, dstRec, tint)
}

func (img *Image) ClearBackground(color native.Color) {
	img.lib.ImageClearBackground(img.Ptr(), color)
}

func (img *Image) DrawShape(shape Shape2D, color native.Color) error {
	lib, dst := img.lib, img.Ptr()
	switch sh := shape.(type) {
	case Pixel:
		lib.ImageDrawPixelV(dst, sh.Pos, color)
	case Line:
		lib.ImageDrawLineV(dst, sh.Start, sh.End, color)
	case LineStrip:
		imageLineStrip(lib, dst, sh, color)
	case Circle:
		lib.ImageDrawCircleV(dst, sh.Center, int32(sh.Radius), color)
	case Rect:
		lib.ImageDrawRectangleRec(dst, sh.Rec, color)
	case Triangle:
		lib.ImageDrawTriangle(dst, sh.V1, sh.V2, sh.V3, color)
	case TriangleFan:
		lib.ImageDrawTriangleFan(dst, sh, color)
	case TriangleStrip:
		lib.ImageDrawTriangleStrip(dst, sh, color)
	default:
		return errors.OperationNotSupported("shape drawing", shapeNoun(shape))
	}
	return nil
}

func (img *Image) DrawShapeLines(shape Shape2D, thickness float32, color native.Color) error {
	if thickness <= 0 {
		thickness = 1
	}
	lib, dst := img.lib, img.Ptr()
	switch sh := shape.(type) {
	case Pixel:
		lib.ImageDrawPixelV(dst, sh.Pos, color)
	case Line:
		lib.ImageDrawLineV(dst, sh.Start, sh.End, color)
	case LineStrip:
		imageLineStrip(lib, dst, sh, color)
	case Circle:
		lib.ImageDrawCircleLinesV(dst, sh.Center, int32(sh.Radius), color)
	case Rect:
		lib.ImageDrawRectangleLines(dst, sh.Rec, int32(thickness), color)
	case Triangle:
		lib.ImageDrawTriangleLines(dst, sh.V1, sh.V2, sh.V3, color)
	default:
		return errors.OperationNotSupported("line drawing", shapeNoun(shape))
	}
	return nil
}

// imageLineStrip joins consecutive points; images have no native strip call.
func imageLineStrip(lib native.Library, dst *native.Image, points []native.Vector2, color native.Color) {
	for i := 0; i+1 < len(points); i++ {
		lib.ImageDrawLineV(dst, points[i], points[i+1], color)
	}
}

func (img *Image) DrawGradientH(Shape2D, native.Color, native.Color) error {
	return errors.OperationNotSupported("gradient drawing", "horizontal gradients")
}

func (img *Image) DrawGradientV(Shape2D, native.Color, native.Color) error {
	return errors.OperationNotSupported("gradient drawing", "vertical gradients")
}

func (img *Image) DrawTexture(*Texture, native.Vector2, float32, float32, native.Color) error {
	return errors.OperationNotSupported("texture drawing", "images")
}

func (img *Image) DrawTextureRec(*Texture, native.Rectangle, native.Vector2, native.Color) error {
	return errors.OperationNotSupported("texture drawing", "images")
}

func (img *Image) DrawText(font *Font, text string, pos native.Vector2, size, spacing float32, tint native.Color) error {
	img.lib.ImageDrawTextEx(img.Ptr(), fontOrDefault(img.lib, font), text, pos, size, spacing, tint)
	return nil
}
