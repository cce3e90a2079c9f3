// Package assets decodes and encodes the file formats the platform backend
// loads: images, shader sources, wav audio, glTF models and automation event files.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/hubastard/groveray/engine/native"
)

// LoadImage decodes a png, jpeg, bmp or webp file into tightly packed RGBA8 pixels.
func LoadImage(path string) (native.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return native.Image{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return native.Image{}, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

func DecodeImage(r io.Reader) (native.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return native.Image{}, err
	}
	return FromImage(img), nil
}

// FromImage repacks any image.Image as RGBA8 with stride == 4*width.
func FromImage(img image.Image) native.Image {
	rgba := imageToRGBA(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4])
	}
	return native.Image{
		Pixels:  out,
		Width:   int32(w),
		Height:  int32(h),
		Mipmaps: 1,
		Format:  native.PixelFormatR8G8B8A8,
	}
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) && m.Stride == m.Rect.Dx()*4 {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

// RGBA views img as an *image.RGBA, converting from the narrower pixel
// formats when needed. RGBA8 images share their pixel slice.
func RGBA(img native.Image) *image.RGBA {
	w, h := int(img.Width), int(img.Height)
	if img.Format == native.PixelFormatR8G8B8A8 && len(img.Pixels) >= w*h*4 {
		return &image.RGBA{Pix: img.Pixels[:w*h*4], Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	bpp := BytesPerPixel(img.Format)
	if bpp == 0 {
		return dst
	}
	for i := 0; i < w*h && (i+1)*bpp <= len(img.Pixels); i++ {
		p := img.Pixels[i*bpp : (i+1)*bpp]
		var c color.RGBA
		switch img.Format {
		case native.PixelFormatGrayscale:
			c = color.RGBA{p[0], p[0], p[0], 255}
		case native.PixelFormatGrayAlpha:
			c = color.RGBA{p[0], p[0], p[0], p[1]}
		case native.PixelFormatR8G8B8:
			c = color.RGBA{p[0], p[1], p[2], 255}
		}
		dst.SetRGBA(i%w, i/w, c)
	}
	return dst
}

func BytesPerPixel(f native.PixelFormat) int {
	switch f {
	case native.PixelFormatGrayscale:
		return 1
	case native.PixelFormatGrayAlpha:
		return 2
	case native.PixelFormatR8G8B8:
		return 3
	case native.PixelFormatR8G8B8A8:
		return 4
	}
	return 0
}

// ExportImage encodes img by file extension: .png, .jpg/.jpeg or .bmp.
func ExportImage(img native.Image, path string) error {
	var enc func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		enc = png.Encode
	case ".jpg", ".jpeg":
		enc = func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, &jpeg.Options{Quality: 90}) }
	case ".bmp":
		enc = bmp.Encode
	default:
		return fmt.Errorf("export %q: unsupported image format", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := enc(f, RGBA(img)); err != nil {
		f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}

// FlipVertical returns a copy of tightly packed rows in reverse order.
func FlipVertical(pix []byte, stride, rows int) []byte {
	out := make([]byte, len(pix))
	for y := 0; y < rows; y++ {
		copy(out[y*stride:(y+1)*stride], pix[(rows-1-y)*stride:(rows-y)*stride])
	}
	return out
}
