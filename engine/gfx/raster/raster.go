// Package raster draws shapes, text and images into CPU-side RGBA images.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/text"
)

func rgba(c native.Color) color.RGBA {
	// image/color wants premultiplied alpha
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

func Clear(dst *image.RGBA, c native.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(rgba(c)), image.Point{}, draw.Src)
}

// Pixel overwrites one pixel; out-of-bounds coordinates are ignored.
func Pixel(dst *image.RGBA, x, y int, c native.Color) {
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.SetRGBA(x, y, rgba(c))
	}
}

// Line draws a one pixel Bresenham line including both end points.
func Line(dst *image.RGBA, x0, y0, x1, y1 int, c native.Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		Pixel(dst, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle fills every pixel whose centre lies within r of (cx, cy).
func Circle(dst *image.RGBA, cx, cy, r int, c native.Color) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				Pixel(dst, cx+x, cy+y, c)
			}
		}
	}
}

// CircleLines draws the outline with the midpoint algorithm.
func CircleLines(dst *image.RGBA, cx, cy, r int, c native.Color) {
	x, y, d := 0, r, 3-2*r
	for x <= y {
		for _, p := range [8][2]int{{x, y}, {-x, y}, {x, -y}, {-x, -y}, {y, x}, {-y, x}, {y, -x}, {-y, -x}} {
			Pixel(dst, cx+p[0], cy+p[1], c)
		}
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}

func rect(r native.Rectangle) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
}

func Rect(dst *image.RGBA, r native.Rectangle, c native.Color) {
	draw.Draw(dst, rect(r).Intersect(dst.Bounds()), image.NewUniform(rgba(c)), image.Point{}, draw.Src)
}

func RectLines(dst *image.RGBA, r native.Rectangle, thick int, c native.Color) {
	if thick <= 0 {
		return
	}
	t := float32(thick)
	Rect(dst, native.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: t}, c)
	Rect(dst, native.Rectangle{X: r.X, Y: r.Y + r.Height - t, Width: r.Width, Height: t}, c)
	Rect(dst, native.Rectangle{X: r.X, Y: r.Y + t, Width: t, Height: r.Height - 2*t}, c)
	Rect(dst, native.Rectangle{X: r.X + r.Width - t, Y: r.Y + t, Width: t, Height: r.Height - 2*t}, c)
}

// Triangle fills the triangle with anti-aliased coverage.
func Triangle(dst *image.RGBA, v1, v2, v3 native.Vector2, c native.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(v1.X, v1.Y)
	z.LineTo(v2.X, v2.Y)
	z.LineTo(v3.X, v3.Y)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(rgba(c)), image.Point{})
}

func TriangleLines(dst *image.RGBA, v1, v2, v3 native.Vector2, c native.Color) {
	pts := [4]native.Vector2{v1, v2, v3, v1}
	for i := 1; i < len(pts); i++ {
		Line(dst, int(pts[i-1].X), int(pts[i-1].Y), int(pts[i].X), int(pts[i].Y), c)
	}
}

func TriangleFan(dst *image.RGBA, points []native.Vector2, c native.Color) {
	for i := 2; i < len(points); i++ {
		Triangle(dst, points[0], points[i-1], points[i], c)
	}
}

func TriangleStrip(dst *image.RGBA, points []native.Vector2, c native.Color) {
	for i := 2; i < len(points); i++ {
		Triangle(dst, points[i-2], points[i-1], points[i], c)
	}
}

// Text draws s with the atlas face rasterised at size.
func Text(dst *image.RGBA, atlas *text.Atlas, s string, pos native.Vector2, size, spacing float32, tint native.Color) error {
	sized, err := atlas.At(size)
	if err != nil {
		return err
	}
	src := image.NewUniform(rgba(tint))
	sized.Layout(s, pos, size, spacing, func(g text.Glyph, at native.Rectangle) {
		min := image.Pt(int(at.X), int(at.Y))
		sized.Draw(dst, image.Rectangle{Min: min, Max: min.Add(g.Rect.Size())}, g, src)
	})
	return nil
}

// Blit scales srcRec of src into dstRec of dst, multiplying by tint.
func Blit(dst *image.RGBA, src *image.RGBA, srcRec, dstRec native.Rectangle, tint native.Color) {
	sr := rect(srcRec).Intersect(src.Bounds())
	dr := rect(dstRec)
	if sr.Empty() || dr.Empty() {
		return
	}
	var from image.Image = src
	if tint != (native.Color{R: 255, G: 255, B: 255, A: 255}) {
		tinted := image.NewRGBA(sr)
		for y := sr.Min.Y; y < sr.Max.Y; y++ {
			for x := sr.Min.X; x < sr.Max.X; x++ {
				p := src.RGBAAt(x, y)
				tinted.SetRGBA(x, y, color.RGBA{
					R: uint8(uint16(p.R) * uint16(tint.R) / 255),
					G: uint8(uint16(p.G) * uint16(tint.G) / 255),
					B: uint8(uint16(p.B) * uint16(tint.B) / 255),
					A: uint8(uint16(p.A) * uint16(tint.A) / 255),
				})
			}
		}
		from = tinted
	}
	if sr.Size() == dr.Size() {
		draw.Draw(dst, dr, from, sr.Min, draw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, dr, from, sr, xdraw.Over, nil)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
