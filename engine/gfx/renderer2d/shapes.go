package renderer2d

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/groveray/engine/native"
)

const deg2rad = math32.Pi / 180

// Segments picks the tessellation of a circle of radius r: 12 to 72 segments.
func Segments(r float32) int {
	n := int(math32.Ceil(r))
	n += (4 - n%4) % 4
	return min(max(n, 12), 72)
}

func v2(x, y float32) native.Vector2 { return native.Vector2{X: x, Y: y} }

func solid(c native.Color) [4]native.Color { return [4]native.Color{c, c, c, c} }

var noUV [4]native.Vector2

func (b *Batch) Triangle2(p1, p2, p3 native.Vector2, c native.Color) {
	b.Begin(Triangles, 0, 3)
	b.Vertex2(p1, native.Vector2{}, c)
	b.Vertex2(p2, native.Vector2{}, c)
	b.Vertex2(p3, native.Vector2{}, c)
}

func (b *Batch) Line2(p1, p2 native.Vector2, c native.Color) {
	b.Begin(Lines, 0, 2)
	b.Vertex2(p1, native.Vector2{}, c)
	b.Vertex2(p2, native.Vector2{}, c)
}

func (b *Batch) Pixel(p native.Vector2, c native.Color) {
	b.Rect(native.Rectangle{X: p.X, Y: p.Y, Width: 1, Height: 1}, c)
}

// LineEx draws a segment thick pixels wide as a quad.
func (b *Batch) LineEx(p1, p2 native.Vector2, thick float32, c native.Color) {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	l := math32.Sqrt(dx*dx + dy*dy)
	if l == 0 || thick <= 0 {
		return
	}
	nx, ny := -dy/l*thick/2, dx/l*thick/2
	b.Quad([4]native.Vector2{
		v2(p1.X+nx, p1.Y+ny), v2(p2.X+nx, p2.Y+ny),
		v2(p2.X-nx, p2.Y-ny), v2(p1.X-nx, p1.Y-ny),
	}, noUV, 0, solid(c))
}

func (b *Batch) LineStrip(points []native.Vector2, c native.Color) {
	for i := 1; i < len(points); i++ {
		b.Line2(points[i-1], points[i], c)
	}
}

func (b *Batch) Rect(r native.Rectangle, c native.Color) {
	b.RectGradient(r, c, c, c, c)
}

// RectGradient colours the corners top-left, top-right, bottom-right, bottom-left.
func (b *Batch) RectGradient(r native.Rectangle, tl, tr, br, bl native.Color) {
	b.Quad([4]native.Vector2{
		v2(r.X, r.Y), v2(r.X+r.Width, r.Y),
		v2(r.X+r.Width, r.Y+r.Height), v2(r.X, r.Y+r.Height),
	}, noUV, 0, [4]native.Color{tl, tr, br, bl})
}

// RectPro rotates r by rotation degrees around origin, which is relative to r's top-left.
func (b *Batch) RectPro(r native.Rectangle, origin native.Vector2, rotation float32, c native.Color) {
	b.Quad(rotated(r, origin, rotation), noUV, 0, solid(c))
}

func rotated(r native.Rectangle, origin native.Vector2, rotation float32) [4]native.Vector2 {
	s, co := math32.Sincos(rotation * deg2rad)
	corner := func(x, y float32) native.Vector2 {
		x, y = x-origin.X, y-origin.Y
		return v2(r.X+x*co-y*s, r.Y+x*s+y*co)
	}
	return [4]native.Vector2{
		corner(0, 0), corner(r.Width, 0),
		corner(r.Width, r.Height), corner(0, r.Height),
	}
}

func (b *Batch) RectLines(r native.Rectangle, thick float32, c native.Color) {
	if thick <= 0 {
		return
	}
	thick = min(thick, r.Width/2, r.Height/2)
	b.Rect(native.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: thick}, c)
	b.Rect(native.Rectangle{X: r.X, Y: r.Y + r.Height - thick, Width: r.Width, Height: thick}, c)
	b.Rect(native.Rectangle{X: r.X, Y: r.Y + thick, Width: thick, Height: r.Height - 2*thick}, c)
	b.Rect(native.Rectangle{X: r.X + r.Width - thick, Y: r.Y + thick, Width: thick, Height: r.Height - 2*thick}, c)
}

// ring returns n points on a circle starting at angle start (degrees).
func ring(center native.Vector2, r float32, n int, start float32) []native.Vector2 {
	pts := make([]native.Vector2, n)
	for i := range pts {
		s, c := math32.Sincos(start*deg2rad + 2*math32.Pi*float32(i)/float32(n))
		pts[i] = v2(center.X+c*r, center.Y+s*r)
	}
	return pts
}

func (b *Batch) Circle(center native.Vector2, r float32, c native.Color) {
	b.CircleGradient(center, r, c, c)
}

func (b *Batch) CircleGradient(center native.Vector2, r float32, inner, outer native.Color) {
	pts := ring(center, r, Segments(r), 0)
	for i := range pts {
		b.Begin(Triangles, 0, 3)
		b.Vertex2(center, native.Vector2{}, inner)
		b.Vertex2(pts[(i+1)%len(pts)], native.Vector2{}, outer)
		b.Vertex2(pts[i], native.Vector2{}, outer)
	}
}

func (b *Batch) CircleLines(center native.Vector2, r float32, c native.Color) {
	pts := ring(center, r, Segments(r), 0)
	b.LineStrip(append(pts, pts[0]), c)
}

func (b *Batch) TriangleLines2(p1, p2, p3 native.Vector2, c native.Color) {
	b.LineStrip([]native.Vector2{p1, p2, p3, p1}, c)
}

// TriangleFan fans from points[0].
func (b *Batch) TriangleFan(points []native.Vector2, c native.Color) {
	for i := 2; i < len(points); i++ {
		b.Triangle2(points[0], points[i-1], points[i], c)
	}
}

func (b *Batch) TriangleStrip(points []native.Vector2, c native.Color) {
	for i := 2; i < len(points); i++ {
		if i%2 == 0 {
			b.Triangle2(points[i-2], points[i-1], points[i], c)
		} else {
			b.Triangle2(points[i-1], points[i-2], points[i], c)
		}
	}
}

// Poly draws a regular polygon; rotation is in degrees.
func (b *Batch) Poly(center native.Vector2, sides int, r, rotation float32, c native.Color) {
	if sides < 3 {
		return
	}
	pts := ring(center, r, sides, rotation)
	for i := range pts {
		b.Triangle2(center, pts[(i+1)%sides], pts[i], c)
	}
}

func (b *Batch) PolyLinesEx(center native.Vector2, sides int, r, rotation, thick float32, c native.Color) {
	if sides < 3 {
		return
	}
	pts := ring(center, r, sides, rotation)
	for i := range pts {
		b.LineEx(pts[i], pts[(i+1)%sides], thick, c)
	}
}

// Texture draws sub of a texture into dst, rotated by rotation degrees around origin.
func (b *Batch) Texture(sub SubTexture, dst native.Rectangle, origin native.Vector2, rotation float32, tint native.Color) {
	b.Quad(rotated(dst, origin, rotation), sub.Corners(), sub.Texture, solid(tint))
}
