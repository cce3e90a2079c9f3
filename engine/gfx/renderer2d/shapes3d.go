package renderer2d

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/scene"
)

func v3(x, y, z float32) native.Vector3 { return native.Vector3{X: x, Y: y, Z: z} }

func add(a, b native.Vector3) native.Vector3 { return v3(a.X+b.X, a.Y+b.Y, a.Z+b.Z) }

// Mesh draws the triangles of m transformed by model and tinted.
func (b *Batch) Mesh(m native.Mesh, model scene.Matrix, tint native.Color) {
	tris := scene.Triangles(m)
	hasUV := len(m.Texcoords) >= int(m.VertexCount)*2 && len(m.Indices) > 0
	for i := 0; i+2 < len(tris); i += 3 {
		b.Begin(Triangles, 0, 3)
		for k := 0; k < 3; k++ {
			var uv native.Vector2
			if hasUV {
				idx := int(m.Indices[i+k])
				uv = native.Vector2{X: m.Texcoords[2*idx], Y: m.Texcoords[2*idx+1]}
			}
			b.Vertex(scene.Apply(model, tris[i+k]), uv, tint)
		}
	}
}

// MeshWires draws the triangle edges of m.
func (b *Batch) MeshWires(m native.Mesh, model scene.Matrix, tint native.Color) {
	tris := scene.Triangles(m)
	for i := 0; i+2 < len(tris); i += 3 {
		p := [3]native.Vector3{scene.Apply(model, tris[i]), scene.Apply(model, tris[i+1]), scene.Apply(model, tris[i+2])}
		b.Line(p[0], p[1], tint)
		b.Line(p[1], p[2], tint)
		b.Line(p[2], p[0], tint)
	}
}

func (b *Batch) Cube(pos native.Vector3, w, h, l float32, c native.Color) {
	b.Mesh(scene.Cube(w, h, l), scene.Translate(pos.X, pos.Y, pos.Z), c)
}

func (b *Batch) CubeWires(pos native.Vector3, w, h, l float32, c native.Color) {
	x, y, z := w/2, h/2, l/2
	var corners [8]native.Vector3
	for i := range corners {
		sx, sy, sz := float32(-1), float32(-1), float32(-1)
		if i&1 != 0 {
			sx = 1
		}
		if i&2 != 0 {
			sy = 1
		}
		if i&4 != 0 {
			sz = 1
		}
		corners[i] = add(pos, v3(sx*x, sy*y, sz*z))
	}
	for i := range corners {
		for _, bit := range [3]int{1, 2, 4} {
			if i&bit == 0 {
				b.Line(corners[i], corners[i|bit], c)
			}
		}
	}
}

func (b *Batch) Sphere(center native.Vector3, r float32, rings, slices int, c native.Color) {
	b.Mesh(scene.Sphere(r, int32(rings), int32(slices)), scene.Translate(center.X, center.Y, center.Z), c)
}

func (b *Batch) SphereWires(center native.Vector3, r float32, rings, slices int, c native.Color) {
	b.MeshWires(scene.Sphere(r, int32(rings), int32(slices)), scene.Translate(center.X, center.Y, center.Z), c)
}

// Circle3D draws a circle in the XY plane rotated by angle degrees around axis.
func (b *Batch) Circle3D(center native.Vector3, r float32, axis native.Vector3, angle float32, c native.Color) {
	m := scene.Mul(scene.Translate(center.X, center.Y, center.Z), scene.RotateAxis(axis, angle*deg2rad))
	n := Segments(r * 10)
	prev := scene.Apply(m, v3(r, 0, 0))
	for i := 1; i <= n; i++ {
		s, co := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
		p := scene.Apply(m, v3(co*r, s*r, 0))
		b.Line(prev, p, c)
		prev = p
	}
}

func (b *Batch) TriangleStrip3D(points []native.Vector3, c native.Color) {
	for i := 2; i < len(points); i++ {
		if i%2 == 0 {
			b.Triangle(points[i-2], points[i-1], points[i], c)
		} else {
			b.Triangle(points[i-1], points[i-2], points[i], c)
		}
	}
}

// Plane draws a size.X × size.Y quad on the XZ plane facing +Y.
func (b *Batch) Plane(center native.Vector3, size native.Vector2, c native.Color) {
	x, z := size.X/2, size.Y/2
	p := [4]native.Vector3{
		add(center, v3(-x, 0, -z)), add(center, v3(-x, 0, z)),
		add(center, v3(x, 0, z)), add(center, v3(x, 0, -z)),
	}
	b.Triangle(p[0], p[1], p[2], c)
	b.Triangle(p[0], p[2], p[3], c)
}

// Grid draws slices×slices cells of spacing units centred on the origin;
// the centre lines are darker.
func (b *Batch) Grid(slices int, spacing float32) {
	half := float32(slices) / 2 * spacing
	for i := 0; i <= slices; i++ {
		c := native.Color{R: 190, G: 190, B: 190, A: 255}
		if i == slices/2 {
			c = native.Color{R: 130, G: 130, B: 130, A: 255}
		}
		d := -half + float32(i)*spacing
		b.Line(v3(d, 0, -half), v3(d, 0, half), c)
		b.Line(v3(-half, 0, d), v3(half, 0, d), c)
	}
}
