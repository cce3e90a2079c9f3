package scene

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/groveray/engine/native"
)

// Cube builds a w×h×l box centred at the origin with four vertices per face.
func Cube(w, h, l float32) native.Mesh {
	x, y, z := w/2, h/2, l/2
	faces := [6]struct {
		n       native.Vector3
		corners [4]native.Vector3
	}{
		{native.Vector3{Z: 1}, [4]native.Vector3{{X: -x, Y: -y, Z: z}, {X: x, Y: -y, Z: z}, {X: x, Y: y, Z: z}, {X: -x, Y: y, Z: z}}},
		{native.Vector3{Z: -1}, [4]native.Vector3{{X: x, Y: -y, Z: -z}, {X: -x, Y: -y, Z: -z}, {X: -x, Y: y, Z: -z}, {X: x, Y: y, Z: -z}}},
		{native.Vector3{Y: 1}, [4]native.Vector3{{X: -x, Y: y, Z: z}, {X: x, Y: y, Z: z}, {X: x, Y: y, Z: -z}, {X: -x, Y: y, Z: -z}}},
		{native.Vector3{Y: -1}, [4]native.Vector3{{X: -x, Y: -y, Z: -z}, {X: x, Y: -y, Z: -z}, {X: x, Y: -y, Z: z}, {X: -x, Y: -y, Z: z}}},
		{native.Vector3{X: 1}, [4]native.Vector3{{X: x, Y: -y, Z: z}, {X: x, Y: -y, Z: -z}, {X: x, Y: y, Z: -z}, {X: x, Y: y, Z: z}}},
		{native.Vector3{X: -1}, [4]native.Vector3{{X: -x, Y: -y, Z: -z}, {X: -x, Y: -y, Z: z}, {X: -x, Y: y, Z: z}, {X: -x, Y: y, Z: -z}}},
	}
	var b meshBuilder
	for _, f := range faces {
		base := b.count()
		uv := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
		for i, c := range f.corners {
			b.vertex(c, f.n, uv[i][0], uv[i][1])
		}
		b.quad(base, base+1, base+2, base+3)
	}
	return b.mesh()
}

// Plane builds a w×l grid on the XZ plane subdivided resX×resZ times.
func Plane(w, l float32, resX, resZ int32) native.Mesh {
	if resX < 1 || resZ < 1 {
		return native.Mesh{}
	}
	var b meshBuilder
	up := native.Vector3{Y: 1}
	for iz := int32(0); iz <= resZ; iz++ {
		fz := float32(iz) / float32(resZ)
		for ix := int32(0); ix <= resX; ix++ {
			fx := float32(ix) / float32(resX)
			b.vertex(native.Vector3{X: (fx - 0.5) * w, Z: (fz - 0.5) * l}, up, fx, fz)
		}
	}
	row := uint16(resX + 1)
	for iz := uint16(0); iz < uint16(resZ); iz++ {
		for ix := uint16(0); ix < uint16(resX); ix++ {
			i := iz*row + ix
			b.quad(i+row, i+row+1, i+1, i)
		}
	}
	return b.mesh()
}

// Sphere builds a UV sphere with rings latitude bands and slices longitude bands.
func Sphere(radius float32, rings, slices int32) native.Mesh {
	if rings < 2 || slices < 3 {
		return native.Mesh{}
	}
	var b meshBuilder
	for r := int32(0); r <= rings; r++ {
		v := float32(r) / float32(rings)
		theta := v * math32.Pi
		for s := int32(0); s <= slices; s++ {
			u := float32(s) / float32(slices)
			phi := u * 2 * math32.Pi
			n := native.Vector3{
				X: math32.Sin(theta) * math32.Cos(phi),
				Y: math32.Cos(theta),
				Z: math32.Sin(theta) * math32.Sin(phi),
			}
			b.vertex(native.Vector3{X: n.X * radius, Y: n.Y * radius, Z: n.Z * radius}, n, u, v)
		}
	}
	row := uint16(slices + 1)
	for r := uint16(0); r < uint16(rings); r++ {
		for s := uint16(0); s < uint16(slices); s++ {
			i := r*row + s
			b.quad(i+row, i+row+1, i+1, i)
		}
	}
	return b.mesh()
}

type meshBuilder struct {
	vertices, normals, texcoords []float32
	indices                      []uint16
}

func (b *meshBuilder) count() uint16 { return uint16(len(b.vertices) / 3) }

func (b *meshBuilder) vertex(p, n native.Vector3, u, v float32) {
	b.vertices = append(b.vertices, p.X, p.Y, p.Z)
	b.normals = append(b.normals, n.X, n.Y, n.Z)
	b.texcoords = append(b.texcoords, u, v)
}

// quad appends two counter-clockwise triangles a-b-c and a-c-d.
func (b *meshBuilder) quad(a, bb, c, d uint16) {
	b.indices = append(b.indices, a, bb, c, a, c, d)
}

func (b *meshBuilder) mesh() native.Mesh {
	return native.Mesh{
		VertexCount:   int32(len(b.vertices) / 3),
		TriangleCount: int32(len(b.indices) / 3),
		Vertices:      b.vertices,
		Normals:       b.normals,
		Texcoords:     b.texcoords,
		Indices:       b.indices,
	}
}

// Triangles expands an indexed mesh into a flat list of vertex positions, three per triangle.
func Triangles(m native.Mesh) []native.Vector3 {
	at := func(i int) native.Vector3 {
		return native.Vector3{X: m.Vertices[3*i], Y: m.Vertices[3*i+1], Z: m.Vertices[3*i+2]}
	}
	var out []native.Vector3
	if len(m.Indices) > 0 {
		out = make([]native.Vector3, 0, len(m.Indices))
		for _, i := range m.Indices {
			out = append(out, at(int(i)))
		}
		return out
	}
	n := len(m.Vertices) / 3
	out = make([]native.Vector3, 0, n)
	for i := 0; i < n-n%3; i++ {
		out = append(out, at(i))
	}
	return out
}
