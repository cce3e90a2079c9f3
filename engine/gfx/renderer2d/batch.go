// Package renderer2d accumulates immediate-mode geometry into vertex
// batches and hands full batches to a Backend. Both the 2D and 3D shape
// calls of the platform tessellate through it.
package renderer2d

import "github.com/hubastard/groveray/engine/native"

// Vertex: pos3 + color4 + uv2 => 9 floats
const VertexStride = 9

type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

// Backend uploads and draws one batch. texture 0 means the backend's 1x1 white texture.
type Backend interface {
	DrawBatch(prim Primitive, texture uint32, vertices []float32)
}

// Statistics captures the counts generated since the last ResetStats.
type Statistics struct {
	DrawCalls int
	Vertices  int
	Flushes   int
}

type Batch struct {
	backend  Backend
	prim     Primitive
	texture  uint32
	verts    []float32
	maxVerts int
	stats    Statistics
}

// New creates a batch that flushes after maxVertices vertices (default 30000).
func New(backend Backend, maxVertices int) *Batch {
	if maxVertices <= 0 {
		maxVertices = 30000
	}
	// keep whole triangles and lines in one batch
	maxVertices -= maxVertices % 6
	return &Batch{
		backend:  backend,
		maxVerts: maxVertices,
		verts:    make([]float32, 0, maxVertices*VertexStride),
	}
}

func (b *Batch) Stats() Statistics { return b.stats }
func (b *Batch) ResetStats()       { b.stats = Statistics{} }

// Pending reports the number of buffered vertices.
func (b *Batch) Pending() int { return len(b.verts) / VertexStride }

// Begin switches to prim and texture, flushing if either changes, and
// makes room for n more vertices.
func (b *Batch) Begin(prim Primitive, texture uint32, n int) {
	if prim != b.prim || texture != b.texture {
		b.Flush()
		b.prim, b.texture = prim, texture
	}
	if b.Pending()+n > b.maxVerts {
		b.Flush()
	}
}

// Vertex appends one vertex to the current batch.
func (b *Batch) Vertex(p native.Vector3, uv native.Vector2, c native.Color) {
	b.verts = append(b.verts,
		p.X, p.Y, p.Z,
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255,
		uv.X, uv.Y,
	)
	b.stats.Vertices++
}

// Vertex2 appends a vertex on the Z = 0 plane.
func (b *Batch) Vertex2(p native.Vector2, uv native.Vector2, c native.Color) {
	b.Vertex(native.Vector3{X: p.X, Y: p.Y}, uv, c)
}

// Flush draws everything buffered so far.
func (b *Batch) Flush() {
	if len(b.verts) == 0 {
		return
	}
	b.backend.DrawBatch(b.prim, b.texture, b.verts)
	b.stats.DrawCalls++
	b.stats.Flushes++
	b.verts = b.verts[:0]
}

func (b *Batch) Triangle(p1, p2, p3 native.Vector3, c native.Color) {
	b.Begin(Triangles, 0, 3)
	b.Vertex(p1, native.Vector2{}, c)
	b.Vertex(p2, native.Vector2{}, c)
	b.Vertex(p3, native.Vector2{}, c)
}

func (b *Batch) Line(p1, p2 native.Vector3, c native.Color) {
	b.Begin(Lines, 0, 2)
	b.Vertex(p1, native.Vector2{}, c)
	b.Vertex(p2, native.Vector2{}, c)
}

// Quad draws corners in order top-left, top-right, bottom-right, bottom-left.
func (b *Batch) Quad(corners [4]native.Vector2, uv [4]native.Vector2, texture uint32, c [4]native.Color) {
	b.Begin(Triangles, texture, 6)
	for _, i := range [6]int{0, 3, 1, 1, 3, 2} {
		b.Vertex2(corners[i], uv[i], c[i])
	}
}
