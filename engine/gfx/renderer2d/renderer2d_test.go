package renderer2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveray/engine/gfx/renderer2d"
	"github.com/hubastard/groveray/engine/native"
)

type drawn struct {
	prim     renderer2d.Primitive
	texture  uint32
	vertices int
	first    []float32
}

type recorder struct{ batches []drawn }

func (r *recorder) DrawBatch(prim renderer2d.Primitive, texture uint32, vertices []float32) {
	first := append([]float32(nil), vertices[:renderer2d.VertexStride]...)
	r.batches = append(r.batches, drawn{prim, texture, len(vertices) / renderer2d.VertexStride, first})
}

var red = native.Color{R: 255, A: 255}

func TestFlushOnlyWhenPending(t *testing.T) {
	rec := &recorder{}
	b := renderer2d.New(rec, 0)
	b.Flush()
	assert.Empty(t, rec.batches)

	b.Triangle2(native.Vector2{}, native.Vector2{X: 1}, native.Vector2{Y: 1}, red)
	assert.Equal(t, 3, b.Pending())
	b.Flush()
	require.Len(t, rec.batches, 1)
	assert.Equal(t, renderer2d.Triangles, rec.batches[0].prim)
	assert.Equal(t, 3, rec.batches[0].vertices)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 1, 0, 0}, rec.batches[0].first)
	assert.Zero(t, b.Pending())
}

func TestPrimitiveAndTextureChangesFlush(t *testing.T) {
	rec := &recorder{}
	b := renderer2d.New(rec, 0)
	b.Rect(native.Rectangle{Width: 4, Height: 4}, red)
	b.Rect(native.Rectangle{Width: 4, Height: 4}, red)
	b.Line2(native.Vector2{}, native.Vector2{X: 5}, red)
	b.Texture(renderer2d.SubTexture{Texture: 9, U1: 1, V1: 1}, native.Rectangle{Width: 2, Height: 2}, native.Vector2{}, 0, red)
	b.Flush()

	require.Len(t, rec.batches, 3)
	assert.Equal(t, 12, rec.batches[0].vertices)
	assert.Equal(t, renderer2d.Lines, rec.batches[1].prim)
	assert.Equal(t, uint32(9), rec.batches[2].texture)
	assert.Equal(t, 3, b.Stats().DrawCalls)
	assert.Equal(t, 20, b.Stats().Vertices)

	b.ResetStats()
	assert.Zero(t, b.Stats().DrawCalls)
}

func TestFullBatchFlushes(t *testing.T) {
	rec := &recorder{}
	b := renderer2d.New(rec, 12)
	for i := 0; i < 3; i++ {
		b.Rect(native.Rectangle{Width: 1, Height: 1}, red)
	}
	assert.Len(t, rec.batches, 1)
	assert.Equal(t, 12, rec.batches[0].vertices)
	assert.Equal(t, 6, b.Pending())
}

func TestCircleTessellation(t *testing.T) {
	assert.Equal(t, 12, renderer2d.Segments(1))
	assert.Equal(t, 32, renderer2d.Segments(30))
	assert.Equal(t, 72, renderer2d.Segments(1000))

	rec := &recorder{}
	b := renderer2d.New(rec, 0)
	b.Circle(native.Vector2{X: 10, Y: 10}, 5, red)
	assert.Equal(t, 12*3, b.Pending())
	b.CircleLines(native.Vector2{}, 5, red)
	b.Flush()
	require.Len(t, rec.batches, 2)
	assert.Equal(t, 12*2, rec.batches[1].vertices)
}

func TestPolygonsAndStrips(t *testing.T) {
	rec := &recorder{}
	b := renderer2d.New(rec, 0)
	pts := []native.Vector2{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}, {X: 2, Y: 2}}

	b.Poly(native.Vector2{}, 6, 3, 0, red)
	assert.Equal(t, 18, b.Pending())
	b.Poly(native.Vector2{}, 2, 3, 0, red)
	assert.Equal(t, 18, b.Pending(), "fewer than three sides draw nothing")

	b.Flush()
	b.TriangleFan(pts, red)
	assert.Equal(t, 9, b.Pending())
	b.Flush()
	b.TriangleStrip(pts, red)
	assert.Equal(t, 9, b.Pending())
	b.Flush()
	b.PolyLinesEx(native.Vector2{}, 4, 3, 45, 1, red)
	assert.Equal(t, 24, b.Pending())
}

func TestLineExBuildsQuad(t *testing.T) {
	rec := &recorder{}
	b := renderer2d.New(rec, 0)
	b.LineEx(native.Vector2{}, native.Vector2{X: 10}, 2, red)
	b.LineEx(native.Vector2{}, native.Vector2{}, 2, red)
	b.Flush()
	require.Len(t, rec.batches, 1)
	assert.Equal(t, 6, rec.batches[0].vertices)
	// first corner is offset by half the thickness
	assert.InDelta(t, 1, rec.batches[0].first[1], 1e-6)
}

func TestRectLinesClampsThickness(t *testing.T) {
	rec := &recorder{}
	b := renderer2d.New(rec, 0)
	b.RectLines(native.Rectangle{Width: 10, Height: 10}, 2, red)
	assert.Equal(t, 24, b.Pending())
	b.RectLines(native.Rectangle{Width: 10, Height: 10}, 0, red)
	assert.Equal(t, 24, b.Pending())
}

func TestRectProRotatesAroundOrigin(t *testing.T) {
	rec := &recorder{}
	b := renderer2d.New(rec, 0)
	b.RectPro(native.Rectangle{X: 5, Y: 5, Width: 2, Height: 2}, native.Vector2{X: 1, Y: 1}, 90, red)
	b.Flush()
	first := rec.batches[0].first
	// top-left corner (-1,-1) from origin rotated 90° lands at (1,-1) relative to (5,5)
	assert.InDelta(t, 6, first[0], 1e-5)
	assert.InDelta(t, 4, first[1], 1e-5)
}

func TestFromPixels(t *testing.T) {
	tex := native.Texture{ID: 3, Width: 100, Height: 50}
	sub := renderer2d.FromPixels(tex, native.Rectangle{X: 10, Y: 5, Width: 20, Height: 10})
	assert.Equal(t, renderer2d.SubTexture{Texture: 3, U0: 0.1, V0: 0.1, U1: 0.3, V1: 0.3}, sub)
	assert.Equal(t, native.Vector2{X: 0.3, Y: 0.3}, sub.Corners()[2])

	assert.Equal(t, renderer2d.SubTexture{U1: 1, V1: 1}, renderer2d.FromPixels(native.Texture{}, native.Rectangle{}))
}

func Test3DShapes(t *testing.T) {
	rec := &recorder{}
	b := renderer2d.New(rec, 0)

	b.Cube(native.Vector3{}, 1, 1, 1, red)
	assert.Equal(t, 36, b.Pending())
	b.Flush()

	b.CubeWires(native.Vector3{}, 1, 1, 1, red)
	assert.Equal(t, 24, b.Pending())
	b.Flush()

	b.Grid(10, 1)
	assert.Equal(t, 11*4, b.Pending())
	b.Flush()

	b.Plane(native.Vector3{}, native.Vector2{X: 2, Y: 2}, red)
	assert.Equal(t, 6, b.Pending())
	b.Flush()

	b.Circle3D(native.Vector3{}, 1, native.Vector3{X: 1}, 90, red)
	assert.Equal(t, 2*renderer2d.Segments(10), b.Pending())
	b.Flush()

	b.Sphere(native.Vector3{Y: 2}, 1, 4, 8, red)
	assert.Equal(t, 4*8*6, b.Pending())
	b.Flush()

	b.TriangleStrip3D([]native.Vector3{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}, red)
	assert.Equal(t, 6, b.Pending())
}
