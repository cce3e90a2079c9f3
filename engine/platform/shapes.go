package platform

import (
	"strconv"

	"github.com/hubastard/groveray/engine/gfx/renderer2d"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/scene"
	"github.com/hubastard/groveray/engine/text"
)

var fpsColor = native.Color{R: 0, G: 158, B: 47, A: 255}

func (n *Native) draw(f func(b *renderer2d.Batch)) {
	if n.ready() {
		f(n.batch)
	}
}

// ClearBackground clears the current target immediately.
func (n *Native) ClearBackground(color native.Color) {
	n.draw(func(b *renderer2d.Batch) {
		b.Flush()
		n.gl.Clear(color)
	})
}

func (n *Native) DrawPixelV(position native.Vector2, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Pixel(position, color) })
}

func (n *Native) DrawLineV(start, end native.Vector2, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Line2(start, end, color) })
}

func (n *Native) DrawLineEx(start, end native.Vector2, thick float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.LineEx(start, end, thick, color) })
}

func (n *Native) DrawLineStrip(points []native.Vector2, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.LineStrip(points, color) })
}

func (n *Native) DrawCircleV(center native.Vector2, radius float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Circle(center, radius, color) })
}

func (n *Native) DrawCircleLinesV(center native.Vector2, radius float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.CircleLines(center, radius, color) })
}

func (n *Native) DrawCircleGradient(centerX, centerY int32, radius float32, inner, outer native.Color) {
	c := native.Vector2{X: float32(centerX), Y: float32(centerY)}
	n.draw(func(b *renderer2d.Batch) { b.CircleGradient(c, radius, inner, outer) })
}

func (n *Native) DrawRectangleRec(rec native.Rectangle, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Rect(rec, color) })
}

func (n *Native) DrawRectanglePro(rec native.Rectangle, origin native.Vector2, rotation float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.RectPro(rec, origin, rotation, color) })
}

func (n *Native) DrawRectangleLinesEx(rec native.Rectangle, thick float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.RectLines(rec, thick, color) })
}

func irect(x, y, w, h int32) native.Rectangle {
	return native.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}

func (n *Native) DrawRectangleGradientH(x, y, width, height int32, left, right native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.RectGradient(irect(x, y, width, height), left, right, right, left) })
}

func (n *Native) DrawRectangleGradientV(x, y, width, height int32, top, bottom native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.RectGradient(irect(x, y, width, height), top, top, bottom, bottom) })
}

func (n *Native) DrawTriangle(v1, v2, v3 native.Vector2, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Triangle2(v1, v2, v3, color) })
}

func (n *Native) DrawTriangleLines(v1, v2, v3 native.Vector2, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.TriangleLines2(v1, v2, v3, color) })
}

func (n *Native) DrawTriangleFan(points []native.Vector2, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.TriangleFan(points, color) })
}

func (n *Native) DrawTriangleStrip(points []native.Vector2, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.TriangleStrip(points, color) })
}

func (n *Native) DrawPoly(center native.Vector2, sides int32, radius, rotation float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Poly(center, int(sides), radius, rotation, color) })
}

func (n *Native) DrawPolyLinesEx(center native.Vector2, sides int32, radius, rotation, thick float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.PolyLinesEx(center, int(sides), radius, rotation, thick, color) })
}

func (n *Native) DrawTextureEx(texture native.Texture, position native.Vector2, rotation, scale float32, tint native.Color) {
	src := native.Rectangle{Width: float32(texture.Width), Height: float32(texture.Height)}
	dst := native.Rectangle{X: position.X, Y: position.Y, Width: src.Width * scale, Height: src.Height * scale}
	n.draw(func(b *renderer2d.Batch) { b.Texture(renderer2d.FromPixels(texture, src), dst, native.Vector2{}, rotation, tint) })
}

// DrawTextureRec draws part of texture; a negative source size flips it.
func (n *Native) DrawTextureRec(texture native.Texture, source native.Rectangle, position native.Vector2, tint native.Color) {
	dst := native.Rectangle{X: position.X, Y: position.Y, Width: abs32(source.Width), Height: abs32(source.Height)}
	if source.Width < 0 {
		source.X -= source.Width
	}
	if source.Height < 0 {
		source.Y -= source.Height
	}
	n.draw(func(b *renderer2d.Batch) { b.Texture(renderer2d.FromPixels(texture, source), dst, native.Vector2{}, 0, tint) })
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (n *Native) DrawTextEx(font native.Font, s string, position native.Vector2, fontSize, spacing float32, tint native.Color) {
	atlas := n.fonts[font.Texture.ID]
	if atlas == nil {
		return
	}
	n.draw(func(b *renderer2d.Batch) {
		atlas.Layout(s, position, fontSize, spacing, func(g text.Glyph, dst native.Rectangle) {
			src := native.Rectangle{
				X: float32(g.Rect.Min.X), Y: float32(g.Rect.Min.Y),
				Width: float32(g.Rect.Dx()), Height: float32(g.Rect.Dy()),
			}
			b.Texture(renderer2d.FromPixels(font.Texture, src), dst, native.Vector2{}, 0, tint)
		})
	})
}

func (n *Native) DrawFPS(x, y int32) {
	n.DrawTextEx(n.GetFontDefault(), strconv.Itoa(int(n.GetFPS()))+" FPS",
		native.Vector2{X: float32(x), Y: float32(y)}, 20, 2, fpsColor)
}

// 3D

func (n *Native) DrawCube(position native.Vector3, width, height, length float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Cube(position, width, height, length, color) })
}

func (n *Native) DrawCubeWires(position native.Vector3, width, height, length float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.CubeWires(position, width, height, length, color) })
}

func (n *Native) DrawSphere(center native.Vector3, radius float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Sphere(center, radius, 16, 16, color) })
}

func (n *Native) DrawSphereWires(center native.Vector3, radius float32, rings, slices int32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.SphereWires(center, radius, int(rings), int(slices), color) })
}

func (n *Native) DrawLine3D(start, end native.Vector3, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Line(start, end, color) })
}

func (n *Native) DrawCircle3D(center native.Vector3, radius float32, axis native.Vector3, angle float32, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Circle3D(center, radius, axis, angle, color) })
}

func (n *Native) DrawTriangle3D(v1, v2, v3 native.Vector3, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Triangle(v1, v2, v3, color) })
}

func (n *Native) DrawTriangleStrip3D(points []native.Vector3, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.TriangleStrip3D(points, color) })
}

func (n *Native) DrawPlane(center native.Vector3, size native.Vector2, color native.Color) {
	n.draw(func(b *renderer2d.Batch) { b.Plane(center, size, color) })
}

func (n *Native) DrawGrid(slices int32, spacing float32) {
	n.draw(func(b *renderer2d.Batch) { b.Grid(int(slices), spacing) })
}

func (n *Native) DrawModel(model native.Model, position native.Vector3, scale float32, tint native.Color) {
	n.draw(func(b *renderer2d.Batch) {
		for i, m := range model.Meshes {
			b.Mesh(m, modelMatrix(model, position, scale), meshColor(model, i, tint))
		}
	})
}

func (n *Native) DrawModelWires(model native.Model, position native.Vector3, scale float32, tint native.Color) {
	n.draw(func(b *renderer2d.Batch) {
		for i, m := range model.Meshes {
			b.MeshWires(m, modelMatrix(model, position, scale), meshColor(model, i, tint))
		}
	})
}

func modelMatrix(model native.Model, pos native.Vector3, scale float32) scene.Matrix {
	t := model.Transform
	if t == (scene.Matrix{}) {
		t = scene.Identity()
	}
	return scene.Mul(scene.Translate(pos.X, pos.Y, pos.Z), scene.Mul(scene.Scale(scale, scale, scale), t))
}

// meshColor multiplies tint by the diffuse colour of the mesh material.
func meshColor(model native.Model, mesh int, tint native.Color) native.Color {
	if mesh >= len(model.MeshMaterial) {
		return tint
	}
	mi := int(model.MeshMaterial[mesh])
	if mi < 0 || mi >= len(model.Materials) || len(model.Materials[mi].Maps) == 0 {
		return tint
	}
	d := model.Materials[mi].Maps[0].Color
	return native.Color{
		R: uint8(uint16(tint.R) * uint16(d.R) / 255),
		G: uint8(uint16(tint.G) * uint16(d.G) / 255),
		B: uint8(uint16(tint.B) * uint16(d.B) / 255),
		A: uint8(uint16(tint.A) * uint16(d.A) / 255),
	}
}
