package gfx

import (
	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/native"
)

// Canvas2D is the set of 2D draw operations. Surfaces that cannot perform
// one report OperationNotSupported.
type Canvas2D interface {
	ClearBackground(color native.Color)
	DrawShape(shape Shape2D, color native.Color) error
	DrawShapeLines(shape Shape2D, thickness float32, color native.Color) error
	DrawGradientH(shape Shape2D, start, end native.Color) error
	DrawGradientV(shape Shape2D, start, end native.Color) error
	DrawTexture(tex *Texture, pos native.Vector2, rotation, scale float32, tint native.Color) error
	DrawTextureRec(tex *Texture, src native.Rectangle, pos native.Vector2, tint native.Color) error
	// DrawText uses the default font when font is nil.
	DrawText(font *Font, text string, pos native.Vector2, size, spacing float32, tint native.Color) error
}

// Canvas3D is the set of 3D draw operations.
type Canvas3D interface {
	DrawShape3D(shape Shape3D, color native.Color) error
	DrawWires3D(shape Shape3D, color native.Color) error
	DrawGrid(slices int32, spacing float32)
	DrawModel(model *Model, pos native.Vector3, scale float32, tint native.Color)
	DrawModelWires(model *Model, pos native.Vector3, scale float32, tint native.Color)
}

var (
	_ Canvas2D = screen2D{}
	_ Canvas2D = (*Image)(nil)
	_ Canvas3D = screen3D{}
)

// screen2D draws through the native library onto the current render target.
type screen2D struct{ s *scope }

func (c screen2D) ClearBackground(color native.Color) {
	if c.s.active() {
		c.s.lib.ClearBackground(color)
	}
}

func (c screen2D) DrawShape(shape Shape2D, color native.Color) error {
	if !c.s.active() {
		return nil
	}
	lib := c.s.lib
	switch sh := shape.(type) {
	case Pixel:
		lib.DrawPixelV(sh.Pos, color)
	case Line:
		if sh.Thickness > 0 {
			lib.DrawLineEx(sh.Start, sh.End, sh.Thickness, color)
		} else {
			lib.DrawLineV(sh.Start, sh.End, color)
		}
	case LineStrip:
		lib.DrawLineStrip(sh, color)
	case Circle:
		lib.DrawCircleV(sh.Center, sh.Radius, color)
	case Rect:
		lib.DrawRectangleRec(sh.Rec, color)
	case RotatedRect:
		lib.DrawRectanglePro(sh.Rec, sh.Origin, sh.Rotation, color)
	case Triangle:
		lib.DrawTriangle(sh.V1, sh.V2, sh.V3, color)
	case TriangleFan:
		lib.DrawTriangleFan(sh, color)
	case TriangleStrip:
		lib.DrawTriangleStrip(sh, color)
	case Poly:
		lib.DrawPoly(sh.Center, sh.Sides, sh.Radius, sh.Rotation, color)
	default:
		return errors.OperationNotSupported("shape drawing", shapeNoun(shape))
	}
	return nil
}

func (c screen2D) DrawShapeLines(shape Shape2D, thickness float32, color native.Color) error {
	if !c.s.active() {
		return nil
	}
	if thickness <= 0 {
		thickness = 1
	}
	lib := c.s.lib
	switch sh := shape.(type) {
	case Pixel:
		lib.DrawPixelV(sh.Pos, color)
	case Line:
		lib.DrawLineEx(sh.Start, sh.End, thickness, color)
	case LineStrip:
		lib.DrawLineStrip(sh, color)
	case Circle:
		lib.DrawCircleLinesV(sh.Center, sh.Radius, color)
	case Rect:
		lib.DrawRectangleLinesEx(sh.Rec, thickness, color)
	case Triangle:
		lib.DrawTriangleLines(sh.V1, sh.V2, sh.V3, color)
	case Poly:
		lib.DrawPolyLinesEx(sh.Center, sh.Sides, sh.Radius, sh.Rotation, thickness, color)
	default:
		return errors.OperationNotSupported("line drawing", shapeNoun(shape))
	}
	return nil
}

func (c screen2D) DrawGradientH(shape Shape2D, start, end native.Color) error {
	return c.gradient(shape, start, end, true)
}

func (c screen2D) DrawGradientV(shape Shape2D, start, end native.Color) error {
	return c.gradient(shape, start, end, false)
}

func (c screen2D) gradient(shape Shape2D, start, end native.Color, horizontal bool) error {
	switch sh := shape.(type) {
	case Rect:
		if !c.s.active() {
			return nil
		}
		x, y, w, h := int32(sh.Rec.X), int32(sh.Rec.Y), int32(sh.Rec.Width), int32(sh.Rec.Height)
		if horizontal {
			c.s.lib.DrawRectangleGradientH(x, y, w, h, start, end)
		} else {
			c.s.lib.DrawRectangleGradientV(x, y, w, h, start, end)
		}
		return nil
	case Circle:
		if c.s.active() {
			c.s.lib.DrawCircleGradient(int32(sh.Center.X), int32(sh.Center.Y), sh.Radius, start, end)
		}
		return nil
	case RotatedRect:
		return errors.OperationNotSupported("gradient drawing", "rotated rectangles")
	default:
		return errors.OperationNotSupported("gradient drawing", "non-rectangle/non-circle shapes")
	}
}

func (c screen2D) DrawTexture(tex *Texture, pos native.Vector2, rotation, scale float32, tint native.Color) error {
	if c.s.active() {
		c.s.lib.DrawTextureEx(tex.Raw(), pos, rotation, scale, tint)
	}
	return nil
}

func (c screen2D) DrawTextureRec(tex *Texture, src native.Rectangle, pos native.Vector2, tint native.Color) error {
	if c.s.active() {
		c.s.lib.DrawTextureRec(tex.Raw(), src, pos, tint)
	}
	return nil
}

func (c screen2D) DrawText(font *Font, text string, pos native.Vector2, size, spacing float32, tint native.Color) error {
	if c.s.active() {
		c.s.lib.DrawTextEx(fontOrDefault(c.s.lib, font), text, pos, size, spacing, tint)
	}
	return nil
}

// DrawFPS draws the current frame rate at x, y.
func (c screen2D) DrawFPS(x, y int32) {
	if c.s.active() {
		c.s.lib.DrawFPS(x, y)
	}
}

type screen3D struct{ s *scope }

func (c screen3D) DrawShape3D(shape Shape3D, color native.Color) error {
	if !c.s.active() {
		return nil
	}
	lib := c.s.lib
	switch sh := shape.(type) {
	case Cube:
		lib.DrawCube(sh.Pos, sh.Width, sh.Height, sh.Length, color)
	case Sphere:
		lib.DrawSphere(sh.Center, sh.Radius, color)
	case Line3D:
		lib.DrawLine3D(sh.Start, sh.End, color)
	case Circle3D:
		lib.DrawCircle3D(sh.Center, sh.Radius, sh.Axis, sh.Angle, color)
	case Triangle3D:
		lib.DrawTriangle3D(sh.V1, sh.V2, sh.V3, color)
	case TriangleStrip3D:
		lib.DrawTriangleStrip3D(sh, color)
	case Plane:
		lib.DrawPlane(sh.Center, sh.Size, color)
	default:
		return errors.OperationNotSupported("shape drawing", "unknown shapes")
	}
	return nil
}

func (c screen3D) DrawWires3D(shape Shape3D, color native.Color) error {
	switch sh := shape.(type) {
	case Cube:
		if c.s.active() {
			c.s.lib.DrawCubeWires(sh.Pos, sh.Width, sh.Height, sh.Length, color)
		}
	case Sphere:
		rings, slices := sh.Rings, sh.Slices
		if rings <= 0 || slices <= 0 {
			rings, slices = 16, 16
		}
		if c.s.active() {
			c.s.lib.DrawSphereWires(sh.Center, sh.Radius, rings, slices, color)
		}
	case Line3D:
		if c.s.active() {
			c.s.lib.DrawLine3D(sh.Start, sh.End, color)
		}
	case Circle3D:
		return errors.OperationNotSupported("wireframe drawing", "circles")
	case Triangle3D:
		return errors.OperationNotSupported("wireframe drawing", "triangles")
	case TriangleStrip3D:
		return errors.OperationNotSupported("wireframe drawing", "triangle strips")
	case Plane:
		return errors.OperationNotSupported("wireframe drawing", "planes")
	default:
		return errors.OperationNotSupported("wireframe drawing", "unknown shapes")
	}
	return nil
}

func (c screen3D) DrawGrid(slices int32, spacing float32) {
	if c.s.active() {
		c.s.lib.DrawGrid(slices, spacing)
	}
}

func (c screen3D) DrawModel(model *Model, pos native.Vector3, scale float32, tint native.Color) {
	if c.s.active() {
		c.s.lib.DrawModel(model.Raw(), pos, scale, tint)
	}
}

func (c screen3D) DrawModelWires(model *Model, pos native.Vector3, scale float32, tint native.Color) {
	if c.s.active() {
		c.s.lib.DrawModelWires(model.Raw(), pos, scale, tint)
	}
}
