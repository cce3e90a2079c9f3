package gfx

import "github.com/hubastard/groveray/engine/native"

// Shape2D is the closed set of 2D primitives.
type Shape2D interface{ shape2D() }

type (
	Pixel struct{ Pos native.Vector2 }
	// Line is drawn one pixel wide when Thickness is zero.
	Line struct {
		Start, End native.Vector2
		Thickness  float32
	}
	LineStrip []native.Vector2
	Circle    struct {
		Center native.Vector2
		Radius float32
	}
	Rect        struct{ Rec native.Rectangle }
	RotatedRect struct {
		Rec      native.Rectangle
		Origin   native.Vector2
		Rotation float32 // degrees
	}
	Triangle      struct{ V1, V2, V3 native.Vector2 }
	TriangleFan   []native.Vector2
	TriangleStrip []native.Vector2
	Poly          struct {
		Center   native.Vector2
		Sides    int32
		Radius   float32
		Rotation float32
	}
)

func (Pixel) shape2D()         {}
func (Line) shape2D()          {}
func (LineStrip) shape2D()     {}
func (Circle) shape2D()        {}
func (Rect) shape2D()          {}
func (RotatedRect) shape2D()   {}
func (Triangle) shape2D()      {}
func (TriangleFan) shape2D()   {}
func (TriangleStrip) shape2D() {}
func (Poly) shape2D()          {}

// Shape3D is the closed set of 3D primitives.
type Shape3D interface{ shape3D() }

type (
	Cube struct {
		Pos                   native.Vector3
		Width, Height, Length float32
	}
	Sphere struct {
		Center        native.Vector3
		Radius        float32
		Rings, Slices int32 // wireframe resolution; zero picks 16x16
	}
	Line3D   struct{ Start, End native.Vector3 }
	Circle3D struct {
		Center native.Vector3
		Radius float32
		Axis   native.Vector3
		Angle  float32
	}
	Triangle3D      struct{ V1, V2, V3 native.Vector3 }
	TriangleStrip3D []native.Vector3
	Plane           struct {
		Center native.Vector3
		Size   native.Vector2
	}
)

func (Cube) shape3D()            {}
func (Sphere) shape3D()          {}
func (Line3D) shape3D()          {}
func (Circle3D) shape3D()        {}
func (Triangle3D) shape3D()      {}
func (TriangleStrip3D) shape3D() {}
func (Plane) shape3D()           {}

func shapeNoun(s Shape2D) string {
	switch s.(type) {
	case Pixel:
		return "pixels"
	case Line:
		return "lines"
	case LineStrip:
		return "line strips"
	case Circle:
		return "circles"
	case Rect:
		return "rectangles"
	case RotatedRect:
		return "rotated rectangles"
	case Triangle:
		return "triangles"
	case TriangleFan:
		return "triangle fans"
	case TriangleStrip:
		return "triangle strips"
	case Poly:
		return "polygons"
	default:
		return "unknown shapes"
	}
}
