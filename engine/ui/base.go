// Package ui lays out small retained element trees (panels and labels) and
// draws them onto any gfx.Canvas2D, such as an open Mode2D or a CPU image.
package ui

import (
	"math"

	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/native"
)

type SizeMode int

const (
	SizeFit SizeMode = iota
	SizeFixed
	SizeExpand
)

// Constraints bound a layout pass. A zero Max means unbounded.
type Constraints struct {
	Min [2]float32
	Max [2]float32
}

type Measurer interface {
	Measure(text string, size, spacing float32) native.Vector2
}

// Context is what a layout and draw pass needs from the frame.
type Context struct {
	Viewport native.Rectangle
	// Font draws labels that set none. Nil draws with the library default,
	// in which case Measure must be set.
	Font    *gfx.Font
	Measure Measurer
}

func (c *Context) measurer(f *gfx.Font) Measurer {
	switch {
	case f != nil:
		return f
	case c.Font != nil:
		return c.Font
	}
	return c.Measure
}

type Element interface {
	Node() *Base
	Layout(ctx *Context, c Constraints) [2]float32
	Draw(ctx *Context, dst gfx.Canvas2D) error
}

// Base holds the geometry every element shares. Padding is left, top,
// right, bottom.
type Base struct {
	parent   Element
	children []Element
	pos      [2]float32
	size     [2]float32
	color    native.Color
	mode     [2]SizeMode
	fixed    [2]float32
	padding  [4]float32
}

func (b *Base) Parent() Element      { return b.parent }
func (b *Base) Children() []Element  { return b.children }
func (b *Base) Pos() (x, y float32)  { return b.pos[0], b.pos[1] }
func (b *Base) Size() (w, h float32) { return b.size[0], b.size[1] }

// Bounds is the rectangle assigned by the last layout.
func (b *Base) Bounds() native.Rectangle {
	return native.Rectangle{X: b.pos[0], Y: b.pos[1], Width: b.size[0], Height: b.size[1]}
}

// Contains reports whether p lies inside Bounds.
func (b *Base) Contains(p native.Vector2) bool {
	return p.X >= b.pos[0] && p.Y >= b.pos[1] && p.X < b.pos[0]+b.size[0] && p.Y < b.pos[1]+b.size[1]
}

func clamp(v, lo, hi float32) float32 { return min(max(v, lo), hi) }

func unbounded(m float32) float32 {
	if m == 0 {
		return math.MaxFloat32
	}
	return m
}

func (b *Base) resolve(axis int, content float32, c Constraints) float32 {
	hi := unbounded(c.Max[axis])
	switch b.mode[axis] {
	case SizeFixed:
		if b.fixed[axis] > 0 {
			return clamp(b.fixed[axis], c.Min[axis], hi)
		}
	case SizeExpand:
		if hi < math.MaxFloat32 {
			return max(hi, c.Min[axis])
		}
	}
	return clamp(content, c.Min[axis], hi)
}

func (b *Base) inner() (x, y, w, h float32) {
	p := b.padding
	return b.pos[0] + p[0], b.pos[1] + p[1],
		max(0, b.size[0]-p[0]-p[2]), max(0, b.size[1]-p[1]-p[3])
}

func (b *Base) drawBackground(dst gfx.Canvas2D) error {
	if b.color.A == 0 {
		return nil
	}
	return dst.DrawShape(gfx.Rect{Rec: b.Bounds()}, b.color)
}

// Common implements the chainable setters for an element of type T.
type Common[T any] struct {
	owner T
	base  Base
}

func newCommon[T any](owner T) Common[T] { return Common[T]{owner: owner} }

func (c *Common[T]) Node() *Base { return &c.base }

func (c *Common[T]) Position(x, y float32) T { c.base.pos = [2]float32{x, y}; return c.owner }

func (c *Common[T]) Background(col native.Color) T { c.base.color = col; return c.owner }

func (c *Common[T]) WidthFit() T  { c.base.mode[0] = SizeFit; return c.owner }
func (c *Common[T]) HeightFit() T { c.base.mode[1] = SizeFit; return c.owner }

func (c *Common[T]) WidthFixed(w float32) T {
	c.base.mode[0], c.base.fixed[0] = SizeFixed, w
	return c.owner
}

func (c *Common[T]) HeightFixed(h float32) T {
	c.base.mode[1], c.base.fixed[1] = SizeFixed, h
	return c.owner
}

func (c *Common[T]) WidthExpand() T  { c.base.mode[0] = SizeExpand; return c.owner }
func (c *Common[T]) HeightExpand() T { c.base.mode[1] = SizeExpand; return c.owner }

func (c *Common[T]) Padding(all float32) T { return c.Padding4(all, all, all, all) }

func (c *Common[T]) Padding2(horizontal, vertical float32) T {
	return c.Padding4(horizontal, vertical, horizontal, vertical)
}

func (c *Common[T]) Padding4(left, top, right, bottom float32) T {
	c.base.padding = [4]float32{left, top, right, bottom}
	return c.owner
}

func (c *Common[T]) Children(kids ...Element) T {
	for _, k := range kids {
		k.Node().parent = any(c.owner).(Element)
	}
	c.base.children = append(c.base.children, kids...)
	return c.owner
}
