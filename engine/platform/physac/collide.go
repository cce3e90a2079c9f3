package physac

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/groveray/engine/native"
)

// contact normal points from the first body to the second.
type contact struct {
	normal native.Vector2
	depth  float32
}

func collide(a, b *native.PhysicsBodyData) (contact, bool) {
	switch {
	case a.Shape.Type == native.PhysicsCircle && b.Shape.Type == native.PhysicsCircle:
		return circles(a, b)
	case a.Shape.Type == native.PhysicsPolygon && b.Shape.Type == native.PhysicsCircle:
		return circlePolygon(b, a)
	case a.Shape.Type == native.PhysicsCircle && b.Shape.Type == native.PhysicsPolygon:
		c, ok := circlePolygon(a, b)
		c.normal = scale(c.normal, -1)
		return c, ok
	}
	return polygons(a, b)
}

func circles(a, b *native.PhysicsBodyData) (contact, bool) {
	d := sub(b.Position, a.Position)
	r := a.Shape.Radius + b.Shape.Radius
	dist := length(d)
	if dist >= r {
		return contact{}, false
	}
	if dist == 0 {
		return contact{normal: native.Vector2{Y: 1}, depth: r}, true
	}
	return contact{normal: scale(d, 1/dist), depth: r - dist}, true
}

// circlePolygon returns a normal pointing from the polygon p to the circle c.
func circlePolygon(c, p *native.PhysicsBodyData) (contact, bool) {
	verts := p.Shape.Vertices
	if len(verts) < 3 {
		return contact{}, false
	}
	center := rotate(sub(c.Position, p.Position), -p.Orient)
	r := c.Shape.Radius

	face, best := 0, float32(-math32.MaxFloat32)
	for i := range verts {
		if s := dot(faceNormal(verts, i), sub(center, verts[i])); s > best {
			face, best = i, s
		}
	}
	if best > r {
		return contact{}, false
	}
	var n native.Vector2
	var depth float32
	if best < 0 {
		n, depth = faceNormal(verts, face), r-best
	} else {
		q := closest(verts[face], verts[(face+1)%len(verts)], center)
		d := sub(center, q)
		dist := length(d)
		if dist > r {
			return contact{}, false
		}
		if dist == 0 {
			n = faceNormal(verts, face)
		} else {
			n = scale(d, 1/dist)
		}
		depth = r - dist
	}
	return contact{normal: rotate(n, p.Orient), depth: depth}, true
}

func polygons(a, b *native.PhysicsBodyData) (contact, bool) {
	wa, wb := world(a), world(b)
	if len(wa) < 3 || len(wb) < 3 {
		return contact{}, false
	}
	best := contact{depth: math32.MaxFloat32}
	for _, poly := range [2][]native.Vector2{wa, wb} {
		for i := range poly {
			n := faceNormal(poly, i)
			minA, maxA := project(wa, n)
			minB, maxB := project(wb, n)
			overlap := math32.Min(maxA, maxB) - math32.Max(minA, minB)
			if overlap <= 0 {
				return contact{}, false
			}
			if overlap < best.depth {
				best = contact{normal: n, depth: overlap}
			}
		}
	}
	if dot(sub(b.Position, a.Position), best.normal) < 0 {
		best.normal = scale(best.normal, -1)
	}
	return best, true
}

func world(b *native.PhysicsBodyData) []native.Vector2 {
	out := make([]native.Vector2, len(b.Shape.Vertices))
	for i, v := range b.Shape.Vertices {
		out[i] = add(b.Position, rotate(v, b.Orient))
	}
	return out
}

// faceNormal is the outward unit normal of edge i of a convex polygon.
func faceNormal(verts []native.Vector2, i int) native.Vector2 {
	p1, p2 := verts[i], verts[(i+1)%len(verts)]
	e := sub(p2, p1)
	n := native.Vector2{X: e.Y, Y: -e.X}
	if l := length(n); l > 0 {
		n = scale(n, 1/l)
	}
	var c native.Vector2
	for _, v := range verts {
		c = add(c, v)
	}
	c = scale(c, 1/float32(len(verts)))
	if dot(n, sub(p1, c)) < 0 {
		n = scale(n, -1)
	}
	return n
}

func project(verts []native.Vector2, axis native.Vector2) (lo, hi float32) {
	lo, hi = math32.MaxFloat32, -math32.MaxFloat32
	for _, v := range verts {
		p := dot(v, axis)
		lo, hi = math32.Min(lo, p), math32.Max(hi, p)
	}
	return lo, hi
}

func closest(a, b, p native.Vector2) native.Vector2 {
	ab := sub(b, a)
	l := dot(ab, ab)
	if l == 0 {
		return a
	}
	t := math32.Max(0, math32.Min(1, dot(sub(p, a), ab)/l))
	return add(a, scale(ab, t))
}

func add(a, b native.Vector2) native.Vector2 { return native.Vector2{X: a.X + b.X, Y: a.Y + b.Y} }
func sub(a, b native.Vector2) native.Vector2 { return native.Vector2{X: a.X - b.X, Y: a.Y - b.Y} }
func scale(a native.Vector2, s float32) native.Vector2 {
	return native.Vector2{X: a.X * s, Y: a.Y * s}
}
func dot(a, b native.Vector2) float32   { return a.X*b.X + a.Y*b.Y }
func cross(a, b native.Vector2) float32 { return a.X*b.Y - a.Y*b.X }
func length(a native.Vector2) float32   { return math32.Sqrt(dot(a, a)) }

func rotate(v native.Vector2, rad float32) native.Vector2 {
	s, c := math32.Sincos(rad)
	return native.Vector2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}
