// Package physac is a small 2D rigid body world: semi-implicit Euler
// integration, circle and convex polygon contacts, impulse resolution with
// friction. Y grows downwards.
package physac

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/groveray/engine/native"
)

const (
	DefaultGravityY = 9.81
	TimeStep        = 1.0 / 60

	staticFriction  = 0.4
	dynamicFriction = 0.2
	correction      = 0.8
	slop            = 0.01
)

type World struct {
	Gravity native.Vector2

	bodies []*native.PhysicsBodyData
	nextID uint32
}

func New() *World {
	return &World{Gravity: native.Vector2{Y: DefaultGravityY}}
}

func (w *World) Count() int { return len(w.bodies) }

// Body returns the index-th live body, nil when out of range.
func (w *World) Body(i int) *native.PhysicsBodyData {
	if i < 0 || i >= len(w.bodies) {
		return nil
	}
	return w.bodies[i]
}

// NewCircle adds a circle body. A zero density makes it static. It returns
// nil once the pool is full.
func (w *World) NewCircle(pos native.Vector2, radius, density float32) *native.PhysicsBodyData {
	mass := math32.Pi * radius * radius * density
	return w.add(pos, native.PhysicsShape{Type: native.PhysicsCircle, Radius: radius}, mass, mass*radius*radius)
}

func (w *World) NewRectangle(pos native.Vector2, width, height, density float32) *native.PhysicsBodyData {
	hw, hh := width/2, height/2
	return w.NewPolygonShape(pos, []native.Vector2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}, density)
}

// NewPolygon adds a regular polygon inscribed in radius.
func (w *World) NewPolygon(pos native.Vector2, radius float32, sides int, density float32) *native.PhysicsBodyData {
	if sides < 3 {
		return nil
	}
	verts := make([]native.Vector2, sides)
	for i := range verts {
		a := 2 * math32.Pi * float32(i) / float32(sides)
		verts[i] = native.Vector2{X: radius * math32.Cos(a), Y: radius * math32.Sin(a)}
	}
	return w.NewPolygonShape(pos, verts, density)
}

// NewPolygonShape adds a convex polygon whose vertices are centred on pos.
func (w *World) NewPolygonShape(pos native.Vector2, verts []native.Vector2, density float32) *native.PhysicsBodyData {
	var area, inertia float32
	for i := range verts {
		p1, p2 := verts[i], verts[(i+1)%len(verts)]
		d := cross(p1, p2)
		area += d / 2
		ix := p1.X*p1.X + p2.X*p1.X + p2.X*p2.X
		iy := p1.Y*p1.Y + p2.Y*p1.Y + p2.Y*p2.Y
		inertia += 0.25 / 3 * d * (ix + iy)
	}
	shape := native.PhysicsShape{Type: native.PhysicsPolygon, Vertices: verts}
	return w.add(pos, shape, density*math32.Abs(area), density*math32.Abs(inertia))
}

func (w *World) add(pos native.Vector2, shape native.PhysicsShape, mass, inertia float32) *native.PhysicsBodyData {
	if len(w.bodies) >= native.MaxPhysicsBodies {
		return nil
	}
	b := &native.PhysicsBodyData{
		ID:              w.nextID,
		Enabled:         true,
		Position:        pos,
		Mass:            mass,
		Inertia:         inertia,
		StaticFriction:  staticFriction,
		DynamicFriction: dynamicFriction,
		UseGravity:      true,
		Shape:           shape,
	}
	if mass > 0 {
		b.InverseMass = 1 / mass
	}
	if inertia > 0 {
		b.InverseInertia = 1 / inertia
	}
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b
}

// Destroy removes b; unknown bodies are ignored.
func (w *World) Destroy(b *native.PhysicsBodyData) {
	for i, o := range w.bodies {
		if o == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

func (w *World) Reset() { w.bodies = nil }

func AddForce(b *native.PhysicsBodyData, f native.Vector2) {
	b.Force.X += f.X
	b.Force.Y += f.Y
}

func AddTorque(b *native.PhysicsBodyData, t float32) { b.Torque += t }

func SetRotation(b *native.PhysicsBodyData, radians float32) { b.Orient = radians }

// Step advances the world by dt seconds.
func (w *World) Step(dt float32) {
	for _, b := range w.bodies {
		b.IsGrounded = false
		if !b.Enabled || b.InverseMass == 0 {
			continue
		}
		b.Velocity.X += b.Force.X * b.InverseMass * dt
		b.Velocity.Y += b.Force.Y * b.InverseMass * dt
		if b.UseGravity {
			b.Velocity.X += w.Gravity.X * dt
			b.Velocity.Y += w.Gravity.Y * dt
		}
		if !b.FreezeOrient {
			b.AngularVelocity += b.Torque * b.InverseInertia * dt
		}
	}

	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			a, b := w.bodies[i], w.bodies[j]
			if !a.Enabled || !b.Enabled || a.InverseMass+b.InverseMass == 0 {
				continue
			}
			if c, ok := collide(a, b); ok {
				resolve(a, b, c)
			}
		}
	}

	for _, b := range w.bodies {
		if b.Enabled && b.InverseMass != 0 {
			b.Position.X += b.Velocity.X * dt
			b.Position.Y += b.Velocity.Y * dt
			if !b.FreezeOrient {
				b.Orient += b.AngularVelocity * dt
			}
		}
		b.Force = native.Vector2{}
		b.Torque = 0
	}
}

func resolve(a, b *native.PhysicsBodyData, c contact) {
	n := c.normal
	inv := a.InverseMass + b.InverseMass

	rv := sub(b.Velocity, a.Velocity)
	if vn := dot(rv, n); vn < 0 {
		e := math32.Min(a.Restitution, b.Restitution)
		j := -(1 + e) * vn / inv
		a.Velocity = sub(a.Velocity, scale(n, j*a.InverseMass))
		b.Velocity = add(b.Velocity, scale(n, j*b.InverseMass))

		rv = sub(b.Velocity, a.Velocity)
		t := sub(rv, scale(n, dot(rv, n)))
		if l := length(t); l > 1e-6 {
			t = scale(t, 1/l)
			jt := -dot(rv, t) / inv
			sf := math32.Sqrt(a.StaticFriction * b.StaticFriction)
			if math32.Abs(jt) > j*sf {
				jt = -j * math32.Sqrt(a.DynamicFriction*b.DynamicFriction)
			}
			a.Velocity = sub(a.Velocity, scale(t, jt*a.InverseMass))
			b.Velocity = add(b.Velocity, scale(t, jt*b.InverseMass))
		}
	}

	corr := scale(n, math32.Max(c.depth-slop, 0)/inv*correction)
	a.Position = sub(a.Position, scale(corr, a.InverseMass))
	b.Position = add(b.Position, scale(corr, b.InverseMass))

	switch {
	case n.Y > 0.5:
		a.IsGrounded = true
	case n.Y < -0.5:
		b.IsGrounded = true
	}
}
