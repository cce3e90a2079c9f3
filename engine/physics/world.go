// Package physics wraps the native 2D rigid body simulation.
//
// A World holds the context's physics lock. Bodies created through it are
// owned and destroyed on Close; Bodies returns borrowed views of every body
// the simulation knows about.
package physics

import (
	"slices"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/guard"
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
)

// World is the running simulation.
type World struct {
	lib    native.Library
	tok    *guard.Token
	owned  []*Body
	closed bool
}

// Open starts the simulation if needed. On failure the token is released.
func Open(lib native.Library, tok *guard.Token) (*World, error) {
	if !lib.IsPhysicsEnabled() {
		lib.InitPhysics()
	}
	if !lib.IsPhysicsEnabled() {
		tok.Release()
		logging.Named("physics").Warn("physics unavailable")
		return nil, errors.SubsystemNotInitialized("physics")
	}
	logging.Named("physics").Info("physics started")
	return &World{lib: lib, tok: tok}, nil
}

// SetGravity sets the global acceleration applied to bodies that use gravity.
func (w *World) SetGravity(x, y float32) { w.lib.SetPhysicsGravity(x, y) }

// Step advances the simulation by one fixed tick.
func (w *World) Step() {
	if w.closed {
		return
	}
	w.lib.UpdatePhysics()
}

func (w *World) CreateCircle(pos native.Vector2, radius, density float32) (*Body, error) {
	return w.create(func() *native.PhysicsBodyData { return w.lib.CreatePhysicsBodyCircle(pos, radius, density) })
}

func (w *World) CreateRectangle(pos native.Vector2, width, height, density float32) (*Body, error) {
	return w.create(func() *native.PhysicsBodyData {
		return w.lib.CreatePhysicsBodyRectangle(pos, width, height, density)
	})
}

// CreatePolygon creates a regular polygon with sides vertices.
func (w *World) CreatePolygon(pos native.Vector2, radius float32, sides int32, density float32) (*Body, error) {
	if sides < 3 {
		return nil, errors.InvalidArgument("polygon needs at least three sides")
	}
	return w.create(func() *native.PhysicsBodyData {
		return w.lib.CreatePhysicsBodyPolygon(pos, radius, sides, density)
	})
}

func (w *World) create(fn func() *native.PhysicsBodyData) (*Body, error) {
	if w.closed {
		return nil, errors.SubsystemNotInitialized("physics")
	}
	if w.lib.GetPhysicsBodiesCount() >= native.MaxPhysicsBodies {
		logging.Named("physics").Warn("body limit reached", zap.Int("max", native.MaxPhysicsBodies))
		return nil, errors.TooManyPhysicsBodies()
	}
	h, err := w.kind().Load(fn)
	if err != nil {
		return nil, err
	}
	b := &Body{Handle: h, world: w}
	w.owned = append(w.owned, b)
	return b, nil
}

func (w *World) kind() handle.Kind[*native.PhysicsBodyData] {
	return handle.Kind[*native.PhysicsBodyData]{
		ID:    handle.KindPhysicsBody,
		Valid: func(b *native.PhysicsBodyData) bool { return b != nil },
		Release: func(b *native.PhysicsBodyData) {
			if !w.closed {
				w.lib.DestroyPhysicsBody(b)
			}
		},
	}
}

// BodyCount is the number of bodies in the simulation.
func (w *World) BodyCount() int { return int(w.lib.GetPhysicsBodiesCount()) }

// Bodies returns borrowed views of every body. Closing a view does nothing.
func (w *World) Bodies() []*Body {
	n := w.lib.GetPhysicsBodiesCount()
	out := make([]*Body, 0, n)
	k := w.kind()
	for i := range n {
		if b := w.lib.GetPhysicsBody(i); b != nil {
			out = append(out, &Body{Handle: k.Unowned(b), world: w})
		}
	}
	return out
}

// Close destroys the bodies this world created, stops the simulation and
// frees the physics lock.
func (w *World) Close() error {
	if w == nil || w.closed {
		return nil
	}
	for _, b := range slices.Clone(w.owned) {
		b.Close()
	}
	w.closed = true
	w.lib.ClosePhysics()
	w.tok.Release()
	logging.Named("physics").Info("physics stopped")
	return nil
}

func (w *World) forget(b *Body) {
	w.owned = slices.DeleteFunc(w.owned, func(o *Body) bool { return o == b })
}
