package physics

import (
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/native"
)

// Body is one rigid body. The native data is shared with the simulation, so
// reads reflect the latest Step.
type Body struct {
	*handle.Handle[*native.PhysicsBodyData]
	world *World
}

func (b *Body) data() *native.PhysicsBodyData { return b.Raw() }

func (b *Body) AddForce(force native.Vector2) { b.world.lib.PhysicsAddForce(b.data(), force) }
func (b *Body) AddTorque(amount float32)      { b.world.lib.PhysicsAddTorque(b.data(), amount) }

// SetRotation sets the orientation in radians.
func (b *Body) SetRotation(radians float32) { b.world.lib.SetPhysicsBodyRotation(b.data(), radians) }

func (b *Body) ID() uint32                 { return b.data().ID }
func (b *Body) Position() native.Vector2   { return b.data().Position }
func (b *Body) Velocity() native.Vector2   { return b.data().Velocity }
func (b *Body) Rotation() float32          { return b.data().Orient }
func (b *Body) Mass() float32              { return b.data().Mass }
func (b *Body) Shape() native.PhysicsShape { return b.data().Shape }
func (b *Body) Grounded() bool             { return b.data().IsGrounded }

func (b *Body) Enabled() bool         { return b.data().Enabled }
func (b *Body) SetEnabled(on bool)    { b.data().Enabled = on }
func (b *Body) UseGravity() bool      { return b.data().UseGravity }
func (b *Body) SetUseGravity(on bool) { b.data().UseGravity = on }
func (b *Body) FreezeOrient() bool    { return b.data().FreezeOrient }
func (b *Body) SetFreezeOrient(on bool) {
	b.data().FreezeOrient = on
}

func (b *Body) SetVelocity(v native.Vector2) { b.data().Velocity = v }

// Close destroys an owned body. Views and bodies of a closed world are left alone.
func (b *Body) Close() error {
	if b == nil || b.Closed() {
		return nil
	}
	if b.Owned() {
		b.world.forget(b)
	}
	return b.Handle.Close()
}
