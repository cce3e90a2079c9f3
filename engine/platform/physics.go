package platform

import (
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/platform/physac"
)

func (n *Native) InitPhysics() {
	if n.physics != nil {
		return
	}
	n.physics = physac.New()
	n.log.Debug("physics world created")
}

func (n *Native) ClosePhysics() {
	if n.physics == nil {
		return
	}
	n.physics.Reset()
	n.physics = nil
	n.log.Debug("physics world destroyed")
}

func (n *Native) IsPhysicsEnabled() bool { return n.physics != nil }

func (n *Native) SetPhysicsGravity(x, y float32) {
	if n.physics != nil {
		n.physics.Gravity = native.Vector2{X: x, Y: y}
	}
}

// UpdatePhysics advances the world one fixed step.
func (n *Native) UpdatePhysics() {
	if n.physics != nil {
		n.physics.Step(physac.TimeStep)
	}
}

func (n *Native) created(b *native.PhysicsBodyData) *native.PhysicsBodyData {
	if b == nil && n.physics != nil {
		n.log.Warn("physics body pool exhausted", zap.Int("max", native.MaxPhysicsBodies))
	}
	return b
}

func (n *Native) CreatePhysicsBodyCircle(pos native.Vector2, radius, density float32) *native.PhysicsBodyData {
	if n.physics == nil {
		return nil
	}
	return n.created(n.physics.NewCircle(pos, radius, density))
}

func (n *Native) CreatePhysicsBodyRectangle(pos native.Vector2, width, height, density float32) *native.PhysicsBodyData {
	if n.physics == nil {
		return nil
	}
	return n.created(n.physics.NewRectangle(pos, width, height, density))
}

func (n *Native) CreatePhysicsBodyPolygon(pos native.Vector2, radius float32, sides int32, density float32) *native.PhysicsBodyData {
	if n.physics == nil || sides < 3 {
		return nil
	}
	return n.created(n.physics.NewPolygon(pos, radius, int(sides), density))
}

func (n *Native) GetPhysicsBodiesCount() int32 {
	if n.physics == nil {
		return 0
	}
	return int32(n.physics.Count())
}

func (n *Native) GetPhysicsBody(index int32) *native.PhysicsBodyData {
	if n.physics == nil {
		return nil
	}
	return n.physics.Body(int(index))
}

func (n *Native) PhysicsAddForce(body *native.PhysicsBodyData, force native.Vector2) {
	if body != nil {
		physac.AddForce(body, force)
	}
}

func (n *Native) PhysicsAddTorque(body *native.PhysicsBodyData, amount float32) {
	if body != nil {
		physac.AddTorque(body, amount)
	}
}

func (n *Native) SetPhysicsBodyRotation(body *native.PhysicsBodyData, radians float32) {
	if body != nil {
		physac.SetRotation(body, radians)
	}
}

func (n *Native) DestroyPhysicsBody(body *native.PhysicsBodyData) {
	if n.physics != nil && body != nil {
		n.physics.Destroy(body)
	}
}
