package physac

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveray/engine/native"
)

func TestMassFromDensity(t *testing.T) {
	w := New()
	c := w.NewCircle(native.Vector2{}, 2, 1)
	assert.InDelta(t, 4*math32.Pi, c.Mass, 1e-4)
	assert.InDelta(t, 1/c.Mass, c.InverseMass, 1e-6)

	r := w.NewRectangle(native.Vector2{}, 4, 2, 2)
	assert.InDelta(t, 16, r.Mass, 1e-4)
	assert.Len(t, r.Shape.Vertices, 4)

	static := w.NewRectangle(native.Vector2{}, 4, 2, 0)
	assert.Zero(t, static.InverseMass)
	assert.Equal(t, 3, w.Count())
}

func TestPoolLimit(t *testing.T) {
	w := New()
	for i := 0; i < native.MaxPhysicsBodies; i++ {
		require.NotNil(t, w.NewCircle(native.Vector2{X: float32(i) * 10}, 1, 1))
	}
	assert.Nil(t, w.NewCircle(native.Vector2{}, 1, 1))
	assert.Nil(t, New().NewPolygon(native.Vector2{}, 1, 2, 1))
}

func TestDestroy(t *testing.T) {
	w := New()
	a := w.NewCircle(native.Vector2{}, 1, 1)
	b := w.NewCircle(native.Vector2{X: 10}, 1, 1)
	w.Destroy(a)
	assert.Equal(t, 1, w.Count())
	assert.Same(t, b, w.Body(0))
	assert.Nil(t, w.Body(1))
	w.Destroy(a)
	assert.Equal(t, 1, w.Count())
}

func TestGravityAndForces(t *testing.T) {
	w := New()
	b := w.NewCircle(native.Vector2{}, 1, 1)
	w.Step(TimeStep)
	assert.Greater(t, b.Position.Y, float32(0))
	assert.InDelta(t, DefaultGravityY*TimeStep, b.Velocity.Y, 1e-5)

	w.Gravity = native.Vector2{}
	AddForce(b, native.Vector2{X: b.Mass})
	w.Step(1)
	assert.InDelta(t, 1, b.Velocity.X, 1e-4)
	assert.Zero(t, b.Force)

	AddTorque(b, b.Inertia)
	w.Step(1)
	assert.InDelta(t, 1, b.AngularVelocity, 1e-4)

	SetRotation(b, 0.5)
	assert.Equal(t, float32(0.5), b.Orient)
}

func TestStaticBodyDoesNotMove(t *testing.T) {
	w := New()
	floor := w.NewRectangle(native.Vector2{Y: 10}, 20, 2, 0)
	w.Step(TimeStep)
	assert.Equal(t, native.Vector2{Y: 10}, floor.Position)
}

func TestCirclesSeparate(t *testing.T) {
	w := New()
	w.Gravity = native.Vector2{}
	a := w.NewCircle(native.Vector2{}, 1, 1)
	b := w.NewCircle(native.Vector2{X: 1.5}, 1, 1)
	a.Velocity.X = 1
	for i := 0; i < 30; i++ {
		w.Step(TimeStep)
	}
	assert.Greater(t, b.Position.X-a.Position.X, float32(1.5))
	assert.Greater(t, b.Velocity.X, float32(0))
}

func TestGroundedOnFloor(t *testing.T) {
	w := New()
	floor := w.NewRectangle(native.Vector2{Y: 10}, 20, 2, 0)
	ball := w.NewCircle(native.Vector2{Y: 8.5}, 1, 1)
	w.Step(TimeStep)
	assert.True(t, ball.IsGrounded)
	assert.False(t, floor.IsGrounded)
	assert.Less(t, ball.Position.Y, float32(8.6))
}

func TestBoxesCollide(t *testing.T) {
	w := New()
	w.Gravity = native.Vector2{}
	a := w.NewRectangle(native.Vector2{}, 2, 2, 1)
	b := w.NewRectangle(native.Vector2{X: 1.8}, 2, 2, 1)
	c, ok := collide(a, b)
	require.True(t, ok)
	assert.InDelta(t, 1, c.normal.X, 1e-5)
	assert.InDelta(t, 0.2, c.depth, 1e-5)

	b.Position.X = 3
	_, ok = collide(a, b)
	assert.False(t, ok)
}

func TestCirclePolygonNormal(t *testing.T) {
	w := New()
	box := w.NewRectangle(native.Vector2{}, 2, 2, 1)
	ball := w.NewCircle(native.Vector2{Y: -1.5}, 1, 1)
	c, ok := collide(box, ball)
	require.True(t, ok)
	assert.InDelta(t, -1, c.normal.Y, 1e-5)
	assert.InDelta(t, 0.5, c.depth, 1e-5)

	c, ok = collide(ball, box)
	require.True(t, ok)
	assert.InDelta(t, 1, c.normal.Y, 1e-5)
}
