package physics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/guard"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/native/nativetest"
	"github.com/hubastard/groveray/engine/physics"
)

func openWorld(t *testing.T) (*nativetest.Library, *physics.World, *guard.Lock) {
	t.Helper()
	lib := nativetest.New()
	lock := guard.NewLock("physics")
	tok, err := lock.TryAcquire()
	require.NoError(t, err)
	w, err := physics.Open(lib, tok)
	require.NoError(t, err)
	return lib, w, lock
}

func TestOpenFailureReleasesLock(t *testing.T) {
	lib := nativetest.New()
	lib.Fail["InitPhysics"] = true
	lock := guard.NewLock("physics")
	tok, err := lock.TryAcquire()
	require.NoError(t, err)

	_, err = physics.Open(lib, tok)
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("physics")))
	assert.False(t, lock.Held())
}

func TestBodyLimit(t *testing.T) {
	lib, w, _ := openWorld(t)
	defer w.Close()

	for i := range native.MaxPhysicsBodies {
		_, err := w.CreateCircle(native.Vector2{X: float32(i)}, 1, 1)
		require.NoError(t, err)
	}
	b, err := w.CreateRectangle(native.Vector2{}, 2, 2, 1)
	assert.Nil(t, b)
	assert.True(t, errors.Is(err, errors.ErrTooManyPhysicsBodies))
	assert.Equal(t, native.MaxPhysicsBodies, lib.Count("CreatePhysicsBodyCircle"))
	assert.Zero(t, lib.Count("CreatePhysicsBodyRectangle"))
}

func TestBodyReleasedOnce(t *testing.T) {
	lib, w, _ := openWorld(t)
	defer w.Close()

	b, err := w.CreatePolygon(native.Vector2{X: 5}, 2, 6, 1)
	require.NoError(t, err)
	assert.Len(t, b.Shape().Vertices, 6)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	assert.Equal(t, 1, lib.Count("DestroyPhysicsBody"))
	assert.Zero(t, w.BodyCount())
	assert.Empty(t, lib.DoubleFrees)

	_, err = w.CreatePolygon(native.Vector2{}, 1, 2, 1)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}

func TestBodyViewsAreBorrowed(t *testing.T) {
	lib, w, _ := openWorld(t)
	defer w.Close()

	_, err := w.CreateCircle(native.Vector2{}, 1, 1)
	require.NoError(t, err)
	_, err = w.CreateRectangle(native.Vector2{}, 1, 1, 1)
	require.NoError(t, err)

	views := w.Bodies()
	require.Len(t, views, 2)
	for _, v := range views {
		assert.False(t, v.Owned())
		require.NoError(t, v.Close())
	}
	assert.Zero(t, lib.Count("DestroyPhysicsBody"))
	assert.Equal(t, 2, w.BodyCount())
}

func TestStepMovesBodies(t *testing.T) {
	_, w, _ := openWorld(t)
	defer w.Close()

	w.SetGravity(0, 60)
	falling, err := w.CreateCircle(native.Vector2{}, 1, 1)
	require.NoError(t, err)
	pinned, err := w.CreateCircle(native.Vector2{X: 10}, 1, 1)
	require.NoError(t, err)
	pinned.SetUseGravity(false)
	pinned.SetFreezeOrient(true)

	w.Step()
	assert.Equal(t, native.Vector2{Y: 1}, falling.Position())
	assert.Equal(t, native.Vector2{X: 10}, pinned.Position())
	assert.True(t, pinned.FreezeOrient())
	assert.False(t, falling.Grounded())

	falling.AddForce(native.Vector2{X: 3})
	falling.AddTorque(2)
	falling.SetRotation(1.5)
	assert.Equal(t, float32(1.5), falling.Rotation())
}

func TestCloseDestroysOwnedBodies(t *testing.T) {
	lib, w, lock := openWorld(t)
	a, err := w.CreateCircle(native.Vector2{}, 1, 1)
	require.NoError(t, err)
	_, err = w.CreateCircle(native.Vector2{}, 1, 1)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Equal(t, 2, lib.Count("DestroyPhysicsBody"))
	assert.Equal(t, 1, lib.Count("ClosePhysics"))
	assert.False(t, lock.Held())

	require.NoError(t, a.Close())
	assert.Equal(t, 2, lib.Count("DestroyPhysicsBody"))
	assert.Empty(t, lib.DoubleFrees)
	assert.Zero(t, lib.Live())

	_, err = w.CreateCircle(native.Vector2{}, 1, 1)
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("physics")))
}
