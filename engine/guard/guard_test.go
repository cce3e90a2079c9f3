package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveray/engine/errors"
)

func TestLockIsNonBlocking(t *testing.T) {
	l := NewLock("drawing")
	tok, err := l.TryAcquire()
	require.NoError(t, err)
	assert.True(t, l.Held())

	_, err = l.TryAcquire()
	assert.True(t, errors.Is(err, errors.ThreadAlreadyLocked("drawing")))

	tok.Release()
	tok.Release()
	assert.False(t, l.Held())
	assert.True(t, tok.Released())

	again, err := l.TryAcquire()
	require.NoError(t, err)
	again.Release()
}

func TestStateLocksAreIndependent(t *testing.T) {
	s := NewState("window", "drawing", "audio", "physics")

	w, err := s.Acquire("window")
	require.NoError(t, err)
	d, err := s.Acquire("drawing")
	require.NoError(t, err)

	_, err = s.Acquire("window")
	assert.True(t, errors.Is(err, errors.ThreadAlreadyLocked("window")))
	assert.True(t, s.Held("drawing"))
	assert.False(t, s.Held("audio"))

	w.Release()
	d.Release()
	assert.False(t, s.Held("window"))
}

func TestStateUnknownLock(t *testing.T) {
	s := NewState("window")
	_, err := s.Acquire("gamepad")
	assert.True(t, errors.Is(err, errors.ErrSubsystemNotInitialized))
}

func TestStackIsLIFO(t *testing.T) {
	var s Stack
	outer := s.Push("mode 2d")
	inner := s.Push("shader mode")

	err := s.Pop(outer)
	assert.True(t, errors.Is(err, errors.NestingViolation("mode 2d")))
	assert.Equal(t, 2, s.Depth())

	require.NoError(t, s.Pop(inner))
	require.NoError(t, s.Pop(outer))
	assert.Nil(t, s.Top())
	assert.Zero(t, s.Depth())

	// repeated pop is a no-op
	assert.NoError(t, s.Pop(outer))
}
