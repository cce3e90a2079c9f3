package handle

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveray/engine/errors"
)

type blob struct{ id int }

func counting(releases *[]int) Kind[blob] {
	return Kind[blob]{
		ID:      KindTexture,
		Valid:   func(b blob) bool { return b.id > 0 },
		Release: func(b blob) { *releases = append(*releases, b.id) },
	}
}

func TestOwnedReleasesExactlyOnce(t *testing.T) {
	var released []int
	h := counting(&released).Owned(blob{id: 7})

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	assert.Equal(t, []int{7}, released)
	assert.True(t, h.Closed())
	assert.False(t, h.Owned())
}

func TestUnownedNeverReleases(t *testing.T) {
	var released []int
	h := counting(&released).Unowned(blob{id: 3})

	assert.False(t, h.Owned())
	require.NoError(t, h.Close())
	assert.Empty(t, released)
}

func TestLoadInvalidYieldsNoHandle(t *testing.T) {
	var released []int
	h, err := counting(&released).Load(func() blob { return blob{} })

	assert.Nil(t, h)
	assert.True(t, errors.Is(err, errors.UnableToLoad("texture")))
	assert.Empty(t, released)
}

func TestLoadValidIsOwned(t *testing.T) {
	var released []int
	h, err := counting(&released).Load(func() blob { return blob{id: 11} })
	require.NoError(t, err)

	assert.True(t, h.Owned())
	assert.Equal(t, 11, h.Raw().id)
	h.Close()
	assert.Equal(t, []int{11}, released)
}

func TestTakeTransfersOwnership(t *testing.T) {
	var released []int
	h := counting(&released).Owned(blob{id: 5})

	v, ok := h.Take()
	require.True(t, ok)
	require.NoError(t, h.Close())

	assert.Equal(t, 5, v.id)
	assert.Empty(t, released)
}

func TestTakeRefusesBorrowedAndClosed(t *testing.T) {
	var released []int
	kind := counting(&released)

	_, ok := kind.Unowned(blob{id: 2}).Take()
	assert.False(t, ok)

	h := kind.Owned(blob{id: 3})
	require.NoError(t, h.Close())
	_, ok = h.Take()
	assert.False(t, ok)

	h = kind.Owned(blob{id: 4})
	_, ok = h.Take()
	require.True(t, ok)
	_, ok = h.Take()
	assert.False(t, ok)

	var none *Handle[blob]
	_, ok = none.Take()
	assert.False(t, ok)
	assert.Equal(t, []int{3}, released)
}

func TestPtrMutatesInPlace(t *testing.T) {
	var released []int
	h := counting(&released).Owned(blob{id: 1})
	h.Ptr().id = 9
	h.Close()
	assert.Equal(t, []int{9}, released)
}

func TestNilHandleClose(t *testing.T) {
	var h *Handle[blob]
	assert.NoError(t, h.Close())
	var c io.Closer = counting(new([]int)).Owned(blob{id: 1})
	assert.NoError(t, c.Close())
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "automation events", KindAutomationEvents.String())
	assert.Equal(t, "render texture", KindRenderTexture.String())
	assert.Equal(t, "resource", ResourceKind(99).String())
}
