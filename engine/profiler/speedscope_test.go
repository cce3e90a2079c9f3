package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingKeepsNewest(t *testing.T) {
	r := newRing(3)
	for i := 0; i < 5; i++ {
		r.push(event{atNS: int64(i)})
	}
	snap := r.snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, int64(2), snap[0].atNS)
	assert.Equal(t, int64(4), snap[2].atNS)
	assert.Empty(t, newRing(4).snapshot())
}

func TestInterner(t *testing.T) {
	var in interner
	assert.Equal(t, 0, in.id("frame"))
	assert.Equal(t, 1, in.id("mode2d"))
	assert.Equal(t, 0, in.id("frame"))
	assert.Equal(t, []string{"frame", "mode2d"}, in.all())
}

func TestEncodeBalancesSpans(t *testing.T) {
	evs := []event{
		{atNS: 1000, frame: 0, open: true},
		{atNS: 2000, frame: 1, open: true},
		{atNS: 2500, frame: 0},        // mismatched close is dropped
		{atNS: 3000, frame: 1},
		{atNS: 5000, frame: 1, open: true}, // left open
	}
	doc, err := encode(evs, []string{"frame", "mode2d"})
	require.NoError(t, err)

	p := doc.Profiles[0]
	var types []string
	for _, e := range p.Events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{"O", "O", "C", "O", "C", "C"}, types)
	assert.Equal(t, int64(4), p.EndValue)
	assert.Equal(t, 1, p.Events[4].Frame, "innermost span closes first")
	assert.Len(t, doc.Shared.Frames, 2)

	_, err = encode(nil, nil)
	assert.ErrorIs(t, err, ErrNoEvents)
}

func TestWriteFile(t *testing.T) {
	doc, err := encode([]event{{frame: 0, open: true}, {atNS: 2000, frame: 0}}, []string{"frame"})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "capture.json")
	require.NoError(t, writeFile(doc, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var back ssFile
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, "evented", back.Profiles[0].Type)
	assert.Equal(t, int64(2), back.Profiles[0].EndValue)
	assert.NoFileExists(t, path+".tmp")
}
