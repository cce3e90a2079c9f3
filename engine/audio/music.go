package audio

import (
	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/native"
)

func musicKind(lib native.Library) handle.Kind[native.Music] {
	return handle.Kind[native.Music]{ID: handle.KindMusic, Valid: lib.IsMusicReady, Release: lib.UnloadMusicStream}
}

// Music is decoded on the fly; call Update once per frame while playing.
type Music struct {
	*handle.Handle[native.Music]
	lib native.Library
}

func LoadMusic(lib native.Library, path string) (*Music, error) {
	if err := requireDevice(lib); err != nil {
		return nil, err
	}
	h, err := musicKind(lib).Load(func() native.Music { return lib.LoadMusicStream(path) })
	if err != nil {
		return nil, err
	}
	return &Music{Handle: h, lib: lib}, nil
}

// Update refills the stream buffers.
func (m *Music) Update() { m.lib.UpdateMusicStream(m.Raw()) }

// Seek moves playback to position seconds.
func (m *Music) Seek(position float32) error {
	if position < 0 || position > m.Length() {
		return errors.InvalidArgument("seek position outside music")
	}
	m.lib.SeekMusicStream(m.Raw(), position)
	return nil
}

// Length is the total duration in seconds.
func (m *Music) Length() float32 { return m.lib.GetMusicTimeLength(m.Raw()) }

// Played is the current position in seconds.
func (m *Music) Played() float32 { return m.lib.GetMusicTimePlayed(m.Raw()) }

func (m *Music) Looping() bool        { return m.Raw().Looping }
func (m *Music) SetLooping(loop bool) { m.Ptr().Looping = loop }
