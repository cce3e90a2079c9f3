package audio

import (
	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/native"
)

func waveKind(lib native.Library) handle.Kind[native.Wave] {
	return handle.Kind[native.Wave]{ID: handle.KindWave, Valid: lib.IsWaveReady, Release: lib.UnloadWave}
}

// Wave is decoded sample data held in memory.
type Wave struct {
	*handle.Handle[native.Wave]
	lib native.Library
}

func wrapWave(lib native.Library, load func() native.Wave) (*Wave, error) {
	h, err := waveKind(lib).Load(load)
	if err != nil {
		return nil, err
	}
	return &Wave{Handle: h, lib: lib}, nil
}

// LoadWave decodes a sound file. The device does not need to be open.
func LoadWave(lib native.Library, path string) (*Wave, error) {
	return wrapWave(lib, func() native.Wave { return lib.LoadWave(path) })
}

// Clone copies the samples into a new owned wave.
func (w *Wave) Clone() (*Wave, error) {
	return wrapWave(w.lib, func() native.Wave { return w.lib.WaveCopy(w.Raw()) })
}

// Crop keeps frames [from, to).
func (w *Wave) Crop(from, to int32) error {
	if from < 0 || to <= from || uint32(to) > w.FrameCount() {
		return errors.InvalidArgument("crop range outside wave")
	}
	w.lib.WaveCrop(w.Ptr(), from, to)
	return nil
}

func (w *Wave) FrameCount() uint32 { return w.Raw().FrameCount }
func (w *Wave) SampleRate() uint32 { return w.Raw().SampleRate }
func (w *Wave) Channels() uint32   { return w.Raw().Channels }

// Export writes the wave; the container follows the extension.
func (w *Wave) Export(path string) error {
	if path == "" {
		return errors.InvalidArgument("empty export path")
	}
	if !w.lib.ExportWave(w.Raw(), path) {
		return errors.IO("export", path)
	}
	return nil
}
