package audio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveray/engine/audio"
	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/guard"
	"github.com/hubastard/groveray/engine/native/nativetest"
)

func asset(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("riff"), 0o644))
	return path
}

func openDevice(t *testing.T, lib *nativetest.Library) (*audio.Device, *guard.Lock) {
	t.Helper()
	lock := guard.NewLock("audio")
	tok, err := lock.TryAcquire()
	require.NoError(t, err)
	dev, err := audio.Open(lib, tok)
	require.NoError(t, err)
	return dev, lock
}

func TestOpenFailureReleasesLock(t *testing.T) {
	lib := nativetest.New()
	lib.Fail["InitAudioDevice"] = true
	lock := guard.NewLock("audio")
	tok, err := lock.TryAcquire()
	require.NoError(t, err)

	dev, err := audio.Open(lib, tok)
	assert.Nil(t, dev)
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("audio")))
	assert.False(t, lock.Held())
}

func TestDeviceCloseTurnsOff(t *testing.T) {
	lib := nativetest.New()
	dev, lock := openDevice(t, lib)
	assert.True(t, dev.Ready())

	dev.SetMasterVolume(0.25)
	assert.Equal(t, float32(0.25), dev.MasterVolume())

	require.NoError(t, dev.Close())
	require.NoError(t, dev.Close())
	assert.Equal(t, 1, lib.Count("CloseAudioDevice"))
	assert.False(t, lock.Held())
	assert.False(t, dev.Ready())
}

func TestLoadersNeedDevice(t *testing.T) {
	lib := nativetest.New()
	path := asset(t, "a.wav")

	_, err := audio.LoadSound(lib, path)
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("audio")))
	_, err = audio.LoadMusic(lib, path)
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("audio")))
	_, err = audio.NewAudioStream(lib, 44100, 32, 2)
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("audio")))
	assert.Zero(t, lib.Count("LoadSound"))

	w, err := audio.LoadWave(lib, path)
	require.NoError(t, err, "waves decode without a device")
	require.NoError(t, w.Close())
}

func TestLoadSoundMissingFile(t *testing.T) {
	lib := nativetest.New()
	dev, _ := openDevice(t, lib)
	defer dev.Close()

	s, err := audio.LoadSound(lib, filepath.Join(t.TempDir(), "none.wav"))
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, errors.UnableToLoad("sound")))
	assert.Zero(t, lib.Count("UnloadSound"))
}

func TestSoundClosesAliasesFirst(t *testing.T) {
	lib := nativetest.New()
	dev, _ := openDevice(t, lib)
	defer dev.Close()

	s, err := audio.LoadSound(lib, asset(t, "hit.wav"))
	require.NoError(t, err)
	a1, err := s.Alias()
	require.NoError(t, err)
	a2, err := s.Alias()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Aliases())

	require.NoError(t, a1.Close())
	assert.Equal(t, 1, s.Aliases())

	lib.ResetCalls()
	require.NoError(t, s.Close())
	assert.Equal(t, []string{"UnloadSoundAlias", "UnloadSound"}, lib.Calls())
	assert.True(t, a2.Closed())

	require.NoError(t, a2.Close())
	assert.Equal(t, 1, lib.Count("UnloadSoundAlias"))
	assert.Zero(t, lib.Live())
	assert.Empty(t, lib.DoubleFrees)
}

func TestSoundControls(t *testing.T) {
	lib := nativetest.New()
	dev, _ := openDevice(t, lib)
	defer dev.Close()

	w, err := audio.LoadWave(lib, asset(t, "a.wav"))
	require.NoError(t, err)
	defer w.Close()
	s, err := audio.SoundFromWave(lib, w)
	require.NoError(t, err)
	defer s.Close()

	var c audio.Controls = s
	c.Play()
	c.SetVolume(0.5)
	c.SetPitch(1.2)
	c.SetPan(0.3)
	c.Pause()
	c.Resume()
	c.Stop()
	assert.False(t, c.Playing())
	for _, name := range []string{"PlaySound", "SetSoundVolume", "SetSoundPitch", "SetSoundPan", "PauseSound", "ResumeSound", "StopSound"} {
		assert.Equal(t, 1, lib.Count(name), name)
	}
}

func TestWaveCloneAndCrop(t *testing.T) {
	lib := nativetest.New()
	w, err := audio.LoadWave(lib, asset(t, "a.wav"))
	require.NoError(t, err)
	defer w.Close()

	c, err := w.Clone()
	require.NoError(t, err)
	require.NoError(t, c.Crop(100, 200))
	assert.Equal(t, uint32(100), c.FrameCount())
	assert.Equal(t, uint32(4410), w.FrameCount())

	assert.True(t, errors.Is(c.Crop(50, 10), errors.ErrInvalidArgument))
	assert.True(t, errors.Is(c.Crop(0, 5000), errors.ErrInvalidArgument))

	out := filepath.Join(t.TempDir(), "crop.wav")
	require.NoError(t, c.Export(out))
	assert.FileExists(t, out)

	require.NoError(t, c.Close())
	assert.Equal(t, 1, lib.Count("UnloadWave"))
}

func TestMusic(t *testing.T) {
	lib := nativetest.New()
	dev, _ := openDevice(t, lib)
	defer dev.Close()

	m, err := audio.LoadMusic(lib, asset(t, "song.ogg"))
	require.NoError(t, err)
	assert.Equal(t, float32(10), m.Length())
	assert.True(t, m.Looping())
	m.SetLooping(false)
	assert.False(t, m.Looping())

	m.Play()
	m.Update()
	require.NoError(t, m.Seek(5))
	assert.Error(t, m.Seek(11))
	assert.Equal(t, 1, lib.Count("SeekMusicStream"))

	require.NoError(t, m.Close())
	assert.Equal(t, 1, lib.Count("UnloadMusicStream"))
}

func TestStreamProcessors(t *testing.T) {
	lib := nativetest.New()
	dev, _ := openDevice(t, lib)
	defer dev.Close()

	s, err := audio.NewAudioStream(lib, 48000, 32, 2)
	require.NoError(t, err)
	assert.True(t, s.Processed())

	require.NoError(t, s.Update(make([]float32, 64)))
	assert.True(t, errors.Is(s.Update(make([]float32, 3)), errors.ErrInvalidArgument))

	var frames []uint32
	p := s.AttachProcessor(func(_ []float32, n uint32) { frames = append(frames, n) })
	mixed := audio.AttachMixedProcessor(lib, func(buf []float32, _ uint32) {
		for i := range buf {
			buf[i] *= 0.5
		}
	})
	assert.Equal(t, 2, lib.Processors())

	buf := []float32{1, 1}
	lib.Mix(buf, 1)
	assert.Equal(t, []uint32{1}, frames)
	assert.Equal(t, []float32{0.5, 0.5}, buf)

	require.NoError(t, mixed.Close())
	require.NoError(t, mixed.Close())
	assert.Equal(t, 1, lib.Count("DetachAudioMixedProcessor"))

	require.NoError(t, s.Close())
	assert.Equal(t, 1, lib.Count("DetachAudioStreamProcessor"))
	require.NoError(t, p.Close())
	assert.Equal(t, 1, lib.Count("DetachAudioStreamProcessor"))
	assert.Zero(t, lib.Processors())
	assert.Equal(t, 1, lib.Count("UnloadAudioStream"))
}

func TestStreamRejectsBadFormat(t *testing.T) {
	lib := nativetest.New()
	dev, _ := openDevice(t, lib)
	defer dev.Close()

	_, err := audio.NewAudioStream(lib, 0, 16, 2)
	assert.True(t, errors.Is(err, errors.UnableToLoad("audio stream")))
	assert.Zero(t, lib.Count("UnloadAudioStream"))
}
