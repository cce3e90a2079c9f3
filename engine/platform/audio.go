package platform

import (
	"os"
	"slices"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/assets"
	"github.com/hubastard/groveray/engine/native"
)

// Buffer a tenth of a second.
var speakerBuffer = outputRate.N(time.Second / 10)

func (n *Native) InitAudioDevice() {
	if n.audio != nil {
		n.log.Warn("audio device already open")
		return
	}
	m := newMixer()
	m.volume = float64(n.masterVolume)
	if err := speaker.Init(outputRate, speakerBuffer); err != nil {
		n.log.Warn("audio device unavailable", zap.Error(err))
		return
	}
	speaker.Play(m)
	n.audio = m
	n.log.Info("audio device opened", zap.Int("sample_rate", int(outputRate)))
}

func (n *Native) CloseAudioDevice() {
	if n.audio == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
	for id, dec := range n.audio.music {
		dec.Close()
		delete(n.audio.music, id)
	}
	n.audio = nil
	n.log.Info("audio device closed")
}

func (n *Native) IsAudioDeviceReady() bool { return n.audio != nil }

// locked runs f with the speaker paused; it does nothing without a device.
func (n *Native) locked(f func(m *mixer)) {
	if n.audio == nil {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	f(n.audio)
}

func (n *Native) withVoice(id uint32, f func(v *voice)) {
	n.locked(func(m *mixer) {
		if v := m.voices[id]; v != nil {
			f(v)
		}
	})
}

func (n *Native) SetMasterVolume(volume float32) {
	n.masterVolume = min(max(volume, 0), 1)
	n.locked(func(m *mixer) { m.volume = float64(n.masterVolume) })
}

func (n *Native) GetMasterVolume() float32 { return n.masterVolume }

// Waves

func (n *Native) LoadWave(path string) native.Wave {
	w, err := assets.LoadWave(path)
	if err != nil {
		n.log.Warn("wave load failed", zap.String("path", path), zap.Error(err))
		return native.Wave{}
	}
	w.ID = n.id()
	n.track("wave")
	return w
}

func (n *Native) IsWaveReady(wave native.Wave) bool {
	return wave.Data != nil && wave.FrameCount > 0 && wave.SampleRate > 0 && wave.Channels > 0
}

func (n *Native) WaveCopy(wave native.Wave) native.Wave {
	if !n.IsWaveReady(wave) {
		return native.Wave{}
	}
	wave.Data = slices.Clone(wave.Data)
	wave.ID = n.id()
	n.track("wave")
	return wave
}

// WaveCrop keeps frames [initFrame, finalFrame); bad ranges are ignored.
func (n *Native) WaveCrop(wave *native.Wave, initFrame, finalFrame int32) {
	if wave == nil || initFrame < 0 || finalFrame <= initFrame || uint32(finalFrame) > wave.FrameCount {
		n.log.Warn("wave crop out of range", zap.Int32("from", initFrame), zap.Int32("to", finalFrame))
		return
	}
	ch := int32(wave.Channels)
	wave.Data = slices.Clone(wave.Data[initFrame*ch : finalFrame*ch])
	wave.FrameCount = uint32(finalFrame - initFrame)
}

func (n *Native) ExportWave(wave native.Wave, path string) bool {
	if err := assets.ExportWave(wave, path); err != nil {
		n.log.Warn("wave export failed", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

func (n *Native) UnloadWave(wave native.Wave) {
	if wave.ID != 0 {
		n.untrack("wave")
	}
}

// Sounds

func (n *Native) LoadSound(path string) native.Sound {
	if n.audio == nil {
		return native.Sound{}
	}
	w := n.LoadWave(path)
	if !n.IsWaveReady(w) {
		return native.Sound{}
	}
	defer n.UnloadWave(w)
	return n.LoadSoundFromWave(w)
}

func (n *Native) addVoice(v *voice, kind string) uint32 {
	id := n.id()
	n.locked(func(m *mixer) { m.voices[id] = v })
	n.track(kind)
	return id
}

func (n *Native) LoadSoundFromWave(wave native.Wave) native.Sound {
	if n.audio == nil || !n.IsWaveReady(wave) {
		return native.Sound{}
	}
	rate := beep.SampleRate(wave.SampleRate)
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(assets.Samples(wave))
	v := newVoice(buf.Streamer(0, buf.Len()), rate)
	v.buffer = buf
	id := n.addVoice(v, "sound")
	return native.Sound{
		Stream:     native.AudioStream{ID: id, SampleRate: wave.SampleRate, SampleSize: 32, Channels: wave.Channels},
		FrameCount: uint32(buf.Len()),
	}
}

// LoadSoundAlias shares the sample buffer of source with its own voice.
func (n *Native) LoadSoundAlias(source native.Sound) native.Sound {
	var buf *beep.Buffer
	n.withVoice(source.Stream.ID, func(v *voice) { buf = v.buffer })
	if buf == nil {
		return native.Sound{}
	}
	v := newVoice(buf.Streamer(0, buf.Len()), beep.SampleRate(source.Stream.SampleRate))
	v.buffer = buf
	alias := source
	alias.Stream.ID = n.addVoice(v, "sound alias")
	return alias
}

func (n *Native) IsSoundReady(sound native.Sound) bool {
	return sound.Stream.ID > 0 && sound.FrameCount > 0
}

func (n *Native) PlaySound(sound native.Sound) {
	n.locked(func(m *mixer) {
		if v := m.voices[sound.Stream.ID]; v != nil {
			v.play(m)
		}
	})
}

func (n *Native) StopSound(sound native.Sound) {
	n.withVoice(sound.Stream.ID, (*voice).stop)
}

func (n *Native) PauseSound(sound native.Sound) {
	n.withVoice(sound.Stream.ID, func(v *voice) { v.setPaused(true) })
}

func (n *Native) ResumeSound(sound native.Sound) {
	n.withVoice(sound.Stream.ID, func(v *voice) { v.setPaused(false) })
}

func (n *Native) IsSoundPlaying(sound native.Sound) bool {
	playing := false
	n.withVoice(sound.Stream.ID, func(v *voice) { playing = v.playing() })
	return playing
}

func (n *Native) SetSoundVolume(sound native.Sound, volume float32) {
	n.withVoice(sound.Stream.ID, func(v *voice) { v.setVolume(float64(volume)) })
}

func (n *Native) SetSoundPitch(sound native.Sound, pitch float32) {
	n.withVoice(sound.Stream.ID, func(v *voice) { v.setPitch(float64(pitch)) })
}

func (n *Native) SetSoundPan(sound native.Sound, pan float32) {
	n.withVoice(sound.Stream.ID, func(v *voice) { v.setPan(float64(pan)) })
}

func (n *Native) dropVoice(id uint32, kind string) {
	found := false
	n.locked(func(m *mixer) {
		if v := m.voices[id]; v != nil {
			v.stop()
			delete(m.voices, id)
			found = true
		}
		if dec := m.music[id]; dec != nil {
			dec.Close()
			delete(m.music, id)
		}
	})
	if found {
		n.untrack(kind)
	}
}

func (n *Native) UnloadSoundAlias(alias native.Sound) { n.dropVoice(alias.Stream.ID, "sound alias") }

func (n *Native) UnloadSound(sound native.Sound) { n.dropVoice(sound.Stream.ID, "sound") }

// Music streams decode from disk while playing.

func (n *Native) LoadMusicStream(path string) native.Music {
	if n.audio == nil {
		return native.Music{}
	}
	f, err := os.Open(path)
	if err != nil {
		n.log.Warn("music load failed", zap.String("path", path), zap.Error(err))
		return native.Music{}
	}
	dec, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		n.log.Warn("music decode failed", zap.String("path", path), zap.Error(err))
		return native.Music{}
	}
	v := newVoice(dec, format.SampleRate)
	v.loop = true
	id := n.addVoice(v, "music")
	n.locked(func(m *mixer) { m.music[id] = dec })
	return native.Music{
		Stream: native.AudioStream{
			ID:         id,
			SampleRate: uint32(format.SampleRate),
			SampleSize: uint32(format.Precision * 8),
			Channels:   uint32(format.NumChannels),
		},
		FrameCount: uint32(dec.Len()),
		Looping:    true,
	}
}

func (n *Native) IsMusicReady(music native.Music) bool {
	return music.Stream.ID > 0 && music.FrameCount > 0
}

func (n *Native) PlayMusicStream(music native.Music) {
	n.locked(func(m *mixer) {
		if v := m.voices[music.Stream.ID]; v != nil {
			v.loop = music.Looping
			v.play(m)
		}
	})
}

// UpdateMusicStream is a no-op: the speaker pulls decoded samples itself.
func (n *Native) UpdateMusicStream(native.Music) {}

func (n *Native) StopMusicStream(music native.Music) {
	n.locked(func(m *mixer) {
		if v := m.voices[music.Stream.ID]; v != nil {
			v.stop()
		}
		if dec := m.music[music.Stream.ID]; dec != nil {
			if err := dec.Seek(0); err != nil {
				n.log.Warn("music rewind failed", zap.Uint32("stream", music.Stream.ID), zap.Error(err))
			}
		}
	})
}

func (n *Native) PauseMusicStream(music native.Music) {
	n.withVoice(music.Stream.ID, func(v *voice) { v.setPaused(true) })
}

func (n *Native) ResumeMusicStream(music native.Music) {
	n.withVoice(music.Stream.ID, func(v *voice) { v.setPaused(false) })
}

func (n *Native) IsMusicStreamPlaying(music native.Music) bool {
	playing := false
	n.withVoice(music.Stream.ID, func(v *voice) { playing = v.playing() })
	return playing
}

// SeekMusicStream moves to position seconds, clamped to the track.
func (n *Native) SeekMusicStream(music native.Music, position float32) {
	n.locked(func(m *mixer) {
		dec := m.music[music.Stream.ID]
		if dec == nil {
			return
		}
		frame := beep.SampleRate(music.Stream.SampleRate).N(time.Duration(float64(position) * float64(time.Second)))
		if err := dec.Seek(min(max(frame, 0), dec.Len())); err != nil {
			n.log.Warn("music seek failed", zap.Error(err))
		}
	})
}

func (n *Native) SetMusicVolume(music native.Music, volume float32) {
	n.withVoice(music.Stream.ID, func(v *voice) { v.setVolume(float64(volume)) })
}

func (n *Native) SetMusicPitch(music native.Music, pitch float32) {
	n.withVoice(music.Stream.ID, func(v *voice) { v.setPitch(float64(pitch)) })
}

func (n *Native) SetMusicPan(music native.Music, pan float32) {
	n.withVoice(music.Stream.ID, func(v *voice) { v.setPan(float64(pan)) })
}

func (n *Native) GetMusicTimeLength(music native.Music) float32 {
	if music.Stream.SampleRate == 0 {
		return 0
	}
	return float32(music.FrameCount) / float32(music.Stream.SampleRate)
}

func (n *Native) GetMusicTimePlayed(music native.Music) float32 {
	var played float32
	n.locked(func(m *mixer) {
		if dec := m.music[music.Stream.ID]; dec != nil && music.Stream.SampleRate > 0 {
			played = float32(dec.Position()) / float32(music.Stream.SampleRate)
		}
	})
	return played
}

func (n *Native) UnloadMusicStream(music native.Music) { n.dropVoice(music.Stream.ID, "music") }

// Raw streams

func (n *Native) LoadAudioStream(sampleRate, sampleSize, channels uint32) native.AudioStream {
	if n.audio == nil || sampleRate == 0 || channels == 0 || channels > 2 {
		return native.AudioStream{}
	}
	v := newVoice(&queue{channels: int(channels)}, beep.SampleRate(sampleRate))
	return native.AudioStream{
		ID:         n.addVoice(v, "audio stream"),
		SampleRate: sampleRate,
		SampleSize: sampleSize,
		Channels:   channels,
	}
}

func (n *Native) IsAudioStreamReady(stream native.AudioStream) bool { return stream.ID > 0 }

func (n *Native) UpdateAudioStream(stream native.AudioStream, data []float32) {
	n.withVoice(stream.ID, func(v *voice) {
		if q, ok := v.src.(*queue); ok {
			q.push(data)
		}
	})
}

// IsAudioStreamProcessed reports whether the queued samples have all played.
func (n *Native) IsAudioStreamProcessed(stream native.AudioStream) bool {
	done := true
	n.withVoice(stream.ID, func(v *voice) {
		if q, ok := v.src.(*queue); ok {
			done = q.processed()
		}
	})
	return done
}

func (n *Native) PlayAudioStream(stream native.AudioStream) {
	n.locked(func(m *mixer) {
		if v := m.voices[stream.ID]; v != nil {
			v.play(m)
		}
	})
}

func (n *Native) StopAudioStream(stream native.AudioStream) {
	n.withVoice(stream.ID, (*voice).stop)
}

func (n *Native) PauseAudioStream(stream native.AudioStream) {
	n.withVoice(stream.ID, func(v *voice) { v.setPaused(true) })
}

func (n *Native) ResumeAudioStream(stream native.AudioStream) {
	n.withVoice(stream.ID, func(v *voice) { v.setPaused(false) })
}

func (n *Native) IsAudioStreamPlaying(stream native.AudioStream) bool {
	playing := false
	n.withVoice(stream.ID, func(v *voice) { playing = v.playing() })
	return playing
}

func (n *Native) SetAudioStreamVolume(stream native.AudioStream, volume float32) {
	n.withVoice(stream.ID, func(v *voice) { v.setVolume(float64(volume)) })
}

func (n *Native) SetAudioStreamPitch(stream native.AudioStream, pitch float32) {
	n.withVoice(stream.ID, func(v *voice) { v.setPitch(float64(pitch)) })
}

func (n *Native) SetAudioStreamPan(stream native.AudioStream, pan float32) {
	n.withVoice(stream.ID, func(v *voice) { v.setPan(float64(pan)) })
}

// AttachAudioStreamProcessor returns 0 when stream is unknown.
func (n *Native) AttachAudioStreamProcessor(stream native.AudioStream, processor native.AudioCallback) uint32 {
	var id uint32
	n.withVoice(stream.ID, func(v *voice) {
		id = n.id()
		v.procs.add(id, processor)
	})
	return id
}

func (n *Native) DetachAudioStreamProcessor(stream native.AudioStream, id uint32) {
	n.withVoice(stream.ID, func(v *voice) { v.procs.remove(id) })
}

func (n *Native) AttachAudioMixedProcessor(processor native.AudioCallback) uint32 {
	var id uint32
	n.locked(func(m *mixer) {
		id = n.id()
		m.procs.add(id, processor)
	})
	return id
}

func (n *Native) DetachAudioMixedProcessor(id uint32) {
	n.locked(func(m *mixer) { m.procs.remove(id) })
}

func (n *Native) UnloadAudioStream(stream native.AudioStream) { n.dropVoice(stream.ID, "audio stream") }
