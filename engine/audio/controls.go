package audio

import "github.com/hubastard/groveray/engine/native"

// Controls is the playback surface shared by every playable resource.
type Controls interface {
	Play()
	Stop()
	Pause()
	Resume()
	Playing() bool
	SetVolume(volume float32)
	SetPitch(pitch float32)
	SetPan(pan float32)
}

var (
	_ Controls = (*Sound)(nil)
	_ Controls = (*SoundAlias)(nil)
	_ Controls = (*Music)(nil)
	_ Controls = (*AudioStream)(nil)
)

type soundControls struct {
	lib native.Library
	raw func() native.Sound
}

func (c soundControls) Play()               { c.lib.PlaySound(c.raw()) }
func (c soundControls) Stop()               { c.lib.StopSound(c.raw()) }
func (c soundControls) Pause()              { c.lib.PauseSound(c.raw()) }
func (c soundControls) Resume()             { c.lib.ResumeSound(c.raw()) }
func (c soundControls) Playing() bool       { return c.lib.IsSoundPlaying(c.raw()) }
func (c soundControls) SetVolume(v float32) { c.lib.SetSoundVolume(c.raw(), v) }
func (c soundControls) SetPitch(p float32)  { c.lib.SetSoundPitch(c.raw(), p) }
func (c soundControls) SetPan(pan float32)  { c.lib.SetSoundPan(c.raw(), pan) }

func (m *Music) Play()               { m.lib.PlayMusicStream(m.Raw()) }
func (m *Music) Stop()               { m.lib.StopMusicStream(m.Raw()) }
func (m *Music) Pause()              { m.lib.PauseMusicStream(m.Raw()) }
func (m *Music) Resume()             { m.lib.ResumeMusicStream(m.Raw()) }
func (m *Music) Playing() bool       { return m.lib.IsMusicStreamPlaying(m.Raw()) }
func (m *Music) SetVolume(v float32) { m.lib.SetMusicVolume(m.Raw(), v) }
func (m *Music) SetPitch(p float32)  { m.lib.SetMusicPitch(m.Raw(), p) }
func (m *Music) SetPan(pan float32)  { m.lib.SetMusicPan(m.Raw(), pan) }

func (s *AudioStream) Play()               { s.lib.PlayAudioStream(s.Raw()) }
func (s *AudioStream) Stop()               { s.lib.StopAudioStream(s.Raw()) }
func (s *AudioStream) Pause()              { s.lib.PauseAudioStream(s.Raw()) }
func (s *AudioStream) Resume()             { s.lib.ResumeAudioStream(s.Raw()) }
func (s *AudioStream) Playing() bool       { return s.lib.IsAudioStreamPlaying(s.Raw()) }
func (s *AudioStream) SetVolume(v float32) { s.lib.SetAudioStreamVolume(s.Raw(), v) }
func (s *AudioStream) SetPitch(p float32)  { s.lib.SetAudioStreamPitch(s.Raw(), p) }
func (s *AudioStream) SetPan(pan float32)  { s.lib.SetAudioStreamPan(s.Raw(), pan) }
