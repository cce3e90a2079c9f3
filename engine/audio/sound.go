package audio

import (
	"slices"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
)

func soundKind(lib native.Library) handle.Kind[native.Sound] {
	return handle.Kind[native.Sound]{ID: handle.KindSound, Valid: lib.IsSoundReady, Release: lib.UnloadSound}
}

func aliasKind(lib native.Library) handle.Kind[native.Sound] {
	return handle.Kind[native.Sound]{ID: handle.KindSoundAlias, Valid: lib.IsSoundReady, Release: lib.UnloadSoundAlias}
}

// Sound is a fully loaded sample buffer.
type Sound struct {
	*handle.Handle[native.Sound]
	soundControls
	aliases []*SoundAlias
}

func wrapSound(lib native.Library, load func() native.Sound) (*Sound, error) {
	if err := requireDevice(lib); err != nil {
		return nil, err
	}
	h, err := soundKind(lib).Load(load)
	if err != nil {
		return nil, err
	}
	s := &Sound{Handle: h}
	s.soundControls = soundControls{lib: lib, raw: h.Raw}
	return s, nil
}

func LoadSound(lib native.Library, path string) (*Sound, error) {
	return wrapSound(lib, func() native.Sound { return lib.LoadSound(path) })
}

// SoundFromWave uploads w to the mixer. The wave stays owned by the caller.
func SoundFromWave(lib native.Library, w *Wave) (*Sound, error) {
	return wrapSound(lib, func() native.Sound { return lib.LoadSoundFromWave(w.Raw()) })
}

// Alias returns a second voice sharing this sound's samples, so the same
// sample can overlap itself. The alias is closed with its source.
func (s *Sound) Alias() (*SoundAlias, error) {
	h, err := aliasKind(s.lib).Load(func() native.Sound { return s.lib.LoadSoundAlias(s.Raw()) })
	if err != nil {
		return nil, err
	}
	a := &SoundAlias{Handle: h, source: s}
	a.soundControls = soundControls{lib: s.lib, raw: h.Raw}
	s.aliases = append(s.aliases, a)
	return a, nil
}

// Aliases returns the number of open aliases.
func (s *Sound) Aliases() int { return len(s.aliases) }

// Close releases every open alias, then the sound.
func (s *Sound) Close() error {
	if s == nil || s.Closed() {
		return nil
	}
	if n := len(s.aliases); n > 0 {
		logging.Named("audio").Debug("closing sound aliases", zap.Int("count", n))
	}
	for _, a := range slices.Clone(s.aliases) {
		a.Close()
	}
	s.aliases = nil
	return s.Handle.Close()
}

// SoundAlias shares sample data with the Sound it came from.
type SoundAlias struct {
	*handle.Handle[native.Sound]
	soundControls
	source *Sound
}

func (a *SoundAlias) Close() error {
	if a == nil || a.Closed() {
		return nil
	}
	if a.source != nil {
		a.source.aliases = slices.DeleteFunc(a.source.aliases, func(o *SoundAlias) bool { return o == a })
	}
	return a.Handle.Close()
}
