package assets

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/hubastard/groveray/engine/native"
)

// LoadWave decodes a wav file into interleaved float samples.
func LoadWave(path string) (native.Wave, error) {
	f, err := os.Open(path)
	if err != nil {
		return native.Wave{}, fmt.Errorf("open %q: %w", path, err)
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return native.Wave{}, fmt.Errorf("decode %q: %w", path, err)
	}
	defer s.Close()

	channels := format.NumChannels
	if channels < 1 || channels > 2 {
		channels = 2
	}
	data := make([]float32, 0, s.Len()*channels)
	buf := make([][2]float64, 4096)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			data = append(data, float32(frame[0]))
			if channels == 2 {
				data = append(data, float32(frame[1]))
			}
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return native.Wave{}, fmt.Errorf("read %q: %w", path, err)
	}
	return native.Wave{
		FrameCount: uint32(len(data) / channels),
		SampleRate: uint32(format.SampleRate),
		SampleSize: uint32(format.Precision * 8),
		Channels:   uint32(channels),
		Data:       data,
	}, nil
}

// ExportWave writes w as 16-bit PCM.
func ExportWave(w native.Wave, path string) error {
	if w.Channels == 0 || w.SampleRate == 0 {
		return fmt.Errorf("export %q: empty wave", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	format := beep.Format{SampleRate: beep.SampleRate(w.SampleRate), NumChannels: int(w.Channels), Precision: 2}
	if err := wav.Encode(f, Samples(w), format); err != nil {
		f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}

// Samples streams the frames of w once. Mono frames are duplicated to both sides.
func Samples(w native.Wave) beep.StreamSeeker {
	return &waveStreamer{wave: w}
}

type waveStreamer struct {
	wave native.Wave
	pos  int
}

func (s *waveStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	ch := int(s.wave.Channels)
	if ch == 0 {
		return 0, false
	}
	frames := len(s.wave.Data) / ch
	if s.pos >= frames {
		return 0, false
	}
	for n < len(samples) && s.pos < frames {
		l := float64(s.wave.Data[s.pos*ch])
		r := l
		if ch > 1 {
			r = float64(s.wave.Data[s.pos*ch+1])
		}
		samples[n] = [2]float64{l, r}
		n++
		s.pos++
	}
	return n, true
}

func (s *waveStreamer) Err() error    { return nil }
func (s *waveStreamer) Len() int      { return len(s.wave.Data) / max(int(s.wave.Channels), 1) }
func (s *waveStreamer) Position() int { return s.pos }

func (s *waveStreamer) Seek(p int) error {
	if p < 0 || p > s.Len() {
		return fmt.Errorf("seek %d out of range [0, %d]", p, s.Len())
	}
	s.pos = p
	return nil
}
