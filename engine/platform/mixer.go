package platform

import (
	"math"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"

	"github.com/hubastard/groveray/engine/native"
)

const outputRate beep.SampleRate = 44100

// mixer is the single streamer handed to the speaker. Every field is guarded
// by speaker.Lock once the device is running.
type mixer struct {
	mix    beep.Mixer
	volume float64
	voices map[uint32]*voice
	music  map[uint32]beep.StreamSeekCloser
	procs  processors
}

func newMixer() *mixer {
	return &mixer{
		volume: 1,
		voices: make(map[uint32]*voice),
		music:  make(map[uint32]beep.StreamSeekCloser),
	}
}

func (m *mixer) Stream(samples [][2]float64) (int, bool) {
	n, _ := m.mix.Stream(samples)
	m.procs.apply(samples[:n])
	if m.volume != 1 {
		for i := range samples[:n] {
			samples[i][0] *= m.volume
			samples[i][1] *= m.volume
		}
	}
	return len(samples), true
}

func (m *mixer) Err() error { return nil }

type processor struct {
	id uint32
	fn native.AudioCallback
}

// processors run in attach order over interleaved stereo frames.
type processors struct {
	list []processor
	buf  []float32
}

func (p *processors) add(id uint32, fn native.AudioCallback) {
	p.list = append(p.list, processor{id: id, fn: fn})
}

func (p *processors) remove(id uint32) {
	for i, pr := range p.list {
		if pr.id == id {
			p.list = append(p.list[:i], p.list[i+1:]...)
			return
		}
	}
}

func (p *processors) apply(samples [][2]float64) {
	if len(p.list) == 0 || len(samples) == 0 {
		return
	}
	b := p.buf[:0]
	for _, s := range samples {
		b = append(b, float32(s[0]), float32(s[1]))
	}
	for _, pr := range p.list {
		pr.fn(b, uint32(len(samples)))
	}
	for i := range samples {
		samples[i] = [2]float64{float64(b[2*i]), float64(b[2*i+1])}
	}
	p.buf = b
}

// voice is one playable source: a sound, a sound alias, a music stream or a
// raw audio stream. The chain is
// source -> pause -> resample (rate * pitch) -> processors -> volume -> pan.
type voice struct {
	src    beep.Streamer
	buffer *beep.Buffer // sounds only, shared with aliases
	loop   bool

	base    float64 // source rate / output rate
	pitch   float64
	volume  float64
	panning float64

	ctrl  *beep.Ctrl
	rate  *beep.Resampler
	vol   *effects.Volume
	pan   *effects.Pan
	procs processors

	queued  bool
	stopped bool
}

func newVoice(src beep.Streamer, rate beep.SampleRate) *voice {
	v := &voice{src: src, base: float64(rate) / float64(outputRate), pitch: 1, volume: 1, stopped: true}
	v.build()
	return v
}

func (v *voice) build() {
	v.ctrl = &beep.Ctrl{Streamer: beep.StreamerFunc(v.pull)}
	v.rate = beep.ResampleRatio(4, v.base*v.pitch, v.ctrl)
	v.vol = &effects.Volume{Streamer: beep.StreamerFunc(v.process), Base: 2}
	v.setVolume(v.volume)
	v.pan = &effects.Pan{Streamer: v.vol, Pan: v.panning}
}

func (v *voice) pull(samples [][2]float64) (int, bool) {
	n, ok := v.src.Stream(samples)
	for v.loop && n < len(samples) {
		s, seekable := v.src.(beep.StreamSeeker)
		if !seekable || s.Seek(0) != nil {
			break
		}
		m, _ := v.src.Stream(samples[n:])
		if m == 0 {
			break
		}
		n += m
	}
	return n, ok || n > 0
}

func (v *voice) process(samples [][2]float64) (int, bool) {
	n, ok := v.rate.Stream(samples)
	v.procs.apply(samples[:n])
	return n, ok
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	if v.stopped {
		v.queued = false
		return 0, false
	}
	n, ok := v.pan.Stream(samples)
	if !ok {
		v.queued, v.stopped = false, true
	}
	return n, ok
}

func (v *voice) Err() error { return nil }

// play starts from the current source position. Sounds restart.
func (v *voice) play(m *mixer) {
	if v.buffer != nil {
		v.src = v.buffer.Streamer(0, v.buffer.Len())
	}
	v.stopped = false
	v.build()
	if !v.queued {
		m.mix.Add(v)
		v.queued = true
	}
}

func (v *voice) stop() {
	v.stopped = true
}

func (v *voice) setPaused(p bool) {
	if v.ctrl != nil {
		v.ctrl.Paused = p
	}
}

func (v *voice) playing() bool {
	return v.queued && !v.stopped && !v.ctrl.Paused
}

// setVolume takes a linear gain.
func (v *voice) setVolume(g float64) {
	v.volume = max(g, 0)
	if v.vol == nil {
		return
	}
	v.vol.Silent = v.volume == 0
	if v.volume > 0 {
		v.vol.Volume = math.Log2(v.volume)
	}
}

func (v *voice) setPitch(p float64) {
	if p <= 0 {
		return
	}
	v.pitch = p
	v.rate.SetRatio(v.base * p)
}

// setPan takes 0 (left) .. 1 (right), 0.5 centred.
func (v *voice) setPan(p float64) {
	p = min(max(p, 0), 1)
	v.panning = 2*p - 1
	v.pan.Pan = v.panning
}

// queue is the raw source behind an AudioStream. It plays silence when
// starved.
type queue struct {
	channels int
	data     []float32
}

func (q *queue) Stream(samples [][2]float64) (int, bool) {
	ch := q.channels
	i := 0
	for ; i < len(samples) && len(q.data) >= ch; i++ {
		l := float64(q.data[0])
		r := l
		if ch > 1 {
			r = float64(q.data[1])
		}
		samples[i] = [2]float64{l, r}
		q.data = q.data[ch:]
	}
	for ; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (q *queue) Err() error { return nil }

func (q *queue) push(data []float32) { q.data = append(q.data, data...) }

func (q *queue) processed() bool { return len(q.data) < max(q.channels, 1) }
