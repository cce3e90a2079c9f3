package audio

import (
	"slices"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
)

func streamKind(lib native.Library) handle.Kind[native.AudioStream] {
	return handle.Kind[native.AudioStream]{
		ID:      handle.KindAudioStream,
		Valid:   lib.IsAudioStreamReady,
		Release: lib.UnloadAudioStream,
	}
}

// AudioStream is a raw PCM stream fed by the caller.
type AudioStream struct {
	*handle.Handle[native.AudioStream]
	lib        native.Library
	processors []*Processor
}

// NewAudioStream opens a stream. sampleSize is in bits (8, 16 or 32).
func NewAudioStream(lib native.Library, sampleRate, sampleSize, channels uint32) (*AudioStream, error) {
	if err := requireDevice(lib); err != nil {
		return nil, err
	}
	h, err := streamKind(lib).Load(func() native.AudioStream {
		return lib.LoadAudioStream(sampleRate, sampleSize, channels)
	})
	if err != nil {
		return nil, err
	}
	return &AudioStream{Handle: h, lib: lib}, nil
}

// Update queues samples. The length must be a whole number of frames.
func (s *AudioStream) Update(samples []float32) error {
	if ch := int(s.Raw().Channels); ch == 0 || len(samples)%ch != 0 {
		return errors.InvalidArgument("sample count is not a multiple of the channel count")
	}
	s.lib.UpdateAudioStream(s.Raw(), samples)
	return nil
}

// Processed reports whether the stream wants more samples.
func (s *AudioStream) Processed() bool { return s.lib.IsAudioStreamProcessed(s.Raw()) }

// AttachProcessor runs fn over every buffer this stream produces.
func (s *AudioStream) AttachProcessor(fn native.AudioCallback) *Processor {
	stream := s.Raw()
	id := s.lib.AttachAudioStreamProcessor(stream, fn)
	p := &Processor{id: id}
	p.detach = func() {
		s.lib.DetachAudioStreamProcessor(stream, id)
		s.processors = slices.DeleteFunc(s.processors, func(o *Processor) bool { return o == p })
	}
	s.processors = append(s.processors, p)
	return p
}

// Close detaches the stream's processors, then releases it.
func (s *AudioStream) Close() error {
	if s == nil || s.Closed() {
		return nil
	}
	for _, p := range slices.Clone(s.processors) {
		p.Close()
	}
	return s.Handle.Close()
}

// AttachMixedProcessor runs fn over the final mix of every stream.
func AttachMixedProcessor(lib native.Library, fn native.AudioCallback) *Processor {
	id := lib.AttachAudioMixedProcessor(fn)
	return &Processor{id: id, detach: func() { lib.DetachAudioMixedProcessor(id) }}
}

// Processor is an attached audio callback.
type Processor struct {
	id       uint32
	detach   func()
	detached bool
}

// Close detaches the callback. Subsequent calls are no-ops.
func (p *Processor) Close() error {
	if p == nil || p.detached {
		return nil
	}
	p.detached = true
	p.detach()
	logging.Named("audio").Debug("processor detached", zap.Uint32("id", p.id))
	return nil
}
