// Package automation records input events frame by frame and plays them back.
package automation

import (
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
)

func listKind(lib native.Library) handle.Kind[native.AutomationEventList] {
	return handle.Kind[native.AutomationEventList]{
		ID:      handle.KindAutomationEvents,
		Valid:   func(l native.AutomationEventList) bool { return l.Events != nil },
		Release: lib.UnloadAutomationEventList,
	}
}

// EventList is a recorded sequence of automation events.
type EventList struct {
	*handle.Handle[native.AutomationEventList]
	lib       native.Library
	recording bool
}

// NewEventList returns an empty list ready to record into.
func NewEventList(lib native.Library) (*EventList, error) {
	return load(lib, "")
}

// LoadEventList reads a list previously written by Export.
func LoadEventList(lib native.Library, path string) (*EventList, error) {
	if path == "" {
		return nil, errors.InvalidArgument("empty automation events path")
	}
	return load(lib, path)
}

func load(lib native.Library, path string) (*EventList, error) {
	h, err := listKind(lib).Load(func() native.AutomationEventList { return lib.LoadAutomationEventList(path) })
	if err != nil {
		return nil, err
	}
	return &EventList{Handle: h, lib: lib}, nil
}

func (l *EventList) Len() int { return len(l.Raw().Events) }

// Events returns the recorded events.
func (l *EventList) Events() []native.AutomationEvent { return l.Raw().Events }

func (l *EventList) Recording() bool { return l.recording }

// StartRecording records from the current frame.
func (l *EventList) StartRecording() { l.StartRecordingAt(0) }

// StartRecordingAt records with frame numbers offset by frame.
func (l *EventList) StartRecordingAt(frame int32) {
	l.lib.SetAutomationEventList(l.Ptr())
	l.lib.SetAutomationEventBaseFrame(frame)
	l.lib.StartAutomationEventRecording()
	l.recording = true
	logging.Named("automation").Debug("recording started", zap.Int32("base_frame", frame))
}

func (l *EventList) StopRecording() {
	if !l.recording {
		return
	}
	l.lib.StopAutomationEventRecording()
	l.recording = false
	logging.Named("automation").Debug("recording stopped", zap.Int("events", l.Len()))
}

// Export writes the list to path.
func (l *EventList) Export(path string) error {
	if path == "" {
		return errors.InvalidArgument("empty export path")
	}
	if !l.lib.ExportAutomationEventList(l.Raw(), path) {
		return errors.IO("export", path)
	}
	return nil
}

// Play returns a cursor that replays the list one frame per Update.
func (l *EventList) Play() *Playback {
	return &Playback{list: l}
}

// Close stops an active recording, then releases the list.
func (l *EventList) Close() error {
	if l == nil || l.Closed() {
		return nil
	}
	l.StopRecording()
	return l.Handle.Close()
}

// Playback replays an EventList.
type Playback struct {
	list  *EventList
	frame uint32
	next  int
}

// Update plays every event due on the current frame and advances one frame.
func (p *Playback) Update() {
	events := p.list.Events()
	for p.next < len(events) && events[p.next].Frame <= p.frame {
		p.list.lib.PlayAutomationEvent(events[p.next])
		p.next++
	}
	p.frame++
}

// Frame is the number of frames played so far.
func (p *Playback) Frame() uint32 { return p.frame }

func (p *Playback) Playing() bool  { return !p.list.Closed() && p.next < len(p.list.Events()) }
func (p *Playback) Finished() bool { return !p.Playing() }

// Reset rewinds to the first frame.
func (p *Playback) Reset() {
	p.frame = 0
	p.next = 0
}
