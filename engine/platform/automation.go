package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/assets"
	"github.com/hubastard/groveray/engine/native"
)

// Automation event types.
const (
	eventKeyUp         = 1
	eventKeyDown       = 2
	eventMouseUp       = 5
	eventMouseDown     = 6
	eventMousePosition = 7
	eventMouseWheel    = 8
	eventWindowClose   = 21
	eventWindowMax     = 22
	eventWindowMin     = 23
	eventWindowResize  = 24
	eventScreenshot    = 25
	eventSetTargetFPS  = 26
)

func (n *Native) LoadAutomationEventList(path string) native.AutomationEventList {
	list, err := assets.LoadEvents(path)
	if err != nil {
		n.log.Warn("automation events load failed", zap.String("path", path), zap.Error(err))
		return native.AutomationEventList{}
	}
	return list
}

func (n *Native) ExportAutomationEventList(list native.AutomationEventList, path string) bool {
	if err := assets.SaveEvents(list, path); err != nil {
		n.log.Warn("automation events export failed", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// SetAutomationEventList selects the list recording appends to.
func (n *Native) SetAutomationEventList(list *native.AutomationEventList) { n.events = list }

func (n *Native) SetAutomationEventBaseFrame(frame int32) { n.eventFrame = n.frames - int64(frame) }

func (n *Native) StartAutomationEventRecording() {
	if n.events == nil {
		n.log.Warn("no automation event list set")
		return
	}
	n.recording = true
}

func (n *Native) StopAutomationEventRecording() { n.recording = false }

// record appends an event stamped with the frame relative to the base frame.
func (n *Native) record(typ uint32, p0, p1 int32) {
	if !n.recording || n.events == nil {
		return
	}
	if n.events.Capacity > 0 && uint32(len(n.events.Events)) >= n.events.Capacity {
		n.log.Warn("automation event list full", zap.Uint32("capacity", n.events.Capacity))
		n.recording = false
		return
	}
	n.events.Events = append(n.events.Events, native.AutomationEvent{
		Frame:  uint32(n.frames - n.eventFrame),
		Type:   typ,
		Params: [4]int32{p0, p1},
	})
}

// PlayAutomationEvent replays the window side of an event.
func (n *Native) PlayAutomationEvent(event native.AutomationEvent) {
	p := event.Params
	switch event.Type {
	case eventKeyDown:
		if n.ready() {
			n.keyDown(glfw.Key(p[0]))
		}
	case eventSetTargetFPS:
		n.SetTargetFPS(p[0])
	case eventScreenshot:
		n.screenshot()
	}
	if !n.ready() {
		return
	}
	switch event.Type {
	case eventMousePosition:
		n.win.SetCursorPos(float64(p[0]), float64(p[1]))
	case eventWindowClose:
		n.win.SetShouldClose(true)
	case eventWindowMax:
		n.win.Maximize()
	case eventWindowMin:
		n.win.Iconify()
	case eventWindowResize:
		n.win.SetSize(int(p[0]), int(p[1]))
	}
}

func (n *Native) screenshot() {
	img := n.LoadImageFromScreen()
	if !n.IsImageReady(img) {
		return
	}
	defer n.UnloadImage(img)
	n.shotSeq++
	path := fmt.Sprintf("screenshot%03d.png", n.shotSeq)
	if n.ExportImage(img, path) {
		n.log.Info("screenshot saved", zap.String("path", path))
	}
}
