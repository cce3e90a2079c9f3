// Package display exposes the open window and the attached monitors.
package display

import (
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/guard"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
)

// Window holds the context's window lock. Drop it with Close; the native
// window stays open until CloseWindow.
type Window struct {
	lib    native.Library
	tok    *guard.Token
	closed bool
}

func New(lib native.Library, tok *guard.Token) *Window {
	return &Window{lib: lib, tok: tok}
}

// ShouldClose reports whether the user asked to close the window. It also
// polls window events, so call it once per frame.
func (w *Window) ShouldClose() bool { return w.lib.WindowShouldClose() }

func (w *Window) Width() int32  { return w.lib.GetScreenWidth() }
func (w *Window) Height() int32 { return w.lib.GetScreenHeight() }

func (w *Window) SetTitle(title string)          { w.lib.SetWindowTitle(title) }
func (w *Window) SetMinSize(width, height int32) { w.lib.SetWindowMinSize(width, height) }
func (w *Window) SetMaxSize(width, height int32) { w.lib.SetWindowMaxSize(width, height) }

// CloseWindow destroys the native window and drops the guard.
func (w *Window) CloseWindow() {
	if w.lib.IsWindowReady() {
		w.lib.CloseWindow()
		logging.Named("display").Info("window closed")
	}
	w.Close()
}

// Close drops the guard so the window can be acquired again.
func (w *Window) Close() error {
	if w == nil || w.closed {
		return nil
	}
	w.closed = true
	w.tok.Release()
	return nil
}

func (w *Window) MonitorCount() int { return int(w.lib.GetMonitorCount()) }

// CurrentMonitor is the monitor the window is on.
func (w *Window) CurrentMonitor() Monitor {
	return Monitor{lib: w.lib, Index: w.lib.GetCurrentMonitor()}
}

// Monitor returns monitor i, or false if there is none.
func (w *Window) Monitor(i int) (Monitor, bool) {
	if i < 0 || i >= w.MonitorCount() {
		logging.Named("display").Debug("no such monitor", zap.Int("index", i))
		return Monitor{}, false
	}
	return Monitor{lib: w.lib, Index: int32(i)}, true
}

// Monitors lists every connected monitor.
func (w *Window) Monitors() []Monitor {
	out := make([]Monitor, w.MonitorCount())
	for i := range out {
		out[i] = Monitor{lib: w.lib, Index: int32(i)}
	}
	return out
}

type Monitor struct {
	lib   native.Library
	Index int32
}

func (m Monitor) Width() int32       { return m.lib.GetMonitorWidth(m.Index) }
func (m Monitor) Height() int32      { return m.lib.GetMonitorHeight(m.Index) }
func (m Monitor) RefreshRate() int32 { return m.lib.GetMonitorRefreshRate(m.Index) }
func (m Monitor) Name() string       { return m.lib.GetMonitorName(m.Index) }
