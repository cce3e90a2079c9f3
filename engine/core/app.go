package core

import (
	"time"

	"github.com/hubastard/groveray/engine/display"
	"github.com/hubastard/groveray/engine/gfx"
)

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine) error                                 // called once after the window opens
	OnUpdate(e *Engine, dt float64)                          // called at a fixed tick (60Hz)
	OnRender(e *Engine, d *gfx.Drawing, alpha float64) error // render with interpolation alpha [0..1]
	OnShutdown(e *Engine)                                    // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Ctx    *Context
	Window *display.Window
	Layers LayerStack
	start  time.Time
	quit   bool
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// PushLayer attaches l on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// PopLayer detaches the top layer.
func (e *Engine) PopLayer() (Layer, bool) {
	l, ok := e.Layers.Pop()
	if ok {
		l.OnDetach(e)
	}
	return l, ok
}

// Quit stops the loop after the current frame.
func (e *Engine) Quit() { e.quit = true }
