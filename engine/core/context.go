package core

import (
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/audio"
	"github.com/hubastard/groveray/engine/display"
	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/guard"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/physics"
)

// Subsystem lock names.
const (
	LockWindow  = "window"
	LockDrawing = "drawing"
	LockAudio   = "audio"
	LockPhysics = "physics"
)

// Context owns the native window and the subsystem locks. Create exactly
// one with Init; every other entry point hangs off it. All calls must come
// from the thread that called Init.
type Context struct {
	lib    native.Library
	state  *guard.State
	cfg    Config
	closed bool
}

// Init opens the window. It fails with SubsystemAlreadyInitialized("window")
// if the native library already has one.
func Init(lib native.Library, opts ...Option) (*Context, error) {
	if lib.IsWindowReady() {
		return nil, errors.SubsystemAlreadyInitialized(LockWindow)
	}
	s := settings{cfg: DefaultConfig()}
	for _, o := range opts {
		o(&s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	if s.logger != nil {
		logging.SetLogger(s.logger)
	} else {
		logging.SetLogger(logging.Native(lib, s.cfg.LogLevel))
	}
	lib.SetTraceLogLevel(logging.TraceLevel(s.cfg.LogLevel))

	lib.SetConfigFlags(s.cfg.Flags())
	lib.InitWindow(s.cfg.Width, s.cfg.Height, s.cfg.Title)
	if !lib.IsWindowReady() {
		return nil, errors.SubsystemNotInitialized(LockWindow)
	}
	if s.cfg.TargetFPS > 0 {
		lib.SetTargetFPS(s.cfg.TargetFPS)
	}
	if s.cfg.MinWidth > 0 || s.cfg.MinHeight > 0 {
		lib.SetWindowMinSize(s.cfg.MinWidth, s.cfg.MinHeight)
	}
	if s.cfg.MaxWidth > 0 || s.cfg.MaxHeight > 0 {
		lib.SetWindowMaxSize(s.cfg.MaxWidth, s.cfg.MaxHeight)
	}
	lib.SetExitKey(s.cfg.ExitKey)

	logging.Named("core").Info("window opened",
		zap.String("title", s.cfg.Title),
		zap.Int32("width", s.cfg.Width),
		zap.Int32("height", s.cfg.Height))

	return &Context{
		lib:   lib,
		state: guard.NewState(LockWindow, LockDrawing, LockAudio, LockPhysics),
		cfg:   s.cfg,
	}, nil
}

// Config returns the configuration the context was created with.
func (c *Context) Config() Config { return c.cfg }

// Native exposes the underlying function table for pass-through calls.
func (c *Context) Native() native.Library { return c.lib }

// Window takes the window lock.
func (c *Context) Window() (*display.Window, error) {
	if c.closed || !c.lib.IsWindowReady() {
		return nil, errors.SubsystemNotInitialized(LockWindow)
	}
	tok, err := c.state.Acquire(LockWindow)
	if err != nil {
		return nil, err
	}
	return display.New(c.lib, tok), nil
}

// Audio takes the audio lock and turns the device on if it is off.
func (c *Context) Audio() (*audio.Device, error) {
	tok, err := c.state.Acquire(LockAudio)
	if err != nil {
		return nil, err
	}
	return audio.Open(c.lib, tok)
}

// Physics takes the physics lock and starts the simulation if needed.
func (c *Context) Physics() (*physics.World, error) {
	tok, err := c.state.Acquire(LockPhysics)
	if err != nil {
		return nil, err
	}
	return physics.Open(c.lib, tok)
}

// BeginDrawing opens a frame. End it before the next one.
func (c *Context) BeginDrawing() (*gfx.Drawing, error) {
	if c.closed || !c.lib.IsWindowReady() {
		return nil, errors.SubsystemNotInitialized(LockWindow)
	}
	tok, err := c.state.Acquire(LockDrawing)
	if err != nil {
		return nil, err
	}
	return gfx.Begin(c.lib, tok), nil
}

// Frame runs f inside one BeginDrawing/EndDrawing pair. The frame ends even
// if f panics, and modes f left open are ended first.
func (c *Context) Frame(f func(*gfx.Drawing) error) (rerr error) {
	d, err := c.BeginDrawing()
	if err != nil {
		return err
	}
	defer func() {
		if endErr := d.Unwind(); endErr != nil {
			if rerr == nil {
				rerr = endErr
			} else {
				rerr = errors.Join(rerr, endErr)
			}
		}
	}()
	return f(d)
}

// Held reports whether the named subsystem lock is taken.
func (c *Context) Held(name string) bool { return c.state.Held(name) }

func (c *Context) SetExitKey(key int32)      { c.lib.SetExitKey(key) }
func (c *Context) FrameTime() float32        { return c.lib.GetFrameTime() }
func (c *Context) ElapsedTime() float64      { return c.lib.GetTime() }
func (c *Context) FPS() int32                { return c.lib.GetFPS() }
func (c *Context) ClipboardText() string     { return c.lib.GetClipboardText() }
func (c *Context) SetClipboardText(s string) { c.lib.SetClipboardText(s) }

// Close destroys the window. The context cannot be used afterwards; a new
// one may be created with Init.
func (c *Context) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	if c.lib.IsWindowReady() {
		c.lib.CloseWindow()
	}
	logging.Named("core").Info("context closed")
	_ = logging.Logger().Sync()
	return nil
}
