package core

import (
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
)

// Run opens the context and window and executes the main loop until the
// window asks to close, the app calls Quit, or a render hook fails.
func Run(lib native.Library, app App, opts ...Option) (err error) {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ctx, err := Init(lib, opts...)
	if err != nil {
		return err
	}
	defer ctx.Close()

	win, err := ctx.Window()
	if err != nil {
		return err
	}
	defer win.Close()

	eng := &Engine{Ctx: ctx, Window: win, start: time.Now()}
	if err := app.OnStart(eng); err != nil {
		return err
	}
	defer func() {
		for {
			if _, ok := eng.PopLayer(); !ok {
				break
			}
		}
		app.OnShutdown(eng)
		logging.Named("core").Info("engine exit", zap.Duration("uptime", eng.Uptime()))
	}()

	// Fixed-timestep (60 Hz) with interpolation
	const tick = 1.0 / 60
	var (
		accum   float64
		clear   = ctx.Config().Background()
		maxStep = 10 // prevent spiral of death
	)

	for !eng.quit && !win.ShouldClose() {
		accum += float64(ctx.FrameTime())

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			_ = eng.Layers.ForEach(func(l Layer) error { l.OnUpdate(eng, tick); return nil })
			app.OnUpdate(eng, tick)
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		// Interpolation factor for rendering
		alpha := accum / tick

		err := ctx.Frame(func(d *gfx.Drawing) error {
			d.ClearBackground(clear)
			if err := eng.Layers.ForEach(func(l Layer) error { return l.OnRender(eng, d, alpha) }); err != nil {
				return err
			}
			return app.OnRender(eng, d, alpha)
		})
		if err != nil {
			logging.Named("core").Error("render failed", zap.Error(err))
			return err
		}
	}
	return nil
}
