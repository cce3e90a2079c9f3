package main

import (
	"fmt"
	"runtime"

	"github.com/hubastard/groveray/engine/colors"
	"github.com/hubastard/groveray/engine/core"
	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/ui"
)

// LayerDebug draws frame, memory and physics stats in the top-left corner.
type LayerDebug struct {
	font  *gfx.Font
	stats *stats
	mem   runtime.MemStats
	ticks int
}

// stats is filled in by the app every update.
type stats struct {
	bodies   int
	playback string
}

func (l *LayerDebug) OnAttach(e *core.Engine) { l.font = gfx.DefaultFont(e.Ctx.Native()) }
func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	l.ticks++
	// ReadMemStats stops the world; twice a second is plenty
	if l.ticks%30 == 1 {
		runtime.ReadMemStats(&l.mem)
	}
}

func heading(s string) *ui.Label {
	return ui.NewLabel(s).Color(colors.Yellow).Padding4(0, 12, 0, 0)
}

func line(format string, args ...any) *ui.Label {
	return ui.NewLabel(fmt.Sprintf(format, args...)).Padding4(12, 0, 0, 0)
}

func (l *LayerDebug) OnRender(e *core.Engine, d *gfx.Drawing, alpha float64) error {
	ms := e.Ctx.FrameTime() * 1000
	root := ui.NewPanel(
		ui.NewPanel(
			heading(fmt.Sprintf("Frame %d", l.ticks)),
			line("%2.3f ms (%d FPS)", ms, e.Ctx.FPS()),
			heading("Memory"),
			line("Heap: %.3f MB", float64(l.mem.HeapAlloc)/(1<<20)),
			line("Mallocs: %d", l.mem.Mallocs),
			line("Goroutines: %d", runtime.NumGoroutine()),
			heading("Physics"),
			line("Bodies: %d", l.stats.bodies),
			heading("Automation"),
			line("%s", l.stats.playback),
		).
			Vertical(true).
			Gap(4).
			Padding(16).
			Background(colors.WithAlpha(colors.Black, 0.5)),
	).
		Vertical(true).
		Padding(16).
		AlignCross(ui.AlignStart)

	ctx := &ui.Context{
		Viewport: native.Rectangle{Width: float32(e.Window.Width()), Height: float32(e.Window.Height())},
		Font:     l.font,
	}
	return d.Draw2D(native.Camera2D{Zoom: 1}, func(m *gfx.Mode2D) error { return root.Draw(ctx, m) })
}
