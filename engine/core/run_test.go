package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/core"
	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/native/nativetest"
)

type recordingApp struct {
	started, shutdown bool
	updates, renders  int
	quitAfter         int
	renderErr         error
	layers            []core.Layer
}

func (a *recordingApp) OnStart(e *core.Engine) error {
	a.started = true
	for _, l := range a.layers {
		e.PushLayer(l)
	}
	return nil
}

func (a *recordingApp) OnUpdate(*core.Engine, float64) { a.updates++ }

func (a *recordingApp) OnRender(e *core.Engine, d *gfx.Drawing, _ float64) error {
	a.renders++
	if a.quitAfter > 0 && a.renders >= a.quitAfter {
		e.Quit()
	}
	if a.renderErr != nil {
		return a.renderErr
	}
	return d.Draw2D(native.Camera2D{Zoom: 1}, func(m *gfx.Mode2D) error {
		return m.DrawShape(gfx.Circle{Radius: 4}, native.Color{A: 255})
	})
}

func (a *recordingApp) OnShutdown(*core.Engine) { a.shutdown = true }

type recordingLayer struct {
	name string
	log  *[]string
}

func (l recordingLayer) OnAttach(*core.Engine) { *l.log = append(*l.log, "attach "+l.name) }
func (l recordingLayer) OnDetach(*core.Engine) { *l.log = append(*l.log, "detach "+l.name) }
func (l recordingLayer) OnUpdate(*core.Engine, float64)  {}
func (l recordingLayer) OnRender(_ *core.Engine, d *gfx.Drawing, _ float64) error {
	*l.log = append(*l.log, "render "+l.name)
	return nil
}

func TestRunLoop(t *testing.T) {
	lib := nativetest.New()
	lib.CloseAfter = 3

	var log []string
	app := &recordingApp{layers: []core.Layer{
		recordingLayer{"bottom", &log},
		recordingLayer{"top", &log},
	}}
	require.NoError(t, core.Run(lib, app, core.WithLogger(zap.NewNop())))

	assert.True(t, app.started)
	assert.True(t, app.shutdown)
	assert.Equal(t, 3, app.renders)
	assert.Equal(t, 3, app.updates)
	assert.Equal(t, 3, lib.Count("EndDrawing"))
	assert.Equal(t, 3, lib.Count("EndMode2D"))
	assert.Equal(t, 3, lib.Count("ClearBackground"))
	assert.Equal(t, 1, lib.Count("CloseWindow"))
	assert.False(t, lib.IsWindowReady())

	assert.Equal(t, []string{
		"attach bottom", "attach top",
		"render bottom", "render top",
		"render bottom", "render top",
		"render bottom", "render top",
		"detach top", "detach bottom",
	}, log)
}

func TestRunQuit(t *testing.T) {
	lib := nativetest.New()
	lib.CloseAfter = 100
	app := &recordingApp{quitAfter: 2}
	require.NoError(t, core.Run(lib, app, core.WithLogger(zap.NewNop())))
	assert.Equal(t, 2, app.renders)
}

func TestRunStopsOnRenderError(t *testing.T) {
	lib := nativetest.New()
	lib.CloseAfter = 100
	want := errors.InvalidArgument("bad frame")
	app := &recordingApp{renderErr: want}

	err := core.Run(lib, app, core.WithLogger(zap.NewNop()))
	assert.ErrorIs(t, err, want)
	assert.Equal(t, 1, app.renders)
	assert.Equal(t, 1, lib.Count("EndDrawing"))
	assert.True(t, app.shutdown)
	assert.False(t, lib.IsWindowReady())
}

func TestRunFailsWhenWindowOpen(t *testing.T) {
	lib := nativetest.New()
	lib.InitWindow(10, 10, "other")
	err := core.Run(lib, &recordingApp{}, core.WithLogger(zap.NewNop()))
	assert.True(t, errors.Is(err, errors.SubsystemAlreadyInitialized("window")))
}
