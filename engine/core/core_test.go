package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hubastard/groveray/engine/colors"
	"github.com/hubastard/groveray/engine/core"
	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/native/nativetest"
)

func newContext(t *testing.T, opts ...core.Option) (*nativetest.Library, *core.Context) {
	t.Helper()
	lib := nativetest.New()
	ctx, err := core.Init(lib, append([]core.Option{core.WithLogger(zap.NewNop())}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })
	return lib, ctx
}

func TestInitTwiceFails(t *testing.T) {
	lib, _ := newContext(t)

	ctx, err := core.Init(lib)
	assert.Nil(t, ctx)
	assert.True(t, errors.Is(err, errors.SubsystemAlreadyInitialized("window")))
	assert.Equal(t, 1, lib.Count("InitWindow"))
}

func TestInitWindowFailure(t *testing.T) {
	lib := nativetest.New()
	lib.Fail["InitWindow"] = true
	_, err := core.Init(lib, core.WithLogger(zap.NewNop()))
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("window")))
}

func TestInitRejectsBadConfig(t *testing.T) {
	lib := nativetest.New()
	_, err := core.Init(lib, core.WithSize(0, 100))
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
	assert.Zero(t, lib.Count("InitWindow"))
}

func TestInitAppliesOptions(t *testing.T) {
	lib, ctx := newContext(t,
		core.WithTitle("demo"),
		core.WithSize(640, 480),
		core.WithTargetFPS(30),
		core.WithMSAA(true),
		core.WithResizable(true),
		core.WithVSync(false),
	)
	cfg := ctx.Config()
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, int32(640), cfg.Width)
	assert.Equal(t, native.FlagMSAA4xHint|native.FlagWindowResizable, cfg.Flags())

	calls := lib.Calls()
	assert.Less(t, indexOf(calls, "SetConfigFlags"), indexOf(calls, "InitWindow"))
	assert.Less(t, indexOf(calls, "InitWindow"), indexOf(calls, "SetTargetFPS"))
	assert.Equal(t, 1, lib.Count("SetTraceLogLevel"))
	assert.Zero(t, lib.Count("SetWindowMaxSize"))
}

func indexOf(calls []string, name string) int {
	for i, c := range calls {
		if c == name {
			return i
		}
	}
	return -1
}

func TestWindowLock(t *testing.T) {
	_, ctx := newContext(t)

	w1, err := ctx.Window()
	require.NoError(t, err)

	w2, err := ctx.Window()
	assert.Nil(t, w2)
	assert.True(t, errors.Is(err, errors.ThreadAlreadyLocked("window")))

	require.NoError(t, w1.Close())
	w3, err := ctx.Window()
	require.NoError(t, err)
	require.NoError(t, w3.Close())
}

func TestWindowAfterClose(t *testing.T) {
	lib, ctx := newContext(t)
	require.NoError(t, ctx.Close())
	assert.Equal(t, 1, lib.Count("CloseWindow"))

	_, err := ctx.Window()
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("window")))
	_, err = ctx.BeginDrawing()
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("window")))

	again, err := core.Init(lib, core.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestDrawingLock(t *testing.T) {
	lib, ctx := newContext(t)

	d, err := ctx.BeginDrawing()
	require.NoError(t, err)
	_, err = ctx.BeginDrawing()
	assert.True(t, errors.Is(err, errors.ThreadAlreadyLocked("drawing")))
	assert.Equal(t, 1, lib.Count("BeginDrawing"))

	require.NoError(t, d.End())
	assert.False(t, ctx.Held(core.LockDrawing))
	require.NoError(t, ctx.Frame(func(*gfx.Drawing) error { return nil }))
	assert.Equal(t, 2, lib.Count("EndDrawing"))
}

func TestFrameEndsOnPanic(t *testing.T) {
	lib, ctx := newContext(t)
	assert.Panics(t, func() {
		_ = ctx.Frame(func(*gfx.Drawing) error { panic("boom") })
	})
	assert.Equal(t, 1, lib.Count("EndDrawing"))
	assert.False(t, ctx.Held(core.LockDrawing))
}

func TestFrameEndsModesLeftOpen(t *testing.T) {
	lib, ctx := newContext(t)
	err := ctx.Frame(func(d *gfx.Drawing) error {
		m, err := d.Begin2D(native.Camera2D{Zoom: 1})
		if err != nil {
			return err
		}
		_, err = m.BeginBlend(native.BlendAdditive)
		return err
	})
	assert.True(t, errors.Is(err, errors.NestingViolation("drawing")))
	assert.Equal(t, []string{"EndBlendMode", "EndMode2D", "EndDrawing"}, lib.CallsWithPrefix("End"))
	assert.False(t, ctx.Held(core.LockDrawing))

	require.NoError(t, ctx.Frame(func(*gfx.Drawing) error { return nil }))
	assert.Equal(t, 2, lib.Count("EndDrawing"))
}

func TestAudioLazyInit(t *testing.T) {
	lib, ctx := newContext(t)

	dev, err := ctx.Audio()
	require.NoError(t, err)
	_, err = ctx.Audio()
	assert.True(t, errors.Is(err, errors.ThreadAlreadyLocked("audio")))
	assert.Equal(t, 1, lib.Count("InitAudioDevice"))

	require.NoError(t, dev.Close())
	dev, err = ctx.Audio()
	require.NoError(t, err)
	require.NoError(t, dev.Close())
	assert.Equal(t, 2, lib.Count("InitAudioDevice"))
}

func TestAudioUnavailable(t *testing.T) {
	lib, ctx := newContext(t)
	lib.Fail["InitAudioDevice"] = true

	_, err := ctx.Audio()
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("audio")))
	assert.False(t, ctx.Held(core.LockAudio))
}

func TestPhysicsLazyInit(t *testing.T) {
	lib, ctx := newContext(t)

	w, err := ctx.Physics()
	require.NoError(t, err)
	_, err = ctx.Physics()
	assert.True(t, errors.Is(err, errors.ThreadAlreadyLocked("physics")))
	require.NoError(t, w.Close())
	assert.False(t, ctx.Held(core.LockPhysics))

	lib.Fail["InitPhysics"] = true
	_, err = ctx.Physics()
	assert.True(t, errors.Is(err, errors.SubsystemNotInitialized("physics")))
}

func TestPassThrough(t *testing.T) {
	_, ctx := newContext(t)
	ctx.SetClipboardText("copied")
	assert.Equal(t, "copied", ctx.ClipboardText())
	assert.Equal(t, int32(60), ctx.FPS())
	assert.InDelta(t, 1.0/60, ctx.FrameTime(), 1e-6)
	assert.NotNil(t, ctx.Native())
}

func TestInitLogsWindowOpened(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	lib := nativetest.New()
	ctx, err := core.Init(lib, core.WithLogger(zap.New(obs)), core.WithTitle("logged"))
	require.NoError(t, err)
	defer ctx.Close()

	entries := logs.FilterMessage("window opened").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "logged", entries[0].ContextMap()["title"])
}

func TestNativeTraceLogBridge(t *testing.T) {
	lib := nativetest.New()
	ctx, err := core.Init(lib)
	require.NoError(t, err)
	require.NoError(t, ctx.Close())
	assert.NotEmpty(t, lib.Logged)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groveray.toml")
	body := `
title = "from file"
width = 1024
height = 576
msaa = true
log_level = "debug"
clear_color = "#102030"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := core.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from file", cfg.Title)
	assert.Equal(t, int32(1024), cfg.Width)
	assert.True(t, cfg.MSAA)
	assert.True(t, cfg.VSync, "unset keys keep defaults")
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, colors.Color{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, cfg.Background())

	lib, ctx := newContext(t, core.WithConfig(cfg))
	assert.Equal(t, "from file", ctx.Config().Title)
	assert.Equal(t, 1, lib.Count("InitWindow"))
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := core.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.UnableToLoad("config")))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("width = ["), 0o644))
	_, err = core.LoadConfig(bad)
	assert.True(t, errors.Is(err, errors.UnableToLoad("config")))

	small := filepath.Join(t.TempDir(), "small.toml")
	require.NoError(t, os.WriteFile(small, []byte("width = -1"), 0o644))
	_, err = core.LoadConfig(small)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}
