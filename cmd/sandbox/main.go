package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/audio"
	"github.com/hubastard/groveray/engine/automation"
	"github.com/hubastard/groveray/engine/core"
	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/platform"
	"github.com/hubastard/groveray/engine/profiler"
)

const (
	toneRate = 44100
	toneHz   = 220
)

type App struct {
	recordPath string
	replayPath string
	vr         bool

	stats stats
	scene *Layer2D

	device *audio.Device
	tone   *audio.AudioStream
	phase  float64

	events   *automation.EventList
	playback *automation.Playback
}

func (a *App) OnStart(e *core.Engine) error {
	logger := logging.Named("sandbox")

	a.scene = &Layer2D{}
	e.PushLayer(&Layer3D{vr: a.vr})
	e.PushLayer(a.scene)
	e.PushLayer(&LayerDebug{stats: &a.stats})

	var err error
	if a.device, err = e.Ctx.Audio(); err != nil {
		logger.Warn("running without audio", zap.Error(err))
	} else if a.tone, err = audio.NewAudioStream(e.Ctx.Native(), toneRate, 32, 1); err != nil {
		logger.Warn("tone stream", zap.Error(err))
	} else {
		a.tone.SetVolume(0.1)
		a.tone.Play()
	}

	switch {
	case a.replayPath != "":
		if a.events, err = automation.LoadEventList(e.Ctx.Native(), a.replayPath); err != nil {
			return err
		}
		a.playback = a.events.Play()
	case a.recordPath != "":
		if a.events, err = automation.NewEventList(e.Ctx.Native()); err != nil {
			return err
		}
		a.events.StartRecording()
	}
	return nil
}

// feedTone keeps one tick of a sine queued.
func (a *App) feedTone() {
	if a.tone == nil || !a.tone.Processed() {
		return
	}
	buf := make([]float32, toneRate/60)
	step := 2 * math.Pi * toneHz / toneRate
	for i := range buf {
		buf[i] = float32(math.Sin(a.phase))
		a.phase = math.Mod(a.phase+step, 2*math.Pi)
	}
	if err := a.tone.Update(buf); err != nil {
		logging.Named("sandbox").Warn("tone update", zap.Error(err))
	}
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.feedTone()
	if a.scene.world != nil {
		a.stats.bodies = a.scene.world.BodyCount()
	}

	switch {
	case a.playback != nil:
		a.playback.Update()
		a.stats.playback = fmt.Sprintf("replaying frame %d of %d events", a.playback.Frame(), a.events.Len())
		if a.playback.Finished() {
			a.stats.playback = "replay finished"
		}
	case a.events != nil:
		a.stats.playback = fmt.Sprintf("recording, %d events", a.events.Len())
	default:
		a.stats.playback = "idle"
	}
}

func (a *App) OnRender(e *core.Engine, d *gfx.Drawing, alpha float64) error { return nil }

func (a *App) OnShutdown(e *core.Engine) {
	logger := logging.Named("sandbox")
	if a.events != nil {
		if a.recordPath != "" && a.events.Recording() {
			a.events.StopRecording()
			if err := a.events.Export(a.recordPath); err != nil {
				logger.Error("export automation events", zap.Error(err))
			}
		}
		_ = a.events.Close()
	}
	if a.tone != nil {
		_ = a.tone.Close()
	}
	if a.device != nil {
		_ = a.device.Close()
	}
}

func main() {
	configPath := flag.String("config", "", "TOML window config")
	profilePath := flag.String("profile", "", "write a speedscope capture here on exit (needs -tags profile)")
	record := flag.String("record", "", "record automation events to this file")
	replay := flag.String("replay", "", "replay automation events from this file")
	vr := flag.Bool("vr", false, "render the 3D scene in stereo")
	flag.Parse()

	cfg := core.DefaultConfig()
	cfg.Title = "groveray sandbox"
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	profiler.Init(1 << 16)
	app := &App{recordPath: *record, replayPath: *replay, vr: *vr}
	if err := core.Run(platform.New(), app, core.WithConfig(cfg)); err != nil {
		log.Fatal(err)
	}
	if *profilePath != "" {
		if err := profiler.Dump(*profilePath); err != nil {
			log.Fatal(err)
		}
	}
}
