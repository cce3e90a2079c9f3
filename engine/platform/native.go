// Package platform implements native.Library on GLFW and OpenGL 3.3 core,
// with x/image for CPU imaging, qmuntal/gltf for models, beep for audio and
// a small built-in physics world.
package platform

import (
	"os"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	glbackend "github.com/hubastard/groveray/engine/gfx/gl"
	"github.com/hubastard/groveray/engine/gfx/renderer2d"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/platform/physac"
	"github.com/hubastard/groveray/engine/profiler"
	"github.com/hubastard/groveray/engine/scene"
	"github.com/hubastard/groveray/engine/text"
)

var _ native.Library = (*Native)(nil)

// Native is a native.Library backed by a real window. Every method must be
// called from the OS thread that called InitWindow.
type Native struct {
	log   *zap.Logger
	level zap.AtomicLevel

	flags     native.ConfigFlags
	win       *glfw.Window
	gl        *glbackend.RendererGL
	batch     *renderer2d.Batch
	exitKey   glfw.Key
	targetFPS int32
	minSize   [2]int
	maxSize   [2]int

	frames     int64
	frameStart time.Time
	lastFrame  time.Time
	frameTime  float32
	fps        fpsCounter
	spans      []func()

	state    transform
	stack    []transform
	vr       *native.VrStereoConfig
	target   *glbackend.Framebuffer
	fbs      map[uint32]glbackend.Framebuffer
	fonts    map[uint32]*text.Atlas
	defFont  native.Font
	cpuFont  *text.Atlas
	nextID   uint32
	live     map[string]int
	shotSeq  int

	audio        *mixer
	masterVolume float32
	physics      *physac.World

	events     *native.AutomationEventList
	recording  bool
	eventFrame int64
}

type transform struct {
	proj, view scene.Matrix
	viewport   [4]int32
}

type Option func(*Native)

// WithLogOutput sends native trace lines to w instead of stderr.
func WithLogOutput(w zapcore.WriteSyncer) Option {
	return func(n *Native) { n.log = newTraceLogger(w, n.level) }
}

func New(opts ...Option) *Native {
	n := &Native{
		level:   zap.NewAtomicLevelAt(zapcore.InfoLevel),
		exitKey: glfw.KeyEscape,
		fbs:     make(map[uint32]glbackend.Framebuffer),
		fonts:   make(map[uint32]*text.Atlas),
		live:    make(map[string]int),

		masterVolume: 1,
	}
	n.log = newTraceLogger(zapcore.Lock(os.Stderr), n.level)
	for _, o := range opts {
		o(n)
	}
	return n
}

// The trace logger is private to the backend. The core bridges its own zap
// logger into TraceLog, so routing TraceLog back through that logger would loop.
func newTraceLogger(w zapcore.WriteSyncer, level zap.AtomicLevel) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), w, level)).Named("native")
}

func (n *Native) id() uint32 {
	n.nextID++
	return n.nextID
}

func (n *Native) track(kind string)   { n.live[kind]++ }
func (n *Native) untrack(kind string) {
	if n.live[kind] > 0 {
		n.live[kind]--
	}
}

// Live reports how many resources of kind are currently loaded.
func (n *Native) Live(kind string) int { return n.live[kind] }

func (n *Native) reportLeaks() {
	for kind, count := range n.live {
		if count > 0 {
			n.log.Warn("resources still loaded at shutdown", zap.String("kind", kind), zap.Int("count", count))
		}
	}
}

// Logging

func zapLevel(l native.TraceLogLevel) zapcore.Level {
	switch l {
	case native.LogAll, native.LogTrace, native.LogDebug:
		return zapcore.DebugLevel
	case native.LogInfo:
		return zapcore.InfoLevel
	case native.LogWarning:
		return zapcore.WarnLevel
	case native.LogError:
		return zapcore.ErrorLevel
	case native.LogFatal:
		return zapcore.FatalLevel
	}
	return zapcore.FatalLevel + 1
}

func (n *Native) SetTraceLogLevel(level native.TraceLogLevel) { n.level.SetLevel(zapLevel(level)) }

// TraceLog never exits the process, even at LogFatal.
func (n *Native) TraceLog(level native.TraceLogLevel, msg string) {
	lvl := zapLevel(level)
	if lvl > zapcore.ErrorLevel {
		if level == native.LogNone {
			return
		}
		lvl = zapcore.ErrorLevel
	}
	if ce := n.log.Check(lvl, msg); ce != nil {
		ce.Write()
	}
}

type fpsCounter struct {
	samples [30]float32
	i, n    int
}

func (c *fpsCounter) add(dt float32) {
	c.samples[c.i] = dt
	c.i = (c.i + 1) % len(c.samples)
	c.n = min(c.n+1, len(c.samples))
}

func (c *fpsCounter) fps() int32 {
	var sum float32
	for _, s := range c.samples[:c.n] {
		sum += s
	}
	if sum <= 0 {
		return 0
	}
	return int32(float32(c.n)/sum + 0.5)
}

// openSpan and closeSpan bracket profiler spans for the frame and every mode
// opened inside it.
func (n *Native) openSpan(name string) {
	n.spans = append(n.spans, profiler.Start(name))
}

func (n *Native) closeSpan() {
	if len(n.spans) == 0 {
		return
	}
	n.spans[len(n.spans)-1]()
	n.spans = n.spans[:len(n.spans)-1]
}
