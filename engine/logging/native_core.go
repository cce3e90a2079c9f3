package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hubastard/groveray/engine/native"
)

// Tracer is the native trace log sink.
type Tracer interface {
	TraceLog(level native.TraceLogLevel, msg string)
}

type nativeCore struct {
	zapcore.LevelEnabler
	out    Tracer
	enc    zapcore.Encoder
	fields []zapcore.Field
}

// NewNativeCore returns a core that writes every entry through TraceLog.
func NewNativeCore(out Tracer, enab zapcore.LevelEnabler) zapcore.Core {
	cfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		NameKey:        "logger",
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	return &nativeCore{LevelEnabler: enab, out: out, enc: zapcore.NewConsoleEncoder(cfg)}
}

// Native builds a logger that writes to the native trace log at level and above.
func Native(out Tracer, level zapcore.Level) *zap.Logger {
	return zap.New(NewNativeCore(out, level))
}

func (c *nativeCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(c.fields[:len(c.fields):len(c.fields)], fields...)
	return &clone
}

func (c *nativeCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *nativeCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	all := append(c.fields[:len(c.fields):len(c.fields)], fields...)
	buf, err := c.enc.EncodeEntry(ent, all)
	if err != nil {
		return err
	}
	msg := strings.TrimRight(buf.String(), "\n")
	buf.Free()
	c.out.TraceLog(TraceLevel(ent.Level), msg)
	return nil
}

func (c *nativeCore) Sync() error { return nil }

// TraceLevel maps a zap level onto the native trace log level.
func TraceLevel(l zapcore.Level) native.TraceLogLevel {
	switch {
	case l < zapcore.InfoLevel:
		return native.LogDebug
	case l == zapcore.InfoLevel:
		return native.LogInfo
	case l == zapcore.WarnLevel:
		return native.LogWarning
	case l == zapcore.ErrorLevel:
		return native.LogError
	default:
		return native.LogFatal
	}
}

// ZapLevel maps a native trace log level onto zap.
func ZapLevel(l native.TraceLogLevel) zapcore.Level {
	switch l {
	case native.LogAll, native.LogTrace, native.LogDebug:
		return zapcore.DebugLevel
	case native.LogInfo:
		return zapcore.InfoLevel
	case native.LogWarning:
		return zapcore.WarnLevel
	case native.LogError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}
