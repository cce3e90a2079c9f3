// Package logging holds the process-wide zap logger used by every groveray
// package, and a zapcore bridge into the native trace log.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the current logger. It is a no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Named returns a child of the current logger. Packages call it per use so
// a later SetLogger is honoured.
func Named(name string) *zap.Logger {
	return Logger().Named(name)
}
